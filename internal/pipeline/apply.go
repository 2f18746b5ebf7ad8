package pipeline

import (
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/dgallion1/xmlgest/internal/config"
	"github.com/dgallion1/xmlgest/internal/kvtree"
	"github.com/dgallion1/xmlgest/internal/transform"
)

// Apply runs the preset's transform sequence: remove, then flatten, then
// rename. Absent sections are skipped.
func (p *Pipeline) Apply(preset config.Preset) {
	if len(preset.RemoveKeys) > 0 {
		p.RemoveKeys(preset.RemoveKeys...)
	}
	if f := preset.Flatten; f != nil {
		p.FlattenNestedKeys(f.NestedKey, f.ValueKey)
	}
	if rn := preset.Rename; rn != nil {
		table := lo.MapKeys(rn.Table, func(_ string, k string) string {
			return strings.ToLower(k)
		})
		p.RenameKeys(table, transform.CasingByName(rn.Casing))
	}
}

// Run parses one document and applies the preset in a single call.
func Run(r io.Reader, preset config.Preset) (*kvtree.Dict, error) {
	parents := preset.Parents
	if len(parents) == 0 {
		parents = DefaultParents
	}
	p, err := New(r, lo.Uniq(parents)...)
	if err != nil {
		return nil, err
	}
	p.Apply(preset)
	return p.Data(), nil
}
