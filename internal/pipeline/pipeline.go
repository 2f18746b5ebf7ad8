// Package pipeline wires XML parsing, extraction and the structural
// transforms into a single-owner working structure. A Pipeline instance owns
// its structure exclusively; each transform replaces it wholesale.
package pipeline

import (
	"io"

	"github.com/dgallion1/xmlgest/internal/kvtree"
	"github.com/dgallion1/xmlgest/internal/transform"
	"github.com/dgallion1/xmlgest/internal/xmltree"
)

// DefaultParents are extracted when the caller does not name any.
var DefaultParents = []string{"header", "values"}

// Pipeline holds the working structure for one document.
type Pipeline struct {
	data *kvtree.Dict
}

// New parses the document and extracts the requested parent elements. The
// document is parsed exactly once. Parents missing from the document are
// silently omitted; a malformed document fails here and nowhere else.
func New(r io.Reader, parents ...string) (*Pipeline, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, err
	}
	if len(parents) == 0 {
		parents = DefaultParents
	}
	return &Pipeline{data: transform.Extract(root, parents)}, nil
}

// RemoveKeys deletes the named keys at every depth.
func (p *Pipeline) RemoveKeys(keys ...string) {
	p.data = transform.RemoveKeys(p.data, keys).(*kvtree.Dict)
}

// FlattenNestedKeys promotes nested name fields to parent keys. Empty
// arguments select the "Name"/"Value" defaults.
func (p *Pipeline) FlattenNestedKeys(nestedKey, valueKey string) {
	p.data = transform.FlattenNestedKeys(p.data, nestedKey, valueKey).(*kvtree.Dict)
}

// RenameKeys rewrites keys through table (lowercased lookup), applying
// casing to translated keys only.
func (p *Pipeline) RenameKeys(table map[string]string, casing transform.Casing) {
	p.data = transform.RenameKeys(p.data, table, casing).(*kvtree.Dict)
}

// Data returns the current working structure.
func (p *Pipeline) Data() *kvtree.Dict {
	return p.data
}
