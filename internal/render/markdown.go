package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/dgallion1/xmlgest/internal/kvtree"
	"github.com/dgallion1/xmlgest/internal/transform"
)

// Markdown renders the working structure as headed, nested markdown lists.
func Markdown(d *kvtree.Dict) string {
	var b strings.Builder
	for i, parent := range d.Keys() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", transform.Capitalize(parent))
		v, _ := d.Get(parent)
		writeMarkdown(&b, v, 0)
	}
	return b.String()
}

func writeMarkdown(b *strings.Builder, v kvtree.Value, depth int) {
	pad := strings.Repeat("  ", depth)
	switch val := v.(type) {
	case *kvtree.Dict:
		for _, k := range val.Keys() {
			child, _ := val.Get(k)
			if leaf, ok := child.(kvtree.String); ok {
				fmt.Fprintf(b, "%s- **%s:** %s\n", pad, k, string(leaf))
			} else {
				fmt.Fprintf(b, "%s- **%s:**\n", pad, k)
				writeMarkdown(b, child, depth+1)
			}
		}
	case kvtree.List:
		for _, item := range val {
			writeMarkdown(b, item, depth)
		}
	case kvtree.String:
		fmt.Fprintf(b, "%s- %s\n", pad, string(val))
	}
}

// HTML converts the markdown rendering to HTML.
func HTML(d *kvtree.Dict) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(d)), &buf); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}
