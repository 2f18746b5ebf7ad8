// Package render produces human-readable views of a transformed structure:
// indented plain text, markdown, and HTML via goldmark.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/xmlgest/internal/kvtree"
	"github.com/dgallion1/xmlgest/internal/transform"
)

// Text pretty-prints the working structure. Each top-level parent name is
// printed capitalized as a header line; nested entries are indented one tab
// per level as "- key:" headers or "- key: value" leaves. List elements
// render at their container's indentation.
func Text(w io.Writer, d *kvtree.Dict) {
	for _, parent := range d.Keys() {
		fmt.Fprintf(w, "%s:\n", transform.Capitalize(parent))
		v, _ := d.Get(parent)
		writeText(w, v, 0)
	}
}

// TextString renders Text into a string.
func TextString(d *kvtree.Dict) string {
	var b strings.Builder
	Text(&b, d)
	return b.String()
}

func writeText(w io.Writer, v kvtree.Value, indent int) {
	switch val := v.(type) {
	case *kvtree.Dict:
		for _, k := range val.Keys() {
			child, _ := val.Get(k)
			if leaf, ok := child.(kvtree.String); ok {
				fmt.Fprintf(w, "%s- %s: %s\n", tabs(indent), k, string(leaf))
			} else {
				fmt.Fprintf(w, "%s- %s:\n", tabs(indent), k)
				writeText(w, child, indent+1)
			}
		}
	case kvtree.List:
		for _, item := range val {
			writeText(w, item, indent)
		}
	case kvtree.String:
		fmt.Fprintf(w, "%s- %s\n", tabs(indent), string(val))
	}
}

func tabs(n int) string {
	return strings.Repeat("\t", n)
}
