package transform

import (
	"github.com/dgallion1/xmlgest/internal/kvtree"
	"github.com/dgallion1/xmlgest/internal/xmltree"
)

// Extract builds the working structure from a parsed document. For each
// requested parent name the first descendant in document order whose
// namespace-stripped tag matches is converted into a nested dict. Parents
// absent from the document are omitted without error.
//
// Sibling children sharing a stripped tag overwrite each other; the last one
// wins. Repeated elements are not collected into lists.
func Extract(root *xmltree.Element, parents []string) *kvtree.Dict {
	out := kvtree.NewDict()
	if root == nil {
		return out
	}
	for _, parent := range parents {
		if el := findFirst(root, parent); el != nil {
			out.Set(parent, buildDict(el))
		}
	}
	return out
}

// findFirst walks the subtree rooted at el (the root included) and returns
// the first element whose stripped tag equals name.
func findFirst(el *xmltree.Element, name string) *xmltree.Element {
	if xmltree.StripNamespace(el.Tag) == name {
		return el
	}
	for _, child := range el.Children {
		if match := findFirst(child, name); match != nil {
			return match
		}
	}
	return nil
}

func buildDict(el *xmltree.Element) *kvtree.Dict {
	d := kvtree.NewDict()
	for _, child := range el.Children {
		tag := xmltree.StripNamespace(child.Tag)
		if len(child.Children) > 0 {
			d.Set(tag, buildDict(child))
		} else {
			d.Set(tag, kvtree.String(child.Text))
		}
	}
	return d
}
