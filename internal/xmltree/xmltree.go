// Package xmltree parses XML documents into a generic element tree. It is the
// collaborator the transform pipeline extracts from: tags, trimmed text and
// ordered children, nothing else. Attributes are discarded.
package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// ErrEmptyDocument is returned when the input contains no root element.
var ErrEmptyDocument = errors.New("xml document has no root element")

// Element is a parsed XML element. Tag carries the namespace URI in
// "{uri}local" form when the element is namespaced. An element is either a
// leaf with text or a container of children.
type Element struct {
	Tag      string
	Text     string
	Children []*Element
}

// Parse decodes an XML document into an element tree. Character data is
// trimmed of surrounding whitespace. Non-UTF-8 documents are decoded through
// the charset reader from golang.org/x/net.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Tag: qualifiedTag(t.Name)}
			if len(stack) == 0 {
				// Keep the first root; anything after it is discarded.
				if root == nil {
					root = el
				}
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			if text := strings.TrimSpace(string(t)); text != "" {
				cur := stack[len(stack)-1]
				if cur.Text != "" {
					cur.Text += " "
				}
				cur.Text += text
			}
		}
	}

	if root == nil {
		return nil, ErrEmptyDocument
	}
	return root, nil
}

// ParseString decodes an XML document held in a string.
func ParseString(s string) (*Element, error) {
	return Parse(strings.NewReader(s))
}

func qualifiedTag(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return "{" + n.Space + "}" + n.Local
}

// StripNamespace removes a leading "{uri}" namespace qualifier from a tag,
// matching up to the first closing brace. Tags without a qualifier are
// returned unchanged.
func StripNamespace(tag string) string {
	if strings.HasPrefix(tag, "{") {
		if i := strings.IndexByte(tag, '}'); i >= 0 {
			return tag[i+1:]
		}
	}
	return tag
}
