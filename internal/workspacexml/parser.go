package workspacexml

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/standardbeagle/xcproj/internal/errors"
)

// ParseElement parses src into its root Element. It uses the standard
// library decoder token-by-token, which never fetches external DTDs or
// entities (Go's encoding/xml has no such resolution path at all), so
// the "external-entity loading disabled" requirement holds without any
// extra configuration. Entity is set to an empty map, so no named entity
// beyond XML's five predefined ones is recognised.
func ParseElement(src string) (*Element, error) {
	dec := xml.NewDecoder(strings.NewReader(src))
	dec.Entity = map[string]string{}

	var stack []*Element
	var root *Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapXMLError(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) > 0 {
				stack[len(stack)-1].AppendChild(el)
			} else if root == nil {
				root = el
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, errors.NewParseError(errors.KindParseWorkspace, 0, 0, 0, "matching start tag", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, errors.NewParseError(errors.KindParseWorkspace, 0, 0, 0, "root element", "")
	}
	return root, nil
}

func wrapXMLError(err error) error {
	return errors.NewParseError(errors.KindParseWorkspace, 0, 0, 0, "well-formed XML", err.Error()).WithUnderlying(err)
}
