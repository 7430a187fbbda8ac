package workspacexml

import (
	"fmt"
	"strings"

	"github.com/standardbeagle/xcproj/internal/linewriter"
)

const xmlPrologue = `<?xml version="1.0" encoding="UTF-8"?>`

// Render writes the workspace's XML tree, using a three-space indent
// unit per §4.7. Every element, including childless ones, gets its own
// closing line; there is no self-closing-tag shorthand.
func (w *Workspace) Render() string {
	lw := linewriter.NewWithIndent("   ")
	lw.Append(xmlPrologue)
	if w.root != nil {
		renderElement(lw, w.root)
	}
	return lw.String()
}

func renderElement(lw *linewriter.Writer, e *Element) {
	lw.Append(openTag(e))
	lw.IncreaseIndent()
	for _, child := range e.Children {
		renderElement(lw, child)
	}
	lw.DecreaseIndent()
	lw.Append(fmt.Sprintf("</%s>", e.Name))
}

func openTag(e *Element) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(e.Name)
	for _, a := range e.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(` = "`)
		sb.WriteString(escapeAttr(a.Value))
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	return sb.String()
}

// escapeAttr escapes the five XML-significant characters and replaces
// every non-ASCII rune with an "&#HHHH;" hex entity, per §4.7.
func escapeAttr(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '\'':
			sb.WriteString("&apos;")
		case '"':
			sb.WriteString("&quot;")
		default:
			if r < 0x80 {
				sb.WriteRune(r)
			} else {
				fmt.Fprintf(&sb, "&#%04X;", r)
			}
		}
	}
	return sb.String()
}
