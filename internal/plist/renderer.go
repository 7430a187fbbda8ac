package plist

import (
	"fmt"
	"strings"

	"github.com/standardbeagle/xcproj/internal/errors"
	"github.com/standardbeagle/xcproj/internal/linewriter"
	"github.com/standardbeagle/xcproj/internal/object"
)

// Render writes root as an ASCII property list, preceded by prologueLine
// (typically "// !$*UTF8*$!"; pass "" to omit it), per spec §4.5's
// depth-first dispatch over value kinds. Output always ends in a newline.
func Render(prologueLine string, root *object.Dictionary) (string, error) {
	w := linewriter.New()
	if prologueLine != "" {
		w.Append(prologueLine)
	}
	r := &renderer{w: w}
	if err := r.renderValueInline(root); err != nil {
		return "", err
	}
	return w.String(), nil
}

type renderer struct {
	w *linewriter.Writer
}

// renderValueInline writes v's first token onto whatever line is already
// open (a dict value follows " = " on the same line; an array element or
// a section entry's key starts fresh). Every value kind after the first
// token follows the nesting rules described by its own render* method.
func (r *renderer) renderValueInline(v object.Value) error {
	switch val := v.(type) {
	case object.Literal:
		r.w.Append(literalText(val))
		return nil
	case *object.Dictionary:
		return r.renderDictionary(val)
	case *object.Array:
		return r.renderArray(val)
	case *object.Object:
		return r.renderObject(val)
	case *object.Sections:
		return r.renderSections(val)
	default:
		return errors.NewRenderError(fmt.Sprintf("%T", v))
	}
}

func (r *renderer) renderDictionary(d *object.Dictionary) error {
	r.w.Append("{")
	r.w.IncreaseIndent()
	for i := 0; i < d.Len(); i++ {
		key, val := d.At(i)
		if err := r.renderEntry(key, val); err != nil {
			return err
		}
	}
	r.w.DecreaseIndent()
	r.w.Append("}")
	return nil
}

// renderEntry writes one "key = value;" line (or, in single-line mode,
// "key = value; " fragment of the current line).
func (r *renderer) renderEntry(key object.Literal, val object.Value) error {
	r.w.Append(literalText(key))
	r.w.SameLineNext()
	r.w.Append(" = ")
	r.w.SameLineNext()
	if err := r.renderValueInline(val); err != nil {
		return err
	}
	r.w.SameLineNext()
	r.w.Append(";")
	if r.w.InSingleLineMode() {
		r.w.SameLineNext()
		r.w.Append(" ")
	}
	return nil
}

func (r *renderer) renderArray(a *object.Array) error {
	r.w.Append("(")
	r.w.IncreaseIndent()
	for i := 0; i < a.Len(); i++ {
		if err := r.renderArrayElement(a.At(i)); err != nil {
			return err
		}
	}
	r.w.DecreaseIndent()
	r.w.Append(")")
	return nil
}

func (r *renderer) renderArrayElement(v object.Value) error {
	if err := r.renderValueInline(v); err != nil {
		return err
	}
	r.w.SameLineNext()
	r.w.Append(",")
	if r.w.InSingleLineMode() {
		r.w.SameLineNext()
		r.w.Append(" ")
	}
	return nil
}

// renderObject pushes single-line mode when the isa's hooks request it,
// renders content as an ordinary dictionary, then pops.
func (r *renderer) renderObject(o *object.Object) error {
	if o.RenderSingleLine() {
		r.w.PushSingleLine()
		defer r.w.PopSingleLine()
	}
	return r.renderDictionary(o.Content)
}

// renderSections writes the "objects" dictionary's pretty-printed form:
// each isa bucket framed by an unindented banner comment, with a blank
// line ahead of each "Begin" banner.
func (r *renderer) renderSections(secs *object.Sections) error {
	r.w.Append("{")
	r.w.IncreaseIndent()

	var err error
	secs.Each(func(isa string, sec *object.Section) bool {
		r.w.AppendRaw("")
		r.w.AppendRaw(fmt.Sprintf("/* Begin %s section */", isa))
		sec.Each(func(key object.Literal, obj *object.Object) bool {
			if e := r.renderEntry(key, obj); e != nil {
				err = e
				return false
			}
			return true
		})
		if err != nil {
			return false
		}
		r.w.AppendRaw(fmt.Sprintf("/* End %s section */", isa))
		return true
	})
	if err != nil {
		return err
	}

	r.w.DecreaseIndent()
	r.w.Append("}")
	return nil
}

// literalText renders a Literal as it appears in either a key or a value
// position: a ref's id plus its optional inline comment, or a plain
// string, quoted according to §4.5's unquoted-string rule.
func literalText(lit object.Literal) string {
	if lit.IsRef() {
		text := lit.String()
		if target, alive := lit.Target(); alive && !lit.Silent {
			if comment := target.RenderComment(); comment != "" {
				text += " /* " + comment + " */"
			}
		}
		return text
	}
	return quoteIfNeeded(lit.String())
}

func quoteIfNeeded(s string) string {
	if s != "" && isAllUnquoted(s) {
		return s
	}
	return quoteString(s)
}

func isAllUnquoted(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isUnquotedValueChar(s[i]) {
			return false
		}
	}
	return true
}

// quoteString double-quotes s, escaping the four characters §4.2 defines
// and replacing every non-ASCII rune with an "&#HHHH;" hex entity, the
// same transform the IDE itself applies.
func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			if r < 0x80 {
				sb.WriteRune(r)
			} else {
				fmt.Fprintf(&sb, "&#%04X;", r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
