// Package linewriter implements a buffered, indented text emitter. It is the
// one piece of mutable state the plist and workspace-XML renderers need to
// express the IDE's exact formatting rules as local decisions.
package linewriter

import "strings"

const defaultIndentUnit = "\t"

// Writer accumulates indented lines. The zero value is not usable; call
// New or NewWithIndent.
type Writer struct {
	indentUnit  string
	indent      int
	current     strings.Builder
	lines       []string
	singleLine  int  // >0 means single-line mode
	sameLineNow bool // one-shot: next Append continues the current line
}

// New returns an empty Writer using a single tab as its indent unit, the
// property-list rendering convention.
func New() *Writer {
	return &Writer{indentUnit: defaultIndentUnit}
}

// NewWithIndent returns an empty Writer using unit as its indent string,
// for formats like the workspace XML renderer that indent by three
// spaces instead of a tab.
func NewWithIndent(unit string) *Writer {
	return &Writer{indentUnit: unit}
}

// Append writes s according to the current mode. In multi-line mode (the
// default) it flushes the current partial line, starts a fresh one
// prefixed by indent*unit, then writes s. In single-line mode, or when the
// one-shot same-line flag is set, s is appended to the current line
// without flushing. The one-shot flag is cleared either way.
func (w *Writer) Append(s string) {
	if w.singleLine > 0 || w.sameLineNow {
		w.current.WriteString(s)
		w.sameLineNow = false
		return
	}
	w.flush()
	w.current.WriteString(strings.Repeat(w.indentUnit, w.indent))
	w.current.WriteString(s)
}

// AppendRaw flushes the current line, then emits s verbatim as its own
// line with no indentation. Used for section banner comments.
func (w *Writer) AppendRaw(s string) {
	w.flush()
	w.lines = append(w.lines, s)
}

// SameLineNext sets the one-shot flag so the next Append continues the
// current line instead of starting a new one.
func (w *Writer) SameLineNext() {
	w.sameLineNow = true
}

// IncreaseIndent increases the indent depth by one.
func (w *Writer) IncreaseIndent() {
	w.indent++
}

// DecreaseIndent decreases the indent depth by one. Decreasing below zero
// is a contract violation and panics, matching the line writer's role as
// an internal renderer primitive, not a public validating API.
func (w *Writer) DecreaseIndent() {
	if w.indent == 0 {
		panic("linewriter: DecreaseIndent below zero")
	}
	w.indent--
}

// PushSingleLine enters single-line mode (nestable via a counter).
func (w *Writer) PushSingleLine() {
	w.singleLine++
}

// PopSingleLine leaves one level of single-line mode. Popping below zero
// is a contract violation and panics.
func (w *Writer) PopSingleLine() {
	if w.singleLine == 0 {
		panic("linewriter: PopSingleLine below zero")
	}
	w.singleLine--
}

// InSingleLineMode reports whether single-line mode is currently active.
func (w *Writer) InSingleLineMode() bool {
	return w.singleLine > 0
}

func (w *Writer) flush() {
	if w.current.Len() > 0 {
		w.lines = append(w.lines, w.current.String())
		w.current.Reset()
	}
}

// Lines returns the completed lines plus the current partial line if it is
// non-empty.
func (w *Writer) Lines() []string {
	out := append([]string(nil), w.lines...)
	if w.current.Len() > 0 {
		out = append(out, w.current.String())
	}
	return out
}

// String joins Lines with newlines and a trailing newline, matching the
// on-disk convention that rendered output always ends with \n.
func (w *Writer) String() string {
	lines := w.Lines()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
