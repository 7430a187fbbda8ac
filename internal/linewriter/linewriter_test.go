package linewriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppend_MultiLineIndents(t *testing.T) {
	w := New()
	w.Append("{")
	w.IncreaseIndent()
	w.Append("foo = bar;")
	w.DecreaseIndent()
	w.Append("}")
	assert.Equal(t, "{\n\tfoo = bar;\n}\n", w.String())
}

func TestAppend_SingleLineModeDoesNotFlush(t *testing.T) {
	w := New()
	w.Append("{")
	w.PushSingleLine()
	w.Append(" foo = bar; ")
	w.Append("baz = qux; ")
	w.Append("}")
	w.PopSingleLine()
	assert.Equal(t, "{ foo = bar; baz = qux; }\n", w.String())
}

func TestSameLineNext_ContinuesCurrentLine(t *testing.T) {
	w := New()
	w.Append("foo")
	w.SameLineNext()
	w.Append(" = bar;")
	assert.Equal(t, "foo = bar;\n", w.String())
}

func TestAppendRaw_NoIndent(t *testing.T) {
	w := New()
	w.IncreaseIndent()
	w.Append("{")
	w.AppendRaw("/* Begin X section */")
	w.Append("}")
	assert.Equal(t, "\t{\n/* Begin X section */\n\t}\n", w.String())
}

func TestDecreaseIndent_BelowZeroPanics(t *testing.T) {
	w := New()
	assert.Panics(t, func() { w.DecreaseIndent() })
}

func TestPopSingleLine_BelowZeroPanics(t *testing.T) {
	w := New()
	assert.Panics(t, func() { w.PopSingleLine() })
}

func TestLines_IncludesPartialLine(t *testing.T) {
	w := New()
	w.Append("abc")
	assert.Equal(t, []string{"abc"}, w.Lines())
}

func TestNewWithIndent_UsesCustomUnit(t *testing.T) {
	w := NewWithIndent("   ")
	w.Append("<Workspace>")
	w.IncreaseIndent()
	w.Append("<FileRef/>")
	w.DecreaseIndent()
	w.Append("</Workspace>")
	assert.Equal(t, "<Workspace>\n   <FileRef/>\n</Workspace>\n", w.String())
}
