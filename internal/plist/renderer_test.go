package plist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/xcproj/internal/object"
)

func TestScenario_S1_MutateArrayThenRender(t *testing.T) {
	src := `{ foo = bar; baz = "qu ux"; arr = ( a, "b c", ); }`
	d, err := Parse(src)
	require.NoError(t, err)

	arrVal, _ := d.Get("arr")
	arr := arrVal.(*object.Array)
	arr.RemoveWhere(func(v object.Value) bool {
		return v.(object.Literal).String() == "b c"
	})

	out, err := Render("", d)
	require.NoError(t, err)
	assert.Equal(t, "{\n\tfoo = bar;\n\tbaz = \"qu ux\";\n\tarr = (\n\t\ta,\n\t);\n}\n", out)
}

func TestRender_QuotesNonBareStrings(t *testing.T) {
	d := object.NewDictionary()
	d.SetString("plain", object.NewLiteral("abc_123.swift"))
	d.SetString("spaced", object.NewLiteral("has space"))
	d.SetString("empty", object.NewLiteral(""))
	d.SetString("nonascii", object.NewLiteral("π"))

	out, err := Render("", d)
	require.NoError(t, err)
	assert.Contains(t, out, "plain = abc_123.swift;")
	assert.Contains(t, out, `spaced = "has space";`)
	assert.Contains(t, out, `empty = "";`)
	assert.Contains(t, out, `nonascii = "&#03C0;"`)
}

func TestRender_PrologueLinePrecedesRootDict(t *testing.T) {
	d := object.NewDictionary()
	d.SetString("a", object.NewLiteral("1"))
	out, err := Render("// !$*UTF8*$!", d)
	require.NoError(t, err)
	assert.Equal(t, "// !$*UTF8*$!\n{\n\ta = 1;\n}\n", out)
}

func TestRenderParseRoundTrip_UnquotingLaw(t *testing.T) {
	for _, s := range []string{"", "foo", "has space", `a"b`, "π"} {
		d := object.NewDictionary()
		d.SetString("v", object.NewLiteral(s))
		rendered, err := Render("", d)
		require.NoError(t, err)

		reparsed, err := Parse(rendered)
		require.NoError(t, err)
		got, ok := reparsed.Get("v")
		require.True(t, ok)
		assert.Equal(t, s, got.(object.Literal).String())
	}
}
