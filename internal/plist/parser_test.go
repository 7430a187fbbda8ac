package plist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/xcproj/internal/errors"
	"github.com/standardbeagle/xcproj/internal/object"
	"github.com/standardbeagle/xcproj/internal/scanner"
)

func TestParse_SimpleDictWithArray(t *testing.T) {
	src := `{ foo = bar; baz = "qu ux"; arr = ( a, "b c", ); }`
	d, err := Parse(src)
	require.NoError(t, err)

	foo, ok := d.Get("foo")
	require.True(t, ok)
	assert.Equal(t, "bar", foo.(object.Literal).String())

	baz, ok := d.Get("baz")
	require.True(t, ok)
	assert.Equal(t, "qu ux", baz.(object.Literal).String())

	arrVal, ok := d.Get("arr")
	require.True(t, ok)
	arr := arrVal.(*object.Array)
	require.Equal(t, 2, arr.Len())
	assert.Equal(t, "a", arr.At(0).(object.Literal).String())
	assert.Equal(t, "b c", arr.At(1).(object.Literal).String())
}

func TestParse_SkipsPrologueAndComments(t *testing.T) {
	src := "// !$*UTF8*$!\n{ /* leading */ a = 1 /* trailing */ ; }"
	d, err := Parse(src)
	require.NoError(t, err)
	v, ok := d.Get("a")
	require.True(t, ok)
	assert.Equal(t, "1", v.(object.Literal).String())
}

func TestParse_QuotedKeyAndEscapes(t *testing.T) {
	src := `{ "with space" = "a\nb\t\"c\\d"; }`
	d, err := Parse(src)
	require.NoError(t, err)
	v, ok := d.Get("with space")
	require.True(t, ok)
	assert.Equal(t, "a\nb\t\"c\\d", v.(object.Literal).String())
}

func TestParse_NestedDictAndArray(t *testing.T) {
	src := `{ children = ( { isa = X; name = "n"; }, ); }`
	d, err := Parse(src)
	require.NoError(t, err)
	arrVal, _ := d.Get("children")
	arr := arrVal.(*object.Array)
	require.Equal(t, 1, arr.Len())
	inner := arr.At(0).(*object.Dictionary)
	nameVal, ok := inner.Get("name")
	require.True(t, ok)
	assert.Equal(t, "n", nameVal.(object.Literal).String())
}

func TestParse_MissingRootDictionaryIsFatal(t *testing.T) {
	_, err := Parse("not a dict at all !!!")
	require.Error(t, err)
	var pe *errors.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, errors.KindParsePlist, pe.Kind)
}

func TestParse_UnterminatedQuoteReportsContext(t *testing.T) {
	_, err := Parse(`{ a = "unterminated`)
	require.Error(t, err)
	var pe *errors.ParseError
	require.ErrorAs(t, err, &pe)
	assert.ErrorIs(t, err, scanner.ErrUnterminatedQuote)
}

func TestParse_MissingTrailingSemicolonIsError(t *testing.T) {
	_, err := Parse(`{ a = 1 }`)
	require.Error(t, err)
}

func TestParse_MissingTrailingCommaIsError(t *testing.T) {
	_, err := Parse(`{ a = ( 1 2 ); }`)
	require.Error(t, err)
}
