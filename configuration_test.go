package xcproj

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/xcproj/internal/xcconfig"
)

func writeFixtureFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOpenConfiguration_ResolvesIncludesAndReadsValues(t *testing.T) {
	dir := t.TempDir()
	writeFixtureFile(t, dir, "B.xcconfig", "K = b\nL = b\n")
	aPath := writeFixtureFile(t, dir, "A.xcconfig", "#include \"B.xcconfig\"\nK = a\n")

	cfg, err := OpenConfiguration(aPath, true)
	require.NoError(t, err)
	assert.Equal(t, aPath, cfg.Path())

	v, ok := cfg.ValueForKey("K", "*", "*", "*")
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, v)

	v, ok = cfg.ValueForKey("L", "*", "*", "*")
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, v)
}

func TestOpenConfiguration_IncludesFalseKeepsLineButDoesNotResolve(t *testing.T) {
	dir := t.TempDir()
	writeFixtureFile(t, dir, "B.xcconfig", "K = b\n")
	aPath := writeFixtureFile(t, dir, "A.xcconfig", "#include \"B.xcconfig\"\n")

	cfg, err := OpenConfiguration(aPath, false)
	require.NoError(t, err)

	lines := cfg.Lines()
	require.GreaterOrEqual(t, len(lines), 1)
	assert.Equal(t, xcconfig.KindInclude, lines[0].Kind)

	_, ok := cfg.ValueForKey("K", "*", "*", "*")
	assert.False(t, ok)
}

func TestConfiguration_AppendLineRebuildsTreeAndContent(t *testing.T) {
	dir := t.TempDir()
	aPath := writeFixtureFile(t, dir, "A.xcconfig", "K = a\n")

	cfg, err := OpenConfiguration(aPath, true)
	require.NoError(t, err)

	cfg.AppendLine(xcconfig.Line{
		Kind:       xcconfig.KindConfig,
		Key:        "NEW",
		Conditions: xcconfig.Conditions{Config: "*", SDK: "*", Arch: "*"},
		Values:     []string{"v"},
	})

	v, ok := cfg.ValueForKey("NEW", "*", "*", "*")
	require.True(t, ok)
	assert.Equal(t, []string{"v"}, v)
	assert.Contains(t, cfg.Content(), "NEW = v")
}

func TestConfiguration_WriteAtomicallyReplacesFile(t *testing.T) {
	dir := t.TempDir()
	aPath := writeFixtureFile(t, dir, "A.xcconfig", "K = a\n")

	cfg, err := OpenConfiguration(aPath, true)
	require.NoError(t, err)

	cfg.AppendLine(xcconfig.Line{
		Kind:       xcconfig.KindConfig,
		Key:        "NEW",
		Conditions: xcconfig.Conditions{Config: "*", SDK: "*", Arch: "*"},
		Values:     []string{"v"},
	})
	require.NoError(t, cfg.Write())

	data, err := os.ReadFile(aPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "NEW = v")
}

func TestConfiguration_WriteToAlternatePath(t *testing.T) {
	dir := t.TempDir()
	aPath := writeFixtureFile(t, dir, "A.xcconfig", "K = a\n")
	otherPath := filepath.Join(dir, "Other.xcconfig")

	cfg, err := OpenConfiguration(aPath, true)
	require.NoError(t, err)
	require.NoError(t, cfg.Write(otherPath))

	data, err := os.ReadFile(otherPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "K = a")

	_, err = os.ReadFile(aPath)
	require.NoError(t, err)
}
