package workspacexml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_S4_GroupContainerThenFileRefGroup(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<Workspace version="1.0">
   <Group location="container:sub">
      <FileRef location="group:a/b.xcodeproj"></FileRef>
   </Group>
</Workspace>`

	w, err := Parse("/ws", src)
	require.NoError(t, err)

	refs := w.ProjectReferences()
	require.Len(t, refs, 1)
	assert.Equal(t, "/ws/sub/a/b.xcodeproj", refs[0].URL)
}

func TestParse_ContainerAndAbsoluteFileRefs(t *testing.T) {
	src := `<Workspace version="1.0">
   <FileRef location="container:App.xcodeproj"></FileRef>
   <FileRef location="absolute:/abs/Lib.xcodeproj"></FileRef>
</Workspace>`

	w, err := Parse("/ws", src)
	require.NoError(t, err)

	ref, ok := w.Lookup("/ws/App.xcodeproj")
	require.True(t, ok)
	assert.Equal(t, "App.xcodeproj", ref.FilePath)

	ref2, ok := w.Lookup("/abs/Lib.xcodeproj")
	require.True(t, ok)
	assert.Equal(t, "/abs/Lib.xcodeproj", ref2.FilePath)
}

func TestParse_IgnoresNonProjectFileRefsAndUnknownChildren(t *testing.T) {
	src := `<Workspace version="1.0">
   <FileRef location="container:README.md"></FileRef>
   <SomeOtherTag location="container:x"></SomeOtherTag>
</Workspace>`
	w, err := Parse("/ws", src)
	require.NoError(t, err)
	assert.Empty(t, w.ProjectReferences())
}

func TestAppendFileRef_CreatesRootAndCachesEntry(t *testing.T) {
	w := New("/ws")
	ref := w.AppendFileRef("New.xcodeproj", false, 0)
	assert.Equal(t, "/ws/New.xcodeproj", ref.URL)

	got, ok := w.Lookup("/ws/New.xcodeproj")
	require.True(t, ok)
	assert.Same(t, ref, got)
}

func TestRemoveURL_DetachesNodeAndEvictsCache(t *testing.T) {
	w := New("/ws")
	w.AppendFileRef("A.xcodeproj", false, 0)
	assert.True(t, w.RemoveURL("/ws/A.xcodeproj"))
	_, ok := w.Lookup("/ws/A.xcodeproj")
	assert.False(t, ok)
}

func TestRender_RoundTripsThroughParse(t *testing.T) {
	w := New("/ws")
	w.AppendFileRef("App.xcodeproj", false, 0)
	rendered := w.Render()

	reparsed, err := Parse("/ws", rendered)
	require.NoError(t, err)
	_, ok := reparsed.Lookup("/ws/App.xcodeproj")
	assert.True(t, ok)
}

func TestRender_EscapesAttributesAndUsesThreeSpaceIndent(t *testing.T) {
	w := New("/ws")
	w.AppendFileRef(`a & b "c"`, false, 0)
	rendered := w.Render()
	assert.Contains(t, rendered, "&amp;")
	assert.Contains(t, rendered, "&quot;")
	assert.Contains(t, rendered, "\n   <FileRef")
}
