package xcproj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workspaceFixtureSrc = `<?xml version="1.0" encoding="UTF-8"?>
<Workspace version="1.0">
   <FileRef location="container:App.xcodeproj"></FileRef>
   <FileRef location="group:Pods/Pods.xcodeproj"></FileRef>
</Workspace>`

func TestParseWorkspace_DerivesBundlePathAndReferences(t *testing.T) {
	ws, err := ParseWorkspace("/repo/App.xcworkspace/contents.xcworkspacedata", workspaceFixtureSrc)
	require.NoError(t, err)

	assert.Equal(t, "/repo/App.xcworkspace/contents.xcworkspacedata", ws.Path())
	assert.Equal(t, "/repo/App.xcworkspace", ws.BundlePath())

	refs := ws.ProjectReferences()
	require.Len(t, refs, 2)
	assert.Equal(t, "/repo/App.xcodeproj", refs[0].URL)
	assert.Equal(t, "/repo/Pods/Pods.xcodeproj", refs[1].URL)
}

func TestWorkspace_LookupAppendRemove(t *testing.T) {
	ws, err := ParseWorkspace("/repo/App.xcworkspace/contents.xcworkspacedata", workspaceFixtureSrc)
	require.NoError(t, err)

	_, ok := ws.Lookup("/repo/App.xcodeproj")
	require.True(t, ok)

	added := ws.AppendProjectReference("/abs/Lib.xcodeproj", true, 0)
	assert.Equal(t, "/abs/Lib.xcodeproj", added.URL)

	_, ok = ws.Lookup("/abs/Lib.xcodeproj")
	require.True(t, ok)

	removed := ws.RemoveProjectReference("/repo/App.xcodeproj")
	assert.True(t, removed)
	_, ok = ws.Lookup("/repo/App.xcodeproj")
	assert.False(t, ok)
}

func TestWorkspace_ContentRoundTripsThroughParseWorkspace(t *testing.T) {
	ws, err := ParseWorkspace("/repo/App.xcworkspace/contents.xcworkspacedata", workspaceFixtureSrc)
	require.NoError(t, err)

	rendered := ws.Content()
	reparsed, err := ParseWorkspace("/repo/App.xcworkspace/contents.xcworkspacedata", rendered)
	require.NoError(t, err)

	assert.Len(t, reparsed.ProjectReferences(), 2)
}

func TestNewWorkspace_EmptyThenAppend(t *testing.T) {
	ws := NewWorkspace("/repo/New.xcworkspace")
	assert.Equal(t, "/repo/New.xcworkspace/contents.xcworkspacedata", ws.Path())
	assert.Equal(t, "/repo/New.xcworkspace", ws.BundlePath())

	ref := ws.AppendProjectReference("App.xcodeproj", false, 0)
	assert.Equal(t, "/repo/App.xcodeproj", ref.URL)
}

func TestResolveWorkspacePaths_AcceptsBundleOrDataFile(t *testing.T) {
	bundlePath, filePath := resolveWorkspacePaths("/repo/App.xcworkspace")
	assert.Equal(t, "/repo/App.xcworkspace", bundlePath)
	assert.Equal(t, "/repo/App.xcworkspace/contents.xcworkspacedata", filePath)

	bundlePath, filePath = resolveWorkspacePaths("/repo/App.xcworkspace/contents.xcworkspacedata")
	assert.Equal(t, "/repo/App.xcworkspace", bundlePath)
	assert.Equal(t, "/repo/App.xcworkspace/contents.xcworkspacedata", filePath)
}
