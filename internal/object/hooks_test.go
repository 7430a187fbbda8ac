package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFileFixture(t *testing.T) (buildFile, fileRef, phase *Object) {
	t.Helper()

	fileRefContent := NewDictionary()
	fileRefContent.SetString("isa", NewLiteral("PBXFileReference"))
	fileRefContent.SetString("path", NewLiteral("Main.swift"))
	fr, err := Create("FILE", fileRefContent)
	require.NoError(t, err)

	bfContent := NewDictionary()
	bfContent.SetString("isa", NewLiteral("PBXBuildFile"))
	bfContent.SetString("fileRef", NewLiteral("FILE"))
	bf, err := Create("BILD", bfContent)
	require.NoError(t, err)

	phaseContent := NewDictionary()
	phaseContent.SetString("isa", NewLiteral("PBXSourcesBuildPhase"))
	phaseContent.SetString("files", NewArray(NewLiteral("BILD")))
	ph, err := Create("PHAS", phaseContent)
	require.NoError(t, err)

	objects := NewDictionary()
	objects.SetString("FILE", fr)
	objects.SetString("BILD", bf)
	objects.SetString("PHAS", ph)
	root := NewDictionary()
	root.SetString("objects", objects)

	flat := map[string]*Object{"FILE": fr, "BILD": bf, "PHAS": ph}
	lk := NewLinker(flat, []string{"FILE", "BILD", "PHAS"})
	lk.linkDictionary(root, nil, false)

	return bf, fr, ph
}

func TestBuildFileHooks_CachesPhaseAndRendersComment(t *testing.T) {
	bf, _, ph := buildFileFixture(t)

	assert.True(t, bf.RenderSingleLine())
	assert.Equal(t, "Main.swift in Sources", bf.RenderComment())

	hooks := bf.hooks.(*buildFileHooks)
	assert.Same(t, ph, hooks.Parent())
}

func TestFileReferenceHooks_RenderCommentUsesPathWhenNoName(t *testing.T) {
	_, fr, _ := buildFileFixture(t)
	assert.Equal(t, "Main.swift", fr.RenderComment())
	assert.False(t, fr.RenderSingleLine())
}

func TestGroupHooks_CachesParentGroup(t *testing.T) {
	childContent := NewDictionary()
	childContent.SetString("isa", NewLiteral("PBXGroup"))
	child, err := Create("CHLD", childContent)
	require.NoError(t, err)

	parentContent := NewDictionary()
	parentContent.SetString("isa", NewLiteral("PBXGroup"))
	parentContent.SetString("name", NewLiteral("Sources"))
	parentContent.SetString("children", NewArray(NewLiteral("CHLD")))
	parent, err := Create("PRNT", parentContent)
	require.NoError(t, err)

	objects := NewDictionary()
	objects.SetString("CHLD", child)
	objects.SetString("PRNT", parent)
	root := NewDictionary()
	root.SetString("objects", objects)

	flat := map[string]*Object{"CHLD": child, "PRNT": parent}
	lk := NewLinker(flat, []string{"CHLD", "PRNT"})
	lk.linkDictionary(root, nil, false)

	hooks := child.hooks.(*groupHooks)
	assert.Same(t, parent, hooks.Parent())
	assert.Equal(t, "Sources", parent.RenderComment())
}
