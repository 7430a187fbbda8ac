package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemove_PurgesReferencesAndSection(t *testing.T) {
	root, flat, order := buildRaw(t)
	lk := NewLinker(flat, order)
	secs := lk.Link(root)

	aaaa := flat["AAAA"]
	bbbb := flat["BBBB"]

	Remove(secs, bbbb)

	_, stillHasRef := aaaa.Content.Get("ref")
	assert.False(t, stillHasRef, "AAAA.content no longer contains the ref key")

	_, found := secs.Section("Y")
	assert.False(t, found, "section Y (now empty) was dropped")

	_, stillThere := secs.ObjectByID("BBBB")
	assert.False(t, stillThere)
}

func TestRemove_IsIdempotent(t *testing.T) {
	root, flat, order := buildRaw(t)
	lk := NewLinker(flat, order)
	secs := lk.Link(root)

	bbbb := flat["BBBB"]
	Remove(secs, bbbb)
	assert.NotPanics(t, func() { Remove(secs, bbbb) })
}

func TestRemove_PurgesArrayOccurrences(t *testing.T) {
	childContent := NewDictionary()
	childContent.SetString("isa", NewLiteral("PBXFileReference"))
	child, err := Create("CHLD", childContent)
	require.NoError(t, err)

	groupContent := NewDictionary()
	groupContent.SetString("isa", NewLiteral("PBXGroup"))
	groupContent.SetString("children", NewArray(NewLiteral("CHLD")))
	group, err := Create("GRUP", groupContent)
	require.NoError(t, err)

	objects := NewDictionary()
	objects.SetString("CHLD", child)
	objects.SetString("GRUP", group)
	root := NewDictionary()
	root.SetString("objects", objects)

	flat := map[string]*Object{"CHLD": child, "GRUP": group}
	lk := NewLinker(flat, []string{"CHLD", "GRUP"})
	secs := lk.Link(root)

	childrenVal, _ := group.Content.Get("children")
	arr := childrenVal.(*Array)
	require.Equal(t, 1, arr.Len())

	Remove(secs, child)

	childrenVal, _ = group.Content.Get("children")
	arr = childrenVal.(*Array)
	assert.Equal(t, 0, arr.Len())
}

func TestRemove_WalksOwnContentToClearForwardReferences(t *testing.T) {
	root, flat, order := buildRaw(t)
	lk := NewLinker(flat, order)
	secs := lk.Link(root)

	aaaa := flat["AAAA"]
	bbbb := flat["BBBB"]
	require.Len(t, bbbb.ReferencedBy(), 1)

	Remove(secs, aaaa)

	assert.Empty(t, bbbb.ReferencedBy(), "BBBB no longer lists removed AAAA as a referrer")
}
