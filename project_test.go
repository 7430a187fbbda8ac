package xcproj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/xcproj/internal/object"
)

const fixtureSrc = `// !$*UTF8*$!
{
	archiveVersion = 1;
	objects = {

/* Begin PBXFileReference section */
		BBBBBBBBBBBBBBBBBBBBBBBB /* n */ = {
			isa = PBXFileReference;
			name = n;
			path = main.swift;
			sourceTree = "<group>";
		};
/* End PBXFileReference section */

/* Begin PBXBuildFile section */
		AAAAAAAAAAAAAAAAAAAAAAAA /* n */ = {isa = PBXBuildFile; fileRef = BBBBBBBBBBBBBBBBBBBBBBBB /* n */; };
/* End PBXBuildFile section */
	};
	rootObject = AAAAAAAAAAAAAAAAAAAAAAAA /* n */;
}
`

// TestScenario_S2 covers spec §8 S2: after load, AAAA.content["fileRef"]
// resolves to BBBB, and BBBB.referenced-by() contains AAAA.
func TestScenario_S2(t *testing.T) {
	proj, err := Parse("/repo/App.xcodeproj/project.pbxproj", fixtureSrc)
	require.NoError(t, err)

	aaaa, ok := proj.Object("AAAAAAAAAAAAAAAAAAAAAAAA")
	require.True(t, ok)
	bbbb, ok := proj.Object("BBBBBBBBBBBBBBBBBBBBBBBB")
	require.True(t, ok)

	refVal, ok := aaaa.Content.Get("fileRef")
	require.True(t, ok)
	refLit, ok := refVal.(object.Literal)
	require.True(t, ok)

	target, alive := refLit.Target()
	require.True(t, alive)
	assert.Same(t, bbbb, target)

	referrers := bbbb.ReferencedBy()
	require.Len(t, referrers, 1)
	assert.Same(t, aaaa, referrers[0])
}

// TestScenario_S3 covers spec §8 S3: removing BBBB clears AAAA's fileRef
// key and drops BBBB's section entry.
func TestScenario_S3(t *testing.T) {
	proj, err := Parse("/repo/App.xcodeproj/project.pbxproj", fixtureSrc)
	require.NoError(t, err)

	aaaa, _ := proj.Object("AAAAAAAAAAAAAAAAAAAAAAAA")
	bbbb, _ := proj.Object("BBBBBBBBBBBBBBBBBBBBBBBB")

	proj.RemoveObject(bbbb)

	_, hasRef := aaaa.Content.Get("fileRef")
	assert.False(t, hasRef)

	_, ok := proj.Object("BBBBBBBBBBBBBBBBBBBBBBBB")
	assert.False(t, ok)
}

// TestProject_RoundTrip_ByteIdenticalModuloTrailingNewline covers spec
// property 1.
func TestProject_RoundTrip_ByteIdenticalModuloTrailingNewline(t *testing.T) {
	proj, err := Parse("/repo/App.xcodeproj/project.pbxproj", fixtureSrc)
	require.NoError(t, err)

	rendered, err := proj.Content()
	require.NoError(t, err)

	assert.Equal(t, trimTrailingNewline(fixtureSrc), trimTrailingNewline(rendered))
}

func trimTrailingNewline(s string) string {
	for len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	return s
}

func TestProject_DerivedPaths(t *testing.T) {
	proj, err := Parse("/repo/App.xcodeproj/project.pbxproj", fixtureSrc)
	require.NoError(t, err)

	assert.Equal(t, "/repo/App.xcodeproj/project.pbxproj", proj.Path())
	assert.Equal(t, "/repo/App.xcodeproj", proj.BundlePath())
	assert.Equal(t, "/repo", proj.Directory())
	assert.Equal(t, "App", proj.Name())
}

func TestProject_CreateObjectSetObjectAndRemove(t *testing.T) {
	proj, err := Parse("/repo/App.xcodeproj/project.pbxproj", fixtureSrc)
	require.NoError(t, err)

	obj, err := proj.CreateObject("PBXFileReference", func(content *object.Dictionary) {
		content.SetString("path", object.NewLiteral("New.swift"))
	})
	require.NoError(t, err)

	found, ok := proj.Object(obj.ID(), "PBXFileReference")
	require.True(t, ok)
	assert.Same(t, obj, found)

	proj.RemoveObject(obj)
	_, ok = proj.Object(obj.ID())
	assert.False(t, ok)
}

// TestProperty_SectionBucketing covers spec property 7: every object in
// Sections[isa] has .isa == isa.
func TestProperty_SectionBucketing(t *testing.T) {
	proj, err := Parse("/repo/App.xcodeproj/project.pbxproj", fixtureSrc)
	require.NoError(t, err)

	for _, isa := range proj.Sections().Names() {
		sec, _ := proj.Sections().Section(isa)
		sec.Each(func(_ object.Literal, obj *object.Object) bool {
			assert.Equal(t, isa, obj.ISA())
			return true
		})
	}
}
