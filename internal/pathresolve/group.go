package pathresolve

import (
	"strings"

	"github.com/standardbeagle/xcproj/internal/idgen"
	"github.com/standardbeagle/xcproj/internal/object"
)

// GroupFor implements §4.8's group-for(directory, create-intermediates):
// it searches every PBXGroup in sections for the one whose resolved URL
// is the longest prefix of directory. An exact match is returned as-is.
// Otherwise, when createIntermediates is true, the missing path suffix
// is created as a chain of new PBXGroup objects (sourceTree = "<group>"),
// each appended to its parent's children array and registered in
// sections; the new leaf group is returned. createIntermediates false
// with no exact match returns (nil, false).
func GroupFor(projectDir string, sections *object.Sections, mainGroupID string, directory string, createIntermediates bool) (*object.Object, bool) {
	best, bestURL := bestPrefixMatch(projectDir, sections, directory)
	if bestURL == canonicalize(directory) {
		return best, best != nil
	}
	if !createIntermediates {
		return nil, false
	}

	parent := best
	parentURL := bestURL
	if parent == nil {
		mainGroup, _, ok := sections.ObjectByID(mainGroupID)
		if !ok {
			return nil, false
		}
		parent = mainGroup
		parentURL = ResolveGroupPath(projectDir, mainGroup).URL
	}

	target := canonicalize(directory)
	suffix := strings.TrimPrefix(strings.TrimPrefix(target, parentURL), "/")
	if suffix == "" {
		return parent, true
	}

	for _, comp := range strings.Split(suffix, "/") {
		child := createChildGroup(parent, comp)
		sections.Put(child)
		parent = child
	}
	return parent, true
}

// bestPrefixMatch finds the PBXGroup (and its resolved URL) whose
// resolved URL is the longest prefix of directory's canonical form; nil
// if no group's URL is a prefix at all.
func bestPrefixMatch(projectDir string, sections *object.Sections, directory string) (*object.Object, string) {
	target := canonicalize(directory)
	sec, ok := sections.Section("PBXGroup")
	if !ok {
		return nil, ""
	}

	var best *object.Object
	bestURL := ""
	sec.Each(func(_ object.Literal, g *object.Object) bool {
		res := ResolveGroupPath(projectDir, g)
		if !res.Resolved {
			return true
		}
		if res.URL == target || strings.HasPrefix(target, res.URL+"/") {
			if len(res.URL) > len(bestURL) {
				best, bestURL = g, res.URL
			}
		}
		return true
	})
	return best, bestURL
}

func createChildGroup(parent *object.Object, pathComponent string) *object.Object {
	content := object.NewDictionary()
	content.SetString("isa", object.NewLiteral("PBXGroup"))
	content.SetString("children", object.NewArray())
	content.SetString("sourceTree", object.NewLiteral("<group>"))
	content.SetString("path", object.NewLiteral(pathComponent))

	child, err := object.Create(idgen.New(), content)
	if err != nil {
		panic("pathresolve: GroupFor built an invalid group: " + err.Error())
	}

	AppendChild(parent, child)
	return child
}

// AppendChild appends child's id as a non-silent ref onto parent's
// children array (so it renders with the child's inline comment, like
// every other children entry) and registers the back-reference. Exported so
// callers building new file references or groups directly (outside
// GroupFor's own creation path) can attach them the same way.
func AppendChild(parent *object.Object, child *object.Object) {
	v, ok := parent.Content.Get("children")
	arr, isArray := v.(*object.Array)
	if !ok || !isArray {
		arr = object.NewArray()
		parent.Content.SetString("children", arr)
	}
	arr.Append(object.NewRef(child.ID(), child, false))
	child.AddReference(parent)
}
