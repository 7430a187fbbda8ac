package pathresolve

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/hbollon/go-edlib"
	"github.com/standardbeagle/xcproj/internal/object"
)

// SearchFileReference implements Project.SearchFileReference: exact
// (case-sensitive) name match over every PBXFileReference in
// section-iteration order when fuzzy is false; otherwise the closest
// candidate under the §4.11 Levenshtein threshold.
func SearchFileReference(sections *object.Sections, name string, fuzzy bool) (*object.Object, bool) {
	return search(sections, "PBXFileReference", name, fuzzy)
}

// SearchGroup implements Project.SearchGroup, identical in shape to
// SearchFileReference but scoped to PBXGroup.
func SearchGroup(sections *object.Sections, name string, fuzzy bool) (*object.Object, bool) {
	return search(sections, "PBXGroup", name, fuzzy)
}

func search(sections *object.Sections, isa, name string, fuzzy bool) (*object.Object, bool) {
	sec, ok := sections.Section(isa)
	if !ok {
		return nil, false
	}

	if !fuzzy {
		var found *object.Object
		sec.Each(func(_ object.Literal, o *object.Object) bool {
			if displayName(o) == name {
				found = o
				return false
			}
			return true
		})
		return found, found != nil
	}

	threshold := max(2, len(name)/4)
	var best *object.Object
	bestDistance := threshold + 1
	sec.Each(func(_ object.Literal, o *object.Object) bool {
		d := edlib.LevenshteinDistance(displayName(o), name)
		if d <= threshold && d < bestDistance {
			best, bestDistance = o, d
		}
		return true
	})
	return best, best != nil
}

// displayName returns an object's "name" attribute, falling back to
// "path", matching the comment-rendering convention used throughout the
// graph (see nameOrPath in internal/object).
func displayName(o *object.Object) string {
	if name, ok := o.StringAttr("name"); ok {
		return name
	}
	path, _ := o.StringAttr("path")
	return path
}

// ChildProject pairs a referenced child project's resolved URL with the
// relative path EnumerateChildProjects glob-matches against.
type ChildProject struct {
	URL          string
	RelativePath string
}

// FilterChildProjects implements the glob-filtering half of §4.11's
// EnumerateChildProjects: baseDir anchors the relative paths matched
// against pattern. An empty pattern matches everything, preserving
// plain unfiltered enumeration.
func FilterChildProjects(baseDir string, urls []string, pattern string) []ChildProject {
	var out []ChildProject
	for _, url := range urls {
		rel := RelativePath(baseDir, url)
		if pattern == "" {
			out = append(out, ChildProject{URL: url, RelativePath: rel})
			continue
		}
		matched, err := doublestar.Match(pattern, rel)
		if err == nil && matched {
			out = append(out, ChildProject{URL: url, RelativePath: rel})
		}
	}
	return out
}
