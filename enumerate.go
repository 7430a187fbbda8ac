package xcproj

import (
	"github.com/standardbeagle/xcproj/internal/object"
	"github.com/standardbeagle/xcproj/internal/pathresolve"
)

// EnumerateOptions controls EnumerateChildProjects' traversal. Deep and
// Once are given distinct bits so they can be combined freely.
type EnumerateOptions uint8

const (
	// Deep recurses into each visited child's own projectReferences,
	// not just this project's direct children.
	Deep EnumerateOptions = 1 << 0
	// Once deduplicates visits by canonical URL across the whole walk,
	// including across recursive Deep traversal.
	Once EnumerateOptions = 1 << 1
)

// EnumerateChildProjects visits every project referenced by this
// project's PBXProject.projectReferences, narrowed by an optional
// doublestar glob pattern matched against each child's path relative to
// this project's directory (an empty pattern matches everything). visit
// may return false to stop the walk early; a non-nil error from opening
// a referenced child project aborts the walk and is returned.
func (p *Project) EnumerateChildProjects(pattern string, opts EnumerateOptions, visit func(child *Project) bool) error {
	seen := map[string]bool{}
	_, err := p.enumerateChildProjects(pattern, opts, seen, visit)
	return err
}

func (p *Project) enumerateChildProjects(pattern string, opts EnumerateOptions, seen map[string]bool, visit func(*Project) bool) (cont bool, err error) {
	urls, err := p.childProjectURLs()
	if err != nil {
		return true, err
	}

	for _, cp := range pathresolve.FilterChildProjects(p.dir, urls, pattern) {
		canonical := pathresolve.Canonicalize(cp.URL)
		if opts&Once != 0 {
			if seen[canonical] {
				continue
			}
			seen[canonical] = true
		}

		child, err := Open(cp.URL)
		if err != nil {
			return true, err
		}
		if !visit(child) {
			return false, nil
		}

		if opts&Deep != 0 {
			more, err := child.enumerateChildProjects(pattern, opts, seen, visit)
			if err != nil {
				return true, err
			}
			if !more {
				return false, nil
			}
		}
	}
	return true, nil
}

// childProjectURLs reads the root PBXProject's projectReferences array
// (entries shaped { ProductGroup = <ref>; ProjectRef = <ref>; }) and
// resolves each ProjectRef PBXFileReference to an absolute .xcodeproj
// URL.
func (p *Project) childProjectURLs() ([]string, error) {
	proj, ok := p.rootProject()
	if !ok {
		return nil, nil
	}
	v, ok := proj.Content.Get("projectReferences")
	if !ok {
		return nil, nil
	}
	arr, ok := v.(*object.Array)
	if !ok {
		return nil, nil
	}

	var urls []string
	for i := 0; i < arr.Len(); i++ {
		entry, ok := arr.At(i).(*object.Dictionary)
		if !ok {
			continue
		}
		refVal, ok := entry.Get("ProjectRef")
		if !ok {
			continue
		}
		lit, ok := refVal.(object.Literal)
		if !ok {
			continue
		}
		target, alive := lit.Target()
		if !alive {
			continue
		}
		res := pathresolve.ResolveFileReferencePath(p.dir, target)
		if res.Resolved {
			urls = append(urls, res.URL)
		}
	}
	return urls, nil
}
