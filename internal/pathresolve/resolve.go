// Package pathresolve implements §4.8's group and file-reference path
// resolution: walking a group's ancestor chain through the sourceTree
// anchor table, canonicalizing filesystem locations, deriving relative
// paths between them, and locating (or creating) the group that owns a
// given directory.
package pathresolve

import (
	"path/filepath"
	"strings"

	"github.com/standardbeagle/xcproj/internal/object"
)

// Resolution is the outcome of walking an object's group chain: a
// project-relative location string, and — when the anchor chain bottoms
// out somewhere the filesystem can actually name — an absolute URL.
// BUILT_PRODUCTS_DIR, SDKROOT, and DEVELOPER_DIR locations are build-time
// variables Xcode itself resolves, so no absolute URL is derivable
// ahead of time; Resolved is false for those.
type Resolution struct {
	Location string
	URL      string
	Resolved bool
}

// ResolveGroupPath walks g's ancestor chain per §4.8 and returns its
// resolved location.
func ResolveGroupPath(projectDir string, g *object.Object) Resolution {
	return resolve(projectDir, g)
}

// ResolveFileReferencePath seeds the same walk with f's own path and
// sourceTree, continuing into its owning group (if any) exactly as
// ResolveGroupPath does for a plain group.
func ResolveFileReferencePath(projectDir string, f *object.Object) Resolution {
	return resolve(projectDir, f)
}

func resolve(projectDir string, start *object.Object) Resolution {
	var components []string
	cur := start
	for cur != nil {
		sourceTree, _ := cur.StringAttr("sourceTree")
		if path, ok := cur.StringAttr("path"); ok && path != "" {
			components = append([]string{path}, components...)
		}

		switch sourceTree {
		case "BUILT_PRODUCTS_DIR":
			return Resolution{Location: "$(BUILT_PRODUCTS_DIR)/" + join(components)}
		case "SDKROOT":
			return Resolution{Location: "/" + join(components)}
		case "DEVELOPER_DIR":
			return Resolution{Location: "$(DEVELOPER_DIR)/" + join(components)}
		case "SOURCE_ROOT":
			loc := join(components)
			return Resolution{Location: loc, URL: canonicalize(joinPath(projectDir, loc)), Resolved: true}
		case "<absolute>":
			loc := "/" + join(components)
			return Resolution{Location: loc, URL: canonicalize(loc), Resolved: true}
		default:
			// "<group>", empty, or any other value: pass through to parent.
			cur = cur.Parent()
		}
	}
	loc := join(components)
	return Resolution{Location: loc, URL: canonicalize(joinPath(projectDir, loc)), Resolved: true}
}

func join(components []string) string {
	return strings.Join(components, "/")
}

func joinPath(a, b string) string {
	if b == "" {
		return a
	}
	if a == "" {
		return b
	}
	return strings.TrimRight(a, "/") + "/" + strings.TrimLeft(b, "/")
}

// Canonicalize resolves symlinks, falling back to textual resolution of
// "." and ".." when the path does not exist on disk (a brand-new group's
// target directory, for instance).
func Canonicalize(p string) string {
	if p == "" {
		return p
	}
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	return filepath.Clean(p)
}

// canonicalize is the package-internal spelling used by the rest of this
// package's call sites.
func canonicalize(p string) string { return Canonicalize(p) }

// RelativePath derives the relative path from base to target, per §4.8:
// canonicalize both, drop the common prefix, emit ".." for each
// remaining base component, then target's remaining components.
func RelativePath(base, target string) string {
	baseParts := splitClean(canonicalize(base))
	targetParts := splitClean(canonicalize(target))

	i := 0
	for i < len(baseParts) && i < len(targetParts) && baseParts[i] == targetParts[i] {
		i++
	}

	var out []string
	for range baseParts[i:] {
		out = append(out, "..")
	}
	out = append(out, targetParts[i:]...)
	return strings.Join(out, "/")
}

func splitClean(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
