package xcproj

import (
	"fmt"

	"github.com/standardbeagle/xcproj/internal/idgen"
	"github.com/standardbeagle/xcproj/internal/object"
	"github.com/standardbeagle/xcproj/internal/pathresolve"
)

// CreateFileReference builds a new PBXFileReference for path, anchored by
// sourceTree (one of the recognized anchors, typically "<group>" or
// "SOURCE_ROOT"), registers it in the project's sections, and, when
// parent is non-nil, appends it to parent's children array the same way
// GroupFor's intermediate groups are attached.
func (p *Project) CreateFileReference(path, sourceTree string, parent *object.Object) (*object.Object, error) {
	content := object.NewDictionary()
	content.SetString("isa", object.NewLiteral("PBXFileReference"))
	content.SetString("sourceTree", object.NewLiteral(sourceTree))
	content.SetString("path", object.NewLiteral(path))

	ref, err := object.Create(idgen.New(), content)
	if err != nil {
		return nil, err
	}
	p.sections.Put(ref)
	if parent != nil {
		pathresolve.AppendChild(parent, ref)
	}
	return ref, nil
}

// CreateGroup builds a new PBXGroup named/pathed name, registers it, and
// appends it as a child of parent (or the project's mainGroup, if parent
// is nil).
func (p *Project) CreateGroup(name string, parent *object.Object) (*object.Object, error) {
	if parent == nil {
		main, ok := p.mainGroup()
		if !ok {
			return nil, fmt.Errorf("xcproj: project %s has no resolvable mainGroup", p.name)
		}
		parent = main
	}

	content := object.NewDictionary()
	content.SetString("isa", object.NewLiteral("PBXGroup"))
	content.SetString("children", object.NewArray())
	content.SetString("sourceTree", object.NewLiteral("<group>"))
	content.SetString("path", object.NewLiteral(name))

	group, err := object.Create(idgen.New(), content)
	if err != nil {
		return nil, err
	}
	p.sections.Put(group)
	pathresolve.AppendChild(parent, group)
	return group, nil
}

// GroupFor implements spec §4.8's group-for(directory, create-intermediates).
func (p *Project) GroupFor(directory string, createIntermediates bool) (*object.Object, bool) {
	main, ok := p.mainGroup()
	mainGroupID := ""
	if ok {
		mainGroupID = main.ID()
	}
	return pathresolve.GroupFor(p.dir, p.sections, mainGroupID, directory, createIntermediates)
}

// ResolveGroupPath resolves a group's path per spec §4.8.
func (p *Project) ResolveGroupPath(g *object.Object) pathresolve.Resolution {
	return pathresolve.ResolveGroupPath(p.dir, g)
}

// ResolveFileReferencePath resolves a file reference's path per spec
// §4.8.
func (p *Project) ResolveFileReferencePath(f *object.Object) pathresolve.Resolution {
	return pathresolve.ResolveFileReferencePath(p.dir, f)
}

// SearchFileReference searches every PBXFileReference for name, exact or
// fuzzy per §4.11.
func (p *Project) SearchFileReference(name string, fuzzy bool) (*object.Object, bool) {
	return pathresolve.SearchFileReference(p.sections, name, fuzzy)
}

// SearchGroup searches every PBXGroup for name, exact or fuzzy per §4.11.
func (p *Project) SearchGroup(name string, fuzzy bool) (*object.Object, bool) {
	return pathresolve.SearchGroup(p.sections, name, fuzzy)
}
