package xcproj

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/standardbeagle/xcproj/internal/errors"
	"github.com/standardbeagle/xcproj/internal/idgen"
	"github.com/standardbeagle/xcproj/internal/object"
	"github.com/standardbeagle/xcproj/internal/plist"
)

// pbxprojFileName is the fixed name of a project's property-list file
// inside its .xcodeproj bundle.
const pbxprojFileName = "project.pbxproj"

// prologueLine is the UTF-8 marker comment every project.pbxproj opens
// with.
const prologueLine = "// !$*UTF8*$!"

// Project is a loaded project.pbxproj object graph: a root Dictionary
// whose "objects" entry is a Sections container once linking completes,
// plus the bundle/directory/name paths derived from where it was opened.
type Project struct {
	path       string // path to project.pbxproj itself
	bundlePath string // path to the enclosing .xcodeproj directory
	dir        string // directory containing the .xcodeproj bundle
	name       string // bundle name, without the .xcodeproj extension

	root     *object.Dictionary
	sections *object.Sections
}

// Open loads a Project from either a directory path ending in
// ".xcodeproj" or the path to its project.pbxproj file directly.
func Open(path string) (*Project, error) {
	_, pbxprojPath := resolveProjectPaths(path)
	data, err := os.ReadFile(pbxprojPath)
	if err != nil {
		return nil, err
	}
	return Parse(pbxprojPath, string(data))
}

func resolveProjectPaths(path string) (bundlePath, pbxprojPath string) {
	if strings.HasSuffix(path, pbxprojFileName) {
		return filepath.Dir(path), path
	}
	return path, filepath.Join(path, pbxprojFileName)
}

// Parse builds a Project from already-read source text. path anchors the
// derived bundle/directory/name and every relative path resolution the
// project performs afterward (GroupFor, SearchFileReference, and so on);
// it need not exist on disk, which lets Parse build a Project over a
// fixture string in tests.
func Parse(path, src string) (*Project, error) {
	root, err := plist.Parse(src)
	if err != nil {
		return nil, err
	}
	sections, err := linkRoot(root)
	if err != nil {
		return nil, err
	}
	root.SetString("objects", sections)

	bundlePath := filepath.Dir(path)
	return &Project{
		path:       path,
		bundlePath: bundlePath,
		dir:        filepath.Dir(bundlePath),
		name:       strings.TrimSuffix(filepath.Base(bundlePath), filepath.Ext(bundlePath)),
		root:       root,
		sections:   sections,
	}, nil
}

// linkRoot implements the objectify-then-link pipeline of spec §4.3: the
// plist parser returns "objects" as a plain Dictionary of id -> raw
// content Dictionary; each entry is turned into an Object first (so the
// linker's Object case can track ownership correctly when it recurses),
// then the whole root is linked and bucketed into Sections.
func linkRoot(root *object.Dictionary) (*object.Sections, error) {
	rawVal, ok := root.Get("objects")
	if !ok {
		return nil, errors.NewParseError(errors.KindLink, 0, 0, 0, "an \"objects\" dictionary", "")
	}
	rawDict, ok := rawVal.(*object.Dictionary)
	if !ok {
		return nil, errors.NewParseError(errors.KindLink, 0, 0, 0, "\"objects\" to be a dictionary", fmt.Sprintf("%T", rawVal))
	}

	flat := make(map[string]*object.Object, rawDict.Len())
	orderedIDs := make([]string, 0, rawDict.Len())
	for i := 0; i < rawDict.Len(); i++ {
		key, val := rawDict.At(i)
		if key.IsRef() {
			return nil, errors.NewParseError(errors.KindLink, 0, 0, 0, "a string key in \"objects\"", key.String())
		}
		content, ok := val.(*object.Dictionary)
		if !ok {
			return nil, errors.NewParseError(errors.KindLink, 0, 0, 0, "a dictionary value in \"objects\"", fmt.Sprintf("%T", val))
		}
		obj, err := object.Create(key.String(), content)
		if err != nil {
			return nil, err
		}
		rawDict.Set(key, obj)
		flat[key.String()] = obj
		orderedIDs = append(orderedIDs, key.String())
	}

	linker := object.NewLinker(flat, orderedIDs)
	return linker.Link(root), nil
}

// Path returns the project.pbxproj file path this Project was loaded
// from (or constructed with).
func (p *Project) Path() string { return p.path }

// BundlePath returns the enclosing .xcodeproj directory.
func (p *Project) BundlePath() string { return p.bundlePath }

// Directory returns the directory containing the .xcodeproj bundle,
// the anchor for SOURCE_ROOT-relative paths.
func (p *Project) Directory() string { return p.dir }

// Name returns the bundle name with the .xcodeproj extension stripped.
func (p *Project) Name() string { return p.name }

// Sections returns the project's linked object sections, for callers
// that need direct graph access beyond the convenience methods below.
func (p *Project) Sections() *object.Sections { return p.sections }

// Root returns the project's root Dictionary.
func (p *Project) Root() *object.Dictionary { return p.root }

// Content renders the project back to its ASCII property-list text.
func (p *Project) Content() (string, error) {
	return plist.Render(prologueLine, p.root)
}

// Write renders the project and replaces its source file (or, if to is
// given and non-empty, that path instead) atomically.
func (p *Project) Write(to ...string) error {
	content, err := p.Content()
	if err != nil {
		return err
	}
	target := p.path
	if len(to) > 0 && to[0] != "" {
		target = to[0]
	}
	return atomicWriteFile(target, content)
}

// Object looks up an object by id, optionally scoped to a specific isa
// section (pass "" or omit to search every section).
func (p *Project) Object(id string, isa ...string) (*object.Object, bool) {
	if len(isa) > 0 && isa[0] != "" {
		sec, ok := p.sections.Section(isa[0])
		if !ok {
			return nil, false
		}
		return sec.Get(id)
	}
	obj, _, ok := p.sections.ObjectByID(id)
	return obj, ok
}

// CreateObject constructs a new object of the given isa, assigns it a
// fresh id, lets populate fill in its remaining attributes (content
// order follows the order populate calls Dictionary.Set in, since
// callers, not a map, control it), and registers it in the project's
// sections. Go has no per-isa object type to parametrize a generic
// constructor over, so the isa tag plus an attribute-population callback
// plays that role instead.
func (p *Project) CreateObject(isa string, populate func(content *object.Dictionary)) (*object.Object, error) {
	content := object.NewDictionary()
	content.SetString("isa", object.NewLiteral(isa))
	if populate != nil {
		populate(content)
	}
	obj, err := object.Create(idgen.New(), content)
	if err != nil {
		return nil, err
	}
	p.sections.Put(obj)
	return obj, nil
}

// SetObject registers obj (already constructed, e.g. by CreateObject or
// moved in from another project) into this project's sections.
func (p *Project) SetObject(obj *object.Object) {
	p.sections.Put(obj)
}

// RemoveObject deletes obj from the graph and purges every reference to
// it elsewhere, per spec §4.6.
func (p *Project) RemoveObject(obj *object.Object) {
	object.Remove(p.sections, obj)
}

// rootProject returns the PBXProject object named by the root
// dictionary's "rootObject" entry, if the ref resolves.
func (p *Project) rootProject() (*object.Object, bool) {
	v, ok := p.root.Get("rootObject")
	if !ok {
		return nil, false
	}
	lit, ok := v.(object.Literal)
	if !ok {
		return nil, false
	}
	return lit.Target()
}

// mainGroup returns the PBXProject's mainGroup object, if resolvable.
func (p *Project) mainGroup() (*object.Object, bool) {
	proj, ok := p.rootProject()
	if !ok {
		return nil, false
	}
	v, ok := proj.Content.Get("mainGroup")
	if !ok {
		return nil, false
	}
	lit, ok := v.(object.Literal)
	if !ok {
		return nil, false
	}
	return lit.Target()
}
