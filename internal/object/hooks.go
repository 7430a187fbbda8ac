package object

// parentCache is embedded by subtypes whose spec-mandated behavior is to
// remember the most recent object that referenced them (a build file's
// owning build phase; a group child's owning group).
type parentCache struct {
	parent *Object
}

func (p *parentCache) OnAddedReference(_ *Object, from *Object) {
	if from != nil {
		p.parent = from
	}
}

func (p *parentCache) OnRemovedReference(_ *Object, from *Object) {
	if from != nil && p.parent == from {
		p.parent = nil
	}
}

// Parent returns the cached referrer, or nil if none or it was removed.
func (p *parentCache) Parent() *Object {
	if p.parent != nil && p.parent.removed {
		return nil
	}
	return p.parent
}

// nameOrPath returns content["name"] if set, else content["path"], else "".
func nameOrPath(o *Object) string {
	if v, ok := o.Content.Get("name"); ok {
		if lit, ok := v.(Literal); ok {
			return lit.String()
		}
	}
	if v, ok := o.Content.Get("path"); ok {
		if lit, ok := v.(Literal); ok {
			return lit.String()
		}
	}
	return ""
}

// fileReferenceHooks implements PBXFileReference/PBXVariantGroup-adjacent
// behavior: cache the owning group, comment with the file's name or path.
type fileReferenceHooks struct {
	parentCache
}

func (h *fileReferenceHooks) RenderComment(o *Object) string { return nameOrPath(o) }
func (h *fileReferenceHooks) RenderSingleLine(*Object) bool  { return false }

// groupHooks implements PBXGroup/PBXVariantGroup behavior: cache the
// owning parent group, comment with the group's name or path.
type groupHooks struct {
	parentCache
}

func (h *groupHooks) RenderComment(o *Object) string { return nameOrPath(o) }
func (h *groupHooks) RenderSingleLine(*Object) bool  { return false }

// buildFileHooks implements PBXBuildFile behavior: cache the owning build
// phase, comment combining the referenced file's name and the phase's
// name ("Main.swift in Sources"), and always render on one line, matching
// the IDE's own formatting of build-file entries.
type buildFileHooks struct {
	parentCache
}

func (h *buildFileHooks) RenderSingleLine(*Object) bool { return true }

func (h *buildFileHooks) RenderComment(o *Object) string {
	fileName := ""
	if v, ok := o.Content.Get("fileRef"); ok {
		if lit, ok := v.(Literal); ok {
			if target, alive := lit.Target(); alive {
				fileName = target.RenderComment()
			}
		}
	}
	phaseName := ""
	if phase := h.Parent(); phase != nil {
		phaseName = phaseDisplayName(phase.ISA())
	}
	switch {
	case fileName != "" && phaseName != "":
		return fileName + " in " + phaseName
	case fileName != "":
		return fileName
	default:
		return phaseName
	}
}

// phaseDisplayName maps a PBX*BuildPhase isa to the short label the IDE
// uses in build-file comments.
func phaseDisplayName(isa string) string {
	switch isa {
	case "PBXSourcesBuildPhase":
		return "Sources"
	case "PBXFrameworksBuildPhase":
		return "Frameworks"
	case "PBXResourcesBuildPhase":
		return "Resources"
	case "PBXHeadersBuildPhase":
		return "Headers"
	case "PBXCopyFilesBuildPhase":
		return "CopyFiles"
	case "PBXShellScriptBuildPhase":
		return "ShellScript"
	default:
		return ""
	}
}
