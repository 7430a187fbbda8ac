package object

import (
	"sync"

	"github.com/standardbeagle/xcproj/internal/errors"
)

// hookFactory constructs the Hooks for one isa.
type hookFactory func() Hooks

var (
	registryMu sync.RWMutex
	registry   = map[string]hookFactory{}
)

// RegisterHooks registers a Hooks constructor for isa. Intended to be
// called from init() by subtype packages. Re-registering an isa replaces
// the previous constructor.
func RegisterHooks(isa string, factory hookFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[isa] = factory
}

func hooksFor(isa string) Hooks {
	registryMu.RLock()
	factory, ok := registry[isa]
	registryMu.RUnlock()
	if !ok {
		return noHooks{}
	}
	return factory()
}

func init() {
	RegisterHooks("PBXBuildFile", func() Hooks { return &buildFileHooks{} })
	RegisterHooks("PBXGroup", func() Hooks { return &groupHooks{} })
	RegisterHooks("PBXVariantGroup", func() Hooks { return &groupHooks{} })
	RegisterHooks("PBXFileReference", func() Hooks { return &fileReferenceHooks{} })
}

// Create constructs an Object with id and content. content["isa"] must be
// present and match id's intended type; if missing, Create fails per
// spec's "missing isa when building an object" error.
func Create(id string, content *Dictionary) (*Object, error) {
	isaVal, ok := content.Get("isa")
	if !ok {
		return nil, errors.NewCreateError("", "content missing isa")
	}
	isaLit, ok := isaVal.(Literal)
	if !ok {
		return nil, errors.NewCreateError("", "isa value is not a literal")
	}
	isa := isaLit.String()
	return newObject(isa, id, content, hooksFor(isa)), nil
}
