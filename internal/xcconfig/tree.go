package xcconfig

import "sort"

// Content is what the tree stores at one (config, sdk, arch, key)
// coordinate: the resolved value cluster and the Configuration that
// contributed it (useful for diagnostics; the owning Configuration might
// be this one directly, or an include reached through overlay).
type Content struct {
	Owner  *Configuration
	Values []string
}

// Tree is the four-level (config, sdk, arch, key) map described by
// §4.10. All three condition dimensions default to "*" and are matched
// literally, never as wildcards.
type Tree struct {
	data map[string]map[string]map[string]map[string]Content
}

func newTree() *Tree {
	return &Tree{data: map[string]map[string]map[string]map[string]Content{}}
}

func (t *Tree) set(c Conditions, key string, content Content) {
	sdkMap, ok := t.data[c.Config]
	if !ok {
		sdkMap = map[string]map[string]map[string]Content{}
		t.data[c.Config] = sdkMap
	}
	archMap, ok := sdkMap[c.SDK]
	if !ok {
		archMap = map[string]map[string]Content{}
		sdkMap[c.SDK] = archMap
	}
	keyMap, ok := archMap[c.Arch]
	if !ok {
		keyMap = map[string]Content{}
		archMap[c.Arch] = keyMap
	}
	keyMap[key] = content
}

// each walks every stored entry; iteration order is unspecified, which is
// fine here because overlay is driven by line order at the call site,
// not by tree-walk order.
func (t *Tree) each(fn func(c Conditions, key string, content Content)) {
	for config, sdkMap := range t.data {
		for sdk, archMap := range sdkMap {
			for arch, keyMap := range archMap {
				for key, content := range keyMap {
					fn(Conditions{Config: config, SDK: sdk, Arch: arch}, key, content)
				}
			}
		}
	}
}

// ValueForKey implements value-for-key(key, config, sdk, arch): a direct
// lookup at the given coordinate, with no wildcard expansion.
func (t *Tree) ValueForKey(key, config, sdk, arch string) ([]string, bool) {
	keyMap, ok := t.keyMapAt(config, sdk, arch)
	if !ok {
		return nil, false
	}
	content, ok := keyMap[key]
	if !ok {
		return nil, false
	}
	return content.Values, true
}

// Keys enumerates, in sorted order for determinism, every key resolved
// at (config, sdk, arch).
func (t *Tree) Keys(config, sdk, arch string) []string {
	keyMap, ok := t.keyMapAt(config, sdk, arch)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(keyMap))
	for k := range keyMap {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (t *Tree) keyMapAt(config, sdk, arch string) (map[string]Content, bool) {
	sdkMap, ok := t.data[config]
	if !ok {
		return nil, false
	}
	archMap, ok := sdkMap[sdk]
	if !ok {
		return nil, false
	}
	keyMap, ok := archMap[arch]
	if !ok {
		return nil, false
	}
	return keyMap, true
}

// Remove deletes key at the given coordinate, cascading: an emptied arch
// layer is dropped, then an emptied sdk layer, then an emptied config
// layer. Reports whether anything was removed.
func (t *Tree) Remove(key, config, sdk, arch string) bool {
	sdkMap, ok := t.data[config]
	if !ok {
		return false
	}
	archMap, ok := sdkMap[sdk]
	if !ok {
		return false
	}
	keyMap, ok := archMap[arch]
	if !ok {
		return false
	}
	if _, ok := keyMap[key]; !ok {
		return false
	}
	delete(keyMap, key)
	if len(keyMap) == 0 {
		delete(archMap, arch)
	}
	if len(archMap) == 0 {
		delete(sdkMap, sdk)
	}
	if len(sdkMap) == 0 {
		delete(t.data, config)
	}
	return true
}
