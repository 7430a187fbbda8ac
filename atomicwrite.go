package xcproj

import (
	"os"
	"path/filepath"
)

// atomicWriteFile writes content to path by writing a sibling temp file
// and renaming it over path, so a reader never observes a partially
// written file and a crash mid-write never corrupts the original.
func atomicWriteFile(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".xcproj-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once the rename below succeeds

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
