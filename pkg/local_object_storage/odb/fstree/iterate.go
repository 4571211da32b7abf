package fstree

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Iterate calls f for each object identifier found in the storage in
// lexicographical order. Entries which can not be object files (pack
// directory, temporary files, etc.) are skipped. Iteration stops on the
// first error returned by f.
func (t *FSTree) Iterate(f func(id string) error) error {
	root := filepath.Join(t.RootPath, objectsDir)

	dirs, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read dir %q: %w", root, err)
	}

	for _, d := range dirs {
		if !d.IsDir() || len(d.Name()) != DirNameLen || !isHex(d.Name()) {
			continue
		}

		p := filepath.Join(root, d.Name())

		files, err := os.ReadDir(p)
		if err != nil {
			return fmt.Errorf("read dir %q: %w", p, err)
		}

		for _, file := range files {
			if !file.Type().IsRegular() || !isHex(file.Name()) {
				continue
			}

			if err := f(d.Name() + file.Name()); err != nil {
				return err
			}
		}
	}

	return nil
}
