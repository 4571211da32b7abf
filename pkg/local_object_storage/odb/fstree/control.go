package fstree

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nspcc-dev/gitodb/pkg/util"
	"go.uber.org/zap"
)

// DefaultHead is written to HEAD of the newly initialized storage.
const DefaultHead = "ref: refs/heads/main\n"

// Init creates an empty storage: root directory with objects and refs
// subdirectories and HEAD pointing to the main branch. Unlike MkdirAll, Init
// fails if any of these already exists.
func (t *FSTree) Init() error {
	for _, dir := range []string{
		t.RootPath,
		filepath.Join(t.RootPath, objectsDir),
		filepath.Join(t.RootPath, refsDir),
	} {
		if err := util.MkdirX(dir, t.Permissions); err != nil {
			return fmt.Errorf("mkdir %q: %w", dir, err)
		}
	}

	p := filepath.Join(t.RootPath, headFile)

	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, t.Permissions&0666)
	if err != nil {
		return fmt.Errorf("create %q: %w", p, err)
	}

	_, err = f.WriteString(DefaultHead)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %q: %w", p, err)
	}

	t.log.Debug("storage initialized", zap.String("path", t.RootPath))

	return nil
}
