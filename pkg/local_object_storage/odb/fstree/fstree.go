package fstree

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nspcc-dev/gitodb/pkg/local_object_storage/odb/common"
	"go.uber.org/zap"
)

// FSTree represents object storage as filesystem tree.
type FSTree struct {
	Info

	log *zap.Logger
}

// Info groups the information about file storage.
type Info struct {
	// Permission bits of the root directory.
	Permissions fs.FileMode

	// Full path to the root directory.
	RootPath string
}

const (
	// DirNameLen is how many characters of identifier are used to group
	// objects into directories.
	DirNameLen = 2

	// DefaultRootPath is a root directory used unless WithPath is given.
	DefaultRootPath = ".git"

	objectsDir = "objects"
	refsDir    = "refs"
	headFile   = "HEAD"
)

// New creates FSTree with the given options applied over the defaults.
func New(opts ...Option) *FSTree {
	f := &FSTree{
		Info: Info{
			Permissions: 0755,
			RootPath:    DefaultRootPath,
		},
		log: zap.NewNop(),
	}
	for i := range opts {
		opts[i](f)
	}

	return f
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}

// TreePath returns path to the file of the object with the given identifier:
// first DirNameLen characters name the directory inside the objects one,
// the rest is the file name. Identifier must be at least DirNameLen long and
// consist of hexadecimal digits only, otherwise common.ErrInvalidIdentifier
// is returned. The filesystem is not accessed.
func (t *FSTree) TreePath(id string) (string, error) {
	if len(id) < DirNameLen {
		return "", fmt.Errorf("%w: %q is shorter than %d characters", common.ErrInvalidIdentifier, id, DirNameLen)
	}
	if !isHex(id) {
		return "", fmt.Errorf("%w: %q is not hexadecimal", common.ErrInvalidIdentifier, id)
	}

	return filepath.Join(t.RootPath, objectsDir, id[:DirNameLen], id[DirNameLen:]), nil
}

// Open returns opened file of the object with the given identifier.
// Returns common.ErrNotFound if there is no such object and common.ErrIO
// for other filesystem failures.
func (t *FSTree) Open(id string) (*os.File, error) {
	p, err := t.TreePath(id)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", common.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: open %q: %w", common.ErrIO, p, err)
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: stat %q: %w", common.ErrIO, p, err)
	}
	if st.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", common.ErrNotFound, id)
	}

	return f, nil
}

// fileReader marks read failures of the object file with common.ErrIO so they
// are not confused with decompression errors.
type fileReader struct {
	f *os.File
}

func (x fileReader) Read(p []byte) (int, error) {
	n, err := x.f.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		err = fmt.Errorf("%w: read %q: %w", common.ErrIO, x.f.Name(), err)
	}
	return n, err
}
