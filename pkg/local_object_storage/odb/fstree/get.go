package fstree

import (
	"fmt"
	"io"

	"github.com/nspcc-dev/gitodb/pkg/local_object_storage/odb/compression"
	"github.com/nspcc-dev/gitodb/pkg/local_object_storage/odb/object"
	"go.uber.org/zap"
)

// Get decodes the object with the given identifier and writes its payload to
// w. The object is valid only if no error is returned; see object.Copy for
// the guarantees.
func (t *FSTree) Get(id string, w io.Writer) (object.Header, error) {
	f, err := t.Open(id)
	if err != nil {
		return object.Header{}, err
	}
	defer f.Close()

	zr, err := compression.NewReader(fileReader{f})
	if err != nil {
		return object.Header{}, fmt.Errorf("decompress %q: %w", f.Name(), err)
	}
	defer zr.Close()

	hdr, err := object.Copy(w, zr)
	if err != nil {
		return hdr, fmt.Errorf("decode object %s: %w", id, err)
	}

	t.log.Debug("object read",
		zap.String("id", id),
		zap.Stringer("kind", hdr.Kind),
		zap.Uint64("size", hdr.Size))

	return hdr, nil
}

// Check fully decodes the object with the given identifier discarding its
// payload.
func (t *FSTree) Check(id string) error {
	_, err := t.Get(id, io.Discard)
	return err
}
