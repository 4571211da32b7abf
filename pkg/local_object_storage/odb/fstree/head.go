package fstree

import (
	"bufio"
	"fmt"

	"github.com/nspcc-dev/gitodb/pkg/local_object_storage/odb/compression"
	"github.com/nspcc-dev/gitodb/pkg/local_object_storage/odb/object"
)

// Head returns an object's header from the storage without reading the
// payload. The payload is not validated, use Check for that.
func (t *FSTree) Head(id string) (object.Header, error) {
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

	hdr, err := object.ReadHeader(bufio.NewReaderSize(zr, object.MaxHeaderLen))
	if err != nil {
		return hdr, fmt.Errorf("read header of object %s: %w", id, err)
	}

	return hdr, nil
}
