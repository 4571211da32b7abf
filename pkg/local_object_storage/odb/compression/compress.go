package compression

import (
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/nspcc-dev/gitodb/pkg/local_object_storage/odb/common"
)

// NewReader returns a decompressing stream over r. Any failure of the
// decompressor (including a malformed stream header detected here) is
// reported as common.ErrCorruptObject, errors of r already marked with
// common.ErrIO are passed as is. Closing the result does not close r.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		if errors.Is(err, common.ErrIO) {
			return nil, err
		}
		return nil, common.Corrupt(fmt.Errorf("zlib header: %w", err))
	}
	return &reader{zr: zr}, nil
}

type reader struct {
	zr io.ReadCloser
}

// Read implements io.Reader. io.EOF and common.ErrIO are passed through
// untouched, other errors are wrapped into common.ErrCorruptObject.
func (x *reader) Read(p []byte) (int, error) {
	n, err := x.zr.Read(p)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, common.ErrIO) {
		err = common.Corrupt(fmt.Errorf("decompress: %w", err))
	}
	return n, err
}

// Close releases decompressor state.
func (x *reader) Close() error {
	return x.zr.Close()
}
