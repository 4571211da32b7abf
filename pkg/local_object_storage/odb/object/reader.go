package object

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/nspcc-dev/gitodb/pkg/local_object_storage/odb/common"
)

// maxTrailingCount limits the number of trailing bytes counted for the error
// message, the rest of the stream is not read.
const maxTrailingCount = 64 << 10

// Reader provides access to the payload of a single object read from the
// decompressed stream. Payload reads never go beyond the size declared in
// the header.
type Reader struct {
	src     *bufio.Reader
	hdr     Header
	payload io.LimitedReader
}

// NewReader reads the object header from r and returns Reader positioned at
// the first payload byte.
func NewReader(r io.Reader) (*Reader, error) {
	src := bufio.NewReader(r)

	hdr, err := ReadHeader(src)
	if err != nil {
		return nil, err
	}

	return &Reader{
		src: src,
		hdr: hdr,
		payload: io.LimitedReader{
			R: src,
			N: int64(hdr.Size),
		},
	}, nil
}

// Header returns parsed object header.
func (x *Reader) Header() Header {
	return x.hdr
}

// Read implements io.Reader. It returns io.EOF once declared payload size is
// reached or the underlying stream ends, whichever comes first.
func (x *Reader) Read(p []byte) (int, error) {
	return x.payload.Read(p)
}

// Verify checks that the payload has been read completely and matches the
// declared size exactly: the stream must neither end before the declared
// size nor contain anything after it. Verify MUST be called after Read
// returned io.EOF.
func (x *Reader) Verify() error {
	if x.payload.N > 0 {
		return common.Corruptf("payload is %d bytes, header declares %d",
			x.hdr.Size-uint64(x.payload.N), x.hdr.Size)
	}

	_, err := x.src.ReadByte()
	if err == nil {
		n, err := io.Copy(io.Discard, io.LimitReader(x.src, maxTrailingCount))
		if err != nil {
			return common.Corruptf("trailing data after %d-byte payload (at least %d bytes)", x.hdr.Size, n+1)
		}
		if n == maxTrailingCount {
			return common.Corruptf("more than %d trailing bytes after %d-byte payload", maxTrailingCount, x.hdr.Size)
		}
		return common.Corruptf("%d trailing bytes after %d-byte payload", n+1, x.hdr.Size)
	}
	if !errors.Is(err, io.EOF) {
		return fmt.Errorf("probe end of stream: %w", err)
	}

	return nil
}

// Copy decodes object from decompressed stream r and writes its payload to w.
// Object is valid only if Copy returns no error; payload bytes are written
// as they are read, so w may have received data even if an error is returned.
func Copy(w io.Writer, r io.Reader) (Header, error) {
	or, err := NewReader(r)
	if err != nil {
		return Header{}, err
	}

	return or.Header(), copyPayload(w, or)
}

// copyPayload dispatches on the object kind. Every Kind returned by ParseKind
// must have a case here, others are rejected.
func copyPayload(w io.Writer, r *Reader) error {
	switch r.hdr.Kind {
	case KindBlob:
		return copyBlob(w, r)
	default:
		return common.UnsupportedKindError{Kind: r.hdr.Kind.String()}
	}
}

func copyBlob(w io.Writer, r *Reader) error {
	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("copy blob payload: %w", err)
	}
	return r.Verify()
}
