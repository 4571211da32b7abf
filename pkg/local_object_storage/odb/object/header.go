package object

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nspcc-dev/gitodb/pkg/local_object_storage/odb/common"
)

// MaxHeaderLen is the maximum header length including the terminating NUL.
// The longest tag ("commit") with a 19-digit size fits it several times.
const MaxHeaderLen = 64

// Header is a parsed "<kind> <size>\x00" prefix of a decompressed object.
type Header struct {
	Kind Kind
	// Size is the payload length declared by the header.
	Size uint64
}

// ReadHeader consumes the header from r up to and including the first NUL
// byte, the following byte is the first payload one. Kind is checked before
// the size, so objects of unknown kind fail with
// common.UnsupportedKindError regardless of the size field contents.
func ReadHeader(r io.ByteReader) (Header, error) {
	var buf = make([]byte, 0, MaxHeaderLen)

	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Header{}, common.Corruptf("header is not NUL-terminated (%d bytes read)", len(buf))
			}
			return Header{}, fmt.Errorf("read header: %w", err)
		}
		if b == 0 {
			break
		}
		if len(buf) == MaxHeaderLen-1 {
			return Header{}, common.Corruptf("header exceeds %d bytes", MaxHeaderLen)
		}
		buf = append(buf, b)
	}

	if !utf8.Valid(buf) {
		return Header{}, common.Corruptf("header is not valid UTF-8")
	}

	tag, size, ok := strings.Cut(string(buf), " ")
	if !ok {
		return Header{}, common.Corruptf("header missing recognized structure: %q", buf)
	}

	var (
		hdr Header
		err error
	)

	hdr.Kind, err = ParseKind(tag)
	if err != nil {
		return Header{}, err
	}

	hdr.Size, err = strconv.ParseUint(size, 10, 64)
	if err != nil {
		return Header{}, common.Corruptf("invalid size %q in header: %w", size, err)
	}
	if hdr.Size > math.MaxInt64 {
		return Header{}, common.Corruptf("size %d in header is too big", hdr.Size)
	}

	return hdr, nil
}
