package object

import (
	"bufio"
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/nspcc-dev/gitodb/pkg/local_object_storage/odb/common"
	"github.com/stretchr/testify/require"
)

type failingReader struct {
	r   io.Reader
	err error
}

func (x *failingReader) Read(p []byte) (int, error) {
	n, err := x.r.Read(p)
	if errors.Is(err, io.EOF) {
		err = x.err
	}
	return n, err
}

func TestCopy(t *testing.T) {
	t.Run("blob", func(t *testing.T) {
		var out bytes.Buffer

		hdr, err := Copy(&out, strings.NewReader("blob 5\x00hello"))
		require.NoError(t, err)
		require.Equal(t, Header{Kind: KindBlob, Size: 5}, hdr)
		require.Equal(t, "hello", out.String())
	})

	t.Run("empty blob", func(t *testing.T) {
		var out bytes.Buffer

		hdr, err := Copy(&out, strings.NewReader("blob 0\x00"))
		require.NoError(t, err)
		require.Zero(t, hdr.Size)
		require.Zero(t, out.Len())
	})

	t.Run("payload with NUL bytes", func(t *testing.T) {
		var out bytes.Buffer

		_, err := Copy(&out, strings.NewReader("blob 3\x00\x00a\x00"))
		require.NoError(t, err)
		require.Equal(t, "\x00a\x00", out.String())
	})

	t.Run("random sizes", func(t *testing.T) {
		for _, size := range []int{1, 4095, 4096, 4097, 1 << 20} {
			t.Run(fmt.Sprint(size), func(t *testing.T) {
				payload := make([]byte, size)
				_, _ = rand.Read(payload)

				var in, out bytes.Buffer
				fmt.Fprintf(&in, "blob %d\x00", size)
				in.Write(payload)

				hdr, err := Copy(&out, &in)
				require.NoError(t, err)
				require.EqualValues(t, out.Len(), hdr.Size)
				require.Equal(t, payload, out.Bytes())
			})
		}
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := Copy(io.Discard, strings.NewReader("blob 5\x00hell"))
		require.ErrorIs(t, err, common.ErrCorruptObject)
		require.ErrorContains(t, err, "payload is 4 bytes, header declares 5")
	})

	t.Run("trailing bytes", func(t *testing.T) {
		_, err := Copy(io.Discard, strings.NewReader("blob 5\x00helloX"))
		require.ErrorIs(t, err, common.ErrCorruptObject)
		require.ErrorContains(t, err, "1 trailing bytes")

		_, err = Copy(io.Discard, strings.NewReader("blob 0\x00hello"))
		require.ErrorIs(t, err, common.ErrCorruptObject)
		require.ErrorContains(t, err, "5 trailing bytes")
	})

	t.Run("unsupported kind", func(t *testing.T) {
		var out bytes.Buffer

		_, err := Copy(&out, strings.NewReader("tree 0\x00"))
		require.Equal(t, common.UnsupportedKindError{Kind: "tree"}, err)

		_, err = Copy(&out, strings.NewReader("tree 5\x00hello"))
		require.ErrorIs(t, err, common.ErrUnsupportedKind)
		require.Zero(t, out.Len())
	})

	t.Run("corrupt header", func(t *testing.T) {
		for _, in := range []string{"", "blob 5", "blob5\x00hello", "blob five\x00hello"} {
			_, err := Copy(io.Discard, strings.NewReader(in))
			require.ErrorIs(t, err, common.ErrCorruptObject, in)
		}
	})

	t.Run("source failure", func(t *testing.T) {
		src := &failingReader{
			r:   strings.NewReader("blob 5\x00he"),
			err: common.Corrupt(io.ErrUnexpectedEOF),
		}

		_, err := Copy(io.Discard, src)
		require.ErrorIs(t, err, common.ErrCorruptObject)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("source failure after payload", func(t *testing.T) {
		src := &failingReader{
			r:   strings.NewReader("blob 5\x00hello"),
			err: common.Corrupt(errors.New("checksum mismatch")),
		}

		_, err := Copy(io.Discard, src)
		require.ErrorIs(t, err, common.ErrCorruptObject)
	})
}

func TestReader(t *testing.T) {
	r, err := NewReader(strings.NewReader("blob 5\x00helloworld"))
	require.NoError(t, err)
	require.Equal(t, Header{Kind: KindBlob, Size: 5}, r.Header())

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))

	err = r.Verify()
	require.ErrorIs(t, err, common.ErrCorruptObject)
	require.ErrorContains(t, err, "5 trailing bytes after 5-byte payload")
}

func TestVerifyTrailingLimit(t *testing.T) {
	t.Run("at limit", func(t *testing.T) {
		_, err := Copy(io.Discard, strings.NewReader("blob 0\x00"+strings.Repeat("x", maxTrailingCount)))
		require.ErrorIs(t, err, common.ErrCorruptObject)
		require.ErrorContains(t, err, fmt.Sprintf("%d trailing bytes after 0-byte payload", maxTrailingCount))
		require.NotContains(t, err.Error(), "more than")
	})

	t.Run("beyond limit", func(t *testing.T) {
		src := strings.NewReader("blob 0\x00" + strings.Repeat("\x00", 4*maxTrailingCount))

		_, err := Copy(io.Discard, src)
		require.ErrorIs(t, err, common.ErrCorruptObject)
		require.ErrorContains(t, err, fmt.Sprintf("more than %d trailing bytes after 0-byte payload", maxTrailingCount))
		// the rest of the stream is left unread
		require.Greater(t, src.Len(), 2*maxTrailingCount)
	})
}

func TestCopyPayloadUnknownKind(t *testing.T) {
	var out bytes.Buffer

	r := &Reader{src: bufio.NewReader(strings.NewReader("data"))}
	r.payload.R = r.src
	r.payload.N = 4

	err := copyPayload(&out, r)
	require.Equal(t, common.UnsupportedKindError{Kind: "Kind(0)"}, err)
	require.Zero(t, out.Len())
}
