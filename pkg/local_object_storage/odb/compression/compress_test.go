package compression

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/nspcc-dev/gitodb/pkg/local_object_storage/odb/common"
	"github.com/stretchr/testify/require"
)

func compress(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestNewReader(t *testing.T) {
	data := []byte("blob 11\x00hello world")

	t.Run("valid", func(t *testing.T) {
		r, err := NewReader(bytes.NewReader(compress(t, data)))
		require.NoError(t, err)

		res, err := io.ReadAll(r)
		require.NoError(t, err)
		require.Equal(t, data, res)
		require.NoError(t, r.Close())
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := NewReader(bytes.NewReader(nil))
		require.ErrorIs(t, err, common.ErrCorruptObject)
	})

	t.Run("not compressed", func(t *testing.T) {
		_, err := NewReader(bytes.NewReader(data))
		require.ErrorIs(t, err, common.ErrCorruptObject)
	})

	t.Run("truncated stream", func(t *testing.T) {
		c := compress(t, data)
		r, err := NewReader(bytes.NewReader(c[:len(c)-6]))
		require.NoError(t, err)

		_, err = io.ReadAll(r)
		require.ErrorIs(t, err, common.ErrCorruptObject)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		c := compress(t, data)
		c[len(c)-1] ^= 0xff
		r, err := NewReader(bytes.NewReader(c))
		require.NoError(t, err)

		_, err = io.ReadAll(r)
		require.ErrorIs(t, err, common.ErrCorruptObject)
	})
}

type ioFailure struct{}

func (ioFailure) Read([]byte) (int, error) {
	return 0, fmt.Errorf("%w: device is gone", common.ErrIO)
}

func TestNewReaderIOFailure(t *testing.T) {
	_, err := NewReader(ioFailure{})
	require.ErrorIs(t, err, common.ErrIO)
	require.NotErrorIs(t, err, common.ErrCorruptObject)

	c := compress(t, []byte("blob 3\x00abc"))
	r, err := NewReader(io.MultiReader(bytes.NewReader(c[:4]), ioFailure{}))
	require.NoError(t, err)

	_, err = io.ReadAll(r)
	require.ErrorIs(t, err, common.ErrIO)
	require.NotErrorIs(t, err, common.ErrCorruptObject)
}
