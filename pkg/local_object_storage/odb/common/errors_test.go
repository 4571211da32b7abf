package common_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/nspcc-dev/gitodb/pkg/local_object_storage/odb/common"
	"github.com/stretchr/testify/require"
)

func TestUnsupportedKindError(t *testing.T) {
	err := fmt.Errorf("decode: %w", common.UnsupportedKindError{Kind: "tree"})

	require.ErrorIs(t, err, common.ErrUnsupportedKind)
	require.NotErrorIs(t, err, common.ErrCorruptObject)

	var e common.UnsupportedKindError
	require.True(t, errors.As(err, &e))
	require.Equal(t, "tree", e.Kind)
	require.Contains(t, err.Error(), `"tree"`)
}

func TestCorrupt(t *testing.T) {
	err := common.Corrupt(io.ErrUnexpectedEOF)
	require.ErrorIs(t, err, common.ErrCorruptObject)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	err = common.Corruptf("payload is %d bytes, header declares %d", 4, 5)
	require.ErrorIs(t, err, common.ErrCorruptObject)
	require.EqualError(t, err, "corrupt object: payload is 4 bytes, header declares 5")
}
