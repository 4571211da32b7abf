package testutil

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"
)

// Compress returns data compressed the way loose objects are stored.
func Compress(t testing.TB, data []byte) []byte {
	var buf bytes.Buffer

	w := zlib.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return buf.Bytes()
}

// Frame returns decompressed object representation with the given kind tag
// and payload.
func Frame(kind string, payload []byte) []byte {
	return append([]byte(fmt.Sprintf("%s %d\x00", kind, len(payload))), payload...)
}

// ObjectID returns identifier of the framed object.
func ObjectID(framed []byte) string {
	h := sha1.Sum(framed)
	return hex.EncodeToString(h[:])
}

// PutFile writes raw file contents as the object with the given identifier
// into the storage located at root.
func PutFile(t testing.TB, root, id string, raw []byte) {
	p := filepath.Join(root, "objects", id[:2], id[2:])
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, raw, 0644))
}

// PutDecompressed compresses the decompressed object representation and stores
// it under the given identifier.
func PutDecompressed(t testing.TB, root, id string, data []byte) {
	PutFile(t, root, id, Compress(t, data))
}

// PutBlob stores a well-formed blob and returns its identifier.
func PutBlob(t testing.TB, root string, payload []byte) string {
	framed := Frame("blob", payload)
	id := ObjectID(framed)
	PutDecompressed(t, root, id, framed)
	return id
}
