package testutil_test

import (
	"testing"

	"github.com/nspcc-dev/gitodb/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestObjectID(t *testing.T) {
	// git hash-object -t blob --stdin <<< "hello world"
	require.Equal(t, "3b18e512dba79e4c8300dd08aeb37f8e728b8dad",
		testutil.ObjectID(testutil.Frame("blob", []byte("hello world\n"))))
	// empty blob
	require.Equal(t, "e69de29bb2d1d6434b8b29ae775ad8c2e48c5391",
		testutil.ObjectID(testutil.Frame("blob", nil)))
}
