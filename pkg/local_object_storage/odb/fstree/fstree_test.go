package fstree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/gitodb/pkg/local_object_storage/odb/common"
	"github.com/stretchr/testify/require"
)

func TestTreePath(t *testing.T) {
	tree := New(WithPath("/var/lib/repo/.git"))

	p, err := tree.TreePath("ce013625030ba8dba906f756967f9e9ca394464a")
	require.NoError(t, err)
	require.Equal(t, "/var/lib/repo/.git/objects/ce/013625030ba8dba906f756967f9e9ca394464a", p)

	p, err = tree.TreePath("AB12")
	require.NoError(t, err)
	require.Equal(t, "/var/lib/repo/.git/objects/AB/12", p)

	for _, id := range []string{
		"",
		"a",
		"../../etc/passwd",
		"ce/0136",
		"ce01\x00",
		"ce01 ",
		"ce013625030ba8dba906f756967f9e9ca394464g",
	} {
		_, err := tree.TreePath(id)
		require.ErrorIs(t, err, common.ErrInvalidIdentifier, id)
	}
}

func TestNew(t *testing.T) {
	tree := New()
	require.Equal(t, DefaultRootPath, tree.RootPath)
	require.EqualValues(t, 0755, tree.Permissions)

	tree = New(WithPath("/tmp/x"), WithPerm(0700))
	require.Equal(t, "/tmp/x", tree.RootPath)
	require.EqualValues(t, 0700, tree.Permissions)
}

func TestInit(t *testing.T) {
	root := filepath.Join(t.TempDir(), ".git")
	tree := New(WithPath(root))

	require.NoError(t, tree.Init())

	for _, dir := range []string{root, filepath.Join(root, "objects"), filepath.Join(root, "refs")} {
		st, err := os.Stat(dir)
		require.NoError(t, err)
		require.True(t, st.IsDir(), dir)
	}

	head, err := os.ReadFile(filepath.Join(root, "HEAD"))
	require.NoError(t, err)
	require.Equal(t, "ref: refs/heads/main\n", string(head))

	t.Run("already exists", func(t *testing.T) {
		require.ErrorIs(t, tree.Init(), os.ErrExist)
	})

	t.Run("missing parent", func(t *testing.T) {
		tree := New(WithPath(filepath.Join(t.TempDir(), "a", ".git")))
		require.ErrorIs(t, tree.Init(), os.ErrNotExist)
	})
}
