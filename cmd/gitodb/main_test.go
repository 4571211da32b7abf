package main

import (
	"bytes"
	"testing"

	"github.com/nspcc-dev/gitodb/misc"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	var names []string
	for _, c := range command.Commands() {
		names = append(names, c.Name())
	}
	require.Subset(t, names, []string{"init", "cat-file", "ls-objects", "completion"})

	var buf bytes.Buffer
	command.SetOut(&buf)
	command.SetArgs([]string{"--version"})
	t.Cleanup(func() { command.SetArgs(nil) })

	require.NoError(t, command.Execute())
	require.Equal(t, misc.BuildInfo("gitodb"), buf.String())
}
