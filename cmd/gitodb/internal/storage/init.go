package storage

import (
	"fmt"

	common "github.com/nspcc-dev/gitodb/cmd/gitodb/internal"
	"github.com/spf13/cobra"
)

// InitCMD creates an empty storage.
var InitCMD = &cobra.Command{
	Use:   "init",
	Short: "Create an empty storage",
	Long: `Create an empty storage: root directory with objects and refs subdirectories
and HEAD pointing to the main branch. Fails if the root directory already exists.`,
	Args: cobra.NoArgs,
	RunE: initFunc,
}

func init() {
	common.AddStorageFlags(InitCMD)
}

func initFunc(cmd *cobra.Command, _ []string) error {
	tree, log, err := common.OpenStorage(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := tree.Init(); err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	cmd.Println("Initialized git directory")

	return nil
}
