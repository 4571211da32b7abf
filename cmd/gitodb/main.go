package main

import (
	"os"

	"github.com/nspcc-dev/gitodb/cmd/gitodb/internal/storage"
	"github.com/nspcc-dev/gitodb/cmd/internal/cmderr"
	"github.com/nspcc-dev/gitodb/misc"
	"github.com/nspcc-dev/gitodb/pkg/util/autocomplete"
	"github.com/spf13/cobra"
)

var command = &cobra.Command{
	Use:           "gitodb",
	Short:         "Loose object storage reader",
	Long:          `gitodb creates git-like object storages and reads objects from them validating their framing.`,
	RunE:          entryPoint,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func entryPoint(cmd *cobra.Command, _ []string) error {
	printVersion, _ := cmd.Flags().GetBool("version")
	if printVersion {
		cmd.Print(misc.BuildInfo("gitodb"))

		return nil
	}

	return cmd.Usage()
}

func init() {
	// use stdout as default output for cmd.Print()
	command.SetOut(os.Stdout)
	command.Flags().Bool("version", false, "Application version")
	command.AddCommand(
		storage.InitCMD,
		storage.CatFileCMD,
		storage.ListCMD,
		autocomplete.Command("gitodb"),
	)
}

func main() {
	err := command.Execute()
	cmderr.ExitOnErr(err)
}
