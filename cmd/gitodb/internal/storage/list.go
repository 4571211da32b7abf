package storage

import (
	"io"
	"strconv"

	common "github.com/nspcc-dev/gitodb/cmd/gitodb/internal"
	"github.com/nspcc-dev/gitodb/pkg/local_object_storage/odb/object"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const flagVerify = "verify"

// ListCMD prints all stored objects.
var ListCMD = &cobra.Command{
	Use:   "ls-objects",
	Short: "List stored objects",
	Long: `List all objects stored in the storage with their kinds and sizes.
Objects that can not be decoded are listed with the error. By default only
headers are read, use --verify to check payloads as well.`,
	Args: cobra.NoArgs,
	RunE: listFunc,
}

func init() {
	ListCMD.Flags().Bool(flagVerify, false, "Validate object payloads")
	common.AddStorageFlags(ListCMD)
}

func listFunc(cmd *cobra.Command, _ []string) error {
	verify, _ := cmd.Flags().GetBool(flagVerify)

	tree, log, err := common.OpenStorage(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	out := tablewriter.NewWriter(cmd.OutOrStdout())
	out.SetHeader([]string{"ID", "Kind", "Size", "Error"})
	out.SetAutoWrapText(false)

	err = tree.Iterate(func(id string) error {
		var (
			hdr object.Header
			err error
		)
		if verify {
			hdr, err = tree.Get(id, io.Discard)
		} else {
			hdr, err = tree.Head(id)
		}

		row := []string{id, "-", "-", ""}
		if hdr.Kind != 0 {
			row[1] = hdr.Kind.String()
			row[2] = strconv.FormatUint(hdr.Size, 10)
		}
		if err != nil {
			row[3] = err.Error()
		}

		out.Append(row)
		return nil
	})
	if err != nil {
		return err
	}

	out.Render()

	return nil
}
