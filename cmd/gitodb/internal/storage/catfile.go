package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	common "github.com/nspcc-dev/gitodb/cmd/gitodb/internal"
	"github.com/nspcc-dev/gitodb/cmd/internal/cmderr"
	odbcommon "github.com/nspcc-dev/gitodb/pkg/local_object_storage/odb/common"
	"github.com/spf13/cobra"
)

const (
	flagPretty = "pretty"
	flagType   = "type"
	flagSize   = "size"
	flagExists = "exists"
)

// outBufSize is the payload size up to which failed cat-file prints nothing.
const outBufSize = 64 << 10

// CatFileCMD prints object contents or information about it.
var CatFileCMD = &cobra.Command{
	Use:   "cat-file (-p | -t | -s | -e) <object>",
	Short: "Provide contents or details of a stored object",
	Long: `Provide contents or details of a stored object. Exactly one mode flag is required:
  -p  print the object payload
  -t  print the object kind
  -s  print the object size declared in its header
  -e  exit with zero status if the object exists and is valid, print nothing`,
	Args: cobra.ExactArgs(1),
	RunE: catFileFunc,
}

var modeFlags = []string{flagPretty, flagType, flagSize, flagExists}

func init() {
	ff := CatFileCMD.Flags()

	ff.BoolP(flagPretty, "p", false, "Print object payload")
	ff.BoolP(flagType, "t", false, "Print object kind")
	ff.BoolP(flagSize, "s", false, "Print object size")
	ff.BoolP(flagExists, "e", false, "Check object exists and is valid")
	CatFileCMD.MarkFlagsMutuallyExclusive(modeFlags...)

	common.AddStorageFlags(CatFileCMD)
}

func catFileFunc(cmd *cobra.Command, args []string) error {
	var mode string
	for _, f := range modeFlags {
		if set, _ := cmd.Flags().GetBool(f); set {
			mode = f
		}
	}
	if mode == "" {
		return errors.New("one of -p, -t, -s or -e flags is required")
	}

	tree, log, err := common.OpenStorage(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	id := args[0]

	switch mode {
	case flagPretty:
		w := bufio.NewWriterSize(cmd.OutOrStdout(), outBufSize)

		// hide io.ReaderFrom, otherwise bufio.Writer passes the payload
		// directly to the output while its buffer is empty
		if _, err := tree.Get(id, struct{ io.Writer }{w}); err != nil {
			return fmt.Errorf("could not read object: %w", err)
		}

		return w.Flush()
	case flagType, flagSize:
		hdr, err := tree.Head(id)
		if err != nil {
			return fmt.Errorf("could not read object header: %w", err)
		}

		if mode == flagType {
			cmd.Println(hdr.Kind)
		} else {
			cmd.Println(hdr.Size)
		}
	case flagExists:
		err := tree.Check(id)
		if errors.Is(err, odbcommon.ErrNotFound) {
			return cmderr.ExitErr{Code: 1, Cause: err, Quiet: true}
		}
		if err != nil {
			return fmt.Errorf("invalid object: %w", err)
		}
	}

	return nil
}
