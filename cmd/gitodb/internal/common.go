package common

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/nspcc-dev/gitodb/cmd/gitodb/config"
	loggerconfig "github.com/nspcc-dev/gitodb/cmd/gitodb/config/logger"
	storeconfig "github.com/nspcc-dev/gitodb/cmd/gitodb/config/store"
	"github.com/nspcc-dev/gitodb/pkg/local_object_storage/odb/fstree"
	"github.com/nspcc-dev/gitodb/pkg/util/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	flagConfig   = "config"
	flagGitDir   = "git-dir"
	flagLogLevel = "log-level"
)

// AddStorageFlags adds flags selecting the storage and its configuration.
func AddStorageFlags(cmd *cobra.Command) {
	ff := cmd.Flags()

	ff.StringP(flagConfig, "c", "", "Path to the configuration file (default is $HOME/.config/gitodb/config.yaml)")
	_ = cmd.MarkFlagFilename(flagConfig, "yaml", "yml", "json")

	ff.String(flagGitDir, "", fmt.Sprintf("Path to the storage root (default %q)", storeconfig.RootDefault))
	_ = cmd.MarkFlagDirname(flagGitDir)

	ff.String(flagLogLevel, "", fmt.Sprintf("Logging level (default %q)", loggerconfig.LevelDefault))
}

// ReadConfig reads configuration from the file given by the flag (or the
// default one if it exists), ENV and the command line flags.
func ReadConfig(cmd *cobra.Command) (*config.Config, error) {
	var p config.Prm

	opts := []config.Option{
		config.WithFlag("store.root", cmd.Flags().Lookup(flagGitDir)),
		config.WithFlag("logger.level", cmd.Flags().Lookup(flagLogLevel)),
	}

	path, _ := cmd.Flags().GetString(flagConfig)
	if path != "" {
		opts = append(opts, config.WithConfigFile(path))
	} else if home, err := homedir.Dir(); err == nil {
		opts = append(opts, config.WithOptionalConfigFile(filepath.Join(home, ".config", "gitodb", "config.yaml")))
	}

	return config.New(p, opts...)
}

// NewLogger creates logger according to the "logger" configuration section.
func NewLogger(c *config.Config) (*zap.Logger, error) {
	var prm logger.Prm

	err := prm.SetLevelString(loggerconfig.Level(c))
	if err != nil {
		return nil, fmt.Errorf("invalid logger level: %w", err)
	}

	err = prm.SetEncoding(loggerconfig.Encoding(c))
	if err != nil {
		return nil, fmt.Errorf("invalid logger encoding: %w", err)
	}

	if ts, ok := loggerconfig.Timestamp(c); ok {
		prm.SetTimestamp(ts)
	}

	return logger.NewLogger(&prm)
}

// OpenStorage reads configuration and returns storage it points to along
// with the logger. The caller should Sync the logger when done.
func OpenStorage(cmd *cobra.Command) (*fstree.FSTree, *zap.Logger, error) {
	c, err := ReadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	log, err := NewLogger(c)
	if err != nil {
		return nil, nil, err
	}

	if f := c.ConfigFileUsed(); f != "" {
		log.Debug("using config file", zap.String("path", f))
	}

	return fstree.New(
		fstree.WithPath(storeconfig.Root(c)),
		fstree.WithPerm(storeconfig.Perm(c)),
		fstree.WithLogger(log),
	), log, nil
}
