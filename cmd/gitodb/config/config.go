package config

import (
	"fmt"
	"strings"

	"github.com/nspcc-dev/gitodb/cmd/gitodb/config/internal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config represents a group of named values structured
// by tree type.
//
// Sub-trees are named configuration sub-sections,
// leaves are named configuration values.
// Names are of string type.
type Config struct {
	v *viper.Viper

	path []string

	file string
}

const separator = "."

// Prm groups required parameters of the Config.
type Prm struct{}

// Option is a Config's constructor option.
type Option func(*opts)

type opts struct {
	path     string
	optional bool
	flags    map[string]*pflag.Flag
}

func defaultOpts() *opts {
	return &opts{
		flags: make(map[string]*pflag.Flag),
	}
}

// WithConfigFile returns an option to set the path of the configuration file.
func WithConfigFile(path string) Option {
	return func(o *opts) {
		o.path = path
		o.optional = false
	}
}

// WithOptionalConfigFile is like WithConfigFile but missing file is not an
// error.
func WithOptionalConfigFile(path string) Option {
	return func(o *opts) {
		o.path = path
		o.optional = true
	}
}

// WithFlag returns an option to bind the configuration value with the given
// dot-separated name to the command line flag. Flag value overrides the
// file and ENV ones only if the flag has been set.
func WithFlag(name string, f *pflag.Flag) Option {
	return func(o *opts) {
		if f != nil {
			o.flags[name] = f
		}
	}
}

// New creates a new Config instance.
//
// If file option is provided (WithConfigFile),
// configuration values are read from it.
// Otherwise, Config is a degenerate tree.
func New(_ Prm, opts ...Option) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(internal.EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(separator, internal.EnvSeparator))

	o := defaultOpts()
	for i := range opts {
		opts[i](o)
	}

	var file string

	if o.path != "" {
		v.SetConfigFile(o.path)

		err := v.ReadInConfig()
		switch {
		case err == nil:
			file = o.path
		case o.optional && isNotFound(err):
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	for name, f := range o.flags {
		if err := v.BindPFlag(name, f); err != nil {
			return nil, fmt.Errorf("bind flag %q: %w", f.Name, err)
		}
	}

	return &Config{
		v:    v,
		file: file,
	}, nil
}

// ConfigFileUsed returns path to the configuration file if it has been read.
func (x *Config) ConfigFileUsed() string {
	return x.file
}
