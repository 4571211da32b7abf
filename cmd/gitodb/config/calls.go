package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Sub returns subsection of the Config by name.
//
// Missing subsection is not an error: all its values are nil.
func (x *Config) Sub(name string) *Config {
	return &Config{
		v:    x.v,
		path: append(x.path[:len(x.path):len(x.path)], name),
	}
}

// Value returns configuration value by name.
//
// Result can be casted to a particular type
// via corresponding function (e.g. String).
// Note: casting via Go `.()` operator is not
// recommended.
//
// Returns nil if the value is missing.
func (x *Config) Value(name string) any {
	return x.v.Get(x.key(name))
}

// IsSet checks whether the value with the given name is set by any source.
func (x *Config) IsSet(name string) bool {
	return x.v.IsSet(x.key(name))
}

func (x *Config) key(name string) string {
	return strings.Join(append(x.path[:len(x.path):len(x.path)], name), separator)
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}
