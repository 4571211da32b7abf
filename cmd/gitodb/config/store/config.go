package storeconfig

import (
	"io/fs"

	"github.com/nspcc-dev/gitodb/cmd/gitodb/config"
)

const (
	subsection = "store"

	// RootDefault is a default path to the storage root.
	RootDefault = ".git"

	// PermDefault is a default permission bits for created directories.
	PermDefault = 0755
)

// Root returns the value of "root" config parameter
// from "store" section.
//
// Returns RootDefault if the value is not a non-empty string.
func Root(c *config.Config) string {
	v := config.StringSafe(
		c.Sub(subsection),
		"root",
	)
	if v != "" {
		return v
	}

	return RootDefault
}

// Perm returns the value of "permissions" config parameter
// from "store" section.
//
// Returns PermDefault if the value is not a positive number.
func Perm(c *config.Config) fs.FileMode {
	v := config.Uint32Safe(
		c.Sub(subsection),
		"permissions",
	)
	if v > 0 {
		return fs.FileMode(v) & fs.ModePerm
	}

	return PermDefault
}
