package fstree

import (
	"io/fs"

	"go.uber.org/zap"
)

type Option func(*FSTree)

func WithPerm(p fs.FileMode) Option {
	return func(f *FSTree) {
		f.Permissions = p
	}
}

func WithPath(p string) Option {
	return func(f *FSTree) {
		f.RootPath = p
	}
}

// WithLogger sets logger for storage operations. Nop logger is used by default.
func WithLogger(l *zap.Logger) Option {
	return func(f *FSTree) {
		f.log = l
	}
}
