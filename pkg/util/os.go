package util

import "os"

// MkdirX calls os.Mkdir with the passed permissions but with +x for a user
// and a group. This makes the created dir openable regardless of the passed
// permissions. Unlike os.MkdirAll, it fails if path already exists.
func MkdirX(path string, perm os.FileMode) error {
	return os.Mkdir(path, perm|0110)
}
