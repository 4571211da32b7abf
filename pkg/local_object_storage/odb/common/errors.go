package common

import (
	"errors"
	"fmt"
)

// ErrInvalidIdentifier MUST be returned when an object identifier can not be
// mapped to a storage path. No filesystem access is performed in this case.
var ErrInvalidIdentifier = errors.New("invalid object identifier")

// ErrNotFound MUST be returned when there is no file for the requested object.
var ErrNotFound = errors.New("object not found")

// ErrIO is returned when the storage can not be accessed for reasons other
// than object absence.
var ErrIO = errors.New("storage i/o failure")

// ErrCorruptObject is returned on any framing violation of a stored object:
// broken compression stream, malformed header, truncated payload or trailing
// data after the payload.
var ErrCorruptObject = errors.New("corrupt object")

// ErrUnsupportedKind is matched by any UnsupportedKindError.
var ErrUnsupportedKind = errors.New("unsupported object kind")

// UnsupportedKindError is returned when an object header declares a type tag
// that is not known to the reader.
type UnsupportedKindError struct {
	Kind string
}

func (x UnsupportedKindError) Error() string {
	return fmt.Sprintf("%s %q", ErrUnsupportedKind, x.Kind)
}

// Is makes UnsupportedKindError match ErrUnsupportedKind.
func (x UnsupportedKindError) Is(target error) bool {
	return target == ErrUnsupportedKind
}

// Corrupt wraps arbitrary error into ErrCorruptObject.
func Corrupt(err error) error {
	return fmt.Errorf("%w: %w", ErrCorruptObject, err)
}

// Corruptf returns ErrCorruptObject with formatted details.
func Corruptf(format string, args ...any) error {
	return Corrupt(fmt.Errorf(format, args...))
}
