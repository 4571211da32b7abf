package object

import (
	"strconv"

	"github.com/nspcc-dev/gitodb/pkg/local_object_storage/odb/common"
)

// Kind is a type of the stored object declared in its header.
type Kind uint8

const (
	_ Kind = iota
	// KindBlob is an opaque file content.
	KindBlob
)

// String returns the type tag used in object headers.
func (k Kind) String() string {
	switch k {
	case KindBlob:
		return "blob"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParseKind maps type tag from the object header to Kind. Unknown tags lead
// to common.UnsupportedKindError.
func ParseKind(tag string) (Kind, error) {
	switch tag {
	case "blob":
		return KindBlob, nil
	default:
		return 0, common.UnsupportedKindError{Kind: tag}
	}
}
