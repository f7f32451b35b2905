package entity

import "fmt"

var (
	// ErrEntityNotFound means no node exists for the given id or key.
	// Expected and caller-handled; not a failure.
	ErrEntityNotFound = fmt.Errorf("entity not found")

	// ErrUnsupportedEntityType means a kind tag or resolved object type has no
	// registered descriptor. Always a configuration error, never retried.
	ErrUnsupportedEntityType = fmt.Errorf("unsupported entity type")

	// ErrKeyAlreadyReserved means an id reservation already exists for the
	// key. Expected under race; the caller decides how to proceed.
	ErrKeyAlreadyReserved = fmt.Errorf("key already reserved")
)
