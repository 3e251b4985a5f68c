package compstore

import (
	"errors"
	"fmt"
)

var (
	// ErrTerminalCountMismatch is returned when a component is pushed
	// with a different number of terminals than its Meta declares.
	ErrTerminalCountMismatch = errors.New("compstore: terminal count mismatch")

	// ErrTypeMismatch is returned when a store is addressed with a
	// component type other than the one it was created for. The store
	// is type-homogeneous by construction; this guards the boundary
	// where a caller type-asserts a type-erased handle back down to a
	// concrete *Store[C, S].
	ErrTypeMismatch = errors.New("compstore: type mismatch")

	// ErrIndexOutOfRange names an instance index that does not refer to
	// a pushed component. Store.Parameter reports such an index with a
	// false result rather than this error.
	ErrIndexOutOfRange = errors.New("compstore: index out of range")
)

func storeErrorf(method string, err error) error {
	return fmt.Errorf("compstore: %s: %w", method, err)
}
