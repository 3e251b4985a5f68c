// errors.go — sentinel errors for the sparse package.
//
// Error policy (matches the wider codebase's convention): only sentinel
// variables are exported; callers branch on them via errors.Is, never
// by string comparison. Wrapping adds method context with fmt.Errorf's
// %w, never by reformatting the sentinel's own message.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreservedCoordinate is returned by AddA when (row, col) was
	// never declared by any component's ActiveTerminals at placement
	// time. Surfacing this as an error (rather than silently growing
	// the sparsity pattern) is what lets stamping stay O(1): a
	// reimplementation that grows storage on demand would violate the
	// "no allocation per tick" invariant.
	ErrUnreservedCoordinate = errors.New("sparse: unreserved coordinate")

	// ErrIndexOutOfRange is returned by SetB/AddB/ClearRow when an index
	// falls outside [0, N). VoltageAcross and Current return no error;
	// they index x and b directly.
	ErrIndexOutOfRange = errors.New("sparse: index out of range")
)

// sparseErrorf wraps err with the calling method's name and the
// offending row/col, preserving errors.Is matchability via %w.
func sparseErrorf(method string, row, col int, err error) error {
	if col < 0 {
		return fmt.Errorf("sparse: %s(%d): %w", method, row, err)
	}

	return fmt.Errorf("sparse: %s(%d,%d): %w", method, row, col, err)
}
