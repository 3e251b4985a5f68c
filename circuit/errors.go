package circuit

import (
	"errors"
	"fmt"
)

var (
	// ErrTerminalCountMismatch is returned by Place when a component
	// is given a different number of terminals than its Meta declares.
	ErrTerminalCountMismatch = errors.New("circuit: terminal count mismatch")

	// ErrDuplicateComponentName is returned by Place when name is
	// already bound to a different placed instance.
	ErrDuplicateComponentName = errors.New("circuit: duplicate component name")
)

func circuitErrorf(method, name string, err error) error {
	if name == "" {
		return fmt.Errorf("circuit: %s: %w", method, err)
	}

	return fmt.Errorf("circuit: %s(%q): %w", method, name, err)
}
