package netlist

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is returned when a non-blank, non-comment line
	// does not match <kind> ["name"] <terminal>* (<key>=<value>)*.
	ErrMalformedLine = errors.New("netlist: malformed line")

	// ErrUnknownComponentKind is returned when a line's component kind
	// does not match any kind the builder knows how to place.
	ErrUnknownComponentKind = errors.New("netlist: unknown component kind")

	// ErrMissingParameter is returned when a component kind's required
	// parameter is absent from the line.
	ErrMissingParameter = errors.New("netlist: missing parameter")
)

func netlistErrorf(method string, line int, err error) error {
	return fmt.Errorf("netlist: %s(line %d): %w", method, line, err)
}
