package siunit

import (
	"fmt"
	"strings"

	"github.com/nodewave/circsim/cplx"
)

// Row is one named probe result: a component/parameter label paired
// with its value and the unit it should render with.
type Row struct {
	Label string
	Value cplx.Z
	Unit  string
}

// Table renders a fixed set of probe rows as an ASCII results table,
// one line per row, columns aligned to the widest label.
type Table struct {
	rows []Row
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{}
}

// Add appends one row.
func (t *Table) Add(label string, value cplx.Z, unit string) {
	t.rows = append(t.rows, Row{Label: label, Value: value, Unit: unit})
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	width := 0
	for _, row := range t.rows {
		if len(row.Label) > width {
			width = len(row.Label)
		}
	}

	var s strings.Builder
	for _, row := range t.rows {
		s.WriteString(fmt.Sprintf("%-*s  %s\n", width, row.Label, FormatComplex(row.Value, row.Unit)))
	}

	return s.String()
}
