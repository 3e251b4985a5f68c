// Package siunit formats complex circuit quantities as SI-prefixed,
// unit-suffixed magnitude/angle strings ("<mag><prefix><unit>
// ∠<angle>°"), parses SI-suffixed numeric literals from netlist
// source, and renders a probe-results table for the CLI driver.
//
// The recognized prefix set (p/n/µ,u/m/k,K/M/G/T) matches the netlist
// grammar's literal suffixes exactly, so a value round-trips through
// parsing and formatting without losing or gaining a prefix tier.
package siunit
