// Package netlist parses a line-oriented netlist grammar and builds a
// circuit.Circuit from the parsed commands.
//
// Each line is scanned with a forward-only scanner over a rune slice:
// every token is read as an identifier first, and a following '='
// decides whether it is a parameter key or a terminal. SI-suffixed
// numeric literals are parsed via siunit.ParseLiteral.
package netlist
