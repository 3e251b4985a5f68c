package siunit

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLiteral parses a decimal number optionally suffixed by one of
// the recognized SI prefixes (p, n, µ/u, m, k/K, M, G, T). The suffix,
// if present, must be the literal's final rune.
func ParseLiteral(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("siunit: ParseLiteral(%q): empty literal", s)
	}

	numPart := trimmed
	multiplier := 1.0

	runes := []rune(trimmed)
	last := string(runes[len(runes)-1])
	if mult, ok := parseMultipliers[last]; ok {
		numPart = string(runes[:len(runes)-1])
		multiplier = mult
	}

	value, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, fmt.Errorf("siunit: ParseLiteral(%q): %w", s, err)
	}

	return value * multiplier, nil
}
