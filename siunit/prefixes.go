package siunit

// formatPrefixes is searched in descending magnitude order so the
// first multiplier that scales a value into [1, 1000) wins. k is
// preferred over its synonym K for output — K is accepted only on
// input, see parseMultipliers.
var formatPrefixes = []struct {
	Mult   float64
	Suffix string
}{
	{1e12, "T"},
	{1e9, "G"},
	{1e6, "M"},
	{1e3, "k"},
	{1, ""},
	{1e-3, "m"},
	{1e-6, "µ"},
	{1e-9, "n"},
	{1e-12, "p"},
}

// parseMultipliers maps every suffix recognized on input to its
// multiplier, including the k/K synonym.
var parseMultipliers = map[string]float64{
	"p": 1e-12,
	"n": 1e-9,
	"µ": 1e-6,
	"u": 1e-6,
	"m": 1e-3,
	"k": 1e3,
	"K": 1e3,
	"M": 1e6,
	"G": 1e9,
	"T": 1e12,
}

// varUnits maps a component parameter name to its SI unit symbol, for
// labeling probe output.
var varUnits = map[string]string{
	"I": "A",
	"R": "Ω",
	"V": "V",
	"C": "F",
	"L": "H",
	"P": "W",
	"f": "Hz",
}

// VarUnit returns the SI unit symbol conventionally associated with a
// component parameter name, or false if the name has no fixed unit
// (e.g. "phi", "t").
func VarUnit(name string) (string, bool) {
	unit, ok := varUnits[name]

	return unit, ok
}
