package siunit

import (
	"fmt"
	"math"

	"github.com/nodewave/circsim/cplx"
)

// FormatComplex renders z as "<mag><SI-prefix><unit> ∠<angle-deg>°"
// with 4 significant figures on the magnitude, falling back to
// scientific notation outside [1e-12, 1000) after scaling.
func FormatComplex(z cplx.Z, unit string) string {
	mag := z.Norm()
	angleDeg := z.Arg() * 180.0 / math.Pi

	prefix := ""
	scaled := mag

	for _, p := range formatPrefixes {
		test := mag / p.Mult
		if test >= 1.0 && test < 1000.0 {
			scaled = test
			prefix = p.Suffix

			break
		}
	}

	var formattedMag string

	if scaled >= 1000.0 || scaled < 1e-12 {
		formattedMag = fmt.Sprintf("%.3E", mag)
	} else {
		digits := int(math.Floor(math.Log10(math.Abs(scaled)))) + 1
		decimals := 4 - digits
		if decimals < 0 {
			decimals = 0
		}
		formattedMag = fmt.Sprintf("%.*f", decimals, scaled)
	}

	normalizedAngle := angleDeg
	if normalizedAngle < 0 {
		normalizedAngle = 360 + normalizedAngle
	}

	return fmt.Sprintf("%s%s%s ∠%.1f°", formattedMag, prefix, unit, normalizedAngle)
}
