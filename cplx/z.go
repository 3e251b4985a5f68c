package cplx

import (
	"fmt"
	"math"
)

// Z is a complex scalar: a pair of 64-bit floats.
type Z struct {
	Re float64
	Im float64
}

// Zero is the additive identity.
var Zero = Z{Re: 0, Im: 0}

// One is the multiplicative identity.
var One = Z{Re: 1, Im: 0}

// New returns Z{Re: re, Im: im}.
// Complexity: O(1).
func New(re, im float64) Z {
	return Z{Re: re, Im: im}
}

// Real returns a purely real scalar.
// Complexity: O(1).
func Real(re float64) Z {
	return Z{Re: re, Im: 0}
}

// Polar builds a scalar from magnitude and angle (radians).
// Complexity: O(1).
func Polar(magnitude, angleRad float64) Z {
	return Z{
		Re: magnitude * math.Cos(angleRad),
		Im: magnitude * math.Sin(angleRad),
	}
}

// Add returns z+w.
// Complexity: O(1).
func (z Z) Add(w Z) Z {
	return Z{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

// Sub returns z-w.
// Complexity: O(1).
func (z Z) Sub(w Z) Z {
	return Z{Re: z.Re - w.Re, Im: z.Im - w.Im}
}

// Mul returns z*w.
// Complexity: O(1).
func (z Z) Mul(w Z) Z {
	return Z{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// Div returns z/w. Division by zero yields +/-Inf or NaN components,
// matching standard float64 division semantics.
// Complexity: O(1).
func (z Z) Div(w Z) Z {
	denom := w.Re*w.Re + w.Im*w.Im

	return Z{
		Re: (z.Re*w.Re + z.Im*w.Im) / denom,
		Im: (z.Im*w.Re - z.Re*w.Im) / denom,
	}
}

// Neg returns -z.
// Complexity: O(1).
func (z Z) Neg() Z {
	return Z{Re: -z.Re, Im: -z.Im}
}

// Conj returns the complex conjugate of z.
// Complexity: O(1).
func (z Z) Conj() Z {
	return Z{Re: z.Re, Im: -z.Im}
}

// Scale returns z scaled by a real factor.
// Complexity: O(1).
func (z Z) Scale(k float64) Z {
	return Z{Re: z.Re * k, Im: z.Im * k}
}

// Norm returns the Euclidean magnitude |z|.
// Complexity: O(1).
func (z Z) Norm() float64 {
	return math.Hypot(z.Re, z.Im)
}

// Arg returns the argument (angle, radians) of z via the two-argument
// arctangent.
// Complexity: O(1).
func (z Z) Arg() float64 {
	return math.Atan2(z.Im, z.Re)
}

// IsZero reports whether both components are exactly zero.
// Complexity: O(1).
func (z Z) IsZero() bool {
	return z.Re == 0 && z.Im == 0
}

// String renders z as "re+imi" / "re-imi" for debugging.
// Complexity: O(1).
func (z Z) String() string {
	if z.Im < 0 {
		return fmt.Sprintf("%g-%gi", z.Re, -z.Im)
	}

	return fmt.Sprintf("%g+%gi", z.Re, z.Im)
}
