// Package smath provides small scalar math helpers: generic min/max/abs,
// truncating rounding, integer powers, a fast approximate square root and
// truncated Taylor-series trigonometry.
//
// Every function is pure and safe for concurrent use.
package smath

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	E  = 2.7182818284590452354
	Pi = 3.1415926535897932385
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Signed is any signed integer or floating-point type.
type Signed interface {
	constraints.Signed | constraints.Float
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Abs returns a if a >= 0, otherwise -a.
// For the minimum value of a signed integer type the negation wraps and the
// argument is returned unchanged.
func Abs[T Signed](a T) T {
	if a >= 0 {
		return a
	}
	return -a
}

func Square[T Number](a T) T {
	return a * a
}

// Floor truncates a toward zero: Floor(-1.5) == -1.
func Floor[F constraints.Float](a F) int {
	return int(a)
}

// Ceil rounds a positive a with a fractional part up to the next integer.
// A negative a with a fractional part is moved one below its truncation,
// so Ceil(-1.5) == -2.
func Ceil[F constraints.Float](a F) int {
	t := int(a)
	if a > 0 {
		if a-F(t) > 0 {
			return int(a + 1)
		}
		return t
	}
	if a-F(t) < 0 {
		return int(a - 1)
	}
	return t
}

// Round returns f+0.5 truncated toward zero.
// Only correct for non-negative f: Round(-1.2) == 0.
func Round(f float32) int32 {
	return int32(f + 0.5)
}

// RoundNearest rounds f to a multiple of nearest.
func RoundNearest(f float32, nearest int32) (int32, error) {
	if nearest == 0 {
		return 0, ErrDivisionByZero
	}
	return Round(f/float32(nearest)) * nearest, nil
}

// Pow computes base^expo by repeated squaring. Pow(x, 0) == 1 for all x.
func Pow(base float32, expo uint32) float32 {
	result := float32(1)
	for {
		if expo&1 != 0 {
			result *= base
		}
		expo >>= 1
		if expo == 0 {
			break
		}
		base *= base
	}
	return result
}

// PowInt truncates Pow to an unsigned integer.
// Results above 2^24 lose precision in the float32 intermediate.
func PowInt(base, expo uint32) uint64 {
	return uint64(Pow(float32(base), expo))
}

// Exp returns E^expo.
func Exp(expo uint32) float32 {
	return Pow(E, expo)
}

const invSqrtMagic = 0x5f3759df

// InvSqrt approximates 1/sqrt(f) with the bit-pattern seed and a single
// Newton iteration. The result never exceeds the exact value and is within
// about 0.18% of it.
func InvSqrt(f float32) (float32, error) {
	if !(f > 0) || math.IsInf(float64(f), 1) {
		return 0, &DomainError{Op: "InvSqrt", Value: float64(f)}
	}
	half := f * 0.5
	i := math.Float32bits(f)
	i = invSqrtMagic - (i >> 1)
	y := math.Float32frombits(i)
	y = y * (1.5 - half*y*y)
	return y, nil
}

// Sqrt approximates the square root of f as 1/InvSqrt(f).
// Sqrt(0) is 0, Sqrt(+Inf) is +Inf and Sqrt of a negative value or NaN is NaN.
func Sqrt(f float32) float32 {
	switch {
	case f == 0:
		return 0
	case math.IsInf(float64(f), 1):
		return f
	case !(f > 0):
		return float32(math.NaN())
	}
	y, _ := InvSqrt(f)
	return 1 / y
}
