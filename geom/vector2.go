package geom

import (
	"fmt"

	"github.com/binzume/simplemath/smath"
)

type Element = float32

// Vector2 is a 2D vector with float32 components. Methods never modify the receiver.
type Vector2 struct {
	X Element
	Y Element
}

func NewVector2(x, y Element) Vector2 {
	return Vector2{X: x, Y: y}
}

func ZeroVector2() Vector2 {
	return Vector2{}
}

func (v Vector2) Add(v2 Vector2) Vector2 {
	return Vector2{X: v.X + v2.X, Y: v.Y + v2.Y}
}

func (v Vector2) Sub(v2 Vector2) Vector2 {
	return Vector2{X: v.X - v2.X, Y: v.Y - v2.Y}
}

func (v Vector2) Scale(s Element) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v Vector2) Dot(v2 Vector2) Element {
	return v.X*v2.X + v.Y*v2.Y
}

func (v Vector2) Cross(v2 Vector2) Element {
	return v.X*v2.Y - v.Y*v2.X
}

// Equal compares components exactly, with no tolerance.
func (v Vector2) Equal(v2 Vector2) bool {
	return v.X == v2.X && v.Y == v2.Y
}

// Distance uses the approximate smath.Sqrt.
func (v Vector2) Distance(v2 Vector2) Element {
	return smath.Sqrt(smath.Square(v2.X-v.X) + smath.Square(v2.Y-v.Y))
}

func (v Vector2) Len() Element {
	return smath.Sqrt(v.LenSqr())
}

func (v Vector2) LenSqr() Element {
	return smath.Square(v.X) + smath.Square(v.Y)
}

// Normalize returns v scaled to unit length.
func (v Vector2) Normalize() (Vector2, error) {
	l := v.Len()
	if l == 0 {
		return Vector2{}, fmt.Errorf("normalize %v: %w", v, smath.ErrDivisionByZero)
	}
	return v.Scale(1 / l), nil
}

// Angle returns arctan(y/x) using the truncated series.
// There is no quadrant correction: (1, 1) and (-1, -1) face the same way.
func (v Vector2) Angle() (Element, error) {
	if v.X == 0 {
		return 0, &smath.DomainError{Op: "Angle", Value: float64(v.X)}
	}
	return smath.Arctan(v.Y / v.X), nil
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
