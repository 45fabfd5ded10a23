package geom

import (
	"fmt"
	"math"

	"github.com/binzume/simplemath/smath"
)

// Vector2i is a 2D vector with int32 components.
// Add and Sub wrap on overflow.
type Vector2i struct {
	X int32
	Y int32
}

func NewVector2i(x, y int32) Vector2i {
	return Vector2i{X: x, Y: y}
}

func ZeroVector2i() Vector2i {
	return Vector2i{}
}

func (v Vector2i) Add(v2 Vector2i) Vector2i {
	return Vector2i{X: v.X + v2.X, Y: v.Y + v2.Y}
}

func (v Vector2i) Sub(v2 Vector2i) Vector2i {
	return Vector2i{X: v.X - v2.X, Y: v.Y - v2.Y}
}

func (v Vector2i) Equal(v2 Vector2i) bool {
	return v.X == v2.X && v.Y == v2.Y
}

// Distance returns the euclidean distance truncated to an integer.
// Distances beyond the uint32 range saturate at math.MaxUint32.
func (v Vector2i) Distance(v2 Vector2i) uint32 {
	dx := float32(v2.X) - float32(v.X)
	dy := float32(v2.Y) - float32(v.Y)
	d := smath.Sqrt(smath.Square(dx) + smath.Square(dy))
	if d >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(d)
}

func (v Vector2i) Len() Element {
	return smath.Sqrt(float32(v.LenSqr()))
}

func (v Vector2i) LenSqr() int64 {
	return smath.Square(int64(v.X)) + smath.Square(int64(v.Y))
}

// Normalize returns the unit vector as a Vector2, since integer components
// cannot hold it.
func (v Vector2i) Normalize() (Vector2, error) {
	l := v.Len()
	if l == 0 {
		return Vector2{}, fmt.Errorf("normalize %v: %w", v, smath.ErrDivisionByZero)
	}
	return Vector2{X: float32(v.X) / l, Y: float32(v.Y) / l}, nil
}

func (v Vector2i) Angle() (Element, error) {
	if v.X == 0 {
		return 0, &smath.DomainError{Op: "Angle", Value: float64(v.X)}
	}
	return smath.Arctan(float32(v.Y) / float32(v.X)), nil
}

func (v Vector2i) ToVector2() Vector2 {
	return Vector2{X: float32(v.X), Y: float32(v.Y)}
}

func (v Vector2i) String() string {
	return fmt.Sprintf("(%d, %d)", v.X, v.Y)
}
