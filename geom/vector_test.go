package geom

import (
	"math"
	"sync"
	"testing"

	"github.com/binzume/simplemath/smath"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samplesI = []Vector2i{
	{0, 0}, {1, 0}, {0, 1}, {3, 4}, {-3, 4}, {-7, -2}, {120, -45}, {999, 998}, {-500, 13},
}

var samplesF = []Vector2{
	{0, 0}, {1, 0}, {0, 1}, {3, 4}, {-3.5, 4.25}, {-7, -2}, {0.001, 0.002}, {120.5, -45.25}, {-1e3, 13},
}

func tolerance(a, b Element) float64 {
	return 1e-5 * float64(smath.Max(1, smath.Max(math32.Abs(a), math32.Abs(b))))
}

func TestVector2iAddSub(t *testing.T) {
	for _, a := range samplesI {
		for _, b := range samplesI {
			assert.Equal(t, a, a.Add(b).Sub(b))
			assert.Equal(t, a.Add(b), b.Add(a))
		}
	}
	assert.Equal(t, NewVector2i(1, 1), NewVector2i(1, 0).Add(NewVector2i(0, 1)))
}

func TestVector2AddSub(t *testing.T) {
	for _, a := range samplesF {
		for _, b := range samplesF {
			got := a.Add(b).Sub(b)
			assert.InDelta(t, a.X, got.X, tolerance(a.X, b.X))
			assert.InDelta(t, a.Y, got.Y, tolerance(a.Y, b.Y))
		}
	}
	assert.Equal(t, NewVector2(1, 1), NewVector2(1, 0).Add(NewVector2(0, 1)))
}

func TestZeroVectors(t *testing.T) {
	assert.Equal(t, Vector2i{}, ZeroVector2i())
	assert.Equal(t, Vector2{}, ZeroVector2())

	z := ZeroVector2()
	z.X = 5
	assert.Equal(t, Element(0), ZeroVector2().X)
}

func TestValueSemantics(t *testing.T) {
	a := NewVector2(3, 4)
	b := NewVector2(1, 2)
	_ = a.Add(b)
	_ = a.Sub(b)
	_ = a.Scale(10)
	_, _ = a.Normalize()
	assert.Equal(t, NewVector2(3, 4), a)
	assert.Equal(t, NewVector2(1, 2), b)

	ai := NewVector2i(3, 4)
	_ = ai.Add(NewVector2i(1, 1))
	_, _ = ai.Normalize()
	assert.Equal(t, NewVector2i(3, 4), ai)
}

func TestLength345(t *testing.T) {
	assert.InDelta(t, 5, NewVector2i(3, 4).Len(), 0.01)
	assert.InDelta(t, 5, NewVector2(3, 4).Len(), 0.01)
	assert.Equal(t, uint32(5), NewVector2i(0, 0).Distance(NewVector2i(3, 4)))
	assert.InDelta(t, 5, NewVector2(0, 0).Distance(NewVector2(3, 4)), 0.01)
	assert.Equal(t, int64(25), NewVector2i(3, 4).LenSqr())
	assert.Equal(t, Element(0), ZeroVector2i().Len())
	assert.Equal(t, Element(0), ZeroVector2().Len())
}

func TestLengthNoIntOverflow(t *testing.T) {
	v := NewVector2i(math.MaxInt32, math.MaxInt32)
	assert.InEpsilon(t, math.Sqrt2*math.MaxInt32, float64(v.Len()), 3e-3)
}

func TestDistanceSaturates(t *testing.T) {
	a := NewVector2i(math.MaxInt32, 0)
	b := NewVector2i(math.MinInt32, 0)
	assert.Equal(t, uint32(math.MaxUint32), a.Distance(b))
	assert.Equal(t, uint32(math.MaxUint32), NewVector2i(math.MinInt32, math.MinInt32).Distance(NewVector2i(math.MaxInt32, math.MaxInt32)))

	// below the limit the truncated distance is kept
	assert.InEpsilon(t, float64(1<<31), float64(NewVector2i(0, 0).Distance(NewVector2i(math.MinInt32, 0))), 3e-3)
}

func TestDistanceMatchesLength(t *testing.T) {
	for _, a := range samplesF {
		for _, b := range samplesF {
			d := a.Distance(b)
			assert.InDelta(t, a.Sub(b).Len(), d, 1e-5*float64(smath.Max(1, d)), "%v %v", a, b)
		}
	}
	for _, a := range samplesI {
		for _, b := range samplesI {
			assert.Equal(t, uint32(a.Sub(b).Len()), a.Distance(b), "%v %v", a, b)
		}
	}
}

func TestUnitScenario(t *testing.T) {
	assert.Equal(t, uint32(1), NewVector2i(1, 0).Distance(NewVector2i(0, 1)))
	assert.InDelta(t, math.Sqrt2, NewVector2(1, 0).Distance(NewVector2(0, 1)), 3e-3)

	a, err := NewVector2i(1, 0).Angle()
	require.NoError(t, err)
	assert.InDelta(t, 0, a, 1e-6)

	af, err := NewVector2(1, 0).Angle()
	require.NoError(t, err)
	assert.InDelta(t, 0, af, 1e-6)
}

func TestNormalize(t *testing.T) {
	for _, v := range samplesF {
		if v.Len() == 0 {
			continue
		}
		n, err := v.Normalize()
		require.NoError(t, err)
		assert.InDelta(t, 1, n.Len(), 5e-3, "%v", v)
		assert.Equal(t, math32.Signbit(v.X), math32.Signbit(n.X), "%v", v)
		assert.Equal(t, math32.Signbit(v.Y), math32.Signbit(n.Y), "%v", v)
		if v.X != 0 && math32.Abs(v.Y) <= math32.Abs(v.X) {
			a1, _ := v.Angle()
			a2, _ := n.Angle()
			assert.InDelta(t, a1, a2, 1e-4, "%v", v)
		}
	}

	for _, v := range samplesI {
		if v.LenSqr() == 0 {
			continue
		}
		n, err := v.Normalize()
		require.NoError(t, err)
		assert.InDelta(t, 1, n.Len(), 5e-3, "%v", v)
	}

	n, err := NewVector2i(3, 4).Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 0.6, n.X, 2e-3)
	assert.InDelta(t, 0.8, n.Y, 2e-3)
}

func TestNormalizeZero(t *testing.T) {
	_, err := ZeroVector2().Normalize()
	assert.ErrorIs(t, err, smath.ErrDivisionByZero)

	_, err = ZeroVector2i().Normalize()
	assert.ErrorIs(t, err, smath.ErrDivisionByZero)
}

func TestEqual(t *testing.T) {
	for _, a := range samplesI {
		assert.True(t, a.Equal(a))
		for _, b := range samplesI {
			assert.Equal(t, a.Equal(b), b.Equal(a))
		}
	}
	for _, a := range samplesF {
		assert.True(t, a.Equal(a))
		for _, b := range samplesF {
			assert.Equal(t, a.Equal(b), b.Equal(a))
		}
	}

	// exact comparison, no tolerance
	assert.False(t, NewVector2(0.1, 0).Equal(NewVector2(0.1+1e-7, 0)))
	assert.True(t, NewVector2(float32(math.Copysign(0, -1)), 0).Equal(NewVector2(0, 0)))
	nan := float32(math.NaN())
	assert.False(t, NewVector2(nan, 0).Equal(NewVector2(nan, 0)))
}

func TestAngle(t *testing.T) {
	a, err := NewVector2(2, 1).Angle()
	require.NoError(t, err)
	assert.InDelta(t, math.Atan(0.5), a, 1e-3)

	// no quadrant correction
	a1, _ := NewVector2i(1, 1).Angle()
	a2, _ := NewVector2i(-1, -1).Angle()
	assert.Equal(t, a1, a2)

	_, err = NewVector2(0, 1).Angle()
	assert.ErrorIs(t, err, smath.ErrDomain)
	_, err = NewVector2i(0, -3).Angle()
	assert.ErrorIs(t, err, smath.ErrDomain)
}

func TestDotCross(t *testing.T) {
	a, b := NewVector2(1, 2), NewVector2(3, -4)
	assert.Equal(t, Element(-5), a.Dot(b))
	assert.Equal(t, Element(-10), a.Cross(b))
	assert.Equal(t, NewVector2(2, 4), a.Scale(2))
	assert.Equal(t, NewVector2(3, -4), NewVector2i(3, -4).ToVector2())
	assert.Equal(t, "(3, -4)", NewVector2i(3, -4).String())
	assert.Equal(t, "(1.5, 2)", NewVector2(1.5, 2).String())
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 32; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, a := range samplesI {
				for _, b := range samplesI {
					if a.Distance(b) != uint32(a.Sub(b).Len()) {
						t.Errorf("distance mismatch %v %v", a, b)
					}
				}
			}
		}()
	}
	wg.Wait()
}
