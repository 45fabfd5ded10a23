package batch

import (
	"math"
	"sort"

	"github.com/binzume/simplemath/geom"
	"github.com/binzume/simplemath/numutil"
	"github.com/binzume/simplemath/smath"
)

type bounds struct {
	min, max float64
}

var (
	uint32Arg = bounds{0, math.MaxUint32}
	int32Arg  = bounds{math.MinInt32, math.MaxInt32}
)

type opSpec struct {
	minArgs, maxArgs int
	vectors          int
	intArgs          map[int]bounds
	eval             func(o Op) (any, error)
}

var registry = map[string]opSpec{}

func init() {
	unary := func(name string, f func(float32) any) {
		registry[name] = opSpec{minArgs: 1, maxArgs: 1, eval: func(o Op) (any, error) {
			return f(float32(o.Args[0])), nil
		}}
	}
	unary("abs", func(a float32) any { return smath.Abs(a) })
	unary("square", func(a float32) any { return smath.Square(a) })
	unary("floor", func(a float32) any { return smath.Floor(a) })
	unary("ceil", func(a float32) any { return smath.Ceil(a) })
	unary("round", func(a float32) any { return smath.Round(a) })
	unary("sqrt", func(a float32) any { return smath.Sqrt(a) })
	unary("sin", func(a float32) any { return smath.Sin(a) })
	unary("cos", func(a float32) any { return smath.Cos(a) })
	unary("arctan", func(a float32) any { return smath.Arctan(a) })

	registry["max"] = opSpec{minArgs: 2, maxArgs: 2, eval: func(o Op) (any, error) {
		return smath.Max(float32(o.Args[0]), float32(o.Args[1])), nil
	}}
	registry["min"] = opSpec{minArgs: 2, maxArgs: 2, eval: func(o Op) (any, error) {
		return smath.Min(float32(o.Args[0]), float32(o.Args[1])), nil
	}}
	registry["inv_sqrt"] = opSpec{minArgs: 1, maxArgs: 1, eval: func(o Op) (any, error) {
		return smath.InvSqrt(float32(o.Args[0]))
	}}
	registry["round_nearest"] = opSpec{minArgs: 2, maxArgs: 2, intArgs: map[int]bounds{1: int32Arg}, eval: func(o Op) (any, error) {
		return smath.RoundNearest(float32(o.Args[0]), int32(o.Args[1]))
	}}
	registry["pow"] = opSpec{minArgs: 2, maxArgs: 2, intArgs: map[int]bounds{1: uint32Arg}, eval: func(o Op) (any, error) {
		return smath.Pow(float32(o.Args[0]), uint32(o.Args[1])), nil
	}}
	registry["pow_int"] = opSpec{minArgs: 2, maxArgs: 2, intArgs: map[int]bounds{0: uint32Arg, 1: uint32Arg}, eval: func(o Op) (any, error) {
		return smath.PowInt(uint32(o.Args[0]), uint32(o.Args[1])), nil
	}}
	registry["exp"] = opSpec{minArgs: 1, maxArgs: 1, intArgs: map[int]bounds{0: uint32Arg}, eval: func(o Op) (any, error) {
		return smath.Exp(uint32(o.Args[0])), nil
	}}

	registry["triangular"] = opSpec{minArgs: 2, maxArgs: 2,
		intArgs: map[int]bounds{0: {math.MinInt32, math.MaxInt32}, 1: {0, 64}},
		eval: func(o Op) (any, error) {
			return numutil.Sum(int64(o.Args[0]), int(o.Args[1]))
		}}
	registry["binary"] = opSpec{minArgs: 1, maxArgs: 2,
		intArgs: map[int]bounds{0: int32Arg, 1: {1, 32}},
		eval: func(o Op) (any, error) {
			width := numutil.DefaultBinaryWidth
			if len(o.Args) > 1 {
				width = int(o.Args[1])
			}
			return numutil.IntToBinary(int32(o.Args[0]), width)
		}}

	vector := func(name string, n int, fi func(a, b geom.Vector2i) (any, error), ff func(a, b geom.Vector2) (any, error)) {
		registry[name] = opSpec{vectors: n, eval: func(o Op) (any, error) {
			if o.Int {
				return fi(toVector2i(o.A), toVector2i(o.B))
			}
			return ff(toVector2(o.A), toVector2(o.B))
		}}
	}
	vector("add", 2,
		func(a, b geom.Vector2i) (any, error) { return a.Add(b), nil },
		func(a, b geom.Vector2) (any, error) { return a.Add(b), nil })
	vector("sub", 2,
		func(a, b geom.Vector2i) (any, error) { return a.Sub(b), nil },
		func(a, b geom.Vector2) (any, error) { return a.Sub(b), nil })
	vector("equal", 2,
		func(a, b geom.Vector2i) (any, error) { return a.Equal(b), nil },
		func(a, b geom.Vector2) (any, error) { return a.Equal(b), nil })
	vector("distance", 2,
		func(a, b geom.Vector2i) (any, error) { return a.Distance(b), nil },
		func(a, b geom.Vector2) (any, error) { return a.Distance(b), nil })
	vector("length", 1,
		func(a, _ geom.Vector2i) (any, error) { return a.Len(), nil },
		func(a, _ geom.Vector2) (any, error) { return a.Len(), nil })
	vector("normalize", 1,
		func(a, _ geom.Vector2i) (any, error) { return a.Normalize() },
		func(a, _ geom.Vector2) (any, error) { return a.Normalize() })
	vector("angle", 1,
		func(a, _ geom.Vector2i) (any, error) { return a.Angle() },
		func(a, _ geom.Vector2) (any, error) { return a.Angle() })
}

// Ops returns the supported operation names.
func Ops() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func toVector2(c []float64) geom.Vector2 {
	if len(c) < 2 {
		return geom.ZeroVector2()
	}
	return geom.NewVector2(float32(c[0]), float32(c[1]))
}

func toVector2i(c []float64) geom.Vector2i {
	if len(c) < 2 {
		return geom.ZeroVector2i()
	}
	return geom.NewVector2i(int32(c[0]), int32(c[1]))
}
