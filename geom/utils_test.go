package geom

import (
	"testing"

	"github.com/binzume/simplemath/smath"
)

func area(poly []Vector2, tris [][3]int) Element {
	var sum Element
	for _, t := range tris {
		a, b, c := poly[t[0]], poly[t[1]], poly[t[2]]
		sum += smath.Abs(b.Sub(a).Cross(c.Sub(a))) / 2
	}
	return sum
}

func TestIsInTriangle(t *testing.T) {
	a, b, c := NewVector2(0, 0), NewVector2(4, 0), NewVector2(0, 4)
	if !IsInTriangle(NewVector2(1, 1), a, b, c) {
		t.Error("(1,1) should be inside")
	}
	if !IsInTriangle(NewVector2(1, 1), a, c, b) {
		t.Error("winding should not matter")
	}
	if IsInTriangle(NewVector2(3, 3), a, b, c) {
		t.Error("(3,3) should be outside")
	}
	if IsInTriangle(NewVector2(2, 0), a, b, c) {
		t.Error("edge points are not inside")
	}
}

func TestTriangulate(t *testing.T) {
	tri := []Vector2{{0, 0}, {1, 0}, {0, 1}}
	if tris := Triangulate(tri); len(tris) != 1 {
		t.Error("triangle", tris)
	}

	square := []Vector2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	tris := Triangulate(square)
	if len(tris) != 2 || area(square, tris) != 1 {
		t.Error("square", tris)
	}

	// clockwise
	cw := []Vector2{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	if tris := Triangulate(cw); len(tris) != 2 || area(cw, tris) != 1 {
		t.Error("clockwise square", tris)
	}

	// non-convex arrow head, area 3
	arrow := []Vector2{{0, 0}, {4, 1}, {0, 2}, {1, 1}}
	tris = Triangulate(arrow)
	if len(tris) != 2 || area(arrow, tris) != 3 {
		t.Error("non-convex", tris, area(arrow, tris))
	}

	// Empty
	if len(Triangulate(nil)) != 0 {
		t.Error("not empty")
	}
}
