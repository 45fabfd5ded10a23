package geom

// IsInTriangle reports whether p lies strictly inside triangle abc.
func IsInTriangle(p, a, b, c Vector2) bool {
	ab, bc, ca := b.Sub(a), c.Sub(b), a.Sub(c)
	c1, c2, c3 := ab.Cross(p.Sub(a)), bc.Cross(p.Sub(b)), ca.Cross(p.Sub(c))
	return c1*c2 > 0 && c2*c3 > 0
}

// Triangulate splits a simple polygon into triangles by ear clipping and
// returns vertex indices. Works for either winding.
func Triangulate(poly []Vector2) [][3]int {
	var dst [][3]int
	if len(poly) < 3 {
		return dst
	}
	var winding Element
	ii := make([]int, len(poly))
	for i := range poly {
		ii[i] = i
		v0 := poly[(i+len(poly)-1)%len(poly)]
		v1 := poly[i]
		v2 := poly[(i+1)%len(poly)]
		winding += v0.Sub(v1).Cross(v2.Sub(v1))
	}

	// O(N*N)...
	count := len(ii)
	for count >= 3 {
		lastCount := count
		for i := count - 1; i >= 0; i-- {
			i0 := ii[(i+count-1)%count]
			i1 := ii[i]
			i2 := ii[(i+1)%count]
			v0, v1, v2 := poly[i0], poly[i1], poly[i2]
			if v0.Sub(v1).Cross(v2.Sub(v1))*winding < 0 {
				continue
			}
			ok := true
			for _, j := range ii {
				if j != i0 && j != i1 && j != i2 && IsInTriangle(poly[j], v0, v1, v2) {
					ok = false
					break
				}
			}
			if ok {
				dst = append(dst, [3]int{i0, i1, i2})
				ii = append(ii[:i:i], ii[i+1:]...)
				count--
				if count < 3 {
					break
				}
			}
		}
		if lastCount == count {
			// self-intersecting or degenerate: fan the rest
			for i := 0; i < len(ii)-2; i++ {
				dst = append(dst, [3]int{ii[0], ii[i+1], ii[i+2]})
			}
			break
		}
	}
	return dst
}
