package main

import (
	"fmt"

	"github.com/binzume/simplemath/geom"
)

func (a *app) format(v any) string {
	f := fmt.Sprintf("%%.%df", a.precision)
	switch v := v.(type) {
	case float32:
		return a.printer.Sprintf(f, v)
	case geom.Vector2:
		return a.printer.Sprintf("("+f+", "+f+")", v.X, v.Y)
	case geom.Vector2i:
		return a.printer.Sprintf("(%d, %d)", v.X, v.Y)
	case int, int32, int64, uint32, uint64:
		return a.printer.Sprintf("%d", v)
	default:
		return fmt.Sprint(v)
	}
}
