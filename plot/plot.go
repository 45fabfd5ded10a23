// Package plot renders 2D vectors, segments and points to raster images.
package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"github.com/binzume/simplemath/geom"
	"github.com/chewxy/math32"
	"golang.org/x/image/bmp"
	"golang.org/x/image/vector"
)

var ErrUnknownFormat = errors.New("unknown image format")

type Format int

const (
	FormatPNG Format = iota
	FormatBMP
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

const (
	lineWidth = 2
	pointSize = 4
)

var (
	Background = color.RGBA{0xff, 0xff, 0xff, 0xff}
	AxisColor  = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
)

// Canvas maps plane coordinates to pixels: the origin is the image centre,
// +Y points up and one unit is scale pixels.
type Canvas struct {
	img    *image.RGBA
	scale  float32
	origin geom.Vector2
}

func NewCanvas(width, height int, scale float32) *Canvas {
	c := &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		scale:  scale,
		origin: geom.NewVector2(float32(width)/2, float32(height)/2),
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	c.fillPolygon(AxisColor, geom.NewVector2(0, c.origin.Y), geom.NewVector2(float32(width), c.origin.Y),
		geom.NewVector2(float32(width), c.origin.Y+1), geom.NewVector2(0, c.origin.Y+1))
	c.fillPolygon(AxisColor, geom.NewVector2(c.origin.X, 0), geom.NewVector2(c.origin.X+1, 0),
		geom.NewVector2(c.origin.X+1, float32(height)), geom.NewVector2(c.origin.X, float32(height)))
	return c
}

func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// ToPixel converts a plane coordinate to image space.
func (c *Canvas) ToPixel(p geom.Vector2) geom.Vector2 {
	return geom.NewVector2(c.origin.X+p.X*c.scale, c.origin.Y-p.Y*c.scale)
}

// DrawVector draws v as a segment from the origin. A zero vector draws nothing.
func (c *Canvas) DrawVector(v geom.Vector2, col color.Color) {
	c.DrawSegment(geom.ZeroVector2(), v, col)
}

func (c *Canvas) DrawSegment(a, b geom.Vector2, col color.Color) {
	pa, pb := c.ToPixel(a), c.ToPixel(b)
	dir, err := pb.Sub(pa).Normalize()
	if err != nil {
		return
	}
	side := geom.NewVector2(-dir.Y, dir.X).Scale(lineWidth / 2)
	c.fillPolygon(col, pa.Add(side), pb.Add(side), pb.Sub(side), pa.Sub(side))
}

// DrawPoint draws a small square snapped to the pixel grid.
func (c *Canvas) DrawPoint(p geom.Vector2, col color.Color) {
	center := c.ToPixel(p)
	x0 := math32.Round(center.X) - pointSize/2
	y0 := math32.Round(center.Y) - pointSize/2
	c.fillPolygon(col, geom.NewVector2(x0, y0), geom.NewVector2(x0+pointSize, y0),
		geom.NewVector2(x0+pointSize, y0+pointSize), geom.NewVector2(x0, y0+pointSize))
}

// FillPolygon fills a simple polygon given in plane coordinates.
// Polygons with fewer than three vertices draw nothing.
func (c *Canvas) FillPolygon(poly []geom.Vector2, col color.Color) {
	pts := make([]geom.Vector2, len(poly))
	for i, p := range poly {
		pts[i] = c.ToPixel(p)
	}
	for _, t := range geom.Triangulate(pts) {
		c.fillPolygon(col, pts[t[0]], pts[t[1]], pts[t[2]])
	}
}

func (c *Canvas) fillPolygon(col color.Color, pts ...geom.Vector2) {
	b := c.img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	r.DrawOp = draw.Over
	r.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		r.LineTo(p.X, p.Y)
	}
	r.ClosePath()
	r.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

func (c *Canvas) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, c.img)
	case FormatBMP:
		return bmp.Encode(w, c.img)
	}
	return fmt.Errorf("%w: %d", ErrUnknownFormat, format)
}
