package geom

import "fmt"

// Point is a position in client coordinates.
type Point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Size describes the dimensions of an element.
type Size struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool { return s.Width == 0 && s.Height == 0 }

func (s Size) String() string { return fmt.Sprintf("%gx%g", s.Width, s.Height) }

// Rect is an axis-aligned rectangle shaped like a DOM client rect.
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RectFromOrigin builds a rect with its top-left corner at origin.
func RectFromOrigin(origin Point, size Size) Rect {
	return Rect{
		Top:    origin.Y,
		Left:   origin.X,
		Right:  origin.X + size.Width,
		Bottom: origin.Y + size.Height,
		Width:  size.Width,
		Height: size.Height,
	}
}

// RectFromPoint returns a zero-size rect located at p.
func RectFromPoint(p Point) Rect {
	return RectFromOrigin(p, Size{})
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.Left, Y: r.Top} }

// Size returns the rect dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Translate returns r moved by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	return RectFromOrigin(Point{X: r.Left + dx, Y: r.Top + dy}, r.Size())
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// ContainsRect reports whether o lies entirely inside r, edges included.
func (r Rect) ContainsRect(o Rect) bool {
	return o.Left >= r.Left && o.Right <= r.Right && o.Top >= r.Top && o.Bottom <= r.Bottom
}

// IsEmpty reports whether the rect has no extent.
func (r Rect) IsEmpty() bool { return r.Width == 0 && r.Height == 0 }

func (r Rect) String() string {
	return fmt.Sprintf("[%g,%g %gx%g]", r.Left, r.Top, r.Width, r.Height)
}
