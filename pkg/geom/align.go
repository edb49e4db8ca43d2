package geom

import (
	"fmt"
	"strings"
)

// HorizontalAlignment is both a growth direction and a start point on the
// horizontal axis.
type HorizontalAlignment float64

const (
	Left   HorizontalAlignment = -1
	Center HorizontalAlignment = -0.5
	Right  HorizontalAlignment = 0
)

// VerticalAlignment is both a growth direction and a start point on the
// vertical axis.
type VerticalAlignment float64

const (
	Top    VerticalAlignment = -1
	Middle VerticalAlignment = -0.5
	Bottom VerticalAlignment = 0
)

// Flip mirrors the alignment across the axis. Center is a fixed point.
func (h HorizontalAlignment) Flip() HorizontalAlignment { return -1 * (h + 1) }

// Flip mirrors the alignment across the axis. Middle is a fixed point.
func (v VerticalAlignment) Flip() VerticalAlignment { return -1 * (v + 1) }

// Valid reports whether h is one of Left, Center or Right.
func (h HorizontalAlignment) Valid() bool { return h == Left || h == Center || h == Right }

// Valid reports whether v is one of Top, Middle or Bottom.
func (v VerticalAlignment) Valid() bool { return v == Top || v == Middle || v == Bottom }

func (h HorizontalAlignment) String() string {
	switch h {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	}
	return fmt.Sprintf("HorizontalAlignment(%g)", float64(h))
}

func (v VerticalAlignment) String() string {
	switch v {
	case Top:
		return "top"
	case Middle:
		return "middle"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("VerticalAlignment(%g)", float64(v))
}

// ParseHorizontalAlignment parses "left", "center" or "right" (case-insensitive).
func ParseHorizontalAlignment(s string) (HorizontalAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "center":
		return Center, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("invalid horizontal alignment %q (must be left, center or right)", s)
}

// ParseVerticalAlignment parses "top", "middle" or "bottom" (case-insensitive).
func ParseVerticalAlignment(s string) (VerticalAlignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return Top, nil
	case "middle":
		return Middle, nil
	case "bottom":
		return Bottom, nil
	}
	return 0, fmt.Errorf("invalid vertical alignment %q (must be top, middle or bottom)", s)
}
