package position

import (
	"maps"

	"github.com/matzehuels/overlaykit/pkg/geom"
)

// FitPolicy decides how content that does not fit the viewport is placed.
// Resolve is only consulted on initial calls and only when at least one
// axis misfits. Implementations must be pure: the same input always yields
// the same resolution.
type FitPolicy interface {
	Name() string
	Resolve(in FitInput) Resolution
}

// FitInput is what a policy sees: the failed fit and the settings it was
// computed with.
type FitInput struct {
	Fit      ConnectedFit
	Settings Settings
}

// Flip is a bit set of flipped axes.
type Flip uint8

const (
	FlipHorizontal Flip = 1 << iota
	FlipVertical
)

// Has reports whether axis f is flipped.
func (f Flip) Has(axis Flip) bool { return f&axis != 0 }

// Resolution is the outcome of an initial call, re-applied verbatim on
// reactive calls.
type Resolution struct {
	// Settings used for the connected placement, possibly flipped.
	Settings Settings
	// Size of the content the placement was computed for.
	Size geom.Size
	// Offset shifts the start point.
	Offset geom.Point
	// Translate is written as a CSS transform after placement.
	Translate geom.Point
	// Patch holds extra style properties, e.g. elastic width/height. An empty
	// value removes the property.
	Patch map[string]string
	// Flipped records which axes were flipped.
	Flipped Flip
}

func (r Resolution) clone() Resolution {
	r.Patch = maps.Clone(r.Patch)
	return r
}

func (r *Resolution) setPatch(prop, value string) {
	if r.Patch == nil {
		r.Patch = make(map[string]string)
	}
	r.Patch[prop] = value
}

// pushAmount is the minimal translation bringing [lo, hi] inside [min, max].
// Overflow on the low side is fixed completely; overflow on the high side is
// reduced only as far as the low side has room.
func pushAmount(lo, hi, min, max float64) float64 {
	lowExtend := lo - min
	highExtend := hi - max
	switch {
	case lowExtend < 0:
		return -lowExtend
	case highExtend > 0:
		return -minf(highExtend, lowExtend)
	}
	return 0
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
