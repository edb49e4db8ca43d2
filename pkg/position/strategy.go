package position

import (
	"maps"
	"slices"

	"github.com/matzehuels/overlaykit/pkg/dom"
	"github.com/matzehuels/overlaykit/pkg/errors"
	"github.com/matzehuels/overlaykit/pkg/geom"
	"github.com/matzehuels/overlaykit/pkg/observability"
)

// Strategy names accepted by New.
const (
	KindConnected   = "connected"
	KindAuto        = "auto"
	KindElastic     = "elastic"
	KindAutoElastic = "auto-elastic"
	KindExcelStyle  = "excel-style"
)

// Kinds lists the strategy names accepted by New, in display order.
var Kinds = []string{KindConnected, KindAuto, KindElastic, KindAutoElastic, KindExcelStyle}

// Strategy places content with the connected primitive and resolves viewport
// misfits with its policy. A nil policy never tests the viewport.
//
// A Strategy is not safe for concurrent use; callers position one element
// per strategy and serialize calls.
type Strategy struct {
	name     string
	settings Settings
	policy   FitPolicy
	last     *Resolution
}

// NewConnected returns a strategy that places content without testing the
// viewport.
func NewConnected(s Settings) *Strategy {
	return &Strategy{name: KindConnected, settings: s}
}

// NewAuto returns a strategy that flips or pushes overflowing content.
func NewAuto(s Settings) *Strategy {
	return &Strategy{name: KindAuto, settings: s, policy: FlipOrPush{}}
}

// NewElastic returns a strategy that shrinks overflowing content.
func NewElastic(s Settings) *Strategy {
	return &Strategy{name: KindElastic, settings: s, policy: Elastic{}}
}

// NewAutoElastic returns a strategy that resizes the content height, then
// flips or pushes.
func NewAutoElastic(s Settings) *Strategy {
	return &Strategy{name: KindAutoElastic, settings: s, policy: AutoElastic{}}
}

// NewExcelStyle returns a strategy that tries fixed corners, then behaves
// like NewAutoElastic.
func NewExcelStyle(s Settings) *Strategy {
	return &Strategy{name: KindExcelStyle, settings: s, policy: ExcelStyle{}}
}

// NewWithPolicy returns a strategy using a custom policy.
func NewWithPolicy(s Settings, p FitPolicy) *Strategy {
	name := KindConnected
	if p != nil {
		name = p.Name()
	}
	return &Strategy{name: name, settings: s, policy: p}
}

// New returns the strategy registered under kind.
func New(kind string, s Settings) (*Strategy, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	switch kind {
	case KindConnected, "":
		return NewConnected(s), nil
	case KindAuto:
		return NewAuto(s), nil
	case KindElastic:
		return NewElastic(s), nil
	case KindAutoElastic:
		return NewAutoElastic(s), nil
	case KindExcelStyle:
		return NewExcelStyle(s), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStrategy, "unknown strategy %q (want one of %v)", kind, Kinds)
}

// Name returns the strategy kind.
func (st *Strategy) Name() string { return st.name }

// Settings returns the settings the strategy was created with. Flips never
// change them.
func (st *Strategy) Settings() Settings { return st.settings }

// Policy returns the fit policy, nil for connected positioning.
func (st *Strategy) Policy() FitPolicy { return st.policy }

// Resolved returns the resolution of the last initial call.
func (st *Strategy) Resolved() (Resolution, bool) {
	if st.last == nil {
		return Resolution{}, false
	}
	return st.last.clone(), true
}

// Clone returns an independent copy, including the last resolution.
func (st *Strategy) Clone() *Strategy {
	c := *st
	if st.last != nil {
		r := st.last.clone()
		c.last = &r
	}
	return &c
}

// Position places el relative to target, or to Settings.Target when target
// is nil. size is the natural content size; a zero size measures el.
// Without a document the viewport is unknown and no fit policy runs.
//
// Initial calls derive a fresh resolution from the original settings.
// Later calls re-apply the last resolution against the current target rect.
func (st *Strategy) Position(el dom.Element, size geom.Size, doc dom.Document, initialCall bool, target dom.Target) error {
	if el == nil || el.Parent() == nil {
		return errors.New(errors.ErrCodeDetached, "content element is not attached to a parent")
	}
	if target == nil {
		target = st.settings.Target
	}
	targetRect := dom.TargetRect(target)

	if !initialCall && st.last != nil {
		return st.apply(el, targetRect, *st.last)
	}

	st.reset(el)
	elementRect := measure(el, size)
	res := Resolution{Settings: st.settings, Size: elementRect.Size()}

	if st.policy != nil && doc != nil {
		fit := NewConnectedFit(targetRect, elementRect, dom.ClientViewportRect(doc), st.settings, geom.Point{})
		observability.Position().OnFit(st.name, fit.FitHorizontal, fit.FitVertical)
		if !fit.Fits() {
			res = st.policy.Resolve(FitInput{Fit: fit, Settings: st.settings})
		}
	}

	st.last = &res
	return st.apply(el, targetRect, res)
}

// reset removes what the previous resolution wrote beyond the offsets, so
// el is measured at its natural size.
func (st *Strategy) reset(el dom.Element) {
	if st.last == nil {
		return
	}
	style := el.Style()
	style.Remove(dom.PropTransform)
	for prop := range st.last.Patch {
		style.Remove(prop)
	}
}

func (st *Strategy) apply(el dom.Element, targetRect geom.Rect, res Resolution) error {
	style := el.Style()
	for _, prop := range slices.Sorted(maps.Keys(res.Patch)) {
		style.Set(prop, res.Patch[prop])
	}
	if err := Connect(el, targetRect, res.Size, res.Settings, res.Offset); err != nil {
		return err
	}
	style.SetTranslate(res.Translate.X, res.Translate.Y)
	return nil
}

func measure(el dom.Element, size geom.Size) geom.Rect {
	r := el.BoundingClientRect()
	if size.IsZero() {
		return r
	}
	return geom.RectFromOrigin(r.Origin(), size)
}
