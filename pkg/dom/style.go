package dom

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Positioning properties written by the engine.
const (
	PropTop       = "top"
	PropLeft      = "left"
	PropRight     = "right"
	PropBottom    = "bottom"
	PropWidth     = "width"
	PropHeight    = "height"
	PropTransform = "transform"
)

// OffsetProps are the four offset properties, cleared together before a
// connected placement is written.
var OffsetProps = []string{PropRight, PropLeft, PropBottom, PropTop}

// Style is an element's inline style declaration. Properties keep the order
// in which they were first set. The zero value is ready to use.
type Style struct {
	order []string
	props map[string]string
}

// NewStyle returns an empty style.
func NewStyle() *Style { return &Style{} }

// Set assigns a property. An empty value removes it.
func (s *Style) Set(prop, value string) {
	if value == "" {
		s.Remove(prop)
		return
	}
	if s.props == nil {
		s.props = make(map[string]string)
	}
	if _, ok := s.props[prop]; !ok {
		s.order = append(s.order, prop)
	}
	s.props[prop] = value
}

// Get returns the property value or "" when unset.
func (s *Style) Get(prop string) string { return s.props[prop] }

// Has reports whether prop is set.
func (s *Style) Has(prop string) bool {
	_, ok := s.props[prop]
	return ok
}

// Remove deletes a property.
func (s *Style) Remove(prop string) {
	if _, ok := s.props[prop]; !ok {
		return
	}
	delete(s.props, prop)
	for i, p := range s.order {
		if p == prop {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Clear removes every listed property.
func (s *Style) Clear(props ...string) {
	for _, p := range props {
		s.Remove(p)
	}
}

// SetPx writes v rounded to the nearest pixel, e.g. "120px".
func (s *Style) SetPx(prop string, v float64) {
	s.Set(prop, FormatPx(v))
}

// Px parses a pixel property. ok is false when the property is unset or not
// a pixel length.
func (s *Style) Px(prop string) (v float64, ok bool) {
	return ParsePx(s.Get(prop))
}

// SetTranslate writes a translateX/translateY transform. A zero component is
// omitted and a zero translation clears the transform.
func (s *Style) SetTranslate(dx, dy float64) {
	var parts []string
	if dx != 0 {
		parts = append(parts, fmt.Sprintf("translateX(%s)", FormatPx(dx)))
	}
	if dy != 0 {
		parts = append(parts, fmt.Sprintf("translateY(%s)", FormatPx(dy)))
	}
	s.Set(PropTransform, strings.Join(parts, " "))
}

var translateRe = regexp.MustCompile(`translate([XY])\(\s*(-?[0-9.]+)px\s*\)`)

// Translate returns the translation encoded in the transform property.
func (s *Style) Translate() (dx, dy float64) {
	for _, m := range translateRe.FindAllStringSubmatch(s.Get(PropTransform), -1) {
		v, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		if m[1] == "X" {
			dx += v
		} else {
			dy += v
		}
	}
	return dx, dy
}

// Properties returns a copy of all set properties.
func (s *Style) Properties() map[string]string {
	out := make(map[string]string, len(s.props))
	for k, v := range s.props {
		out[k] = v
	}
	return out
}

// Names returns property names in declaration order.
func (s *Style) Names() []string {
	return append([]string(nil), s.order...)
}

// Clone returns an independent copy.
func (s *Style) Clone() *Style {
	c := &Style{order: append([]string(nil), s.order...)}
	if s.props != nil {
		c.props = s.Properties()
	}
	return c
}

// Equal reports whether both styles hold the same properties.
func (s *Style) Equal(o *Style) bool {
	if len(s.props) != len(o.props) {
		return false
	}
	for k, v := range s.props {
		if o.props[k] != v {
			return false
		}
	}
	return true
}

// String renders the declaration block, e.g. "left: 100px; top: 120px".
func (s *Style) String() string {
	parts := make([]string, 0, len(s.order))
	for _, p := range s.order {
		parts = append(parts, p+": "+s.props[p])
	}
	return strings.Join(parts, "; ")
}

// FormatPx rounds v and formats it as a pixel length.
func FormatPx(v float64) string {
	r := math.Round(v)
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64) + "px"
}

// ParsePx parses "12px" or a bare number.
func ParsePx(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
