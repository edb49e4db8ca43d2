package position

import (
	"maps"
	"math"

	"github.com/matzehuels/overlaykit/pkg/dom"
	"github.com/matzehuels/overlaykit/pkg/errors"
	"github.com/matzehuels/overlaykit/pkg/geom"
	"github.com/matzehuels/overlaykit/pkg/observability"
)

// SelectList is the dropdown a select strategy positions.
type SelectList struct {
	// Input is the element that opened the list; it is the default target.
	Input dom.Typographic
	// Scroll is the scrollable part of the content holding the items.
	Scroll dom.ScrollContainer
	Items  []dom.Typographic
	// Selected indexes Items, or is negative when nothing is selected.
	Selected int
}

// interactionItem is the selected item, or the first one.
func (l SelectList) interactionItem() dom.Typographic {
	if l.Selected >= 0 && l.Selected < len(l.Items) {
		return l.Items[l.Selected]
	}
	if len(l.Items) > 0 {
		return l.Items[0]
	}
	return nil
}

// SelectCache is returned by the initial call and passed back on reactive
// calls so they re-apply the same offsets without reading item metrics.
type SelectCache struct {
	YOffset   float64           `json:"y_offset"`
	XOffset   float64           `json:"x_offset"`
	ScrollTop float64           `json:"scroll_top"`
	TextDiff  float64           `json:"text_diff"`
	Styles    map[string]string `json:"styles"`
}

// Clone returns a copy that does not share the style map.
func (c SelectCache) Clone() SelectCache {
	c.Styles = maps.Clone(c.Styles)
	return c
}

// SelectStrategy overlays a list on its input so the text of the selected
// item lines up with the text of the input.
type SelectStrategy struct {
	settings Settings
	list     SelectList
}

// NewSelect returns a select strategy for list.
func NewSelect(list SelectList, s Settings) *SelectStrategy {
	return &SelectStrategy{settings: s, list: list}
}

// Name returns "select".
func (st *SelectStrategy) Name() string { return "select" }

// Settings returns the settings the strategy was created with.
func (st *SelectStrategy) Settings() Settings { return st.settings }

// Clone returns a copy positioning the same list.
func (st *SelectStrategy) Clone() *SelectStrategy {
	c := *st
	return &c
}

// Position aligns the interaction item with the input. On initial calls, or
// when cache is nil, offsets and scroll are derived from scratch; otherwise
// the cached values are re-applied against the current input rect.
func (st *SelectStrategy) Position(el dom.Element, size geom.Size, doc dom.Document, initialCall bool, target dom.Target, cache *SelectCache) (*SelectCache, error) {
	if el == nil || el.Parent() == nil {
		return nil, errors.New(errors.ErrCodeDetached, "content element is not attached to a parent")
	}
	if target == nil {
		target = st.settings.Target
	}
	if target == nil && st.list.Input != nil {
		target = st.list.Input
	}
	targetRect := dom.TargetRect(target)
	contentRect := measure(el, size)

	if !initialCall && cache != nil {
		c := cache.Clone()
		if st.list.Scroll != nil {
			st.list.Scroll.SetScrollTop(c.ScrollTop)
		}
		if err := Connect(el, targetRect, contentRect.Size(), st.settings, geom.Point{X: c.XOffset, Y: c.YOffset}); err != nil {
			return nil, err
		}
		c.Styles = el.Style().Properties()
		return &c, nil
	}

	c, err := st.derive(targetRect, contentRect, doc)
	if err != nil {
		return nil, err
	}
	if err := Connect(el, targetRect, contentRect.Size(), st.settings, geom.Point{X: c.XOffset, Y: c.YOffset}); err != nil {
		return nil, err
	}
	c.Styles = el.Style().Properties()
	return c, nil
}

func (st *SelectStrategy) derive(inputRect, contentRect geom.Rect, doc dom.Document) (*SelectCache, error) {
	item := st.list.interactionItem()
	scroll := st.list.Scroll
	if item == nil || scroll == nil {
		return &SelectCache{}, nil
	}
	scroll.SetScrollTop(0)

	containerRect := scroll.BoundingClientRect()
	itemRect := item.BoundingClientRect()

	textDiff := st.itemTextToInputTextDiff(itemRect, item.ComputedMetrics(), inputRect)
	itemTop := itemRect.Top - containerRect.Top
	maxScroll := math.Max(0, scroll.ScrollHeight()-scroll.ClientHeight())
	scrollAmount := clamp(itemTop-(scroll.ClientHeight()/2-itemRect.Height/2), 0, maxScroll)

	containerTop := containerRect.Top - contentRect.Top
	yOffset := -(containerTop + itemTop - scrollAmount + textDiff)
	xOffset := st.xOffset(item.ComputedMetrics(), itemRect.Left-contentRect.Left)

	if doc != nil {
		vp := dom.ClientViewportRect(doc)
		top := inputRect.Top + yOffset
		fitsTop := top >= vp.Top
		if !fitsTop {
			extra := math.Min(vp.Top-top, maxScroll-scrollAmount)
			scrollAmount += extra
			yOffset += extra
			if inputRect.Top+yOffset < vp.Top {
				yOffset = 0
			}
		}
		bottom := inputRect.Top + yOffset + contentRect.Height
		fitsBottom := bottom <= vp.Bottom
		if !fitsBottom {
			less := math.Min(bottom-vp.Bottom, scrollAmount)
			scrollAmount -= less
			yOffset -= less
			if inputRect.Top+yOffset+contentRect.Height > vp.Bottom {
				yOffset = -contentRect.Height + inputRect.Height
			}
		}
		observability.Position().OnFit(st.Name(), true, fitsTop && fitsBottom)
	}

	scrollAmount = math.Round(scrollAmount)
	scroll.SetScrollTop(scrollAmount)
	return &SelectCache{
		YOffset:   math.Round(yOffset),
		XOffset:   math.Round(xOffset),
		ScrollTop: scrollAmount,
		TextDiff:  textDiff,
	}, nil
}

// itemTextToInputTextDiff is how far the item's text sits below the input's
// text when both boxes share a top edge.
func (st *SelectStrategy) itemTextToInputTextDiff(itemRect geom.Rect, itemMetrics dom.Metrics, inputRect geom.Rect) float64 {
	var inputMetrics dom.Metrics
	if st.list.Input != nil {
		inputMetrics = st.list.Input.ComputedMetrics()
	}
	return math.Round(textTop(itemRect.Height, itemMetrics) - textTop(inputRect.Height, inputMetrics))
}

func textTop(height float64, m dom.Metrics) float64 {
	return (height-m.FontSize)/2 + (m.PaddingTop-m.PaddingBottom)/2
}

// xOffset lines the item's text start up with the input's text start.
// itemLeft is the item's left edge within the content.
func (st *SelectStrategy) xOffset(itemMetrics dom.Metrics, itemLeft float64) float64 {
	var inputMetrics dom.Metrics
	if st.list.Input != nil {
		inputMetrics = st.list.Input.ComputedMetrics()
	}
	inputText := inputMetrics.PaddingLeft + inputMetrics.TextIndent
	itemText := itemLeft + itemMetrics.PaddingLeft + itemMetrics.TextIndent
	return inputText - itemText
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
