package render

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"slices"
	"strings"

	"github.com/matzehuels/overlaykit/pkg/geom"
	"github.com/matzehuels/overlaykit/pkg/scene"
)

// DefaultStyleSheet styles the shapes written by [RenderSVG].
const DefaultStyleSheet = `
    .viewport { fill: #fafafa; stroke: #333; stroke-width: 2; }
    .wrapper { fill: none; stroke: #999; stroke-dasharray: 6 4; }
    .target { fill: #cfe3ff; stroke: #2563eb; stroke-width: 1.5; }
    .content { fill: #ffffff; fill-opacity: 0.9; stroke: #111; stroke-width: 1.5; }
    .content.flipped { stroke: #d97706; }
    .content.pushed { stroke-dasharray: 4 2; }
    .item { fill: none; stroke: #bbb; }
    .item.selected { fill: #e5e7eb; }
    .arrow { fill: #111; }
    .grid { stroke: #eee; stroke-width: 1; }
    .label { font: 12px sans-serif; fill: #333; }`

const framePadding = 20

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	labels bool
	grid   float64
	css    string
}

// WithLabels writes the name of every shape next to it.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithGrid draws a background grid with the given spacing in pixels.
func WithGrid(step float64) SVGOption { return func(r *svgRenderer) { r.grid = step } }

// WithStyleSheet replaces [DefaultStyleSheet].
func WithStyleSheet(css string) SVGOption { return func(r *svgRenderer) { r.css = css } }

type shape struct {
	class string
	label string
	rect  geom.Rect
}

// RenderSVG draws res in client coordinates. The frame grows to include
// content placed outside the viewport.
func RenderSVG(res *scene.Result, opts ...SVGOption) []byte {
	r := svgRenderer{css: DefaultStyleSheet}
	for _, opt := range opts {
		opt(&r)
	}

	shapes := buildShapes(res)
	frame := bounds(shapes)
	minX, minY := frame.Left-framePadding, frame.Top-framePadding
	w, h := frame.Width+2*framePadding, frame.Height+2*framePadding

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		minX, minY, w, h, w, h)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", r.css)
	if res.Scene != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(res.Scene))
	}
	if r.grid > 0 {
		renderGrid(&buf, minX, minY, w, h, r.grid)
	}
	for _, s := range shapes {
		renderRect(&buf, s)
	}
	if r.labels {
		for _, s := range shapes {
			renderLabel(&buf, s)
		}
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func buildShapes(res *scene.Result) []shape {
	shapes := []shape{
		{class: "viewport", label: "viewport", rect: res.Viewport},
		{class: "wrapper", label: "wrapper", rect: res.Wrapper},
		{class: "target", label: "target", rect: res.Target},
	}
	selected := -1
	if res.Select != nil {
		selected = selectedItem(res)
	}
	for i, it := range res.Items {
		class := "item"
		if i == selected {
			class += " selected"
		}
		shapes = append(shapes, shape{class: class, label: fmt.Sprintf("item %d", i), rect: it})
	}
	shapes = append(shapes, shape{class: contentClass(res), label: contentLabel(res), rect: res.Content})
	if res.Arrow != nil {
		shapes = append(shapes, shape{class: "arrow " + res.Arrow.Class, rect: res.Arrow.Rect})
	}
	return shapes
}

// selectedItem returns the index of the item that sits under the target.
func selectedItem(res *scene.Result) int {
	for i, it := range res.Items {
		if it.Top <= res.Target.Top && res.Target.Top < it.Bottom {
			return i
		}
	}
	return -1
}

func contentClass(res *scene.Result) string {
	classes := []string{"content"}
	if len(res.Flipped) > 0 {
		classes = append(classes, "flipped")
	}
	if res.Style["transform"] != "" {
		classes = append(classes, "pushed")
	}
	return strings.Join(classes, " ")
}

func contentLabel(res *scene.Result) string {
	label := res.Strategy
	if res.Placement != "" {
		label += " " + res.Placement
	}
	if len(res.Flipped) > 0 {
		label += " (flipped " + strings.Join(res.Flipped, ", ") + ")"
	}
	return label
}

func bounds(shapes []shape) geom.Rect {
	if len(shapes) == 0 {
		return geom.Rect{}
	}
	left, top := math.Inf(1), math.Inf(1)
	right, bottom := math.Inf(-1), math.Inf(-1)
	for _, s := range shapes {
		left = min(left, s.rect.Left)
		top = min(top, s.rect.Top)
		right = max(right, s.rect.Right)
		bottom = max(bottom, s.rect.Bottom)
	}
	return geom.RectFromOrigin(geom.Point{X: left, Y: top}, geom.Size{Width: right - left, Height: bottom - top})
}

func renderGrid(buf *bytes.Buffer, minX, minY, w, h, step float64) {
	buf.WriteString(`  <g class="grid">` + "\n")
	for _, x := range gridLines(minX, minX+w, step) {
		fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", x, minY, x, minY+h)
	}
	for _, y := range gridLines(minY, minY+h, step) {
		fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", minX, y, minX+w, y)
	}
	buf.WriteString("  </g>\n")
}

// gridLines returns the multiples of step within [lo, hi].
func gridLines(lo, hi, step float64) []float64 {
	var out []float64
	for v := math.Ceil(lo/step) * step; v <= hi; v += step {
		if v == 0 {
			v = 0 // drop negative zero
		}
		out = append(out, v)
	}
	return slices.Clip(out)
}

func renderRect(buf *bytes.Buffer, s shape) {
	fmt.Fprintf(buf, `  <rect class="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
		s.class, s.rect.Left, s.rect.Top, s.rect.Width, s.rect.Height)
}

func renderLabel(buf *bytes.Buffer, s shape) {
	if s.label == "" {
		return
	}
	fmt.Fprintf(buf, `  <text class="label" x="%.1f" y="%.1f">%s</text>`+"\n",
		s.rect.Left+4, s.rect.Top+14, html.EscapeString(s.label))
}
