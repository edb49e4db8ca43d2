package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/overlaykit/pkg/position"
)

// PlacementEdge is one fallback between two tooltip placements.
type PlacementEdge struct {
	From, To position.Placement
	// Axis is the flipped axis: "horizontal" or "vertical".
	Axis string
}

// PlacementEdges lists the placement a tooltip ends up in when the flip
// policy flips one axis of each placement. Centered directions never flip,
// so side placements only fall back along their own axis.
func PlacementEdges() []PlacementEdge {
	var edges []PlacementEdge
	for _, p := range position.Placements {
		s := position.PositionsMap[p]
		if s.HorizontalDirection != s.HorizontalDirection.Flip() {
			to := position.PlacementBySettings(s.FlipHorizontal())
			edges = append(edges, PlacementEdge{From: p, To: to, Axis: "horizontal"})
		}
		if s.VerticalDirection != s.VerticalDirection.Flip() {
			to := position.PlacementBySettings(s.FlipVertical())
			edges = append(edges, PlacementEdge{From: p, To: to, Axis: "vertical"})
		}
	}
	return edges
}

// PlacementDOT describes the placement fallbacks in Graphviz DOT format.
func PlacementDOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph placements {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, p := range position.Placements {
		fmt.Fprintf(&buf, "  %q [label=%q, group=%q];\n", p, p, p.Side())
	}
	buf.WriteString("\n")
	for _, e := range PlacementEdges() {
		style := "solid"
		if e.Axis == "horizontal" {
			style = "dashed"
		}
		fmt.Fprintf(&buf, "  %q -> %q [label=%q, style=%s];\n", e.From, e.To, e.Axis, style)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// RenderPlacementGraph lays out a DOT graph with Graphviz and returns SVG.
func RenderPlacementGraph(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz svg header with one sized to its
// viewBox so the output scales cleanly.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
