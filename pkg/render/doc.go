// Package render draws resolved scenes and the tooltip placement graph.
//
// # Scene SVG
//
// [RenderSVG] turns a [scene.Result] into a standalone SVG: the viewport
// frame, the wrapper, the target, the positioned content and, for tooltips,
// the arrow. Content that was flipped or pushed carries the matching CSS
// class so a stylesheet can highlight it.
//
//	res, err := scene.Resolve(s)
//	svg := render.RenderSVG(res, render.WithLabels(), render.WithGrid(50))
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// (from librsvg).
//
// # Placement graph
//
// Tooltips fall back to the opposite side when their placement does not fit.
// [PlacementDOT] describes these fallbacks as a Graphviz digraph and
// [RenderPlacementGraph] lays it out in-process with
// [github.com/goccy/go-graphviz].
//
//	svg, err := render.RenderPlacementGraph(ctx, render.PlacementDOT())
package render
