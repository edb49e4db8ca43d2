// Package geom provides the geometry primitives used by the positioning engine.
//
// # Coordinates
//
// All rectangles are axis-aligned and expressed in client (viewport-relative)
// coordinates unless a function says otherwise. A [Rect] is a read-only
// snapshot: helpers such as [Rect.Translate] return new values instead of
// mutating the receiver.
//
// # Alignment
//
// [HorizontalAlignment] and [VerticalAlignment] share the value set
// {-1, -0.5, 0}. The same value describes both the side of a start point the
// content grows toward (a direction) and where on the target the start point
// sits. Because of that encoding, an element's leading edge is
//
//	left = target.Right + target.Width*startPoint + content.Width*direction
//
// and flipping is the algebraic map v -> -1*(v+1), which swaps Left/Right and
// Top/Bottom while leaving Center and Middle fixed.
package geom
