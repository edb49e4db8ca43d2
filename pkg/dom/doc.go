// Package dom defines the element and document contracts the positioning
// engine works against, plus a small in-memory implementation of them.
//
// # Contracts
//
// An [Element] exposes a client rect, its parent and an inline [Style]. A
// [Document] exposes viewport metrics. Hosts adapt their own node types to
// these interfaces; the engine never touches anything else.
//
// # In-memory tree
//
// [Box] and [Page] implement the contracts for tests, the CLI and the HTTP
// service. A Box created with [NewPositionedBox] behaves like an absolutely
// positioned element: its client rect is derived from its inline style
// (left/right/top/bottom/width/height/transform) relative to its parent on
// every read, so a style write is observable exactly as in a browser.
//
//	page := dom.NewPage(geom.Size{Width: 800, Height: 600})
//	wrapper := dom.NewBox("wrapper", geom.Point{}, geom.Size{Width: 800, Height: 600})
//	content := dom.NewPositionedBox("content", geom.Size{Width: 200, Height: 50})
//	page.Root.Append(wrapper.Append(content))
package dom
