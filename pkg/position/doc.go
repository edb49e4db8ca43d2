// Package position computes where a floating element (dropdown, tooltip,
// select list, dialog) renders relative to a target and the viewport.
//
// # Building blocks
//
// Every strategy is the same connected-positioning primitive, [Connect],
// optionally followed by a [FitPolicy] that decides what to do when the
// content does not fit the viewport:
//
//   - [NewConnected]: place only, never test the viewport
//   - [NewAuto]: flip to the mirrored side when that fits, otherwise push
//   - [NewElastic]: shrink toward Settings.MinSize
//   - [NewAutoElastic]: clamp/fill height, then flip or push
//   - [NewExcelStyle]: try fixed corner candidates, then auto-elastic
//   - [NewTooltip]: auto plus arrow placement
//   - [NewSelect]: align a list item with the input that opened it
//
// [Settings] are immutable. A policy returns a new [Resolution] instead of
// mutating anything, so every initial call starts from the caller's original
// intent and repeated calls are idempotent.
//
// # Initial and reactive calls
//
// The initialCall argument separates first placement from reactive
// repositioning (scroll, resize). Reactive calls re-apply the last resolution
// against the current target rect and never re-derive flip or push, which
// keeps content from oscillating while the page scrolls.
//
// # Output
//
// Strategies write inline styles only: at most one of left/right and one of
// top/bottom, plus width/height and a translate transform when a policy asks
// for them. All pixel values are rounded.
//
// # Example
//
//	s := position.NewAuto(position.DefaultSettings())
//	if err := s.Position(content, geom.Size{}, page, true, button); err != nil {
//	    return err
//	}
//	fmt.Println(content.Style())
package position
