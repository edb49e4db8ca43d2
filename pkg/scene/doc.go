// Package scene describes positioning problems as data and resolves them.
//
// A [Scene] is a viewport, a target, a content box and the strategy that
// places one relative to the other. Scenes are written as TOML or JSON,
// materialized into an in-memory page with [Scene.Build], and resolved with
// [Resolve]:
//
//	s, err := scene.Import("dropdown.toml")
//	if err != nil {
//	    return err
//	}
//	res, err := scene.Resolve(s)
//	fmt.Println(res.Style)
//
// # File format
//
//	name = "dropdown"
//	strategy = "auto"
//
//	[viewport]
//	width = 800
//	height = 600
//
//	[target]
//	x = 700
//	y = 550
//	width = 80
//	height = 30
//
//	[content]
//	width = 200
//	height = 150
//
//	[settings]
//	horizontal_direction = "right"
//	vertical_direction = "bottom"
//
//	[[ticks]]
//	scroll_y = 40
//
// Ticks replay page scrolls, target moves and viewport resizes after the
// initial call, each followed by a reactive call (or a full one when
// initial is set).
package scene
