package position_test

import (
	"fmt"

	"github.com/matzehuels/overlaykit/pkg/dom"
	"github.com/matzehuels/overlaykit/pkg/geom"
	"github.com/matzehuels/overlaykit/pkg/position"
)

func ExampleNewAuto() {
	// A 300px wide viewport with a button at its right edge.
	page := dom.NewPage(geom.Size{Width: 300, Height: 300})
	button := dom.NewBox("button", geom.Point{X: 290, Y: 100}, geom.Size{Width: 10, Height: 20})
	menu := dom.NewPositionedBox("menu", geom.Size{Width: 100, Height: 50})
	page.Root.Append(button, menu)

	s := position.DefaultSettings()
	s.HorizontalStartPoint = geom.Right

	st := position.NewAuto(s)
	if err := st.Position(menu, geom.Size{}, page, true, button); err != nil {
		fmt.Println("error:", err)
		return
	}
	res, _ := st.Resolved()
	fmt.Println("style:", menu.Style())
	fmt.Println("direction:", res.Settings.HorizontalDirection)
	// Output:
	// style: right: 10px; top: 120px
	// direction: left
}

func ExamplePlacementBySettings() {
	s := position.PlacementSettings(position.PlacementLeftEnd, position.DefaultSettings())
	fmt.Println(position.PlacementBySettings(s))
	// Output:
	// left-end
}
