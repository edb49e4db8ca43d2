// Package pkg holds the overlaykit libraries.
//
// # Overview
//
// overlaykit computes where an overlay (dropdown, tooltip, select list, cell
// editor) opens relative to the element it is attached to, and how it reacts
// when it would leave the viewport. The pkg directory is organized as:
//
//  1. [geom] and [dom] - rectangles, alignments and the element contracts
//  2. [position] - the positioning strategies and fit policies
//  3. [scene] - serializable positioning problems and their resolution
//  4. [render] - SVG, PNG, PDF and placement-graph output
//  5. [pipeline] - cached orchestration (load → resolve → render)
//  6. [cache], [store] - result caching and scene persistence
//  7. [errors], [observability], [buildinfo] - shared infrastructure
//
// # Data Flow
//
//	scene file (.toml / .json)
//	         ↓
//	    [scene] package (build an in-memory page)
//	         ↓
//	    [position] package (connect, fit, flip, push, resize)
//	         ↓
//	    [render] package
//	         ↓
//	    SVG/PDF/PNG/JSON output
//
// # Quick Start
//
// Position a dropdown against an in-memory page:
//
//	import (
//	    "github.com/matzehuels/overlaykit/pkg/dom"
//	    "github.com/matzehuels/overlaykit/pkg/geom"
//	    "github.com/matzehuels/overlaykit/pkg/position"
//	)
//
//	page := dom.NewPage(geom.Size{Width: 800, Height: 600})
//	button := dom.NewBox("button", geom.Point{X: 760, Y: 100}, geom.Size{Width: 40, Height: 20})
//	menu := dom.NewPositionedBox("menu", geom.Size{Width: 200, Height: 120})
//	page.Root.Append(button, menu)
//
//	s := position.DefaultSettings()
//	s.HorizontalDirection = geom.Right
//	s.HorizontalStartPoint = geom.Right
//	st := position.NewAuto(s)
//	err := st.Position(menu, geom.Size{}, page, true, button)
//
// Or resolve a scene file end to end:
//
//	sc, _ := scene.Import("dropdown.toml")
//	res, _ := scene.Resolve(sc)
//	svg := render.RenderSVG(res)
package pkg
