// Package plotgeom computes the geometry of 2D and 3D plots.
//
// # Overview
//
// plotgeom is the layout stage of a plotting pipeline: it takes axis
// ranges, pre-sampled data series and a pixel viewport, and emits an
// ordered scene of drawing primitives (lines, paths, text anchors,
// markers) in final pixel coordinates. Rasterization, file output and
// interactivity live elsewhere; everything here is pure geometry.
//
// # Quick Start
//
//	import "github.com/plotforge/plotgeom"
//
//	spec := plotgeom.PlotSpec{
//		X:        plotgeom.FixedRange(0, 10),
//		Y:        plotgeom.AutoRange(),
//		YData:    plotgeom.Extent(-1, 1),
//		Viewport: plotgeom.ViewportFromCanvas(800, 600, plotgeom.Margins{Left: 54, Right: 25, Top: 66, Bottom: 36}),
//		Series:   []plotgeom.Series{{Name: "sin(x)", Points: samples}},
//	}
//
//	sc, err := plotgeom.Render(spec)
//	// sc.Primitives() is the scene in paint order.
//
// # Pipeline
//
// A render call runs four stages:
//   - Range resolution: auto-scaled ends take observed data extrema,
//     degenerate point ranges get symmetric padding, reversed and log
//     axes are validated.
//   - Tick generation: nice-number steps on linear axes, powers of ten
//     on log axes, with labels formatted to the fewest distinguishing
//     digits.
//   - Projection: 2D plots map data straight into the viewport; 3D
//     plots pass through a rotate-then-tilt view transform with a
//     configurable base-plane level, then scale into the viewport with
//     the surface ratio.
//   - Composition: grid, axes, series (back-to-front by depth in 3D)
//     and legend are appended to the scene in paint order.
//
// # Coordinate Systems
//
// Data space is whatever the axis ranges say. Projected space is a
// normalized plane centered on the origin with +v up; the viewport
// mapping scales by half the plot extent, so a unit offset spans half
// the viewport. Pixel space has its origin at the canvas top-left with
// y increasing down; the viewport mapping performs the vertical flip.
//
// # Concurrency
//
// Render is pure: separate calls never share state, so concurrent
// renders need no locking. The package-level logger is the only shared
// mutable configuration and is safe to swap at any time.
package plotgeom
