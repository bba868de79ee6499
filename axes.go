package plotgeom

import (
	"github.com/plotforge/plotgeom/scene"
)

// axisStyle is the stroke for borders, tick marks and axis lines.
func axisStyle() scene.Style {
	return scene.Style{Color: scene.RGB(0, 0, 0), Width: 1}
}

// gridLineStyle is the stroke for grid lines: light gray hairlines
// drawn beneath the data.
func gridLineStyle() scene.Style {
	return scene.Style{Color: scene.RGB(0.8, 0.8, 0.8), Width: 0.5}
}

// mapX maps a data-space x value to its pixel column in a 2D plot.
func mapX(rect ViewportRect, xr ResolvedRange, x float64) float64 {
	return rect.ToPixel(xr.Normalize(x), 0, 1).X
}

// mapY maps a data-space y value to its pixel row in a 2D plot.
func mapY(rect ViewportRect, yr ResolvedRange, y float64) float64 {
	return rect.ToPixel(0, yr.Normalize(y), 1).Y
}

// buildGrid2D emits grid lines at the major tick positions. Grid lines
// go in before data so series draw on top of them.
func buildGrid2D(sc *scene.Scene, rect ViewportRect, xr, yr ResolvedRange, xt, yt TickSet) {
	style := gridLineStyle()
	for _, t := range xt {
		if t.Minor {
			continue
		}
		px := mapX(rect, xr, t.Position)
		sc.Append(scene.Line{
			P0:    scene.Pt(px, rect.Top),
			P1:    scene.Pt(px, rect.Bottom),
			Style: style,
		})
	}
	for _, t := range yt {
		if t.Minor {
			continue
		}
		py := mapY(rect, yr, t.Position)
		sc.Append(scene.Line{
			P0:    scene.Pt(rect.Left, py),
			P1:    scene.Pt(rect.Right, py),
			Style: style,
		})
	}
}

// buildAxes2D emits the border box, tick marks, tick labels and axis
// titles for a 2D plot. Tick marks point inward from the bottom/left
// edges; with mirroring enabled the top/right edges repeat them at the
// same data positions, only the mark direction and anchor edge differ.
func buildAxes2D(sc *scene.Scene, spec *PlotSpec, rect ViewportRect, xr, yr ResolvedRange, xt, yt TickSet) {
	style := axisStyle()

	if spec.Border {
		sc.Append(scene.Path{
			Points: []scene.Point{
				scene.Pt(rect.Left, rect.Top),
				scene.Pt(rect.Right, rect.Top),
				scene.Pt(rect.Right, rect.Bottom),
				scene.Pt(rect.Left, rect.Bottom),
			},
			Closed: true,
			Style:  style,
		})
	}

	for _, t := range xt {
		px := mapX(rect, xr, t.Position)
		length := tickMarkLength
		if t.Minor {
			length *= minorTickScale
		}

		// Inward from the bottom edge.
		sc.Append(scene.Line{
			P0:    scene.Pt(px, rect.Bottom),
			P1:    scene.Pt(px, rect.Bottom-length),
			Style: style,
		})
		if spec.MirrorTicks {
			sc.Append(scene.Line{
				P0:    scene.Pt(px, rect.Top),
				P1:    scene.Pt(px, rect.Top+length),
				Style: style,
			})
		}

		if !t.Minor && t.Label != "" {
			sc.Append(scene.Text{
				Anchor: scene.Pt(px, rect.Bottom+axisLabelClearance),
				Text:   t.Label,
				HAlign: scene.AlignCenter,
				VAlign: scene.AlignTop,
				Size:   defaultFontSize,
				Style:  style,
			})
		}
	}

	for _, t := range yt {
		py := mapY(rect, yr, t.Position)
		length := tickMarkLength
		if t.Minor {
			length *= minorTickScale
		}

		// Inward from the left edge.
		sc.Append(scene.Line{
			P0:    scene.Pt(rect.Left, py),
			P1:    scene.Pt(rect.Left+length, py),
			Style: style,
		})
		if spec.MirrorTicks {
			sc.Append(scene.Line{
				P0:    scene.Pt(rect.Right, py),
				P1:    scene.Pt(rect.Right-length, py),
				Style: style,
			})
		}

		if !t.Minor && t.Label != "" {
			sc.Append(scene.Text{
				Anchor: scene.Pt(rect.Left-axisLabelClearance, py),
				Text:   t.Label,
				HAlign: scene.AlignRight,
				VAlign: scene.AlignMiddle,
				Size:   defaultFontSize,
				Style:  style,
			})
		}
	}

	if spec.XLabel != "" {
		sc.Append(scene.Text{
			Anchor: scene.Pt((rect.Left+rect.Right)/2, rect.Bottom+axisTitleClearance),
			Text:   spec.XLabel,
			HAlign: scene.AlignCenter,
			VAlign: scene.AlignTop,
			Size:   defaultFontSize,
			Style:  style,
		})
	}
	if spec.YLabel != "" {
		sc.Append(scene.Text{
			Anchor:   scene.Pt(rect.Left-axisTitleClearance, (rect.Top+rect.Bottom)/2),
			Text:     spec.YLabel,
			Rotation: 90,
			HAlign:   scene.AlignCenter,
			VAlign:   scene.AlignBottom,
			Size:     defaultFontSize,
			Style:    style,
		})
	}
}

// axes3D is the projected base box and tick geometry of a 3D plot.
type axes3D struct {
	view  *View
	rect  ViewportRect
	ratio float64

	xr, yr, zr ResolvedRange
}

// pixel projects a data point and maps it into the viewport.
func (a *axes3D) pixel(x, y, z float64) (scene.Point, error) {
	vp, err := a.view.Project(x, y, z)
	if err != nil {
		return scene.Point{}, err
	}
	return a.rect.ToPixel(vp.U, vp.V, a.ratio), nil
}

// build emits the base box edges, per-axis tick marks and labels, and
// axis titles for a 3D plot.
//
// The base box is drawn the way the reference tool draws it: the three
// axis edges leaving the origin corner plus the two edges closing the
// bottom face. Tick marks sit perpendicular to the projected axis
// direction, since a projected 3D axis is not screen-aligned; labels
// ride further out along the same screen-space normal.
func (a *axes3D) build(sc *scene.Scene, spec *PlotSpec, xt, yt, zt TickSet) error {
	style := axisStyle()

	xLo, xHi := a.xr.Min, a.xr.Max
	yLo, yHi := a.yr.Min, a.yr.Max
	zBase := a.view.ZFloor()
	zTop := a.zr.Max

	type edge struct{ x0, y0, z0, x1, y1, z1 float64 }
	edges := [...]edge{
		{xLo, yLo, zBase, xHi, yLo, zBase}, // x axis
		{xLo, yLo, zBase, xLo, yHi, zBase}, // y axis
		{xLo, yLo, zBase, xLo, yLo, zTop},  // z axis
		{xHi, yLo, zBase, xHi, yHi, zBase}, // close bottom, right side
		{xLo, yHi, zBase, xHi, yHi, zBase}, // close bottom, back side
	}
	for _, e := range edges {
		p0, err := a.pixel(e.x0, e.y0, e.z0)
		if err != nil {
			return err
		}
		p1, err := a.pixel(e.x1, e.y1, e.z1)
		if err != nil {
			return err
		}
		sc.Append(scene.Line{P0: p0, P1: p1, Style: style})
	}

	// Tick marks along each axis edge.
	if err := a.ticksAlong(sc, xt, func(v float64) (float64, float64, float64) {
		return v, yLo, zBase
	}); err != nil {
		return err
	}
	if err := a.ticksAlong(sc, yt, func(v float64) (float64, float64, float64) {
		return xLo, v, zBase
	}); err != nil {
		return err
	}
	if err := a.ticksAlong(sc, zt, func(v float64) (float64, float64, float64) {
		return xLo, yLo, v
	}); err != nil {
		return err
	}

	// Axis titles sit past the tick labels at each axis midpoint.
	titles := [...]struct {
		text       string
		x0, y0, z0 float64
		x1, y1, z1 float64
	}{
		{spec.XLabel, xLo, yLo, zBase, xHi, yLo, zBase},
		{spec.YLabel, xLo, yLo, zBase, xLo, yHi, zBase},
		{spec.ZLabel, xLo, yLo, zBase, xLo, yLo, zTop},
	}
	for _, ti := range titles {
		if ti.text == "" {
			continue
		}
		p0, err := a.pixel(ti.x0, ti.y0, ti.z0)
		if err != nil {
			return err
		}
		p1, err := a.pixel(ti.x1, ti.y1, ti.z1)
		if err != nil {
			return err
		}
		dir := p1.Sub(p0)
		if dir.Length() == 0 {
			dir = scene.Pt(1, 0)
		}
		mid := p0.Add(dir.Mul(0.5))
		sc.Append(scene.Text{
			Anchor: mid.Add(dir.Normalize().Perp().Mul(2 * axisLabelOffset3D)),
			Text:   ti.text,
			HAlign: scene.AlignCenter,
			VAlign: scene.AlignMiddle,
			Size:   defaultFontSize,
			Style:  style,
		})
	}
	return nil
}

// ticksAlong emits tick marks and labels for one projected axis.
// at maps a tick's data value to its 3D position on the axis line.
func (a *axes3D) ticksAlong(sc *scene.Scene, ticks TickSet, at func(v float64) (x, y, z float64)) error {
	if len(ticks) == 0 {
		return nil
	}
	style := axisStyle()

	// The local screen normal of the axis line, from its projected
	// direction. Axis edges are straight lines in projection, so one
	// normal serves every tick on the edge.
	x0, y0, z0 := at(ticks[0].Position)
	x1, y1, z1 := at(ticks[len(ticks)-1].Position)
	p0, err := a.pixel(x0, y0, z0)
	if err != nil {
		return err
	}
	p1, err := a.pixel(x1, y1, z1)
	if err != nil {
		return err
	}
	dir := p1.Sub(p0)
	if dir.Length() == 0 {
		dir = scene.Pt(1, 0)
	}
	normal := dir.Normalize().Perp()

	for _, t := range ticks {
		px, py, pz := at(t.Position)
		p, err := a.pixel(px, py, pz)
		if err != nil {
			return err
		}

		length := tickMarkLength
		if t.Minor {
			length *= minorTickScale
		}
		sc.Append(scene.Line{
			P0:    p,
			P1:    p.Add(normal.Mul(length)),
			Style: style,
		})

		if !t.Minor && t.Label != "" {
			anchor := p.Add(normal.Mul(axisLabelOffset3D))
			halign := scene.AlignCenter
			if normal.X > 0.3 {
				halign = scene.AlignLeft
			} else if normal.X < -0.3 {
				halign = scene.AlignRight
			}
			sc.Append(scene.Text{
				Anchor: anchor,
				Text:   t.Label,
				HAlign: halign,
				VAlign: scene.AlignMiddle,
				Size:   defaultFontSize,
				Style:  style,
			})
		}
	}
	return nil
}
