package plotgeom

import (
	"fmt"
	"sort"

	"github.com/plotforge/plotgeom/scene"
)

// Render converts a plot specification into an ordered scene of drawing
// primitives in final pixel coordinates. The call is pure and
// deterministic; concurrent renders of separate specs need no locking.
//
// Paint order is grid, axes, series (in spec order; back-to-front by
// depth for 3D), legend. On any typed failure the scene is discarded
// and the error returned; a partially built scene never escapes.
func Render(spec PlotSpec) (*scene.Scene, error) {
	if !spec.Viewport.Valid() {
		return nil, fmt.Errorf("plotgeom: viewport %+v has non-positive extent", spec.Viewport)
	}

	xr, err := spec.X.Resolve(spec.XData)
	if err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	yr, err := spec.Y.Resolve(spec.YData)
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}

	xt, err := GenerateTicksWithMinor(xr, spec.xTickTarget(), spec.MinorTicksPerInterval)
	if err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	yt, err := GenerateTicksWithMinor(yr, spec.yTickTarget(), spec.MinorTicksPerInterval)
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}

	Logger().Debug("render",
		"x_min", xr.Min, "x_max", xr.Max,
		"y_min", yr.Min, "y_max", yr.Max,
		"x_ticks", len(xt), "y_ticks", len(yt),
		"is_3d", spec.View != nil,
	)

	sc := scene.NewScene()
	if spec.View != nil {
		err = render3D(sc, &spec, xr, yr, xt, yt)
	} else {
		err = render2D(sc, &spec, xr, yr, xt, yt)
	}
	if err != nil {
		return nil, err
	}

	buildLegend(sc, &spec, spec.Viewport)
	return sc, nil
}

func render2D(sc *scene.Scene, spec *PlotSpec, xr, yr ResolvedRange, xt, yt TickSet) error {
	rect := spec.Viewport

	if spec.Grid {
		buildGrid2D(sc, rect, xr, yr, xt, yt)
	}
	buildAxes2D(sc, spec, rect, xr, yr, xt, yt)

	for _, s := range spec.Series {
		emitSeries2D(sc, rect, xr, yr, s)
	}
	return nil
}

// emitSeries2D draws one series as polyline segments, split at
// non-finite samples, plus markers when requested.
func emitSeries2D(sc *scene.Scene, rect ViewportRect, xr, yr ResolvedRange, s Series) {
	stroke := s.Style.stroke()
	lines := s.Style.WithLines || !s.Style.WithMarkers

	var run []scene.Point
	flush := func() {
		if lines && len(run) >= 2 {
			sc.Append(scene.Path{Points: run, Style: stroke})
		}
		run = nil
	}

	for _, p := range s.Points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			flush()
			continue
		}
		px := rect.ToPixel(xr.Normalize(p.X), yr.Normalize(p.Y), 1)
		run = append(run, px)

		if s.Style.WithMarkers {
			sc.Append(scene.Marker{
				Center: px,
				Marker: s.Style.Marker,
				Size:   s.Style.markerSize(),
				Style:  stroke,
			})
		}
	}
	flush()
}

// projectedSeries is one series after projection, carrying its mean
// depth for painter ordering. Ties keep input order via the stable sort.
type projectedSeries struct {
	depth  float64
	runs   [][]scene.Point
	points []scene.Point
	style  SeriesStyle
}

func render3D(sc *scene.Scene, spec *PlotSpec, xr, yr ResolvedRange, xt, yt TickSet) error {
	zr, err := spec.Z.Resolve(spec.ZData)
	if err != nil {
		return fmt.Errorf("z axis: %w", err)
	}
	zt, err := GenerateTicksWithMinor(zr, spec.zTickTarget(), spec.MinorTicksPerInterval)
	if err != nil {
		return fmt.Errorf("z axis: %w", err)
	}

	view := NewView(*spec.View, xr, yr, zr)
	ratio := spec.surfaceRatio()
	ax := &axes3D{view: view, rect: spec.Viewport, ratio: ratio, xr: xr, yr: yr, zr: zr}

	if err := ax.build(sc, spec, xt, yt, zt); err != nil {
		return err
	}

	projected := make([]projectedSeries, 0, len(spec.Series))
	for _, s := range spec.Series {
		ps := projectedSeries{style: s.Style}

		var run []scene.Point
		var depthSum float64
		var depthN int
		flush := func() {
			if len(run) >= 2 {
				ps.runs = append(ps.runs, run)
			}
			run = nil
		}

		for _, p := range s.Points {
			if !p.IsFinite() {
				// Data gaps break the polyline; only finite points
				// reach the projection.
				flush()
				continue
			}
			vp, err := view.Project(p.X, p.Y, p.Z)
			if err != nil {
				return err
			}
			px := spec.Viewport.ToPixel(vp.U, vp.V, ratio)
			run = append(run, px)
			ps.points = append(ps.points, px)
			depthSum += vp.Depth
			depthN++
		}
		flush()

		if depthN > 0 {
			ps.depth = depthSum / float64(depthN)
		}
		projected = append(projected, ps)
	}

	// Painter's algorithm: back to front (smallest depth first, since
	// larger Depth is nearer the viewer), stable on input order.
	sort.SliceStable(projected, func(a, b int) bool {
		return projected[a].depth < projected[b].depth
	})

	for _, ps := range projected {
		stroke := ps.style.stroke()
		if ps.style.WithLines || !ps.style.WithMarkers {
			for _, run := range ps.runs {
				sc.Append(scene.Path{Points: run, Style: stroke})
			}
		}
		if ps.style.WithMarkers {
			for _, p := range ps.points {
				sc.Append(scene.Marker{
					Center: p,
					Marker: ps.style.Marker,
					Size:   ps.style.markerSize(),
					Style:  stroke,
				})
			}
		}
	}
	return nil
}
