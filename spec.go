package plotgeom

import (
	"github.com/plotforge/plotgeom/scene"
)

// Point3 is a sampled data point. Z is ignored for 2D plots.
type Point3 struct {
	X, Y, Z float64
}

// IsFinite reports whether all coordinates are finite. Non-finite
// points break the polyline of their series, matching the reference
// tool's treatment of undefined samples.
func (p Point3) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

// SeriesStyle is the per-series presentation handed through to the
// emitted primitives. Zero values fall back to a 1px opaque black
// stroke with no markers.
type SeriesStyle struct {
	Color  scene.RGBA
	Width  float64
	Dash   []float64
	Marker scene.MarkerKind
	// WithMarkers draws a marker at each sample; WithLines draws the
	// connecting polyline. Both false means lines only.
	WithMarkers bool
	WithLines   bool

	// MarkerSize is the marker extent in pixels; zero means default.
	MarkerSize float64
}

func (s SeriesStyle) stroke() scene.Style {
	st := scene.Style{Color: s.Color, Width: s.Width, Dash: s.Dash}
	if st.Color == (scene.RGBA{}) {
		st.Color = scene.RGB(0, 0, 0)
	}
	if st.Width == 0 {
		st.Width = 1
	}
	return st
}

func (s SeriesStyle) markerSize() float64 {
	if s.MarkerSize > 0 {
		return s.MarkerSize
	}
	return defaultMarkerSize
}

// Series is one plotted data series: pre-sampled points (produced by
// the external evaluation or data layer) plus presentation.
type Series struct {
	Name   string
	Points []Point3
	Style  SeriesStyle
}

// Margins is the whitespace between canvas edge and plot area,
// in pixels. It is caller-supplied configuration, never computed here.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// ViewportFromCanvas derives the plot rect from a canvas size and
// margins. The result is invalid if the margins consume the canvas;
// callers should check Valid.
func ViewportFromCanvas(width, height float64, m Margins) ViewportRect {
	return ViewportRect{
		Left:   m.Left,
		Right:  width - m.Right,
		Top:    m.Top,
		Bottom: height - m.Bottom,
	}
}

// PlotSpec is the complete input of one render call. It is consumed
// read-only; a spec can be rendered repeatedly and concurrently as long
// as callers do not mutate it mid-call.
type PlotSpec struct {
	// Axis ranges. Z is ignored unless View is set.
	X, Y, Z AxisRange

	// Observed data extrema per axis, supplied by the data layer for
	// auto-scaled ends.
	XData, YData, ZData DataExtent

	// View switches the render to 3D when non-nil.
	View *ViewParameters

	// Viewport is the plot rectangle in pixels (canvas minus margins).
	Viewport ViewportRect

	// SurfaceScale overrides the 3D viewport ratio when positive:
	// the ratio becomes SurfaceMargin / SurfaceScale instead of the
	// default 4/7.
	SurfaceScale float64

	// SurfaceMargin is the margin extent paired with SurfaceScale;
	// zero means the full extent.
	SurfaceMargin float64

	// Target tick interval counts per axis; zero means
	// DefaultTickTarget, negative means no ticks on that axis.
	XTicks, YTicks, ZTicks int

	// MinorTicksPerInterval interleaves unlabeled minors on linear
	// axes when positive.
	MinorTicksPerInterval int

	Grid   bool
	Border bool
	// MirrorTicks repeats tick marks on the top/right border edges.
	MirrorTicks bool

	// Axis titles; empty means none.
	XLabel, YLabel, ZLabel string

	Series []Series

	// Legend is drawn when non-nil and at least one series is named.
	Legend *LegendSpec
}

func (s *PlotSpec) xTickTarget() int { return tickTarget(s.XTicks) }
func (s *PlotSpec) yTickTarget() int { return tickTarget(s.YTicks) }
func (s *PlotSpec) zTickTarget() int { return tickTarget(s.ZTicks) }

func tickTarget(n int) int {
	if n == 0 {
		return DefaultTickTarget
	}
	if n < 0 {
		return 0
	}
	return n
}

// surfaceRatio returns the viewport scale ratio for 3D mapping.
func (s *PlotSpec) surfaceRatio() float64 {
	if s.SurfaceScale > 0 {
		extent := s.SurfaceMargin
		if extent == 0 {
			extent = 1
		}
		return SurfaceScaleRatio(extent, s.SurfaceScale)
	}
	return Surface3DScaleRatio
}
