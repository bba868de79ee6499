package plotgeom

import (
	"log/slog"
	"math"

	"github.com/plotforge/plotgeom/scene"
	"github.com/plotforge/plotgeom/text"
)

// LegendAnchor is a symbolic legend placement inside the plot area.
type LegendAnchor byte

const (
	LegendTopRight LegendAnchor = iota
	LegendTopLeft
	LegendBottomRight
	LegendBottomLeft
	LegendTopCenter
	LegendBottomCenter
	LegendLeftCenter
	LegendRightCenter
	LegendCenter
)

// LegendDirection lays entries out as a vertical list or a single
// horizontal row.
type LegendDirection byte

const (
	LegendVertical LegendDirection = iota
	LegendHorizontal
)

// LegendSpec positions and shapes the legend box. Origin, when non-nil,
// overrides the symbolic anchor with an explicit top-left pixel.
type LegendSpec struct {
	Anchor    LegendAnchor
	Direction LegendDirection
	Origin    *scene.Point
	Border    bool
}

// LayoutOverflowWarning is the non-fatal diagnostic raised when a
// legend box exceeds the plot area. It is forwarded to the configured
// logger; rendering proceeds with best-effort layout.
type LayoutOverflowWarning struct {
	Box  scene.Rect
	Plot scene.Rect
}

// LogValue implements slog.LogValuer.
func (w LayoutOverflowWarning) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("box_width", w.Box.Width()),
		slog.Float64("box_height", w.Box.Height()),
		slog.Float64("plot_width", w.Plot.Width()),
		slog.Float64("plot_height", w.Plot.Height()),
	)
}

// legendEntry is one measured legend row: a style sample plus a label.
type legendEntry struct {
	label string
	style SeriesStyle
	width float64
	rtl   bool
}

// labelWidth measures a legend label, preferring the shaped measurement
// for kerning accuracy and falling back to the plain opentype advance.
func labelWidth(label string) float64 {
	if w, err := text.MeasureShaped(label, defaultFontSize); err == nil {
		return w
	}
	w, _ := text.Measure(label, defaultFontSize)
	return w
}

// buildLegend lays out and emits the legend box for the named series.
// Placement resolves the symbolic anchor (or the explicit origin
// override) into a concrete top-left pixel, then entries flow in the
// requested direction with uniform spacing.
func buildLegend(sc *scene.Scene, spec *PlotSpec, rect ViewportRect) {
	ls := spec.Legend
	if ls == nil {
		return
	}

	var entries []legendEntry
	for _, s := range spec.Series {
		if s.Name == "" {
			continue
		}
		entries = append(entries, legendEntry{
			label: s.Name,
			style: s.Style,
			width: labelWidth(s.Name),
			rtl:   text.DetectBase(s.Name) == text.DirectionRTL,
		})
	}
	if len(entries) == 0 {
		return
	}

	_, lineHeight := text.Measure("", defaultFontSize)
	if lineHeight == 0 {
		lineHeight = defaultFontSize * 1.2
	}
	entryHeight := math.Max(lineHeight, defaultMarkerSize)
	entryWidth := func(e legendEntry) float64 {
		return legendSampleLength + legendSampleGap + e.width
	}

	var boxW, boxH float64
	if ls.Direction == LegendHorizontal {
		for i, e := range entries {
			if i > 0 {
				boxW += 3 * legendEntryGap
			}
			boxW += entryWidth(e)
		}
		boxH = entryHeight
	} else {
		for _, e := range entries {
			boxW = math.Max(boxW, entryWidth(e))
		}
		boxH = float64(len(entries))*entryHeight + float64(len(entries)-1)*legendEntryGap
	}
	boxW += 2 * legendPadding
	boxH += 2 * legendPadding

	origin := resolveLegendOrigin(ls, rect, boxW, boxH)

	box := scene.Rect{
		MinX: origin.X, MinY: origin.Y,
		MaxX: origin.X + boxW, MaxY: origin.Y + boxH,
	}
	if !rect.Rect().ContainsRect(box) {
		w := LayoutOverflowWarning{Box: box, Plot: rect.Rect()}
		Logger().Warn("legend exceeds plot area", "overflow", w)
	}

	if ls.Border {
		sc.Append(scene.Path{
			Points: []scene.Point{
				scene.Pt(box.MinX, box.MinY),
				scene.Pt(box.MaxX, box.MinY),
				scene.Pt(box.MaxX, box.MaxY),
				scene.Pt(box.MinX, box.MaxY),
			},
			Closed: true,
			Style:  axisStyle(),
		})
	}

	x := box.MinX + legendPadding
	y := box.MinY + legendPadding
	for _, e := range entries {
		mid := y + entryHeight/2

		sc.Append(scene.Line{
			P0:    scene.Pt(x, mid),
			P1:    scene.Pt(x+legendSampleLength, mid),
			Style: e.style.stroke(),
		})
		if e.style.WithMarkers {
			sc.Append(scene.Marker{
				Center: scene.Pt(x+legendSampleLength/2, mid),
				Marker: e.style.Marker,
				Size:   e.style.markerSize(),
				Style:  e.style.stroke(),
			})
		}

		labelX := x + legendSampleLength + legendSampleGap
		halign := scene.AlignLeft
		if e.rtl {
			// Right-to-left labels anchor at their right edge so the
			// run grows toward the sample.
			labelX += e.width
			halign = scene.AlignRight
		}
		sc.Append(scene.Text{
			Anchor: scene.Pt(labelX, mid),
			Text:   e.label,
			HAlign: halign,
			VAlign: scene.AlignMiddle,
			Size:   defaultFontSize,
			Style:  axisStyle(),
		})

		if ls.Direction == LegendHorizontal {
			x += entryWidth(e) + 3*legendEntryGap
		} else {
			y += entryHeight + legendEntryGap
		}
	}
}

// resolveLegendOrigin converts a symbolic anchor plus optional explicit
// override into the legend box's top-left pixel.
func resolveLegendOrigin(ls *LegendSpec, rect ViewportRect, boxW, boxH float64) scene.Point {
	if ls.Origin != nil {
		return *ls.Origin
	}

	left := rect.Left + legendInset
	right := rect.Right - legendInset - boxW
	top := rect.Top + legendInset
	bottom := rect.Bottom - legendInset - boxH
	hCenter := (rect.Left+rect.Right)/2 - boxW/2
	vCenter := (rect.Top+rect.Bottom)/2 - boxH/2

	switch ls.Anchor {
	case LegendTopLeft:
		return scene.Pt(left, top)
	case LegendBottomRight:
		return scene.Pt(right, bottom)
	case LegendBottomLeft:
		return scene.Pt(left, bottom)
	case LegendTopCenter:
		return scene.Pt(hCenter, top)
	case LegendBottomCenter:
		return scene.Pt(hCenter, bottom)
	case LegendLeftCenter:
		return scene.Pt(left, vCenter)
	case LegendRightCenter:
		return scene.Pt(right, vCenter)
	case LegendCenter:
		return scene.Pt(hCenter, vCenter)
	default:
		return scene.Pt(right, top)
	}
}
