package plotgeom

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/plotforge/plotgeom/scene"
)

func legendSpecWith(series ...Series) *PlotSpec {
	return &PlotSpec{
		X:        FixedRange(0, 1),
		Y:        FixedRange(0, 1),
		Viewport: refRect,
		Series:   series,
		Legend:   &LegendSpec{Border: true},
	}
}

func TestBuildLegendEntries(t *testing.T) {
	spec := legendSpecWith(
		Series{Name: "alpha"},
		Series{Name: "beta", Style: SeriesStyle{WithMarkers: true, Marker: scene.MarkerCircle}},
		Series{Points: []Point3{{X: 1, Y: 1}}}, // unnamed, skipped
	)

	sc := scene.NewScene()
	buildLegend(sc, spec, spec.Viewport)

	counts := countKinds(sc)
	if counts[scene.KindPath] != 1 {
		t.Errorf("got %d border paths, want 1", counts[scene.KindPath])
	}
	if counts[scene.KindLine] != 2 {
		t.Errorf("got %d sample lines, want 2", counts[scene.KindLine])
	}
	if counts[scene.KindText] != 2 {
		t.Errorf("got %d labels, want 2", counts[scene.KindText])
	}
	if counts[scene.KindMarker] != 1 {
		t.Errorf("got %d markers, want 1 (only beta has markers)", counts[scene.KindMarker])
	}
}

func TestBuildLegendSkipsWhenEmpty(t *testing.T) {
	tests := []struct {
		name string
		spec *PlotSpec
	}{
		{"nil legend", &PlotSpec{Viewport: refRect, Series: []Series{{Name: "a"}}}},
		{"no named series", legendSpecWith(Series{}, Series{})},
		{"no series", legendSpecWith()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := scene.NewScene()
			buildLegend(sc, tt.spec, refRect)
			if sc.Len() != 0 {
				t.Errorf("got %d primitives, want none", sc.Len())
			}
		})
	}
}

func TestBuildLegendDefaultAnchorTopRight(t *testing.T) {
	spec := legendSpecWith(Series{Name: "series"})

	sc := scene.NewScene()
	buildLegend(sc, spec, spec.Viewport)

	b := sc.Bounds()
	if math.Abs(b.MaxX-(refRect.Right-legendInset)) > 1e-9 {
		t.Errorf("box right edge = %g, want %g", b.MaxX, refRect.Right-legendInset)
	}
	if math.Abs(b.MinY-(refRect.Top+legendInset)) > 1e-9 {
		t.Errorf("box top edge = %g, want %g", b.MinY, refRect.Top+legendInset)
	}
}

func TestResolveLegendOriginAnchors(t *testing.T) {
	const boxW, boxH = 100, 40
	rect := ViewportRect{Left: 0, Right: 400, Top: 0, Bottom: 200}

	tests := []struct {
		anchor LegendAnchor
		x, y   float64
	}{
		{LegendTopRight, 400 - legendInset - boxW, legendInset},
		{LegendTopLeft, legendInset, legendInset},
		{LegendBottomRight, 400 - legendInset - boxW, 200 - legendInset - boxH},
		{LegendBottomLeft, legendInset, 200 - legendInset - boxH},
		{LegendTopCenter, 200 - boxW/2, legendInset},
		{LegendBottomCenter, 200 - boxW/2, 200 - legendInset - boxH},
		{LegendLeftCenter, legendInset, 100 - boxH/2},
		{LegendRightCenter, 400 - legendInset - boxW, 100 - boxH/2},
		{LegendCenter, 200 - boxW/2, 100 - boxH/2},
	}
	for _, tt := range tests {
		got := resolveLegendOrigin(&LegendSpec{Anchor: tt.anchor}, rect, boxW, boxH)
		if got.X != tt.x || got.Y != tt.y {
			t.Errorf("anchor %d: origin = (%g, %g), want (%g, %g)", tt.anchor, got.X, got.Y, tt.x, tt.y)
		}
	}
}

func TestResolveLegendOriginExplicit(t *testing.T) {
	origin := scene.Pt(123, 45)
	ls := &LegendSpec{Anchor: LegendCenter, Origin: &origin}
	got := resolveLegendOrigin(ls, refRect, 100, 40)
	if got != origin {
		t.Errorf("explicit origin = %v, want %v", got, origin)
	}
}

func TestBuildLegendHorizontalRow(t *testing.T) {
	spec := legendSpecWith(Series{Name: "one"}, Series{Name: "two"}, Series{Name: "three"})
	spec.Legend.Direction = LegendHorizontal

	sc := scene.NewScene()
	buildLegend(sc, spec, spec.Viewport)

	// All sample lines share one row.
	var midY []float64
	for _, p := range sc.Primitives() {
		if line, ok := p.(scene.Line); ok {
			midY = append(midY, line.P0.Y)
		}
	}
	if len(midY) != 3 {
		t.Fatalf("got %d sample lines, want 3", len(midY))
	}
	for i := 1; i < len(midY); i++ {
		if midY[i] != midY[0] {
			t.Errorf("sample %d at y=%g, want y=%g (single row)", i, midY[i], midY[0])
		}
	}
}

func TestBuildLegendVerticalStack(t *testing.T) {
	spec := legendSpecWith(Series{Name: "one"}, Series{Name: "two"})

	sc := scene.NewScene()
	buildLegend(sc, spec, spec.Viewport)

	var midY []float64
	var startX []float64
	for _, p := range sc.Primitives() {
		if line, ok := p.(scene.Line); ok {
			midY = append(midY, line.P0.Y)
			startX = append(startX, line.P0.X)
		}
	}
	if len(midY) != 2 {
		t.Fatalf("got %d sample lines, want 2", len(midY))
	}
	if midY[1] <= midY[0] {
		t.Errorf("second entry at y=%g not below first at y=%g", midY[1], midY[0])
	}
	if startX[0] != startX[1] {
		t.Errorf("entries not left-aligned: x=%g vs x=%g", startX[0], startX[1])
	}
}

func TestBuildLegendRTLLabelAnchor(t *testing.T) {
	spec := legendSpecWith(Series{Name: "שלום"}) // Hebrew

	sc := scene.NewScene()
	buildLegend(sc, spec, spec.Viewport)

	var found bool
	for _, p := range sc.Primitives() {
		if txt, ok := p.(scene.Text); ok {
			found = true
			if txt.HAlign != scene.AlignRight {
				t.Errorf("RTL label halign = %v, want AlignRight", txt.HAlign)
			}
		}
	}
	if !found {
		t.Fatal("no legend label emitted")
	}
}

// recordHandler captures log records for assertion.
type recordHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordHandler) WithGroup(string) slog.Handler      { return h }

func TestBuildLegendOverflowWarning(t *testing.T) {
	h := &recordHandler{}
	SetLogger(slog.New(h))
	defer SetLogger(nil)

	spec := legendSpecWith(Series{Name: "a very long legend label that cannot fit"})
	// A viewport too small for any legend box.
	tiny := ViewportRect{Left: 0, Right: 40, Top: 0, Bottom: 20}
	spec.Viewport = tiny

	sc := scene.NewScene()
	buildLegend(sc, spec, tiny)

	if sc.Len() == 0 {
		t.Error("overflowing legend should still render best-effort")
	}
	if len(h.records) != 1 {
		t.Fatalf("got %d log records, want 1", len(h.records))
	}
	if h.records[0].Level != slog.LevelWarn {
		t.Errorf("record level = %v, want warn", h.records[0].Level)
	}
	if h.records[0].Message != "legend exceeds plot area" {
		t.Errorf("record message = %q", h.records[0].Message)
	}
}

func TestLayoutOverflowWarningLogValue(t *testing.T) {
	w := LayoutOverflowWarning{
		Box:  scene.Rect{MinX: 0, MinY: 0, MaxX: 120, MaxY: 50},
		Plot: scene.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100},
	}
	v := w.LogValue()
	if v.Kind() != slog.KindGroup {
		t.Fatalf("LogValue kind = %v, want group", v.Kind())
	}
	attrs := v.Group()
	if len(attrs) != 4 {
		t.Fatalf("got %d group attrs, want 4", len(attrs))
	}
	if attrs[0].Key != "box_width" || attrs[0].Value.Float64() != 120 {
		t.Errorf("first attr = %v, want box_width=120", attrs[0])
	}
}
