package plotgeom

import (
	"math"
	"testing"

	"github.com/plotforge/plotgeom/scene"
)

func countKinds(sc *scene.Scene) map[scene.Kind]int {
	counts := map[scene.Kind]int{}
	for _, p := range sc.Primitives() {
		counts[p.Kind()]++
	}
	return counts
}

func testSpec2D() *PlotSpec {
	return &PlotSpec{
		X:           FixedRange(0, 10),
		Y:           FixedRange(0, 1),
		Viewport:    refRect,
		Border:      true,
		MirrorTicks: true,
	}
}

func mustTicks(t *testing.T, r ResolvedRange, target int) TickSet {
	t.Helper()
	ts, err := GenerateTicks(r, target)
	if err != nil {
		t.Fatalf("GenerateTicks() error = %v", err)
	}
	return ts
}

func mustResolve(t *testing.T, r AxisRange, observed DataExtent) ResolvedRange {
	t.Helper()
	res, err := r.Resolve(observed)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	return res
}

func TestBuildAxes2DTickMarks(t *testing.T) {
	spec := testSpec2D()
	xr := mustResolve(t, spec.X, DataExtent{})
	yr := mustResolve(t, spec.Y, DataExtent{})
	xt := mustTicks(t, xr, 5) // 6 ticks at 0,2,..,10
	yt := mustTicks(t, yr, 4) // 0,0.25,..,1 -> 5 ticks

	sc := scene.NewScene()
	buildAxes2D(sc, spec, spec.Viewport, xr, yr, xt, yt)

	counts := countKinds(sc)
	// Each tick contributes its mark plus the mirrored mark.
	wantLines := 2 * (len(xt) + len(yt))
	if counts[scene.KindLine] != wantLines {
		t.Errorf("got %d tick mark lines, want %d", counts[scene.KindLine], wantLines)
	}
	// One label per major tick; no axis titles configured.
	if counts[scene.KindText] != len(xt)+len(yt) {
		t.Errorf("got %d labels, want %d", counts[scene.KindText], len(xt)+len(yt))
	}
	// Border box.
	if counts[scene.KindPath] != 1 {
		t.Errorf("got %d paths, want 1 border", counts[scene.KindPath])
	}
}

func TestBuildAxes2DNoMirror(t *testing.T) {
	spec := testSpec2D()
	spec.MirrorTicks = false
	xr := mustResolve(t, spec.X, DataExtent{})
	yr := mustResolve(t, spec.Y, DataExtent{})
	xt := mustTicks(t, xr, 5)
	yt := mustTicks(t, yr, 4)

	sc := scene.NewScene()
	buildAxes2D(sc, spec, spec.Viewport, xr, yr, xt, yt)

	if got, want := countKinds(sc)[scene.KindLine], len(xt)+len(yt); got != want {
		t.Errorf("got %d tick mark lines without mirroring, want %d", got, want)
	}
}

func TestBuildAxes2DTickDirection(t *testing.T) {
	spec := testSpec2D()
	xr := mustResolve(t, spec.X, DataExtent{})
	yr := mustResolve(t, spec.Y, DataExtent{})
	xt := mustTicks(t, xr, 5)

	sc := scene.NewScene()
	buildAxes2D(sc, spec, spec.Viewport, xr, yr, xt, nil)

	rect := spec.Viewport
	var bottom, top int
	for _, p := range sc.Primitives() {
		line, ok := p.(scene.Line)
		if !ok {
			continue
		}
		switch line.P0.Y {
		case rect.Bottom:
			bottom++
			if line.P1.Y >= line.P0.Y {
				t.Error("bottom tick mark does not point inward (upward)")
			}
		case rect.Top:
			top++
			if line.P1.Y <= line.P0.Y {
				t.Error("top tick mark does not point inward (downward)")
			}
		}
	}
	if bottom != len(xt) || top != len(xt) {
		t.Errorf("bottom=%d top=%d tick marks, want %d each", bottom, top, len(xt))
	}
}

func TestBuildAxes2DLabelAnchors(t *testing.T) {
	spec := testSpec2D()
	xr := mustResolve(t, spec.X, DataExtent{})
	yr := mustResolve(t, spec.Y, DataExtent{})
	xt := mustTicks(t, xr, 5)
	yt := mustTicks(t, yr, 4)

	sc := scene.NewScene()
	buildAxes2D(sc, spec, spec.Viewport, xr, yr, xt, yt)

	rect := spec.Viewport
	for _, p := range sc.Primitives() {
		txt, ok := p.(scene.Text)
		if !ok {
			continue
		}
		if txt.Anchor.Y > rect.Bottom {
			// x-axis label: centered under its tick, below the axis.
			if txt.HAlign != scene.AlignCenter || txt.VAlign != scene.AlignTop {
				t.Errorf("x label %q alignment = (%v, %v), want (center, top)", txt.Text, txt.HAlign, txt.VAlign)
			}
			if txt.Anchor.Y != rect.Bottom+axisLabelClearance {
				t.Errorf("x label %q clearance = %g, want %g", txt.Text, txt.Anchor.Y-rect.Bottom, axisLabelClearance)
			}
		} else {
			// y-axis label: right-aligned, vertically centered.
			if txt.HAlign != scene.AlignRight || txt.VAlign != scene.AlignMiddle {
				t.Errorf("y label %q alignment = (%v, %v), want (right, middle)", txt.Text, txt.HAlign, txt.VAlign)
			}
			if txt.Anchor.X != rect.Left-axisLabelClearance {
				t.Errorf("y label %q anchor x = %g, want %g", txt.Text, txt.Anchor.X, rect.Left-axisLabelClearance)
			}
		}
	}
}

func TestBuildAxes2DMirroredPositionsMatch(t *testing.T) {
	spec := testSpec2D()
	xr := mustResolve(t, spec.X, DataExtent{})
	yr := mustResolve(t, spec.Y, DataExtent{})
	xt := mustTicks(t, xr, 5)

	sc := scene.NewScene()
	buildAxes2D(sc, spec, spec.Viewport, xr, yr, xt, nil)

	rect := spec.Viewport
	bottomX := map[float64]bool{}
	topX := map[float64]bool{}
	for _, p := range sc.Primitives() {
		if line, ok := p.(scene.Line); ok {
			if line.P0.Y == rect.Bottom {
				bottomX[line.P0.X] = true
			}
			if line.P0.Y == rect.Top {
				topX[line.P0.X] = true
			}
		}
	}
	if len(bottomX) != len(topX) {
		t.Fatalf("bottom has %d distinct positions, top has %d", len(bottomX), len(topX))
	}
	for x := range bottomX {
		if !topX[x] {
			t.Errorf("mirrored tick missing at x=%g", x)
		}
	}
}

func TestBuildGrid2D(t *testing.T) {
	spec := testSpec2D()
	xr := mustResolve(t, spec.X, DataExtent{})
	yr := mustResolve(t, spec.Y, DataExtent{})
	xt := mustTicks(t, xr, 5)
	yt := mustTicks(t, yr, 4)

	sc := scene.NewScene()
	buildGrid2D(sc, spec.Viewport, xr, yr, xt, yt)

	if got, want := sc.Len(), len(xt)+len(yt); got != want {
		t.Fatalf("got %d grid lines, want %d", got, want)
	}
	for _, p := range sc.Primitives() {
		line := p.(scene.Line)
		full := (line.P0.Y == spec.Viewport.Top && line.P1.Y == spec.Viewport.Bottom) ||
			(line.P0.X == spec.Viewport.Left && line.P1.X == spec.Viewport.Right)
		if !full {
			t.Errorf("grid line %+v does not span the plot area", line)
		}
	}
}

func TestBuildAxes3D(t *testing.T) {
	view := DefaultView()
	spec := &PlotSpec{
		X:        FixedRange(-1, 1),
		Y:        FixedRange(-1, 1),
		Z:        FixedRange(-1, 1),
		View:     &view,
		Viewport: refRect,
	}
	xr := mustResolve(t, spec.X, DataExtent{})
	yr := mustResolve(t, spec.Y, DataExtent{})
	zr := mustResolve(t, spec.Z, DataExtent{})
	xt := mustTicks(t, xr, 4)
	yt := mustTicks(t, yr, 4)
	zt := mustTicks(t, zr, 4)

	v := NewView(view, xr, yr, zr)
	ax := &axes3D{view: v, rect: refRect, ratio: Surface3DScaleRatio, xr: xr, yr: yr, zr: zr}

	sc := scene.NewScene()
	if err := ax.build(sc, spec, xt, yt, zt); err != nil {
		t.Fatalf("build() error = %v", err)
	}

	counts := countKinds(sc)
	// 5 box edges plus one mark per tick.
	wantLines := 5 + len(xt) + len(yt) + len(zt)
	if counts[scene.KindLine] != wantLines {
		t.Errorf("got %d lines, want %d", counts[scene.KindLine], wantLines)
	}
	if counts[scene.KindText] != len(xt)+len(yt)+len(zt) {
		t.Errorf("got %d labels, want %d", counts[scene.KindText], len(xt)+len(yt)+len(zt))
	}

	// Everything must land in finite pixel space near the viewport.
	b := sc.Bounds()
	for _, edge := range []float64{b.MinX, b.MinY, b.MaxX, b.MaxY} {
		if math.IsNaN(edge) || math.IsInf(edge, 0) {
			t.Fatalf("3D axes bounds not finite: %+v", b)
		}
	}
}

func TestBuildAxes3DTickNormals(t *testing.T) {
	view := DefaultView()
	xr := ResolvedRange{Min: -1, Max: 1}
	yr := ResolvedRange{Min: -1, Max: 1}
	zr := ResolvedRange{Min: -1, Max: 1}
	v := NewView(view, xr, yr, zr)
	ax := &axes3D{view: v, rect: refRect, ratio: Surface3DScaleRatio, xr: xr, yr: yr, zr: zr}

	xt := TickSet{{Position: -1, Label: "-1"}, {Position: 0, Label: "0"}, {Position: 1, Label: "1"}}
	sc := scene.NewScene()
	if err := ax.ticksAlong(sc, xt, func(val float64) (float64, float64, float64) {
		return val, -1, v.ZFloor()
	}); err != nil {
		t.Fatalf("ticksAlong() error = %v", err)
	}

	// All marks on one axis share the same screen direction, and each
	// label sits further out along that same normal than its mark.
	var marks []scene.Line
	var labels []scene.Text
	for _, p := range sc.Primitives() {
		switch prim := p.(type) {
		case scene.Line:
			marks = append(marks, prim)
		case scene.Text:
			labels = append(labels, prim)
		}
	}
	if len(marks) != 3 || len(labels) != 3 {
		t.Fatalf("got %d marks, %d labels; want 3 each", len(marks), len(labels))
	}

	dir0 := marks[0].P1.Sub(marks[0].P0).Normalize()
	for i, m := range marks {
		dir := m.P1.Sub(m.P0).Normalize()
		if dir.Distance(dir0) > 1e-9 {
			t.Errorf("mark %d direction %v differs from %v", i, dir, dir0)
		}
		labelDist := labels[i].Anchor.Distance(m.P0)
		markDist := m.P1.Distance(m.P0)
		if labelDist <= markDist {
			t.Errorf("label %d at distance %g not beyond mark end %g", i, labelDist, markDist)
		}
	}
}
