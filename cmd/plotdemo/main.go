// Command plotdemo demonstrates the plotgeom geometry engine.
//
// It builds a sample plot specification (a pre-sampled sine curve, or a
// 3D ripple surface with -3d), renders it, and prints a summary of the
// resulting scene.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/plotforge/plotgeom"
	"github.com/plotforge/plotgeom/scene"
)

func main() {
	var (
		width   = flag.Int("width", 800, "canvas width in pixels")
		height  = flag.Int("height", 600, "canvas height in pixels")
		plot3D  = flag.Bool("3d", false, "render a 3D surface instead of a 2D curve")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		plotgeom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	spec := sineSpec(float64(*width), float64(*height))
	if *plot3D {
		spec = rippleSpec(float64(*width), float64(*height))
	}

	sc, err := plotgeom.Render(spec)
	if err != nil {
		log.Fatalf("render failed: %v", err)
	}

	printSummary(sc)
}

func sineSpec(w, h float64) plotgeom.PlotSpec {
	const n = 100
	pts := make([]plotgeom.Point3, n+1)
	for i := range pts {
		x := 2 * math.Pi * float64(i) / n
		pts[i] = plotgeom.Point3{X: x, Y: math.Sin(x)}
	}

	return plotgeom.PlotSpec{
		X:     plotgeom.AutoRange(),
		Y:     plotgeom.FixedRange(-1, 1),
		XData: plotgeom.Extent(0, 2*math.Pi),
		Viewport: plotgeom.ViewportFromCanvas(w, h, plotgeom.Margins{
			Left: 54, Right: 25, Top: 66, Bottom: 36,
		}),
		XTicks:      7,
		YTicks:      4,
		Grid:        true,
		Border:      true,
		MirrorTicks: true,
		XLabel:      "x",
		YLabel:      "sin(x)",
		Series: []plotgeom.Series{{
			Name:   "sin(x)",
			Points: pts,
			Style:  plotgeom.SeriesStyle{Color: scene.Hex("#8b0000"), WithLines: true},
		}},
		Legend: &plotgeom.LegendSpec{Border: true},
	}
}

func rippleSpec(w, h float64) plotgeom.PlotSpec {
	const n = 30
	var series []plotgeom.Series
	for row := 0; row <= n; row++ {
		y := -3 + 6*float64(row)/n
		pts := make([]plotgeom.Point3, n+1)
		for i := range pts {
			x := -3 + 6*float64(i)/n
			r := math.Hypot(x, y)
			z := 1.0
			if r > 0 {
				z = math.Sin(r) / r
			}
			pts[i] = plotgeom.Point3{X: x, Y: y, Z: z}
		}
		series = append(series, plotgeom.Series{
			Points: pts,
			Style:  plotgeom.SeriesStyle{Color: scene.Hex("#00008b"), WithLines: true},
		})
	}

	view := plotgeom.DefaultView()
	return plotgeom.PlotSpec{
		X:    plotgeom.FixedRange(-3, 3),
		Y:    plotgeom.FixedRange(-3, 3),
		Z:    plotgeom.FixedRange(-0.3, 1),
		View: &view,
		Viewport: plotgeom.ViewportFromCanvas(w, h, plotgeom.Margins{
			Left: 54, Right: 25, Top: 66, Bottom: 36,
		}),
		XTicks: 6,
		YTicks: 6,
		ZTicks: 4,
		Series: series,
	}
}

func printSummary(sc *scene.Scene) {
	counts := map[scene.Kind]int{}
	for _, p := range sc.Primitives() {
		counts[p.Kind()]++
	}
	b := sc.Bounds()
	fmt.Printf("scene: %d primitives (lines=%d paths=%d text=%d markers=%d)\n",
		sc.Len(), counts[scene.KindLine], counts[scene.KindPath],
		counts[scene.KindText], counts[scene.KindMarker])
	fmt.Printf("bounds: (%.1f, %.1f) - (%.1f, %.1f)\n", b.MinX, b.MinY, b.MaxX, b.MaxY)
}
