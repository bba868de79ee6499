package plotgeom

import (
	"github.com/plotforge/plotgeom/scene"
)

// Surface3DScaleRatio is the fraction of the viewport extent used for
// 3D surface geometry. The reference tool maps normalized view
// coordinates through 4/7 of the plot bounds; using 1/2 instead shifts
// every 3D plot even when its shape looks right.
const Surface3DScaleRatio = 4.0 / 7.0

// SurfaceScaleRatio returns the viewport ratio for an explicit
// surface-scale override: marginExtent divided by surfaceScale.
// Non-positive surfaceScale falls back to Surface3DScaleRatio.
func SurfaceScaleRatio(marginExtent, surfaceScale float64) float64 {
	if surfaceScale <= 0 {
		return Surface3DScaleRatio
	}
	return marginExtent / surfaceScale
}

// ViewportRect is the pixel rectangle the plot is mapped into, derived
// by the caller from canvas size minus margins. Pixel y grows downward,
// so Bottom > Top.
type ViewportRect struct {
	Left, Right, Top, Bottom float64
}

// Valid reports whether the rect has positive extent on both axes.
func (r ViewportRect) Valid() bool {
	return r.Right > r.Left && r.Bottom > r.Top
}

// Width returns Right - Left.
func (r ViewportRect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r ViewportRect) Height() float64 { return r.Bottom - r.Top }

// Center returns the pixel midpoint of the rect.
func (r ViewportRect) Center() scene.Point {
	return scene.Pt((r.Left+r.Right)/2, (r.Top+r.Bottom)/2)
}

// Rect returns the rect as a scene bounding box.
func (r ViewportRect) Rect() scene.Rect {
	return scene.Rect{MinX: r.Left, MinY: r.Top, MaxX: r.Right, MaxY: r.Bottom}
}

// ToPixel maps normalized view coordinates (u, v) in [-1, 1] to pixel
// space. scaleRatio is the fraction of the viewport extent actually
// used for geometry: Surface3DScaleRatio for 3D scenes, 1 for 2D
// scenes whose rect is already reduced by margins. Normalized +v is up;
// pixel +y is down.
func (r ViewportRect) ToPixel(u, v, scaleRatio float64) scene.Point {
	c := r.Center()
	return scene.Point{
		X: c.X + u*r.Width()*scaleRatio/2,
		Y: c.Y - v*r.Height()*scaleRatio/2,
	}
}

// ToData inverts ToPixel: it recovers the normalized view coordinates
// of a pixel under the same rect and scaleRatio.
func (r ViewportRect) ToData(p scene.Point, scaleRatio float64) (u, v float64) {
	c := r.Center()
	u = (p.X - c.X) * 2 / (r.Width() * scaleRatio)
	v = (c.Y - p.Y) * 2 / (r.Height() * scaleRatio)
	return u, v
}
