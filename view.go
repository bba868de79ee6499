package plotgeom

import "math"

// ViewParameters describe a 3D viewing transform. RotX and RotZ are in
// degrees. Scale multiplies the whole projected result; ZScale
// multiplies the vertical axis independently. TicsLevel shifts the
// z-axis intercept along the vertical: negative values lower the z-axis
// base plane below the data floor, the legacy convention.
type ViewParameters struct {
	RotX, RotZ float64
	Scale      float64
	ZScale     float64
	TicsLevel  float64
}

// DefaultView returns the reference tool's default view: 60 degrees of
// tilt, 30 degrees of turn, unit scales, base plane half a z-range
// below the data floor.
func DefaultView() ViewParameters {
	return ViewParameters{RotX: 60, RotZ: 30, Scale: 1, ZScale: 1, TicsLevel: -0.5}
}

// ViewPoint is a projected 3D point in normalized view space: the unit
// cube lands within about 1.6 of the origin at unit scale. Depth is the
// discarded third component, retained for painter's-algorithm ordering:
// larger Depth is nearer the viewer.
type ViewPoint struct {
	U, V  float64
	Depth float64
}

// View is a 3D projection bound to resolved axis ranges. It normalizes
// data coordinates into a unit cube, rotates by RotZ (clockwise seen
// from above) then tilts by RotX (far edge away from the viewer), and
// drops depth in an orthographic projection.
//
// A View is immutable after construction and safe for concurrent use.
type View struct {
	params     ViewParameters
	x, y       ResolvedRange
	cosZ, sinZ float64
	cosX, sinX float64

	// z normalization against [floor, ceil], scaled by ZScale about
	// the floor. floor sits TicsLevel z-ranges away from z.Min.
	zFloor, zScale3D, zCenter float64
}

// NewView builds a projection for the given parameters and resolved
// axis ranges. A zero Scale or ZScale is treated as 1.
func NewView(params ViewParameters, x, y, z ResolvedRange) *View {
	if params.Scale == 0 {
		params.Scale = 1
	}
	if params.ZScale == 0 {
		params.ZScale = 1
	}

	rotZ := params.RotZ * math.Pi / 180
	rotX := params.RotX * math.Pi / 180

	zFloor := z.Min + params.TicsLevel*(z.Max-z.Min)
	zCeil := z.Max
	zScale3D := 2 / (zCeil - zFloor) * params.ZScale
	zCenter := -(zCeil-zFloor)/2*zScale3D + 1

	return &View{
		params:   params,
		x:        x,
		y:        y,
		cosZ:     math.Cos(rotZ),
		sinZ:     math.Sin(rotZ),
		cosX:     math.Cos(rotX),
		sinX:     math.Sin(rotX),
		zFloor:   zFloor,
		zScale3D: zScale3D,
		zCenter:  zCenter,
	}
}

// Params returns the view parameters the View was built with.
func (v *View) Params() ViewParameters { return v.params }

// ZFloor returns the data-space z value of the base plane.
func (v *View) ZFloor() float64 { return v.zFloor }

// Project maps a point in resolved data space to normalized view
// coordinates. Non-finite input or output yields
// *DegenerateGeometryError.
func (v *View) Project(x, y, z float64) (ViewPoint, error) {
	nx := v.x.Normalize(x)
	ny := v.y.Normalize(y)
	nz := (z-v.zFloor)*v.zScale3D + v.zCenter - 1

	// Turn about the vertical axis, clockwise seen from above.
	x1 := nx*v.cosZ + ny*v.sinZ
	y1 := -nx*v.sinZ + ny*v.cosZ

	// Tilt about the screen-horizontal axis: the far edge (+y1)
	// drops away from the viewer as RotX grows.
	y2 := y1*v.cosX + nz*v.sinX
	z2 := -y1*v.sinX + nz*v.cosX

	// The viewport mapper halves the extent on its side, so the full
	// scale applies here.
	s := v.params.Scale
	p := ViewPoint{U: x1 * s, V: y2 * s, Depth: z2}
	if !isFinite(p.U) || !isFinite(p.V) || !isFinite(p.Depth) {
		return ViewPoint{}, &DegenerateGeometryError{X: x, Y: y, Z: z}
	}
	return p, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
