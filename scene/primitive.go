// Package scene defines the drawing primitives emitted by the geometry
// engine and the ordered container that holds them.
//
// A Scene is an append-only sequence of primitives in final pixel
// coordinates (y grows downward). Ordering is meaningful: later
// primitives draw on top of earlier ones, and consumers must preserve
// it when serializing to a concrete output format.
package scene

// Kind is a single-byte tag identifying a primitive variant.
// Switches over Kind should be exhaustive; new variants get new tags.
type Kind byte

const (
	// KindLine is a straight segment between two points.
	KindLine Kind = 0x01

	// KindPath is a polyline through two or more points,
	// optionally closed back to its first point.
	KindPath Kind = 0x02

	// KindText is a positioned text run.
	KindText Kind = 0x03

	// KindMarker is a point symbol centered on a pixel position.
	KindMarker Kind = 0x04
)

// Style carries the stroke attributes a primitive is drawn with.
// The engine treats styles as opaque: it forwards what the caller
// supplied and computes nothing beyond defaults for zero values.
type Style struct {
	Color RGBA
	Width float64
	// Dash is the on/off pattern in pixels; empty means solid.
	Dash []float64
}

// DefaultStyle returns an opaque black 1px solid stroke.
func DefaultStyle() Style {
	return Style{Color: RGB(0, 0, 0), Width: 1}
}

// HAlign is the horizontal alignment of a text run relative to its anchor.
type HAlign byte

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is the vertical alignment of a text run relative to its anchor.
type VAlign byte

const (
	AlignBaseline VAlign = iota
	AlignTop
	AlignMiddle
	AlignBottom
)

// MarkerKind enumerates the point symbols of the reference tool.
type MarkerKind byte

const (
	MarkerPoint MarkerKind = iota
	MarkerPlus
	MarkerCross
	MarkerCircle
	MarkerSquare
	MarkerTriangle
	MarkerDiamond
)

// Primitive is the tagged-variant interface over all drawable values.
type Primitive interface {
	Kind() Kind
	Bounds() Rect
}

// Line is a straight segment from P0 to P1.
type Line struct {
	P0, P1 Point
	Style  Style
}

func (l Line) Kind() Kind { return KindLine }

func (l Line) Bounds() Rect { return RectFromPoints(l.P0, l.P1) }

// Path is a polyline through Points; Closed joins the last point back
// to the first when drawn.
type Path struct {
	Points []Point
	Closed bool
	Style  Style
}

func (p Path) Kind() Kind { return KindPath }

func (p Path) Bounds() Rect { return RectFromPoints(p.Points...) }

// Text is a text run anchored at a pixel position. Rotation is in
// degrees counterclockwise about the anchor. Size is the font size in
// pixels; zero means the consumer's default.
type Text struct {
	Anchor   Point
	Text     string
	Rotation float64
	HAlign   HAlign
	VAlign   VAlign
	Size     float64
	Style    Style
}

func (t Text) Kind() Kind { return KindText }

// Bounds returns the anchor point only; text extent depends on the
// consumer's font rendering and is not known here.
func (t Text) Bounds() Rect { return RectFromPoints(t.Anchor) }

// Marker is a point symbol of the given kind and pixel size.
type Marker struct {
	Center Point
	Marker MarkerKind
	Size   float64
	Style  Style
}

func (m Marker) Kind() Kind { return KindMarker }

func (m Marker) Bounds() Rect {
	h := m.Size / 2
	return Rect{
		MinX: m.Center.X - h, MinY: m.Center.Y - h,
		MaxX: m.Center.X + h, MaxY: m.Center.Y + h,
	}
}
