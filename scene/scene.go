package scene

// Scene is an ordered, append-only sequence of drawing primitives.
// It tracks the cumulative bounding box of its content and a version
// counter incremented on each modification for cache invalidation.
//
// A Scene is built fresh per render call and is not safe for concurrent
// mutation; concurrent readers of a finished scene are fine.
type Scene struct {
	prims   []Primitive
	bounds  Rect
	version uint64
}

// NewScene creates a new empty scene.
func NewScene() *Scene {
	return &Scene{
		prims:  make([]Primitive, 0, 64),
		bounds: EmptyRect(),
	}
}

// Append adds a primitive to the end of the scene (drawn on top of
// everything appended before it). Nil primitives are ignored.
func (s *Scene) Append(p Primitive) {
	if p == nil {
		return
	}
	s.prims = append(s.prims, p)
	s.bounds = s.bounds.Union(p.Bounds())
	s.version++
}

// AppendAll adds primitives in order.
func (s *Scene) AppendAll(ps ...Primitive) {
	for _, p := range ps {
		s.Append(p)
	}
}

// Primitives returns the primitives in draw order.
// The returned slice is owned by the scene; callers must not modify it.
func (s *Scene) Primitives() []Primitive {
	return s.prims
}

// Len returns the number of primitives.
func (s *Scene) Len() int { return len(s.prims) }

// Bounds returns the cumulative bounding box of all content.
func (s *Scene) Bounds() Rect { return s.bounds }

// Version returns the modification counter.
func (s *Scene) Version() uint64 { return s.version }

// Reset clears the scene for reuse without deallocating memory.
func (s *Scene) Reset() {
	s.prims = s.prims[:0]
	s.bounds = EmptyRect()
	s.version++
}
