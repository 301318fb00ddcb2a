package vitrine

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Pointer is the normalized pointer offset from the viewport center.
// Both components are in [-1, 1]: (-1, -1) is the top-left corner,
// (0, 0) the exact center, (1, 1) the bottom-right corner.
type Pointer struct {
	X, Y float64
}

// NormalizePointer converts an absolute cursor position into a Pointer given
// the viewport size. Degenerate viewports produce the centered pointer.
func NormalizePointer(cursorX, cursorY, viewportW, viewportH float64) Pointer {
	if viewportW <= 0 || viewportH <= 0 {
		return Pointer{}
	}
	return Pointer{
		X: clamp(cursorX/viewportW*2-1, -1, 1),
		Y: clamp(cursorY/viewportH*2-1, -1, 1),
	}
}

// Phase identifies which segment of the pin-and-scale curve a scroll offset
// falls in.
type Phase uint8

const (
	PhaseGrowing Phase = iota // scale interpolating toward max
	PhaseHold                 // element pinned, counter-translated
	PhaseRelease              // element scrolling normally again
)

// String returns the phase name for debugging.
func (p Phase) String() string {
	switch p {
	case PhaseGrowing:
		return "growing"
	case PhaseHold:
		return "hold"
	case PhaseRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Block controls vertical alignment for Scroller.ScrollToElement.
type Block uint8

const (
	BlockStart  Block = iota // align the element's top with the viewport top
	BlockCenter              // align the element's middle with the viewport middle
	BlockEnd                 // align the element's bottom with the viewport bottom
)

// --- Numeric helpers ---

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
