package vitrine

import (
	"math"
	"time"
)

// --- Configuration ---

// MarqueeItem describes one image in the strip. NativeWidth and NativeHeight
// are the asset's unscaled pixel dimensions. Row selects one of three depth
// rows (0 = far, 1 = mid, 2 = near). FloatDelay shifts the item's vertical
// jitter phase so neighbors with the same row and index spacing do not line
// up.
type MarqueeItem struct {
	ID           string
	NativeWidth  float64
	NativeHeight float64
	Row          int
	FloatDelay   float64
}

// MarqueeConfig tunes the strip layout and motion. Zero fields take the
// defaults below; out-of-range fields are clamped at construction.
type MarqueeConfig struct {
	// ViewportWidth and ViewportHeight are the visible region in pixels.
	ViewportWidth  float64
	ViewportHeight float64
	// Gap is the horizontal spacing between adjacent items before padding.
	Gap float64
	// TargetVisible is roughly how many mid-row items should span the
	// viewport; it normalizes the base scale.
	TargetVisible float64
	// RowScales weights the three depth rows (far, mid, near).
	RowScales [3]float64
	// RowBaseY is each row's vertical anchor in pixels from the top.
	RowBaseY [3]float64
	// JitterAmp is the amplitude of the deterministic per-item vertical
	// jitter around the row anchor.
	JitterAmp float64
	// BaseSpeed is the ambient drift in pixels per frame at FrameInterval.
	BaseSpeed float64
	// MouseSpeedFactor scales the pointer's horizontal offset into extra
	// drift speed.
	MouseSpeedFactor float64
	// FrameInterval is the reference frame duration the speeds are
	// expressed against.
	FrameInterval float64
	// ShiftDuration is the wall-clock length of a strip shift. Slow frames
	// do not extend it.
	ShiftDuration time.Duration
	// PeakScale and EdgeScale bound the depth scale: PeakScale at the
	// viewport center, EdgeScale at FalloffHalfWidth away and beyond.
	PeakScale float64
	EdgeScale float64
	// FalloffHalfWidth is the horizontal distance over which the depth
	// scale falls from peak to edge.
	FalloffHalfWidth float64
	// FalloffPower sharpens the center peak (>1) or flattens it (<1).
	FalloffPower float64
	// WrapMargin widens the off-screen band in which items jump from one
	// end of the strip to the other.
	WrapMargin float64
}

func (c MarqueeConfig) normalized() MarqueeConfig {
	if c.ViewportWidth <= 0 {
		c.ViewportWidth = 1280
	}
	if c.ViewportHeight <= 0 {
		c.ViewportHeight = 800
	}
	if c.Gap < 0 {
		c.Gap = 0
	}
	if c.TargetVisible <= 0 {
		c.TargetVisible = 5
	}
	if c.RowScales == ([3]float64{}) {
		c.RowScales = [3]float64{0.55, 1.0, 1.5}
	}
	for i, s := range c.RowScales {
		if s <= 0 {
			c.RowScales[i] = 1
		}
	}
	if c.RowBaseY == ([3]float64{}) {
		c.RowBaseY = [3]float64{
			c.ViewportHeight * 0.22,
			c.ViewportHeight * 0.42,
			c.ViewportHeight * 0.58,
		}
	}
	if c.JitterAmp < 0 {
		c.JitterAmp = 0
	}
	if c.BaseSpeed == 0 {
		c.BaseSpeed = 0.4
	}
	if c.FrameInterval <= 0 {
		c.FrameInterval = 1.0 / 60.0
	}
	if c.ShiftDuration <= 0 {
		c.ShiftDuration = 900 * time.Millisecond
	}
	if c.PeakScale <= 0 {
		c.PeakScale = 1.0
	}
	if c.EdgeScale <= 0 || c.EdgeScale > c.PeakScale {
		c.EdgeScale = math.Min(0.6, c.PeakScale)
	}
	if c.FalloffHalfWidth <= 0 {
		c.FalloffHalfWidth = c.ViewportWidth / 2
	}
	if c.FalloffPower <= 0 {
		c.FalloffPower = 2
	}
	if c.WrapMargin < 0 {
		c.WrapMargin = 0
	}
	return c
}

// --- Wrapping arithmetic ---

// wrapOffset wraps x into [0, total). Degenerate strips wrap to 0.
func wrapOffset(x, total float64) float64 {
	if total <= 0 {
		return 0
	}
	x = math.Mod(x, total)
	if x < 0 {
		x += total
	}
	return x
}

// shortestWrappingDelta returns the signed shortest travel from current to
// target on a wrapping line of the given length. The result satisfies
// |delta| <= total/2 and wrapOffset(current+delta) == wrapOffset(target).
func shortestWrappingDelta(current, target, total float64) float64 {
	if total <= 0 {
		return 0
	}
	d := wrapOffset(target-current, total)
	if d > total/2 {
		d -= total
	}
	return d
}

// --- Layout ---

// MarqueeLayout is the immutable geometry of the strip, computed once from
// the fixed item list. Base positions are item left edges in strip
// coordinates before any offset is applied.
type MarqueeLayout struct {
	cfg   MarqueeConfig
	items []MarqueeItem

	basePositions []float64
	scaledWidths  []float64
	scaledHeights []float64
	topPositions  []float64

	totalStripWidth float64
	maxItemWidth    float64
}

// deterministic jitter angle; irrational so consecutive items never repeat.
const jitterAngle = 2.3999632297286533

// NewMarqueeLayout lays the items end to end with a uniform gap, padding the
// gap if needed so the total strip width is at least the viewport width plus
// the widest item. That slack guarantees the wrap point is always off
// screen.
func NewMarqueeLayout(items []MarqueeItem, cfg MarqueeConfig) *MarqueeLayout {
	cfg = cfg.normalized()
	l := &MarqueeLayout{cfg: cfg, items: append([]MarqueeItem(nil), items...)}
	n := len(items)
	if n == 0 {
		return l
	}

	// Base scale: TargetVisible mid-row items span the viewport.
	var avgWidth float64
	for _, it := range items {
		avgWidth += math.Max(1, it.NativeWidth)
	}
	avgWidth /= float64(n)
	baseScale := cfg.ViewportWidth / (cfg.TargetVisible * avgWidth)

	l.scaledWidths = make([]float64, n)
	l.scaledHeights = make([]float64, n)
	l.topPositions = make([]float64, n)
	var widthSum float64
	for i, it := range items {
		row := it.Row
		if row < 0 || row > 2 {
			row = 1
		}
		depth := cfg.RowScales[row]
		l.scaledWidths[i] = math.Max(1, it.NativeWidth) * baseScale * depth
		l.scaledHeights[i] = math.Max(1, it.NativeHeight) * baseScale * depth
		l.topPositions[i] = cfg.RowBaseY[row] + math.Sin(float64(i)*jitterAngle+it.FloatDelay)*cfg.JitterAmp
		widthSum += l.scaledWidths[i]
		if l.scaledWidths[i] > l.maxItemWidth {
			l.maxItemWidth = l.scaledWidths[i]
		}
	}

	// Pad the gap until the wrap slack invariant holds.
	gap := cfg.Gap
	total := widthSum + gap*float64(n)
	minTotal := cfg.ViewportWidth + l.maxItemWidth + cfg.WrapMargin
	if total < minTotal {
		gap += (minTotal - total) / float64(n)
		total = minTotal
	}

	l.basePositions = make([]float64, n)
	var x float64
	for i := range items {
		l.basePositions[i] = x
		x += l.scaledWidths[i] + gap
	}
	l.totalStripWidth = total
	return l
}

// Len returns the number of items in the strip.
func (l *MarqueeLayout) Len() int {
	return len(l.items)
}

// Item returns the descriptor at index i.
func (l *MarqueeLayout) Item(i int) MarqueeItem {
	return l.items[i]
}

// TotalStripWidth returns the wrapped strip's period in pixels.
func (l *MarqueeLayout) TotalStripWidth() float64 {
	return l.totalStripWidth
}

// centerOffset returns the strip offset that places item i's center at the
// viewport's horizontal center.
func (l *MarqueeLayout) centerOffset(i int) float64 {
	center := l.basePositions[i] + l.scaledWidths[i]/2
	return wrapOffset(center-l.cfg.ViewportWidth/2, l.totalStripWidth)
}

// --- Runtime ---

// shiftAnimation slides the strip toward a selected item. Elapsed time is
// measured against a wall-clock start timestamp, so a dropped frame never
// stretches the animation.
type shiftAnimation struct {
	startOffset float64
	delta       float64
	startAt     time.Time
	duration    time.Duration
	eased       float64
}

// Placement is one item's resolved position for the current frame.
// X and Y locate the item's top-left corner in viewport coordinates at
// DepthScale 1; the caller scales around the item center.
type Placement struct {
	X, Y       float64
	Width      float64
	Height     float64
	DepthScale float64
}

// Marquee owns the strip's mutable runtime state. Exactly one of ambient
// drift and an active shift advances the offset on any given frame. The
// offset is mutated only inside Tick; Select merely installs the intended
// shift, which the following Ticks apply.
type Marquee struct {
	layout *MarqueeLayout

	offset   float64
	selected int
	previous int
	shift    *shiftAnimation
}

// NewMarquee creates the runtime with item 0 selected and centered.
func NewMarquee(layout *MarqueeLayout) *Marquee {
	m := &Marquee{layout: layout, previous: -1}
	if layout.Len() > 0 {
		m.offset = layout.centerOffset(0)
	}
	return m
}

// Layout returns the immutable strip geometry.
func (m *Marquee) Layout() *MarqueeLayout {
	return m.layout
}

// Offset returns the strip's current offset in [0, TotalStripWidth).
func (m *Marquee) Offset() float64 {
	return m.offset
}

// Selected returns the index of the current selection.
func (m *Marquee) Selected() int {
	return m.selected
}

// Previous returns the outgoing selection during a shift, or -1 once the
// shift has completed.
func (m *Marquee) Previous() int {
	return m.previous
}

// Settled reports whether no shift animation is in flight.
func (m *Marquee) Settled() bool {
	return m.shift == nil
}

// ShiftProgress returns the eased progress of the active shift in [0, 1],
// or 1 when settled. Horizontal, vertical, and scale motion of the selected
// item must all be derived from this one value so they never desync.
func (m *Marquee) ShiftProgress() float64 {
	if m.shift == nil {
		return 1
	}
	return m.shift.eased
}

// Select begins shifting the strip so the item at index arrives at the
// viewport center, traveling the shorter way around the wrapping line.
// Selecting the current selection or an out-of-range index is a no-op.
func (m *Marquee) Select(index int) {
	if index == m.selected || index < 0 || index >= m.layout.Len() {
		return
	}
	target := m.layout.centerOffset(index)
	delta := shortestWrappingDelta(m.offset, target, m.layout.totalStripWidth)

	m.previous = m.selected
	m.selected = index
	m.shift = &shiftAnimation{
		startOffset: m.offset,
		delta:       delta,
		duration:    m.layout.cfg.ShiftDuration,
	}
}

// SnapToSelection completes any pending shift immediately, centering the
// selected item with no animation. Used under reduced motion.
func (m *Marquee) SnapToSelection() {
	if m.layout.Len() == 0 {
		return
	}
	m.offset = m.layout.centerOffset(m.selected)
	m.shift = nil
	m.previous = -1
}

// Tick advances the strip by one frame. While a shift is active it drives
// the offset from the eased wall-clock progress; otherwise, and only when no
// page scroll is in progress, the strip drifts with the pointer.
func (m *Marquee) Tick(now time.Time, dt float64, pointer Pointer, scrolling bool) {
	if m.layout.Len() == 0 {
		return
	}
	total := m.layout.totalStripWidth

	if sh := m.shift; sh != nil {
		if sh.startAt.IsZero() {
			sh.startAt = now
		}
		p := 1.0
		if sh.duration > 0 {
			p = clamp01(float64(now.Sub(sh.startAt)) / float64(sh.duration))
		}
		sh.eased = easeOutCubic(p)
		m.offset = wrapOffset(sh.startOffset+sh.delta*sh.eased, total)
		if p >= 1 {
			m.offset = wrapOffset(sh.startOffset+sh.delta, total)
			m.shift = nil
			m.previous = -1
		}
		return
	}

	if scrolling {
		return
	}
	cfg := m.layout.cfg
	speed := cfg.BaseSpeed + pointer.X*cfg.MouseSpeedFactor
	m.offset = wrapOffset(m.offset+speed*dt/cfg.FrameInterval, total)
}

// ItemPlacement resolves item i's on-screen position and depth scale for the
// current offset. Items past the wrap threshold re-enter from the opposite
// edge, so the strip reads as endless.
func (m *Marquee) ItemPlacement(i int) Placement {
	l := m.layout
	cfg := l.cfg
	total := l.totalStripWidth

	x := wrapOffset(l.basePositions[i]-m.offset, total)
	if x > total-l.maxItemWidth-cfg.WrapMargin {
		x -= total
	}

	w := l.scaledWidths[i]
	center := x + w/2
	d := 1.0
	if cfg.FalloffHalfWidth > 0 {
		d = clamp01(math.Abs(center-cfg.ViewportWidth/2) / cfg.FalloffHalfWidth)
	}
	depth := cfg.EdgeScale + (cfg.PeakScale-cfg.EdgeScale)*math.Pow(1-d, cfg.FalloffPower)

	return Placement{
		X:          x,
		Y:          l.topPositions[i],
		Width:      w,
		Height:     l.scaledHeights[i],
		DepthScale: depth,
	}
}

// HitItem returns the index of the topmost item containing the point
// (x, y) in viewport coordinates, or -1, judged on the raw strip placements
// with no selection blend applied. The stage runs the same test against its
// blended placements instead, so the pinned selected item is hit where it is
// drawn. Nearer rows win overlaps.
func (m *Marquee) HitItem(x, y float64) int {
	return m.hitAt(x, y, m.ItemPlacement)
}

// hitAt runs the hit test against an arbitrary placement source.
func (m *Marquee) hitAt(x, y float64, place func(i int) Placement) int {
	best := -1
	bestRow := -1
	for i := 0; i < m.layout.Len(); i++ {
		p := place(i)
		cx := p.X + p.Width/2
		cy := p.Y + p.Height/2
		r := Rect{
			X:      cx - p.Width*p.DepthScale/2,
			Y:      cy - p.Height*p.DepthScale/2,
			Width:  p.Width * p.DepthScale,
			Height: p.Height * p.DepthScale,
		}
		if r.Contains(x, y) && m.layout.items[i].Row >= bestRow {
			best = i
			bestRow = m.layout.items[i].Row
		}
	}
	return best
}
