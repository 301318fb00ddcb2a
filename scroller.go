package vitrine

import "math"

// --- Configuration ---

// ScrollerConfig tunes the virtual scroll tracker. Zero fields take the
// defaults below; out-of-range fields are clamped at construction.
type ScrollerConfig struct {
	// EaseFactor is the per-frame convergence factor in (0, 1].
	// 1.0 snaps immediately; lower values glide.
	EaseFactor float64
	// Epsilon is the settle threshold in pixels. Once the remaining
	// distance drops below it, the position snaps to the target exactly.
	Epsilon float64
	// WheelFactor scales raw wheel deltas before they accumulate into the
	// target.
	WheelFactor float64
	// ArrowStep is the distance in pixels for ArrowUp/ArrowDown.
	ArrowStep float64
	// PageFraction is the fraction of the viewport height scrolled by
	// PageUp/PageDown.
	PageFraction float64
	// ReducedMotion makes every scroll instant: the position snaps to the
	// target with no glide.
	ReducedMotion bool
}

const (
	defaultEaseFactor   = 0.1
	defaultEpsilon      = 0.5
	defaultWheelFactor  = 1.0
	defaultArrowStep    = 120.0
	defaultPageFraction = 0.9
)

func (c ScrollerConfig) normalized() ScrollerConfig {
	if c.EaseFactor <= 0 || c.EaseFactor > 1 {
		c.EaseFactor = defaultEaseFactor
	}
	if c.Epsilon <= 0 {
		c.Epsilon = defaultEpsilon
	}
	if c.WheelFactor <= 0 {
		c.WheelFactor = defaultWheelFactor
	}
	if c.ArrowStep <= 0 {
		c.ArrowStep = defaultArrowStep
	}
	if c.PageFraction <= 0 || c.PageFraction > 1 {
		c.PageFraction = defaultPageFraction
	}
	return c
}

// ScrollKey identifies a keyboard scroll command.
type ScrollKey uint8

const (
	ScrollKeyArrowUp ScrollKey = iota
	ScrollKeyArrowDown
	ScrollKeyPageUp
	ScrollKeyPageDown
	ScrollKeyHome
	ScrollKeyEnd
)

// --- Listener registry ---

type scrollListener struct {
	id uint32
	fn func(position float64)
}

// ScrollHandle allows removing a registered scroll listener.
type ScrollHandle struct {
	id uint32
	s  *Scroller
}

// Remove unregisters this listener so it no longer fires.
func (h ScrollHandle) Remove() {
	if h.s == nil {
		return
	}
	ls := h.s.listeners
	for i := range ls {
		if ls[i].id == h.id {
			copy(ls[i:], ls[i+1:])
			ls[len(ls)-1] = scrollListener{}
			h.s.listeners = ls[:len(ls)-1]
			return
		}
	}
}

// --- Scroller ---

// Scroller is the single source of truth for the virtual scroll position.
// Raw wheel, keyboard, and touch deltas accumulate into a clamped target;
// the visible position converges toward the target once per frame.
//
// A Scroller with unmeasured bounds (content or viewport height <= 0)
// treats every call as a no-op until SetBounds provides real geometry.
type Scroller struct {
	cfg ScrollerConfig

	current float64
	target  float64

	contentHeight  float64
	viewportHeight float64

	animating bool

	listeners []scrollListener
	nextID    uint32
}

// NewScroller creates a Scroller with the given configuration and no
// measured bounds.
func NewScroller(cfg ScrollerConfig) *Scroller {
	return &Scroller{cfg: cfg.normalized()}
}

// SetBounds records the scrollable content height and the viewport height,
// then re-clamps the current position and target into the new range.
// Call it on mount and again on every window resize.
func (s *Scroller) SetBounds(contentHeight, viewportHeight float64) {
	s.contentHeight = contentHeight
	s.viewportHeight = viewportHeight

	max := s.MaxScroll()
	s.current = clamp(s.current, 0, max)
	s.target = clamp(s.target, 0, max)
	if s.target != s.current {
		s.animating = true
	}
}

// measured reports whether the scrollable container has real geometry.
func (s *Scroller) measured() bool {
	return s.contentHeight > 0 && s.viewportHeight > 0
}

// MaxScroll returns the maximum scroll position
// (content height minus viewport height, never negative).
func (s *Scroller) MaxScroll() float64 {
	return math.Max(0, s.contentHeight-s.viewportHeight)
}

// Position returns the current interpolated scroll position.
func (s *Scroller) Position() float64 {
	return s.current
}

// Target returns the position the scroller is converging toward.
func (s *Scroller) Target() float64 {
	return s.target
}

// Settled reports whether the scroller is idle (current == target).
func (s *Scroller) Settled() bool {
	return !s.animating
}

// ScrollTo clamps position into [0, MaxScroll] and scrolls there. When
// instant (or under reduced motion) the current position snaps immediately;
// otherwise it converges over the following frames.
func (s *Scroller) ScrollTo(position float64, instant bool) {
	if !s.measured() {
		return
	}
	if instant {
		position = clamp(position, 0, s.MaxScroll())
		s.current = position
		s.target = position
		s.animating = false
		s.notify()
		return
	}
	s.setTarget(position)
}

// ScrollToElement scrolls so an element at elementTop (relative to the
// content, independent of the current scroll) with the given height lands at
// the requested block alignment, plus an additional pixel offset.
func (s *Scroller) ScrollToElement(elementTop, elementHeight float64, block Block, offset float64, instant bool) {
	if !s.measured() {
		return
	}
	pos := elementTop
	switch block {
	case BlockCenter:
		pos = elementTop + elementHeight/2 - s.viewportHeight/2
	case BlockEnd:
		pos = elementTop + elementHeight - s.viewportHeight
	}
	s.ScrollTo(pos+offset, instant)
}

// OnScroll registers a listener invoked with the rounded scroll position on
// every frame the position changes. Listeners run synchronously in
// registration order; a panicking listener is isolated and does not stop the
// others or the scroll loop.
func (s *Scroller) OnScroll(fn func(position float64)) ScrollHandle {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, scrollListener{id: id, fn: fn})
	return ScrollHandle{id: id, s: s}
}

// setTarget clamps and installs a new target. Under reduced motion the
// position snaps to it immediately.
func (s *Scroller) setTarget(position float64) {
	s.target = clamp(position, 0, s.MaxScroll())
	if s.cfg.ReducedMotion {
		s.current = s.target
		s.animating = false
		s.notify()
		return
	}
	s.animating = s.target != s.current
}

// Wheel accumulates a wheel delta (positive = scroll down) into the target.
func (s *Scroller) Wheel(delta float64) {
	if !s.measured() {
		return
	}
	s.setTarget(s.target + delta*s.cfg.WheelFactor)
}

// TouchDelta accumulates a touch drag delta into the target. The delta is
// the finger's upward travel between consecutive touch positions (dragging
// up scrolls down, matching native touch scrolling).
func (s *Scroller) TouchDelta(delta float64) {
	if !s.measured() {
		return
	}
	s.setTarget(s.target + delta)
}

// Key applies a keyboard scroll command to the target.
func (s *Scroller) Key(key ScrollKey) {
	if !s.measured() {
		return
	}
	target := s.target
	switch key {
	case ScrollKeyArrowUp:
		target -= s.cfg.ArrowStep
	case ScrollKeyArrowDown:
		target += s.cfg.ArrowStep
	case ScrollKeyPageUp:
		target -= s.viewportHeight * s.cfg.PageFraction
	case ScrollKeyPageDown:
		target += s.viewportHeight * s.cfg.PageFraction
	case ScrollKeyHome:
		target = 0
	case ScrollKeyEnd:
		target = s.MaxScroll()
	}
	s.setTarget(target)
}

// Step advances the convergence by one frame and reports whether the
// scroller is still animating. While the remaining distance exceeds the
// epsilon the position lerps toward the target and listeners are notified;
// once within epsilon it snaps exactly, notifies one final time, and goes
// idle until the next input.
func (s *Scroller) Step() bool {
	if !s.measured() || !s.animating {
		return false
	}

	diff := s.target - s.current
	if math.Abs(diff) <= s.cfg.Epsilon {
		s.current = s.target
		s.animating = false
	} else {
		s.current += diff * s.cfg.EaseFactor
	}
	s.notify()
	return s.animating
}

// Close drops all listeners. Call on teardown so no callback outlives the
// component that registered it.
func (s *Scroller) Close() {
	s.listeners = nil
}

// notify invokes every listener with the rounded position, isolating panics
// per listener.
func (s *Scroller) notify() {
	pos := math.Round(s.current)
	for _, l := range s.listeners {
		callScrollListener(l.fn, pos)
	}
}

func callScrollListener(fn func(float64), pos float64) {
	defer func() {
		_ = recover()
	}()
	fn(pos)
}
