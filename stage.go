package vitrine

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Navigator is the page-routing collaborator. Navigate receives the opaque
// target identifier of a marquee item that was clicked while selected; the
// engine does not interpret it.
type Navigator interface {
	Navigate(target string)
}

// NavigatorFunc adapts a plain function to the Navigator interface.
type NavigatorFunc func(target string)

// Navigate calls f(target).
func (f NavigatorFunc) Navigate(target string) { f(target) }

// wheelNotchStep converts one wheel notch into scroll pixels.
const wheelNotchStep = 40.0

// scrollKeyBindings maps hardware keys to scroll commands. Package level so
// the per-frame input read allocates nothing.
var scrollKeyBindings = [...]struct {
	key ebiten.Key
	cmd ScrollKey
}{
	{ebiten.KeyArrowUp, ScrollKeyArrowUp},
	{ebiten.KeyArrowDown, ScrollKeyArrowDown},
	{ebiten.KeyPageUp, ScrollKeyPageUp},
	{ebiten.KeyPageDown, ScrollKeyPageDown},
	{ebiten.KeyHome, ScrollKeyHome},
	{ebiten.KeyEnd, ScrollKeyEnd},
}

// StageConfig configures a Stage. ViewportWidth, ViewportHeight, and
// ContentHeight are required for scrolling to engage; everything else has
// defaults.
type StageConfig struct {
	ViewportWidth  float64
	ViewportHeight float64
	// ContentHeight is the total scrollable page height.
	ContentHeight float64

	Scroll ScrollerConfig
	// Pin is the hero parameterization. A zero GrowHeight selects
	// DefaultPinConfig for the viewport height.
	Pin PinConfig

	// SelectedParallax bounds the small pointer parallax applied to the
	// settled selected marquee item's inner wrapper.
	SelectedParallax float64

	// ReducedMotion disables every animation path. Read once here, never
	// re-polled.
	ReducedMotion bool

	// SyntheticInputOnly ignores the real mouse, keyboard, touch, and
	// wheel; the stage then only responds to Inject* events. Used by
	// headless tests.
	SyntheticInputOnly bool
}

// Stage wires the engines to Ebitengine: it reads input once per frame,
// snapshots the shared state, ticks every engine in a fixed order, and
// exposes the computed transforms. All per-frame state is owned here;
// event-style inputs only mutate the scroller target and the pointer
// snapshot, never the outputs directly.
type Stage struct {
	cfg      StageConfig
	scroller *Scroller
	pin      PinConfig
	marquee  *Marquee
	words    *WordAnimator
	wordY    func(i int) (float64, bool)
	nav      Navigator

	pointer   Pointer
	scroll    float64
	scrolling bool
	hero      PinTransform

	// Touch drag tracking (single-finger scroll).
	touchIDs    []ebiten.TouchID
	touchActive bool
	touchID     ebiten.TouchID
	touchLastY  float64

	injectQueue []syntheticEvent

	clock  func() time.Time
	closed bool
}

// NewStage creates a Stage and its Scroller. The reduced-motion preference
// is propagated into every engine configuration.
func NewStage(cfg StageConfig) *Stage {
	if cfg.Pin.GrowHeight == 0 {
		cfg.Pin = DefaultPinConfig(cfg.ViewportHeight)
	}
	if cfg.SelectedParallax <= 0 {
		cfg.SelectedParallax = 12
	}
	if cfg.ReducedMotion {
		cfg.Scroll.ReducedMotion = true
		cfg.Pin.ReducedMotion = true
	}

	s := &Stage{
		cfg:   cfg,
		pin:   cfg.Pin.normalized(),
		clock: time.Now,
	}
	s.scroller = NewScroller(cfg.Scroll)
	s.scroller.SetBounds(cfg.ContentHeight, cfg.ViewportHeight)
	s.hero = s.pin.Transform(0, Pointer{}, cfg.ViewportWidth)
	return s
}

// SetMarquee attaches a marquee runtime to the stage.
func (s *Stage) SetMarquee(m *Marquee) {
	s.marquee = m
}

// SetWords attaches a word animator. centerY reports word i's vertical
// center in viewport coordinates each frame (ok=false while unmeasured).
// A reduced-motion stage forces the animator into reduced motion too, so
// the preference reaches every attached engine.
func (s *Stage) SetWords(w *WordAnimator, centerY func(i int) (float64, bool)) {
	if w != nil && s.cfg.ReducedMotion {
		w.cfg.ReducedMotion = true
	}
	s.words = w
	s.wordY = centerY
}

// SetNavigator installs the navigation collaborator.
func (s *Stage) SetNavigator(nav Navigator) {
	s.nav = nav
}

// Scroller returns the stage's scroll tracker.
func (s *Stage) Scroller() *Scroller {
	return s.scroller
}

// Scroll returns this frame's scroll position snapshot.
func (s *Stage) Scroll() float64 {
	return s.scroll
}

// Pointer returns this frame's normalized pointer snapshot.
func (s *Stage) Pointer() Pointer {
	return s.pointer
}

// HeroTransform returns this frame's pin-and-scale output.
func (s *Stage) HeroTransform() PinTransform {
	return s.hero
}

// Resize updates the viewport (and optionally content) dimensions and
// re-clamps the scroll range. Call from your game's Layout when the window
// size changes; pass contentHeight <= 0 to keep the current content height.
func (s *Stage) Resize(viewportWidth, viewportHeight, contentHeight float64) {
	s.cfg.ViewportWidth = viewportWidth
	s.cfg.ViewportHeight = viewportHeight
	if contentHeight > 0 {
		s.cfg.ContentHeight = contentHeight
	}
	s.scroller.SetBounds(s.cfg.ContentHeight, viewportHeight)
}

// Close tears the stage down: listeners are dropped and further Updates are
// no-ops, so no frame callback outlives the owner.
func (s *Stage) Close() {
	s.closed = true
	s.scroller.Close()
}

// Update advances the stage by one frame. Call it once from your
// ebiten.Game Update. Input is read first, then every engine steps against
// the same snapshot, so no engine observes a half-updated frame.
func (s *Stage) Update() {
	if s.closed {
		return
	}

	injected := s.processInjected()
	if !injected && !s.cfg.SyntheticInputOnly {
		s.readHardwareInput()
	}

	// Snapshot after input, before any engine runs.
	s.scrolling = s.scroller.Step()
	s.scroll = s.scroller.Position()

	if s.marquee != nil {
		dt := 1.0 / float64(ebiten.TPS())
		if s.cfg.ReducedMotion {
			s.marquee.SnapToSelection()
		} else {
			s.marquee.Tick(s.clock(), dt, s.pointer, s.scrolling)
		}
	}

	if s.words != nil && s.wordY != nil {
		s.words.Step(s.cfg.ViewportHeight, s.wordY)
	}

	s.hero = s.pin.Transform(s.scroll, s.pointer, s.cfg.ViewportWidth)
}

// readHardwareInput pulls wheel, keyboard, cursor, touch, and click state
// from Ebitengine.
func (s *Stage) readHardwareInput() {
	if _, wy := ebiten.Wheel(); wy != 0 {
		// Ebiten reports wheel-up as positive; scrolling down the page is
		// the positive direction here.
		s.scroller.Wheel(-wy * wheelNotchStep)
	}

	for _, b := range scrollKeyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			s.scroller.Key(b.cmd)
		}
	}

	cx, cy := ebiten.CursorPosition()
	s.pointer = NormalizePointer(float64(cx), float64(cy), s.cfg.ViewportWidth, s.cfg.ViewportHeight)

	s.readTouch()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.handleClick(float64(cx), float64(cy))
	}
}

// readTouch tracks a single-finger vertical drag and feeds its delta to the
// scroller. Dragging up scrolls down, matching native touch scrolling.
func (s *Stage) readTouch() {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])

	if len(s.touchIDs) == 0 {
		s.touchActive = false
		return
	}

	id := s.touchIDs[0]
	_, ty := ebiten.TouchPosition(id)
	y := float64(ty)

	if !s.touchActive || s.touchID != id {
		s.touchActive = true
		s.touchID = id
		s.touchLastY = y
		return
	}
	if delta := s.touchLastY - y; delta != 0 {
		s.scroller.TouchDelta(delta)
		s.touchLastY = y
	}
}

// handleClick routes a click at viewport coordinates: the settled selected
// item navigates to its target, any other visible item becomes the new
// selection.
func (s *Stage) handleClick(x, y float64) {
	if s.marquee == nil {
		return
	}
	idx := s.hitItem(x, y)
	if idx < 0 {
		return
	}
	if idx == s.marquee.Selected() && s.marquee.Settled() {
		if s.nav != nil {
			s.nav.Navigate(s.marquee.Layout().Item(idx).ID)
		}
		return
	}
	s.marquee.Select(idx)
	if s.cfg.ReducedMotion {
		s.marquee.SnapToSelection()
	}
}

// hitItem finds the topmost item containing (x, y) using the blended
// placements, so the pinned selected item is hit where it is drawn, not
// where the strip coordinates put it.
func (s *Stage) hitItem(x, y float64) int {
	return s.marquee.hitAt(x, y, s.MarqueePlacement)
}

// MarqueePlacement resolves item i's placement with the selection blend
// applied: the selected item glides from its strip position to the viewport
// center, with position, vertical alignment, and scale all driven by the one
// eased shift progress. Once settled the selected item stays pinned at
// center and takes the hero's scroll-driven scale.
func (s *Stage) MarqueePlacement(i int) Placement {
	p := s.marquee.ItemPlacement(i)
	if i != s.marquee.Selected() {
		return p
	}

	t := s.marquee.ShiftProgress()
	cx := s.cfg.ViewportWidth/2 - p.Width/2
	cy := s.cfg.ViewportHeight/2 - p.Height/2

	p.X = lerp(p.X, cx, t)
	p.Y = lerp(p.Y, cy, t)
	p.DepthScale = lerp(p.DepthScale, s.hero.Scale, t)
	return p
}

// SelectedParallax returns the small pointer-driven offset for the settled
// selected item's inner wrapper. It is independent of the outer pin
// position and zero while a shift is in flight or motion is reduced.
func (s *Stage) SelectedParallax() Vec2 {
	if s.cfg.ReducedMotion || s.marquee == nil || !s.marquee.Settled() {
		return Vec2{}
	}
	return Vec2{
		X: s.pointer.X * s.cfg.SelectedParallax,
		Y: s.pointer.Y * s.cfg.SelectedParallax,
	}
}
