package vitrine

import (
	"math"
	"testing"
	"time"
)

func newTestStage() *Stage {
	return NewStage(StageConfig{
		ViewportWidth:      1280,
		ViewportHeight:     800,
		ContentHeight:      4000,
		Scroll:             ScrollerConfig{EaseFactor: 0.5},
		SyntheticInputOnly: true,
	})
}

// newMarqueeStage pairs a stage with the 5-item test strip on a matching
// 50x100 viewport, with a controllable clock.
func newMarqueeStage(now *time.Time) (*Stage, *Marquee) {
	s := NewStage(StageConfig{
		ViewportWidth:      50,
		ViewportHeight:     100,
		ContentHeight:      300,
		Scroll:             ScrollerConfig{EaseFactor: 0.5},
		SyntheticInputOnly: true,
	})
	s.clock = func() time.Time { return *now }
	m := NewMarquee(testMarqueeLayout())
	s.SetMarquee(m)
	return s, m
}

func TestInjectedWheelScrolls(t *testing.T) {
	s := newTestStage()

	s.InjectWheel(100)
	s.Update()

	if got := s.Scroller().Target(); got != 100 {
		t.Fatalf("Target = %f after injected wheel, want 100", got)
	}
	if s.Scroll() <= 0 {
		t.Errorf("Scroll = %f, want > 0 after one frame", s.Scroll())
	}

	for i := 0; i < 60; i++ {
		s.Update()
	}
	if got := s.Scroll(); got != 100 {
		t.Errorf("Scroll = %f after settling, want 100", got)
	}
}

func TestInjectedKeyScrolls(t *testing.T) {
	s := newTestStage()

	s.InjectKey(ScrollKeyEnd)
	s.Update()

	if got := s.Scroller().Target(); got != 3200 {
		t.Errorf("Target = %f after End, want 3200", got)
	}
}

func TestInjectedEventsConsumedOnePerFrame(t *testing.T) {
	s := newTestStage()

	s.InjectWheel(50)
	s.InjectWheel(50)

	s.Update()
	if got := s.Scroller().Target(); got != 50 {
		t.Errorf("Target = %f after first frame, want 50", got)
	}
	s.Update()
	if got := s.Scroller().Target(); got != 100 {
		t.Errorf("Target = %f after second frame, want 100", got)
	}
}

func TestInjectedPointerDrivesParallax(t *testing.T) {
	s := newTestStage()

	// Bottom-right corner: pointer (1, 1), full parallax at scroll 0.
	s.InjectPointerMove(1280, 800)
	s.Update()

	p := s.Pointer()
	if p.X != 1 || p.Y != 1 {
		t.Fatalf("pointer = %+v, want (1, 1)", p)
	}
	tr := s.HeroTransform()
	if tr.ParallaxX <= 0 || tr.ParallaxY <= 0 {
		t.Errorf("parallax = (%f, %f), want positive", tr.ParallaxX, tr.ParallaxY)
	}
}

func TestClickOnSelectedNavigates(t *testing.T) {
	now := time.Unix(100, 0)
	s, _ := newMarqueeStage(&now)

	var navigated string
	s.SetNavigator(NavigatorFunc(func(target string) { navigated = target }))

	s.Update()

	// The settled selection is pinned at the viewport center.
	p := s.MarqueePlacement(0)
	s.InjectClick(p.X+p.Width/2, p.Y+p.Height/2)
	s.Update()

	if navigated != "item-0" {
		t.Errorf("navigated = %q, want %q", navigated, "item-0")
	}
}

func TestClickOnOtherItemSelectsIt(t *testing.T) {
	now := time.Unix(100, 0)
	s, m := newMarqueeStage(&now)

	var navigated string
	s.SetNavigator(NavigatorFunc(func(target string) { navigated = target }))

	s.Update()

	p := s.MarqueePlacement(2)
	s.InjectClick(p.X+p.Width/2, p.Y+p.Height/2)
	s.Update()

	if navigated != "" {
		t.Fatalf("navigated = %q on non-selected click, want none", navigated)
	}
	if m.Selected() != 2 {
		t.Fatalf("Selected = %d, want 2", m.Selected())
	}
	if m.Settled() {
		t.Fatal("expected a shift in flight")
	}

	// Let the shift finish on the wall clock.
	now = now.Add(2 * time.Second)
	s.Update()

	if !m.Settled() {
		t.Fatal("shift did not settle")
	}
	sel := s.MarqueePlacement(2)
	if center := sel.X + sel.Width/2; math.Abs(center-25) > 1e-6 {
		t.Errorf("selected center = %f after shift, want 25", center)
	}
}

func TestMarqueePlacementPinsSelectedThroughDrift(t *testing.T) {
	now := time.Unix(100, 0)
	s, _ := newMarqueeStage(&now)

	// Several frames of ambient drift move the strip, but the selected
	// item stays pinned at center with the hero's scroll-driven scale.
	for i := 0; i < 30; i++ {
		s.Update()
	}

	p := s.MarqueePlacement(0)
	if center := p.X + p.Width/2; math.Abs(center-25) > 1e-6 {
		t.Errorf("selected center = %f after drift, want 25", center)
	}
	if math.Abs(p.DepthScale-s.HeroTransform().Scale) > 1e-9 {
		t.Errorf("selected scale = %f, want hero scale %f", p.DepthScale, s.HeroTransform().Scale)
	}

	// A non-selected item does move with the drift.
	before := s.MarqueePlacement(2).X
	s.Update()
	if s.MarqueePlacement(2).X == before {
		t.Error("strip did not drift")
	}
}

func TestHitTestFollowsBlendedPlacement(t *testing.T) {
	now := time.Unix(100, 0)
	s, m := newMarqueeStage(&now)

	// One frame of drift moves the strip; the selected item stays pinned.
	s.Update()

	p := s.MarqueePlacement(0)
	x, y := p.X+p.Width/2, p.Y+p.Height/2
	if got := s.hitItem(x, y); got != 0 {
		t.Fatalf("stage hit = %d at the pinned center, want 0", got)
	}
	// The raw strip-space test does not see the selection blend there.
	if got := m.HitItem(x, y); got == 0 {
		t.Error("strip-space hit test found the selected item at its pinned position")
	}
}

func TestSelectedParallaxOnlyWhenSettled(t *testing.T) {
	now := time.Unix(100, 0)
	s, m := newMarqueeStage(&now)

	s.InjectPointerMove(50, 100) // pointer (1, 1)
	s.Update()

	v := s.SelectedParallax()
	if v.X == 0 || v.Y == 0 {
		t.Errorf("settled parallax = %+v, want nonzero", v)
	}

	m.Select(3)
	if got := s.SelectedParallax(); got != (Vec2{}) {
		t.Errorf("mid-shift parallax = %+v, want zero", got)
	}
}

func TestReducedMotionStage(t *testing.T) {
	s := NewStage(StageConfig{
		ViewportWidth:      50,
		ViewportHeight:     100,
		ContentHeight:      300,
		ReducedMotion:      true,
		SyntheticInputOnly: true,
	})
	m := NewMarquee(testMarqueeLayout())
	s.SetMarquee(m)

	// Scrolling snaps.
	s.InjectWheel(150)
	s.Update()
	if got := s.Scroll(); got != 150 {
		t.Errorf("Scroll = %f under reduced motion, want 150 immediately", got)
	}

	// The hero sits at its resting transform.
	tr := s.HeroTransform()
	if tr.TranslateY != 0 || tr.ParallaxX != 0 {
		t.Errorf("hero transform = %+v, want resting", tr)
	}

	// Selection jumps with no shift animation.
	p := s.MarqueePlacement(2)
	s.InjectClick(p.X+p.Width/2, p.Y+p.Height/2)
	s.Update()
	if !m.Settled() {
		t.Error("shift animation ran under reduced motion")
	}
	if m.Selected() != 2 {
		t.Errorf("Selected = %d, want 2", m.Selected())
	}
}

func TestReducedMotionStageKeepsWordsSettled(t *testing.T) {
	s := NewStage(StageConfig{
		ViewportWidth:      1280,
		ViewportHeight:     800,
		ContentHeight:      4000,
		ReducedMotion:      true,
		SyntheticInputOnly: true,
	})
	cfg := testWordConfig()
	cfg.StaticPercent = 0
	w := NewWordAnimator(testText, cfg)

	// Centers inside the band would animate on a normal stage.
	s.SetWords(w, func(int) (float64, bool) { return 400, true })
	for i := 0; i < 60; i++ {
		s.Update()
	}

	for i := 0; i < w.Len(); i++ {
		if w.Offset(i) != 0 {
			t.Errorf("word %d: offset = %f under reduced motion, want 0", i, w.Offset(i))
		}
		if w.Progress(i) != 1 {
			t.Errorf("word %d: progress = %f under reduced motion, want 1", i, w.Progress(i))
		}
	}
}

func TestScrollKeyBindingsCoverEveryCommand(t *testing.T) {
	seen := map[ScrollKey]int{}
	for _, b := range scrollKeyBindings {
		seen[b.cmd]++
	}

	for _, cmd := range []ScrollKey{
		ScrollKeyArrowUp, ScrollKeyArrowDown,
		ScrollKeyPageUp, ScrollKeyPageDown,
		ScrollKeyHome, ScrollKeyEnd,
	} {
		if seen[cmd] != 1 {
			t.Errorf("command %d bound %d times, want exactly once", cmd, seen[cmd])
		}
	}
}

func TestStageResizeReclampsScroll(t *testing.T) {
	s := newTestStage()
	s.Scroller().ScrollTo(3200, true)

	s.Resize(1280, 800, 1600)

	if got := s.Scroller().Position(); got != 800 {
		t.Errorf("Position = %f after resize, want 800", got)
	}
}

func TestStageCloseStopsUpdates(t *testing.T) {
	s := newTestStage()
	s.Close()

	s.InjectWheel(100)
	s.Update()

	if got := s.Scroll(); got != 0 {
		t.Errorf("Scroll = %f after Close, want 0", got)
	}
}

func TestStageStepsWords(t *testing.T) {
	s := newTestStage()
	cfg := testWordConfig()
	cfg.StaticPercent = 0
	w := NewWordAnimator("words on a stage", cfg)

	// Every word sits above the band, so all of them settle.
	s.SetWords(w, func(int) (float64, bool) { return 80, true })
	for i := 0; i < 400; i++ {
		s.Update()
	}

	for i := 0; i < w.Len(); i++ {
		if math.Abs(w.Offset(i)) > 0.5 {
			t.Errorf("word %d: offset = %f, want settled", i, w.Offset(i))
		}
	}
}
