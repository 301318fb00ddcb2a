package vitrine

import "math"

// PinConfig tunes the pin-and-scale hero transform. Construct via
// DefaultPinConfig and override fields as needed; invalid values are clamped
// when the config is first used.
type PinConfig struct {
	// InitialScale is the hero's scale at scroll position 0.
	InitialScale float64
	// MaxScale is the scale reached at the end of the grow phase and held
	// from then on.
	MaxScale float64
	// GrowHeight is the scroll distance in pixels over which the hero grows
	// from InitialScale to MaxScale.
	GrowHeight float64
	// HoldHeight is the extra scroll distance after the grow phase during
	// which the hero stays pinned (counter-translated against the scroll).
	HoldHeight float64
	// EnterTranslateY is the hero's vertical offset at scroll position 0.
	// It interpolates to 0 across the grow phase.
	EnterTranslateY float64
	// ParallaxLeft and ParallaxRight bound the pointer parallax on each
	// side. They differ when the hero is not horizontally centered in its
	// track, so the travel room is asymmetric.
	ParallaxLeft  float64
	ParallaxRight float64
	// ParallaxY bounds the vertical pointer parallax.
	ParallaxY float64
	// ParallaxDecay controls how fast parallax fades as the grow phase
	// progresses. At 1.2 the parallax reaches zero at ~83% grow progress,
	// comfortably before the hold phase.
	ParallaxDecay float64
	// MinViewportWidth is the breakpoint below which the hero does not
	// animate at all.
	MinViewportWidth float64
	// ReducedMotion pins the transform to its resting values.
	ReducedMotion bool
}

// DefaultPinConfig returns the standard hero parameterization for a viewport
// of the given height: grow over 1.1 viewport heights, hold for 0.05.
func DefaultPinConfig(viewportHeight float64) PinConfig {
	return PinConfig{
		InitialScale:    0.4,
		MaxScale:        1.05,
		GrowHeight:      1.1 * viewportHeight,
		HoldHeight:      0.05 * viewportHeight,
		EnterTranslateY: 0,
		ParallaxLeft:    90,
		ParallaxRight:   40,
		ParallaxY:       30,
		ParallaxDecay:   1.2,
	}
}

func (c PinConfig) normalized() PinConfig {
	if c.InitialScale <= 0 {
		c.InitialScale = 0.4
	}
	if c.MaxScale < c.InitialScale {
		c.MaxScale = c.InitialScale
	}
	if c.GrowHeight < 0 {
		c.GrowHeight = 0
	}
	if c.HoldHeight < 0 {
		c.HoldHeight = 0
	}
	if c.ParallaxDecay <= 0 {
		c.ParallaxDecay = 1.2
	}
	return c
}

// PinTransform is the per-frame output of the pin engine. Scale and
// TranslateY position the hero within the scrolled page; ParallaxX and
// ParallaxY are meant for an inner wrapper so the pointer drift does not
// disturb the pin itself.
type PinTransform struct {
	Scale      float64
	TranslateY float64
	ParallaxX  float64
	ParallaxY  float64
}

// PhaseAt returns which segment of the pin curve the scroll offset falls in.
func (c PinConfig) PhaseAt(scroll float64) Phase {
	c = c.normalized()
	if scroll <= c.GrowHeight {
		return PhaseGrowing
	}
	if scroll <= c.GrowHeight+c.HoldHeight {
		return PhaseHold
	}
	return PhaseRelease
}

// Transform maps a scroll offset and pointer state to the hero transform for
// one frame. The output is continuous across both phase boundaries:
//
//   - grow: scale and translateY interpolate linearly with grow progress
//   - hold: scale pinned at max; translateY counter-translates by exactly
//     the scroll distance past the grow phase, so the hero appears fixed
//   - release: translateY freezes at the accumulated hold compensation and
//     the hero scrolls with the page again
//
// Reduced motion or a viewport narrower than MinViewportWidth force the
// resting transform (full scale, no translation, no parallax).
func (c PinConfig) Transform(scroll float64, pointer Pointer, viewportWidth float64) PinTransform {
	c = c.normalized()

	if c.ReducedMotion || viewportWidth < c.MinViewportWidth {
		return PinTransform{Scale: c.MaxScale}
	}

	// Degenerate grow height: treat the hero as fully grown.
	progress := 1.0
	if c.GrowHeight > 0 {
		progress = clamp01(scroll / c.GrowHeight)
	}

	var t PinTransform
	switch c.PhaseAt(scroll) {
	case PhaseGrowing:
		t.Scale = lerp(c.InitialScale, c.MaxScale, progress)
		t.TranslateY = lerp(c.EnterTranslateY, 0, progress)
	case PhaseHold:
		t.Scale = c.MaxScale
		t.TranslateY = scroll - c.GrowHeight
	case PhaseRelease:
		t.Scale = c.MaxScale
		t.TranslateY = c.HoldHeight
	}

	strength := math.Max(0, 1-progress*c.ParallaxDecay)
	if strength > 0 {
		bound := c.ParallaxLeft
		if pointer.X > 0 {
			bound = c.ParallaxRight
		}
		t.ParallaxX = pointer.X * bound * strength
		t.ParallaxY = pointer.Y * c.ParallaxY * strength
	}
	return t
}
