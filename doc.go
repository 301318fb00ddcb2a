// Package vitrine is a scroll-and-pointer-driven animation engine for
// [Ebitengine] hero scenes.
//
// Vitrine provides the four engines a portfolio-style hero region needs: a
// virtual scroll tracker, a pin-and-scale hero transform with pointer
// parallax, a wrap-around image marquee with click-to-center shifting, and a
// staggered word entrance animator. The engines are pure numeric state
// machines advanced once per frame; none of them touches the display.
//
// # Quick start
//
// The simplest integration is a [Stage], which reads input from Ebitengine
// and ticks every engine for you:
//
//	stage := vitrine.NewStage(vitrine.StageConfig{
//		ViewportWidth: 1280, ViewportHeight: 800, ContentHeight: 4000,
//	})
//	// in your ebiten.Game:
//	func (g *Game) Update() error { g.stage.Update(); return nil }
//
// Each frame, read the computed outputs and apply them to whatever you draw:
//
//	t := stage.HeroTransform()
//	op.GeoM.Scale(t.Scale, t.Scale)
//	op.GeoM.Translate(t.ParallaxX, t.TranslateY+t.ParallaxY)
//
// # Using the engines directly
//
// For full control (or for headless tests) construct [Scroller], [Marquee],
// and [WordAnimator] yourself and call their per-frame step methods. The
// engines never read input and never write to the screen, so they run
// anywhere a float64 does.
//
// # Reduced motion
//
// Every engine accepts a reduced-motion flag at construction. When set, all
// outputs are pinned to their settled resting values and the per-frame math
// is skipped.
//
// [Ebitengine]: https://ebitengine.org
package vitrine
