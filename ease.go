package vitrine

import (
	"math"

	"github.com/tanema/gween/ease"
)

// EaseKind selects the easing curve applied to word entrance progress.
// The zero value is Smoothstep.
type EaseKind uint8

const (
	EaseSmoothstep EaseKind = iota // 3t^2 - 2t^3 (default)
	EaseLinear
	EaseIn      // cubic ease-in
	EaseOut     // cubic ease-out
	EaseElastic // elastic overshoot on the way in
	EaseBack    // slight overshoot then settle
)

// smoothstep is the classic Hermite interpolation on [0, 1].
// gween's ease package covers every other curve we use; this is the one it lacks.
func smoothstep(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

// gweenEase evaluates a gween ease.TweenFunc on normalized progress.
func gweenEase(fn ease.TweenFunc, t float64) float64 {
	return float64(fn(float32(clamp01(t)), 0, 1, 1))
}

// Ease maps normalized progress t in [0, 1] through the selected curve.
// power is an exponent applied to the curve's output; values <= 0 are
// treated as 1 (no shaping). Powers above 1 sharpen the start of the
// motion, powers below 1 front-load it.
func Ease(kind EaseKind, power, t float64) float64 {
	t = clamp01(t)

	var v float64
	switch kind {
	case EaseLinear:
		v = t
	case EaseIn:
		v = gweenEase(ease.InCubic, t)
	case EaseOut:
		v = gweenEase(ease.OutCubic, t)
	case EaseElastic:
		v = gweenEase(ease.OutElastic, t)
	case EaseBack:
		v = gweenEase(ease.OutBack, t)
	default:
		v = smoothstep(t)
	}

	if power > 0 && power != 1 {
		// Elastic and back curves overshoot past 1; exponentiating a
		// negative base is undefined, so shape magnitude only.
		if v < 0 {
			v = -math.Pow(-v, power)
		} else {
			v = math.Pow(v, power)
		}
	}
	return v
}

// easeOutCubic is the fixed curve for marquee strip shifts. Kept as a direct
// helper so the shift path does not pay the kind switch every frame.
func easeOutCubic(t float64) float64 {
	return gweenEase(ease.OutCubic, t)
}
