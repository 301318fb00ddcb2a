package vitrine

import (
	"math"
	"math/rand"
	"strings"
)

// --- Configuration ---

// WordConfig tunes the staggered word animator. Zero fields take the
// defaults below; out-of-range fields are clamped at construction.
type WordConfig struct {
	// MaxOffset scales the per-class lateral start offsets, in pixels.
	MaxOffset float64
	// WordSpacing is the base horizontal gap between words, in pixels.
	WordSpacing float64
	// AnimationSpeed is the per-frame progress convergence factor in (0, 1].
	// It is independent of scroll speed: however fast the band is crossed,
	// words settle at this rate.
	AnimationSpeed float64
	// Smoothing is the second-order lag on the rendered offset in [0, 1).
	// Higher values trail further behind the eased progress.
	Smoothing float64
	// WindowStart and WindowEnd bound the animation band as fractions of
	// the viewport height, measured from the top. A word starts converging
	// when its center rises past WindowStart and is fully settled at
	// WindowEnd.
	WindowStart float64
	WindowEnd   float64
	// DelayRange bounds each word's random start delay as a fraction of
	// the band, in [0, 0.95]. Delays stagger starts without moving the
	// shared finish.
	DelayRange float64
	// StaticPercent is the percentage of words excluded from motion
	// entirely, selected at random without replacement.
	StaticPercent float64
	// Easing and EasePower shape the progress-to-offset curve.
	Easing    EaseKind
	EasePower float64
	// ReducedMotion renders every word at its settled position and turns
	// Step into a no-op.
	ReducedMotion bool
	// Seed drives the class, delay, and static-subset assignment. Equal
	// seeds reproduce the exact same animation.
	Seed int64
}

func (c WordConfig) normalized() WordConfig {
	if c.MaxOffset <= 0 {
		c.MaxOffset = 120
	}
	if c.WordSpacing <= 0 {
		c.WordSpacing = 14
	}
	if c.AnimationSpeed <= 0 || c.AnimationSpeed > 1 {
		c.AnimationSpeed = 0.1
	}
	if c.Smoothing < 0 || c.Smoothing >= 1 {
		c.Smoothing = 0.85
	}
	if c.WindowStart <= 0 || c.WindowStart > 1 {
		c.WindowStart = 0.9
	}
	if c.WindowEnd < 0 || c.WindowEnd >= c.WindowStart {
		c.WindowEnd = math.Min(0.35, c.WindowStart/2)
	}
	c.DelayRange = clamp(c.DelayRange, 0, 0.95)
	c.StaticPercent = clamp(c.StaticPercent, 0, 100)
	if c.EasePower <= 0 {
		c.EasePower = 1
	}
	return c
}

// --- Type classes ---

const wordClassCount = 8

// classOffsets are the base lateral start offsets per type class, as signed
// fractions of MaxOffset. Alternating signs make neighboring words slide in
// from opposite sides.
var classOffsets = [wordClassCount]float64{
	-0.90, 0.60, -0.45, 0.80, -1.00, 0.40, -0.65, 0.95,
}

// classPads are asymmetric (left, right) spacing multipliers per class, so
// unsettled words visually interlock instead of forming a tidy row.
var classPads = [wordClassCount][2]float64{
	{0.2, 1.4}, {1.1, 0.3}, {0.6, 0.9}, {1.3, 0.2},
	{0.4, 1.2}, {0.9, 0.5}, {0.3, 1.0}, {1.2, 0.4},
}

// --- Animator ---

type word struct {
	text      string
	line      int
	class     int
	delay     float64
	static    bool
	progress  float64 // smoothed band progress, 0 = unentered, 1 = settled
	offset    float64 // rendered lateral offset, converges to 0
	offsetSet bool    // first frame seeds the offset at the full start value
}

// WordAnimator renders a text block as individually offset word tokens and
// converges each word's lateral offset to zero as it scrolls through the
// animation band. All randomness is drawn from the config seed at
// construction, so a given seed replays identically.
type WordAnimator struct {
	cfg   WordConfig
	words []word
}

// NewWordAnimator tokenizes text by whitespace, treating explicit line
// breaks as hard separators, and assigns each word a type class, a start
// delay, and (for StaticPercent of them) a permanent static flag.
func NewWordAnimator(text string, cfg WordConfig) *WordAnimator {
	cfg = cfg.normalized()
	a := &WordAnimator{cfg: cfg}

	for lineIdx, line := range strings.Split(text, "\n") {
		for _, tok := range strings.Fields(line) {
			a.words = append(a.words, word{text: tok, line: lineIdx})
		}
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	for i := range a.words {
		a.words[i].class = rng.Intn(wordClassCount)
		a.words[i].delay = rng.Float64() * cfg.DelayRange
	}

	// Static subset: uniform, without replacement.
	n := len(a.words)
	staticCount := int(math.Round(float64(n) * cfg.StaticPercent / 100))
	for _, idx := range rng.Perm(n)[:staticCount] {
		a.words[idx].static = true
	}
	return a
}

// Len returns the number of words.
func (a *WordAnimator) Len() int {
	return len(a.words)
}

// Text returns the word at index i.
func (a *WordAnimator) Text(i int) string {
	return a.words[i].text
}

// Line returns the zero-based line the word belongs to.
func (a *WordAnimator) Line(i int) int {
	return a.words[i].line
}

// Static reports whether word i is excluded from motion.
func (a *WordAnimator) Static(i int) bool {
	return a.words[i].static
}

// Pads returns the word's asymmetric (left, right) spacing in pixels.
func (a *WordAnimator) Pads(i int) (left, right float64) {
	p := classPads[a.words[i].class]
	return p[0] * a.cfg.WordSpacing, p[1] * a.cfg.WordSpacing
}

// BaseOffset returns the word's lateral start offset in pixels.
func (a *WordAnimator) BaseOffset(i int) float64 {
	if a.words[i].static || a.cfg.ReducedMotion {
		return 0
	}
	return classOffsets[a.words[i].class] * a.cfg.MaxOffset
}

// Offset returns the word's current rendered lateral offset in pixels.
// Static words and reduced motion always report 0.
func (a *WordAnimator) Offset(i int) float64 {
	if a.words[i].static || a.cfg.ReducedMotion {
		return 0
	}
	w := &a.words[i]
	if !w.offsetSet {
		return a.BaseOffset(i)
	}
	return w.offset
}

// Progress returns the word's smoothed band progress in [0, 1].
func (a *WordAnimator) Progress(i int) float64 {
	if a.words[i].static || a.cfg.ReducedMotion {
		return 1
	}
	return a.words[i].progress
}

// Step advances every non-static word by one frame. centerY reports word
// i's vertical center in viewport coordinates; returning ok=false skips the
// word for this frame (unmeasured words retry next frame). Under reduced
// motion Step does nothing.
func (a *WordAnimator) Step(viewportHeight float64, centerY func(i int) (float64, bool)) {
	if a.cfg.ReducedMotion {
		return
	}

	startY := viewportHeight * a.cfg.WindowStart
	endY := viewportHeight * a.cfg.WindowEnd
	band := startY - endY

	for i := range a.words {
		w := &a.words[i]
		if w.static {
			continue
		}
		cy, ok := centerY(i)
		if !ok {
			continue
		}

		// Degenerate band: treat the word as fully settled.
		base := 1.0
		if band > 1e-9 {
			base = clamp01((startY - cy) / band)
		}

		// Delay the start within the band without moving the finish.
		target := base
		if w.delay > 0 {
			target = clamp01((base - w.delay) / (1 - w.delay))
		}

		w.progress += (target - w.progress) * a.cfg.AnimationSpeed
		eased := Ease(a.cfg.Easing, a.cfg.EasePower, w.progress)
		offsetTarget := classOffsets[w.class] * a.cfg.MaxOffset * (1 - eased)

		if !w.offsetSet {
			w.offset = classOffsets[w.class] * a.cfg.MaxOffset
			w.offsetSet = true
		}
		w.offset += (offsetTarget - w.offset) * (1 - a.cfg.Smoothing)
	}
}
