package vitrine

// syntheticEvent is a single injected input event. Events are consumed one
// per frame, exactly as hardware input is, so injected interaction tests see
// the same frame cadence as a real session.
type syntheticEvent struct {
	kind       syntheticKind
	wheelDelta float64
	x, y       float64
	key        ScrollKey
}

type syntheticKind uint8

const (
	synWheel syntheticKind = iota
	synPointerMove
	synClick
	synKey
)

// InjectWheel queues a synthetic wheel delta (positive = scroll down),
// consumed on the next Update.
func (s *Stage) InjectWheel(delta float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synWheel, wheelDelta: delta})
}

// InjectPointerMove queues a synthetic pointer move to the given viewport
// coordinates.
func (s *Stage) InjectPointerMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synPointerMove, x: x, y: y})
}

// InjectClick queues a synthetic left click at the given viewport
// coordinates. The pointer moves there on the same frame.
func (s *Stage) InjectClick(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synClick, x: x, y: y})
}

// InjectKey queues a synthetic keyboard scroll command.
func (s *Stage) InjectKey(key ScrollKey) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: synKey, key: key})
}

// processInjected pops one event from the queue and applies it through the
// same paths hardware input takes. Returns true if an event was consumed
// (hardware input is skipped that frame).
func (s *Stage) processInjected() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case synWheel:
		s.scroller.Wheel(evt.wheelDelta)
	case synPointerMove:
		s.pointer = NormalizePointer(evt.x, evt.y, s.cfg.ViewportWidth, s.cfg.ViewportHeight)
	case synClick:
		s.pointer = NormalizePointer(evt.x, evt.y, s.cfg.ViewportWidth, s.cfg.ViewportHeight)
		s.handleClick(evt.x, evt.y)
	case synKey:
		s.scroller.Key(evt.key)
	}
	return true
}
