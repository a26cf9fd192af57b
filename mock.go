package ask

// scriptSource implements EventSource with a fixed event sequence.
//
// It provides deterministic input for unit tests and for replaying the
// same interaction through both driver modes: events are delivered in
// order and the source reports ErrEOF once the script is exhausted, so a
// widget that never terminates fails a test instead of hanging it.
type scriptSource struct {
	events []KeyEvent
	pos    int
}

func newScriptSource(events ...KeyEvent) *scriptSource {
	return &scriptSource{events: events}
}

func (s *scriptSource) Next() (KeyEvent, error) {
	if s.pos >= len(s.events) {
		return KeyEvent{}, ErrEOF
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}

// frameRecorder implements Renderer by capturing every drawn frame. Tests
// assert on the recorded sequence to verify projections and, by comparing
// two recorders, the equivalence of the blocking and step drivers. An
// optional err makes Draw fail to exercise I/O error paths.
type frameRecorder struct {
	frames []Frame
	err    error
}

func (r *frameRecorder) Draw(f Frame) error {
	if r.err != nil {
		return r.err
	}
	r.frames = append(r.frames, f)
	return nil
}

// script is shorthand for building event sequences in tests: printable
// strings become one Char event per rune.
func script(text string, rest ...KeyEvent) []KeyEvent {
	events := make([]KeyEvent, 0, len(text)+len(rest))
	for _, r := range text {
		events = append(events, Char(r))
	}
	return append(events, rest...)
}

// key is shorthand for a non-character event.
func key(k Key) KeyEvent {
	return KeyEvent{Key: k}
}
