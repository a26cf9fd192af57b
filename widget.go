package ask

// Status is the lifecycle state of a widget. A widget starts Active and
// moves to exactly one of the terminal states; terminal states are
// absorbing, so a finished widget ignores further events.
type Status int

// Widget lifecycle states.
const (
	StatusActive Status = iota
	StatusSubmitted
	StatusCanceled
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusSubmitted:
		return "submitted"
	case StatusCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Widget is the uniform contract shared by every prompt kind. A widget is
// a synchronous state machine: HandleKey applies one event, Frame projects
// the current state into a drawable description, and Value extracts the
// typed result once the widget is terminal.
//
// HandleKey never blocks and never performs I/O; drawing the frame and
// reading events belong to the driver and its collaborators. Value returns
// ErrActive before a terminal state and ErrCanceled after cancellation.
type Widget[T any] interface {
	HandleKey(KeyEvent)
	Status() Status
	Frame() Frame
	Value() (T, error)
}

// Validator checks a candidate input value and reports why it is not
// acceptable. A nil error accepts the value.
type Validator func(value string) error
