package ask

import (
	"context"
	"fmt"
	"os"
)

// EventSource supplies normalized key events in real input order. Next
// blocks until an event is available; a read failure is fatal to the
// running interaction.
type EventSource interface {
	Next() (KeyEvent, error)
}

// Renderer paints one frame per processed event. Draw may block for the
// duration of a single frame write but must not stall indefinitely.
type Renderer interface {
	Draw(Frame) error
}

// Option configures a single Run or RunContext call.
type Option func(*runConfig)

type runConfig struct {
	theme    *Theme
	source   EventSource
	renderer Renderer
}

// WithTheme sets the theme used by the default terminal renderer.
func WithTheme(t *Theme) Option {
	return func(c *runConfig) {
		if t != nil {
			c.theme = t
		}
	}
}

// WithEvents replaces the default terminal event source. Useful for
// driving a prompt from a host event loop or from tests.
func WithEvents(s EventSource) Option {
	return func(c *runConfig) {
		c.source = s
	}
}

// WithRenderer replaces the default terminal renderer.
func WithRenderer(r Renderer) Option {
	return func(c *runConfig) {
		c.renderer = r
	}
}

// Run drives the widget to completion and returns its typed result.
//
// By default Run opens the controlling terminal, switches it to raw mode
// for the duration of the interaction, and restores it on every exit
// path. Each widget owns the draw surface exclusively until it reaches a
// terminal state, so sequential prompts compose naturally:
//
//	name, err := ask.Run(ask.NewText("Name"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	ok, err := ask.Run(ask.NewConfirm("Create " + name + "?").WithDefault(true))
//	if err != nil {
//		log.Fatal(err)
//	}
//
// A cancel (Esc or Ctrl+C) returns ErrCanceled; event source and
// renderer failures abort the interaction with a wrapped error.
func Run[T any](w Widget[T], opts ...Option) (T, error) {
	return RunContext(context.Background(), w, opts...)
}

// RunContext is Run with context support. Context cancellation behaves
// like the user pressing Esc — the widget moves to its canceled state
// with no further drawing — and the context's error is returned.
// Cancellation is observed between events, before the next blocking
// read.
//
// Example with timeout:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//
//	ok, err := ask.RunContext(ctx, ask.NewConfirm("Proceed?"))
//	if errors.Is(err, context.DeadlineExceeded) {
//		fmt.Println("no answer, moving on")
//	}
func RunContext[T any](ctx context.Context, w Widget[T], opts ...Option) (T, error) {
	var zero T
	cfg := runConfig{theme: ThemeDefault}
	for _, opt := range opts {
		opt(&cfg)
	}

	source := cfg.source
	renderer := cfg.renderer
	if source == nil || renderer == nil {
		term, err := NewTerminal()
		if err != nil {
			return zero, fmt.Errorf("failed to open terminal: %w", err)
		}
		defer func() {
			if err := term.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close terminal: %v\n", err)
			}
		}()
		if err := term.MakeRaw(); err != nil {
			return zero, fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer func() {
			if err := term.Restore(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to restore terminal: %v\n", err)
			}
		}()
		if source == nil {
			source = term
		}
		if renderer == nil {
			painter := NewANSIRenderer(term.Output(), cfg.theme)
			if width, _, err := term.Size(); err == nil {
				painter.SetWidth(width)
			}
			renderer = painter
			// Leave the cursor visible below the last frame.
			defer fmt.Fprint(term.Output(), "\x1b[?25h\r\n")
		}
	}

	session := NewSession(w, renderer)
	if err := session.Start(); err != nil {
		return zero, fmt.Errorf("failed to render prompt: %w", err)
	}
	for !session.Done() {
		select {
		case <-ctx.Done():
			_, _ = session.Step(KeyEvent{Key: KeyCancel})
			return zero, ctx.Err()
		default:
		}

		ev, err := source.Next()
		if err != nil {
			return zero, fmt.Errorf("failed to read input: %w", err)
		}
		if _, err := session.Step(ev); err != nil {
			return zero, fmt.Errorf("failed to render: %w", err)
		}
	}
	return session.Value()
}

// Session runs one widget interaction as a sequence of explicit steps so
// an external event loop can interleave the prompt with other work. Each
// Step performs exactly the same single-event cycle as the blocking
// driver — apply the event, project the frame, draw it — which makes the
// two modes behaviorally identical for identical event sequences.
//
// Example:
//
//	sess := ask.NewSession(widget, renderer)
//	if err := sess.Start(); err != nil {
//		return err
//	}
//	for ev := range hostEvents {
//		done, err := sess.Step(ev)
//		if err != nil {
//			return err
//		}
//		if done {
//			break
//		}
//	}
//	v, err := sess.Value()
type Session[T any] struct {
	widget   Widget[T]
	renderer Renderer
	started  bool
	done     bool
}

// NewSession creates a suspended interaction over w drawing to r.
func NewSession[T any](w Widget[T], r Renderer) *Session[T] {
	return &Session[T]{widget: w, renderer: r}
}

// Start draws the initial frame. Only the first call draws; later calls
// are no-ops.
func (s *Session[T]) Start() error {
	if s.started {
		return nil
	}
	s.started = true
	if s.widget.Status() != StatusActive {
		s.done = true
	}
	return s.renderer.Draw(s.widget.Frame())
}

// Step applies exactly one event and redraws. It reports done once the
// widget reaches a terminal state; further steps are no-ops. A canceled
// widget skips its redraw so nothing is painted past the last frame the
// user saw, and a draw failure ends the interaction with that error.
func (s *Session[T]) Step(ev KeyEvent) (done bool, err error) {
	if s.done {
		return true, nil
	}
	s.widget.HandleKey(ev)
	if s.widget.Status() == StatusCanceled {
		s.done = true
		return true, nil
	}
	if err := s.renderer.Draw(s.widget.Frame()); err != nil {
		s.done = true
		return true, err
	}
	if s.widget.Status() == StatusSubmitted {
		s.done = true
	}
	return s.done, nil
}

// Done reports whether the interaction has finished.
func (s *Session[T]) Done() bool {
	return s.done
}

// Value returns the widget's result; see Widget.Value.
func (s *Session[T]) Value() (T, error) {
	return s.widget.Value()
}
