package ask

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// Terminal is the default collaborator pair for the driver: an
// EventSource decoding raw terminal input into key events, plus the
// output writer the default renderer paints to.
//
// Input uses go-tty for cross-platform tty access and golang.org/x/term
// for raw mode, capturing the original state so every exit path can
// restore it. Output goes through go-colorable so ANSI sequences work on
// Windows consoles. Close is double-close safe.
type Terminal struct {
	tty           *tty.TTY
	output        io.Writer
	closed        bool
	stdinFd       int
	originalState *term.State
}

// NewTerminal opens the controlling terminal. It returns ErrNotTerminal
// when the process has no interactive terminal attached, so callers can
// fall back to non-interactive behavior cleanly.
func NewTerminal() (*Terminal, error) {
	if fd := os.Stdout.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return nil, ErrNotTerminal
	}

	t, err := tty.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open tty: %w", err)
	}

	var output io.Writer = os.Stdout
	if runtime.GOOS == "windows" {
		output = colorable.NewColorableStdout()
	}

	return &Terminal{
		tty:     t,
		output:  output,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

// MakeRaw switches the terminal to raw mode so keys are delivered one by
// one without echo. The prior state is captured for Restore.
func (t *Terminal) MakeRaw() error {
	if !term.IsTerminal(t.stdinFd) {
		return nil
	}
	state, err := term.GetState(t.stdinFd)
	if err != nil {
		return err
	}
	t.originalState = state
	if _, err := term.MakeRaw(t.stdinFd); err != nil {
		return err
	}
	return nil
}

// Restore puts the terminal back into the state captured by MakeRaw.
// Calling it without a prior MakeRaw is a no-op.
func (t *Terminal) Restore() error {
	if t.originalState == nil || !term.IsTerminal(t.stdinFd) {
		return nil
	}
	err := term.Restore(t.stdinFd, t.originalState)
	// Drop the state so the next MakeRaw captures a fresh baseline.
	t.originalState = nil
	return err
}

// Size returns the terminal dimensions, falling back to 80x24 when
// detection fails so layout math never divides by zero.
func (t *Terminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24, err
	}
	return w, h, nil
}

// Output returns the ANSI-capable writer for this terminal.
func (t *Terminal) Output() io.Writer {
	return t.output
}

// Next reads and decodes the next key event. Control characters without
// a mapping are dropped; unrecognized escape sequences are consumed and
// skipped so stray bytes never surface as input. Ctrl+D and a closed
// input stream surface as ErrEOF.
func (t *Terminal) Next() (KeyEvent, error) {
	for {
		r, err := t.tty.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return KeyEvent{}, ErrEOF
			}
			return KeyEvent{}, fmt.Errorf("failed to read rune: %w", err)
		}

		if r == '\x04' { // Ctrl+D
			return KeyEvent{}, ErrEOF
		}
		if r == '\x1b' {
			if ev, ok := decodeEscape(t.tty.Buffered, t.tty.ReadRune); ok {
				return ev, nil
			}
			continue
		}
		if ev, ok := decodeRune(r); ok {
			return ev, nil
		}
	}
}

// decodeRune maps a single non-escape rune to a key event. Unmapped
// control characters report false and are dropped by the read loop.
func decodeRune(r rune) (KeyEvent, bool) {
	switch r {
	case '\r', '\n':
		return KeyEvent{Key: KeySubmit}, true
	case '\x03': // Ctrl+C
		return KeyEvent{Key: KeyCancel}, true
	case '\x7f', '\b':
		return KeyEvent{Key: KeyBackspace}, true
	case '\t':
		return KeyEvent{Key: KeyTab}, true
	case '\x01': // Ctrl+A
		return KeyEvent{Key: KeyHome}, true
	case '\x05': // Ctrl+E
		return KeyEvent{Key: KeyEnd}, true
	}
	if r >= 32 {
		return Char(r), true
	}
	return KeyEvent{}, false
}

// escapeSequences maps the tail of an ESC-prefixed byte sequence to the
// key it encodes. Both the common CSI forms and the application-mode
// variants of Home/End are covered.
var escapeSequences = map[string]KeyEvent{
	"[A":  {Key: KeyUp},
	"[B":  {Key: KeyDown},
	"[C":  {Key: KeyRight},
	"[D":  {Key: KeyLeft},
	"[H":  {Key: KeyHome},
	"[F":  {Key: KeyEnd},
	"[Z":  {Key: KeyTab},
	"OH":  {Key: KeyHome},
	"OF":  {Key: KeyEnd},
	"[1~": {Key: KeyHome},
	"[3~": {Key: KeyDelete},
	"[4~": {Key: KeyEnd},
}

// decodeEscape decodes the remainder of an ESC-prefixed sequence, pulling
// runes from read only while buffered reports pending input. A lone ESC
// with no follow-up bytes is the Esc key itself, which cancels. Sequences
// without a binding, including modifier variants like ESC [1;5C for
// Ctrl+Right, are consumed through their final byte before being dropped
// so their tails never resurface as typed input.
func decodeEscape(buffered func() bool, read func() (rune, error)) (KeyEvent, bool) {
	if !buffered() {
		return KeyEvent{Key: KeyCancel}, true
	}

	seq := make([]rune, 0, 8)
	for buffered() {
		r, err := read()
		if err != nil {
			return KeyEvent{}, false
		}
		seq = append(seq, r)

		if ev, ok := escapeSequences[string(seq)]; ok {
			return ev, true
		}
		// Past the introducer, a byte in the CSI final range ends the
		// sequence; reaching one means it carries no binding.
		if len(seq) >= 2 && r >= 0x40 && r <= 0x7e {
			return KeyEvent{}, false
		}
	}
	return KeyEvent{}, false
}

// Close releases the tty. Safe to call more than once.
func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	if t.tty != nil {
		err := t.tty.Close()
		t.closed = true
		return err
	}
	return nil
}
