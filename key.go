package ask

// Key identifies a normalized key press, independent of the terminal
// encoding that produced it. Printable input arrives as KeyChar with the
// rune in KeyEvent.Rune; everything else is a dedicated kind.
type Key int

// Key kinds understood by all widgets.
const (
	KeyChar Key = iota
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyTab
	KeySubmit
	KeyCancel
)

// KeyEvent is a single normalized user input. Event sources produce one
// KeyEvent per user action; widgets consume them in arrival order.
type KeyEvent struct {
	Key  Key
	Rune rune // payload for KeyChar, zero otherwise
}

// Char builds a printable-character event.
func Char(r rune) KeyEvent {
	return KeyEvent{Key: KeyChar, Rune: r}
}

// String returns a human-readable name for the key kind.
func (k Key) String() string {
	switch k {
	case KeyChar:
		return "char"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyTab:
		return "tab"
	case KeySubmit:
		return "submit"
	case KeyCancel:
		return "cancel"
	default:
		return "unknown"
	}
}
