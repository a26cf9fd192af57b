package ask

import (
	"fmt"
	"strings"
)

// Theme maps the semantic span styles to colors. Widgets never see a
// Theme; it is applied when a frame is painted, so swapping themes never
// changes widget behavior.
type Theme struct {
	Name        string `json:"name"`
	Prompt      Color  `json:"prompt"`
	Message     Color  `json:"message"`
	Answer      Color  `json:"answer"`
	Placeholder Color  `json:"placeholder"`
	Error       Color  `json:"error"`
	Option      Color  `json:"option"`
	Highlight   Color  `json:"highlight"`
	Marker      Color  `json:"marker"`
	Muted       Color  `json:"muted"`
}

// Color represents an RGB color with optional formatting.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// ThemeDefault is the default theme with a green prompt mark and white text
var ThemeDefault = &Theme{
	Name:        "default",
	Prompt:      Color{R: 0, G: 255, B: 0, Bold: true},
	Message:     Color{R: 255, G: 255, B: 255, Bold: true},
	Answer:      Color{R: 102, G: 217, B: 239, Bold: false},
	Placeholder: Color{R: 128, G: 128, B: 128, Bold: false},
	Error:       Color{R: 255, G: 85, B: 85, Bold: false},
	Option:      Color{R: 200, G: 200, B: 200, Bold: false},
	Highlight:   Color{R: 0, G: 255, B: 255, Bold: true},
	Marker:      Color{R: 0, G: 255, B: 0, Bold: false},
	Muted:       Color{R: 128, G: 128, B: 128, Bold: false},
}

// ThemeDark is a dark theme based on the Dracula palette
var ThemeDark = &Theme{
	Name:        "dark",
	Prompt:      Color{R: 255, G: 121, B: 198, Bold: true},
	Message:     Color{R: 248, G: 248, B: 242, Bold: true},
	Answer:      Color{R: 139, G: 233, B: 253, Bold: false},
	Placeholder: Color{R: 98, G: 114, B: 164, Bold: false},
	Error:       Color{R: 255, G: 85, B: 85, Bold: false},
	Option:      Color{R: 248, G: 248, B: 242, Bold: false},
	Highlight:   Color{R: 80, G: 250, B: 123, Bold: true},
	Marker:      Color{R: 241, G: 250, B: 140, Bold: false},
	Muted:       Color{R: 98, G: 114, B: 164, Bold: false},
}

// ThemeLight is a light theme with blue accents and dark gray text
var ThemeLight = &Theme{
	Name:        "light",
	Prompt:      Color{R: 0, G: 119, B: 187, Bold: true},
	Message:     Color{R: 36, G: 41, B: 46, Bold: true},
	Answer:      Color{R: 0, G: 92, B: 197, Bold: false},
	Placeholder: Color{R: 149, G: 157, B: 165, Bold: false},
	Error:       Color{R: 215, G: 58, B: 73, Bold: false},
	Option:      Color{R: 88, G: 96, B: 105, Bold: false},
	Highlight:   Color{R: 40, G: 167, B: 69, Bold: true},
	Marker:      Color{R: 227, G: 98, B: 9, Bold: false},
	Muted:       Color{R: 149, G: 157, B: 165, Bold: false},
}

// ThemeAccessible is a colorblind-safe theme with high contrast
var ThemeAccessible = &Theme{
	Name:        "accessible",
	Prompt:      Color{R: 0, G: 114, B: 178, Bold: true},
	Message:     Color{R: 255, G: 255, B: 255, Bold: true},
	Answer:      Color{R: 86, G: 180, B: 233, Bold: false},
	Placeholder: Color{R: 204, G: 204, B: 204, Bold: false},
	Error:       Color{R: 213, G: 94, B: 0, Bold: true},
	Option:      Color{R: 255, G: 255, B: 255, Bold: false},
	Highlight:   Color{R: 240, G: 228, B: 66, Bold: true},
	Marker:      Color{R: 230, G: 159, B: 0, Bold: true},
	Muted:       Color{R: 204, G: 204, B: 204, Bold: false},
}

// Color returns the color configured for style s. Unknown styles fall
// back to the message color.
func (t *Theme) Color(s Style) Color {
	switch s {
	case StylePrompt:
		return t.Prompt
	case StyleMessage:
		return t.Message
	case StyleAnswer:
		return t.Answer
	case StylePlaceholder:
		return t.Placeholder
	case StyleError:
		return t.Error
	case StyleOption:
		return t.Option
	case StyleHighlight:
		return t.Highlight
	case StyleMarker:
		return t.Marker
	case StyleMuted:
		return t.Muted
	default:
		return t.Message
	}
}

// FormatLine renders one frame line as an ANSI-styled string.
func (t *Theme) FormatLine(l Line) string {
	var b strings.Builder
	for _, s := range l.Spans {
		if s.Text == "" {
			continue
		}
		b.WriteString(t.Color(s.Style).ToANSI())
		b.WriteString(s.Text)
		b.WriteString(Reset())
	}
	return b.String()
}

// FormatLines renders every frame line as an ANSI-styled string, one entry
// per line. Useful for backends that compose their own screen updates.
func (t *Theme) FormatLines(f Frame) []string {
	lines := make([]string, len(f.Lines))
	for i, l := range f.Lines {
		lines[i] = t.FormatLine(l)
	}
	return lines
}

// ToANSI converts a Color to an ANSI escape sequence.
func (c Color) ToANSI() string {
	var codes []string

	// Bold formatting comes first
	if c.Bold {
		codes = append(codes, "1")
	}

	// RGB color (true color support)
	codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))

	return fmt.Sprintf("\x1b[%sm", strings.Join(codes, ";"))
}

// Reset returns the ANSI reset sequence.
func Reset() string {
	return "\x1b[0m"
}
