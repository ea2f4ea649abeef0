package engine

// Style tags a printed line so sinks can treat player-echoed input and
// separators differently from game output (narration skips both).
type Style string

// The printed line styles.
const (
	StyleGameOutput  Style = "game-output"
	StylePlayerInput Style = "player-input"
	StyleSeparator   Style = "separator"
)

// Printer is the presentation sink: a fire-and-forget text line renderer.
// Implementations must be safe for use from a single session's command flow.
type Printer interface {
	Print(text string, style Style)
}

// PrinterFunc adapts a function to the Printer interface.
type PrinterFunc func(text string, style Style)

// Print calls the underlying function.
func (f PrinterFunc) Print(text string, style Style) { f(text, style) }
