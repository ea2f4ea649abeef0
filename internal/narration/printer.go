package narration

import (
	"strings"

	"github.com/tmcfarlane/foyer/internal/game/engine"
)

// NarratingPrinter forwards every line to the wrapped sink and queues game
// output for speech. Player-echoed input, separators, and blank lines are
// printed but never narrated.
type NarratingPrinter struct {
	next    engine.Printer
	speaker *Speaker
}

// NewNarratingPrinter wraps a printer with narration.
//
// Precondition: next and speaker must be non-nil.
func NewNarratingPrinter(next engine.Printer, speaker *Speaker) *NarratingPrinter {
	return &NarratingPrinter{
		next:    next,
		speaker: speaker,
	}
}

// Print forwards the line and, for non-blank game output, enqueues it for
// narration.
func (p *NarratingPrinter) Print(text string, style engine.Style) {
	p.next.Print(text, style)
	if style != engine.StyleGameOutput {
		return
	}
	if strings.TrimSpace(text) == "" {
		return
	}
	p.speaker.Speak(text)
}
