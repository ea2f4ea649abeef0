// Package console provides a local stdin/stdout frontend for the adventure
// engine, with optional spoken narration.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/tmcfarlane/foyer/internal/game/engine"
	"github.com/tmcfarlane/foyer/internal/narration"
)

// Runner reads commands from an input stream and writes game output to an
// output stream, one command at a time.
type Runner struct {
	engine    *engine.Engine
	startRoom string
	in        io.Reader
	out       io.Writer
	speaker   *narration.Speaker // optional
	logger    *zap.Logger
}

// NewRunner creates a console Runner. speaker may be nil to disable
// narration.
//
// Precondition: eng, in, out, and logger must be non-nil.
func NewRunner(eng *engine.Engine, startRoom string, in io.Reader, out io.Writer, speaker *narration.Speaker, logger *zap.Logger) *Runner {
	return &Runner{
		engine:    eng,
		startRoom: startRoom,
		in:        in,
		out:       out,
		speaker:   speaker,
		logger:    logger,
	}
}

// Run starts a session and loops until quit, end of input, or context
// cancellation. A new command interrupts any narration still speaking.
func (r *Runner) Run(ctx context.Context) error {
	var printer engine.Printer = writerPrinter{r.out}
	if r.speaker != nil {
		printer = narration.NewNarratingPrinter(printer, r.speaker)
	}

	sess := engine.NewSession(printer)
	r.logger.Info("console session started", zap.String("session", sess.ID))

	r.engine.Start(ctx, sess, r.startRoom)

	scanner := bufio.NewScanner(r.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		if r.speaker != nil {
			r.speaker.Interrupt()
		}
		if r.engine.HandleCommand(ctx, sess, scanner.Text()) {
			return nil
		}
	}
}

// writerPrinter renders every style as a plain line; the terminal already
// shows what the player typed.
type writerPrinter struct {
	w io.Writer
}

func (p writerPrinter) Print(text string, _ engine.Style) {
	fmt.Fprintln(p.w, text)
}
