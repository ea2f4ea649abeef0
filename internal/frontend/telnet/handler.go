package telnet

import (
	"context"
	"errors"
	"io"
	"net"

	"go.uber.org/zap"

	"github.com/tmcfarlane/foyer/internal/game/engine"
)

// GameHandler runs one engine session per Telnet connection. Each connection
// gets its own Session (inventory, current room); the engine and its stores
// are shared, so players see each other's mutations to room state.
type GameHandler struct {
	engine    *engine.Engine
	startRoom string
	logger    *zap.Logger
}

// NewGameHandler creates a GameHandler starting sessions in the given room.
//
// Precondition: eng and logger must be non-nil; startRoom must be non-empty.
func NewGameHandler(eng *engine.Engine, startRoom string, logger *zap.Logger) *GameHandler {
	return &GameHandler{
		engine:    eng,
		startRoom: startRoom,
		logger:    logger,
	}
}

// HandleSession runs the command loop for one client: render the start room,
// then read a line, hand it to the engine, and repeat until quit, disconnect,
// or context cancellation. Commands never interleave within the session: the
// next read only happens after the engine call returns.
func (h *GameHandler) HandleSession(ctx context.Context, conn *Conn) error {
	sess := engine.NewSession(connPrinter{conn})

	h.logger.Info("session started",
		zap.String("session", sess.ID),
		zap.String("remote_addr", conn.RemoteAddr().String()),
	)

	h.engine.Start(ctx, sess, h.startRoom)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := conn.WritePrompt("> "); err != nil {
			return err
		}

		line, err := conn.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				_ = conn.WriteLine("Idle too long, goodbye.")
				return nil
			}
			return err
		}

		if h.engine.HandleCommand(ctx, sess, line) {
			return nil
		}
	}
}

// connPrinter adapts a Telnet connection to the engine's Printer interface.
// Player input is already echoed client-side, so every style renders as a
// plain line.
type connPrinter struct {
	conn *Conn
}

func (p connPrinter) Print(text string, _ engine.Style) {
	_ = p.conn.WriteLine(text)
}
