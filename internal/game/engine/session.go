package engine

import (
	"github.com/google/uuid"

	"github.com/tmcfarlane/foyer/internal/content"
	"github.com/tmcfarlane/foyer/internal/game/state"
)

// Session is one player's context: current room, inventory, and output sink.
// It is owned by the caller and passed to every engine call; nothing about a
// player is process-global, so multiple sessions can share one engine.
//
// A session expects one command in flight at a time. Frontends must not
// submit a new command before the previous HandleCommand call returns.
type Session struct {
	// ID is the unique session identifier.
	ID string
	// RoomID is the ID of the room the player currently occupies.
	RoomID string
	// Room is the static document for the current room.
	Room *content.Room
	// Inventory is the player's carried items.
	Inventory *state.Inventory
	// Out is the presentation sink for this player.
	Out Printer
}

// NewSession creates a Session with an empty inventory and no current room.
//
// Precondition: out must be non-nil.
func NewSession(out Printer) *Session {
	return &Session{
		ID:        uuid.New().String(),
		Inventory: state.NewInventory(),
		Out:       out,
	}
}

func (s *Session) print(text string) {
	s.Out.Print(text, StyleGameOutput)
}
