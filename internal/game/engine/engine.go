// Package engine interprets player commands and executes them against the
// room state: examining, opening containers, taking items, and moving
// between rooms.
package engine

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/tmcfarlane/foyer/internal/content"
	"github.com/tmcfarlane/foyer/internal/game/command"
	"github.com/tmcfarlane/foyer/internal/game/resolve"
	"github.com/tmcfarlane/foyer/internal/game/state"
)

// Canned player-facing lines shared by several handlers.
const (
	msgNotUnderstood = "I didn't understand that command. For a list of commands, type 'commands'."
	msgNotSeen       = "You don't see that here."
	msgRoomLoadError = "Error loading room data."
)

// Engine executes player commands. One Engine serves any number of sessions;
// all per-player context travels in the Session.
type Engine struct {
	store    content.Store
	states   *state.Store
	resolver *resolve.Resolver
	registry *command.Registry
	logger   *zap.Logger
}

// New creates an Engine over the given document store and state store.
//
// Precondition: store, states, and logger must be non-nil.
func New(store content.Store, states *state.Store, logger *zap.Logger) *Engine {
	return &Engine{
		store:    store,
		states:   states,
		resolver: resolve.NewResolver(store, logger),
		registry: command.DefaultRegistry(),
		logger:   logger,
	}
}

// Start enters the session's first room and renders it.
//
// Postcondition: On success the session occupies roomID with its state
// ensured. On load failure a single error line is printed and the session is
// left without a room.
func (e *Engine) Start(ctx context.Context, sess *Session, roomID string) {
	e.enterRoom(ctx, sess, roomID)
}

// HandleCommand parses and dispatches one command line. It returns true when
// the session should end (the quit verb).
//
// Precondition: the previous HandleCommand call for this session has
// returned; commands never interleave within a session.
func (e *Engine) HandleCommand(ctx context.Context, sess *Session, line string) (quit bool) {
	parsed := command.Parse(line)
	if parsed.Verb == "" {
		return false
	}

	cmd, ok := e.registry.Resolve(parsed.Verb)
	if !ok {
		sess.print(msgNotUnderstood)
		return false
	}

	e.logger.Debug("dispatching command",
		zap.String("session", sess.ID),
		zap.String("verb", cmd.Name),
		zap.String("target", parsed.Target),
	)

	switch cmd.Handler {
	case command.HandlerExamine:
		e.examine(ctx, sess, parsed.Target)
	case command.HandlerOpen:
		e.open(ctx, sess, parsed.Target)
	case command.HandlerTake:
		e.take(ctx, sess, parsed.Target)
	case command.HandlerUse:
		e.use(sess, parsed.Target)
	case command.HandlerLook:
		e.renderRoom(ctx, sess)
	case command.HandlerMove:
		direction := parsed.Target
		if cmd.Name != "go" {
			direction = cmd.Name
		}
		e.move(ctx, sess, direction)
	case command.HandlerInventory:
		e.inventory(ctx, sess)
	case command.HandlerCommands:
		e.commands(sess)
	case command.HandlerQuit:
		sess.print("Goodbye.")
		return true
	default:
		sess.print(msgNotUnderstood)
	}
	return false
}

// enterRoom fetches the room document, ensures its mutable state, and
// renders it. A room that fails to load is reported as a single line and
// leaves all state unchanged.
func (e *Engine) enterRoom(ctx context.Context, sess *Session, roomID string) {
	room, err := e.store.Room(ctx, roomID)
	if err != nil {
		e.logger.Warn("room load failed",
			zap.String("session", sess.ID),
			zap.String("room", roomID),
			zap.Error(err),
		)
		sess.print(msgRoomLoadError)
		return
	}

	sess.RoomID = room.ID
	sess.Room = room
	e.states.Ensure(ctx, room.ID, room, e.store)
	e.renderRoom(ctx, sess)
}

// renderRoom prints the room header, description, visible furniture, floor
// items, and exits.
func (e *Engine) renderRoom(ctx context.Context, sess *Session) {
	if sess.Room == nil {
		sess.print(msgRoomLoadError)
		return
	}
	room := sess.Room

	sess.Out.Print("---", StyleSeparator)
	sess.print(room.Name)
	sess.print(room.Description)

	if len(room.Furniture) > 0 {
		names := content.FurnitureNames(ctx, e.store, room.ID, room.Furniture)
		sess.print("You see: " + strings.Join(names, ", "))
	}

	rs := e.roomState(ctx, sess)
	if floor := rs.FloorItems(); len(floor) > 0 {
		names := content.ItemNames(ctx, e.store, room.ID, floor)
		sess.print("On the floor: " + strings.Join(names, ", "))
	}

	if len(room.Exits) > 0 {
		dirs := make([]string, 0, len(room.Exits))
		for _, exit := range room.Exits {
			dirs = append(dirs, string(exit.Direction))
		}
		sess.print("Exits: " + strings.Join(dirs, ", "))
	}
}

// move follows a room exit in the given direction.
func (e *Engine) move(ctx context.Context, sess *Session, direction string) {
	if sess.Room == nil {
		sess.print(msgRoomLoadError)
		return
	}
	dir := content.Direction(strings.ToLower(strings.TrimSpace(direction)))
	if dir == "" {
		sess.print("Go where?")
		return
	}
	exit, ok := sess.Room.ExitForDirection(dir)
	if !ok {
		sess.print("You can't go that way.")
		return
	}
	e.enterRoom(ctx, sess, exit.Destination)
}

// inventory lists the carried items by display name.
func (e *Engine) inventory(ctx context.Context, sess *Session) {
	items := sess.Inventory.Items()
	if len(items) == 0 {
		sess.print("You aren't carrying anything.")
		return
	}
	names := content.ItemNames(ctx, e.store, sess.RoomID, items)
	sess.print("You are carrying: " + strings.Join(names, ", "))
}

// commands lists the available verbs grouped by category.
func (e *Engine) commands(sess *Session) {
	byCategory := e.registry.CommandsByCategory()
	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	for _, cat := range categories {
		cmds := byCategory[cat]
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
		names := make([]string, 0, len(cmds))
		for _, cmd := range cmds {
			names = append(names, cmd.Name)
		}
		sess.print(cat + ": " + strings.Join(names, ", "))
	}
}

// roomState returns the ensured state for the session's current room.
func (e *Engine) roomState(ctx context.Context, sess *Session) *state.RoomState {
	return e.states.Ensure(ctx, sess.RoomID, sess.Room, e.store)
}
