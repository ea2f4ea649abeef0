package engine

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tmcfarlane/foyer/internal/content"
	"github.com/tmcfarlane/foyer/internal/game/resolve"
)

// disambiguate prints the prompt listing every match. It never mutates state.
func (e *Engine) disambiguate(sess *Session, matches []resolve.Match) {
	labels := make([]string, 0, len(matches))
	for _, m := range matches {
		labels = append(labels, m.Label())
	}
	sess.print("Which do you mean? " + strings.Join(labels, " or "))
}

// examine prints the description of the resolved object. Examining a closed
// storage is allowed; only its contents are hidden.
func (e *Engine) examine(ctx context.Context, sess *Session, target string) {
	if sess.Room == nil {
		sess.print(msgRoomLoadError)
		return
	}
	matches := e.resolver.FindObjectsByName(ctx, target, sess.Room, e.roomState(ctx, sess))

	switch len(matches) {
	case 0:
		sess.print(msgNotSeen)
	case 1:
		sess.print(matches[0].Description)
	default:
		e.disambiguate(sess, matches)
	}
}

// open transitions a storage container to open and reports its contents.
func (e *Engine) open(ctx context.Context, sess *Session, target string) {
	if sess.Room == nil {
		sess.print(msgRoomLoadError)
		return
	}
	rs := e.roomState(ctx, sess)
	matches := e.resolver.FindObjectsByName(ctx, target, sess.Room, rs)

	if len(matches) == 0 {
		sess.print(msgNotSeen)
		return
	}
	if len(matches) > 1 {
		e.disambiguate(sess, matches)
		return
	}

	m := matches[0]
	if m.Kind != resolve.KindStorage {
		sess.print("You can't open that.")
		return
	}

	furnitureID, ok := rs.FindStorageParent(m.ID)
	if !ok {
		sess.print("You can't open that.")
		return
	}
	if !m.CanOpen {
		sess.print("You can't open that.")
		return
	}

	items, alreadyOpen, ok := rs.OpenStorage(furnitureID, m.ID)
	if !ok {
		sess.print("You can't open that.")
		return
	}
	if alreadyOpen {
		sess.print("It's already open.")
		return
	}

	sess.print("You open the " + m.Name + ".")
	if len(items) > 0 {
		names := content.ItemNames(ctx, e.store, sess.RoomID, items)
		sess.print("Inside you see: " + strings.Join(names, ", "))
	} else {
		sess.print("It's empty.")
	}
}

// take moves an item from the first removable container holding it into the
// player's inventory. The scan order is fixed: floor, then walls, then open
// storage. An item the resolver cannot see (inside closed storage) never
// reaches this handler.
func (e *Engine) take(ctx context.Context, sess *Session, target string) {
	if sess.Room == nil {
		sess.print(msgRoomLoadError)
		return
	}
	rs := e.roomState(ctx, sess)
	matches := e.resolver.FindObjectsByName(ctx, target, sess.Room, rs)

	if len(matches) == 0 {
		sess.print(msgNotSeen)
		return
	}
	if len(matches) > 1 {
		e.disambiguate(sess, matches)
		return
	}

	m := matches[0]
	if m.Kind != resolve.KindItem {
		sess.print("You can't take that.")
		return
	}

	// Refetch the item document for the capability check.
	item, err := e.store.Item(ctx, sess.RoomID, m.ID)
	if err != nil {
		e.logger.Warn("take capability check failed",
			zap.String("session", sess.ID),
			zap.String("item", m.ID),
			zap.Error(err),
		)
		sess.print("You can't take that.")
		return
	}
	if !item.Takeable() {
		sess.print("You can't take that.")
		return
	}

	for _, container := range rs.Removables() {
		if container.Remove(m.ID) {
			sess.Inventory.Add(m.ID)
			sess.print("You take the " + item.Name + ".")
			e.renderRoom(ctx, sess)
			return
		}
	}
	sess.print("You can't take that right now.")
}

// use is an extension point: nothing is usable yet, but the verb never
// silently no-ops.
func (e *Engine) use(sess *Session, target string) {
	if strings.TrimSpace(target) == "" {
		sess.print("Use what?")
		return
	}
	sess.print("You can't think of a way to use that.")
}
