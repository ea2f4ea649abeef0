// Package resolve searches the heterogeneous visible-object space of a room
// (floor items, furniture, storage contents, wall items, and floor/wall
// pseudo-entities) for entities matching a free-text name.
package resolve

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tmcfarlane/foyer/internal/content"
	"github.com/tmcfarlane/foyer/internal/game/state"
)

// Kind tags the entity variant a Match refers to.
type Kind string

// The five resolvable entity kinds.
const (
	KindItem      Kind = "item"
	KindFurniture Kind = "furniture"
	KindStorage   Kind = "storage"
	KindFloor     Kind = "floor"
	KindWall      Kind = "wall"
)

// Match is one resolved candidate. Exactly the fields valid for its Kind are
// populated: Parent only for storage and wall items, CanOpen only for storage.
type Match struct {
	// Kind is the entity variant tag.
	Kind Kind
	// ID identifies the entity: item ID, furniture ID, storage ID (unique
	// within its parent furniture), "floor", or a wall direction.
	ID string
	// Name is the display name.
	Name string
	// Description is the static description shown by examine.
	Description string
	// Parent is an optional human-readable owner label used in
	// disambiguation prompts ("Desk", "on the north wall").
	Parent string
	// CanOpen is the open capability; meaningful for storage matches only.
	CanOpen bool
}

// Label renders the match for a disambiguation prompt.
func (m Match) Label() string {
	if m.Parent != "" {
		return m.Parent + " " + m.Name
	}
	return m.Name
}

// Resolver ranks a room's visible entities against a query. Document fetch
// failures skip the affected candidate rather than aborting the resolution.
type Resolver struct {
	store  content.Store
	logger *zap.Logger
}

// NewResolver creates a Resolver over the given document store.
//
// Precondition: store and logger must be non-nil.
func NewResolver(store content.Store, logger *zap.Logger) *Resolver {
	return &Resolver{
		store:  store,
		logger: logger,
	}
}

// accumulator gathers exact and partial matches separately so that any exact
// match suppresses all partials.
type accumulator struct {
	query   string
	exact   []Match
	partial []Match
}

// add ranks a candidate against the query: exact name equality beats
// substring containment beats token-subset containment.
func (a *accumulator) add(m Match) {
	name := strings.ToLower(m.Name)
	switch {
	case name == a.query:
		a.exact = append(a.exact, m)
	case strings.Contains(name, a.query):
		a.partial = append(a.partial, m)
	case containsAllTokens(name, a.query):
		a.partial = append(a.partial, m)
	}
}

// containsAllTokens reports whether every whitespace-separated token of query
// appears in name, in any order.
func containsAllTokens(name, query string) bool {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return false
	}
	for _, tok := range tokens {
		if !strings.Contains(name, tok) {
			return false
		}
	}
	return true
}

// FindObjectsByName enumerates every visible entity in the room and returns
// the candidates matching name. Exact matches, if any exist, are returned
// alone; otherwise partial matches. Both retain the fixed scan order: floor
// items, furniture and their storage, open-storage contents, wall items, then
// floor and wall pseudo-entities. An empty result means nothing matches; it
// is not an error.
//
// Precondition: rs must be the ensured state for room.
func (r *Resolver) FindObjectsByName(ctx context.Context, name string, room *content.Room, rs *state.RoomState) []Match {
	query := strings.ToLower(strings.TrimSpace(name))
	acc := &accumulator{query: query}

	r.scanFloorItems(ctx, acc, room, rs)
	r.scanFurniture(ctx, acc, room)
	r.scanStorageContents(ctx, acc, room, rs)
	r.scanWallItems(ctx, acc, room, rs)
	r.scanPseudoEntities(acc, room)

	if len(acc.exact) > 0 {
		return acc.exact
	}
	return acc.partial
}

func (r *Resolver) scanFloorItems(ctx context.Context, acc *accumulator, room *content.Room, rs *state.RoomState) {
	for _, itemID := range rs.FloorItems() {
		item, err := r.store.Item(ctx, room.ID, itemID)
		if err != nil {
			r.skipped(room.ID, "item", itemID, err)
			continue
		}
		acc.add(Match{
			Kind:        KindItem,
			ID:          itemID,
			Name:        item.Name,
			Description: item.Description,
		})
	}
}

func (r *Resolver) scanFurniture(ctx context.Context, acc *accumulator, room *content.Room) {
	for _, furnID := range room.Furniture {
		furn, err := r.store.Furniture(ctx, room.ID, furnID)
		if err != nil {
			r.skipped(room.ID, "furniture", furnID, err)
			continue
		}
		acc.add(Match{
			Kind:        KindFurniture,
			ID:          furnID,
			Name:        furn.Name,
			Description: furn.Description,
		})
		for _, st := range furn.Storage {
			acc.add(Match{
				Kind:        KindStorage,
				ID:          st.ID,
				Name:        st.Name,
				Description: st.Description,
				Parent:      furn.Name,
				CanOpen:     st.CanOpen,
			})
		}
	}
}

// scanStorageContents surfaces items inside storage whose openness flag is
// true. Closed storage hides its contents from every verb.
func (r *Resolver) scanStorageContents(ctx context.Context, acc *accumulator, room *content.Room, rs *state.RoomState) {
	for _, furnID := range room.Furniture {
		furn, err := r.store.Furniture(ctx, room.ID, furnID)
		if err != nil {
			continue
		}
		for _, st := range furn.Storage {
			if !rs.StorageOpen(furnID, st.ID) {
				continue
			}
			for _, itemID := range rs.StorageItems(furnID, st.ID) {
				item, err := r.store.Item(ctx, room.ID, itemID)
				if err != nil {
					r.skipped(room.ID, "item", itemID, err)
					continue
				}
				acc.add(Match{
					Kind:        KindItem,
					ID:          itemID,
					Name:        item.Name,
					Description: item.Description,
					Parent:      fmt.Sprintf("in the %s", st.Name),
				})
			}
		}
	}
}

func (r *Resolver) scanWallItems(ctx context.Context, acc *accumulator, room *content.Room, rs *state.RoomState) {
	for _, wall := range room.Walls {
		for _, itemID := range rs.WallItems(wall.Direction) {
			item, err := r.store.Item(ctx, room.ID, itemID)
			if err != nil {
				r.skipped(room.ID, "item", itemID, err)
				continue
			}
			acc.add(Match{
				Kind:        KindItem,
				ID:          itemID,
				Name:        item.Name,
				Description: item.Description,
				Parent:      fmt.Sprintf("on the %s wall", wall.Direction),
			})
		}
	}
}

// scanPseudoEntities matches the floor itself and walls by direction. The
// floor answers to "floor" and "the floor"; a wall answers to "wall",
// "walls", its bare direction, or "<direction> wall".
func (r *Resolver) scanPseudoEntities(acc *accumulator, room *content.Room) {
	if (acc.query == "floor" || acc.query == "the floor") && room.Floor != nil {
		acc.exact = append(acc.exact, Match{
			Kind:        KindFloor,
			ID:          "floor",
			Name:        "Floor",
			Description: room.Floor.Description,
		})
	}

	switch {
	case acc.query == "wall" || acc.query == "walls":
		for _, wall := range room.Walls {
			acc.partial = append(acc.partial, wallMatch(wall))
		}
	case content.Direction(acc.query).IsValid():
		if wall, ok := room.WallForDirection(content.Direction(acc.query)); ok {
			acc.add(wallMatch(wall))
		}
	default:
		for _, dir := range content.Directions {
			if acc.query != string(dir)+" wall" {
				continue
			}
			if wall, ok := room.WallForDirection(dir); ok {
				acc.add(wallMatch(wall))
			}
		}
	}
}

func wallMatch(wall content.Wall) Match {
	dir := string(wall.Direction)
	return Match{
		Kind:        KindWall,
		ID:          dir,
		Name:        strings.ToUpper(dir[:1]) + dir[1:] + " Wall",
		Description: wall.Description,
	}
}

func (r *Resolver) skipped(roomID, kind, id string, err error) {
	r.logger.Debug("skipping unresolvable entity",
		zap.String("room", roomID),
		zap.String("kind", kind),
		zap.String("id", id),
		zap.Error(err),
	)
}
