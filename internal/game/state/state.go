// Package state tracks the mutable per-room world state: item locations and
// container openness. Static definitions live in the content package; this
// package records only what has diverged from them.
package state

import (
	"context"
	"sync"

	"github.com/tmcfarlane/foyer/internal/content"
)

// StorageState is the mutable state of one storage container.
type StorageState struct {
	IsOpen bool
	Items  []string
}

// FurnitureState is the mutable state of one furniture entity, including any
// nested storage.
type FurnitureState struct {
	IsOpen  bool
	Items   []string
	storage map[string]*StorageState
	// storageOrder preserves the declaration order of storage entries for
	// deterministic scans.
	storageOrder []string
}

// RoomState is the mutable record of a single visited room. It is created
// once, on first visit, and lives for the rest of the process.
// All methods are safe for concurrent use.
type RoomState struct {
	mu sync.RWMutex

	floorItems []string
	wallItems  map[content.Direction][]string
	wallOrder  []content.Direction

	furniture      map[string]*FurnitureState
	furnitureOrder []string
}

// FurnitureLoader fetches furniture documents during state construction.
// content.Store satisfies it.
type FurnitureLoader interface {
	Furniture(ctx context.Context, roomID, furnitureID string) (*content.Furniture, error)
}

// Store maps room IDs to their mutable state. States are lazily initialized
// on first visit and never discarded.
type Store struct {
	mu    sync.Mutex
	rooms map[string]*RoomState
}

// NewStore creates an empty state Store.
func NewStore() *Store {
	return &Store{
		rooms: make(map[string]*RoomState),
	}
}

// Ensure returns the state for the given room, constructing it from the room
// document on first visit. Floor and wall item lists are copied from the
// document; each furniture document is fetched to seed furniture and nested
// storage state. A furniture document that fails to load is skipped rather
// than failing the whole room.
//
// Precondition: room must be the document for roomID.
// Postcondition: Returns the same *RoomState for every call with the same
// roomID; documents are only fetched on the first call.
func (s *Store) Ensure(ctx context.Context, roomID string, room *content.Room, loader FurnitureLoader) *RoomState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rs, ok := s.rooms[roomID]; ok {
		return rs
	}

	rs := &RoomState{
		wallItems: make(map[content.Direction][]string, len(room.Walls)),
		furniture: make(map[string]*FurnitureState, len(room.Furniture)),
	}
	if room.Floor != nil {
		rs.floorItems = append(rs.floorItems, room.Floor.Items...)
	}
	for _, wall := range room.Walls {
		rs.wallOrder = append(rs.wallOrder, wall.Direction)
		rs.wallItems[wall.Direction] = append([]string(nil), wall.Items...)
	}

	for _, furnID := range room.Furniture {
		furn, err := loader.Furniture(ctx, roomID, furnID)
		if err != nil {
			// A missing or malformed furniture document must not prevent the
			// rest of the room from initializing.
			continue
		}
		fs := &FurnitureState{
			IsOpen: furn.IsOpen,
			Items:  append([]string(nil), furn.Items...),
		}
		if len(furn.Storage) > 0 {
			fs.storage = make(map[string]*StorageState, len(furn.Storage))
			for _, st := range furn.Storage {
				fs.storage[st.ID] = &StorageState{
					IsOpen: st.IsOpen,
					Items:  append([]string(nil), st.Items...),
				}
				fs.storageOrder = append(fs.storageOrder, st.ID)
			}
		}
		rs.furniture[furnID] = fs
		rs.furnitureOrder = append(rs.furnitureOrder, furnID)
	}

	s.rooms[roomID] = rs
	return rs
}

// Get returns the state for a room if it has been visited.
func (s *Store) Get(roomID string) (*RoomState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rs, ok := s.rooms[roomID]
	return rs, ok
}

// FloorItems returns a snapshot copy of the item IDs on the floor.
func (rs *RoomState) FloorItems() []string {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return append([]string(nil), rs.floorItems...)
}

// WallItems returns a snapshot copy of the item IDs on the given wall.
func (rs *RoomState) WallItems(dir content.Direction) []string {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return append([]string(nil), rs.wallItems[dir]...)
}

// StorageOpen reports whether the given storage of the given furniture is
// currently open. Unknown IDs report false.
func (rs *RoomState) StorageOpen(furnitureID, storageID string) bool {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	st := rs.storageState(furnitureID, storageID)
	return st != nil && st.IsOpen
}

// StorageItems returns a snapshot copy of the item IDs inside the given
// storage, regardless of openness.
func (rs *RoomState) StorageItems(furnitureID, storageID string) []string {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	st := rs.storageState(furnitureID, storageID)
	if st == nil {
		return nil
	}
	return append([]string(nil), st.Items...)
}

// FindStorageParent locates the furniture whose storage mapping contains the
// given storage ID, scanning furniture in room declaration order.
//
// Postcondition: Returns (furnitureID, true) if found, or ("", false).
func (rs *RoomState) FindStorageParent(storageID string) (string, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	for _, furnID := range rs.furnitureOrder {
		if fs := rs.furniture[furnID]; fs != nil {
			if _, ok := fs.storage[storageID]; ok {
				return furnID, true
			}
		}
	}
	return "", false
}

// OpenStorage transitions the given storage to open.
//
// Postcondition: Returns the storage's current item IDs and alreadyOpen=true
// if it was open before the call; ok=false if the storage does not exist.
// Openness only ever transitions false→true; there is no close operation.
func (rs *RoomState) OpenStorage(furnitureID, storageID string) (items []string, alreadyOpen, ok bool) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	st := rs.storageState(furnitureID, storageID)
	if st == nil {
		return nil, false, false
	}
	if st.IsOpen {
		return append([]string(nil), st.Items...), true, true
	}
	st.IsOpen = true
	return append([]string(nil), st.Items...), false, true
}

// storageState returns the storage state or nil. Callers hold rs.mu.
func (rs *RoomState) storageState(furnitureID, storageID string) *StorageState {
	fs, ok := rs.furniture[furnitureID]
	if !ok {
		return nil
	}
	return fs.storage[storageID]
}
