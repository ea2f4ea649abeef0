package state

import "github.com/tmcfarlane/foyer/internal/content"

// Removable is a container items can be taken out of. The take policy is an
// ordered scan over removables: floor first, then walls in declaration order,
// then open storage in declaration order.
type Removable interface {
	// Contains reports whether the container currently holds the item.
	Contains(itemID string) bool
	// Remove removes the item if present and reports whether it did.
	Remove(itemID string) bool
}

// Removables returns the room's removable containers in take-scan order.
// Closed storage is excluded; its contents cannot be removed.
//
// Postcondition: Returns a freshly built slice; ordering is deterministic for
// a given room state.
func (rs *RoomState) Removables() []Removable {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	removables := []Removable{floorRemovable{rs}}
	for _, dir := range rs.wallOrder {
		removables = append(removables, wallRemovable{rs, dir})
	}
	for _, furnID := range rs.furnitureOrder {
		fs := rs.furniture[furnID]
		if fs == nil {
			continue
		}
		for _, storageID := range fs.storageOrder {
			if st := fs.storage[storageID]; st != nil && st.IsOpen {
				removables = append(removables, storageRemovable{rs, furnID, storageID})
			}
		}
	}
	return removables
}

type floorRemovable struct {
	rs *RoomState
}

func (f floorRemovable) Contains(itemID string) bool {
	f.rs.mu.RLock()
	defer f.rs.mu.RUnlock()
	return indexOf(f.rs.floorItems, itemID) >= 0
}

func (f floorRemovable) Remove(itemID string) bool {
	f.rs.mu.Lock()
	defer f.rs.mu.Unlock()
	i := indexOf(f.rs.floorItems, itemID)
	if i < 0 {
		return false
	}
	f.rs.floorItems = append(f.rs.floorItems[:i], f.rs.floorItems[i+1:]...)
	return true
}

type wallRemovable struct {
	rs  *RoomState
	dir content.Direction
}

func (w wallRemovable) Contains(itemID string) bool {
	w.rs.mu.RLock()
	defer w.rs.mu.RUnlock()
	return indexOf(w.rs.wallItems[w.dir], itemID) >= 0
}

func (w wallRemovable) Remove(itemID string) bool {
	w.rs.mu.Lock()
	defer w.rs.mu.Unlock()
	items := w.rs.wallItems[w.dir]
	i := indexOf(items, itemID)
	if i < 0 {
		return false
	}
	w.rs.wallItems[w.dir] = append(items[:i], items[i+1:]...)
	return true
}

type storageRemovable struct {
	rs          *RoomState
	furnitureID string
	storageID   string
}

func (s storageRemovable) Contains(itemID string) bool {
	s.rs.mu.RLock()
	defer s.rs.mu.RUnlock()
	st := s.rs.storageState(s.furnitureID, s.storageID)
	return st != nil && st.IsOpen && indexOf(st.Items, itemID) >= 0
}

func (s storageRemovable) Remove(itemID string) bool {
	s.rs.mu.Lock()
	defer s.rs.mu.Unlock()
	st := s.rs.storageState(s.furnitureID, s.storageID)
	if st == nil || !st.IsOpen {
		return false
	}
	i := indexOf(st.Items, itemID)
	if i < 0 {
		return false
	}
	st.Items = append(st.Items[:i], st.Items[i+1:]...)
	return true
}

func indexOf(items []string, itemID string) int {
	for i, id := range items {
		if id == itemID {
			return i
		}
	}
	return -1
}
