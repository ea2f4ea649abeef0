package state

import "sync"

// Inventory is the ordered list of item IDs the player carries. It is global
// to the player, not per room.
type Inventory struct {
	mu    sync.RWMutex
	items []string
}

// NewInventory creates an empty Inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add appends an item ID to the inventory.
func (inv *Inventory) Add(itemID string) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.items = append(inv.items, itemID)
}

// Contains reports whether the inventory holds the given item.
func (inv *Inventory) Contains(itemID string) bool {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return indexOf(inv.items, itemID) >= 0
}

// Items returns a snapshot copy of the carried item IDs in pickup order.
func (inv *Inventory) Items() []string {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return append([]string(nil), inv.items...)
}

// Len returns the number of carried items.
func (inv *Inventory) Len() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.items)
}
