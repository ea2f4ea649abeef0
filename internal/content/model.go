// Package content provides the static entity document store: rooms, walls,
// furniture, storage, and items, addressed by a room-scoped path convention.
package content

import "fmt"

// Direction identifies which wall of a room an entity belongs to, or which
// way an exit leads.
type Direction string

// The four cardinal wall directions.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Directions lists all valid wall directions in a fixed order.
var Directions = []Direction{North, South, East, West}

// IsValid reports whether d is one of the four cardinal directions.
func (d Direction) IsValid() bool {
	for _, dir := range Directions {
		if d == dir {
			return true
		}
	}
	return false
}

// Exit represents a passage from one room to another.
type Exit struct {
	// Direction is the compass direction of the exit.
	Direction Direction `json:"direction" yaml:"direction"`
	// Destination is the ID of the room the exit leads to.
	Destination string `json:"destination" yaml:"destination"`
}

// Wall describes one wall of a room and the items mounted on it.
type Wall struct {
	// Direction is the cardinal direction of the wall.
	Direction Direction `json:"direction" yaml:"direction"`
	// Description is shown when the wall is examined.
	Description string `json:"description" yaml:"description"`
	// Items lists the IDs of items physically on this wall.
	Items []string `json:"items" yaml:"items"`
}

// Floor describes a room's floor and the items initially lying on it.
type Floor struct {
	// Description is shown when the floor is examined.
	Description string `json:"description" yaml:"description"`
	// Items lists the IDs of items initially on the floor.
	Items []string `json:"items" yaml:"items"`
}

// Room is the static definition of a location. Immutable once loaded;
// everything that changes at runtime lives in the state package.
type Room struct {
	// ID uniquely identifies this room.
	ID string `json:"id" yaml:"id"`
	// Name is the short display name shown when entering the room.
	Name string `json:"name" yaml:"name"`
	// Description is the longer room description.
	Description string `json:"description" yaml:"description"`
	// Furniture lists the IDs of furniture entities in this room.
	Furniture []string `json:"furniture" yaml:"furniture"`
	// Walls describes the room's walls; absent walls cannot be examined.
	Walls []Wall `json:"walls" yaml:"walls"`
	// Floor describes the room's floor; nil means the floor is unexaminable
	// and starts with no items.
	Floor *Floor `json:"floor" yaml:"floor"`
	// Exits lists all passages leading out of this room.
	Exits []Exit `json:"exits" yaml:"exits"`
}

// ExitForDirection returns the exit in the given direction, if one exists.
func (r *Room) ExitForDirection(dir Direction) (Exit, bool) {
	for _, e := range r.Exits {
		if e.Direction == dir {
			return e, true
		}
	}
	return Exit{}, false
}

// WallForDirection returns the wall facing the given direction, if one exists.
func (r *Room) WallForDirection(dir Direction) (Wall, bool) {
	for _, w := range r.Walls {
		if w.Direction == dir {
			return w, true
		}
	}
	return Wall{}, false
}

// Validate checks room invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (r *Room) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("room ID must not be empty")
	}
	if r.Name == "" {
		return fmt.Errorf("room %q: name must not be empty", r.ID)
	}
	if r.Description == "" {
		return fmt.Errorf("room %q: description must not be empty", r.ID)
	}
	seen := make(map[Direction]bool, len(r.Walls))
	for _, w := range r.Walls {
		if !w.Direction.IsValid() {
			return fmt.Errorf("room %q: wall direction %q is not a cardinal direction", r.ID, w.Direction)
		}
		if seen[w.Direction] {
			return fmt.Errorf("room %q: duplicate wall direction %q", r.ID, w.Direction)
		}
		seen[w.Direction] = true
	}
	for _, e := range r.Exits {
		if e.Destination == "" {
			return fmt.Errorf("room %q: exit %q has empty destination", r.ID, e.Direction)
		}
	}
	return nil
}

// Storage is an openable container nested inside a furniture entity, such as
// a drawer. Its ID is unique within the parent furniture only.
type Storage struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	// CanOpen gates the open verb. Absent means the storage cannot be opened.
	CanOpen bool `json:"canOpen" yaml:"canOpen"`
	// IsOpen is the initial openness; runtime openness lives in state.
	IsOpen bool `json:"isOpen" yaml:"isOpen"`
	// Items lists the IDs of items initially inside.
	Items []string `json:"items" yaml:"items"`
}

// Furniture is a static, room-scoped entity the player can examine, which may
// itself contain items and storage sub-entities.
type Furniture struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	IsOpen      bool      `json:"isOpen" yaml:"isOpen"`
	Items       []string  `json:"items" yaml:"items"`
	Storage     []Storage `json:"storage" yaml:"storage"`
}

// Item is a static, room-scoped entity the player may be able to pick up.
type Item struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	// CanTake gates the take verb. Only an explicit false refuses the take;
	// absent means takeable.
	CanTake *bool `json:"canTake" yaml:"canTake"`
}

// Takeable reports whether the item may be picked up.
func (i *Item) Takeable() bool {
	return i.CanTake == nil || *i.CanTake
}
