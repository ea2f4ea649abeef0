package content

import (
	"context"
	"errors"
)

// ErrNotFound indicates a referenced document does not exist. It is a normal,
// non-exceptional outcome: callers handle it by skipping the entity.
var ErrNotFound = errors.New("content: document not found")

// Store provides read-only access to static entity documents. Every fetch is
// a suspension point and honors context cancellation.
type Store interface {
	// Room fetches the room document for the given room ID.
	Room(ctx context.Context, roomID string) (*Room, error)
	// Item fetches an item document scoped to the given room.
	Item(ctx context.Context, roomID, itemID string) (*Item, error)
	// Furniture fetches a furniture document scoped to the given room.
	Furniture(ctx context.Context, roomID, furnitureID string) (*Furniture, error)
}

// ItemNames resolves item IDs to display names, falling back to the raw ID
// when the document is missing or malformed.
//
// Postcondition: Returns one name per input ID, in input order.
func ItemNames(ctx context.Context, store Store, roomID string, itemIDs []string) []string {
	names := make([]string, 0, len(itemIDs))
	for _, id := range itemIDs {
		item, err := store.Item(ctx, roomID, id)
		if err != nil {
			names = append(names, id)
			continue
		}
		names = append(names, item.Name)
	}
	return names
}

// FurnitureNames resolves furniture IDs to display names, falling back to the
// raw ID when the document is missing or malformed.
//
// Postcondition: Returns one name per input ID, in input order.
func FurnitureNames(ctx context.Context, store Store, roomID string, furnitureIDs []string) []string {
	names := make([]string, 0, len(furnitureIDs))
	for _, id := range furnitureIDs {
		furn, err := store.Furniture(ctx, roomID, id)
		if err != nil {
			names = append(names, id)
			continue
		}
		names = append(names, furn.Name)
	}
	return names
}
