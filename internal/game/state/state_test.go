package state

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmcfarlane/foyer/internal/content"
)

// countingLoader serves furniture documents from a map and counts fetches.
type countingLoader struct {
	furniture map[string]*content.Furniture
	calls     int
}

func (l *countingLoader) Furniture(_ context.Context, _, furnitureID string) (*content.Furniture, error) {
	l.calls++
	furn, ok := l.furniture[furnitureID]
	if !ok {
		return nil, fmt.Errorf("furniture %q: %w", furnitureID, content.ErrNotFound)
	}
	return furn, nil
}

func testRoom() *content.Room {
	return &content.Room{
		ID:          "lobby",
		Name:        "Lobby",
		Description: "A dusty lobby.",
		Furniture:   []string{"desk", "shelf"},
		Walls: []content.Wall{
			{Direction: content.North, Description: "North wall.", Items: []string{"painting"}},
			{Direction: content.East, Description: "East wall."},
		},
		Floor: &content.Floor{Description: "Floorboards.", Items: []string{"key", "coin"}},
	}
}

func testLoader() *countingLoader {
	return &countingLoader{furniture: map[string]*content.Furniture{
		"desk": {
			Name:        "Desk",
			Description: "An oak desk.",
			Items:       []string{"lamp"},
			Storage: []content.Storage{
				{ID: "drawer", Name: "Drawer", Description: "A shallow drawer.", CanOpen: true, Items: []string{"pen"}},
			},
		},
		"shelf": {
			Name:        "Shelf",
			Description: "A bare shelf.",
		},
	}}
}

func TestEnsureSeedsFromDocuments(t *testing.T) {
	store := NewStore()
	loader := testLoader()

	rs := store.Ensure(context.Background(), "lobby", testRoom(), loader)
	require.NotNil(t, rs)

	assert.Equal(t, []string{"key", "coin"}, rs.FloorItems())
	assert.Equal(t, []string{"painting"}, rs.WallItems(content.North))
	assert.Empty(t, rs.WallItems(content.East))
	assert.False(t, rs.StorageOpen("desk", "drawer"))
	assert.Equal(t, []string{"pen"}, rs.StorageItems("desk", "drawer"))
	assert.Equal(t, 2, loader.calls)
}

func TestEnsureIdempotent(t *testing.T) {
	store := NewStore()
	loader := testLoader()
	room := testRoom()

	first := store.Ensure(context.Background(), "lobby", room, loader)
	first.Removables()[0].Remove("key")

	second := store.Ensure(context.Background(), "lobby", room, loader)
	assert.Same(t, first, second)
	// No document is re-read and no mutation is lost on revisit.
	assert.Equal(t, 2, loader.calls)
	assert.Equal(t, []string{"coin"}, second.FloorItems())
}

func TestEnsureSkipsFailedFurniture(t *testing.T) {
	store := NewStore()
	loader := testLoader()
	delete(loader.furniture, "shelf")

	rs := store.Ensure(context.Background(), "lobby", testRoom(), loader)

	_, ok := rs.FindStorageParent("drawer")
	assert.True(t, ok)
	assert.Equal(t, []string{"key", "coin"}, rs.FloorItems())
}

func TestStoreGet(t *testing.T) {
	store := NewStore()

	_, ok := store.Get("lobby")
	assert.False(t, ok)

	rs := store.Ensure(context.Background(), "lobby", testRoom(), testLoader())
	got, ok := store.Get("lobby")
	require.True(t, ok)
	assert.Same(t, rs, got)
}

func TestFindStorageParent(t *testing.T) {
	rs := NewStore().Ensure(context.Background(), "lobby", testRoom(), testLoader())

	furnID, ok := rs.FindStorageParent("drawer")
	require.True(t, ok)
	assert.Equal(t, "desk", furnID)

	_, ok = rs.FindStorageParent("hatch")
	assert.False(t, ok)
}

func TestOpenStorage(t *testing.T) {
	rs := NewStore().Ensure(context.Background(), "lobby", testRoom(), testLoader())

	items, alreadyOpen, ok := rs.OpenStorage("desk", "drawer")
	require.True(t, ok)
	assert.False(t, alreadyOpen)
	assert.Equal(t, []string{"pen"}, items)
	assert.True(t, rs.StorageOpen("desk", "drawer"))

	items, alreadyOpen, ok = rs.OpenStorage("desk", "drawer")
	require.True(t, ok)
	assert.True(t, alreadyOpen)
	assert.Equal(t, []string{"pen"}, items)

	_, _, ok = rs.OpenStorage("desk", "hatch")
	assert.False(t, ok)
	_, _, ok = rs.OpenStorage("shelf", "drawer")
	assert.False(t, ok)
}

func TestSnapshotsAreCopies(t *testing.T) {
	rs := NewStore().Ensure(context.Background(), "lobby", testRoom(), testLoader())

	floor := rs.FloorItems()
	floor[0] = "mangled"
	assert.Equal(t, []string{"key", "coin"}, rs.FloorItems())

	wall := rs.WallItems(content.North)
	wall[0] = "mangled"
	assert.Equal(t, []string{"painting"}, rs.WallItems(content.North))
}

func TestInventory(t *testing.T) {
	inv := NewInventory()
	assert.Zero(t, inv.Len())
	assert.False(t, inv.Contains("key"))
	assert.Empty(t, inv.Items())

	inv.Add("key")
	inv.Add("pen")
	assert.Equal(t, 2, inv.Len())
	assert.True(t, inv.Contains("key"))
	assert.Equal(t, []string{"key", "pen"}, inv.Items())
}
