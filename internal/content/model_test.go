package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTestRoom() *Room {
	return &Room{
		ID:          "lobby",
		Name:        "Lobby",
		Description: "A dusty lobby.",
		Furniture:   []string{"desk"},
		Walls: []Wall{
			{Direction: North, Description: "A bare north wall.", Items: []string{"painting"}},
			{Direction: South, Description: "A bare south wall."},
		},
		Floor: &Floor{Description: "Worn floorboards.", Items: []string{"key"}},
		Exits: []Exit{{Direction: East, Destination: "hallway"}},
	}
}

func TestRoomValidate(t *testing.T) {
	assert.NoError(t, validTestRoom().Validate())
}

func TestRoomValidate_MissingFields(t *testing.T) {
	room := validTestRoom()
	room.ID = ""
	assert.ErrorContains(t, room.Validate(), "room ID")

	room = validTestRoom()
	room.Name = ""
	assert.ErrorContains(t, room.Validate(), "name must not be empty")

	room = validTestRoom()
	room.Description = ""
	assert.ErrorContains(t, room.Validate(), "description must not be empty")
}

func TestRoomValidate_BadWallDirection(t *testing.T) {
	room := validTestRoom()
	room.Walls = append(room.Walls, Wall{Direction: "up"})
	assert.ErrorContains(t, room.Validate(), "not a cardinal direction")
}

func TestRoomValidate_DuplicateWall(t *testing.T) {
	room := validTestRoom()
	room.Walls = append(room.Walls, Wall{Direction: North})
	assert.ErrorContains(t, room.Validate(), "duplicate wall direction")
}

func TestRoomValidate_EmptyExitDestination(t *testing.T) {
	room := validTestRoom()
	room.Exits = append(room.Exits, Exit{Direction: West})
	assert.ErrorContains(t, room.Validate(), "empty destination")
}

func TestRoomExitForDirection(t *testing.T) {
	room := validTestRoom()

	exit, ok := room.ExitForDirection(East)
	assert.True(t, ok)
	assert.Equal(t, "hallway", exit.Destination)

	_, ok = room.ExitForDirection(West)
	assert.False(t, ok)
}

func TestRoomWallForDirection(t *testing.T) {
	room := validTestRoom()

	wall, ok := room.WallForDirection(North)
	assert.True(t, ok)
	assert.Equal(t, []string{"painting"}, wall.Items)

	_, ok = room.WallForDirection(East)
	assert.False(t, ok)
}

func TestDirectionIsValid(t *testing.T) {
	for _, dir := range Directions {
		assert.True(t, dir.IsValid())
	}
	assert.False(t, Direction("up").IsValid())
	assert.False(t, Direction("").IsValid())
	assert.False(t, Direction("North").IsValid())
}

func TestItemTakeable(t *testing.T) {
	no := false
	yes := true

	assert.True(t, (&Item{Name: "Key"}).Takeable())
	assert.True(t, (&Item{Name: "Key", CanTake: &yes}).Takeable())
	assert.False(t, (&Item{Name: "Safe", CanTake: &no}).Takeable())
}
