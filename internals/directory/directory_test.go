package directory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByID(t *testing.T) {
	building, err := ByID("cdmm")
	require.NoError(t, err)
	assert.Equal(t, "CDMM", building.Name)
	assert.NotEmpty(t, building.Rooms)

	_, err = ByID("nope")
	assert.ErrorIs(t, err, ErrBuildingNotFound)
}

func TestSearchRooms(t *testing.T) {
	matches := SearchRooms("GIS")
	require.NotEmpty(t, matches)
	assert.Equal(t, "cdmm", matches[0].BuildingID)
	assert.Contains(t, matches[0].RoomName, "GIS")

	// Case-insensitive, matches department codes too
	assert.Equal(t, matches, SearchRooms("gis"))
	assert.NotEmpty(t, SearchRooms("sce"))

	assert.Empty(t, SearchRooms(""))
	assert.Empty(t, SearchRooms("   "))
	assert.Empty(t, SearchRooms("zzz-no-such-room"))
}

func TestSearchRooms_Stable(t *testing.T) {
	first := SearchRooms("class")
	second := SearchRooms("class")
	assert.Equal(t, first, second)

	for i := 1; i < len(first); i++ {
		if first[i-1].BuildingID == first[i].BuildingID {
			assert.LessOrEqual(t, first[i-1].RoomNo, first[i].RoomNo)
		}
	}
}

func TestDirections_GroundFloor(t *testing.T) {
	steps, err := Directions("cdmm", "Ground Floor", "G05")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(steps), 4)

	assert.Contains(t, steps[0], "Enter the CDMM building")
	assert.Contains(t, steps[1], "already on the Ground Floor")
	assert.Contains(t, steps[2], "Room G05")
	assert.Contains(t, steps[len(steps)-1], "SAS department")
}

func TestDirections_UpperFloor(t *testing.T) {
	steps, err := Directions("cdmm", "Floor 2", "205")
	require.NoError(t, err)

	assert.Contains(t, steps[1], "Take the stairs or elevator to reach Floor 2")
	assert.Contains(t, steps[2], "GIS lab")
}

func TestDirections_NearbyLandmarks(t *testing.T) {
	// 104 sits between classrooms 103 and 105 on Floor 1
	steps, err := Directions("cdmm", "Floor 1", "104")
	require.NoError(t, err)

	joined := strings.Join(steps, "\n")
	assert.Contains(t, joined, "located near")
}

func TestDirections_Unknown(t *testing.T) {
	_, err := Directions("nope", "Ground Floor", "G01")
	assert.ErrorIs(t, err, ErrBuildingNotFound)

	_, err = Directions("cdmm", "Ground Floor", "X99")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
