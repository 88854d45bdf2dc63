// Package directory serves the static campus reference data: building
// profiles, room search, and templated textual directions. There is no
// pathfinding here, only scans over the in-memory register.
package directory

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrBuildingNotFound = errors.New("building not found")
var ErrRoomNotFound = errors.New("room not found")

// RoomMatch is one search hit, carrying enough building context to render a
// result row without a second lookup.
type RoomMatch struct {
	BuildingID   string `json:"buildingId"`
	BuildingName string `json:"buildingName"`
	RoomNo       string `json:"roomNo"`
	RoomName     string `json:"roomName"`
	Area         string `json:"area"`
	Department   string `json:"department"`
}

// All returns every building profile.
func All() []Building {
	return buildings
}

// ByID returns a building by its short identifier.
func ByID(id string) (*Building, error) {
	for i := range buildings {
		if buildings[i].ID == id {
			return &buildings[i], nil
		}
	}
	return nil, ErrBuildingNotFound
}

// SearchRooms scans every room register for a case-insensitive match on room
// number, room name, or department. Results are sorted by building then room
// number so repeated queries are stable.
func SearchRooms(query string) []RoomMatch {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matches []RoomMatch
	for _, b := range buildings {
		for _, r := range b.Rooms {
			if strings.Contains(strings.ToLower(r.RoomNo), query) ||
				strings.Contains(strings.ToLower(r.RoomName), query) ||
				strings.Contains(strings.ToLower(r.Department), query) {
				matches = append(matches, RoomMatch{
					BuildingID:   b.ID,
					BuildingName: b.Name,
					RoomNo:       r.RoomNo,
					RoomName:     r.RoomName,
					Area:         r.Area,
					Department:   r.Department,
				})
			}
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].BuildingID != matches[j].BuildingID {
			return matches[i].BuildingID < matches[j].BuildingID
		}
		return matches[i].RoomNo < matches[j].RoomNo
	})
	return matches
}

// Directions produces the step-by-step textual route to a room. floor is the
// display label ("Ground Floor", "Floor 2", ...).
func Directions(buildingID string, floor string, roomNo string) ([]string, error) {
	building, err := ByID(buildingID)
	if err != nil {
		return nil, err
	}

	var room *Room
	for i := range building.Rooms {
		if building.Rooms[i].RoomNo == roomNo {
			room = &building.Rooms[i]
			break
		}
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	steps := []string{
		fmt.Sprintf("Enter the %s building from the main entrance.", building.Name),
	}
	if floor == "Ground Floor" {
		steps = append(steps, "You are already on the Ground Floor.")
	} else {
		steps = append(steps, fmt.Sprintf("Take the stairs or elevator to reach %s.", floor))
	}
	steps = append(steps, fmt.Sprintf("Look for Room %s (%s).", room.RoomNo, room.RoomName))

	if nearby := nearbyFacilities(building, floor, roomNo); len(nearby) > 0 {
		var parts []string
		for _, r := range nearby {
			parts = append(parts, fmt.Sprintf("%s (%s)", r.RoomName, r.RoomNo))
		}
		steps = append(steps, fmt.Sprintf("The room is located near %s.", strings.Join(parts, " and ")))
	}

	steps = append(steps, fmt.Sprintf("The room belongs to the %s department.", room.Department))
	return steps, nil
}

// nearbyFacilities picks up to two significant rooms on the same floor with
// close room numbers, used as landmarks in the directions text.
func nearbyFacilities(building *Building, floor string, roomNo string) []Room {
	target := numericPart(roomNo)

	var nearby []Room
	for _, r := range building.Rooms {
		if r.RoomNo == roomNo || !onFloor(r.RoomNo, floor) {
			continue
		}
		delta := numericPart(r.RoomNo) - target
		if delta < 0 {
			delta = -delta
		}
		if delta > 3 {
			continue
		}
		lower := strings.ToLower(r.RoomName)
		if strings.Contains(lower, "lab") || strings.Contains(lower, "toilet") ||
			strings.Contains(lower, "washroom") || strings.Contains(lower, "class") {
			nearby = append(nearby, r)
			if len(nearby) == 2 {
				break
			}
		}
	}
	return nearby
}

// onFloor matches the room-number conventions of the register: ground-floor
// rooms start with "G" or "0", upper floors embed the floor number as the
// leading digit.
func onFloor(roomNo string, floor string) bool {
	if floor == "Ground Floor" {
		return strings.HasPrefix(roomNo, "G") || strings.HasPrefix(roomNo, "0")
	}
	fields := strings.Fields(floor)
	if len(fields) < 2 {
		return false
	}
	floorNum := fields[1]
	return strings.HasPrefix(roomNo, floorNum)
}

func numericPart(roomNo string) int {
	n := 0
	for _, ch := range roomNo {
		if ch >= '0' && ch <= '9' {
			n = n*10 + int(ch-'0')
		}
	}
	return n
}
