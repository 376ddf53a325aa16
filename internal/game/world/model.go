// Package world provides the game world model: the castle zone, its rooms,
// exits, and directions.
package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Direction is one of the four compass directions.
type Direction string

// The compass directions. No other direction exists.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Directions lists every direction in compass display order.
var Directions = []Direction{North, South, East, West}

// ParseDirection maps a lowercase direction word to a Direction.
//
// Postcondition: Returns (dir, true) only for "north", "south", "east" or "west".
func ParseDirection(s string) (Direction, bool) {
	switch Direction(s) {
	case North, South, East, West:
		return Direction(s), true
	default:
		return "", false
	}
}

// IsValid reports whether d is one of the four compass directions.
func (d Direction) IsValid() bool {
	_, ok := ParseDirection(string(d))
	return ok
}

// Room represents a location in the game world.
type Room struct {
	// ID uniquely identifies this room within the zone.
	ID string
	// Title is the display name of the room.
	Title string
	// Description is the multi-line room description shown to players.
	Description string
	// Art is the decorative drawing shown above the description.
	Art string
	// Exits maps a direction to the ID of the adjacent room.
	Exits map[Direction]string
}

// ExitFor returns the ID of the room reached by going dir.
//
// Postcondition: Returns (targetID, true) if an exit exists, or ("", false).
func (r *Room) ExitFor(dir Direction) (string, bool) {
	target, ok := r.Exits[dir]
	return target, ok
}

// ExitSet returns the set of directions that lead out of this room.
func (r *Room) ExitSet() mapset.Set[Direction] {
	set := mapset.New[Direction]()
	for dir := range r.Exits {
		set.Put(dir)
	}
	return set
}

// Zone groups the rooms of one world definition.
type Zone struct {
	// ID uniquely identifies this zone.
	ID string
	// Name is the display name of the zone.
	Name string
	// Description summarizes the zone's theme.
	Description string
	// StartRoom is the ID of the room a new session begins in.
	StartRoom string
	// TreasureRoom is the ID of the room that fires the one-time treasure event.
	TreasureRoom string
	// Rooms contains all rooms in this zone, keyed by room ID.
	Rooms map[string]*Room
}

// Validate checks zone invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (z *Zone) Validate() error {
	if z.ID == "" {
		return fmt.Errorf("zone ID must not be empty")
	}
	if z.Name == "" {
		return fmt.Errorf("zone %q: name must not be empty", z.ID)
	}
	if z.StartRoom == "" {
		return fmt.Errorf("zone %q: start_room must not be empty", z.ID)
	}
	if len(z.Rooms) == 0 {
		return fmt.Errorf("zone %q: must contain at least one room", z.ID)
	}
	if _, ok := z.Rooms[z.StartRoom]; !ok {
		return fmt.Errorf("zone %q: start_room %q not found in rooms", z.ID, z.StartRoom)
	}
	if z.TreasureRoom != "" {
		if _, ok := z.Rooms[z.TreasureRoom]; !ok {
			return fmt.Errorf("zone %q: treasure_room %q not found in rooms", z.ID, z.TreasureRoom)
		}
	}
	for id, room := range z.Rooms {
		if room.ID != id {
			return fmt.Errorf("zone %q: room key %q does not match room ID %q", z.ID, id, room.ID)
		}
		if room.Title == "" {
			return fmt.Errorf("zone %q: room %q: title must not be empty", z.ID, id)
		}
		if room.Description == "" {
			return fmt.Errorf("zone %q: room %q: description must not be empty", z.ID, id)
		}
		for dir, target := range room.Exits {
			if !dir.IsValid() {
				return fmt.Errorf("zone %q: room %q: unknown direction %q", z.ID, id, dir)
			}
			if target == "" {
				return fmt.Errorf("zone %q: room %q: exit %q has empty target", z.ID, id, dir)
			}
			if _, ok := z.Rooms[target]; !ok {
				return fmt.Errorf("zone %q: room %q: exit %q targets unknown room %q", z.ID, id, dir, target)
			}
		}
	}
	return nil
}
