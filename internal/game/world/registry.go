package world

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors returned by Navigate.
var (
	ErrRoomNotFound = errors.New("room not found")
	ErrNoExit       = errors.New("no exit in that direction")
)

// Registry indexes the rooms of a zone by ID.
// It is never modified after construction, so concurrent reads are safe.
type Registry struct {
	zone  *Zone
	rooms map[string]*Room
}

// NewRegistry creates a Registry from the given zone.
//
// Precondition: zone must be non-nil.
// Postcondition: Returns a Registry with every room indexed by ID, or an error
// if the zone fails validation.
func NewRegistry(zone *Zone) (*Registry, error) {
	if zone == nil {
		return nil, errors.New("zone must not be nil")
	}
	if err := zone.Validate(); err != nil {
		return nil, err
	}

	r := &Registry{
		zone:  zone,
		rooms: make(map[string]*Room, len(zone.Rooms)),
	}
	for id, room := range zone.Rooms {
		r.rooms[id] = room
	}
	return r, nil
}

// ValidateExits checks that every exit target in every room resolves to a
// known room.
//
// Postcondition: Returns nil if all exits resolve, or an error naming the first dangling target.
func (r *Registry) ValidateExits() error {
	for _, room := range r.Rooms() {
		for _, dir := range Directions {
			target, ok := room.Exits[dir]
			if !ok {
				continue
			}
			if _, ok := r.rooms[target]; !ok {
				return fmt.Errorf("zone %q: room %q: exit %q targets unknown room %q",
					r.zone.ID, room.ID, dir, target)
			}
		}
	}
	return nil
}

// Get returns the room with the given ID.
//
// Postcondition: Returns (room, true) if found, or (nil, false) otherwise.
func (r *Registry) Get(id string) (*Room, bool) {
	room, ok := r.rooms[id]
	return room, ok
}

// Navigate resolves movement from a room in a direction.
//
// Postcondition: Returns the destination room; the error wraps ErrRoomNotFound
// when fromID or the exit target is unknown, and ErrNoExit when the room has
// no exit toward dir.
func (r *Registry) Navigate(fromID string, dir Direction) (*Room, error) {
	from, ok := r.rooms[fromID]
	if !ok {
		return nil, fmt.Errorf("room %q: %w", fromID, ErrRoomNotFound)
	}

	targetID, ok := from.ExitFor(dir)
	if !ok {
		return nil, fmt.Errorf("%s from %q: %w", dir, fromID, ErrNoExit)
	}

	target, ok := r.rooms[targetID]
	if !ok {
		return nil, fmt.Errorf("exit %s from %q targets %q: %w", dir, fromID, targetID, ErrRoomNotFound)
	}
	return target, nil
}

// Zone returns the zone this registry was built from.
func (r *Registry) Zone() *Zone {
	return r.zone
}

// StartRoom returns the room a new session begins in.
func (r *Registry) StartRoom() *Room {
	return r.rooms[r.zone.StartRoom]
}

// TreasureRoom returns the room that fires the treasure event, or nil if the
// zone has none.
func (r *Registry) TreasureRoom() *Room {
	if r.zone.TreasureRoom == "" {
		return nil
	}
	return r.rooms[r.zone.TreasureRoom]
}

// IsTreasureRoom reports whether id names the treasure room.
func (r *Registry) IsTreasureRoom(id string) bool {
	treasure := r.TreasureRoom()
	return treasure != nil && treasure.ID == id
}

// Rooms returns all rooms sorted by ID.
func (r *Registry) Rooms() []*Room {
	rooms := make([]*Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		rooms = append(rooms, room)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms
}

// RoomCount returns the number of rooms in the registry.
func (r *Registry) RoomCount() int {
	return len(r.rooms)
}
