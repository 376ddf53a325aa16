// Package session holds the mutable state of one play-through.
package session

import (
	"time"

	"github.com/google/uuid"
)

// State tracks where the player is and which one-time events have fired.
// A State has a single owner, the game loop, and is not safe for concurrent use.
type State struct {
	// ID uniquely identifies the session in logs.
	ID string
	// RoomID is the current room the player occupies.
	RoomID string
	// TreasureFound records that the treasure event has fired.
	TreasureFound bool
	// Turns counts the commands the player has entered.
	Turns int
	// StartedAt is when the session began.
	StartedAt time.Time
}

// NewState creates a session positioned in startRoom.
//
// Precondition: startRoom must be non-empty.
// Postcondition: Returns a State with a fresh ID, zero turns, and TreasureFound false.
func NewState(startRoom string) *State {
	return &State{
		ID:        uuid.NewString(),
		RoomID:    startRoom,
		StartedAt: time.Now(),
	}
}

// MoveTo places the player in roomID.
func (s *State) MoveTo(roomID string) {
	s.RoomID = roomID
}

// Tick records one command.
func (s *State) Tick() {
	s.Turns++
}

// MarkTreasureFound sets the treasure flag.
//
// Postcondition: Returns true only on the first call for this State.
func (s *State) MarkTreasureFound() bool {
	if s.TreasureFound {
		return false
	}
	s.TreasureFound = true
	return true
}

// Elapsed returns how long the session has been running.
func (s *State) Elapsed() time.Duration {
	return time.Since(s.StartedAt)
}
