package engine

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/cory-johannsen/dragons-escape/internal/game/command"
	"github.com/cory-johannsen/dragons-escape/internal/game/world"
)

// Presenter renders everything the player sees. Implementations own all
// timing; the game loop never sleeps.
type Presenter interface {
	// Title shows the title screen and the prompt to press ENTER.
	Title()
	// Room shows a room's name, art and description.
	Room(room *world.Room)
	// TreasureFound plays the one-time treasure event.
	TreasureFound()
	// Compass shows which directions have exits.
	Compass(exits mapset.Set[world.Direction])
	// Prompt asks for the next command.
	Prompt()
	// Examine acknowledges a look command.
	Examine()
	// Help shows the help menu built from cmds.
	Help(cmds []*command.Command)
	// Map shows the castle map.
	Map()
	// Moving plays the movement animation toward dir.
	Moving(dir world.Direction)
	// Error reports an informational error to the player.
	Error(err error)
	// Farewell shows the goodbye screen.
	Farewell()
	// Continue asks the player to press ENTER.
	Continue()
	// Pause holds feedback on screen before the next turn.
	Pause()
}
