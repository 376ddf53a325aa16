package console

import (
	"strings"

	"github.com/muesli/reflow/ansi"

	"github.com/cory-johannsen/dragons-escape/internal/game/command"
	"github.com/cory-johannsen/dragons-escape/internal/game/world"
)

// titleFrames alternate to animate the title banner.
var titleFrames = []string{
	"🐉 🏰 🐉 🏰 🐉 🏰 🐉 🏰 🐉",
	"🏰 🐉 🏰 🐉 🏰 🐉 🏰 🐉 🏰",
}

const titleText = "DRAGON'S ESCAPE"

var titleIntro = []string{
	"You are a brave adventurer trapped in a dragon's castle!",
	"Explore rooms, find treasures, and escape to freedom!",
}

// treasureIcons cycle during the treasure event.
var treasureIcons = []string{"💎", "💰", "👑", "💍", "🏆", "🔮"}

// moveFrames is the number of frames in the movement animation.
const moveFrames = 3

var arrows = map[world.Direction]string{
	world.North: "🔼",
	world.South: "🔽",
	world.East:  "▶",
	world.West:  "◀",
}

const (
	examineText  = "You examine your surroundings carefully..."
	continueText = "Press ENTER to continue..."
	beginText    = "Press ENTER to begin your adventure..."
)

// helpScreen lists cmds followed by the goal and tips.
func helpScreen(cmds []*command.Command) string {
	b := &box{}
	b.title("HELP MENU").divider()
	b.line(" 🎮 COMMANDS:")
	for _, group := range groupByCategory(cmds) {
		indent := "   "
		if group.category != "" {
			b.line("  " + strings.ToUpper(group.category[:1]) + group.category[1:] + ":")
			indent = "    "
		}
		for _, c := range group.commands {
			entry := c.Syntax()
			if c.Usage == "" && c.Help != "" {
				entry += " - " + c.Help
			}
			b.line(indent + entry)
		}
	}
	b.divider()
	b.line(" 🎯 GOAL:")
	b.line("   Find the treasure in the")
	b.line("   Throne Room!")
	b.divider()
	b.line(" 💡 TIPS:")
	for _, tip := range []string{
		"Start in Dungeon Cell",
		"Go North to Hallway",
		"Go East to Throne Room",
		"Find the treasure!",
	} {
		b.line("   • " + tip)
	}
	return b.String()
}

type commandGroup struct {
	category string
	commands []*command.Command
}

// groupByCategory groups cmds by category. Groups appear in the order their
// first command does and keep the registration order within a group.
func groupByCategory(cmds []*command.Command) []commandGroup {
	var groups []commandGroup
	index := make(map[string]int)
	for _, c := range cmds {
		i, ok := index[c.Category]
		if !ok {
			i = len(groups)
			index[c.Category] = i
			groups = append(groups, commandGroup{category: c.Category})
		}
		groups[i].commands = append(groups[i].commands, c)
	}
	return groups
}

// mapScreen draws the castle layout.
func mapScreen() string {
	b := &box{}
	b.title("CASTLE MAP").divider()
	b.blank()
	b.line("   HALLWAY ───→ 🏰 THRONE ROOM 🏰")
	b.line("      │")
	b.line("      │")
	b.line("   DUNGEON 🕳")
	b.blank()
	return b.String() +
		"You are exploring a dragon's castle!\n" +
		"Find your way to the treasure!\n"
}

func farewellScreen() string {
	b := &box{}
	b.title("FAREWELL!").divider()
	b.blank()
	b.title("Thanks for playing!")
	b.title("🐉 Dragon's Escape 🐉")
	b.blank()
	b.title("Come back for more adventures!")
	b.blank()
	return b.String()
}

// compassLines returns the three rows of the compass rose for exits.
func compassLines(has func(world.Direction) bool) []string {
	pick := func(dir world.Direction, label string) string {
		if has(dir) {
			return label
		}
		return strings.Repeat(" ", ansi.PrintableRuneWidth(label))
	}
	return []string{
		pick(world.North, "🔼 NORTH"),
		pick(world.West, "◀ WEST") + "   " + pick(world.East, "EAST ▶"),
		pick(world.South, "🔽 SOUTH"),
	}
}
