package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/muesli/reflow/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dragons-escape/internal/config"
	"github.com/cory-johannsen/dragons-escape/internal/game/command"
	"github.com/cory-johannsen/dragons-escape/internal/game/world"
	"github.com/cory-johannsen/dragons-escape/internal/testutil"
)

// sleepLog records every requested delay.
type sleepLog struct {
	delays []time.Duration
}

func (s *sleepLog) Sleep(d time.Duration) { s.delays = append(s.delays, d) }

func (s *sleepLog) total() time.Duration {
	var sum time.Duration
	for _, d := range s.delays {
		sum += d
	}
	return sum
}

func plainConfig() (config.DisplayConfig, config.AnimationConfig) {
	cfg := config.Default()
	cfg.Display.Color = config.ColorNever
	cfg.Display.ClearScreen = false
	return cfg.Display, cfg.Animation
}

func newPlainRenderer(t *testing.T) (*Renderer, *bytes.Buffer, *sleepLog) {
	t.Helper()
	display, anim := plainConfig()
	var out bytes.Buffer
	sl := &sleepLog{}
	return NewRenderer(&out, display, anim, WithSleeper(sl)), &out, sl
}

func castleRoom(t *testing.T, id string) *world.Room {
	t.Helper()
	reg, err := world.LoadCastle()
	require.NoError(t, err)
	room, ok := reg.Get(id)
	require.True(t, ok)
	return room
}

func exits(dirs ...world.Direction) mapset.Set[world.Direction] {
	set := mapset.New[world.Direction]()
	for _, d := range dirs {
		set.Put(d)
	}
	return set
}

func TestNewRenderer_ColorMode(t *testing.T) {
	display, anim := plainConfig()

	display.Color = config.ColorAlways
	assert.True(t, NewRenderer(&bytes.Buffer{}, display, anim).colors)

	display.Color = config.ColorAuto
	assert.False(t, NewRenderer(&bytes.Buffer{}, display, anim).colors, "a buffer is not a terminal")

	display.Color = config.ColorNever
	assert.False(t, NewRenderer(&bytes.Buffer{}, display, anim).colors)
}

func TestRoom_ShowsBannerArtAndDescription(t *testing.T) {
	r, out, _ := newPlainRenderer(t)
	room := castleRoom(t, "dungeon_cell")

	r.Room(room)

	testutil.AssertInOrder(t, out.String(),
		"Dungeon Cell",
		"DUNGEON CELL",
		"ROOM DESCRIPTION",
		"A cold, dark prison cell.",
		"There's a rusty door to the NORTH.",
	)
}

func TestRoom_WrapsDescription(t *testing.T) {
	display, anim := plainConfig()
	display.Width = 20
	var out bytes.Buffer
	r := NewRenderer(&out, display, anim, WithSleeper(NopSleeper))

	r.Room(&world.Room{ID: "x", Title: "X", Description: "one two three four five six seven eight nine ten"})

	desc := out.String()[strings.Index(out.String(), "one"):]
	for _, l := range strings.Split(strings.TrimRight(desc, "\n"), "\n") {
		assert.LessOrEqual(t, ansi.PrintableRuneWidth(l), 20, "line %q", l)
	}
}

func TestCompass_ShowsOnlyExits(t *testing.T) {
	r, out, _ := newPlainRenderer(t)

	r.Compass(exits(world.South, world.East))

	s := out.String()
	assert.Contains(t, s, "COMPASS")
	assert.Contains(t, s, "🔽 SOUTH")
	assert.Contains(t, s, "EAST ▶")
	assert.NotContains(t, s, "NORTH")
	assert.NotContains(t, s, "WEST")
}

func TestCompass_AllDirections(t *testing.T) {
	r, out, _ := newPlainRenderer(t)

	r.Compass(exits(world.Directions...))

	testutil.AssertInOrder(t, out.String(), "🔼 NORTH", "◀ WEST", "EAST ▶", "🔽 SOUTH")
}

func TestPrompt_LeavesCursorOnPromptLine(t *testing.T) {
	r, out, _ := newPlainRenderer(t)

	r.Prompt()

	assert.Contains(t, out.String(), "YOUR COMMAND")
	assert.True(t, strings.HasSuffix(out.String(), "> "))
}

func TestFeedbackText(t *testing.T) {
	r, out, sl := newPlainRenderer(t)

	r.Examine()
	r.Error(&command.UnrecognizedCommandError{Input: "dance"})
	r.Error(&command.InvalidDirectionError{Token: "up"})
	r.Error(&command.InvalidDirectionError{Token: "south", Blocked: true})
	r.Continue()
	r.Pause()

	testutil.AssertInOrder(t, out.String(),
		"You examine your surroundings carefully...\n",
		"❌ Unknown command: 'dance'\n",
		"❌ Unknown direction: 'up'\n",
		"❌ You can't go that way!\n",
		"Press ENTER to continue...\n",
	)
	assert.Equal(t, []time.Duration{time.Second}, sl.delays)
}

func TestHelp_ListsRegisteredCommands(t *testing.T) {
	r, out, _ := newPlainRenderer(t)

	r.Help(command.DefaultRegistry().Commands())

	testutil.AssertInOrder(t, out.String(),
		"HELP MENU",
		"COMMANDS:",
		"Movement:",
		"go north/south/east/west",
		"World:",
		"look - Examine room",
		"map - Show game map",
		"System:",
		"help - This menu",
		"quit - Exit game",
		"GOAL:",
		"Throne Room!",
		"TIPS:",
		"Find the treasure!",
	)
}

func TestGroupByCategory(t *testing.T) {
	cmds := []*command.Command{
		{Name: "a", Category: command.CategorySystem},
		{Name: "b", Category: command.CategoryWorld},
		{Name: "c", Category: command.CategorySystem},
		{Name: "d"},
	}

	groups := groupByCategory(cmds)

	require.Len(t, groups, 3)
	assert.Equal(t, command.CategorySystem, groups[0].category)
	assert.Equal(t, []*command.Command{cmds[0], cmds[2]}, groups[0].commands)
	assert.Equal(t, command.CategoryWorld, groups[1].category)
	assert.Equal(t, []*command.Command{cmds[1]}, groups[1].commands)
	assert.Equal(t, "", groups[2].category)
	assert.Equal(t, []*command.Command{cmds[3]}, groups[2].commands)
}

func TestHelp_UncategorizedCommandsHaveNoHeading(t *testing.T) {
	r, out, _ := newPlainRenderer(t)

	r.Help([]*command.Command{{Name: "dance", Help: "Show off"}})

	assert.Contains(t, out.String(), "│   dance - Show off")
}

func TestMapAndFarewell(t *testing.T) {
	r, out, _ := newPlainRenderer(t)

	r.Map()
	r.Farewell()

	testutil.AssertInOrder(t, out.String(),
		"CASTLE MAP", "THRONE ROOM", "HALLWAY", "DUNGEON",
		"Find your way to the treasure!",
		"FAREWELL!", "Thanks for playing!", "Dragon's Escape", "Come back for more adventures!",
	)
}

func TestBoxes_HaveUniformWidth(t *testing.T) {
	r, out, _ := newPlainRenderer(t)

	r.Help(command.DefaultRegistry().Commands())
	r.Map()
	r.Farewell()
	r.Compass(exits(world.North, world.West))
	r.Prompt()

	for _, l := range strings.Split(out.String(), "\n") {
		if !strings.HasPrefix(l, "│") && !strings.HasPrefix(l, "┌") &&
			!strings.HasPrefix(l, "├") && !strings.HasPrefix(l, "└") {
			continue
		}
		assert.Equal(t, boxWidth+2, ansi.PrintableRuneWidth(l), "line %q", l)
	}
}

func TestAnimations_Pacing(t *testing.T) {
	r, out, sl := newPlainRenderer(t)

	r.Title()
	assert.Len(t, sl.delays, 6)
	assert.Equal(t, 3*time.Second, sl.total())
	assert.Equal(t, 6, strings.Count(out.String(), titleFrames[1]), "each frame has a top and bottom border")
	testutil.AssertInOrder(t, out.String(),
		"DRAGON'S ESCAPE",
		"You are a brave adventurer trapped in a dragon's castle!",
		"Explore rooms, find treasures, and escape to freedom!",
		"Press ENTER to begin your adventure...",
	)

	sl.delays = nil
	out.Reset()
	r.TreasureFound()
	assert.Len(t, sl.delays, 12)
	assert.Equal(t, 2400*time.Millisecond, sl.total())
	for _, icon := range treasureIcons {
		assert.Equal(t, 2, strings.Count(out.String(), icon+" "), "icon %s", icon)
	}
	assert.Contains(t, out.String(), "YOU FOUND THE DRAGON'S HOARD!")

	sl.delays = nil
	out.Reset()
	r.Moving(world.North)
	assert.Equal(t, []time.Duration{300 * time.Millisecond, 300 * time.Millisecond, 300 * time.Millisecond}, sl.delays)
	assert.Equal(t, 3, strings.Count(out.String(), "Moving NORTH"))
	assert.Equal(t, 3, strings.Count(out.String(), "🔼"))
	testutil.AssertInOrder(t, out.String(), ".", "..", "...")
}

func TestAnimations_DisabledRendersFinalFrameOnly(t *testing.T) {
	display, anim := plainConfig()
	anim.Enabled = false
	var out bytes.Buffer
	sl := &sleepLog{}
	r := NewRenderer(&out, display, anim, WithSleeper(sl))

	r.Title()
	r.TreasureFound()
	r.Moving(world.West)
	r.Pause()

	assert.Empty(t, sl.delays)
	s := out.String()
	assert.Equal(t, 2, strings.Count(s, titleFrames[1]))
	assert.Zero(t, strings.Count(s, titleFrames[0]))
	assert.Equal(t, 1, strings.Count(s, "🔮"))
	assert.Zero(t, strings.Count(s, "👑"))
	assert.Equal(t, 1, strings.Count(s, "Moving WEST"))
	assert.Contains(t, s, "◀")
}

func TestColorNever_WritesNoEscapeSequences(t *testing.T) {
	r, out, _ := newPlainRenderer(t)

	r.Title()
	r.Room(castleRoom(t, "throne_room"))
	r.TreasureFound()
	r.Compass(exits(world.West))
	r.Prompt()
	r.Examine()
	r.Help(command.DefaultRegistry().Commands())
	r.Map()
	r.Moving(world.East)
	r.Error(&command.InvalidDirectionError{Token: "east", Blocked: true})
	r.Continue()
	r.Farewell()

	assert.NotContains(t, out.String(), "\x1b")
}

func TestColorAlways_StylesOutput(t *testing.T) {
	display, anim := plainConfig()
	display.Color = config.ColorAlways
	display.ClearScreen = true
	var out bytes.Buffer
	r := NewRenderer(&out, display, anim, WithSleeper(NopSleeper))

	r.Error(errors.New("boom"))
	assert.Equal(t, "\x1b["+color.Style{color.FgRed, color.OpBold}.Code()+"m❌ boom\x1b[0m\n", out.String())

	out.Reset()
	r.Room(castleRoom(t, "hallway"))
	assert.True(t, strings.HasPrefix(out.String(), clearScreen))
	assert.Contains(t, color.ClearCode(out.String()), "Hallway")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestErr_RecordsFirstWriteFailure(t *testing.T) {
	display, anim := plainConfig()
	r := NewRenderer(failingWriter{}, display, anim, WithSleeper(NopSleeper))
	require.NoError(t, r.Err())

	r.Examine()
	r.Farewell()

	require.Error(t, r.Err())
	assert.Contains(t, r.Err().Error(), "writing to console")
}

func TestProperty_CenterPadsToWidth(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.StringMatching(`[a-zA-Z .!']{0,30}`).Draw(rt, "s")
		got := center(s, boxWidth)
		if ansi.PrintableRuneWidth(got) != boxWidth {
			rt.Fatalf("center(%q) width = %d", s, ansi.PrintableRuneWidth(got))
		}
		if strings.TrimSpace(got) != strings.TrimSpace(s) {
			rt.Fatalf("center(%q) = %q changed the content", s, got)
		}
	})
}

func TestWrapWidth_NonTerminalKeepsPreferred(t *testing.T) {
	assert.Equal(t, 60, WrapWidth(&bytes.Buffer{}, 60))
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
