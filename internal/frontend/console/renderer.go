// Package console renders the game to a terminal: rooms, the compass, menus,
// and the decorative animations.
package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/muesli/reflow/ansi"
	"github.com/zyedidia/generic/mapset"

	"github.com/cory-johannsen/dragons-escape/internal/config"
	"github.com/cory-johannsen/dragons-escape/internal/game/command"
	"github.com/cory-johannsen/dragons-escape/internal/game/world"
)

const clearScreen = "\x1b[2J\x1b[1;1H"

// palette holds the styles used for each kind of output.
type palette struct {
	banner   color.Style
	heading  color.Style
	compass  color.Style
	prompt   color.Style
	treasure color.Style
	denied   color.Style
	subtle   color.Style
}

var defaultPalette = palette{
	banner:   color.Style{color.FgYellow, color.OpBold},
	heading:  color.Style{color.FgCyan, color.OpBold},
	compass:  color.Style{color.FgCyan},
	prompt:   color.Style{color.FgGreen, color.OpBold},
	treasure: color.Style{color.FgYellow, color.OpBold},
	denied:   color.Style{color.FgRed, color.OpBold},
	subtle:   color.Style{color.FgGray},
}

// Renderer writes every game screen to a terminal.
// A Renderer is not safe for concurrent use.
type Renderer struct {
	out     io.Writer
	display config.DisplayConfig
	anim    config.AnimationConfig
	sleeper Sleeper
	colors  bool
	width   int
	styles  palette
	err     error
}

// Option customizes a Renderer.
type Option func(*Renderer)

// WithSleeper replaces the clock used to pace animations.
func WithSleeper(s Sleeper) Option {
	return func(r *Renderer) { r.sleeper = s }
}

// NewRenderer creates a Renderer writing to out.
//
// Precondition: out must be non-nil; display and anim must be valid.
// Postcondition: Colour is enabled for "always", or for "auto" when out is a
// terminal.
func NewRenderer(out io.Writer, display config.DisplayConfig, anim config.AnimationConfig, opts ...Option) *Renderer {
	r := &Renderer{
		out:     out,
		display: display,
		anim:    anim,
		sleeper: SystemSleeper,
		width:   WrapWidth(out, display.Width),
		styles:  defaultPalette,
	}
	switch display.Color {
	case config.ColorAlways:
		r.colors = true
	case config.ColorAuto:
		r.colors = IsTerminal(out)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Err returns the first error encountered writing output, if any.
func (r *Renderer) Err() error {
	return r.err
}

// Title plays the title animation and asks the player to begin.
func (r *Renderer) Title() {
	loops := r.loops(r.anim.TitleLoops)
	for i := 0; i < loops; i++ {
		for j, frame := range titleFrames {
			if !r.anim.Enabled && j < len(titleFrames)-1 {
				continue
			}
			var b strings.Builder
			r.clear(&b)
			b.WriteString("\n")
			b.WriteString(r.paint(r.styles.treasure, frame) + "\n")
			b.WriteString(r.paint(r.styles.banner, center(titleText, ansi.PrintableRuneWidth(frame))) + "\n")
			b.WriteString(r.paint(r.styles.treasure, frame) + "\n\n")
			r.write(b.String())
			r.sleep(r.anim.TitleFrameDelay)
		}
	}

	var b strings.Builder
	for _, l := range titleIntro {
		b.WriteString(l + "\n")
	}
	b.WriteString("\n" + r.paint(r.styles.subtle, beginText) + "\n")
	r.write(b.String())
}

// Room shows the room banner, its art and its word-wrapped description.
func (r *Renderer) Room(room *world.Room) {
	var b strings.Builder
	r.clear(&b)
	b.WriteString(r.paint(r.styles.banner, banner(room.Title)))
	if room.Art != "" {
		b.WriteString(room.Art + "\n")
	}
	b.WriteString(r.paint(r.styles.heading, banner("ROOM DESCRIPTION")))
	b.WriteString(wrap(room.Description, r.width) + "\n")
	r.write(b.String())
}

// TreasureFound cycles the treasure icons.
func (r *Renderer) TreasureFound() {
	loops := r.loops(r.anim.TreasureLoops)
	for i := 0; i < loops; i++ {
		for j, icon := range treasureIcons {
			if !r.anim.Enabled && j < len(treasureIcons)-1 {
				continue
			}
			var b strings.Builder
			r.clear(&b)
			b.WriteString("\n")
			b.WriteString(r.paint(r.styles.treasure, banner("TREASURE FOUND!")))
			b.WriteString("\n" + center(icon, boxWidth) + "\n\n")
			b.WriteString("🎉 YOU FOUND THE DRAGON'S HOARD! 🎉\n")
			b.WriteString("The treasure glitters before you!\n")
			r.write(b.String())
			r.sleep(r.anim.TreasureFrameDelay)
		}
	}
}

// Compass shows the directions that have exits.
func (r *Renderer) Compass(exits mapset.Set[world.Direction]) {
	b := &box{}
	b.title("COMPASS").divider()
	for _, l := range compassLines(exits.Has) {
		b.title(l)
	}
	r.write("\n" + r.paint(r.styles.compass, b.String()))
}

// Prompt asks for the next command. The cursor stays on the prompt line.
func (r *Renderer) Prompt() {
	r.write("\n" + r.paint(r.styles.heading, banner("YOUR COMMAND")) + r.paint(r.styles.prompt, "> "))
}

// Examine acknowledges the look command.
func (r *Renderer) Examine() {
	r.write(examineText + "\n")
}

// Help shows the help menu for cmds.
func (r *Renderer) Help(cmds []*command.Command) {
	var b strings.Builder
	r.clear(&b)
	b.WriteString(helpScreen(cmds))
	r.write(b.String())
}

// Map shows the castle map.
func (r *Renderer) Map() {
	var b strings.Builder
	r.clear(&b)
	b.WriteString(mapScreen())
	r.write(b.String())
}

// Moving plays the movement animation toward dir.
func (r *Renderer) Moving(dir world.Direction) {
	arrow, ok := arrows[dir]
	if !ok {
		arrow = "🚶"
	}
	caption := "Moving " + strings.ToUpper(string(dir))

	for i := 0; i < moveFrames; i++ {
		if !r.anim.Enabled && i < moveFrames-1 {
			continue
		}
		var b strings.Builder
		r.clear(&b)
		b.WriteString(banner("MOVING..."))
		b.WriteString("\n")
		b.WriteString(center(strings.Repeat(".", i+1), boxWidth) + "\n")
		b.WriteString(center(arrow, boxWidth) + "\n")
		b.WriteString(r.paint(r.styles.heading, center(caption, boxWidth)) + "\n")
		r.write(b.String())
		r.sleep(r.anim.MoveFrameDelay)
	}
}

// Error reports an informational error in red.
func (r *Renderer) Error(err error) {
	r.write(r.paint(r.styles.denied, "❌ "+err.Error()) + "\n")
}

// Farewell shows the goodbye screen.
func (r *Renderer) Farewell() {
	var b strings.Builder
	r.clear(&b)
	b.WriteString(r.paint(r.styles.banner, farewellScreen()))
	r.write(b.String())
}

// Continue asks the player to press ENTER.
func (r *Renderer) Continue() {
	r.write("\n" + r.paint(r.styles.subtle, continueText) + "\n")
}

// Pause holds the last feedback on screen.
func (r *Renderer) Pause() {
	r.sleep(r.anim.FeedbackPause)
}

func (r *Renderer) loops(n int) int {
	if !r.anim.Enabled || n < 1 {
		return 1
	}
	return n
}

func (r *Renderer) sleep(d time.Duration) {
	if r.anim.Enabled && d > 0 {
		r.sleeper.Sleep(d)
	}
}

func (r *Renderer) clear(b *strings.Builder) {
	if r.display.ClearScreen {
		b.WriteString(clearScreen)
	}
}

// paint applies style s when colour output is on.
func (r *Renderer) paint(s color.Style, text string) string {
	if !r.colors || text == "" {
		return text
	}
	return fmt.Sprintf(color.FullColorTpl, s.Code(), text)
}

func (r *Renderer) write(s string) {
	if r.err != nil {
		return
	}
	if _, err := io.WriteString(r.out, s); err != nil {
		r.err = fmt.Errorf("writing to console: %w", err)
	}
}
