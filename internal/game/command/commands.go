// Package command provides the command registry, parser, and interpreter that
// classify a line of player input.
package command

// Categories for organizing commands.
const (
	CategoryMovement = "movement"
	CategoryWorld    = "world"
	CategorySystem   = "system"
)

// Handler identifiers mapping commands to game loop actions.
const (
	HandlerMove = "move"
	HandlerLook = "look"
	HandlerMap  = "map"
	HandlerHelp = "help"
	HandlerQuit = "quit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage is the syntax shown in the help menu. Empty means Name alone.
	Usage string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command (movement, world, system).
	Category string
	// Handler maps to the game loop action.
	Handler string
}

// Syntax returns the usage string shown in the help menu.
func (c *Command) Syntax() string {
	if c.Usage != "" {
		return c.Usage
	}
	return c.Name
}

// BuiltinCommands returns all built-in commands in help menu order.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "go", Usage: "go north/south/east/west", Help: "Move through an exit", Category: CategoryMovement, Handler: HandlerMove},
		{Name: "look", Help: "Examine room", Category: CategoryWorld, Handler: HandlerLook},
		{Name: "map", Help: "Show game map", Category: CategoryWorld, Handler: HandlerMap},
		{Name: "help", Help: "This menu", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit"}, Help: "Exit game", Category: CategorySystem, Handler: HandlerQuit},
	}
}
