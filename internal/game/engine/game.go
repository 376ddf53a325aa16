// Package engine provides the turn loop that drives a play-through.
package engine

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dragons-escape/internal/game/command"
	"github.com/cory-johannsen/dragons-escape/internal/game/session"
	"github.com/cory-johannsen/dragons-escape/internal/game/world"
)

// Game holds everything one play-through needs.
type Game struct {
	registry  *world.Registry
	interp    *command.Interpreter
	presenter Presenter
	input     *bufio.Reader
	state     *session.State
	logger    *zap.Logger
}

// Option customizes a Game.
type Option func(*Game)

// WithInterpreter replaces the built-in command interpreter.
func WithInterpreter(interp *command.Interpreter) Option {
	return func(g *Game) { g.interp = interp }
}

// WithState starts the game from an existing session state.
func WithState(state *session.State) Option {
	return func(g *Game) { g.state = state }
}

// NewGame creates a game positioned in the registry's start room.
//
// Precondition: registry, presenter, input and logger must be non-nil.
// Postcondition: Returns a Game ready to Run.
func NewGame(registry *world.Registry, presenter Presenter, input io.Reader, logger *zap.Logger, opts ...Option) *Game {
	g := &Game{
		registry:  registry,
		interp:    command.NewInterpreter(command.DefaultRegistry()),
		presenter: presenter,
		input:     bufio.NewReader(input),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.state == nil {
		g.state = session.NewState(registry.StartRoom().ID)
	}
	g.logger = g.logger.With(zap.String("session", g.state.ID))
	return g
}

// State returns a copy of the current session state.
func (g *Game) State() session.State {
	return *g.state
}

// Run shows the title screen and plays turns until the player quits, input
// ends or fails, or ctx is cancelled. Cancellation is observed between turns;
// a read already blocked on input is not interrupted.
//
// Postcondition: Returns nil on every player-visible ending; a non-nil error
// means the world is inconsistent.
func (g *Game) Run(ctx context.Context) error {
	g.logger.Debug("session started",
		zap.String("room", g.state.RoomID),
		zap.Int("rooms", g.registry.RoomCount()),
	)

	g.presenter.Title()
	done, err := g.waitForEnter()
	if err != nil {
		return err
	}

	for !done {
		done, err = g.Turn(ctx)
		if err != nil {
			return err
		}
	}

	g.logger.Debug("session ended",
		zap.Int("turns", g.state.Turns),
		zap.Bool("treasure_found", g.state.TreasureFound),
		zap.Duration("elapsed", g.state.Elapsed()),
	)
	return nil
}

// Turn plays a single turn: render the current room, read one command and
// apply it. A cancelled ctx ends the session before anything is rendered.
//
// Postcondition: done is true once the session has ended.
func (g *Game) Turn(ctx context.Context) (done bool, err error) {
	if err := ctx.Err(); err != nil {
		g.logger.Debug("session cancelled", zap.Error(err))
		return true, nil
	}

	room, ok := g.registry.Get(g.state.RoomID)
	if !ok {
		return true, fmt.Errorf("current room %q: %w", g.state.RoomID, world.ErrRoomNotFound)
	}

	g.presenter.Room(room)
	if g.registry.IsTreasureRoom(room.ID) && g.state.MarkTreasureFound() {
		g.logger.Debug("treasure found",
			zap.String("room", room.ID),
			zap.Int("turns", g.state.Turns),
		)
		g.presenter.TreasureFound()
	}
	g.presenter.Compass(room.ExitSet())
	g.presenter.Prompt()

	line, err := g.readLine()
	if err != nil {
		return g.endOfInput(err)
	}
	g.state.Tick()

	action := g.interp.Interpret(line)
	g.logger.Debug("command",
		zap.String("kind", action.Kind.String()),
		zap.String("room", room.ID),
		zap.Int("turn", g.state.Turns),
	)
	return g.dispatch(room, action)
}

func (g *Game) dispatch(room *world.Room, action command.Action) (bool, error) {
	switch action.Kind {
	case command.Quit:
		g.presenter.Farewell()
		return true, nil
	case command.Look:
		g.presenter.Examine()
		g.presenter.Pause()
	case command.Help:
		g.presenter.Help(g.interp.Registry().Commands())
		return g.acknowledge()
	case command.ShowMap:
		g.presenter.Map()
		return g.acknowledge()
	case command.Move:
		if err := g.move(room, action.Direction); err != nil {
			return true, err
		}
		g.presenter.Pause()
	case command.Unknown:
		if !command.IsUserError(action.Err) {
			return true, fmt.Errorf("interpreting %q: %w", action.Text, action.Err)
		}
		g.logger.Debug("unrecognized input", zap.String("input", action.Text), zap.Error(action.Err))
		g.presenter.Error(action.Err)
		g.presenter.Pause()
	case command.NoOp:
	}
	return false, nil
}

// move leaves state untouched unless the exit exists.
func (g *Game) move(room *world.Room, dir world.Direction) error {
	target, err := g.registry.Navigate(room.ID, dir)
	if errors.Is(err, world.ErrNoExit) {
		g.presenter.Error(&command.InvalidDirectionError{Token: string(dir), Blocked: true})
		return nil
	}
	if err != nil {
		return fmt.Errorf("moving %s: %w", dir, err)
	}

	g.presenter.Moving(dir)
	g.state.MoveTo(target.ID)
	g.logger.Debug("moved",
		zap.String("from", room.ID),
		zap.String("to", target.ID),
		zap.String("direction", string(dir)),
	)
	return nil
}

// acknowledge asks the player to press ENTER and waits for it.
func (g *Game) acknowledge() (bool, error) {
	g.presenter.Continue()
	return g.waitForEnter()
}

func (g *Game) waitForEnter() (bool, error) {
	if _, err := g.readLine(); err != nil {
		return g.endOfInput(err)
	}
	return false, nil
}

// endOfInput treats a closed or failed input stream as a request to quit.
func (g *Game) endOfInput(err error) (bool, error) {
	if errors.Is(err, io.EOF) {
		g.logger.Debug("input closed")
	} else {
		g.logger.Warn("input failed, ending session", zap.Error(err))
	}
	g.presenter.Farewell()
	return true, nil
}

// readLine returns the next line without its terminator. A final line with no
// newline is returned before io.EOF.
func (g *Game) readLine() (string, error) {
	line, err := g.input.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
