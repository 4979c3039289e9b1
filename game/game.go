// Package game runs a game of Ur between two players.
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/royalur/board"
	"github.com/domino14/royalur/cell"
	"github.com/domino14/royalur/move"
	"github.com/domino14/royalur/player"
)

// PlayState is where the game stands.
type PlayState uint8

const (
	InProgress PlayState = iota
	WhiteWon
	BlackWon
)

func (p PlayState) String() string {
	switch p {
	case InProgress:
		return "in progress"
	case WhiteWon:
		return "white won"
	case BlackWon:
		return "black won"
	}
	return fmt.Sprintf("PlayState(%d)", uint8(p))
}

var (
	ErrInvalidMoveOnBoard = errors.New("player chose a move that is not available")
	ErrTurnLimit          = errors.New("turn limit reached")
	ErrGameOver           = errors.New("game is already over")
)

// Turn records what happened on one turn.
type Turn struct {
	Number int
	White  bool
	Player string
	Roll   int
	// Move is nil when the turn was passed, either on a roll of zero or
	// because nothing could move.
	Move *move.Move
	// Seed is the canonical seed of the board after the turn.
	Seed uint64
}

// Passed reports whether the player on turn did not move.
func (t Turn) Passed() bool {
	return t.Move == nil
}

// Game drives one game. It owns its board; players only ever see it while
// choosing a move.
type Game struct {
	id          uuid.UUID
	board       *board.Board
	white       player.Player
	black       player.Player
	whiteOnTurn bool
	turn        int
	turnLimit   int
	playing     PlayState

	rng      *frand.RNG
	observer Observer

	startSeed uint64
}

// Option configures a new game.
type Option func(*Game)

// WithSeed starts the game from the given canonical seed instead of the
// default starting position.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.startSeed = seed
	}
}

// WithRNG sets the generator used for the dice.
func WithRNG(rng *frand.RNG) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

func WithObserver(o Observer) Option {
	return func(g *Game) {
		g.observer = o
	}
}

// WithTurnLimit stops Play with ErrTurnLimit after n turns. Zero means no
// limit.
func WithTurnLimit(n int) Option {
	return func(g *Game) {
		g.turnLimit = n
	}
}

// NewGame sets up a game with white to move first.
func NewGame(white, black player.Player, opts ...Option) (*Game, error) {
	if white == nil || black == nil {
		return nil, fmt.Errorf("%w: both seats need a player", player.ErrInvalidPlayer)
	}
	g := &Game{
		id:          uuid.New(),
		white:       white,
		black:       black,
		whiteOnTurn: true,
		startSeed:   board.DefaultSeed,
		observer:    NopObserver{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = frand.New()
	}
	b, err := board.Decode(g.startSeed, true)
	if err != nil {
		return nil, err
	}
	g.board = b
	g.playing = stateOf(b)
	return g, nil
}

func stateOf(b *board.Board) PlayState {
	switch b.Winner() {
	case cell.White:
		return WhiteWon
	case cell.Black:
		return BlackWon
	}
	return InProgress
}

func (g *Game) ID() uuid.UUID { return g.id }
func (g *Game) Board() *board.Board { return g.board }
func (g *Game) Turn() int { return g.turn }
func (g *Game) WhiteOnTurn() bool { return g.whiteOnTurn }
func (g *Game) Playing() PlayState { return g.playing }

// PlayerOnTurn is the player whose turn it is.
func (g *Game) PlayerOnTurn() player.Player {
	if g.whiteOnTurn {
		return g.white
	}
	return g.black
}

// Players returns the white and black players.
func (g *Game) Players() (white, black player.Player) {
	return g.white, g.black
}

// PlayTurn rolls the dice for the player on turn and plays the move they
// choose. The turn passes to the other player unless the move lands on a
// rosette.
func (g *Game) PlayTurn() (Turn, error) {
	if g.playing != InProgress {
		return Turn{}, ErrGameOver
	}
	p := g.PlayerOnTurn()
	roll := RollDice(g.rng)
	g.observer.TurnStarted(g, roll)

	t := Turn{Number: g.turn, White: g.whiteOnTurn, Player: p.Name(), Roll: roll}
	var moves []*move.Move
	if roll > 0 {
		moves = g.board.AvailableMoves(g.whiteOnTurn, roll)
	}
	keepTurn := false
	if len(moves) > 0 {
		chosen := p.SelectMove(g.board, moves, g.whiteOnTurn)
		if chosen == nil {
			return t, fmt.Errorf("%w: %s chose nothing", ErrInvalidMoveOnBoard, p.Name())
		}
		// Play the generated move, so only its flags count.
		m, ok := lo.Find(moves, func(o *move.Move) bool { return o.Key() == chosen.Key() })
		if !ok {
			return t, fmt.Errorf("%w: %s chose %v", ErrInvalidMoveOnBoard, p.Name(), chosen)
		}
		g.board.Apply(m)
		t.Move = m
		keepTurn = m.IsRosette()
	}
	t.Seed = g.board.Encode()
	g.turn++
	g.observer.MoveApplied(g, t)

	g.playing = stateOf(g.board)
	if g.playing != InProgress {
		g.observer.GameEnded(g, g.playing)
		return t, nil
	}
	if !keepTurn {
		g.whiteOnTurn = !g.whiteOnTurn
	}
	return t, nil
}

// Play plays turns until someone wins.
func (g *Game) Play() (PlayState, error) {
	for g.playing == InProgress {
		if g.turnLimit > 0 && g.turn >= g.turnLimit {
			return g.playing, fmt.Errorf("%w: %d turns", ErrTurnLimit, g.turn)
		}
		if _, err := g.PlayTurn(); err != nil {
			return g.playing, err
		}
	}
	return g.playing, nil
}
