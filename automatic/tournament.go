// Package automatic plays computer players against each other and collects
// the results.
package automatic

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/royalur/board"
	"github.com/domino14/royalur/game"
	"github.com/domino14/royalur/player"
)

var GamesPlayed *expvar.Int

func init() {
	GamesPlayed = expvar.NewInt("gamesPlayed")
}

// Pairing seats two players, one per color.
type Pairing struct {
	White string
	Black string
}

// Pairings seats every pair of distinct players once, with the player
// listed first taking white. With selfPlay every player also meets itself.
func Pairings(players []string, selfPlay bool) []Pairing {
	var pairings []Pairing
	for i := range players {
		start := i + 1
		if selfPlay {
			start = i
		}
		for j := start; j < len(players); j++ {
			pairings = append(pairings, Pairing{White: players[i], Black: players[j]})
		}
	}
	return pairings
}

// Options configure a tournament.
type Options struct {
	Players  []string
	NumGames int
	SelfPlay bool
	// BoardSeed is the canonical seed every game starts from.
	BoardSeed uint64
	// RNG drives dice and players for every game. A nil RNG is seeded from
	// the system.
	RNG *frand.RNG
	// GameSeeds, if set, gives each game its own generator instead, so
	// that individual games can be replayed.
	GameSeeds [][32]byte
	// TurnLimit ends runaway games; they are counted as unfinished.
	TurnLimit int
	// TurnLog receives a CSV row for every turn played.
	TurnLog io.Writer
	Logger  zerolog.Logger
}

type Tournament struct {
	opts     Options
	pairings []Pairing
	turnLog  *TurnLogger
}

func NewTournament(opts Options) (*Tournament, error) {
	opts.Players = lo.Uniq(opts.Players)
	if len(opts.Players) == 0 || (len(opts.Players) == 1 && !opts.SelfPlay) {
		return nil, errors.New("need at least two players, or one with self-play")
	}
	for _, name := range opts.Players {
		if _, err := player.New(name, nil); err != nil {
			return nil, err
		}
	}
	if opts.NumGames <= 0 {
		return nil, fmt.Errorf("number of games must be positive, got %d", opts.NumGames)
	}
	if _, err := board.Decode(opts.BoardSeed, true); err != nil {
		return nil, fmt.Errorf("starting board: %w", err)
	}
	t := &Tournament{opts: opts, pairings: Pairings(opts.Players, opts.SelfPlay)}
	if n := len(t.pairings) * opts.NumGames; opts.GameSeeds != nil && len(opts.GameSeeds) < n {
		return nil, fmt.Errorf("have %d game seeds but %d games to play", len(opts.GameSeeds), n)
	}
	if t.opts.RNG == nil {
		t.opts.RNG = frand.New()
	}
	if opts.TurnLog != nil {
		tl, err := NewTurnLogger(opts.TurnLog)
		if err != nil {
			return nil, err
		}
		t.turnLog = tl
	}
	return t, nil
}

// NumGames is the total number of games the tournament will play.
func (t *Tournament) NumGames() int {
	return len(t.pairings) * t.opts.NumGames
}

// Run plays every game in turn. If ctx is cancelled the games played so far
// are returned along with the context's error.
func (t *Tournament) Run(ctx context.Context) (*Results, error) {
	results := newResults(t.opts.Players, t.opts.NumGames, t.opts.SelfPlay)
	log := t.opts.Logger
	log.Debug().Int("pairings", len(t.pairings)).Int("games", t.NumGames()).Msg("starting-tournament")

	gameIdx := 0
	for _, p := range t.pairings {
		pr := results.pairing(p)
		for i := 0; i < t.opts.NumGames; i++ {
			select {
			case <-ctx.Done():
				log.Info().Int("played", gameIdx).Msg("got stop signal, exiting early")
				return results, t.flush(ctx.Err())
			default:
			}
			state, turns, err := t.playGame(p, gameIdx)
			if err != nil && !errors.Is(err, game.ErrTurnLimit) {
				return nil, errors.Join(err, t.flush(nil))
			}
			results.record(pr, state, turns)
			gameIdx++
			GamesPlayed.Add(1)
			if gameIdx%1000 == 0 {
				log.Info().Int("played", gameIdx).Msg("games-played")
			}
		}
	}
	log.Info().Int("played", gameIdx).Msg("tournament-finished")
	return results, t.flush(nil)
}

func (t *Tournament) flush(err error) error {
	if t.turnLog == nil {
		return err
	}
	return errors.Join(err, t.turnLog.Flush())
}

func (t *Tournament) playGame(p Pairing, gameIdx int) (game.PlayState, int, error) {
	rng := t.opts.RNG
	if t.opts.GameSeeds != nil {
		seed := t.opts.GameSeeds[gameIdx]
		rng = frand.NewCustom(seed[:], 1024, 12)
	}
	white, err := player.New(p.White, rng)
	if err != nil {
		return game.InProgress, 0, err
	}
	black, err := player.New(p.Black, rng)
	if err != nil {
		return game.InProgress, 0, err
	}
	observers := game.MultiObserver{game.LogObserver{Logger: t.opts.Logger}}
	if t.turnLog != nil {
		observers = append(observers, t.turnLog)
	}
	g, err := game.NewGame(white, black,
		game.WithSeed(t.opts.BoardSeed),
		game.WithRNG(rng),
		game.WithObserver(observers),
		game.WithTurnLimit(t.opts.TurnLimit))
	if err != nil {
		return game.InProgress, 0, err
	}
	state, err := g.Play()
	return state, g.Turn(), err
}
