package game

import "github.com/rs/zerolog"

// An Observer is told about everything that happens in a game. Turns on
// which nothing moved are reported through MoveApplied with a nil Move.
type Observer interface {
	TurnStarted(g *Game, roll int)
	MoveApplied(g *Game, t Turn)
	GameEnded(g *Game, result PlayState)
}

// NopObserver ignores everything.
type NopObserver struct{}

func (NopObserver) TurnStarted(*Game, int) {}
func (NopObserver) MoveApplied(*Game, Turn) {}
func (NopObserver) GameEnded(*Game, PlayState) {}

// LogObserver writes game events to a zerolog logger, turns at debug level
// and results at info level.
type LogObserver struct {
	Logger zerolog.Logger
}

func (o LogObserver) TurnStarted(g *Game, roll int) {
	o.Logger.Debug().Str("game", g.ID().String()).Int("turn", g.Turn()).
		Bool("white", g.WhiteOnTurn()).Int("roll", roll).Msg("turn-started")
}

func (o LogObserver) MoveApplied(g *Game, t Turn) {
	evt := o.Logger.Debug().Str("game", g.ID().String()).Int("turn", t.Number).
		Str("player", t.Player).Int("roll", t.Roll).Uint64("seed", t.Seed)
	if t.Passed() {
		evt.Msg("passed")
		return
	}
	evt.Stringer("move", t.Move).Str("flags", t.Move.Flags().String()).Msg("move-applied")
}

func (o LogObserver) GameEnded(g *Game, result PlayState) {
	white, black := g.Players()
	o.Logger.Info().Str("game", g.ID().String()).Str("white", white.Name()).
		Str("black", black.Name()).Int("turns", g.Turn()).
		Stringer("result", result).Msg("game-ended")
}

// MultiObserver fans events out to several observers in order.
type MultiObserver []Observer

func (m MultiObserver) TurnStarted(g *Game, roll int) {
	for _, o := range m {
		o.TurnStarted(g, roll)
	}
}

func (m MultiObserver) MoveApplied(g *Game, t Turn) {
	for _, o := range m {
		o.MoveApplied(g, t)
	}
}

func (m MultiObserver) GameEnded(g *Game, result PlayState) {
	for _, o := range m {
		o.GameEnded(g, result)
	}
}
