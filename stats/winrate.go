package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// ZVal is the two-tailed z-value for a confidence given in percent.
func ZVal(confidence float64) float64 {
	return stdNormal.Quantile((1 + confidence/100) / 2)
}

// WinRate tallies wins over a number of games.
type WinRate struct {
	Wins  int
	Games int
}

func (w WinRate) Rate() float64 {
	if w.Games == 0 {
		return 0
	}
	return float64(w.Wins) / float64(w.Games)
}

// Interval returns the Wilson score interval for the win rate at the given
// confidence, expressed in percent (e.g. 95).
func (w WinRate) Interval(confidence float64) (lo, hi float64) {
	if w.Games == 0 {
		return 0, 1
	}
	z := ZVal(confidence)
	n := float64(w.Games)
	p := w.Rate()
	denom := 1 + z*z/n
	center := (p + z*z/(2*n)) / denom
	spread := z * math.Sqrt(p*(1-p)/n+z*z/(4*n*n)) / denom
	return math.Max(0, center-spread), math.Min(1, center+spread)
}

func (w WinRate) String() string {
	lo, hi := w.Interval(95)
	return fmt.Sprintf("%d/%d (%.1f%%, 95%% CI %.1f-%.1f%%)",
		w.Wins, w.Games, 100*w.Rate(), 100*lo, 100*hi)
}
