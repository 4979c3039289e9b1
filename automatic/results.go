package automatic

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/aybabtme/uniplot/histogram"
	"gopkg.in/yaml.v3"

	"github.com/domino14/royalur/game"
	"github.com/domino14/royalur/stats"
)

const (
	tableWidth  = 120
	columnWidth = 20
)

// PairingResult tallies the games of one pairing.
type PairingResult struct {
	White      string  `yaml:"white"`
	Black      string  `yaml:"black"`
	Games      int     `yaml:"games"`
	WhiteWins  int     `yaml:"white_wins"`
	BlackWins  int     `yaml:"black_wins"`
	Unfinished int     `yaml:"unfinished"`
	MeanTurns  float64 `yaml:"mean_turns"`

	// Wilson interval on white's win rate.
	WhiteWinLow  float64 `yaml:"white_win_low"`
	WhiteWinHigh float64 `yaml:"white_win_high"`

	turns stats.Running
}

func (pr *PairingResult) WhiteWinRate() stats.WinRate {
	return stats.WinRate{Wins: pr.WhiteWins, Games: pr.WhiteWins + pr.BlackWins}
}

// Results hold everything a tournament produced.
type Results struct {
	Players  []string `yaml:"players"`
	NumGames int      `yaml:"games_per_pairing"`
	SelfPlay bool     `yaml:"self_play"`
	// Wins[a][b] is the number of games a won against b. In a player's
	// games against itself only wins with white are counted.
	Wins     map[string]map[string]int `yaml:"wins"`
	Pairings []*PairingResult          `yaml:"pairings"`

	MeanTurns  float64 `yaml:"mean_turns"`
	StdevTurns float64 `yaml:"stdev_turns"`

	turns   stats.Running
	lengths []float64
}

func newResults(players []string, numGames int, selfPlay bool) *Results {
	r := &Results{
		Players:  players,
		NumGames: numGames,
		SelfPlay: selfPlay,
		Wins:     make(map[string]map[string]int, len(players)),
	}
	for _, p := range players {
		r.Wins[p] = make(map[string]int, len(players))
	}
	return r
}

func (r *Results) pairing(p Pairing) *PairingResult {
	pr := &PairingResult{White: p.White, Black: p.Black}
	r.Pairings = append(r.Pairings, pr)
	return pr
}

func (r *Results) record(pr *PairingResult, state game.PlayState, turns int) {
	pr.Games++
	switch state {
	case game.WhiteWon:
		pr.WhiteWins++
		r.Wins[pr.White][pr.Black]++
	case game.BlackWon:
		pr.BlackWins++
		if pr.White != pr.Black {
			r.Wins[pr.Black][pr.White]++
		}
	default:
		pr.Unfinished++
		return
	}
	pr.turns.Push(float64(turns))
	pr.MeanTurns = pr.turns.Mean()
	pr.WhiteWinLow, pr.WhiteWinHigh = pr.WhiteWinRate().Interval(95)

	r.turns.Push(float64(turns))
	r.MeanTurns = r.turns.Mean()
	r.StdevTurns = r.turns.Stdev()
	r.lengths = append(r.lengths, float64(turns))
}

// GamesFinished counts games that ended with a winner.
func (r *Results) GamesFinished() int {
	return r.turns.Count()
}

func center(s string, width int, fill string) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(fill, left) + s + strings.Repeat(fill, pad-left)
}

// WriteTable prints the win matrix. Each cell shows how often the row
// player beat the column player.
func (r *Results) WriteTable(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString(center("TOURNAMENT RESULTS", tableWidth, "_") + "\n")
	sb.WriteString(center("", columnWidth, " "))
	for _, name := range r.Players {
		sb.WriteString(center(name, columnWidth, " "))
	}
	sb.WriteString("\n")
	for _, row := range r.Players {
		sb.WriteString(center(row, columnWidth, " "))
		for _, col := range r.Players {
			cell := "/"
			if row != col || r.SelfPlay {
				cell = fmt.Sprintf("%d/%d", r.Wins[row][col], r.NumGames)
			}
			sb.WriteString(center(cell, columnWidth, " "))
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteSummary prints per-pairing win rates and game lengths.
func (r *Results) WriteSummary(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Games finished: %d\n", r.GamesFinished())
	fmt.Fprintf(&sb, "Turns per game: mean %.2f  stdev %.2f  min %.0f  max %.0f\n",
		r.turns.Mean(), r.turns.Stdev(), r.turns.Min(), r.turns.Max())
	for _, pr := range r.Pairings {
		fmt.Fprintf(&sb, "%s (white) vs %s (black): white won %v, mean turns %.2f",
			pr.White, pr.Black, pr.WhiteWinRate(), pr.MeanTurns)
		if pr.Unfinished > 0 {
			fmt.Fprintf(&sb, ", %d unfinished", pr.Unfinished)
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteHistogram draws the distribution of game lengths.
func (r *Results) WriteHistogram(w io.Writer, bins, width int) error {
	if len(r.lengths) == 0 {
		_, err := io.WriteString(w, "no finished games\n")
		return err
	}
	h := histogram.Hist(bins, r.lengths)
	return histogram.Fprint(w, h, histogram.Linear(width))
}

// WriteYAML exports the results.
func (r *Results) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
