package automatic

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/samber/lo"

	"github.com/domino14/royalur/board"
	"github.com/domino14/royalur/cell"
	"github.com/domino14/royalur/stats"
)

type loggedGame struct {
	white, black string
	turns        int
	lastSeed     uint64
}

// AnalyzeLogFile reads a turn log written by TurnLogger and summarizes it.
func AnalyzeLogFile(filepath string) (string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return AnalyzeTurnLog(file)
}

// AnalyzeTurnLog summarizes a CSV turn log: how many games were played,
// how often white won, and how long games ran. The winner of each game is
// read off the seed logged with its last turn.
func AnalyzeTurnLog(in io.Reader) (string, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = len(turnLogHeader)

	games := map[string]*loggedGame{}
	var order []string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if record[0] == turnLogHeader[0] {
			continue
		}
		seed, err := strconv.ParseUint(record[9], 10, 64)
		if err != nil {
			return "", fmt.Errorf("bad seed in turn log: %w", err)
		}
		g, ok := games[record[0]]
		if !ok {
			g = &loggedGame{white: record[1], black: record[2]}
			games[record[0]] = g
			order = append(order, record[0])
		}
		g.turns++
		g.lastSeed = seed
	}

	turns := &stats.Running{}
	whiteWins, unfinished := 0, 0
	playerWins := map[string]int{}
	for _, id := range order {
		g := games[id]
		b, err := board.Decode(g.lastSeed, false)
		if err != nil {
			return "", fmt.Errorf("game %s: %w", id, err)
		}
		switch b.Winner() {
		case cell.White:
			whiteWins++
			playerWins[g.white]++
		case cell.Black:
			playerWins[g.black]++
		default:
			unfinished++
			continue
		}
		turns.Push(float64(g.turns))
	}

	finished := len(order) - unfinished
	wr := stats.WinRate{Wins: whiteWins, Games: finished}
	summary := fmt.Sprintf("Games played: %d\n", len(order))
	summary += fmt.Sprintf("Unfinished: %d\n", unfinished)
	summary += fmt.Sprintf("White wins: %v\n", wr)
	summary += fmt.Sprintf("Turns: mean %.3f  stdev %.3f\n", turns.Mean(), turns.Stdev())
	for _, name := range sortedKeys(playerWins) {
		summary += fmt.Sprintf("%s wins: %d\n", name, playerWins[name])
	}
	return summary, nil
}

func sortedKeys(m map[string]int) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
