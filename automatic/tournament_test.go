package automatic

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"

	"github.com/domino14/royalur/board"
)

func testRNG() *frand.RNG {
	return frand.NewCustom(make([]byte, 32), 1024, 12)
}

func TestPairings(t *testing.T) {
	is := is.New(t)
	players := []string{"a", "b", "c"}
	is.Equal(Pairings(players, false), []Pairing{
		{"a", "b"}, {"a", "c"}, {"b", "c"},
	})
	is.Equal(Pairings(players, true), []Pairing{
		{"a", "a"}, {"a", "b"}, {"a", "c"}, {"b", "b"}, {"b", "c"}, {"c", "c"},
	})
	is.Equal(len(Pairings([]string{"a"}, false)), 0)
}

func TestNewTournamentValidation(t *testing.T) {
	is := is.New(t)
	_, err := NewTournament(Options{Players: []string{"greedy"}, NumGames: 1, BoardSeed: board.DefaultSeed})
	is.True(err != nil)
	_, err = NewTournament(Options{Players: []string{"greedy", "alphazero"}, NumGames: 1, BoardSeed: board.DefaultSeed})
	is.True(err != nil)
	_, err = NewTournament(Options{Players: []string{"greedy", "random"}, NumGames: 0, BoardSeed: board.DefaultSeed})
	is.True(err != nil)
	_, err = NewTournament(Options{Players: []string{"greedy", "random"}, NumGames: 1, BoardSeed: 0})
	is.True(err != nil)
	_, err = NewTournament(Options{Players: []string{"greedy", "random"}, NumGames: 2,
		BoardSeed: board.DefaultSeed, GameSeeds: make([][32]byte, 1)})
	is.True(err != nil)
}

func TestRunTournament(t *testing.T) {
	is := is.New(t)
	var turnLog bytes.Buffer
	tour, err := NewTournament(Options{
		Players:   []string{"greedy", "random", "casper"},
		NumGames:  20,
		BoardSeed: board.DefaultSeed,
		RNG:       testRNG(),
		TurnLog:   &turnLog,
	})
	is.NoErr(err)
	is.Equal(tour.NumGames(), 60)
	results, err := tour.Run(context.Background())
	is.NoErr(err)

	is.Equal(len(results.Pairings), 3)
	is.Equal(results.GamesFinished(), 60)
	for _, pr := range results.Pairings {
		is.Equal(pr.Games, 20)
		is.Equal(pr.WhiteWins+pr.BlackWins, 20)
		is.Equal(results.Wins[pr.White][pr.Black]+results.Wins[pr.Black][pr.White], 20)
		is.True(pr.MeanTurns > 0)
		is.True(pr.WhiteWinLow <= pr.WhiteWinHigh)
	}

	var table bytes.Buffer
	is.NoErr(results.WriteTable(&table))
	lines := strings.Split(strings.TrimRight(table.String(), "\n"), "\n")
	is.Equal(len(lines), 5)
	is.Equal(len(lines[0]), tableWidth)
	is.True(strings.HasPrefix(lines[0], strings.Repeat("_", 51)+"TOURNAMENT RESULTS"))
	is.Equal(len(lines[1]), 4*columnWidth)
	is.True(strings.Contains(lines[2], center("/", columnWidth, " ")))

	summary, err := AnalyzeTurnLog(&turnLog)
	is.NoErr(err)
	is.True(strings.Contains(summary, "Games played: 60\n"))
	is.True(strings.Contains(summary, "Unfinished: 0\n"))
}

func TestSelfPlayCountsWhiteOnly(t *testing.T) {
	is := is.New(t)
	tour, err := NewTournament(Options{
		Players:   []string{"random"},
		NumGames:  30,
		SelfPlay:  true,
		BoardSeed: board.DefaultSeed,
		RNG:       testRNG(),
	})
	is.NoErr(err)
	results, err := tour.Run(context.Background())
	is.NoErr(err)
	pr := results.Pairings[0]
	is.Equal(results.Wins["random"]["random"], pr.WhiteWins)

	var table bytes.Buffer
	is.NoErr(results.WriteTable(&table))
	is.True(strings.Contains(table.String(), center(
		strconv.Itoa(pr.WhiteWins)+"/30", columnWidth, " ")))
}

func TestGameSeedsReplay(t *testing.T) {
	is := is.New(t)
	seeds, err := GenerateSeeds(4)
	is.NoErr(err)
	run := func() string {
		var turnLog bytes.Buffer
		tour, err := NewTournament(Options{
			Players:   []string{"greedy", "casper"},
			NumGames:  4,
			BoardSeed: board.DefaultSeed,
			GameSeeds: seeds,
			TurnLog:   &turnLog,
		})
		is.NoErr(err)
		_, err = tour.Run(context.Background())
		is.NoErr(err)
		// Drop game IDs, which differ between runs.
		var rows []string
		for _, line := range strings.Split(turnLog.String(), "\n") {
			if _, rest, ok := strings.Cut(line, ","); ok {
				rows = append(rows, rest)
			}
		}
		return strings.Join(rows, "\n")
	}
	is.Equal(run(), run())
}

func TestRunCancelled(t *testing.T) {
	is := is.New(t)
	tour, err := NewTournament(Options{
		Players:   []string{"greedy", "random"},
		NumGames:  10,
		BoardSeed: board.DefaultSeed,
		RNG:       testRNG(),
	})
	is.NoErr(err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := tour.Run(ctx)
	is.True(err != nil)
	is.Equal(results.GamesFinished(), 0)
}

func TestTurnLimitCountsUnfinished(t *testing.T) {
	is := is.New(t)
	tour, err := NewTournament(Options{
		Players:   []string{"first", "random"},
		NumGames:  5,
		BoardSeed: board.DefaultSeed,
		RNG:       testRNG(),
		TurnLimit: 4,
	})
	is.NoErr(err)
	results, err := tour.Run(context.Background())
	is.NoErr(err)
	is.Equal(results.Pairings[0].Unfinished, 5)
	is.Equal(results.GamesFinished(), 0)
}

func TestOutputs(t *testing.T) {
	is := is.New(t)
	tour, err := NewTournament(Options{
		Players:   []string{"greedy", "casper"},
		NumGames:  10,
		BoardSeed: board.DefaultSeed,
		RNG:       testRNG(),
	})
	is.NoErr(err)
	results, err := tour.Run(context.Background())
	is.NoErr(err)

	var buf bytes.Buffer
	is.NoErr(results.WriteYAML(&buf))
	is.True(strings.Contains(buf.String(), "games_per_pairing: 10"))
	is.True(strings.Contains(buf.String(), "white: greedy"))

	buf.Reset()
	is.NoErr(results.WriteSummary(&buf))
	is.True(strings.Contains(buf.String(), "Games finished: 10"))
	is.True(strings.Contains(buf.String(), "greedy (white) vs casper (black)"))

	buf.Reset()
	is.NoErr(results.WriteHistogram(&buf, 5, 40))
	is.True(buf.Len() > 0)

	buf.Reset()
	is.NoErr(newResults(nil, 1, false).WriteHistogram(&buf, 5, 40))
	is.Equal(buf.String(), "no finished games\n")
}

func TestSeedsRoundTrip(t *testing.T) {
	is := is.New(t)
	seeds, err := GenerateSeeds(3)
	is.NoErr(err)
	var buf bytes.Buffer
	is.NoErr(WriteSeeds(seeds, &buf))
	read, err := ReadSeeds(&buf)
	is.NoErr(err)
	is.Equal(read, seeds)

	_, err = ReadSeeds(strings.NewReader("AAAA\n"))
	is.True(err != nil)

	s := SeedFromInt(42)
	is.Equal(s[0], byte(42))
}

func TestSeedFiles(t *testing.T) {
	is := is.New(t)
	path := filepath.Join(t.TempDir(), "seeds.txt")
	_, err := LoadSeeds(path)
	is.True(errors.Is(err, os.ErrNotExist))

	seeds, err := GenerateSeeds(5)
	is.NoErr(err)
	is.NoErr(SaveSeeds(seeds, path))
	loaded, err := LoadSeeds(path)
	is.NoErr(err)
	is.Equal(loaded, seeds)

	_, err = GenerateSeeds(-1)
	is.True(err != nil)
}
