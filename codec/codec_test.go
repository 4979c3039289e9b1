package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/frand"

	"github.com/domino14/royalur/board"
	"github.com/domino14/royalur/cell"
)

func TestAlternateToCanonical(t *testing.T) {
	seed, err := AlternateToCanonical(
		0b0010111000000000000010000100000000100000000000001000010000000000, true)
	require.NoError(t, err)
	assert.Equal(t, uint64(87510499392), seed)

	seed, err = AlternateToCanonical(
		0b0110000000000000000000000010100000100000000000000000001000000000, true)
	require.NoError(t, err)
	assert.Equal(t, uint64(83751871040), seed)
}

func TestAlternateTooManyBlack(t *testing.T) {
	for _, verify := range []bool{true, false} {
		_, err := AlternateToCanonical(
			0b0000000000001010101010101010000000000000101010101010101000000000, verify)
		var pcErr *board.InvalidPieceCountError
		require.ErrorAs(t, err, &pcErr)
		assert.Equal(t, cell.Black, pcErr.Color)
		assert.Equal(t, 8, pcErr.Actual)
	}
}

func TestAlternateMirrorMismatch(t *testing.T) {
	alt, err := CanonicalToAlternate(uint64(board.MidGame), true)
	require.NoError(t, err)
	// Knock the white copy of square 5 out of line with the black copy.
	broken := alt ^ 0b11<<8
	_, err = AlternateToCanonical(broken, true)
	assert.True(t, errors.Is(err, ErrMirrorMismatch))

	// Without verification the white half wins.
	_, err = AlternateToCanonical(broken, false)
	assert.NoError(t, err)
}

func TestCanonicalToAlternate(t *testing.T) {
	for _, tc := range []struct {
		canonical, alternate uint64
	}{
		{board.DefaultSeed, 18374686479671623680},
		{uint64(board.MidGame), 15132694669066115664},
		{uint64(board.BlackWon), 9368894599886536704},
		{uint64(board.WhiteWon), 5766859322856308736},
	} {
		alt, err := CanonicalToAlternate(tc.canonical, true)
		require.NoError(t, err)
		assert.Equal(t, tc.alternate, alt)

		back, err := AlternateToCanonical(alt, true)
		require.NoError(t, err)
		assert.Equal(t, tc.canonical, back)
	}
}

func TestOutcomeBits(t *testing.T) {
	for _, tc := range []struct {
		seed    uint64
		outcome uint64
	}{
		{board.DefaultSeed, outcomeInProgress},
		{uint64(board.WhiteWon), outcomeWhiteWon},
		{uint64(board.BlackWon), outcomeBlackWon},
	} {
		alt, err := CanonicalToAlternate(tc.seed, true)
		require.NoError(t, err)
		assert.Equal(t, tc.outcome, alt>>outcomeShift)
	}
}

func TestCanonicalToAlternateRejectsBadTotals(t *testing.T) {
	_, err := CanonicalToAlternate(481040535615, true)
	assert.ErrorIs(t, err, board.ErrInvalidPieceCount)
}

// Random legal play should survive both directions of translation.
func TestRoundTripsOverPlay(t *testing.T) {
	rng := frand.NewCustom(make([]byte, 32), 1024, 12)
	for g := 0; g < 30; g++ {
		b := board.New()
		white := true
		for turn := 0; turn < 3000 && !b.IsEndState(); turn++ {
			moves := b.AvailableMoves(white, rng.Intn(4)+1)
			if len(moves) > 0 {
				b.Apply(moves[rng.Intn(len(moves))])
			}
			white = !white

			seed := b.Encode()
			alt, err := CanonicalToAlternate(seed, true)
			require.NoError(t, err)
			back, err := AlternateToCanonical(alt, true)
			require.NoError(t, err)
			require.Equal(t, seed, back)

			again, err := CanonicalToAlternate(back, true)
			require.NoError(t, err)
			require.Equal(t, alt&AlternateLogicalMask, again&AlternateLogicalMask)
		}
	}
}

func TestByNameAndDirection(t *testing.T) {
	c, err := ByName("Alternate")
	require.NoError(t, err)
	assert.Equal(t, 64, c.Width())
	_, err = ByName("rust")
	assert.Error(t, err)

	from, to, err := ParseDirection("alternate-to-canonical")
	require.NoError(t, err)
	assert.Equal(t, Alternate, from)
	assert.Equal(t, Canonical, to)
	assert.Equal(t, 40, to.Width())

	_, _, err = ParseDirection("alternate")
	assert.Error(t, err)
}

func TestParseSeed(t *testing.T) {
	for _, tc := range []struct {
		text     string
		base     int
		expected uint64
	}{
		{"122138132480", 10, 122138132480},
		{" 122138132480\n", 0, 122138132480},
		{"0b101", 0, 5},
		{"0B101", 2, 5},
		{"101", 2, 5},
	} {
		seed, err := ParseSeed(tc.text, tc.base)
		require.NoError(t, err, tc.text)
		assert.Equal(t, tc.expected, seed)
	}
	for _, tc := range []struct {
		text string
		base int
	}{
		{"", 0},
		{"0b", 0},
		{"12a", 10},
		{"102", 2},
		{"-4", 10},
		{"ff", 16},
	} {
		_, err := ParseSeed(tc.text, tc.base)
		assert.ErrorIs(t, err, ErrInvalidSeedText, tc.text)
	}
}

func TestFormatSeed(t *testing.T) {
	assert.Equal(t, "122138132480", FormatSeed(122138132480, 40, false))
	assert.Equal(t, "0000000101", FormatSeed(5, 10, true))
	assert.Equal(t, 40, len(FormatSeed(board.DefaultSeed, Canonical.Width(), true)))
}

func TestTranslateBatch(t *testing.T) {
	in := strings.Join([]string{
		"122138132480",
		"",
		"# a comment",
		"not a seed",
		"481040535615",
		"174518804524",
	}, "\n")
	var out bytes.Buffer
	lineErrs, err := TranslateBatch(strings.NewReader(in), &out, BatchOptions{
		From:   Canonical,
		To:     Alternate,
		Verify: true,
	})
	require.NoError(t, err)
	require.Len(t, lineErrs, 2)
	assert.Equal(t, 4, lineErrs[0].Line)
	assert.ErrorIs(t, lineErrs[0], ErrInvalidSeedText)
	assert.Equal(t, 5, lineErrs[1].Line)
	assert.ErrorIs(t, lineErrs[1], board.ErrInvalidPieceCount)
	assert.Equal(t, "18374686479671623680\n15132694669066115664\n", out.String())
}

func TestTranslateBatchBinary(t *testing.T) {
	var out bytes.Buffer
	lineErrs, err := TranslateBatch(strings.NewReader("15132694669066115664\n"), &out,
		BatchOptions{From: Alternate, To: Canonical, Verify: true, BinaryOutput: true})
	require.NoError(t, err)
	assert.Empty(t, lineErrs)
	assert.Equal(t, FormatSeed(174518804524, 40, true)+"\n", out.String())
}
