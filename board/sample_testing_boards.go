package board

// This file contains some sample board seeds, used mostly for testing.

// SampleSeed names a canonical seed.
type SampleSeed uint64

const (
	// MidGame has pieces of both colors spread along the shared stretch,
	// with captures available for either side on most rolls.
	MidGame SampleSeed = 174518804524

	// WhiteWon has all seven white pieces in WE.
	WhiteWon SampleSeed = 599282155520

	// BlackWon has all seven black pieces in BE.
	BlackWon SampleSeed = 966988398624

	// CenterGuarded has a lone white piece on 5 and a black piece resting
	// on the center rosette.
	CenterGuarded SampleSeed = 104690356224

	// CenterBlocked is like CenterGuarded with another black piece on 9.
	CenterBlocked SampleSeed = 87512584192

	// PastCenter has a white piece on 9 and the center empty.
	PastCenter SampleSeed = 104422969344

	// LateGame has six black pieces home and one just entered on B1, while
	// white still has pieces on W14, 11 and 12.
	LateGame SampleSeed = 829549445216

	// WhiteOneLeft has six white pieces home and the last one still in WS.
	WhiteOneLeft SampleSeed = 597403107328
)

// Board decodes a sample seed. It panics if the sample is malformed.
func (s SampleSeed) Board() *Board {
	b, err := Decode(uint64(s), true)
	if err != nil {
		panic(err)
	}
	return b
}
