// Package codec converts boards to and from the integer seed layouts in use:
// the 40-bit canonical layout the board package works with, and a 64-bit
// alternate layout laid out along each color's track.
package codec

import (
	"fmt"
	"strings"

	"github.com/domino14/royalur/board"
)

// A Codec packs boards into integer seeds of a particular layout.
type Codec interface {
	Name() string
	// Width is the number of significant bits in a seed.
	Width() int
	Encode(b *board.Board) uint64
	Decode(seed uint64, verify bool) (*board.Board, error)
}

var (
	Canonical Codec = canonical{}
	Alternate Codec = alternate{}
)

var codecs = []Codec{Canonical, Alternate}

// ByName returns the codec with the given name ("canonical" or "alternate").
func ByName(name string) (Codec, error) {
	for _, c := range codecs {
		if strings.EqualFold(c.Name(), name) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("unknown seed layout %q", name)
}

// Translate decodes a seed with one codec and encodes the result with
// another.
func Translate(seed uint64, from, to Codec, verify bool) (uint64, error) {
	b, err := from.Decode(seed, verify)
	if err != nil {
		return 0, err
	}
	return to.Encode(b), nil
}

// CanonicalToAlternate translates a canonical seed. The outcome bits of the
// result are always set, so translating back only recovers the seed through
// AlternateLogicalMask.
func CanonicalToAlternate(seed uint64, verify bool) (uint64, error) {
	return Translate(seed, Canonical, Alternate, verify)
}

// AlternateToCanonical translates an alternate seed.
func AlternateToCanonical(seed uint64, verify bool) (uint64, error) {
	return Translate(seed, Alternate, Canonical, verify)
}

// ParseDirection reads a direction of the form "<from>-to-<to>", such as
// "canonical-to-alternate".
func ParseDirection(dir string) (from, to Codec, err error) {
	src, dst, ok := strings.Cut(dir, "-to-")
	if !ok {
		return nil, nil, fmt.Errorf("direction %q should look like canonical-to-alternate", dir)
	}
	if from, err = ByName(src); err != nil {
		return nil, nil, err
	}
	if to, err = ByName(dst); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}
