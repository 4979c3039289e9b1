package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidSeedText = errors.New("invalid seed text")

// ParseSeed reads a seed written in the given base, which must be 2, 10, or
// 0. Base 0 picks binary for text starting with "0b" and decimal otherwise.
// Binary text may always carry the "0b" prefix.
func ParseSeed(text string, base int) (uint64, error) {
	text = strings.TrimSpace(text)
	lower := strings.ToLower(text)
	switch base {
	case 0:
		base = 10
		if strings.HasPrefix(lower, "0b") {
			base = 2
		}
	case 2, 10:
	default:
		return 0, fmt.Errorf("%w: unsupported base %d", ErrInvalidSeedText, base)
	}
	if base == 2 {
		text = strings.TrimPrefix(lower, "0b")
	}
	if text == "" {
		return 0, fmt.Errorf("%w: empty seed", ErrInvalidSeedText)
	}
	seed, err := strconv.ParseUint(text, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSeedText, err)
	}
	return seed, nil
}

// FormatSeed writes a seed in decimal, or in binary zero-padded to width
// bits without a prefix.
func FormatSeed(seed uint64, width int, binary bool) string {
	if binary {
		return fmt.Sprintf("%0*b", width, seed)
	}
	return strconv.FormatUint(seed, 10)
}
