package automatic

import (
	"bufio"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"lukechampine.com/frand"
)

const seedFileHeader = "# one base64 generator seed per game, in play order"

// SeedFromInt expands a small integer, such as one typed on the command
// line, into a 32-byte generator seed.
func SeedFromInt(n uint64) [32]byte {
	var seed [32]byte
	binary.LittleEndian.PutUint64(seed[:8], n)
	return seed
}

// GenerateSeeds draws a fresh generator seed for each of n games.
func GenerateSeeds(n int) ([][32]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot generate %d seeds", n)
	}
	seeds := make([][32]byte, n)
	for i := range seeds {
		frand.Read(seeds[i][:])
	}
	return seeds, nil
}

func SaveSeeds(seeds [][32]byte, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating seed file: %w", err)
	}
	if err := WriteSeeds(seeds, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteSeeds writes a header comment, then one seed per line.
func WriteSeeds(seeds [][32]byte, w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, seedFileHeader)
	for _, seed := range seeds {
		fmt.Fprintln(bw, base64.RawURLEncoding.EncodeToString(seed[:]))
	}
	return bw.Flush()
}

// LoadSeeds reads seeds written by SaveSeeds.
func LoadSeeds(path string) ([][32]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()
	return ReadSeeds(f)
}

func decodeSeed(text string) ([32]byte, error) {
	var seed [32]byte
	raw, err := base64.RawURLEncoding.DecodeString(text)
	if err != nil {
		return seed, err
	}
	if len(raw) != len(seed) {
		return seed, fmt.Errorf("seed is %d bytes, want %d", len(raw), len(seed))
	}
	copy(seed[:], raw)
	return seed, nil
}

// ReadSeeds skips blank lines and '#' comments.
func ReadSeeds(r io.Reader) ([][32]byte, error) {
	var seeds [][32]byte
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		seed, err := decodeSeed(text)
		if err != nil {
			return nil, fmt.Errorf("seed file line %d: %w", line, err)
		}
		seeds = append(seeds, seed)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return seeds, nil
}
