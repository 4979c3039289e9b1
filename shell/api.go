package shell

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/royalur/board"
	"github.com/domino14/royalur/codec"
	"github.com/domino14/royalur/game"
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) standardModeSwitch(cmd *shellcmd) (*Response, error) {
	switch cmd.cmd {
	case "new":
		sc.board = board.New()
		sc.lastMoves = nil
		return msg(sc.board.ToDisplayText()), nil
	case "show":
		return sc.show(cmd)
	case "alt":
		return sc.showAlternate(cmd)
	case "seed":
		return sc.seed()
	case "moves":
		return sc.moves(cmd)
	case "roll":
		return sc.roll(cmd)
	case "play":
		return sc.play(cmd)
	case "vs":
		return sc.vs(cmd)
	case "file":
		return sc.file(cmd)
	case "format":
		if len(cmd.args) != 1 {
			return nil, errors.New("usage: format <decimal|binary|auto>")
		}
		if err := sc.setFormat(cmd.args[0]); err != nil {
			return nil, err
		}
		return msg("reading seeds as " + cmd.args[0]), nil
	case "help":
		if len(cmd.args) == 0 {
			usage(sc.out)
		} else {
			usageTopic(sc.out, cmd.args[0])
		}
		return nil, nil
	}
	// A bare seed is shown directly.
	if _, err := codec.ParseSeed(cmd.cmd, sc.inputBase); err == nil {
		return sc.show(&shellcmd{cmd: "show", args: []string{cmd.cmd}})
	}
	log.Debug().Msgf("you said: %v", strconv.Quote(cmd.cmd))
	return nil, fmt.Errorf("unknown command %q, try help", cmd.cmd)
}

func (sc *ShellController) setFormat(format string) error {
	switch format {
	case "decimal":
		sc.inputBase = 10
	case "binary":
		sc.inputBase = 2
	case "auto":
		sc.inputBase = 0
	default:
		return fmt.Errorf("unknown seed format %q", format)
	}
	return nil
}

// load decodes a seed into the current board. A board with the wrong number
// of pieces is loaded anyway, with a warning.
func (sc *ShellController) load(seed uint64, c codec.Codec) error {
	b, err := c.Decode(seed, true)
	if errors.Is(err, board.ErrInvalidPieceCount) {
		sc.showMessage("Warning: " + err.Error())
		b, err = c.Decode(seed, false)
	}
	if err != nil {
		return err
	}
	sc.board = b
	sc.lastMoves = nil
	return nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: show <seed>")
	}
	seed, err := codec.ParseSeed(cmd.args[0], sc.inputBase)
	if err != nil {
		return nil, err
	}
	if err := sc.load(seed, codec.Canonical); err != nil {
		return nil, err
	}
	return msg(sc.board.ToDisplayText()), nil
}

func (sc *ShellController) showAlternate(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: alt <seed>")
	}
	seed, err := codec.ParseSeed(cmd.args[0], sc.inputBase)
	if err != nil {
		return nil, err
	}
	if err := sc.load(seed, codec.Alternate); err != nil {
		return nil, err
	}
	return msg(sc.board.ToDisplayText()), nil
}

func (sc *ShellController) seed() (*Response, error) {
	canonical := sc.board.Encode()
	alternate := codec.Alternate.Encode(sc.board)
	return msg(fmt.Sprintf("canonical: %d (%s)\nalternate: %d (%s)",
		canonical, codec.FormatSeed(canonical, codec.Canonical.Width(), true),
		alternate, codec.FormatSeed(alternate, codec.Alternate.Width(), true))), nil
}

func parseColor(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return true, nil
	case "black", "b":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a color, use white or black", s)
}

func (sc *ShellController) listMoves(white bool, roll int) *Response {
	if roll == 0 {
		sc.lastMoves = nil
		return msg("the turn passes")
	}
	sc.lastMoves = sc.board.AvailableMoves(white, roll)
	if len(sc.lastMoves) == 0 {
		return msg(fmt.Sprintf("no moves for a roll of %d", roll))
	}
	var sb strings.Builder
	for i, m := range sc.lastMoves {
		fmt.Fprintf(&sb, "%3d: %v\n", i+1, m)
	}
	return msg(strings.TrimRight(sb.String(), "\n"))
}

func (sc *ShellController) moves(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: moves <white|black> <roll>")
	}
	white, err := parseColor(cmd.args[0])
	if err != nil {
		return nil, err
	}
	roll, err := strconv.Atoi(cmd.args[1])
	if err != nil {
		return nil, err
	}
	if roll < 1 || roll > game.NumDice {
		return nil, fmt.Errorf("roll must be between 1 and %d", game.NumDice)
	}
	return sc.listMoves(white, roll), nil
}

func (sc *ShellController) roll(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: roll <white|black>")
	}
	white, err := parseColor(cmd.args[0])
	if err != nil {
		return nil, err
	}
	roll := game.RollDice(sc.rng)
	resp := sc.listMoves(white, roll)
	resp.message = fmt.Sprintf("rolled %d\n%s", roll, resp.message)
	return resp, nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: play <move number>")
	}
	idx, err := strconv.Atoi(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if idx < 1 || idx > len(sc.lastMoves) {
		return nil, fmt.Errorf("no move %d; list moves first", idx)
	}
	m := sc.lastMoves[idx-1]
	sc.board.Apply(m)
	sc.lastMoves = nil
	return msg(m.Description() + "\n" + sc.board.ToDisplayText()), nil
}

// file shows every seed in a file, one per line, in decimal.
func (sc *ShellController) file(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: file <path>")
	}
	f, err := os.Open(cmd.args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		seed, err := codec.ParseSeed(text, 10)
		if err != nil {
			sc.showMessage("Warning: " + err.Error())
			continue
		}
		if err := sc.load(seed, codec.Canonical); err != nil {
			sc.showMessage("Warning: " + err.Error())
			continue
		}
		sc.showMessage(text + ":\n" + sc.board.ToDisplayText())
	}
	return nil, scanner.Err()
}
