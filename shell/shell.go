// Package shell is an interactive viewer for boards and their moves.
package shell

import (
	"errors"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/royalur/board"
	"github.com/domino14/royalur/config"
	"github.com/domino14/royalur/move"
)

const prompt = "\033[31mroyalur>\033[0m "

type ShellController struct {
	l      *readline.Instance
	config *config.Config
	in     io.Reader
	out    io.Writer

	board     *board.Board
	lastMoves []*move.Move
	inputBase int
	rng       *frand.RNG
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func newController(cfg *config.Config, in io.Reader, out io.Writer) *ShellController {
	sc := &ShellController{
		config: cfg,
		in:     in,
		out:    out,
		board:  board.New(),
		rng:    frand.New(),
	}
	if err := sc.setFormat(cfg.GetString(config.ConfigInputFormat)); err != nil {
		log.Warn().Err(err).Msg("falling back to decimal seeds")
		sc.inputBase = 10
	}
	return sc
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     "/tmp/royalur_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    &ShellCompleter{},

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := newController(cfg, nil, l.Stderr())
	sc.l = l
	sc.in = &lineReader{l: l}
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// Execute runs a single command line and prints its output. It returns an
// error only when the shell should stop.
func (sc *ShellController) Execute(sig chan os.Signal, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	cmd, err := extractFields(line)
	if err != nil {
		sc.showError(err)
		return nil
	}
	if cmd.cmd == "exit" || cmd.cmd == "bye" {
		if sig != nil {
			sig <- syscall.SIGINT
		}
		return errors.New("sending quit signal")
	}
	resp, err := sc.standardModeSwitch(cmd)
	if err != nil {
		sc.showError(err)
		return nil
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
	return nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		if err := sc.Execute(sig, line); err != nil {
			log.Debug().Err(err).Msg("leaving shell")
			break
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

func (sc *ShellController) Cleanup() {
	log.Debug().Msg("shell cleanup")
}
