package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

var commandNames = []string{
	"new", "show", "alt", "seed", "moves", "roll", "play", "vs", "file", "format", "help", "exit",
}

var argCompletions = map[string][]string{
	"moves":  {"white", "black"},
	"roll":   {"white", "black"},
	"format": {"decimal", "binary", "auto"},
	"help":   {"seeds", "moves", "vs"},
	"vs":     {"first", "random", "greedy", "casper"},
}

// ShellCompleter implements readline.AutoCompleter.
type ShellCompleter struct{}

// Do completes the command name, or the first argument of commands that
// take a fixed set of words.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string
	switch {
	case len(fields) == 0 || (len(fields) == 1 && !endsWithSpace):
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	case len(fields) == 1 && endsWithSpace:
		completions = argCompletions[fields[0]]
	case len(fields) == 2 && !endsWithSpace:
		prefix = fields[1]
		completions = argCompletions[fields[0]]
	}

	var out [][]rune
	for _, candidate := range completions {
		if strings.HasPrefix(candidate, prefix) {
			out = append(out, []rune(candidate[len(prefix):]+" "))
		}
	}
	return out, len([]rune(prefix))
}
