package shell

import (
	"errors"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
)

var (
	errNoData            = errors.New("no data in command")
	errWrongOptionSyntax = errors.New("options need a value, e.g. -color white")
)

type CmdOptions map[string]string

func (c CmdOptions) String(key string) string {
	return c[key]
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	v, ok := c[key]
	if !ok {
		return defaultI, nil
	}
	return strconv.Atoi(v)
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

// extractFields splits a command line into the command, its positional
// arguments, and any "-name value" options. Quoting follows the shell.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := &shellcmd{cmd: fields[0], options: CmdOptions{}}
	for i := 1; i < len(fields); i++ {
		f := fields[i]
		if !strings.HasPrefix(f, "-") || len(f) == 1 {
			cmd.args = append(cmd.args, f)
			continue
		}
		if i+1 >= len(fields) {
			return nil, errWrongOptionSyntax
		}
		cmd.options[strings.TrimPrefix(f, "-")] = fields[i+1]
		i++
	}
	return cmd, nil
}
