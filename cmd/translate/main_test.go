package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/royalur/config"
)

func TestRunDropsBadLines(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	is.NoErr(os.WriteFile(in, []byte("122138132480\nnot-a-seed\n481040535615\n174518804524\n"), 0644))

	cfg := &config.Config{}
	is.NoErr(cfg.Load("translate", []string{in, out}))
	is.NoErr(run(cfg))

	got, err := os.ReadFile(out)
	is.NoErr(err)
	is.Equal(string(got), "18374686479671623680\n15132694669066115664\n")
}

func TestRunBinaryOutputBackToCanonical(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	is.NoErr(os.WriteFile(in, []byte("15132694669066115664\n"), 0644))

	cfg := &config.Config{}
	is.NoErr(cfg.Load("translate", []string{
		"--direction", "alternate-to-canonical", "--binary-output", in, out}))
	is.NoErr(run(cfg))

	got, err := os.ReadFile(out)
	is.NoErr(err)
	is.Equal(string(got), "0010100010100010001000011010000000101100\n")
}

func TestRunNeedsTwoFiles(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{}
	is.NoErr(cfg.Load("translate", []string{"only-one"}))
	is.True(run(cfg) != nil)
}
