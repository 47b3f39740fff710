package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

var version string = "dev"

// CLI is the command line of simplecfg.
type CLI struct {
	Version kong.VersionFlag `help:"Show version."`
	Trace   bool             `help:"Trace matching to stderr."`
	Dump    bool             `help:"Dump match results."`

	Check checkCmd `cmd:"" help:"Check whether a grammar generates each input string."`
	Show  showCmd  `cmd:"" help:"Print a grammar."`
	EBNF  ebnfCmd  `cmd:"" name:"ebnf" help:"Print a grammar as EBNF."`
	Shell shellCmd `cmd:"" help:"Load grammars and check strings interactively."`
	Scan  scanCmd  `cmd:"" help:"Print the tokens of C++ source."`
}

// environment is bound to every command's Run method.
type environment struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	trace, dump    bool
}

func (c *CLI) environment(stdin io.Reader, stdout, stderr io.Writer) *environment {
	return &environment{stdin: stdin, stdout: stdout, stderr: stderr, trace: c.Trace, dump: c.Dump}
}

func options() []kong.Option {
	return []kong.Option{
		kong.Name("simplecfg"),
		kong.Description(`Check strings against simple context-free grammars.`),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	}
}

func main() {
	cli := &CLI{}
	kctx := kong.Parse(cli, append(options(),
		kong.Configuration(kong.JSON, "~/.simplecfg.json", ".simplecfg.json"),
	)...)
	err := kctx.Run(cli.environment(os.Stdin, os.Stdout, os.Stderr))
	kctx.FatalIfErrorf(err)
}
