package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"

	"github.com/simplecfg/simplecfg"
	"github.com/simplecfg/simplecfg/notation"
)

type grammarFile struct {
	Grammar string `short:"g" required:"" type:"existingfile" env:"SIMPLECFG_GRAMMAR" help:"Grammar file."`
}

func (g *grammarFile) load() (*simplecfg.Grammar, error) {
	return loadGrammarFile(g.Grammar)
}

func loadGrammarFile(path string) (*simplecfg.Grammar, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return notation.Parse(path, r)
}

type checkCmd struct {
	File grammarFile `embed:""`

	Inputs []string `arg:"" help:"Strings to check."`
}

func (c *checkCmd) Help() string {
	return `
Matching starts from the non-terminal S. The derivation is printed for each
accepted string, one "X -> production" line per step.
`
}

func (c *checkCmd) Run(env *environment) error {
	g, err := c.File.load()
	if err != nil {
		return err
	}
	for _, input := range c.Inputs {
		result := env.match(g, input)
		if env.dump {
			repr.New(env.stdout, repr.Indent("  "), repr.OmitEmpty(true)).Println(result)
		}
		fmt.Fprint(env.stdout, result)
		if result.Accepted {
			fmt.Fprintf(env.stdout, "%q: accepted\n", input)
		} else {
			fmt.Fprintf(env.stdout, "%q: rejected (%s at offset %d)\n", input, result.Reason, result.Offset)
		}
	}
	return nil
}

func (env *environment) match(g *simplecfg.Grammar, input string) *simplecfg.ParseResult {
	options := []simplecfg.Option{}
	if env.trace {
		options = append(options, simplecfg.Trace(env.stderr))
	}
	return simplecfg.Match(g, input, options...)
}

type showCmd struct {
	File grammarFile `embed:""`
}

func (c *showCmd) Run(env *environment) error {
	g, err := c.File.load()
	if err != nil {
		return err
	}
	fmt.Fprint(env.stdout, g)
	return nil
}

type ebnfCmd struct {
	File grammarFile `embed:""`

	Verify bool `help:"Verify that every non-terminal is reachable from S."`
}

func (c *ebnfCmd) Run(env *environment) error {
	g, err := c.File.load()
	if err != nil {
		return err
	}
	text, err := g.EBNF()
	if err != nil {
		return err
	}
	fmt.Fprintln(env.stdout, text)
	if c.Verify {
		return g.VerifyEBNF()
	}
	return nil
}
