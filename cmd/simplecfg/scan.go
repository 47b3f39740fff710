package main

import (
	"fmt"
	"io"
	"os"

	"github.com/simplecfg/simplecfg/scanner"
)

type scanCmd struct {
	Source string `arg:"" optional:"" type:"existingfile" help:"Source file, read from stdin if omitted."`
}

func (c *scanCmd) Run(env *environment) error {
	filename, r := "<stdin>", env.stdin
	if c.Source != "" {
		f, err := os.Open(c.Source)
		if err != nil {
			return err
		}
		defer f.Close()
		filename, r = c.Source, io.Reader(f)
	}
	tokens, err := scanner.Scan(filename, r)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.stdout, "Token Analysis:")
	for _, token := range tokens {
		fmt.Fprintln(env.stdout, token)
	}
	return nil
}
