package simplecfg

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/ebnf"
)

// EBNF returns the grammar in the notation of golang.org/x/exp/ebnf, one production per
// line, eg. `S = "a" A | "b" .`.
//
// Non-terminal names must be identifiers. Terminals are quoted Go strings.
func (g *Grammar) EBNF() (string, error) {
	out := []string{}
	for _, sym := range g.NonTerminals() {
		r := g.rules[sym]
		if !isIdent(r.name) {
			return "", fmt.Errorf("%q: non-terminal name is not an EBNF identifier", r.name)
		}
		alternatives := make([]string, len(r.productions))
		for i, p := range r.productions {
			terms := make([]string, len(p))
			for j, s := range p {
				if g.IsNonTerminal(s) {
					terms[j] = g.Name(s)
				} else {
					terms[j] = strconv.Quote(s.String())
				}
			}
			alternatives[i] = strings.Join(terms, " ")
		}
		if len(alternatives) == 0 {
			out = append(out, fmt.Sprintf("%s = .", r.name))
			continue
		}
		out = append(out, fmt.Sprintf("%s = %s .", r.name, strings.Join(alternatives, " | ")))
	}
	return strings.Join(out, "\n"), nil
}

// VerifyEBNF checks the EBNF rendering of the grammar with ebnf.Verify.
//
// This reports non-terminals that are unreachable from the start symbol. Note that
// golang.org/x/exp/ebnf treats names starting with a lower case letter as lexical
// productions, which may not refer to upper case ones.
func (g *Grammar) VerifyEBNF() error {
	text, err := g.EBNF()
	if err != nil {
		return err
	}
	grammar, err := ebnf.Parse("", strings.NewReader(text))
	if err != nil {
		return err
	}
	return ebnf.Verify(grammar, g.Name(Start))
}

func isIdent(name string) bool {
	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return name != ""
}
