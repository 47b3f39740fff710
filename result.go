package simplecfg

import (
	"fmt"
	"strings"
)

// Reason a match finished.
type Reason int

const (
	// Unknown is the zero Reason, never reported by Match.
	Unknown Reason = iota
	// Accepted input was fully consumed with an empty stack.
	Accepted
	// NoStartSymbol means the grammar has no rule for Start.
	NoStartSymbol
	// NoProduction means no production of a non-terminal starts with the next input symbol.
	NoProduction
	// Mismatch means a terminal differs from the next input symbol.
	Mismatch
	// InputExhausted means symbols remained on the stack at the end of input.
	InputExhausted
	// TrailingInput means input remained after the stack was emptied.
	TrailingInput
)

func (r Reason) String() string {
	switch r {
	case Unknown:
		return "unknown"
	case Accepted:
		return "accepted"
	case NoStartSymbol:
		return "no start symbol"
	case NoProduction:
		return "no matching production"
	case Mismatch:
		return "terminal mismatch"
	case InputExhausted:
		return "input exhausted"
	case TrailingInput:
		return "trailing input"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// A DerivationStep is one expansion of a non-terminal or one match of a terminal.
type DerivationStep struct {
	Symbol Symbol

	// Name is the display name of a non-terminal, or the terminal itself.
	Name string

	// Production expanded to, or the matched input character for terminals.
	Production string
	Terminal   bool
}

func (d DerivationStep) String() string { return d.Name + " -> " + d.Production }

// ParseResult of a single Match.
type ParseResult struct {
	Accepted bool

	// Steps in the order they occurred. Empty unless Accepted.
	Steps  []DerivationStep
	Reason Reason

	// Offset is the number of input characters consumed when the match finished.
	Offset int
}

// Consumed concatenates the terminals matched by the derivation.
func (p *ParseResult) Consumed() string {
	w := &strings.Builder{}
	for _, step := range p.Steps {
		if step.Terminal {
			w.WriteString(step.Production)
		}
	}
	return w.String()
}

// String renders the derivation as one "X -> production" line per step.
func (p *ParseResult) String() string {
	w := &strings.Builder{}
	for _, step := range p.Steps {
		fmt.Fprintln(w, step)
	}
	return w.String()
}
