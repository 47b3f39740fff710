package simplecfg

import (
	"io"
	"unicode/utf8"
)

// invalidSymbol stands in for each input byte that is not valid UTF-8. No production
// contains it, so it never matches.
const invalidSymbol Symbol = -1

type matcher struct {
	grammar *Grammar
	trace   io.Writer
	input   []Symbol
	cursor  int
	stack   []Symbol
	steps   []DerivationStep
}

// Match reports whether grammar generates input, starting from the Start symbol.
//
// Each non-terminal popped from the stack is replaced by the first of its productions
// whose leading symbol equals the next input symbol. That choice is final: no other
// production is tried if the match later fails. A nil grammar rejects all input, as does
// a grammar without a rule for Start. Empty input is always rejected, and input that is
// not valid UTF-8 is rejected at its first invalid byte.
func Match(grammar *Grammar, input string, options ...Option) *ParseResult {
	m := &matcher{grammar: grammar, input: decodeInput(input)}
	for _, option := range options {
		option(m)
	}
	return m.match()
}

func (m *matcher) match() *ParseResult {
	if !m.grammar.HasStart() {
		return m.reject(NoStartSymbol)
	}
	m.stack = append(m.stack, Start)
	for len(m.stack) > 0 && m.cursor < len(m.input) {
		top := m.pop()
		next := m.input[m.cursor]
		if r := m.grammar.lookup(top); r != nil {
			production, ok := r.predict(next)
			if !ok {
				m.tracef(top, "no production starts with %s", quoteSymbol(next))
				return m.reject(NoProduction)
			}
			m.steps = append(m.steps, DerivationStep{Symbol: top, Name: r.name, Production: production.String()})
			for i := len(production) - 1; i >= 0; i-- {
				m.stack = append(m.stack, production[i])
			}
			m.tracef(top, "expand %s", production)
			continue
		}
		if top != next {
			m.tracef(top, "mismatch")
			return m.reject(Mismatch)
		}
		m.tracef(top, "match")
		m.steps = append(m.steps, DerivationStep{Symbol: top, Name: top.String(), Production: next.String(), Terminal: true})
		m.cursor++
	}
	switch {
	case len(m.stack) > 0:
		return m.reject(InputExhausted)
	case m.cursor < len(m.input):
		return m.reject(TrailingInput)
	}
	return &ParseResult{Accepted: true, Steps: m.steps, Reason: Accepted, Offset: m.cursor}
}

// decodeInput splits input into one Symbol per character, and one invalidSymbol per byte
// that does not start a valid UTF-8 sequence.
func decodeInput(input string) []Symbol {
	out := make([]Symbol, 0, len(input))
	for len(input) > 0 {
		r, size := utf8.DecodeRuneInString(input)
		if r == utf8.RuneError && size <= 1 {
			out = append(out, invalidSymbol)
		} else {
			out = append(out, Symbol(r))
		}
		input = input[size:]
	}
	return out
}

func (m *matcher) pop() Symbol {
	top := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return top
}

func (m *matcher) reject(reason Reason) *ParseResult {
	return &ParseResult{Reason: reason, Offset: m.cursor}
}

// predict returns the first production starting with next.
func (r *rule) predict(next Symbol) (Production, bool) {
	for _, p := range r.productions {
		if p.First() == next {
			return p, true
		}
	}
	return nil, false
}
