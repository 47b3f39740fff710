package simplecfg

import (
	"strings"
	"unicode/utf8"
)

// Start is the symbol every match begins from.
const Start Symbol = 'S'

// A Symbol identifies a grammar element by a single character.
//
// Whether a Symbol is a terminal or a non-terminal depends only on the Grammar it is
// interpreted against.
type Symbol rune

// SymbolOf returns the Symbol identifying name, which is its first character.
func SymbolOf(name string) (Symbol, error) {
	if name == "" {
		return 0, errInvalidSymbol(name, "empty name")
	}
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError && size <= 1 {
		return 0, errInvalidSymbol(name, "invalid UTF-8")
	}
	return Symbol(r), nil
}

func (s Symbol) String() string { return string(rune(s)) }

// GoString quotes the symbol, eg. 'S'.
func (s Symbol) GoString() string { return "'" + s.String() + "'" }

// A Production is the ordered sequence of symbols a non-terminal expands to.
type Production []Symbol

// ParseProduction splits text into one Symbol per character.
func ParseProduction(text string) (Production, error) {
	if text == "" {
		return nil, &ValidationError{Kind: ErrEmptyProduction}
	}
	if !utf8.ValidString(text) {
		return nil, &ValidationError{Kind: ErrInvalidSymbol, Production: text, Detail: "invalid UTF-8"}
	}
	out := make(Production, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		out = append(out, Symbol(r))
	}
	return out, nil
}

// First symbol of the production.
func (p Production) First() Symbol { return p[0] }

func (p Production) String() string {
	w := &strings.Builder{}
	for _, s := range p {
		w.WriteRune(rune(s))
	}
	return w.String()
}
