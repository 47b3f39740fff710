// Package scanner splits C++ source into classified tokens, one line at a time.
//
// Tokens are white space, decimal numbers, quoted constants, words and single
// punctuation characters. Words are keywords or identifiers. Punctuation is an
// operator or a special character. Operators are always a single character, so
// "==" is two "=" operators. A quoted constant does not extend past the end of its
// line. Character constants are quoted with '. Those quoted with " are special
// characters.
package scanner

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Kind of a Token.
type Kind int

const (
	// Other is the zero Kind, never reported by Scan.
	Other Kind = iota
	Keyword
	Identifier
	Operator
	Number
	CharacterConstant
	SpecialCharacter
	WhiteSpace
)

var kindNames = map[Kind]string{
	Other:             "Other",
	Keyword:           "Keyword",
	Identifier:        "Identifier",
	Operator:          "Operator",
	Number:            "Numeric constant",
	CharacterConstant: "Character constant",
	SpecialCharacter:  "Special character",
	WhiteSpace:        "White space",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var (
	sourceLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Newline", Pattern: `\n`},
		{Name: "Whitespace", Pattern: `[ \t\r\f\v]+`},
		{Name: "Number", Pattern: `\d+`},
		{Name: "Char", Pattern: `'[^'\n]*'`},
		{Name: "String", Pattern: `"[^"\n]*"`},
		{Name: "Word", Pattern: `\w+`},
		{Name: "Punct", Pattern: `[^\w\s]`},
	})
	symbols = sourceLexer.Symbols()

	keywords = set(
		"int", "float", "double", "char", "return", "if", "else", "for", "while",
		"do", "switch", "case", "break", "continue", "class", "public", "private",
		"protected", "void", "const", "static", "struct", "true", "false", "new", "delete",
	)
	operators = set("+", "-", "*", "/", "=", "<", ">", "!", "&", "|", "^", "%", ".")
)

func set(values ...string) map[string]bool {
	out := make(map[string]bool, len(values))
	for _, v := range values {
		out[v] = true
	}
	return out
}

// A Token of source.
type Token struct {
	Kind  Kind
	Value string
	Pos   lexer.Position
}

func (t Token) String() string {
	return fmt.Sprintf("Line %d: %s -> %s", t.Pos.Line, t.Kind, t.Value)
}

// Scan source from r.
//
// Line breaks separate tokens but are not tokens themselves.
func Scan(filename string, r io.Reader) ([]Token, error) {
	lex, err := sourceLexer.Lex(filename, r)
	if err != nil {
		return nil, err
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}
	out := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.EOF() || t.Type == symbols["Newline"] {
			continue
		}
		out = append(out, Token{Kind: classify(t), Value: t.Value, Pos: t.Pos})
	}
	return out, nil
}

// ScanString scans source from a string.
func ScanString(filename, source string) ([]Token, error) {
	return Scan(filename, strings.NewReader(source))
}

func classify(t lexer.Token) Kind {
	switch t.Type {
	case symbols["Whitespace"]:
		return WhiteSpace
	case symbols["Number"]:
		return Number
	case symbols["Char"]:
		return CharacterConstant
	case symbols["Word"]:
		if keywords[t.Value] {
			return Keyword
		}
		return Identifier
	}
	if operators[t.Value] {
		return Operator
	}
	return SpecialCharacter
}
