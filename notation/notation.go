// Package notation reads grammars written one rule per line.
//
// The notation is:
//
//     File        = { Rule | EOL } .
//     Rule        = Name Arrow [ Production { "|" Production } ] .
//     Arrow       = "->" | "→" .
//     EOL         = "\n" | ";" .
//
// Names and productions are runs of characters other than white space, "|", ";" and
// "#". A "-" may appear anywhere in them, including at the end, but "->" is always the
// arrow. "#" starts a comment running to the end of the line. For example:
//
//     # Balanced a^n b^n.
//     S -> aT
//     T -> b | aTb
//
// Rules repeated for the same name add alternatives to the first declaration.
package notation

import (
	"errors"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/simplecfg/simplecfg"
)

var (
	grammarLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "EOL", Pattern: `[\n;]+`},
		{Name: "Arrow", Pattern: `->|→`},
		{Name: "Bar", Pattern: `\|`},
		{Name: "Word", Pattern: `[^\s|;#\-→]+`},
		{Name: "Dash", Pattern: `-`},
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
	})
	parser = participle.MustBuild[File](
		participle.Lexer(grammarLexer),
		participle.Elide("Comment", "Whitespace"),
	)
)

// File is the syntax tree of a grammar file.
type File struct {
	Rules []*Rule `parser:"( EOL | @@ )*"`
}

// Rule is a single "Name -> p1 | p2" line.
type Rule struct {
	Pos lexer.Position

	Name        *Text   `parser:"@@ Arrow"`
	Productions []*Text `parser:"( @@ ( Bar @@ )* )?"`
}

// Text is a name or production, lexed as adjacent Word and Dash tokens.
type Text struct {
	Pieces []*Piece `parser:"@@+"`
}

func (t *Text) String() string {
	w := &strings.Builder{}
	for _, p := range t.Pieces {
		w.WriteString(p.Value)
	}
	return w.String()
}

// check that no white space separates the pieces.
func (t *Text) check() error {
	for i := 1; i < len(t.Pieces); i++ {
		prev, next := t.Pieces[i-1], t.Pieces[i]
		if prev.Pos.Offset+len(prev.Value) != next.Pos.Offset {
			return participle.Errorf(next.Pos, "unexpected white space before %q", next.Value)
		}
	}
	return nil
}

// A Piece of Text.
type Piece struct {
	Pos lexer.Position

	Value string `parser:"@( Word | Dash )"`
}

// ParseFile parses a grammar file without loading it.
func ParseFile(filename string, r io.Reader) (*File, error) {
	return checked(parser.Parse(filename, r))
}

func checked(file *File, err error) (*File, error) {
	if err != nil {
		return nil, err
	}
	for _, r := range file.Rules {
		if err := r.Name.check(); err != nil {
			return nil, err
		}
		for _, p := range r.Productions {
			if err := p.check(); err != nil {
				return nil, err
			}
		}
	}
	return file, nil
}

// ParseRules parses a grammar file into rules ready for simplecfg.Load.
func ParseRules(filename string, r io.Reader) ([]simplecfg.Rule, error) {
	file, err := ParseFile(filename, r)
	if err != nil {
		return nil, err
	}
	return file.SimpleRules(), nil
}

// Parse and load a grammar.
func Parse(filename string, r io.Reader) (*simplecfg.Grammar, error) {
	file, err := ParseFile(filename, r)
	if err != nil {
		return nil, err
	}
	return file.Load()
}

// ParseString parses and loads a grammar from a string.
func ParseString(filename, text string) (*simplecfg.Grammar, error) {
	file, err := checked(parser.ParseString(filename, text))
	if err != nil {
		return nil, err
	}
	return file.Load()
}

// MustParseString calls ParseString and panics on error.
func MustParseString(text string) *simplecfg.Grammar {
	g, err := ParseString("", text)
	if err != nil {
		panic(err)
	}
	return g
}

// SimpleRules merges rules by name, in order of first declaration.
func (f *File) SimpleRules() []simplecfg.Rule {
	out := []simplecfg.Rule{}
	index := map[string]int{}
	for _, r := range f.Rules {
		name := r.Name.String()
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, simplecfg.Rule{Name: name})
		}
		for _, p := range r.Productions {
			out[i].Productions = append(out[i].Productions, p.String())
		}
	}
	return out
}

// Load validates the file's rules, annotating validation errors with the position of
// the offending rule.
func (f *File) Load() (*simplecfg.Grammar, error) {
	g, err := simplecfg.Load(f.SimpleRules()...)
	if err == nil {
		return g, nil
	}
	var verr *simplecfg.ValidationError
	if errors.As(err, &verr) {
		if r := f.find(verr.NonTerminal, verr.Production); r != nil {
			return nil, participle.Wrapf(r.Pos, err, "invalid rule")
		}
	}
	return nil, err
}

// find the rule declaring production for name, or the first rule for name.
func (f *File) find(name, production string) *Rule {
	var first *Rule
	for _, r := range f.Rules {
		if r.Name.String() != name {
			continue
		}
		if first == nil {
			first = r
		}
		for _, p := range r.Productions {
			if p.String() == production {
				return r
			}
		}
	}
	return first
}
