package simplecfg

import (
	"errors"
	"fmt"
	"sort"
)

// A Rule maps a non-terminal name to its productions, in the order they are tried.
//
// Names longer than one character are allowed for display, but only the first character
// identifies the non-terminal.
type Rule struct {
	Name        string
	Productions []string
}

// Grammar is a validated, immutable rule set.
//
// A Grammar is safe for concurrent use.
type Grammar struct {
	order []Symbol
	rules map[Symbol]*rule
}

type rule struct {
	name        string
	symbol      Symbol
	productions []Production
}

// Load validates rules and constructs a Grammar from them.
//
// A rule whose name was already declared replaces the earlier declaration. Any production
// starting with the character its own rule's name starts with is rejected with
// ErrLeftRecursion, whatever the other rules are. Only this direct form of left recursion
// is detected. Rules whose names differ but start with the same character are then
// rejected with ErrSymbolConflict.
func Load(rules ...Rule) (*Grammar, error) {
	declared := []*rule{}
	byName := map[string]*rule{}
	for _, r := range rules {
		sym, err := SymbolOf(r.Name)
		if err != nil {
			return nil, err
		}
		productions, err := parseProductions(r)
		if err != nil {
			return nil, err
		}
		if existing, ok := byName[r.Name]; ok {
			existing.productions = productions
			continue
		}
		byName[r.Name] = &rule{name: r.Name, symbol: sym, productions: productions}
		declared = append(declared, byName[r.Name])
	}
	if err := checkLeftRecursion(declared); err != nil {
		return nil, err
	}
	g := &Grammar{rules: map[Symbol]*rule{}}
	for _, r := range declared {
		if existing, ok := g.rules[r.symbol]; ok {
			return nil, &ValidationError{
				Kind:        ErrSymbolConflict,
				NonTerminal: r.name,
				Detail:      fmt.Sprintf("%q and %q are both identified by %#v", existing.name, r.name, r.symbol),
			}
		}
		g.order = append(g.order, r.symbol)
		g.rules[r.symbol] = r
	}
	return g, nil
}

// LoadMap loads rules keyed by non-terminal name.
//
// Rules are declared in sorted name order.
func LoadMap(rules map[string][]string) (*Grammar, error) {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	ordered := make([]Rule, 0, len(names))
	for _, name := range names {
		ordered = append(ordered, Rule{Name: name, Productions: rules[name]})
	}
	return Load(ordered...)
}

// MustLoad calls Load and panics on error.
func MustLoad(rules ...Rule) *Grammar {
	g, err := Load(rules...)
	if err != nil {
		panic(err)
	}
	return g
}

func parseProductions(r Rule) ([]Production, error) {
	out := make([]Production, 0, len(r.Productions))
	for _, text := range r.Productions {
		p, err := ParseProduction(text)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				verr.NonTerminal = r.Name
			}
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func checkLeftRecursion(rules []*rule) error {
	for _, r := range rules {
		for _, p := range r.productions {
			if p.First() == r.symbol {
				return &ValidationError{Kind: ErrLeftRecursion, NonTerminal: r.name, Production: p.String()}
			}
		}
	}
	return nil
}

func (g *Grammar) lookup(sym Symbol) *rule {
	if g == nil {
		return nil
	}
	return g.rules[sym]
}

// HasStart returns true if the grammar has a rule for the start symbol.
func (g *Grammar) HasStart() bool { return g.lookup(Start) != nil }

// IsNonTerminal returns true if sym has a rule in the grammar.
func (g *Grammar) IsNonTerminal(sym Symbol) bool { return g.lookup(sym) != nil }

// NonTerminals in declaration order.
func (g *Grammar) NonTerminals() []Symbol {
	if g == nil {
		return nil
	}
	return append([]Symbol(nil), g.order...)
}

// Name returns the display name of a non-terminal, or the symbol itself for terminals.
func (g *Grammar) Name(sym Symbol) string {
	if r := g.lookup(sym); r != nil {
		return r.name
	}
	return sym.String()
}

// Productions of the non-terminal sym, in the order they are tried.
func (g *Grammar) Productions(sym Symbol) []Production {
	r := g.lookup(sym)
	if r == nil {
		return nil
	}
	out := make([]Production, len(r.productions))
	for i, p := range r.productions {
		out[i] = append(Production(nil), p...)
	}
	return out
}

// Rules returns the grammar's rules in declaration order.
//
// Loading the returned rules yields an equivalent Grammar.
func (g *Grammar) Rules() []Rule {
	if g == nil {
		return nil
	}
	out := make([]Rule, 0, len(g.order))
	for _, sym := range g.order {
		r := g.rules[sym]
		productions := make([]string, len(r.productions))
		for i, p := range r.productions {
			productions[i] = p.String()
		}
		out = append(out, Rule{Name: r.name, Productions: productions})
	}
	return out
}
