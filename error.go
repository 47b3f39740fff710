package simplecfg

import (
	"errors"
	"fmt"
)

// Kinds of ValidationError, for use with errors.Is.
var (
	// ErrLeftRecursion is reported when a production starts with its own non-terminal.
	ErrLeftRecursion = errors.New("left recursion")
	// ErrEmptyProduction is reported for a zero length production.
	ErrEmptyProduction = errors.New("empty production")
	// ErrInvalidSymbol is reported for names and productions that are not valid symbols.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrSymbolConflict is reported when two non-terminal names share a first character.
	ErrSymbolConflict = errors.New("symbol conflict")
)

// ValidationError is returned by Load when a rule set is rejected.
type ValidationError struct {
	// Kind is one of the Err* sentinels above.
	Kind error

	// NonTerminal is the name of the offending rule, if any.
	NonTerminal string

	// Production is the offending production, if any.
	Production string

	// Detail further qualifies Kind.
	Detail string
}

func (v *ValidationError) Error() string {
	if v.NonTerminal == "" {
		return v.Message()
	}
	return fmt.Sprintf("%s: %s", v.NonTerminal, v.Message())
}

// Message is the error without the rule name.
func (v *ValidationError) Message() string { // nolint: golint
	switch v.Kind {
	case ErrLeftRecursion:
		return fmt.Sprintf("%s (production %q starts with %s)", v.Kind, v.Production, v.NonTerminal)
	case ErrSymbolConflict:
		return fmt.Sprintf("%s (%s)", v.Kind, v.Detail)
	}
	msg := v.Kind.Error()
	if v.Production != "" {
		msg += fmt.Sprintf(" %q", v.Production)
	}
	if v.Detail != "" {
		msg += ": " + v.Detail
	}
	return msg
}

func (v *ValidationError) Unwrap() error { return v.Kind }

func errInvalidSymbol(name, detail string) error {
	return &ValidationError{Kind: ErrInvalidSymbol, NonTerminal: name, Detail: detail}
}
