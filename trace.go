package simplecfg

import (
	"fmt"
	"strings"
)

// tracef writes one trace line for the symbol "top" popped at "cursor".
//
// The remaining stack is printed bottom first, so its last symbol is the next one popped.
func (m *matcher) tracef(top Symbol, format string, args ...interface{}) {
	if m.trace == nil {
		return
	}
	next := "<EOF>"
	if m.cursor < len(m.input) {
		next = quoteSymbol(m.input[m.cursor])
	}
	fmt.Fprintf(m.trace, "%d %s [%s] %s: %s\n", m.cursor, next, stackString(m.stack), m.grammar.Name(top), fmt.Sprintf(format, args...))
}

func quoteSymbol(s Symbol) string {
	if s == invalidSymbol {
		return "<invalid>"
	}
	return fmt.Sprintf("%q", rune(s))
}

func stackString(stack []Symbol) string {
	w := &strings.Builder{}
	for _, s := range stack {
		w.WriteRune(rune(s))
	}
	return w.String()
}
