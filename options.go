package simplecfg

import "io"

// An Option to modify the behaviour of Match.
type Option func(m *matcher)

// Trace the match to "w", one line per symbol popped from the stack.
func Trace(w io.Writer) Option {
	return func(m *matcher) {
		m.trace = w
	}
}
