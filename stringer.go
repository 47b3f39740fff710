package simplecfg

import (
	"fmt"
	"strings"
)

// String renders the grammar one rule per line, eg. "S -> aA | b".
//
// The output can be read back with the notation package.
func (g *Grammar) String() string {
	w := &strings.Builder{}
	for _, r := range g.Rules() {
		if len(r.Productions) == 0 {
			fmt.Fprintf(w, "%s ->\n", r.Name)
			continue
		}
		fmt.Fprintf(w, "%s -> %s\n", r.Name, strings.Join(r.Productions, " | "))
	}
	return w.String()
}
