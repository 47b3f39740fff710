// Package simplecfg decides whether a simple context-free grammar generates a string.
//
// A grammar is a set of rules, each mapping a non-terminal to an ordered list of
// productions. Every symbol is a single character: a non-terminal is identified by the
// first character of its name and any other character is a terminal.
//
//     S -> aA | b
//     A -> c
//
// Load validates a rule set and returns an immutable Grammar. Grammars containing direct
// left recursion, a production starting with its own non-terminal, are rejected.
//
//     grammar, err := simplecfg.Load(
//         simplecfg.Rule{Name: "S", Productions: []string{"aA", "b"}},
//         simplecfg.Rule{Name: "A", Productions: []string{"c"}},
//     )
//
// Match runs a predictive, stack based matcher from the start symbol S. For each
// non-terminal it commits to the first production whose leading symbol equals the next
// input symbol and never backtracks, so a grammar that needs a later alternative after a
// deeper mismatch rejects input that some derivation would accept.
//
//     result := simplecfg.Match(grammar, "ac")
//     fmt.Print(result)
//
// prints the derivation:
//
//     S -> aA
//     a -> a
//     A -> c
//     c -> c
package simplecfg
