package simplecfg_test

import (
	"strings"
	"sync"
	"testing"

	require "github.com/alecthomas/assert/v2"

	"github.com/simplecfg/simplecfg"
)

// S -> aA | b
// A -> c
func exampleGrammar(t *testing.T) *simplecfg.Grammar {
	t.Helper()
	return mustTestGrammar(t,
		simplecfg.Rule{Name: "S", Productions: []string{"aA", "b"}},
		simplecfg.Rule{Name: "A", Productions: []string{"c"}},
	)
}

func TestMatchExample(t *testing.T) {
	g := exampleGrammar(t)

	result := simplecfg.Match(g, "ac")
	require.Equal(t, &simplecfg.ParseResult{
		Accepted: true,
		Reason:   simplecfg.Accepted,
		Offset:   2,
		Steps: []simplecfg.DerivationStep{
			{Symbol: 'S', Name: "S", Production: "aA"},
			{Symbol: 'a', Name: "a", Production: "a", Terminal: true},
			{Symbol: 'A', Name: "A", Production: "c"},
			{Symbol: 'c', Name: "c", Production: "c", Terminal: true},
		},
	}, result)
	require.Equal(t, "S -> aA\na -> a\nA -> c\nc -> c\n", result.String())

	result = simplecfg.Match(g, "b")
	require.True(t, result.Accepted)
	require.Equal(t, []simplecfg.DerivationStep{
		{Symbol: 'S', Name: "S", Production: "b"},
		{Symbol: 'b', Name: "b", Production: "b", Terminal: true},
	}, result.Steps)
}

func TestMatchRejections(t *testing.T) {
	tests := []struct {
		name   string
		rules  []simplecfg.Rule
		input  string
		reason simplecfg.Reason
		offset int
	}{
		{"InputExhausted", nil, "a", simplecfg.InputExhausted, 1},
		{"NoProductionInsideExpansion", nil, "ad", simplecfg.NoProduction, 1},
		{"NoProductionForStart", nil, "c", simplecfg.NoProduction, 0},
		{"TrailingInput", nil, "bb", simplecfg.TrailingInput, 1},
		{"EmptyInput", nil, "", simplecfg.InputExhausted, 0},
		{"Mismatch",
			[]simplecfg.Rule{{Name: "S", Productions: []string{"ab"}}},
			"ac", simplecfg.Mismatch, 1},
		{"NonTerminalWithoutProductions",
			[]simplecfg.Rule{
				{Name: "S", Productions: []string{"aB"}},
				{Name: "B"},
			},
			"ab", simplecfg.NoProduction, 1},
		{"MissingStart",
			[]simplecfg.Rule{{Name: "A", Productions: []string{"a"}}},
			"a", simplecfg.NoStartSymbol, 0},
		{"EmptyGrammar",
			[]simplecfg.Rule{},
			"S", simplecfg.NoStartSymbol, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := exampleGrammar(t)
			if test.rules != nil {
				g = mustTestGrammar(t, test.rules...)
			}
			result := simplecfg.Match(g, test.input)
			require.False(t, result.Accepted)
			require.Zero(t, len(result.Steps))
			require.Equal(t, test.reason, result.Reason)
			require.Equal(t, test.offset, result.Offset)
		})
	}
}

func TestMatchNilGrammar(t *testing.T) {
	result := simplecfg.Match(nil, "S")
	require.False(t, result.Accepted)
	require.Equal(t, simplecfg.NoStartSymbol, result.Reason)
}

func TestMatchFirstProductionWins(t *testing.T) {
	// "ay" is derivable as S => aC => ay, but the matcher commits to aB.
	g := mustTestGrammar(t,
		simplecfg.Rule{Name: "S", Productions: []string{"aB", "aC"}},
		simplecfg.Rule{Name: "B", Productions: []string{"x"}},
		simplecfg.Rule{Name: "C", Productions: []string{"y"}},
	)
	result := simplecfg.Match(g, "ay")
	require.False(t, result.Accepted)
	require.Equal(t, simplecfg.NoProduction, result.Reason)

	result = simplecfg.Match(g, "ax")
	require.True(t, result.Accepted)
	require.Equal(t, "aB", result.Steps[0].Production)

	// Swapping the alternatives swaps the outcome.
	g = mustTestGrammar(t,
		simplecfg.Rule{Name: "S", Productions: []string{"aC", "aB"}},
		simplecfg.Rule{Name: "B", Productions: []string{"x"}},
		simplecfg.Rule{Name: "C", Productions: []string{"y"}},
	)
	require.True(t, simplecfg.Match(g, "ay").Accepted)
	require.False(t, simplecfg.Match(g, "ax").Accepted)
}

func TestMatchRecursiveGrammar(t *testing.T) {
	// Balanced a^n b^n for n >= 1.
	g := mustTestGrammar(t,
		simplecfg.Rule{Name: "S", Productions: []string{"aT"}},
		simplecfg.Rule{Name: "T", Productions: []string{"b", "aTb"}},
	)
	for _, input := range []string{"ab", "aabb", "aaabbb"} {
		result := simplecfg.Match(g, input)
		require.True(t, result.Accepted, input)
		require.Equal(t, input, result.Consumed())
	}
	for _, input := range []string{"a", "abb", "aab", "ba", "abab"} {
		require.False(t, simplecfg.Match(g, input).Accepted, input)
	}
}

func TestMatchDisplayNames(t *testing.T) {
	g := mustTestGrammar(t,
		simplecfg.Rule{Name: "Start", Productions: []string{"xE"}},
		simplecfg.Rule{Name: "Expr", Productions: []string{"y"}},
	)
	result := simplecfg.Match(g, "xy")
	require.True(t, result.Accepted)
	require.Equal(t, "Start -> xE\nx -> x\nExpr -> y\ny -> y\n", result.String())
}

func TestMatchUnicode(t *testing.T) {
	g := mustTestGrammar(t,
		simplecfg.Rule{Name: "S", Productions: []string{"λΛ"}},
		simplecfg.Rule{Name: "Λ", Productions: []string{"μ"}},
	)
	result := simplecfg.Match(g, "λμ")
	require.True(t, result.Accepted)
	require.Equal(t, 2, result.Offset)
	require.Equal(t, "λμ", result.Consumed())
}

func TestMatchInvalidUTF8(t *testing.T) {
	// Invalid bytes never match, not even the replacement character.
	g := mustTestGrammar(t, simplecfg.Rule{Name: "S", Productions: []string{"\uFFFD", "a\uFFFD"}})
	require.True(t, simplecfg.Match(g, "\uFFFD").Accepted)

	result := simplecfg.Match(g, "\xff")
	require.False(t, result.Accepted)
	require.Equal(t, simplecfg.NoProduction, result.Reason)
	require.Equal(t, 0, result.Offset)

	w := &strings.Builder{}
	result = simplecfg.Match(g, "a\xff", simplecfg.Trace(w))
	require.False(t, result.Accepted)
	require.Equal(t, simplecfg.Mismatch, result.Reason)
	require.Equal(t, 1, result.Offset)
	require.Equal(t, "0 'a' [\uFFFDa] S: expand a\uFFFD\n"+
		"0 'a' [\uFFFD] a: match\n"+
		"1 <invalid> [] \uFFFD: mismatch\n", w.String())
}

func TestMatchNonTerminalInInput(t *testing.T) {
	// A non-terminal symbol in the input can never be expanded to match itself.
	g := mustTestGrammar(t,
		simplecfg.Rule{Name: "S", Productions: []string{"Ab"}},
		simplecfg.Rule{Name: "A", Productions: []string{"a"}},
	)
	result := simplecfg.Match(g, "Ab")
	require.False(t, result.Accepted)
	require.Equal(t, simplecfg.NoProduction, result.Reason)
	require.Equal(t, 0, result.Offset)
}

func TestMatchDeterministic(t *testing.T) {
	g := exampleGrammar(t)
	for _, input := range []string{"ac", "b", "a", "ad", ""} {
		require.Equal(t, simplecfg.Match(g, input), simplecfg.Match(g, input), input)
	}
}

func TestMatchConcurrent(t *testing.T) {
	g := exampleGrammar(t)
	expected := simplecfg.Match(g, "ac")
	results := make([]*simplecfg.ParseResult, 16)
	wg := sync.WaitGroup{}
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = simplecfg.Match(g, "ac")
		}(i)
	}
	wg.Wait()
	for _, result := range results {
		require.Equal(t, expected, result)
	}
}

func TestTrace(t *testing.T) {
	g := exampleGrammar(t)
	w := &strings.Builder{}
	result := simplecfg.Match(g, "ac", simplecfg.Trace(w))
	require.True(t, result.Accepted)
	require.Equal(t, `0 'a' [Aa] S: expand aA
0 'a' [A] a: match
1 'c' [c] A: expand c
1 'c' [] c: match
`, w.String())

	w.Reset()
	simplecfg.Match(g, "ad", simplecfg.Trace(w))
	require.Equal(t, `0 'a' [Aa] S: expand aA
0 'a' [A] a: match
1 'd' [] A: no production starts with 'd'
`, w.String())
}

func TestReasonString(t *testing.T) {
	require.Equal(t, "input exhausted", simplecfg.InputExhausted.String())
	require.Equal(t, "Reason(42)", simplecfg.Reason(42).String())
	require.Equal(t, "unknown", simplecfg.Reason(0).String())
}

func TestZeroParseResult(t *testing.T) {
	result := simplecfg.ParseResult{}
	require.Equal(t, simplecfg.Unknown, result.Reason)
	require.NotEqual(t, simplecfg.Accepted, result.Reason)
	require.False(t, result.Accepted)
}
