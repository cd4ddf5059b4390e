package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// marks builds a record from a word and a compact pattern: E exact, P present, A absent.
func marks(word, pattern string) Record {
	m := map[rune]Mark{'E': MarkExact, 'P': MarkPresent, 'A': MarkAbsent}
	rec := make(Record, 0, len(word))
	p := []rune(pattern)
	for i, r := range word {
		rec = append(rec, Judgment{Letter: r, Mark: m[p[i]]})
	}
	return rec
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		guess    string
		solution string
		want     string
	}{
		{"identical", "crane", "crane", "EEEEE"},
		{"no shared letters", "fight", "crane", "AAAAA"},
		{"surplus repeat after pool is used", "llama", "allow", "PEPAA"},
		{"exact consumes before present", "geese", "those", "AAAEE"},
		{"present on both sides of an exact", "babes", "abbey", "PPEEA"},
		{"anagram", "heart", "earth", "PPPPP"},
		{"mixed", "slate", "crane", "AAEAE"},
		{"single letter twice in guess", "eerie", "crane", "AAPAE"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Evaluate(tt.guess, tt.solution)
			if diff := cmp.Diff(marks(tt.guess, tt.want), got); diff != "" {
				t.Errorf("Evaluate(%q, %q) mismatch (-want +got):\n%s", tt.guess, tt.solution, diff)
			}
		})
	}
}

func TestEvaluateNeverOvercountsLetters(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"llama", "allow"},
		{"eerie", "crane"},
		{"geese", "those"},
		{"sassy", "essay"},
		{"mamma", "madam"},
	}
	for _, p := range pairs {
		rec := Evaluate(p[0], p[1])
		inSolution := map[rune]int{}
		for _, r := range p[1] {
			inSolution[r]++
		}
		reported := map[rune]int{}
		for _, j := range rec {
			if j.Mark != MarkAbsent {
				reported[j.Letter]++
			}
		}
		for r, n := range reported {
			assert.LessOrEqual(t, n, inSolution[r], "%s vs %s: letter %c", p[0], p[1], r)
		}
	}
}

func TestEvaluateIsPure(t *testing.T) {
	t.Parallel()

	first := Evaluate("llama", "allow")
	second := Evaluate("llama", "allow")
	assert.Equal(t, first, second)
	assert.Equal(t, "llama", first.Word())
}

func TestRecordSolved(t *testing.T) {
	t.Parallel()

	assert.True(t, Evaluate("crane", "crane").Solved())
	assert.False(t, Evaluate("slate", "crane").Solved())
	assert.False(t, Record{}.Solved())
}
