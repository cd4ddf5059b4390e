package game

// Evaluate scores guess against solution with the two-pass Wordle algorithm.
//
// Pass 1:
//   - Mark exact matches.
//   - Count the solution letters that were not matched exactly.
//
// Pass 2 (left to right):
//   - For each non-exact guess letter: if the count for that letter is still
//     positive, mark it present and decrement; otherwise mark it absent.
//
// A letter is therefore never reported (exact or present) more often than it
// occurs in the solution, and surplus repeats on the left win the present marks.
// Both words are expected to have the same length; the caller validates that.
func Evaluate(guess, solution string) Record {
	g := []rune(guess)
	s := []rune(solution)
	rec := make(Record, len(g))

	pool := make(map[rune]int, len(s))
	for i, r := range s {
		if i < len(g) && g[i] == r {
			continue
		}
		pool[r]++
	}

	for i, r := range g {
		rec[i] = Judgment{Letter: r, Mark: MarkAbsent}
		if i < len(s) && r == s[i] {
			rec[i].Mark = MarkExact
		}
	}

	for i := range rec {
		if rec[i].Mark == MarkExact {
			continue
		}
		if pool[rec[i].Letter] > 0 {
			rec[i].Mark = MarkPresent
			pool[rec[i].Letter]--
		}
	}
	return rec
}
