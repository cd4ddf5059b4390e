package game

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/robalobadob/eldrow/internal/words"
)

var testWords = []string{"crane", "apple", "berry", "slate", "llama", "allow", "fight", "those", "geese"}

// firstPicker always picks index 0, so the solutions are the leading
// dictionary words in order.
type firstPicker struct{}

func (firstPicker) Intn(int) int { return 0 }

// script replays guesses and reports io.EOF once they run out.
type script struct {
	guesses []string
	prompts []string
}

func (s *script) NextGuess(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.guesses) == 0 {
		return "", io.EOF
	}
	g := s.guesses[0]
	s.guesses = s.guesses[1:]
	return g, nil
}

// board records everything sent to the renderer.
type board struct {
	rendered map[int][]Record
	rejected []error
	solved   []int
}

func newBoard() *board { return &board{rendered: map[int][]Record{}} }

func (b *board) Render(slot int, rec Record) error {
	b.rendered[slot] = append(b.rendered[slot], rec)
	return nil
}

func (b *board) Reject(_ int, err error) error {
	b.rejected = append(b.rejected, err)
	return nil
}

func (b *board) Solved(slot, _ int) error {
	b.solved = append(b.solved, slot)
	return nil
}

type mockRenderer struct{ mock.Mock }

func (m *mockRenderer) Render(slot int, rec Record) error { return m.Called(slot, rec).Error(0) }
func (m *mockRenderer) Reject(slot int, err error) error  { return m.Called(slot, err).Error(0) }
func (m *mockRenderer) Solved(slot, attempt int) error    { return m.Called(slot, attempt).Error(0) }

func newDict(t *testing.T, list ...string) *words.Dictionary {
	t.Helper()
	if len(list) == 0 {
		list = testWords
	}
	d, err := words.NewDictionary(language.English, list)
	require.NoError(t, err)
	return d
}

func newGame(t *testing.T, s Settings, list ...string) *Game {
	t.Helper()
	g, err := New(newDict(t, list...), s, firstPicker{})
	require.NoError(t, err)
	return g
}

func TestWordLengthMatchesDictionary(t *testing.T) {
	t.Parallel()
	assert.Equal(t, words.Length, WordLength)
}

func TestNewValidatesSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    Settings
	}{
		{"no words", Settings{Words: 0, MaxAttempts: 6}},
		{"too many words", Settings{Words: 7, MaxAttempts: 6}},
		{"no attempts", Settings{Words: 1, MaxAttempts: 0}},
		{"too many attempts", Settings{Words: 1, MaxAttempts: 11}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, err := New(newDict(t), tt.s, nil)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestNewDictionaryTooSmall(t *testing.T) {
	t.Parallel()

	_, err := New(newDict(t, "crane", "slate"), Settings{Words: 3, MaxAttempts: 6}, nil)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestNewSamplesDistinctSolutions(t *testing.T) {
	t.Parallel()

	list := []string{"crane", "apple", "berry", "slate", "llama", "allow"}
	for i := 0; i < 50; i++ {
		g, err := New(newDict(t, list...), Settings{Words: 6, MaxAttempts: 6}, FastPicker{})
		require.NoError(t, err)
		assert.ElementsMatch(t, list, g.Solutions())
	}
}

func TestNewInitialState(t *testing.T) {
	t.Parallel()

	g := newGame(t, Settings{Words: 2, MaxAttempts: 6})
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, StatePlaying, g.State())
	assert.Equal(t, 0, g.Attempt())
	assert.Equal(t, []string{"crane", "apple"}, g.Solutions())
	for _, s := range g.Slots() {
		assert.False(t, s.Solved())
		assert.Empty(t, s.History())
	}
}

func TestRevealedOnlyWithCheat(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newGame(t, Settings{Words: 2, MaxAttempts: 6}).Revealed())
	assert.Equal(t, []string{"crane", "apple"},
		newGame(t, Settings{Words: 2, MaxAttempts: 6, Cheat: true}).Revealed())
}

func TestSingleWordWin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	g := newGame(t, Settings{Words: 1, MaxAttempts: 6})
	in := &script{guesses: []string{"slate", "crane"}}
	out := newBoard()

	state, err := g.AdvanceRound(ctx, in, out)
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, state)
	assert.Equal(t, 1, g.Attempt())
	assert.Equal(t, marks("slate", "AAEAE"), out.rendered[0][0])

	state, err = g.AdvanceRound(ctx, in, out)
	require.NoError(t, err)
	assert.Equal(t, StateWon, state)
	assert.Equal(t, 2, g.Attempt())
	assert.True(t, out.rendered[0][1].Solved())
	assert.Equal(t, []int{0}, out.solved)
	assert.Equal(t, []string{"[Attempt 1/6] ", "[Attempt 2/6] "}, in.prompts)
}

func TestLostAfterSingleAttempt(t *testing.T) {
	t.Parallel()

	g := newGame(t, Settings{Words: 2, MaxAttempts: 1}, "apple", "berry", "crane", "slate")
	require.Equal(t, []string{"apple", "berry"}, g.Solutions())

	state, err := g.AdvanceRound(context.Background(), &script{guesses: []string{"crane", "slate"}}, newBoard())
	require.NoError(t, err)
	assert.Equal(t, StateLost, state)
	assert.Equal(t, 1, g.Attempt())
	assert.True(t, g.Done())
}

func TestWinOnFinalAttempt(t *testing.T) {
	t.Parallel()

	g := newGame(t, Settings{Words: 2, MaxAttempts: 2}, "apple", "berry", "crane")
	in := &script{guesses: []string{"apple", "crane", "berry"}}

	state, err := g.Play(context.Background(), in, newBoard())
	require.NoError(t, err)
	assert.Equal(t, StateWon, state)
	assert.Equal(t, 2, g.Attempt())
}

func TestInvalidGuessesDoNotCostAttempts(t *testing.T) {
	t.Parallel()

	g := newGame(t, Settings{Words: 1, MaxAttempts: 6})
	in := &script{guesses: []string{"abc", "zzzzz", "toolong", "slate"}}
	out := newBoard()

	state, err := g.AdvanceRound(context.Background(), in, out)
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, state)
	assert.Equal(t, 1, g.Attempt())
	assert.Len(t, g.Slots()[0].History(), 1)

	require.Len(t, out.rejected, 3)
	for _, err := range out.rejected {
		assert.ErrorIs(t, err, ErrInvalidGuess)
	}
	assert.ErrorIs(t, out.rejected[0], ErrWrongLength)
	assert.ErrorIs(t, out.rejected[1], ErrUnknownWord)
	assert.ErrorIs(t, out.rejected[2], ErrWrongLength)
}

func TestGuessesAreCaseInsensitive(t *testing.T) {
	t.Parallel()

	g := newGame(t, Settings{Words: 1, MaxAttempts: 6})
	state, err := g.AdvanceRound(context.Background(), &script{guesses: []string{"  CRANE "}}, newBoard())
	require.NoError(t, err)
	assert.Equal(t, StateWon, state)
}

func TestSolvedSlotsAreSkipped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	g := newGame(t, Settings{Words: 2, MaxAttempts: 6}, "apple", "berry", "crane")
	in := &script{guesses: []string{"apple", "crane", "crane", "berry"}}
	out := newBoard()

	state, err := g.AdvanceRound(ctx, in, out)
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, state)
	assert.True(t, g.Slots()[0].Solved())
	assert.False(t, g.Slots()[1].Solved())

	// Slot 0 is solved: both remaining guesses go to slot 1.
	state, err = g.AdvanceRound(ctx, in, out)
	require.NoError(t, err)
	assert.Equal(t, StatePlaying, state)
	state, err = g.AdvanceRound(ctx, in, out)
	require.NoError(t, err)
	assert.Equal(t, StateWon, state)

	slots := g.Slots()
	assert.Len(t, slots[0].History(), 1)
	assert.Len(t, slots[1].History(), 3)
	assert.True(t, slots[0].Solved())
	assert.Equal(t, []int{0, 1}, out.solved)
	assert.Equal(t, []string{
		"[Attempt 1/6] word 1/2: ",
		"[Attempt 1/6] word 2/2: ",
		"[Attempt 2/6] word 2/2: ",
		"[Attempt 3/6] word 2/2: ",
	}, in.prompts)
}

func TestAbandonedOnEndOfInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	g := newGame(t, Settings{Words: 1, MaxAttempts: 6})
	state, err := g.AdvanceRound(ctx, &script{}, newBoard())
	assert.Equal(t, StateAbandoned, state)
	assert.ErrorIs(t, err, ErrAbandoned)
	assert.ErrorIs(t, err, io.EOF)
	assert.True(t, g.Done())

	_, err = g.AdvanceRound(ctx, &script{guesses: []string{"crane"}}, newBoard())
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestAbandonedOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := newGame(t, Settings{Words: 1, MaxAttempts: 6})
	state, err := g.Play(ctx, &script{guesses: []string{"crane"}}, newBoard())
	assert.Equal(t, StateAbandoned, state)
	assert.ErrorIs(t, err, ErrAbandoned)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNoRoundsAfterGameOver(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	g := newGame(t, Settings{Words: 1, MaxAttempts: 6})
	_, err := g.AdvanceRound(ctx, &script{guesses: []string{"crane"}}, newBoard())
	require.NoError(t, err)

	state, err := g.AdvanceRound(ctx, &script{guesses: []string{"slate"}}, newBoard())
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, StateWon, state)
	assert.Equal(t, 1, g.Attempt())
	assert.Len(t, g.Slots()[0].History(), 1)
}

func TestRendererFailuresAreNotFatal(t *testing.T) {
	t.Parallel()

	broken := errors.New("broken pipe")
	out := &mockRenderer{}
	out.On("Reject", 0, mock.Anything).Return(broken).Once()
	out.On("Render", 0, mock.Anything).Return(broken).Once()
	out.On("Solved", 0, 1).Return(broken).Once()

	g := newGame(t, Settings{Words: 1, MaxAttempts: 6})
	state, err := g.AdvanceRound(context.Background(), &script{guesses: []string{"xx", "crane"}}, out)
	require.NoError(t, err)
	assert.Equal(t, StateWon, state)
	out.AssertExpectations(t)
}

func TestPlayUntilLost(t *testing.T) {
	t.Parallel()

	g := newGame(t, Settings{Words: 1, MaxAttempts: 3})
	state, err := g.Play(context.Background(), &script{guesses: []string{"slate", "fight", "llama", "crane"}}, newBoard())
	require.NoError(t, err)
	assert.Equal(t, StateLost, state)
	assert.Equal(t, 3, g.Attempt())
	assert.Len(t, g.Slots()[0].History(), 3)
}
