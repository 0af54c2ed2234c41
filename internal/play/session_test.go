package play

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmiles/minesweeper-agent/internal/game"
	"github.com/bmiles/minesweeper-agent/internal/solver"
)

func newTestSession(t *testing.T, height, width, mines int, rnd *rand.Rand) *Session {
	t.Helper()
	g, err := game.New(height, width, mines, rnd)
	require.NoError(t, err)
	return NewSession(g, solver.NewAgent(height, width, rnd))
}

func TestPlayTerminates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                 string
		height, width, mines int
	}{
		{name: "4x4(2)", height: 4, width: 4, mines: 2},
		{name: "8x8(8)", height: 8, width: 8, mines: 8},
		{name: "8x8(20)", height: 8, width: 8, mines: 20},
		{name: "16x16(40)", height: 16, width: 16, mines: 40},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			rnd := rand.New(rand.NewPCG(1, 2))
			for round := range 20 {
				s := newTestSession(t, test.height, test.width, test.mines, rnd)
				status := s.Play()

				assert.Contains(t, []Status{Won, Lost}, status,
					"round %d ended %s", round, status)
				assert.LessOrEqual(t, len(s.Moves()), test.height*test.width)
			}
		})
	}
}

func TestMinelessGameIsAlwaysWon(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewPCG(1, 2))
	s := newTestSession(t, 5, 5, 0, rnd)

	require.Equal(t, Won, s.Play())

	stats := s.Stats()
	assert.Equal(t, 25, stats.Moves)
	// only the opening move is a guess, everything after is deduced
	assert.Equal(t, 1, stats.Random)
}

func TestSafeMovesNeverLose(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewPCG(3, 4))
	for range 50 {
		s := newTestSession(t, 6, 6, 6, rnd)
		s.Play()

		for _, m := range s.Moves() {
			if m.Exploded {
				assert.True(t, m.Random, "a proven-safe move exploded at %s", m.Cell)
			}
		}
	}
}

func TestAllMinesBoardLosesOnFirstStep(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewPCG(1, 2))
	s := newTestSession(t, 2, 2, 4, rnd)

	move, ok := s.Step()
	require.True(t, ok)
	assert.True(t, move.Exploded)
	assert.Equal(t, Lost, s.Status())

	_, ok = s.Step()
	assert.False(t, ok)
}

func TestStepAfterGameOver(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewPCG(1, 2))
	s := newTestSession(t, 3, 3, 0, rnd)
	require.Equal(t, Won, s.Play())

	moves := len(s.Moves())
	_, ok := s.Step()
	assert.False(t, ok)
	assert.Equal(t, moves, len(s.Moves()))
}

func TestFieldShowsFlags(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewPCG(1, 2))
	s := newTestSession(t, 3, 3, 0, rnd)
	s.Play()

	field := s.Field()
	assert.NotContains(t, field, "-")
	assert.NotContains(t, field, "*")
}
