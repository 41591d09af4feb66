package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type step struct {
	move     Move
	expected Outcome
}

func playSteps(t *testing.T, start Mark, steps []step) GameState {
	t.Helper()

	state := NewGameState(start)
	for i, s := range steps {
		next, err := state.ApplyMove(s.move)
		require.NoError(t, err, "step %d", i)
		require.Equal(t, s.expected, next.Outcome(), "step %d", i)
		state = next
	}

	return state
}

func TestNewGameState(t *testing.T) {
	// When: create a new game state with O to move
	state := NewGameState(MarkO)

	// Then: O is to move and every cell is empty
	require.Equal(t, MarkO, state.CurrentMark())
	for col := 0; col < BoardSize; col++ {
		for row := 0; row < BoardSize; row++ {
			cell, err := state.CellAt(col, row)
			require.NoError(t, err)
			assert.True(t, cell.IsEmpty())
		}
	}

	// Then: the outcome is in progress
	assert.Equal(t, InProgress(), state.Outcome())
}

func TestGameState_ApplyMove(t *testing.T) {
	t.Run("Toggles turn and marks cell with the mover", func(t *testing.T) {
		// Given: a new game with X to move
		state := NewGameState(MarkX)

		// When: X plays (1, 2)
		next, err := state.ApplyMove(Move{Col: 1, Row: 2})
		require.NoError(t, err)

		// Then: O is to move and the cell holds X
		require.Equal(t, MarkO, next.CurrentMark())
		cell, err := next.CellAt(1, 2)
		require.NoError(t, err)
		mark, ok := cell.Mark()
		require.True(t, ok)
		assert.Equal(t, MarkX, mark)
	})

	t.Run("Does not mutate the previous state", func(t *testing.T) {
		// Given: a new game
		state := NewGameState(MarkX)

		// When: a move is applied
		_, err := state.ApplyMove(Move{Col: 0, Row: 0})
		require.NoError(t, err)

		// Then: the previous value is unchanged
		assert.Equal(t, NewGameState(MarkX), state)
		assert.True(t, state.IsLegalMove(0, 0))
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: X has played (0, 0)
		state, err := NewGameState(MarkX).ApplyMove(Move{Col: 0, Row: 0})
		require.NoError(t, err)

		// When: O tries the same cell
		next, err := state.ApplyMove(Move{Col: 0, Row: 0})

		// Then: ErrCellOccupied is returned and the state is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, state, next)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		state := NewGameState(MarkX)

		_, err := state.ApplyMove(Move{Col: 3, Row: 0})
		require.ErrorIs(t, err, apperror.ErrInvalidCell)

		_, err = state.ApplyMove(Move{Col: 0, Row: -1})
		require.ErrorIs(t, err, apperror.ErrInvalidCell)
	})
}

func TestGameState_IsLegalMove(t *testing.T) {
	state, err := NewGameState(MarkX).ApplyMove(Move{Col: 2, Row: 1})
	require.NoError(t, err)

	for col := -1; col <= BoardSize; col++ {
		for row := -1; row <= BoardSize; row++ {
			expected := (Move{Col: col, Row: row}).InBounds() && !(col == 2 && row == 1)
			assert.Equal(t, expected, state.IsLegalMove(col, row), "(%d, %d)", col, row)
		}
	}
}

func TestGameState_CellAt(t *testing.T) {
	state := NewGameState(MarkX)

	_, err := state.CellAt(-1, 0)
	require.ErrorIs(t, err, apperror.ErrInvalidCell)

	_, err = state.CellAt(0, 3)
	require.ErrorIs(t, err, apperror.ErrInvalidCell)
}

func TestGameState_LegalMoves(t *testing.T) {
	// Given: X has played the centre
	state, err := NewGameState(MarkX).ApplyMove(Move{Col: 1, Row: 1})
	require.NoError(t, err)

	// Then: the remaining cells are listed column by column
	expected := []Move{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 2},
		{2, 0}, {2, 1}, {2, 2},
	}
	assert.Equal(t, expected, state.LegalMoves())
}

func TestGameState_Outcome(t *testing.T) {
	t.Run("Row win", func(t *testing.T) {
		playSteps(t, MarkX, []step{
			{Move{0, 0}, InProgress()},
			{Move{0, 1}, InProgress()},
			{Move{1, 0}, InProgress()},
			{Move{1, 1}, InProgress()},
			{Move{2, 0}, Win(MarkX)},
		})
	})

	t.Run("Column win", func(t *testing.T) {
		playSteps(t, MarkX, []step{
			{Move{0, 0}, InProgress()},
			{Move{1, 0}, InProgress()},
			{Move{0, 1}, InProgress()},
			{Move{1, 1}, InProgress()},
			{Move{0, 2}, Win(MarkX)},
		})
	})

	t.Run("Column win with interleaved replies", func(t *testing.T) {
		playSteps(t, MarkX, []step{
			{Move{0, 0}, InProgress()},
			{Move{1, 1}, InProgress()},
			{Move{0, 1}, InProgress()},
			{Move{2, 2}, InProgress()},
			{Move{0, 2}, Win(MarkX)},
		})
	})

	t.Run("Main diagonal win", func(t *testing.T) {
		playSteps(t, MarkX, []step{
			{Move{0, 0}, InProgress()},
			{Move{0, 1}, InProgress()},
			{Move{1, 1}, InProgress()},
			{Move{1, 2}, InProgress()},
			{Move{2, 2}, Win(MarkX)},
		})
	})

	t.Run("Anti-diagonal win for the second mover", func(t *testing.T) {
		playSteps(t, MarkX, []step{
			{Move{0, 0}, InProgress()},
			{Move{2, 0}, InProgress()},
			{Move{1, 0}, InProgress()},
			{Move{1, 1}, InProgress()},
			{Move{2, 2}, InProgress()},
			{Move{0, 2}, Win(MarkO)},
		})
	})

	t.Run("Draw", func(t *testing.T) {
		state := playSteps(t, MarkX, []step{
			{Move{0, 0}, InProgress()},
			{Move{0, 1}, InProgress()},
			{Move{0, 2}, InProgress()},
			{Move{1, 1}, InProgress()},
			{Move{1, 0}, InProgress()},
			{Move{1, 2}, InProgress()},
			{Move{2, 1}, InProgress()},
			{Move{2, 0}, InProgress()},
			{Move{2, 2}, Draw()},
		})

		assert.Empty(t, state.LegalMoves())
	})

	t.Run("Full grid with the main diagonal is a win, not a draw", func(t *testing.T) {
		playSteps(t, MarkX, []step{
			{Move{0, 0}, InProgress()},
			{Move{0, 1}, InProgress()},
			{Move{0, 2}, InProgress()},
			{Move{1, 0}, InProgress()},
			{Move{1, 1}, InProgress()},
			{Move{1, 2}, InProgress()},
			{Move{2, 1}, InProgress()},
			{Move{2, 0}, InProgress()},
			{Move{2, 2}, Win(MarkX)},
		})
	})

	t.Run("First matching line decides", func(t *testing.T) {
		// Given: a full X top row and a full O bottom row
		state := GameState{toMove: MarkX}
		for col := 0; col < BoardSize; col++ {
			state.cells[col][0] = CellOf(MarkX)
			state.cells[col][2] = CellOf(MarkO)
		}

		// Then: rows are scanned top to bottom
		assert.Equal(t, Win(MarkX), state.Outcome())

		// Given: an O column on the right and an X column on the left
		state = GameState{toMove: MarkX}
		for row := 0; row < BoardSize; row++ {
			state.cells[2][row] = CellOf(MarkO)
			state.cells[0][row] = CellOf(MarkX)
		}

		// Then: columns are scanned left to right
		assert.Equal(t, Win(MarkX), state.Outcome())
	})
}

func TestGameState_String(t *testing.T) {
	// Given: X played (0, 0) and O played (1, 1)
	state := playSteps(t, MarkX, []step{
		{Move{0, 0}, InProgress()},
		{Move{1, 1}, InProgress()},
	})

	expected := "" +
		" X | 0 | 1 | 2 |\n" +
		"---+---+---+---+\n" +
		" 0 | X |   |   |\n" +
		"---+---+---+---+\n" +
		" 1 |   | O |   |\n" +
		"---+---+---+---+\n" +
		" 2 |   |   |   |\n" +
		"---+---+---+---+\n"

	assert.Equal(t, expected, state.String())
}

func TestMark(t *testing.T) {
	assert.Equal(t, MarkO, MarkX.Opponent())
	assert.Equal(t, MarkX, MarkO.Opponent())
	assert.Equal(t, "X", MarkX.String())
	assert.Equal(t, "O", MarkO.String())
	assert.Equal(t, " ", EmptyCell.String())
}
