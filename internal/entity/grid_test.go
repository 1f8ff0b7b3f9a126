package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-match/internal/apperror"
)

func newTestGrid(t *testing.T, size int) *Grid {
	t.Helper()

	grid, err := NewGrid(size)
	require.NoError(t, err)

	return grid
}

func fillCells(t *testing.T, grid *Grid, mark Mark, cells ...[2]int) {
	t.Helper()

	for _, cell := range cells {
		ok, err := grid.AttemptMark(cell[0], cell[1], mark)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestNewGrid(t *testing.T) {
	t.Run("Fresh grid is empty", func(t *testing.T) {
		for _, size := range []int{1, 3, 4, 7} {
			// Given: a fresh grid
			grid := newTestGrid(t, size)

			// Then: it is not full and nobody has a line
			assert.Equal(t, size, grid.Size())
			assert.False(t, grid.IsFull())
			for _, mark := range Marks {
				assert.False(t, grid.HasWinningLine(mark), "size %d mark %s", size, mark)
			}
		}
	})

	t.Run("Rejects non-positive size", func(t *testing.T) {
		// When: creating grids with zero or negative size
		_, errZero := NewGrid(0)
		_, errNegative := NewGrid(-3)

		// Then: ErrInvalidBoardSize is returned
		require.ErrorIs(t, errZero, apperror.ErrInvalidBoardSize)
		require.ErrorIs(t, errNegative, apperror.ErrInvalidBoardSize)
	})

	t.Run("Rejects oversized grids", func(t *testing.T) {
		// When: the size is past the limit
		_, err := NewGrid(200000)

		// Then: it fails before allocating cells
		require.ErrorIs(t, err, apperror.ErrInvalidBoardSize)

		grid, err := NewGrid(MaxGridSize)
		require.NoError(t, err)
		assert.Equal(t, MaxGridSize, grid.Size())
	})
}

func TestGrid_AttemptMark(t *testing.T) {
	t.Run("Marks an empty cell", func(t *testing.T) {
		// Given: an empty grid
		grid := newTestGrid(t, 3)

		// When: X is placed in the middle
		ok, err := grid.AttemptMark(1, 1, MarkX)

		// Then: the cell holds X
		require.NoError(t, err)
		assert.True(t, ok)

		mark, err := grid.At(1, 1)
		require.NoError(t, err)
		assert.Equal(t, MarkX, mark)
	})

	t.Run("Occupied cell is left unchanged", func(t *testing.T) {
		// Given: a grid with X in the corner
		grid := newTestGrid(t, 3)
		fillCells(t, grid, MarkX, [2]int{0, 0})
		before := grid.Cells()

		// When: the same cell is attempted twice with other marks
		first, err := grid.AttemptMark(0, 0, MarkO)
		require.NoError(t, err)
		second, err := grid.AttemptMark(0, 0, MarkX)
		require.NoError(t, err)

		// Then: both attempts fail and the grid is the same
		assert.False(t, first)
		assert.False(t, second)
		assert.Equal(t, before, grid.Cells())
	})

	t.Run("Out of bounds", func(t *testing.T) {
		grid := newTestGrid(t, 3)

		for _, cell := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {10, 10}} {
			// When: a coordinate outside the grid is used
			ok, err := grid.AttemptMark(cell[0], cell[1], MarkX)

			// Then: ErrOutOfBounds is returned and nothing is marked
			require.ErrorIs(t, err, apperror.ErrOutOfBounds)
			assert.False(t, ok)
		}

		assert.Equal(t, newTestGrid(t, 3).Cells(), grid.Cells())
	})

	t.Run("Unknown mark", func(t *testing.T) {
		grid := newTestGrid(t, 3)

		// When: an empty mark is placed
		ok, err := grid.AttemptMark(0, 0, Empty)

		// Then: ErrUnknownMark is returned
		require.ErrorIs(t, err, apperror.ErrUnknownMark)
		assert.False(t, ok)
	})
}

func TestGrid_HasWinningLine(t *testing.T) {
	testCases := []struct {
		name  string
		cells [][2]int
	}{
		{name: "Row 0", cells: [][2]int{{0, 0}, {0, 1}, {0, 2}}},
		{name: "Row 2", cells: [][2]int{{2, 0}, {2, 1}, {2, 2}}},
		{name: "Column 1", cells: [][2]int{{0, 1}, {1, 1}, {2, 1}}},
		{name: "Main diagonal", cells: [][2]int{{0, 0}, {1, 1}, {2, 2}}},
		{name: "Anti diagonal", cells: [][2]int{{0, 2}, {1, 1}, {2, 0}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given: a line of O with an X elsewhere
			grid := newTestGrid(t, 3)
			fillCells(t, grid, MarkO, tc.cells...)

			// Then: O wins, nobody else does
			assert.True(t, grid.HasWinningLine(MarkO))
			for _, mark := range Marks {
				if mark != MarkO {
					assert.False(t, grid.HasWinningLine(mark))
				}
			}
		})
	}

	t.Run("Broken line does not win", func(t *testing.T) {
		// Given: X X O in the first row
		grid := newTestGrid(t, 3)
		fillCells(t, grid, MarkX, [2]int{0, 0}, [2]int{0, 1})
		fillCells(t, grid, MarkO, [2]int{0, 2})

		// Then: neither mark has a line
		assert.False(t, grid.HasWinningLine(MarkX))
		assert.False(t, grid.HasWinningLine(MarkO))
	})

	t.Run("Empty mark never wins", func(t *testing.T) {
		grid := newTestGrid(t, 3)

		assert.False(t, grid.HasWinningLine(Empty))
	})

	t.Run("Single cell grid", func(t *testing.T) {
		// Given: a 1x1 grid with one X
		grid := newTestGrid(t, 1)
		fillCells(t, grid, MarkX, [2]int{0, 0})

		// Then: X wins and the grid is full
		assert.True(t, grid.HasWinningLine(MarkX))
		assert.True(t, grid.IsFull())
	})
}

func TestGrid_IsFullAndReset(t *testing.T) {
	// Given: a 2x2 grid filled cell by cell
	grid := newTestGrid(t, 2)
	fillCells(t, grid, MarkX, [2]int{0, 0}, [2]int{1, 1})
	assert.False(t, grid.IsFull())

	fillCells(t, grid, MarkO, [2]int{0, 1}, [2]int{1, 0})

	// Then: it is full
	assert.True(t, grid.IsFull())

	// When: the grid is reset
	grid.Reset()

	// Then: every cell is empty again
	assert.False(t, grid.IsFull())
	assert.Equal(t, [][]Mark{{Empty, Empty}, {Empty, Empty}}, grid.Cells())
}

func TestGrid_CellsIsACopy(t *testing.T) {
	// Given: a snapshot of a fresh grid
	grid := newTestGrid(t, 3)
	snapshot := grid.Cells()

	// When: the snapshot is modified
	snapshot[0][0] = MarkX

	// Then: the grid is unaffected
	mark, err := grid.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, Empty, mark)
}
