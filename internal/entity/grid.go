package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-match/internal/apperror"
)

// MaxGridSize is the largest size NewGrid accepts.
const MaxGridSize = 64

// Grid is a square board of marks. A marked cell is only cleared by Reset.
type Grid struct {
	size  int
	cells [][]Mark
}

func NewGrid(size int) (*Grid, error) {
	if size <= 0 || size > MaxGridSize {
		return nil, fmt.Errorf("%w: got %d, want 1..%d", apperror.ErrInvalidBoardSize, size, MaxGridSize)
	}

	grid := &Grid{size: size}
	grid.Reset()

	return grid, nil
}

func (that *Grid) Size() int {
	return that.size
}

// AttemptMark places mark on an empty cell. It reports false, without
// touching the grid, when the cell is already taken.
func (that *Grid) AttemptMark(row, col int, mark Mark) (bool, error) {
	if err := that.checkBounds(row, col); err != nil {
		return false, err
	}

	if !mark.IsValid() {
		return false, fmt.Errorf("%w: %q", apperror.ErrUnknownMark, mark)
	}

	if that.cells[row][col] != Empty {
		return false, nil
	}

	that.cells[row][col] = mark

	return true, nil
}

func (that *Grid) At(row, col int) (Mark, error) {
	if err := that.checkBounds(row, col); err != nil {
		return Empty, err
	}

	return that.cells[row][col], nil
}

// HasWinningLine reports whether any row, column or diagonal is filled with mark.
func (that *Grid) HasWinningLine(mark Mark) bool {
	if mark == Empty {
		return false
	}

	for i := 0; i < that.size; i++ {
		if that.lineOf(mark, i, 0, 0, 1) || that.lineOf(mark, 0, i, 1, 0) {
			return true
		}
	}

	return that.lineOf(mark, 0, 0, 1, 1) || that.lineOf(mark, 0, that.size-1, 1, -1)
}

func (that *Grid) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

func (that *Grid) Reset() {
	cells := make([][]Mark, that.size)
	for i := range cells {
		cells[i] = make([]Mark, that.size)
	}

	that.cells = cells
}

// Cells returns a copy of the board, rows first.
func (that *Grid) Cells() [][]Mark {
	snapshot := make([][]Mark, that.size)
	for i, row := range that.cells {
		snapshot[i] = append([]Mark(nil), row...)
	}

	return snapshot
}

// lineOf walks size cells from (row, col) by (dRow, dCol).
func (that *Grid) lineOf(mark Mark, row, col, dRow, dCol int) bool {
	for step := 0; step < that.size; step++ {
		if that.cells[row+step*dRow][col+step*dCol] != mark {
			return false
		}
	}

	return true
}

func (that *Grid) checkBounds(row, col int) error {
	if row < 0 || row >= that.size || col < 0 || col >= that.size {
		return fmt.Errorf("%w: row %d, col %d on a %dx%d grid", apperror.ErrOutOfBounds, row, col, that.size, that.size)
	}

	return nil
}
