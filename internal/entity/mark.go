package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-match/internal/apperror"
)

// Mark is the symbol a player places on the grid.
type Mark string

const (
	Empty Mark = ""

	MarkX      Mark = "X"
	MarkO      Mark = "O"
	MarkDollar Mark = "$"
	MarkHash   Mark = "#"
	MarkAt     Mark = "@"
)

// Marks lists every playable mark in assignment order.
var Marks = []Mark{MarkX, MarkO, MarkDollar, MarkHash, MarkAt}

func ParseMark(s string) (Mark, error) {
	mark := Mark(s)
	if !mark.IsValid() {
		return Empty, fmt.Errorf("%w: %q", apperror.ErrUnknownMark, s)
	}

	return mark, nil
}

func (that Mark) IsValid() bool {
	switch that {
	case MarkX, MarkO, MarkDollar, MarkHash, MarkAt:
		return true
	default:
		return false
	}
}

func (that Mark) String() string {
	return string(that)
}
