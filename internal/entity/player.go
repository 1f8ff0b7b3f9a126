package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-match/internal/apperror"
)

// Player pairs a display name with the mark it places. Immutable.
type Player struct {
	name string
	mark Mark
}

func NewPlayer(name string, mark Mark) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.ErrEmptyPlayerName
	}

	if !mark.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownMark, mark)
	}

	return &Player{name: name, mark: mark}, nil
}

func (that *Player) Name() string {
	return that.name
}

func (that *Player) Mark() Mark {
	return that.mark
}

// ProposeMove tries to place the player's mark on the grid.
func (that *Player) ProposeMove(grid *Grid, row, col int) (bool, error) {
	return grid.AttemptMark(row, col, that.mark)
}

func (that *Player) String() string {
	return fmt.Sprintf("%s (%s)", that.name, that.mark)
}
