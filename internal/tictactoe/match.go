package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-match/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-match/internal/entity"
)

const (
	DefaultBoardSize = 3
	MinPlayers       = 2
)

// Match owns a grid and drives turns between its players. One call to
// MakeMove is one turn; the caller decides when to ask for the next one.
type Match struct {
	grid    *entity.Grid
	players []*entity.Player
	active  int
	state   State
	winner  *entity.Player
	moves   []entity.Move
}

func NewMatch(players []*entity.Player, boardSize int) (*Match, error) {
	if len(players) < MinPlayers {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrNotEnoughPlayers, len(players))
	}

	if err := validatePlayers(players); err != nil {
		return nil, err
	}

	grid, err := entity.NewGrid(boardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create grid: %w", err)
	}

	return &Match{
		grid:    grid,
		players: append([]*entity.Player(nil), players...),
		state:   StateInProgress,
	}, nil
}

// MakeMove plays the active player's mark at (row, col).
// A rejected move leaves the match untouched and returns the outcome together
// with the reason as an error.
func (that *Match) MakeMove(row, col int) (Outcome, error) {
	player := that.ActivePlayer()
	outcome := Outcome{Player: player, Row: row, Col: col}

	if that.IsFinished() || that.grid.IsFull() {
		outcome.Kind = OutcomeRejectedGameOver
		return outcome, apperror.ErrGameFinished
	}

	ok, err := player.ProposeMove(that.grid, row, col)
	if err != nil {
		if errors.Is(err, apperror.ErrOutOfBounds) {
			outcome.Kind = OutcomeRejectedOutOfBounds
			return outcome, fmt.Errorf("invalid move: %w", err)
		}

		outcome.Kind = OutcomeInvalid
		return outcome, fmt.Errorf("failed to make move: %w", err)
	}

	if !ok {
		outcome.Kind = OutcomeRejectedOccupied
		return outcome, fmt.Errorf("invalid move: %w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	that.moves = append(that.moves, entity.Move{Row: row, Col: col, Mark: player.Mark()})

	switch {
	case that.grid.HasWinningLine(player.Mark()):
		that.state = StateWon
		that.winner = player
		outcome.Kind = OutcomeWon
	case that.grid.IsFull():
		that.state = StateDraw
		outcome.Kind = OutcomeDraw
	default:
		that.active = (that.active + 1) % len(that.players)
		outcome.Kind = OutcomeMoved
	}

	return outcome, nil
}

// Restart clears the board for a replay with the same players.
func (that *Match) Restart() {
	that.grid.Reset()
	that.active = 0
	that.state = StateInProgress
	that.winner = nil
	that.moves = nil
}

func (that *Match) State() State {
	return that.state
}

func (that *Match) IsFinished() bool {
	return that.state.IsTerminal()
}

// Winner is nil unless the match is won.
func (that *Match) Winner() *entity.Player {
	return that.winner
}

func (that *Match) ActivePlayer() *entity.Player {
	return that.players[that.active]
}

func (that *Match) Players() []*entity.Player {
	return append([]*entity.Player(nil), that.players...)
}

func (that *Match) BoardSize() int {
	return that.grid.Size()
}

// Grid returns a snapshot of the cells.
func (that *Match) Grid() [][]entity.Mark {
	return that.grid.Cells()
}

// Moves returns the accepted moves in order.
func (that *Match) Moves() []entity.Move {
	return append([]entity.Move(nil), that.moves...)
}

func validatePlayers(players []*entity.Player) error {
	taken := make(map[entity.Mark]string, len(players))

	for i, player := range players {
		if player == nil {
			return fmt.Errorf("%w: position %d", apperror.ErrNilPlayer, i)
		}

		if owner, ok := taken[player.Mark()]; ok {
			return fmt.Errorf("%w: %s is used by %s and %s", apperror.ErrDuplicateMark, player.Mark(), owner, player.Name())
		}

		taken[player.Mark()] = player.Name()
	}

	return nil
}
