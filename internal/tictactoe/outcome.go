package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-match/internal/entity"
)

type State int

const (
	StateInProgress State = iota
	StateWon
	StateDraw
)

func (that State) String() string {
	switch that {
	case StateInProgress:
		return "in-progress"
	case StateWon:
		return "won"
	case StateDraw:
		return "draw"
	default:
		return fmt.Sprintf("state(%d)", int(that))
	}
}

func (that State) IsTerminal() bool {
	return that == StateWon || that == StateDraw
}

type OutcomeKind int

// OutcomeInvalid is the zero value; MakeMove returns it with an error when
// the move could not be classified.
const (
	OutcomeInvalid OutcomeKind = iota
	OutcomeMoved
	OutcomeWon
	OutcomeDraw
	OutcomeRejectedOccupied
	OutcomeRejectedOutOfBounds
	OutcomeRejectedGameOver
)

func (that OutcomeKind) String() string {
	switch that {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeMoved:
		return "moved-and-continue"
	case OutcomeWon:
		return "moved-and-won"
	case OutcomeDraw:
		return "moved-and-draw"
	case OutcomeRejectedOccupied:
		return "rejected-occupied"
	case OutcomeRejectedOutOfBounds:
		return "rejected-out-of-bounds"
	case OutcomeRejectedGameOver:
		return "rejected-game-over"
	default:
		return fmt.Sprintf("outcome(%d)", int(that))
	}
}

// Outcome describes what a single move request did to the match.
// Player is the player who attempted the move.
type Outcome struct {
	Kind   OutcomeKind
	Player *entity.Player
	Row    int
	Col    int
}

func (that Outcome) IsRejected() bool {
	switch that.Kind {
	case OutcomeRejectedOccupied, OutcomeRejectedOutOfBounds, OutcomeRejectedGameOver:
		return true
	default:
		return false
	}
}

func (that Outcome) IsTerminal() bool {
	return that.Kind == OutcomeWon || that.Kind == OutcomeDraw
}
