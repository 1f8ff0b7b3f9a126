package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-match/internal/entity"
	"github.com/rocketscienceinc/tictactoe-match/internal/tictactoe"
)

const emptyCellSymbol = "."

// Renderer prints the board and move outcomes for a human. Prompts are
// only written in interactive mode.
type Renderer struct {
	out         io.Writer
	interactive bool
}

func NewRenderer(out io.Writer, interactive bool) *Renderer {
	return &Renderer{out: out, interactive: interactive}
}

// RenderGrid writes one line per row, cells separated by " | ".
func (that *Renderer) RenderGrid(cells [][]entity.Mark) error {
	var sb strings.Builder

	for _, row := range cells {
		symbols := make([]string, len(row))
		for i, cell := range row {
			symbols[i] = cell.String()
			if cell == entity.Empty {
				symbols[i] = emptyCellSymbol
			}
		}

		sb.WriteString(strings.Join(symbols, " | "))
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		return fmt.Errorf("failed to write grid: %w", err)
	}

	return nil
}

// Announce writes a one line summary of the outcome.
func (that *Renderer) Announce(outcome tictactoe.Outcome) error {
	var line string

	switch outcome.Kind {
	case tictactoe.OutcomeMoved:
		line = fmt.Sprintf("%s played %d,%d", outcome.Player, outcome.Row, outcome.Col)
	case tictactoe.OutcomeWon:
		line = fmt.Sprintf("Player %s wins!", outcome.Player.Name())
	case tictactoe.OutcomeDraw:
		line = "The game is a draw."
	case tictactoe.OutcomeRejectedOccupied:
		line = fmt.Sprintf("Cell %d,%d is taken, try again %s.", outcome.Row, outcome.Col, outcome.Player.Name())
	case tictactoe.OutcomeRejectedOutOfBounds:
		line = fmt.Sprintf("Cell %d,%d is off the board, try again %s.", outcome.Row, outcome.Col, outcome.Player.Name())
	case tictactoe.OutcomeRejectedGameOver:
		line = "The game is already over."
	default:
		line = outcome.Kind.String()
	}

	if _, err := fmt.Fprintln(that.out, line); err != nil {
		return fmt.Errorf("failed to write outcome: %w", err)
	}

	return nil
}

// OnTurn asks the player for a move.
func (that *Renderer) OnTurn(player *entity.Player) error {
	if !that.interactive {
		return nil
	}

	if _, err := fmt.Fprintf(that.out, "Player %s's turn: ", player); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}

	return nil
}

// OnInvalidInput tells the player why the line was not accepted.
func (that *Renderer) OnInvalidInput(player *entity.Player, inputErr error) error {
	if _, err := fmt.Fprintf(that.out, "%s, try again %s.\n", inputErr, player.Name()); err != nil {
		return fmt.Errorf("failed to write input error: %w", err)
	}

	return nil
}

// OnOutcome renders the board after an accepted move and announces every outcome.
func (that *Renderer) OnOutcome(cells [][]entity.Mark, outcome tictactoe.Outcome) error {
	if !outcome.IsRejected() {
		if err := that.RenderGrid(cells); err != nil {
			return err
		}
	}

	return that.Announce(outcome)
}
