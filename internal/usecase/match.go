package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-match/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-match/internal/entity"
	"github.com/rocketscienceinc/tictactoe-match/internal/tictactoe"
)

type resultRepo interface {
	Save(ctx context.Context, result *entity.MatchResult) error
	Leaderboard(ctx context.Context, limit int64) ([]entity.Score, error)
}

// MoveSource supplies the next (row, col) for the given player.
// It returns io.EOF when no more moves are available.
type MoveSource interface {
	NextMove(ctx context.Context, player *entity.Player) (int, int, error)
}

// MatchObserver is told about every turn, every outcome and every input
// that could not be read as a move.
type MatchObserver interface {
	OnTurn(player *entity.Player) error
	OnOutcome(cells [][]entity.Mark, outcome tictactoe.Outcome) error
	OnInvalidInput(player *entity.Player, err error) error
}

type MatchService struct {
	logger  *slog.Logger
	results resultRepo
	now     func() time.Time
}

// NewMatchService creates the service. results may be nil, in which case
// finished matches are not recorded.
func NewMatchService(logger *slog.Logger, results resultRepo) *MatchService {
	return &MatchService{
		logger:  logger.With("component", "match_service"),
		results: results,
		now:     time.Now,
	}
}

// Play drives match until it is won or drawn, one move per turn. A match
// that is already over is refused so its result is never recorded twice.
func (that *MatchService) Play(ctx context.Context, match *tictactoe.Match, source MoveSource, observer MatchObserver) (*entity.MatchResult, error) {
	log := that.logger.With("method", "Play")

	if match.IsFinished() {
		return nil, fmt.Errorf("cannot play match: %w", apperror.ErrGameFinished)
	}

	for !match.IsFinished() {
		player := match.ActivePlayer()

		if err := observer.OnTurn(player); err != nil {
			return nil, fmt.Errorf("failed to announce turn: %w", err)
		}

		row, col, err := source.NextMove(ctx, player)
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %d moves played", apperror.ErrMatchUnfinished, len(match.Moves()))
		}

		if errors.Is(err, apperror.ErrMalformedMove) {
			log.Warn("skipping malformed move", "player", player.Name(), "error", err)

			if err = observer.OnInvalidInput(player, err); err != nil {
				return nil, fmt.Errorf("failed to report invalid input: %w", err)
			}

			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to get next move: %w", err)
		}

		outcome, err := match.MakeMove(row, col)
		if err != nil && !outcome.IsRejected() {
			return nil, fmt.Errorf("failed to make move: %w", err)
		}

		if err != nil {
			log.Info("move rejected", "player", player.Name(), "row", row, "col", col, "outcome", outcome.Kind.String(), "error", err)
		} else {
			log.Debug("move accepted", "player", player.Name(), "row", row, "col", col, "outcome", outcome.Kind.String())
		}

		if err = observer.OnOutcome(match.Grid(), outcome); err != nil {
			return nil, fmt.Errorf("failed to report outcome: %w", err)
		}
	}

	result := that.buildResult(match)

	log.Info("match finished", "id", result.ID, "outcome", result.Outcome, "winner", result.Winner, "moves", len(result.Moves))

	if err := that.saveResult(ctx, result); err != nil {
		return result, err
	}

	return result, nil
}

// Leaderboard returns the players with the most recorded wins.
func (that *MatchService) Leaderboard(ctx context.Context, limit int64) ([]entity.Score, error) {
	if that.results == nil {
		return nil, apperror.ErrResultsDisabled
	}

	scores, err := that.results.Leaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return scores, nil
}

func (that *MatchService) buildResult(match *tictactoe.Match) *entity.MatchResult {
	players := match.Players()
	records := make([]entity.PlayerRecord, 0, len(players))
	for _, player := range players {
		records = append(records, entity.PlayerRecord{Name: player.Name(), Mark: player.Mark()})
	}

	result := &entity.MatchResult{
		ID:         uuid.NewString(),
		BoardSize:  match.BoardSize(),
		Players:    records,
		Outcome:    entity.OutcomeDraw,
		Moves:      match.Moves(),
		FinishedAt: that.now().UTC(),
	}

	if winner := match.Winner(); winner != nil {
		result.Outcome = entity.OutcomeWon
		result.Winner = winner.Name()
		result.WinnerMark = winner.Mark()
	}

	return result
}

func (that *MatchService) saveResult(ctx context.Context, result *entity.MatchResult) error {
	if that.results == nil {
		return nil
	}

	if err := that.results.Save(ctx, result); err != nil {
		return fmt.Errorf("failed to save match result: %w", err)
	}

	return nil
}
