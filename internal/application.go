package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-match/internal/config"
	"github.com/rocketscienceinc/tictactoe-match/internal/entity"
	"github.com/rocketscienceinc/tictactoe-match/internal/repository"
	"github.com/rocketscienceinc/tictactoe-match/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-match/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-match/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-match/transport/console"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// MatchOptions describe a single match to play.
type MatchOptions struct {
	BoardSize int
	Players   []config.Player
	// Script holds "row,col" pairs; when empty moves are read from In.
	Script string
	In     io.Reader
	Out    io.Writer
}

// RunMatch - plays one match to the end and prints it to opts.Out.
func RunMatch(logger *slog.Logger, conf *config.Config, opts MatchOptions) error {
	log := logger.With("component", "app")

	ctx, cancel := signalContext(log)
	defer cancel()

	players, err := buildPlayers(opts.Players)
	if err != nil {
		return fmt.Errorf("invalid players: %w", err)
	}

	match, err := tictactoe.NewMatch(players, opts.BoardSize)
	if err != nil {
		return fmt.Errorf("could not create match: %w", err)
	}

	var source usecase.MoveSource
	interactive := opts.Script == ""
	if interactive {
		source = console.NewMoveReader(opts.In)
	} else {
		if source, err = console.ParseScript(opts.Script); err != nil {
			return fmt.Errorf("invalid moves: %w", err)
		}
	}

	service, closeStorage, err := newMatchService(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	renderer := console.NewRenderer(opts.Out, interactive)
	if err = renderer.RenderGrid(match.Grid()); err != nil {
		return err
	}

	result, err := service.Play(ctx, match, source, renderer)
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	log.Info("match result", "id", result.ID, "outcome", result.Outcome, "winner", result.Winner)

	return nil
}

// RunLeaderboard - prints the top players recorded in Redis.
func RunLeaderboard(logger *slog.Logger, conf *config.Config, out io.Writer, limit int64) error {
	log := logger.With("component", "app")

	ctx, cancel := signalContext(log)
	defer cancel()

	service, closeStorage, err := newMatchService(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	scores, err := service.Leaderboard(ctx, limit)
	if err != nil {
		return fmt.Errorf("could not read leaderboard: %w", err)
	}

	for i, score := range scores {
		if _, err = fmt.Fprintf(out, "%2d. %-20s %d\n", i+1, score.Name, score.Wins); err != nil {
			return fmt.Errorf("failed to write leaderboard: %w", err)
		}
	}

	return nil
}

// newMatchService connects the results storage when it is enabled.
func newMatchService(ctx context.Context, logger *slog.Logger, conf *config.Config) (*usecase.MatchService, func(), error) {
	log := logger.With("component", "app")

	if !conf.Redis.Enabled {
		log.Debug("results storage disabled")
		return usecase.NewMatchService(logger, nil), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
			log.Error("could not close redis storage", "error", err)
		}
	}

	resultRepo := repository.NewResultRepository(redisStorage)

	return usecase.NewMatchService(logger, resultRepo), closeStorage, nil
}

func buildPlayers(configured []config.Player) ([]*entity.Player, error) {
	players := make([]*entity.Player, 0, len(configured))

	for _, p := range configured {
		mark, err := entity.ParseMark(p.Mark)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", p.Name, err)
		}

		player, err := entity.NewPlayer(p.Name, mark)
		if err != nil {
			return nil, fmt.Errorf("player %q: %w", p.Name, err)
		}

		players = append(players, player)
	}

	return players, nil
}

func signalContext(log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigs)
	}()

	return ctx, cancel
}
