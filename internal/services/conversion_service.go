package services

import (
	"context"
	"errors"
	"strings"

	"github.com/vytor/pgn2json/internal/config"
	apperrors "github.com/vytor/pgn2json/internal/errors"
	"github.com/vytor/pgn2json/internal/logger"
	"github.com/vytor/pgn2json/internal/models"
	"github.com/vytor/pgn2json/internal/pgn"
	"github.com/vytor/pgn2json/internal/replay"
	"github.com/vytor/pgn2json/internal/worker"
)

// ConversionService turns PGN text into parsed game records
type ConversionService interface {
	Convert(ctx context.Context, text string) (models.Conversion, error)
	ConvertBatch(ctx context.Context, texts []string) ([]models.Conversion, error)
}

type conversionService struct {
	config   config.Config
	replayer replay.Replayer
}

// NewConversionService creates a new ConversionService. replayer is only
// consulted when cfg.ValidateMoves is set and may be nil otherwise.
func NewConversionService(cfg config.Config, replayer replay.Replayer) ConversionService {
	return &conversionService{
		config:   cfg,
		replayer: replayer,
	}
}

// Convert parses text. The parsed record is returned even when an error is:
// errors only come from strict mode, move replay or cancellation.
func (s *conversionService) Convert(ctx context.Context, text string) (models.Conversion, error) {
	if err := ctx.Err(); err != nil {
		return models.Conversion{}, err
	}

	game := pgn.Parse(text)
	conv := models.Conversion{Game: game}

	log := logger.FromContext(ctx).WithFields(map[string]any{
		"event": game.Event.OrElse("?"),
		"moves": game.MoveCount(),
	})
	log.Debug("parsed game")

	if s.config.Strict && strings.TrimSpace(text) == "" {
		return conv, apperrors.NewEmptyInputError()
	}

	moves, ok := game.Moves.Get()
	if !ok {
		log.Warn("no moves found in movetext")
		if s.config.Strict {
			return conv, apperrors.NewNoMovesError()
		}
		return conv, nil
	}

	if !s.config.ValidateMoves || s.replayer == nil {
		return conv, nil
	}

	result, err := s.replayer.Replay(ctx, moves)
	if err != nil {
		log.Warn("move replay failed: %v", err)
		return conv, err
	}
	conv.FENs = result.FENs
	conv.UCI = result.UCI
	conv.ECO = result.ECO
	conv.Opening = result.Opening

	return conv, nil
}

var errNotRun = errors.New("conversion not run")

// ConvertBatch converts texts concurrently on a worker pool. Results keep the
// order of texts and each carries its own error. The returned error is only
// set when ctx ends before every text was converted.
func (s *conversionService) ConvertBatch(ctx context.Context, texts []string) ([]models.Conversion, error) {
	log := logger.FromContext(ctx)
	results := make([]models.Conversion, len(texts))
	if len(texts) == 0 {
		return results, nil
	}

	for i := range results {
		results[i] = models.Conversion{Index: i, Err: errNotRun}
	}

	workers := min(s.config.BatchWorkerCount, len(texts))
	pool := worker.NewPool(workers, s.config.BatchQueueSize, log)
	pool.Start(ctx)

	for i, text := range texts {
		job := &worker.ConvertJob{Converter: s, Index: i, Text: text, Out: &results[i]}
		if err := pool.Submit(ctx, job); err != nil {
			break
		}
	}
	pool.Close()

	failed := 0
	for i := range results {
		if errors.Is(results[i].Err, errNotRun) {
			results[i].Err = ctx.Err()
		}
		if results[i].Err != nil {
			failed++
		}
	}
	log.Info("converted %d games (%d failed)", len(texts), failed)

	return results, ctx.Err()
}
