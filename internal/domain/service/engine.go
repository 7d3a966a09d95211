package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/port"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

// Engine runs URL and hash checks. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	logger     *slog.Logger
	gate       *BlacklistGate
	aggregator *Aggregator
	external   *ExternalSignal
	hashes     *HashChecker
	rules      Rules
}

// EngineDeps are the collaborators of the Engine. Blacklist and Feed may be nil.
type EngineDeps struct {
	Blacklist   port.BlacklistLookup
	Feed        port.ReputationFeed
	FeedTimeout time.Duration
	Logger      *slog.Logger
}

// NewEngine validates rules and builds an Engine over a private copy of them.
func NewEngine(rules Rules, deps EngineDeps) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := &Engine{rules: rules.clone(), logger: logger}
	e.gate = NewBlacklistGate(deps.Blacklist, logger)
	e.aggregator = NewAggregator(&e.rules)
	e.external = NewExternalSignal(deps.Feed, deps.FeedTimeout, logger)
	e.hashes = NewHashChecker(e.gate)
	return e, nil
}

// Rules returns a copy of the engine's rules.
func (e *Engine) Rules() Rules {
	return e.rules.clone()
}

// CheckURL scores raw. Invalid input bypasses the blacklist and all detectors.
// A blacklisted host short-circuits scoring. Otherwise the feed is queried
// concurrently with local scoring and, on a match, overrides the score.
func (e *Engine) CheckURL(ctx context.Context, raw string) (result model.ScoreResult) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("url check panicked", slog.Any("panic", r))
			result = model.ErrorResult()
		}
	}()

	target := Normalize(raw)
	if !target.IsValid() {
		return model.InvalidResult()
	}

	if reason, listed := e.gate.Check(ctx, BlacklistKeys(target)...); listed {
		return model.BlacklistedResult(reason)
	}

	var (
		label   string
		flagged bool
		g       errgroup.Group
	)
	if e.external.Enabled() {
		g.Go(func() error {
			label, flagged = e.external.Query(ctx, raw)
			return nil
		})
	}

	result = e.aggregator.Score(target)
	_ = g.Wait()

	if flagged {
		result = result.WithOverride(model.MaxScore, feedReason(label))
	}

	e.logger.Debug("url scored",
		slog.String("host", target.DisplayHost()),
		slog.Int("score", result.Score()),
		slog.String("verdict", result.Verdict().String()),
		slog.String("method", result.Method().String()),
	)
	return result
}

// CheckHash checks hash against the deny-list and the known signatures.
func (e *Engine) CheckHash(ctx context.Context, hash string) (result model.ScoreResult) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("hash check panicked", slog.Any("panic", r))
			result = model.ErrorResult()
		}
	}()

	return e.hashes.Check(ctx, hash)
}

// Explain returns every local signal for raw, triggered or not. Used by the
// admin CLI to show how a URL was scored.
func (e *Engine) Explain(raw string) []valueobject.Signal {
	return Extract(&e.rules, Normalize(raw))
}
