package service

import (
	"context"
	"log/slog"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/port"
)

// BlacklistGate consults the deny-list before any scoring. Store failures are
// treated as "not listed".
type BlacklistGate struct {
	lookup port.BlacklistLookup
	logger *slog.Logger
}

// NewBlacklistGate creates a BlacklistGate. A nil lookup never matches.
func NewBlacklistGate(lookup port.BlacklistLookup, logger *slog.Logger) *BlacklistGate {
	return &BlacklistGate{lookup: lookup, logger: logger}
}

// Check returns the reason of the first listed key.
func (g *BlacklistGate) Check(ctx context.Context, keys ...string) (string, bool) {
	if g.lookup == nil {
		return "", false
	}
	for _, key := range keys {
		reason, found, err := g.lookup.Lookup(ctx, key)
		if err != nil {
			g.logger.Warn("blacklist lookup failed, treating as not listed",
				slog.String("target", key),
				slog.String("error", err.Error()),
			)
			return "", false
		}
		if found {
			return reason, true
		}
	}
	return "", false
}
