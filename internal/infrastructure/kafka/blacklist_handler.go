package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/NuriAnaliserDev/myCyberapp/internal/application/dto"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
	pkgkafka "github.com/NuriAnaliserDev/myCyberapp/pkg/kafka"
)

// Blacklist update actions.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// BlacklistUpdate is the message consumed from the blacklist update topic.
type BlacklistUpdate struct {
	Action string `json:"action"`
	Target string `json:"target"`
	Reason string `json:"reason,omitempty"`
}

// BlacklistManager applies blacklist changes.
type BlacklistManager interface {
	Add(ctx context.Context, req dto.AddBlacklistEntryRequest) (dto.BlacklistEntryResponse, error)
	Remove(ctx context.Context, target string) error
}

// NewBlacklistHandler returns a consumer handler that applies BlacklistUpdate
// messages. Messages that can never succeed are logged and acknowledged;
// store failures are returned so the message is redelivered.
func NewBlacklistHandler(manager BlacklistManager, logger *slog.Logger) pkgkafka.Handler {
	return func(ctx context.Context, msg pkgkafka.Message) error {
		var update BlacklistUpdate
		if err := json.Unmarshal(msg.Value, &update); err != nil {
			logger.WarnContext(ctx, "skipping malformed blacklist update", slog.String("error", err.Error()))
			return nil
		}

		var err error
		switch strings.ToLower(update.Action) {
		case ActionAdd:
			_, err = manager.Add(ctx, dto.AddBlacklistEntryRequest{Target: update.Target, Reason: update.Reason})
		case ActionRemove:
			err = manager.Remove(ctx, update.Target)
			if errors.Is(err, model.ErrNotFound) {
				err = nil
			}
		default:
			logger.WarnContext(ctx, "skipping blacklist update with unknown action",
				slog.String("action", update.Action),
				slog.String("target", update.Target),
			)
			return nil
		}

		if errors.Is(err, model.ErrInvalidEntry) {
			logger.WarnContext(ctx, "skipping invalid blacklist update",
				slog.String("action", update.Action),
				slog.String("error", err.Error()),
			)
			return nil
		}
		if err != nil {
			return fmt.Errorf("apply blacklist %s for %q: %w", update.Action, update.Target, err)
		}
		return nil
	}
}
