package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NuriAnaliserDev/myCyberapp/internal/application/dto"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/port"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// ManageBlacklist is the use case for the administrative deny-list lifecycle.
type ManageBlacklist struct {
	repo   port.BlacklistRepository
	logger *slog.Logger
}

// NewManageBlacklist creates a new ManageBlacklist use case.
func NewManageBlacklist(repo port.BlacklistRepository, logger *slog.Logger) *ManageBlacklist {
	return &ManageBlacklist{repo: repo, logger: logger}
}

// Add inserts an entry, or replaces the reason if the target is already listed.
func (uc *ManageBlacklist) Add(ctx context.Context, req dto.AddBlacklistEntryRequest) (dto.BlacklistEntryResponse, error) {
	entry, err := model.NewBlacklistEntry(req.Target, req.Reason)
	if err != nil {
		return dto.BlacklistEntryResponse{}, err
	}

	if err := uc.repo.Save(ctx, entry); err != nil {
		return dto.BlacklistEntryResponse{}, fmt.Errorf("failed to save blacklist entry: %w", err)
	}

	uc.logger.Info("blacklist entry added", slog.String("target", entry.Target()))
	return dto.FromBlacklistEntry(entry), nil
}

// Remove deletes an entry. It returns model.ErrNotFound if target is not listed.
func (uc *ManageBlacklist) Remove(ctx context.Context, target string) error {
	target = model.NormalizeBlacklistTarget(target)
	if target == "" {
		return fmt.Errorf("%w: target is required", model.ErrInvalidEntry)
	}

	if err := uc.repo.Delete(ctx, target); err != nil {
		return fmt.Errorf("failed to delete blacklist entry: %w", err)
	}

	uc.logger.Info("blacklist entry removed", slog.String("target", target))
	return nil
}

// List returns one page of entries ordered by most recently added.
func (uc *ManageBlacklist) List(ctx context.Context, limit, offset int) (dto.BlacklistPage, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	entries, total, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return dto.BlacklistPage{}, fmt.Errorf("failed to list blacklist entries: %w", err)
	}

	page := dto.BlacklistPage{
		Entries: make([]dto.BlacklistEntryResponse, 0, len(entries)),
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}
	for _, e := range entries {
		page.Entries = append(page.Entries, dto.FromBlacklistEntry(e))
	}
	return page, nil
}
