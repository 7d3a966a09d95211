package rest_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/NuriAnaliserDev/myCyberapp/internal/application/dto"
	"github.com/NuriAnaliserDev/myCyberapp/internal/application/usecase"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
	"github.com/NuriAnaliserDev/myCyberapp/pkg/auth"
	"github.com/NuriAnaliserDev/myCyberapp/pkg/testutil"
)

// --- Mock implementations ---

type mockURLCheck struct {
	resp dto.ScoreResponse
	err  error
	last *dto.CheckURLRequest
}

func (m *mockURLCheck) Execute(_ context.Context, req dto.CheckURLRequest) (dto.ScoreResponse, error) {
	m.last = &req
	return m.resp, m.err
}

type mockHashCheck struct {
	resp dto.ScoreResponse
	err  error
	last *dto.CheckHashRequest
}

func (m *mockHashCheck) Execute(_ context.Context, req dto.CheckHashRequest) (dto.ScoreResponse, error) {
	m.last = &req
	return m.resp, m.err
}

type mockStatistics struct {
	resp dto.StatisticsResponse
	last *dto.GetStatisticsRequest
}

func (m *mockStatistics) Execute(_ context.Context, req dto.GetStatisticsRequest) (dto.StatisticsResponse, error) {
	m.last = &req
	if req.UserID == uuid.Nil {
		return dto.StatisticsResponse{}, usecase.ErrUserRequired
	}
	return m.resp, nil
}

type mockBlacklist struct {
	entries map[string]string
	err     error
}

func newMockBlacklist() *mockBlacklist {
	return &mockBlacklist{entries: make(map[string]string)}
}

func (m *mockBlacklist) Add(_ context.Context, req dto.AddBlacklistEntryRequest) (dto.BlacklistEntryResponse, error) {
	if m.err != nil {
		return dto.BlacklistEntryResponse{}, m.err
	}
	if req.Target == "" || req.Reason == "" {
		return dto.BlacklistEntryResponse{}, model.ErrInvalidEntry
	}
	m.entries[req.Target] = req.Reason
	return dto.BlacklistEntryResponse{Target: req.Target, Reason: req.Reason, AddedAt: time.Now().UTC()}, nil
}

func (m *mockBlacklist) Remove(_ context.Context, target string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.entries[target]; !ok {
		return model.ErrNotFound
	}
	delete(m.entries, target)
	return nil
}

func (m *mockBlacklist) List(_ context.Context, limit, offset int) (dto.BlacklistPage, error) {
	if m.err != nil {
		return dto.BlacklistPage{}, m.err
	}
	page := dto.BlacklistPage{Total: len(m.entries), Limit: limit, Offset: offset}
	for target, reason := range m.entries {
		page.Entries = append(page.Entries, dto.BlacklistEntryResponse{Target: target, Reason: reason})
	}
	return page, nil
}

type mockPinger struct {
	err error
}

func (m mockPinger) Ping(context.Context) error { return m.err }

var errStore = errors.New("store unavailable")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newJWTService(t *testing.T) *auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService(auth.JWTConfig{
		Secret:     testutil.TestJWTSecret,
		Issuer:     testutil.TestJWTIssuer,
		Expiration: time.Hour,
	})
	require.NoError(t, err)
	return svc
}

func bearer(t *testing.T, svc *auth.JWTService, userID uuid.UUID, roles ...string) string {
	t.Helper()
	token, err := svc.GenerateToken(userID, roles)
	require.NoError(t, err)
	return "Bearer " + token
}
