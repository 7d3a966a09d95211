package usecase_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
	"github.com/NuriAnaliserDev/myCyberapp/pkg/events"
)

// --- Mock implementations ---

type stubChecker struct {
	urlResult  model.ScoreResult
	hashResult model.ScoreResult
}

func (s *stubChecker) CheckURL(_ context.Context, _ string) model.ScoreResult  { return s.urlResult }
func (s *stubChecker) CheckHash(_ context.Context, _ string) model.ScoreResult { return s.hashResult }

type mockRequestLog struct {
	entries []model.RequestLogEntry
	err     error
}

func (m *mockRequestLog) Append(_ context.Context, entry model.RequestLogEntry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}

type increment struct {
	userID   uuid.UUID
	day      time.Time
	counters []valueobject.Counter
}

type mockStatistics struct {
	increments []increment
	daily      []model.DailyStatistics
	total      model.DailyStatistics
	since      time.Time
	err        error
}

func (m *mockStatistics) Increment(_ context.Context, userID uuid.UUID, day time.Time, counters ...valueobject.Counter) error {
	if m.err != nil {
		return m.err
	}
	m.increments = append(m.increments, increment{userID: userID, day: day, counters: counters})
	return nil
}

func (m *mockStatistics) Daily(_ context.Context, _ uuid.UUID, since time.Time) ([]model.DailyStatistics, error) {
	m.since = since
	if m.err != nil {
		return nil, m.err
	}
	return m.daily, nil
}

func (m *mockStatistics) Totals(context.Context, uuid.UUID) (model.DailyStatistics, error) {
	if m.err != nil {
		return model.DailyStatistics{}, m.err
	}
	return m.total, nil
}

type mockPublisher struct {
	mu        sync.Mutex
	published []events.DomainEvent
	err       error
}

func (m *mockPublisher) Publish(_ context.Context, evts ...events.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, evts...)
	return nil
}

func (m *mockPublisher) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var types []string
	for _, e := range m.published {
		types = append(types, e.EventType())
	}
	return types
}

type recordedCheck struct {
	kind, verdict, method string
	score                 int
}

type mockMetrics struct {
	checks []recordedCheck
}

func (m *mockMetrics) RecordCheck(_ context.Context, kind, verdict, method string, score int) {
	m.checks = append(m.checks, recordedCheck{kind: kind, verdict: verdict, method: method, score: score})
}

type mockBlacklistRepo struct {
	saved    map[string]model.BlacklistEntry
	saveErr  error
	listErr  error
	lastPage [2]int
}

func newMockBlacklistRepo() *mockBlacklistRepo {
	return &mockBlacklistRepo{saved: map[string]model.BlacklistEntry{}}
}

func (m *mockBlacklistRepo) Lookup(_ context.Context, target string) (string, bool, error) {
	e, ok := m.saved[target]
	return e.Reason(), ok, nil
}

func (m *mockBlacklistRepo) Save(_ context.Context, entry model.BlacklistEntry) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved[entry.Target()] = entry
	return nil
}

func (m *mockBlacklistRepo) Delete(_ context.Context, target string) error {
	if _, ok := m.saved[target]; !ok {
		return model.ErrNotFound
	}
	delete(m.saved, target)
	return nil
}

func (m *mockBlacklistRepo) List(_ context.Context, limit, offset int) ([]model.BlacklistEntry, int, error) {
	m.lastPage = [2]int{limit, offset}
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	var out []model.BlacklistEntry
	for _, e := range m.saved {
		out = append(out, e)
	}
	return out, len(m.saved), nil
}

var errStoreDown = errors.New("store unavailable")
