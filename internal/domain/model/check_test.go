package model_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/event"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

func TestNewCheck_RequiresKind(t *testing.T) {
	_, err := model.NewCheck(valueobject.TargetKind{}, "http://example.com", uuid.Nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target kind is required")
}

func TestCheck_Complete_EmitsEvents(t *testing.T) {
	tests := []struct {
		name          string
		result        model.ScoreResult
		expectedTypes []string
	}{
		{
			name:          "safe result emits completion only",
			result:        model.NewScoreResult(0, nil, valueobject.MethodHeuristic),
			expectedTypes: []string{event.EventTypeCheckCompleted},
		},
		{
			name:          "dangerous result emits threat",
			result:        model.BlacklistedResult("known kit"),
			expectedTypes: []string{event.EventTypeCheckCompleted, event.EventTypeThreatDetected},
		},
		{
			name:          "invalid result emits nothing",
			result:        model.InvalidResult(),
			expectedTypes: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check, err := model.NewCheck(valueobject.TargetKindURL, "http://example.com", uuid.New())
			require.NoError(t, err)
			require.NoError(t, check.Complete(tt.result))

			var types []string
			for _, e := range check.ClearEvents() {
				types = append(types, e.EventType())
				assert.Equal(t, check.ID(), e.AggregateID())
				assert.NotEmpty(t, e.Payload())
			}
			assert.Equal(t, tt.expectedTypes, types)
			assert.Empty(t, check.Events())
		})
	}
}

func TestCheck_CompleteTwice(t *testing.T) {
	check, err := model.NewCheck(valueobject.TargetKindAPK, "abc", uuid.Nil)
	require.NoError(t, err)
	require.NoError(t, check.Complete(model.CleanResult()))

	err = check.Complete(model.CleanResult())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already completed")
}

func TestCheck_Counters(t *testing.T) {
	requester := uuid.New()

	t.Run("anonymous counts nothing", func(t *testing.T) {
		check, _ := model.NewCheck(valueobject.TargetKindURL, "http://a.com", uuid.Nil)
		require.NoError(t, check.Complete(model.BlacklistedResult("x")))
		assert.True(t, check.IsAnonymous())
		assert.Empty(t, check.Counters())
	})

	t.Run("url threat", func(t *testing.T) {
		check, _ := model.NewCheck(valueobject.TargetKindURL, "http://a.com", requester)
		require.NoError(t, check.Complete(model.BlacklistedResult("x")))
		assert.Equal(t, []valueobject.Counter{
			valueobject.CounterURLsScanned,
			valueobject.CounterThreatsDetected,
		}, check.Counters())
	})

	t.Run("clean apk", func(t *testing.T) {
		check, _ := model.NewCheck(valueobject.TargetKindAPK, "abc", requester)
		require.NoError(t, check.Complete(model.CleanResult()))
		assert.Equal(t, []valueobject.Counter{valueobject.CounterAppsScanned}, check.Counters())
	})

	t.Run("invalid url", func(t *testing.T) {
		check, _ := model.NewCheck(valueobject.TargetKindURL, "::", requester)
		require.NoError(t, check.Complete(model.InvalidResult()))
		assert.False(t, check.IsRecordable())
		assert.Empty(t, check.Counters())
	})
}

func TestCheck_LogEntry(t *testing.T) {
	check, _ := model.NewCheck(valueobject.TargetKindURL, "http://192.168.1.1/login", uuid.Nil)
	require.NoError(t, check.Complete(model.NewScoreResult(40, []string{"IP address used as domain"}, valueobject.MethodHeuristic)))

	entry := check.LogEntry()
	assert.NotEqual(t, uuid.Nil, entry.ID())
	assert.Equal(t, valueobject.TargetKindURL, entry.Kind())
	assert.Equal(t, "http://192.168.1.1/login", entry.Target())
	assert.Equal(t, 40, entry.Score())
	assert.Equal(t, valueobject.VerdictWarning, entry.Verdict())
}
