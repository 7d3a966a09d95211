package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NuriAnaliserDev/myCyberapp/internal/application/dto"
	"github.com/NuriAnaliserDev/myCyberapp/internal/application/usecase"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/service"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

func TestCheckHash_Execute(t *testing.T) {
	engine, err := service.NewEngine(service.DefaultRules(), service.EngineDeps{})
	require.NoError(t, err)

	t.Run("known signature counts an app scan and a threat", func(t *testing.T) {
		recorder, c := newRecorder()
		uc := usecase.NewCheckHash(engine, recorder)

		resp, err := uc.Execute(context.Background(), dto.CheckHashRequest{
			Hash:        "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
			RequesterID: uuid.New(),
		})
		require.NoError(t, err)
		assert.Equal(t, 100, resp.Score)
		assert.Equal(t, "dangerous", resp.Verdict)
		assert.Equal(t, []string{"Known malicious signature: Test Virus Signature"}, resp.Reasons)
		assert.Empty(t, resp.Method)
		assert.Nil(t, resp.MLConfidence)

		require.Len(t, c.stats.increments, 1)
		assert.Equal(t, []valueobject.Counter{
			valueobject.CounterAppsScanned,
			valueobject.CounterThreatsDetected,
		}, c.stats.increments[0].counters)
		require.Len(t, c.log.entries, 1)
		assert.Equal(t, valueobject.TargetKindAPK, c.log.entries[0].Kind())
	})

	t.Run("unknown hash is safe", func(t *testing.T) {
		recorder, _ := newRecorder()
		uc := usecase.NewCheckHash(engine, recorder)

		resp, err := uc.Execute(context.Background(), dto.CheckHashRequest{Hash: "ffff"})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Score)
		assert.Equal(t, "safe", resp.Verdict)
		assert.Equal(t, []string{}, resp.Reasons)
	})
}
