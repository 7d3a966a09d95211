package messaging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NuriAnaliserDev/myCyberapp/internal/infrastructure/messaging"
	"github.com/NuriAnaliserDev/myCyberapp/pkg/events"
)

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	pub := messaging.NewLogPublisher(slog.New(slog.NewTextHandler(&buf, nil)))

	evt := events.NewBaseEvent("reputation.check.completed", uuid.New(), "Check", []byte(`{"score":0}`))
	require.NoError(t, pub.Publish(context.Background(), evt))

	out := buf.String()
	assert.Contains(t, out, "event_type=reputation.check.completed")
	assert.Contains(t, out, evt.EventID().String())
}
