//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NuriAnaliserDev/myCyberapp/internal/application/usecase"
	"github.com/NuriAnaliserDev/myCyberapp/internal/infrastructure/kafka"
	"github.com/NuriAnaliserDev/myCyberapp/internal/infrastructure/sqlite"
	pkgkafka "github.com/NuriAnaliserDev/myCyberapp/pkg/kafka"
	"github.com/NuriAnaliserDev/myCyberapp/pkg/testutil"
)

func TestBlacklistUpdatesRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	kc := testutil.NewKafkaContainer(ctx, t)
	cfg := pkgkafka.Config{Brokers: kc.Brokers, ConsumerGroup: "reputationd-test"}
	const topic = "reputation.blacklist.updates"

	store, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer store.Close()
	repo := store.Blacklist()

	consumer, err := pkgkafka.NewConsumer(cfg, topic,
		kafka.NewBlacklistHandler(usecase.NewManageBlacklist(repo, discard), discard), discard)
	require.NoError(t, err)
	defer consumer.Close()

	consumeCtx, stop := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- consumer.Start(consumeCtx) }()

	producer, err := pkgkafka.NewProducer(cfg)
	require.NoError(t, err)
	defer producer.Close()

	value, err := json.Marshal(kafka.BlacklistUpdate{Action: kafka.ActionAdd, Target: "Evil.Example", Reason: "threat intel"})
	require.NoError(t, err)
	require.NoError(t, producer.Publish(ctx, topic, pkgkafka.Message{Key: []byte("evil.example"), Value: value}))

	assert.Eventually(t, func() bool {
		reason, found, err := repo.Lookup(ctx, "evil.example")
		return err == nil && found && reason == "threat intel"
	}, 90*time.Second, 500*time.Millisecond)

	stop()
	require.NoError(t, <-done)
}
