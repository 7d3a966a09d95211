package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

// Handler processes a consumed Kafka message.
type Handler func(ctx context.Context, msg Message) error

const (
	defaultRetryBase = 500 * time.Millisecond
	defaultRetryMax  = 30 * time.Second
)

// Consumer reads a topic as part of a consumer group and hands each message
// to a Handler. A failing message is retried with backoff until the handler
// succeeds, and only then committed, so partition order is preserved.
type Consumer struct {
	reader    *kafkago.Reader
	handler   Handler
	logger    *slog.Logger
	retryBase time.Duration
	retryMax  time.Duration
}

// NewConsumer creates a Consumer for topic.
func NewConsumer(cfg Config, topic string, handler Handler, logger *slog.Logger) (*Consumer, error) {
	if cfg.ConsumerGroup == "" {
		return nil, errors.New("kafka consumer: consumer group is required")
	}
	mechanism, err := cfg.saslMechanism()
	if err != nil {
		return nil, fmt.Errorf("kafka consumer: %w", err)
	}

	r := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    topic,
		GroupID:  cfg.ConsumerGroup,
		MinBytes: 1,
		MaxBytes: 10 * 1024 * 1024,
		Dialer: &kafkago.Dialer{
			ClientID:      cfg.ClientID,
			Timeout:       10 * time.Second,
			DualStack:     true,
			TLS:           cfg.tlsConfig(),
			SASLMechanism: mechanism,
		},
	})

	return &Consumer{
		reader:    r,
		handler:   handler,
		logger:    logger,
		retryBase: defaultRetryBase,
		retryMax:  defaultRetryMax,
	}, nil
}

// Start begins consuming messages. Blocks until the context is canceled.
func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info("consumer starting", "topic", c.reader.Config().Topic, "group", c.reader.Config().GroupID)

	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				c.logger.Info("consumer stopping due to context cancellation")
				return nil
			}
			return fmt.Errorf("fetching message: %w", err)
		}

		if err := c.handleWithRetry(ctx, m); err != nil {
			c.logger.Info("consumer stopping due to context cancellation")
			return nil
		}

		if err := c.reader.CommitMessages(ctx, m); err != nil {
			c.logger.Error("commit error",
				"topic", m.Topic,
				"partition", m.Partition,
				"offset", m.Offset,
				"error", err,
			)
		}
	}
}

// handleWithRetry runs the handler until it succeeds. It only fails when ctx
// is done.
func (c *Consumer) handleWithRetry(ctx context.Context, m kafkago.Message) error {
	msg := fromKafka(m)
	backoff := c.retryBase
	for {
		err := c.handler(ctx, msg)
		if err == nil {
			return nil
		}
		c.logger.Error("handler error, retrying",
			"topic", m.Topic,
			"partition", m.Partition,
			"offset", m.Offset,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, c.retryMax)
	}
}

// Close closes the reader.
func (c *Consumer) Close() error {
	if err := c.reader.Close(); err != nil {
		return fmt.Errorf("closing kafka reader: %w", err)
	}
	return nil
}

func fromKafka(m kafkago.Message) Message {
	msg := Message{
		Key:     m.Key,
		Value:   m.Value,
		Headers: make(map[string]string, len(m.Headers)),
	}
	for _, h := range m.Headers {
		msg.Headers[h.Key] = string(h.Value)
	}
	return msg
}
