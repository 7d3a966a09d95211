package kafka

import (
	"context"
	"fmt"
	"sync"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

// Message represents a Kafka message.
type Message struct {
	Headers map[string]string
	Key     []byte
	Value   []byte
}

// Producer publishes messages, keeping one writer per topic.
type Producer struct {
	transport *kafkago.Transport
	writers   map[string]*kafkago.Writer
	brokers   []string
	mu        sync.Mutex
}

// NewProducer creates a Producer. Writers are created on first use of each topic.
func NewProducer(cfg Config) (*Producer, error) {
	mechanism, err := cfg.saslMechanism()
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return &Producer{
		transport: &kafkago.Transport{
			ClientID: cfg.ClientID,
			TLS:      cfg.tlsConfig(),
			SASL:     mechanism,
		},
		writers: make(map[string]*kafkago.Writer),
		brokers: cfg.Brokers,
	}, nil
}

// Publish sends messages to the specified topic.
func (p *Producer) Publish(ctx context.Context, topic string, messages ...Message) error {
	if len(messages) == 0 {
		return nil
	}
	w := p.writer(topic)

	kafkaMessages := make([]kafkago.Message, 0, len(messages))
	for _, msg := range messages {
		km := kafkago.Message{
			Key:   msg.Key,
			Value: msg.Value,
		}
		for k, v := range msg.Headers {
			km.Headers = append(km.Headers, kafkago.Header{Key: k, Value: []byte(v)})
		}
		kafkaMessages = append(kafkaMessages, km)
	}

	if err := w.WriteMessages(ctx, kafkaMessages...); err != nil {
		return fmt.Errorf("kafka publish to %s: %w", topic, err)
	}
	return nil
}

// Close closes all writers.
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, w := range p.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing writer for topic %s: %w", topic, err)
		}
	}
	p.writers = make(map[string]*kafkago.Writer)
	return firstErr
}

// Topics lists the topics a writer has been opened for.
func (p *Producer) Topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	topics := make([]string, 0, len(p.writers))
	for t := range p.writers {
		topics = append(topics, t)
	}
	return topics
}

func (p *Producer) writer(topic string) *kafkago.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if w, ok := p.writers[topic]; ok {
		return w
	}

	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(p.brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafkago.RequireAll,
		Transport:              p.transport,
		AllowAutoTopicCreation: true,
	}
	p.writers[topic] = w
	return w
}
