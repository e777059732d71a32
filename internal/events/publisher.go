// Package events delivers domain events to Kafka, or to the log when no
// brokers are configured.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/jewel_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/jewel_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/jewel_ledger_app/internal/platform/config"
	"github.com/SscSPs/jewel_ledger_app/internal/platform/metrics"
	kafkago "github.com/segmentio/kafka-go"
)

// messageWriter is the part of kafkago.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// KafkaPublisher publishes each event type to its own topic, keyed by aggregate ID.
type KafkaPublisher struct {
	mu          sync.Mutex
	writers     map[string]messageWriter
	brokers     []string
	topicPrefix string
	newWriter   func(topic string) messageWriter
}

// NewKafkaPublisher creates a publisher for the given brokers. Writers are
// created lazily per topic.
func NewKafkaPublisher(brokers []string, topicPrefix string) *KafkaPublisher {
	p := &KafkaPublisher{
		writers:     make(map[string]messageWriter),
		brokers:     brokers,
		topicPrefix: topicPrefix,
	}
	p.newWriter = func(topic string) messageWriter {
		return &kafkago.Writer{
			Addr:                   kafkago.TCP(p.brokers...),
			Topic:                  topic,
			Balancer:               &kafkago.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			RequiredAcks:           kafkago.RequireAll,
			AllowAutoTopicCreation: true,
		}
	}
	return p
}

// Topic is the topic an event type is published to.
func (p *KafkaPublisher) Topic(t domain.EventType) string {
	if p.topicPrefix == "" {
		return string(t)
	}
	return p.topicPrefix + "." + string(t)
}

// Publish sends one event.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.Type, err)
	}
	topic := p.Topic(event.Type)
	msg := kafkago.Message{
		Key:   []byte(event.AggregateID),
		Value: value,
		Headers: []kafkago.Header{
			{Key: "event-id", Value: []byte(event.ID)},
			{Key: "event-type", Value: []byte(event.Type)},
		},
	}
	if err := p.writer(topic).WriteMessages(ctx, msg); err != nil {
		metrics.EventsPublished.WithLabelValues(string(event.Type), "error").Inc()
		return fmt.Errorf("kafka publish to %s: %w", topic, err)
	}
	metrics.EventsPublished.WithLabelValues(string(event.Type), "ok").Inc()
	return nil
}

// Close closes all writers.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, w := range p.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing writer for topic %s: %w", topic, err)
		}
	}
	p.writers = make(map[string]messageWriter)
	return firstErr
}

func (p *KafkaPublisher) writer(topic string) messageWriter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if w, ok := p.writers[topic]; ok {
		return w
	}
	w := p.newWriter(topic)
	p.writers[topic] = w
	return w
}

// LogPublisher writes events to the logger. It is used when Kafka is not configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a LogPublisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the event at debug level.
func (p *LogPublisher) Publish(ctx context.Context, event domain.Event) error {
	p.logger.DebugContext(ctx, "Domain event",
		slog.String("event_id", event.ID),
		slog.String("event_type", string(event.Type)),
		slog.String("aggregate_id", event.AggregateID))
	metrics.EventsPublished.WithLabelValues(string(event.Type), "logged").Inc()
	return nil
}

// Close is a no-op.
func (p *LogPublisher) Close() error { return nil }

// NewPublisher picks Kafka when brokers are configured and the log otherwise.
func NewPublisher(cfg *config.Config, logger *slog.Logger) portssvc.EventPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("KAFKA_BROKERS not set, domain events will only be logged")
		return NewLogPublisher(logger)
	}
	logger.Info("Publishing domain events to Kafka", slog.Any("brokers", cfg.KafkaBrokers), slog.String("topic_prefix", cfg.KafkaTopicPrefix))
	return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopicPrefix)
}

var (
	_ portssvc.EventPublisher = (*KafkaPublisher)(nil)
	_ portssvc.EventPublisher = (*LogPublisher)(nil)
)
