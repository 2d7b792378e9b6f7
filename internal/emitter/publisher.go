// Package emitter is the scheduling and emission harness: it decides when
// each generator runs, chains dependent events, and hands the resulting
// payloads to a publisher.
package emitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/segmentio/kafka-go"

	"github.com/retaildemo/eventgen/internal/config"
)

// Publisher delivers an encoded event to a named stream.
type Publisher interface {
	Publish(ctx context.Context, topic string, key, value []byte) error
	Close() error
}

// KafkaPublisher publishes events through a shared kafka-go writer.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher for the configured brokers. The
// writer is lazy; use CheckBrokers to fail fast before the loops start.
func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish sends one message to the given topic.
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, key, value []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// CheckBrokers dials the first broker so a bad address surfaces at startup
// instead of on the first emission.
func CheckBrokers(ctx context.Context, cfg config.KafkaConfig) error {
	dialer := &kafka.Dialer{Timeout: cfg.DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", cfg.Brokers[0])
	if err != nil {
		return fmt.Errorf("dial broker %s: %w", cfg.Brokers[0], err)
	}
	return conn.Close()
}

// StdoutPublisher writes events to a stream as JSON, one per line or
// indented, for broker-less preview runs.
type StdoutPublisher struct {
	w      io.Writer
	indent bool
	mu     sync.Mutex
}

// NewStdoutPublisher creates a print-only publisher.
func NewStdoutPublisher(w io.Writer, indent bool) *StdoutPublisher {
	return &StdoutPublisher{w: w, indent: indent}
}

// Publish writes the payload prefixed with its topic.
func (p *StdoutPublisher) Publish(_ context.Context, topic string, _, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := value
	if p.indent {
		var buf bytes.Buffer
		if err := json.Indent(&buf, value, "", "  "); err == nil {
			out = buf.Bytes()
		}
	}

	_, err := fmt.Fprintf(p.w, "[%s] %s\n", topic, out)
	return err
}

// Close is a no-op for stdout.
func (p *StdoutPublisher) Close() error {
	return nil
}
