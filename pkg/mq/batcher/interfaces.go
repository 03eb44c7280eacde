package batcher

import "github.com/huynhanx03/go-boundedbuffer/pkg/settings"

// Consumer is the interface that must be implemented by users of the Batcher.
// It is responsible for processing a batch of items.
type Consumer[T any] interface {
	// Consume processes a batch of items.
	// The batch slice is owned by the consumer.
	Consume(batch []T) error
}

// ConsumerFunc adapts a plain function to Consumer.
type ConsumerFunc[T any] func(batch []T) error

// Consume calls f(batch).
func (f ConsumerFunc[T]) Consume(batch []T) error { return f(batch) }

// Config holds configuration for the Batcher.
type Config struct {
	// BatchSize is the capacity of the staging queue.
	// When the queue fills up, it is flushed to the Consumer.
	BatchSize int
}

// ConfigFromSettings converts the settings section into a Config.
func ConfigFromSettings(s settings.Batcher) Config {
	return Config{BatchSize: s.BatchSize}
}
