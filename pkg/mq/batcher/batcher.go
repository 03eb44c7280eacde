package batcher

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-boundedbuffer/pkg/datastructs/queue"
	"github.com/huynhanx03/go-boundedbuffer/pkg/settings"
)

// Batcher stages items in a bounded queue and hands them to a Consumer in batches.
//
// Behavior:
//   - Push appends to the staging queue; when the queue becomes full it is
//     flushed to the Consumer immediately.
//   - Flush drains whatever is staged, so callers can force a partial batch
//     (e.g. on a timer or at shutdown).
//   - Consumer errors are logged and returned from Flush; the failed batch is dropped.
//
// It is NOT thread-safe.
type Batcher[T any] struct {
	cons  Consumer[T]
	queue *queue.Bounded[T]
	log   *zap.Logger
}

// Option configures a Batcher.
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger sets the logger used to report flushes. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// New creates a new Batcher for type T.
func New[T any](cons Consumer[T], cfg Config, opts ...Option) *Batcher[T] {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = settings.DefaultBatchSize
	}

	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Batcher[T]{
		cons:  cons,
		queue: queue.NewBounded[T](cfg.BatchSize),
		log:   o.log.With(zap.Int("batch_size", cfg.BatchSize)),
	}
}

// Push stages an item, flushing to the Consumer if the staging queue fills up.
func (b *Batcher[T]) Push(item T) {
	// Never full here: a full queue is flushed before Push returns.
	_ = b.queue.Push(item)

	if b.queue.IsFull() {
		_ = b.Flush()
	}
}

// Flush hands every staged item to the Consumer as one batch.
// It is a no-op when nothing is staged.
func (b *Batcher[T]) Flush() error {
	n := b.queue.Len()
	if n == 0 {
		return nil
	}

	// Fresh slice per batch so the Consumer owns it.
	batch := make([]T, n)
	b.queue.PopBatch(batch)

	if err := b.cons.Consume(batch); err != nil {
		err = errors.Wrapf(err, "batcher: consume batch of %d", n)
		b.log.Error("flush failed", zap.Int("items", n), zap.Error(err))
		return err
	}

	b.log.Debug("flushed batch", zap.Int("items", n))
	return nil
}

// Pending returns the number of staged items not yet flushed.
func (b *Batcher[T]) Pending() int {
	return b.queue.Len()
}

// BatchSize returns the staging queue capacity.
func (b *Batcher[T]) BatchSize() int {
	return b.queue.Capacity()
}
