package queue

import "github.com/pkg/errors"

var _ Queue[int] = (*Bounded[int])(nil)

// Bounded is a fixed-capacity FIFO queue backed by a circular slice.
// Slots are allocated once at construction and the queue never grows.
// It is NOT thread-safe.
type Bounded[T any] struct {
	slots    []T // backing storage, len(slots) == capacity
	capacity int // fixed at construction
	front    int // next slot to read
	back     int // next slot to write
	count    int // occupied slots; disambiguates front == back
}

// NewBounded creates a queue holding at most capacity items.
// It panics if capacity is not positive.
func NewBounded[T any](capacity int) *Bounded[T] {
	if capacity <= 0 {
		panic(errors.Errorf("queue: capacity must be positive, got %d", capacity))
	}
	return &Bounded[T]{
		slots:    make([]T, capacity),
		capacity: capacity,
	}
}

// Push adds an item at the back. Returns ErrFull if no slot is free.
func (q *Bounded[T]) Push(item T) error {
	if q.count == q.capacity {
		return ErrFull
	}
	q.slots[q.back] = item
	q.back = q.next(q.back)
	q.count++
	return nil
}

// Pop removes and returns the item at the front. Returns ErrEmpty if there is none.
// The vacated slot is reset to the zero value so the queue keeps no reference to it.
func (q *Bounded[T]) Pop() (T, error) {
	var zero T
	if q.count == 0 {
		return zero, ErrEmpty
	}
	item := q.slots[q.front]
	q.slots[q.front] = zero
	q.front = q.next(q.front)
	q.count--
	return item, nil
}

// PushBatch pushes items in order until the queue is full.
// Returns the number of items accepted.
func (q *Bounded[T]) PushBatch(items []T) int {
	count := 0
	for _, item := range items {
		if q.Push(item) != nil {
			break
		}
		count++
	}
	return count
}

// PopBatch pops items into out until the queue is empty or out is filled.
// Returns the number of items popped.
func (q *Bounded[T]) PopBatch(out []T) int {
	count := 0
	for i := range out {
		item, err := q.Pop()
		if err != nil {
			break
		}
		out[i] = item
		count++
	}
	return count
}

// Len returns the number of items currently held.
func (q *Bounded[T]) Len() int { return q.count }

// Available returns the number of free slots.
func (q *Bounded[T]) Available() int { return q.capacity - q.count }

// IsEmpty reports whether the queue holds no items.
func (q *Bounded[T]) IsEmpty() bool { return q.count == 0 }

// IsFull reports whether every slot is occupied.
func (q *Bounded[T]) IsFull() bool { return q.count == q.capacity }

// Capacity returns the maximum number of items the queue can hold.
func (q *Bounded[T]) Capacity() int { return q.capacity }

// next returns the slot index after i, wrapping at capacity.
func (q *Bounded[T]) next(i int) int {
	i++
	if i == q.capacity {
		return 0
	}
	return i
}
