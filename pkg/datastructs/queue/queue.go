package queue

// Queue is a generic interface for FIFO queues.
type Queue[T any] interface {
	// Push adds an item to the back of the queue.
	// Returns ErrFull if the queue has no free slot.
	Push(item T) error

	// Pop removes and returns the oldest item in the queue.
	// Returns (zero, ErrEmpty) if the queue holds nothing.
	Pop() (T, error)

	// Capacity returns the total capacity of the queue.
	Capacity() int
}
