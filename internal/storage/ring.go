package storage

// Ring is a fixed-capacity circular buffer that drops its oldest item when
// full. It is not safe for concurrent use; stores guard it with their own lock.
type Ring[T comparable] struct {
	buffer   []T
	capacity int
	size     int
	head     int // Write position
	tail     int // Oldest item
}

// NewRing creates a ring holding at most capacity items
func NewRing[T comparable](capacity int) *Ring[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Ring[T]{
		buffer:   make([]T, capacity),
		capacity: capacity,
	}
}

// Add appends item, evicting the oldest one if the ring is full. It reports
// whether an item was evicted.
func (r *Ring[T]) Add(item T) (evicted T, dropped bool) {
	if r.size >= r.capacity {
		evicted = r.buffer[r.tail]
		dropped = true
		r.tail = (r.tail + 1) % r.capacity
	} else {
		r.size++
	}

	r.buffer[r.head] = item
	r.head = (r.head + 1) % r.capacity
	return evicted, dropped
}

// Latest returns up to n items, newest first. n <= 0 returns everything.
func (r *Ring[T]) Latest(n int) []T {
	if n <= 0 || n > r.size {
		n = r.size
	}

	result := make([]T, n)
	for i := 0; i < n; i++ {
		idx := (r.head - 1 - i + r.capacity) % r.capacity
		result[i] = r.buffer[idx]
	}
	return result
}

// Contains reports whether item is held. A nil ring holds nothing.
func (r *Ring[T]) Contains(item T) bool {
	if r == nil {
		return false
	}
	for i := 0; i < r.size; i++ {
		if r.buffer[(r.tail+i)%r.capacity] == item {
			return true
		}
	}
	return false
}

// Len returns the current number of items
func (r *Ring[T]) Len() int {
	return r.size
}

// Capacity returns the maximum number of items
func (r *Ring[T]) Capacity() int {
	return r.capacity
}

// Clear removes all items
func (r *Ring[T]) Clear() {
	var zero T
	for i := range r.buffer {
		r.buffer[i] = zero
	}
	r.size = 0
	r.head = 0
	r.tail = 0
}
