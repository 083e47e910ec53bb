package extract

import "sync/atomic"

// Counter allocates run-unique identifiers for records and classes.
// One counter is shared across all packages of a run, so record IDs and
// class IDs never collide. Safe for concurrent use from multiple workers.
type Counter struct {
	n atomic.Int64
}

// NewCounter returns a counter starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

// Next returns the next identifier. Every call yields a distinct value.
func (c *Counter) Next() int64 {
	return c.n.Add(1)
}
