package domain

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator hands out cart entry identities. Implementations must never
// return the same value twice for the lifetime of a cart.
type IDGenerator interface {
	NextID() string
}

// SequenceGenerator issues prefix-1, prefix-2, ... from a monotonic counter.
type SequenceGenerator struct {
	prefix string
	next   atomic.Uint64
}

// NewSequenceGenerator creates a SequenceGenerator. An empty prefix defaults to "item".
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	if prefix == "" {
		prefix = "item"
	}
	return &SequenceGenerator{prefix: prefix}
}

// NextID returns the next identity in the sequence.
func (g *SequenceGenerator) NextID() string {
	return g.prefix + "-" + strconv.FormatUint(g.next.Add(1), 10)
}

// UUIDGenerator issues random UUIDs.
type UUIDGenerator struct{}

// NextID returns a new random UUID string.
func (UUIDGenerator) NextID() string {
	return uuid.NewString()
}
