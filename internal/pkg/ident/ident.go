// Package ident provides injectable identity generators so that tests can
// assert exact identifiers instead of pattern-matching random ones.
package ident

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator allocates unique identifiers.
type Generator interface {
	NewID() string
}

// UUIDGenerator produces random UUIDv4 identifiers, optionally prefixed.
type UUIDGenerator struct {
	prefix string
}

// NewUUIDGenerator creates a UUID generator. An empty prefix yields bare UUIDs.
func NewUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// NewID returns a new UUID-based identifier.
func (g *UUIDGenerator) NewID() string {
	return g.prefix + uuid.New().String()
}

// SequenceGenerator produces PREFIX-000001, PREFIX-000002, ...
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	next   uint64
}

// NewSequenceGenerator creates a sequential generator starting at 1.
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix, next: 1}
}

// NewID returns the next identifier in the sequence.
func (g *SequenceGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := fmt.Sprintf("%s-%06d", g.prefix, g.next)
	g.next++
	return id
}
