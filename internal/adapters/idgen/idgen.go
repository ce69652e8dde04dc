// Package idgen provides recipe id generators.
package idgen

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/jsamuelsen/recipe-service/internal/ports"
)

// Strategy names accepted by New.
const (
	StrategyUUID     = "uuid"
	StrategySequence = "sequence"
)

var (
	_ ports.IDGenerator = UUID{}
	_ ports.IDGenerator = (*Sequence)(nil)
)

// UUID mints random version 4 UUIDs.
type UUID struct{}

// NewID returns a new random UUID string.
func (UUID) NewID() string {
	return uuid.NewString()
}

// Sequence mints ids from a monotonic counter. Safe for concurrent use.
type Sequence struct {
	prefix string
	next   atomic.Uint64
}

// NewSequence returns a generator producing prefix1, prefix2, ...
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewID returns the next id in the sequence.
func (s *Sequence) NewID() string {
	return s.prefix + strconv.FormatUint(s.next.Add(1), 10)
}

// Observe moves the sequence past id when id is one this generator could mint,
// so ids already in use are never produced.
func (s *Sequence) Observe(id string) {
	rest, ok := strings.CutPrefix(id, s.prefix)
	if !ok {
		return
	}

	n, err := strconv.ParseUint(rest, 10, 64)
	if err != nil {
		return
	}

	for {
		cur := s.next.Load()
		if n <= cur || s.next.CompareAndSwap(cur, n) {
			return
		}
	}
}

// New returns the generator for a configured strategy.
func New(strategy string) (ports.IDGenerator, error) {
	switch strategy {
	case StrategyUUID, "":
		return UUID{}, nil
	case StrategySequence:
		return NewSequence("recipe-"), nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
