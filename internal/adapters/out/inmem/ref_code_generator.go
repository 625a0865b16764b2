// Package inmem provides in-process adapter implementations used in tests
// and local development where a database is unnecessary.
package inmem

import (
	"context"
	"fmt"
	"sync"
	"time"

	"reservation/internal/core/domain/model/kernel"
)

// RefCodeGenerator issues reference codes from in-memory per-(kind, day)
// counters. Counters reset when the process restarts, so it is not suitable
// for production where codes must stay unique across runs.
type RefCodeGenerator struct {
	mu   sync.Mutex
	seqs map[string]int
}

func NewRefCodeGenerator() *RefCodeGenerator {
	return &RefCodeGenerator{
		seqs: make(map[string]int),
	}
}

func (g *RefCodeGenerator) Next(_ context.Context, kind kernel.RefCodeKind, when time.Time) (kernel.RefCode, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := fmt.Sprintf("%s:%s", kind.Prefix(), when.UTC().Format("20060102"))
	g.seqs[key]++

	return kernel.NewRefCode(kind, when, g.seqs[key])
}
