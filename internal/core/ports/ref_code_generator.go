package ports

import (
	"context"
	"time"

	"reservation/internal/core/domain/model/kernel"
)

// RefCodeGenerator issues unique, human-readable reference codes: ticket
// numbers for bookings and tracking numbers for packages.
//
// Implementations must guarantee that no two calls for the same kind on the
// same day ever return the same code, even under concurrent callers. The
// Postgres implementation increments a per-(kind, day) sequence row inside
// the caller's transaction, so the counter increment and the record insert
// commit or roll back as one atomic unit.
//
// Running past kernel.MaxDailySequence yields SequenceExhaustedError; the
// sequence never wraps around.
type RefCodeGenerator interface {
	Next(ctx context.Context, kind kernel.RefCodeKind, when time.Time) (kernel.RefCode, error)
}
