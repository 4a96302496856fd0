// Package ledger keeps accounts, transactions and categories in memory and
// guarantees that every account balance matches the transactions booked on it.
//
// The package is single-threaded by contract: callers run one operation to
// completion before invoking the next, so no type here carries a lock.
package ledger

import (
	"time"

	"github.com/google/uuid"
)

type options struct {
	now   func() time.Time
	newID func() string
}

// Option customises how registries stamp identities and timestamps.
type Option func(*options)

// WithClock overrides the time source used for createdAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithIDGenerator overrides the identity generator.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		o.newID = newID
	}
}

func buildOptions(opts []Option) options {
	o := options{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
