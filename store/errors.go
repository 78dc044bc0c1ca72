package store

import "errors"

var (
	// ErrStoreUnavailable signals that the durable record could not be
	// written. The in-memory snapshot remains the source of truth for the
	// session; callers should surface a warning, not crash.
	ErrStoreUnavailable = errors.New("durable store unavailable")

	// ErrQuotaExceeded is the store-full subtype of ErrStoreUnavailable.
	// A user-visible notice is recommended; the write is best-effort.
	ErrQuotaExceeded = errors.New("durable store quota exceeded")

	// ErrSeedUnavailable signals that the seed source could not be fetched
	// or parsed during initialization. Terminal for that call: with no seed
	// there is no data to show.
	ErrSeedUnavailable = errors.New("seed data unavailable")
)
