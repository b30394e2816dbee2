package lottery

import "errors"

// Draw failures. All of them are terminal: a weighted draw is not a
// transient operation, so nothing here is ever retried.
var (
	// ErrEmptyInput means a run was requested with no entries at all.
	ErrEmptyInput = errors.New("lottery: no entries")

	// ErrEmptyPool means a draw was attempted on an exhausted pool.
	ErrEmptyPool = errors.New("lottery: empty pool")

	// ErrZeroTotalWeight means more than one entry remains and every one of
	// them has weight zero, so no weighted draw can select anything.
	ErrZeroTotalWeight = errors.New("lottery: total weight is zero")

	// ErrNegativeWeight means an entry carried a negative weight.
	ErrNegativeWeight = errors.New("lottery: negative weight")

	// ErrNoSelection means the cumulative walk finished without selecting
	// an entry. It indicates a bug in the sampler, never bad input.
	ErrNoSelection = errors.New("lottery: draw selected no entry")
)
