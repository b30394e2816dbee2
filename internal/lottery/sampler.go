// internal/lottery/sampler.go

package lottery

import (
	"fmt"

	"github.com/schne867/FFLottery/internal/rng"
)

// DrawOne selects one entry from pool by weighted random draw and returns
// its index. The pool is not modified; removal is the caller's job.
//
// The draw walks the pool in its given order accumulating weights and
// selects the first entry whose cumulative weight reaches a uniform value
// in [1, total]. Entries with weight 0 add nothing to the walk and can
// never be selected this way: they are present but transparent.
//
// A pool holding exactly one entry short-circuits: the last entry is drawn
// unconditionally, whatever its weight, so every entry ends up ranked.
func DrawOne(pool []Entry, src Source) (int, error) {
	if len(pool) == 0 {
		return 0, ErrEmptyPool
	}
	if len(pool) == 1 {
		return 0, nil
	}

	total := 0
	for _, e := range pool {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	if total == 0 {
		return 0, ErrZeroTotalWeight
	}

	r := src.Intn(total) + 1
	sum := 0
	for i, e := range pool {
		if e.Weight <= 0 {
			continue
		}
		sum += e.Weight
		if sum >= r {
			return i, nil
		}
	}
	return 0, ErrNoSelection
}

// Run executes a complete drawing over entries and returns the full draw
// sequence: pick 1 is the most favored outcome, pick N the least. Input
// order fixes the walk order of the draws but has no effect on the odds.
//
// Validation happens before the first draw, so a malformed request never
// performs partial work and never reaches the observer: no entries is
// ErrEmptyInput, a negative weight is ErrNegativeWeight, and a total weight
// of zero across two or more entries is ErrZeroTotalWeight. A single entry
// is always drawable, even at weight 0.
//
// The engine holds no state between runs, and a run never shares its pool
// or source with another. Draws are strictly sequential by construction:
// the pool must shrink before the next draw, so the loop is never
// parallelized.
func Run(entries []Entry, opts Options) (Result, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyInput
	}
	total := 0
	for _, e := range entries {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: entry %q has weight %d", ErrNegativeWeight, e.ID, e.Weight)
		}
		total += e.Weight
	}
	if total == 0 && len(entries) > 1 {
		return nil, ErrZeroTotalWeight
	}

	src := opts.Source
	if src == nil {
		src = rng.New()
	}

	pool := make([]Entry, len(entries))
	copy(pool, entries)

	result := make(Result, 0, len(entries))
	for pick := 1; len(pool) > 0; pick++ {
		idx, err := DrawOne(pool, src)
		if err != nil {
			return nil, fmt.Errorf("pick %d: %w", pick, err)
		}
		p := Pick{Entry: pool[idx], Number: pick}
		pool = append(pool[:idx], pool[idx+1:]...)
		result = append(result, p)
		if opts.Observer != nil {
			opts.Observer(p)
		}
	}
	return result, nil
}
