// Package weights derives per-team lottery combinations from a named
// distribution. Every generator returns non-negative integers summing
// exactly to the requested total; index 0 is always the worst-record team
// and receives the most combinations.
package weights

import (
	"errors"
	"fmt"
	"math"
)

// Distribution names the generator used to assign combinations.
type Distribution string

const (
	FixedTable  Distribution = "fixed-table"
	Equal       Distribution = "equal"
	Linear      Distribution = "linear"
	Exponential Distribution = "exponential"
	Custom      Distribution = "custom"
)

// DefaultTotal is the conventional number of combinations in one drawing.
// It keeps weights readable as tenths of a percent.
const DefaultTotal = 1000

// ErrUnknownDistribution is returned for a distribution name no generator
// answers to.
var ErrUnknownDistribution = errors.New("weights: unknown distribution")

// canonicalTable is the published 14-team lottery table, 1000 combinations
// total, worst record first.
var canonicalTable = [...]int{140, 140, 140, 125, 105, 90, 75, 60, 45, 30, 20, 15, 10, 5}

// Parse resolves a distribution name, accepting the spellings that appear
// in drawing files.
func Parse(s string) (Distribution, error) {
	switch Distribution(s) {
	case FixedTable, Equal, Linear, Exponential, Custom:
		return Distribution(s), nil
	}
	switch s {
	case "fixed", "table", "fixed-table-by-size":
		return FixedTable, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDistribution, s)
}

// ForCount generates weights for n entries under the named distribution.
// The total is ignored by FixedTable, whose table defines its own sums.
// Custom has no generator; callers supply those values themselves.
func ForCount(d Distribution, n, total int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("weights: entry count must be at least 1, got %d", n)
	}
	switch d {
	case FixedTable:
		return Table(n)
	case Equal:
		if total < 0 {
			return nil, fmt.Errorf("weights: total must be non-negative, got %d", total)
		}
		return equalWeights(n, total), nil
	case Linear:
		if total < 0 {
			return nil, fmt.Errorf("weights: total must be non-negative, got %d", total)
		}
		return linearWeights(n, total), nil
	case Exponential:
		if total < 0 {
			return nil, fmt.Errorf("weights: total must be non-negative, got %d", total)
		}
		return exponentialWeights(n, total), nil
	case Custom:
		return nil, errors.New("weights: custom distribution requires explicit per-entry values")
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDistribution, d)
}

// Table sizes the canonical table to n entries: a prefix when n is smaller,
// extended by max(1, floor(prev*0.8)) when n is larger. Extended entries
// are always at least 1.
func Table(n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("weights: entry count must be at least 1, got %d", n)
	}
	ws := make([]int, 0, n)
	ws = append(ws, canonicalTable[:min(n, len(canonicalTable))]...)
	for len(ws) < n {
		next := ws[len(ws)-1] * 8 / 10
		if next < 1 {
			next = 1
		}
		ws = append(ws, next)
	}
	return ws, nil
}

func equalWeights(n, total int) []int {
	base := total / n
	rem := total % n
	ws := make([]int, n)
	for i := range ws {
		ws[i] = base
		if i < rem {
			ws[i]++
		}
	}
	return ws
}

func linearWeights(n, total int) []int {
	denom := float64(n) * float64(n+1) / 2
	ws := make([]int, n)
	for i := range ws {
		ws[i] = int(math.Round(float64(total) * float64(n-i) / denom))
	}
	correctDrift(ws, total)
	return ws
}

func exponentialWeights(n, total int) []int {
	// Shares are 2^(n-i-1) / (2^n - 1), computed as 2^-(i+1) / (1 - 2^-n)
	// so no entry count can overflow.
	denom := 1 - math.Ldexp(1, -n)
	ws := make([]int, n)
	for i := range ws {
		ws[i] = int(math.Round(float64(total) * math.Ldexp(1, -(i+1)) / denom))
	}
	correctDrift(ws, total)
	return ws
}

// correctDrift folds rounding drift into index 0. If that would push the
// top entry negative, the remainder is taken from later entries instead,
// keeping every weight non-negative and the sum exact.
func correctDrift(ws []int, total int) {
	sum := 0
	for _, w := range ws {
		sum += w
	}
	ws[0] += total - sum
	if ws[0] >= 0 {
		return
	}
	deficit := -ws[0]
	ws[0] = 0
	for i := 1; i < len(ws) && deficit > 0; i++ {
		take := min(ws[i], deficit)
		ws[i] -= take
		deficit -= take
	}
}

// ValidateAssignment checks a final weight list the way the run surface
// does: no negatives, a positive total (single-entry drawings excepted),
// and at most one zero-weight entry, since only one entry can ever be
// ranked by the final-pick fallback.
func ValidateAssignment(ws []int) error {
	if len(ws) == 0 {
		return errors.New("weights: no entries")
	}
	zeros := 0
	total := 0
	for i, w := range ws {
		if w < 0 {
			return fmt.Errorf("weights: entry %d has negative weight %d", i, w)
		}
		if w == 0 {
			zeros++
		}
		total += w
	}
	if len(ws) == 1 {
		return nil
	}
	if total == 0 {
		return errors.New("weights: total weight is zero, nothing can be drawn")
	}
	if zeros > 1 {
		return fmt.Errorf("weights: %d entries have zero weight, at most one can be ranked by the final-pick fallback", zeros)
	}
	return nil
}
