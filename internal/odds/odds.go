// Package odds previews a weight configuration by simulation: exact
// first-pick probabilities plus a Monte Carlo estimate of each entry's
// full pick distribution. Estimates run on a seeded source so the same
// request always produces the same report.
package odds

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/schne867/FFLottery/internal/lottery"
	"github.com/schne867/FFLottery/internal/rng"
)

const (
	// DefaultTrials balances stable estimates against request latency.
	DefaultTrials = 10000

	// MaxTrials caps the work a single request can ask for.
	MaxTrials = 200000
)

// TeamOdds summarizes one entry's outlook across all trials.
type TeamOdds struct {
	ID     string `json:"id"`
	Weight int    `json:"weight"`

	// FirstPick is the exact chance of winning pick 1, weight over the
	// pool total. FirstPickSim is the simulated share and should converge
	// to it as trials grow.
	FirstPick    float64 `json:"first_pick"`
	FirstPickSim float64 `json:"first_pick_sim"`

	MeanPick   float64 `json:"mean_pick"`
	MedianPick float64 `json:"median_pick"`
	P10        float64 `json:"p10"`
	P90        float64 `json:"p90"`
}

// Report is the result of one estimate.
type Report struct {
	Trials int        `json:"trials"`
	Seed   uint64     `json:"seed"`
	Teams  []TeamOdds `json:"teams"`
}

// Estimate runs trials independent lotteries over entries and aggregates
// per-entry pick statistics. Entry IDs must be unique so picks can be
// tallied. A non-positive trials falls back to DefaultTrials.
func Estimate(entries []lottery.Entry, trials int, seed uint64) (Report, error) {
	if trials <= 0 {
		trials = DefaultTrials
	}
	if trials > MaxTrials {
		trials = MaxTrials
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.ID]; ok {
			return Report{}, fmt.Errorf("odds: duplicate entry id %q", e.ID)
		}
		seen[e.ID] = struct{}{}
	}

	src := rng.NewSeeded(seed)
	picks := make(map[string][]float64, len(entries))
	for _, e := range entries {
		picks[e.ID] = make([]float64, 0, trials)
	}
	firsts := make(map[string]int, len(entries))

	for t := 0; t < trials; t++ {
		res, err := lottery.Run(entries, lottery.Options{Source: src})
		if err != nil {
			return Report{}, fmt.Errorf("odds: %w", err)
		}
		for _, p := range res {
			picks[p.Entry.ID] = append(picks[p.Entry.ID], float64(p.Number))
		}
		firsts[res[0].Entry.ID]++
	}

	total := 0
	for _, e := range entries {
		if e.Weight > 0 {
			total += e.Weight
		}
	}

	teams := make([]TeamOdds, 0, len(entries))
	for _, e := range entries {
		data := stats.Float64Data(picks[e.ID])
		mean, err := stats.Mean(data)
		if err != nil {
			return Report{}, fmt.Errorf("odds: mean for %q: %w", e.ID, err)
		}
		median, err := stats.Median(data)
		if err != nil {
			return Report{}, fmt.Errorf("odds: median for %q: %w", e.ID, err)
		}
		p10, err := stats.Percentile(data, 10)
		if err != nil {
			return Report{}, fmt.Errorf("odds: p10 for %q: %w", e.ID, err)
		}
		p90, err := stats.Percentile(data, 90)
		if err != nil {
			return Report{}, fmt.Errorf("odds: p90 for %q: %w", e.ID, err)
		}

		exact := 0.0
		switch {
		case len(entries) == 1:
			exact = 1
		case e.Weight > 0 && total > 0:
			exact = float64(e.Weight) / float64(total)
		}
		teams = append(teams, TeamOdds{
			ID:           e.ID,
			Weight:       e.Weight,
			FirstPick:    exact,
			FirstPickSim: float64(firsts[e.ID]) / float64(trials),
			MeanPick:     mean,
			MedianPick:   median,
			P10:          p10,
			P90:          p90,
		})
	}

	return Report{Trials: trials, Seed: seed, Teams: teams}, nil
}
