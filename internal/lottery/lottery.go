// Package lottery draws a full, strictly ordered ranking of entries through
// repeated weighted random draws without replacement, the same sequential
// mechanics as the NBA draft lottery extended to rank every entry.
package lottery

// Source yields uniformly distributed integers in [0, n). *frand.RNG
// satisfies it, as does any deterministic generator used by simulations.
type Source interface {
	Intn(n int) int
}

// Entry is one participant in a drawing: an opaque identifier plus the
// number of combinations assigned to it out of the drawing's total. The
// engine never interprets the ID; pool membership is tracked by index, so
// even duplicate IDs cannot corrupt a run.
type Entry struct {
	ID     string
	Weight int
}

// Pick records that an entry was drawn as pick Number. Number 1 is the
// first entry drawn, i.e. the most favored outcome.
type Pick struct {
	Entry  Entry
	Number int
}

// Result is the complete draw sequence of one run, ordered by pick number.
// It contains every input entry exactly once.
type Result []Pick

// DisplayPosition maps a pick number onto reveal order: the last pick is
// shown first, the lottery winner last.
func (r Result) DisplayPosition(pickNumber int) int {
	return len(r) - pickNumber + 1
}

// InDisplayOrder returns the picks least favored first, the order a
// progressive reveal walks through them.
func (r Result) InDisplayOrder() []Pick {
	out := make([]Pick, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}
	return out
}

// Observer receives each pick as it is drawn. Callbacks fire synchronously
// in increasing pick-number order, never concurrently.
type Observer func(Pick)

// Options configure a single run.
type Options struct {
	// Source supplies the run's randomness. Nil means a fresh
	// cryptographically seeded generator.
	Source Source

	// Observer, when set, is notified after every draw.
	Observer Observer
}
