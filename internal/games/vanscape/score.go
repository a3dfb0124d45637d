package vanscape

// BestStore persists the best-ever score between runs.
type BestStore interface {
	// Load returns the stored best, or 0 when nothing usable is stored.
	Load() int
	// SaveIfHigher writes best only if it beats the value currently stored.
	SaveIfHigher(best int) (bool, error)
}

// Score counts ticks survived and tracks the best-ever value.
type Score struct {
	Current int
	Best    int
	store   BestStore
}

// NewScore creates a tracker seeded with the stored best. store may be nil.
func NewScore(store BestStore) *Score {
	s := &Score{store: store}
	if store != nil {
		s.Best = store.Load()
	}
	return s
}

// Tick adds one point.
func (s *Score) Tick() {
	s.Current++
	if s.Current > s.Best {
		s.Best = s.Current
	}
}

// Persist writes the best value if it improved on what is stored.
func (s *Score) Persist() (bool, error) {
	if s.store == nil {
		return false, nil
	}
	return s.store.SaveIfHigher(s.Best)
}

// Reset zeroes the current score. Best is kept.
func (s *Score) Reset() {
	s.Current = 0
}
