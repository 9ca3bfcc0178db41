package breakend

import "sort"

// Set is a deterministic, sorted-iteration collection of breakends indexed
// by ID, built once from a parsed batch.
//
// Determinism:
//   - IDs() and All() return breakends ordered first by (Chr, Pos) ascending,
//     then by ID ascending as a final tie-break — the order the walker and
//     chainer rely on for reproducible segmentation and TI/DB enumeration.
type Set struct {
	byID map[string]Breakend
	ids  []string // sorted by (Chr, Pos, ID); rebuilt lazily by sortedIDs
	dirty bool
}

// NewSet returns an empty Set ready for Add.
func NewSet() *Set {
	return &Set{byID: make(map[string]Breakend)}
}

// Add inserts a breakend. Returns ErrDuplicateID if the ID is already present.
//
// Complexity: O(1) amortized.
func (s *Set) Add(b Breakend) error {
	if b.ID == "" {
		return ErrEmptyID
	}
	if _, exists := s.byID[b.ID]; exists {
		return ErrDuplicateID
	}
	s.byID[b.ID] = b
	s.dirty = true

	return nil
}

// Get looks up a breakend by ID.
//
// Complexity: O(1).
func (s *Set) Get(id string) (Breakend, bool) {
	b, ok := s.byID[id]

	return b, ok
}

// Mate resolves b's mate breakend, reporting false if MateID is empty or
// does not resolve to a known breakend.
//
// Complexity: O(1).
func (s *Set) Mate(b Breakend) (Breakend, bool) {
	if b.MateID == "" {
		return Breakend{}, false
	}

	return s.Get(b.MateID)
}

// Len returns the number of breakends in the set.
func (s *Set) Len() int { return len(s.byID) }

// IDs returns all breakend IDs sorted by (Chr, Pos, ID).
//
// Complexity: O(n log n), memoized until the next Add.
func (s *Set) IDs() []string {
	s.ensureSorted()

	return s.ids
}

// All returns all breakends sorted by (Chr, Pos, ID).
//
// Complexity: O(n log n), memoized until the next Add.
func (s *Set) All() []Breakend {
	s.ensureSorted()
	out := make([]Breakend, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.byID[id])
	}

	return out
}

func (s *Set) ensureSorted() {
	if !s.dirty && s.ids != nil {
		return
	}
	ids := make([]string, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := s.byID[ids[i]], s.byID[ids[j]]
		if a.Chr != b.Chr {
			return a.Chr < b.Chr
		}
		if a.Pos != b.Pos {
			return a.Pos < b.Pos
		}

		return a.ID < b.ID
	})
	s.ids = ids
	s.dirty = false
}
