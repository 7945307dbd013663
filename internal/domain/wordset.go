package domain

// WordSet is an insertion-ordered set of words. Iteration follows first
// insertion, which keeps generated output reproducible across runs.
type WordSet struct {
	index map[string]struct{}
	items []string
}

func NewWordSet(words ...string) *WordSet {
	s := &WordSet{index: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts w and reports whether it was new.
func (s *WordSet) Add(w string) bool {
	if _, ok := s.index[w]; ok {
		return false
	}
	s.index[w] = struct{}{}
	s.items = append(s.items, w)
	return true
}

func (s *WordSet) Contains(w string) bool {
	_, ok := s.index[w]
	return ok
}

func (s *WordSet) Len() int {
	return len(s.items)
}

// Words returns the members in insertion order. The slice must not be modified.
func (s *WordSet) Words() []string {
	return s.items
}
