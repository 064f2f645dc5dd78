package check

// Set is an insertion-ordered collection of checks, deduplicated by name:
// the first check registered under a name wins and later additions under
// the same name are ignored.
//
// A Set is a configuration-time builder and is not safe for concurrent
// mutation. Hand it to NewAggregator, which snapshots the collection,
// before serving traffic.
type Set struct {
	checks []Check
	index  map[string]int // name -> position in checks
}

// NewSet creates a set holding the given checks in order. Duplicate names
// collapse onto the first occurrence; invalid zero-value checks are
// dropped.
func NewSet(checks ...Check) *Set {
	s := &Set{index: make(map[string]int, len(checks))}
	for _, c := range checks {
		s.Add(c)
	}
	return s
}

// Add appends a check and reports whether it was inserted. It returns
// false when a check with the same name is already present, leaving the
// earlier registration in place, and false for checks not built with New
// or NewPing.
func (s *Set) Add(c Check) bool {
	if !c.valid() {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if _, exists := s.index[c.name]; exists {
		return false
	}

	s.index[c.name] = len(s.checks)
	s.checks = append(s.checks, c)
	return true
}

// Len returns the number of distinct checks in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.checks)
}

// Contains reports whether a check with the given name is present.
func (s *Set) Contains(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[name]
	return ok
}

// Names returns the check names in registration order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.checks))
	for i, c := range s.checks {
		names[i] = c.name
	}
	return names
}

// Checks returns a copy of the checks in registration order.
func (s *Set) Checks() []Check {
	if s == nil {
		return nil
	}
	checks := make([]Check, len(s.checks))
	copy(checks, s.checks)
	return checks
}
