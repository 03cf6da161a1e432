package domain

import "sort"

// UpdatedGraphSet accumulates the names of graphs whose feed data
// changed during a sync run. Duplicates collapse; Names iterates in
// sorted order so downstream processing and logs are deterministic.
type UpdatedGraphSet struct {
	members map[string]struct{}
}

// NewUpdatedGraphSet creates an empty set.
func NewUpdatedGraphSet() *UpdatedGraphSet {
	return &UpdatedGraphSet{members: make(map[string]struct{})}
}

// Add inserts a graph name into the set.
func (s *UpdatedGraphSet) Add(graph string) {
	s.members[graph] = struct{}{}
}

// Contains reports whether a graph is in the set.
func (s *UpdatedGraphSet) Contains(graph string) bool {
	_, ok := s.members[graph]
	return ok
}

// Len returns the number of graphs in the set.
func (s *UpdatedGraphSet) Len() int {
	return len(s.members)
}

// Names returns the graph names in sorted order.
func (s *UpdatedGraphSet) Names() []string {
	names := make([]string, 0, len(s.members))
	for name := range s.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunResult aggregates whether any failure occurred during a run. It
// is threaded explicitly through the synchronizer and orchestrator
// rather than kept as ambient mutable state.
type RunResult struct {
	failed bool
}

// Fail records that a failure occurred.
func (r *RunResult) Fail() {
	r.failed = true
}

// Failed reports whether any failure was recorded.
func (r *RunResult) Failed() bool {
	return r.failed
}

// Merge folds another result into this one.
func (r *RunResult) Merge(other RunResult) {
	if other.failed {
		r.failed = true
	}
}

// Err returns ErrRunHadFailures when a failure was recorded, nil
// otherwise. It is the process-level success signal.
func (r RunResult) Err() error {
	if r.failed {
		return ErrRunHadFailures
	}
	return nil
}
