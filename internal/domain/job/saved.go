package job

import "sync"

// ToggleState tracks a mutable boolean flag (saved, pinned) through a remote write.
type ToggleState string

const (
	TogglePending   ToggleState = "pending"
	ToggleCommitted ToggleState = "committed"
	ToggleFailed    ToggleState = "failed"
)

// Toggle is one in-flight flip of a boolean flag for a single id.
type Toggle struct {
	ID    string
	Prior bool
	State ToggleState
}

// Target is the value the flag should have once the remote write succeeds.
func (t Toggle) Target() bool { return !t.Prior }

// Current is the value to display once the toggle settled: the target after
// a commit, the prior value otherwise.
func (t Toggle) Current() bool {
	if t.State == ToggleCommitted {
		return t.Target()
	}
	return t.Prior
}

// SavedSet is the set of job ids the current user has bookmarked, plus the
// toggles in flight against it. It is safe for concurrent use.
type SavedSet struct {
	mu      sync.Mutex
	ids     map[string]struct{}
	pending map[string]*Toggle
}

// NewSavedSet builds a set from ids.
func NewSavedSet(ids ...string) *SavedSet {
	s := &SavedSet{
		ids:     make(map[string]struct{}, len(ids)),
		pending: make(map[string]*Toggle),
	}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// SavedSetFromJobs builds a set from a saved-jobs listing.
func SavedSetFromJobs(jobs []Job) *SavedSet {
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return NewSavedSet(ids...)
}

// Has reports whether id is saved.
func (s *SavedSet) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of saved ids.
func (s *SavedSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// Begin records a pending flip of id. ok is false when a flip of the same id
// is already pending, in which case the caller must not issue another write.
func (s *SavedSet) Begin(id string) (Toggle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.pending[id]; busy {
		return Toggle{}, false
	}
	_, saved := s.ids[id]
	t := &Toggle{ID: id, Prior: saved, State: TogglePending}
	s.pending[id] = t
	return *t, true
}

// Commit applies the pending flip of id after the remote write succeeded.
func (s *SavedSet) Commit(id string) Toggle {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.pending[id]
	if !ok {
		return Toggle{ID: id, State: ToggleFailed}
	}
	delete(s.pending, id)
	if t.Target() {
		s.ids[id] = struct{}{}
	} else {
		delete(s.ids, id)
	}
	t.State = ToggleCommitted
	return *t
}

// Fail discards the pending flip of id, leaving membership as it was before Begin.
func (s *SavedSet) Fail(id string) Toggle {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.pending[id]
	if !ok {
		return Toggle{ID: id, State: ToggleFailed}
	}
	delete(s.pending, id)
	if t.Prior {
		s.ids[id] = struct{}{}
	} else {
		delete(s.ids, id)
	}
	t.State = ToggleFailed
	return *t
}
