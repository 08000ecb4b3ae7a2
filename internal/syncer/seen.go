package syncer

// SeenSet tracks the WordPress post ids already handled in the current run,
// either freshly stored or found pre-existing in the destination. It lives
// for exactly one run and is never persisted.
type SeenSet struct {
	ids map[string]struct{}
}

func NewSeenSet() *SeenSet {
	return &SeenSet{
		ids: make(map[string]struct{}),
	}
}

func (s *SeenSet) Add(id string) {
	s.ids[id] = struct{}{}
}

func (s *SeenSet) Contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *SeenSet) Len() int {
	return len(s.ids)
}
