package viz

// Channel selects one stereo side of a point store.
type Channel int

const (
	Right Channel = iota
	Left
)

var channels = [2]Channel{Right, Left}

// Store holds two insertion-ordered point populations, one per stereo
// channel. It knows nothing about expiry; strategies pass their policy as
// the predicate to ForEachRemovable.
type Store[T any] struct {
	right, left []T
}

func (s *Store[T]) side(ch Channel) *[]T {
	if ch == Right {
		return &s.right
	}
	return &s.left
}

func (s *Store[T]) Append(ch Channel, v T) {
	side := s.side(ch)
	*side = append(*side, v)
}

// ForEachRemovable visits every point in insertion order. fn may mutate the
// point in place; returning false removes it. Removal is a stable in-place
// compaction, so later elements are neither skipped nor visited twice.
func (s *Store[T]) ForEachRemovable(ch Channel, fn func(*T) bool) {
	side := s.side(ch)
	kept := (*side)[:0]
	for i := range *side {
		if fn(&(*side)[i]) {
			kept = append(kept, (*side)[i])
		}
	}
	*side = kept
}

// DropOldest removes the first (oldest) point of the channel, if any.
func (s *Store[T]) DropOldest(ch Channel) {
	side := s.side(ch)
	if len(*side) > 0 {
		*side = append((*side)[:0], (*side)[1:]...)
	}
}

func (s *Store[T]) Len(ch Channel) int {
	return len(*s.side(ch))
}

// Slice exposes the live population for in-place mutation (flocking).
func (s *Store[T]) Slice(ch Channel) []T {
	return *s.side(ch)
}

func (s *Store[T]) IsEmpty() bool {
	return len(s.right) == 0 && len(s.left) == 0
}

func (s *Store[T]) Clear() {
	s.right = s.right[:0]
	s.left = s.left[:0]
}
