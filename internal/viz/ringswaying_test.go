package viz

import "testing"

func TestRingSwayingColdStart(t *testing.T) {
	s := NewRingSwaying(4, 160, NewRand(7))
	s.AddPoint(0, fourBands, fourBands)

	for _, ch := range channels {
		if got := s.store.Len(ch); got != FlockAgeLimit+1 {
			t.Fatalf("channel %d population = %d, want %d", ch, got, FlockAgeLimit+1)
		}
	}

	// A second spawn on a populated store must not re-seed.
	s.AddPoint(10, fourBands, fourBands)
	if got := s.store.Len(Right); got != FlockAgeLimit+2 {
		t.Fatalf("population after second spawn = %d, want %d", got, FlockAgeLimit+2)
	}
}

func TestRingSwayingAgeBoundary(t *testing.T) {
	s := NewRingSwaying(4, 160, NewRand(7))
	s.store.Append(Right, Boid{Age: FlockAgeLimit})
	s.store.Append(Right, Boid{Age: FlockAgeLimit - 1})
	c := newRecordCanvas()

	s.Visualize(c, true, 0)

	if got := s.store.Len(Right); got != 1 {
		t.Fatalf("population = %d, want 1 (aged-out boid removed)", got)
	}
	if got := s.store.Slice(Right)[0].Age; got != FlockAgeLimit-1 {
		t.Fatalf("survivor age = %d, want %d", got, FlockAgeLimit-1)
	}
}

func TestRingSwayingNonPrimaryTrim(t *testing.T) {
	s := NewRingSwaying(4, 160, NewRand(7))
	s.AddPoint(0, fourBands, fourBands)
	c := newRecordCanvas()

	before := s.store.Len(Right)
	s.Visualize(c, false, 0)
	after := s.store.Len(Right)

	// At most one convergence trim plus any aged-out seeds.
	if after >= before {
		t.Fatalf("non-primary population did not shrink: %d -> %d", before, after)
	}
}

func TestRingSwayingAgesAdvance(t *testing.T) {
	s := NewRingSwaying(4, 160, NewRand(7))
	s.AddPoint(0, fourBands, fourBands)
	c := newRecordCanvas()

	// The spawned point enters at age 0, so after one frame it is 1.
	s.Visualize(c, true, 0)
	pop := s.store.Slice(Right)
	if got := pop[len(pop)-1].Age; got != 1 {
		t.Fatalf("spawned boid age after one frame = %d, want 1", got)
	}
}
