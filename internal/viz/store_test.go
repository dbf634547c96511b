package viz

import "testing"

func TestStoreAppendPreservesOrder(t *testing.T) {
	var st Store[int]
	for i := 0; i < 5; i++ {
		st.Append(Right, i)
	}
	st.Append(Left, 99)

	if st.Len(Right) != 5 || st.Len(Left) != 1 {
		t.Fatalf("lengths = %d/%d, want 5/1", st.Len(Right), st.Len(Left))
	}

	var seen []int
	st.ForEachRemovable(Right, func(v *int) bool {
		seen = append(seen, *v)
		return true
	})
	for i, v := range seen {
		if v != i {
			t.Fatalf("order broken: %v", seen)
		}
	}
	if st.Len(Right) != 5 {
		t.Fatalf("keep-all iteration changed length to %d", st.Len(Right))
	}
}

func TestStoreRemoveMiddle(t *testing.T) {
	var st Store[int]
	for i := 0; i < 5; i++ {
		st.Append(Right, i)
	}

	var visited []int
	st.ForEachRemovable(Right, func(v *int) bool {
		visited = append(visited, *v)
		return *v != 2
	})

	if len(visited) != 5 {
		t.Fatalf("removal skipped elements: visited %v", visited)
	}
	if st.Len(Right) != 4 {
		t.Fatalf("length after removal = %d, want 4", st.Len(Right))
	}
	want := []int{0, 1, 3, 4}
	for i, v := range st.Slice(Right) {
		if v != want[i] {
			t.Fatalf("relative order broken: %v", st.Slice(Right))
		}
	}
}

func TestStoreMutateInPlace(t *testing.T) {
	var st Store[Point]
	st.Append(Left, Point{Z: -100})
	st.ForEachRemovable(Left, func(p *Point) bool {
		p.Z += 40
		return true
	})
	if got := st.Slice(Left)[0].Z; got != -60 {
		t.Fatalf("in-place mutation lost: z = %v", got)
	}
}

func TestStoreDropOldest(t *testing.T) {
	var st Store[int]
	st.Append(Right, 1)
	st.Append(Right, 2)
	st.DropOldest(Right)
	if st.Len(Right) != 1 || st.Slice(Right)[0] != 2 {
		t.Fatalf("DropOldest kept %v", st.Slice(Right))
	}
	st.DropOldest(Left) // empty channel is a no-op
}

func TestStoreEmptyAndClear(t *testing.T) {
	var st Store[int]
	if !st.IsEmpty() {
		t.Fatal("new store not empty")
	}
	st.Append(Left, 1)
	if st.IsEmpty() {
		t.Fatal("store with a left point reported empty")
	}
	st.Clear()
	if !st.IsEmpty() {
		t.Fatal("store not empty after Clear")
	}
}
