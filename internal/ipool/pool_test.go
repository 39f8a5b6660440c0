package ipool

import "testing"

func TestListAddAndAsSlice(t *testing.T) {
	p := NewProvider[int](4)
	l := New(p)
	defer l.Release()

	l.Add(1)
	l.Add(2)
	l.AddRange([]int{3, 4, 5})

	got := l.AsSlice()
	want := []int{1, 2, 3, 4, 5}
	if l.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", l.Len(), len(want))
	}
	for i, v := range want {
		if got[i] != v {
			t.Errorf("AsSlice()[%d] = %d, want %d", i, got[i], v)
		}
	}
}

func TestListClear(t *testing.T) {
	p := NewProvider[string](2)
	l := New(p)
	defer l.Release()

	l.AddRange([]string{"a", "b"})
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", l.Len())
	}
	l.Add("c")
	if got := l.AsSlice(); len(got) != 1 || got[0] != "c" {
		t.Errorf("AsSlice() after Clear+Add = %v, want [c]", got)
	}
}

// TestReleaseRecyclesBackingArray confirms a released array is handed
// back with length zero, so the next New from the same provider starts
// empty even though it may reuse the same backing storage.
func TestReleaseRecyclesBackingArray(t *testing.T) {
	p := NewProvider[int](2)

	l1 := New(p)
	l1.AddRange([]int{7, 8, 9})
	l1.Release()

	l2 := New(p)
	defer l2.Release()
	if l2.Len() != 0 {
		t.Errorf("fresh List from a used provider has Len() = %d, want 0", l2.Len())
	}
}
