package algo

import "testing"

func TestFrontierPopsSmallestF(t *testing.T) {
	f := NewFrontier()
	f.Push(&SearchNode{F: 5})
	f.Push(&SearchNode{F: 1})
	f.Push(&SearchNode{F: 3})

	got := []int{f.Pop().F, f.Pop().F, f.Pop().F}
	want := []int{1, 3, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pop %d: got %d, want %d", i, got[i], want[i])
		}
	}
	if !f.Empty() {
		t.Errorf("expected frontier empty after draining")
	}
}

func TestFrontierFIFOTieBreak(t *testing.T) {
	f := NewFrontier()
	first := &SearchNode{F: 1}
	second := &SearchNode{F: 1}
	third := &SearchNode{F: 1}
	f.Push(first)
	f.Push(second)
	f.Push(third)

	if got := f.Pop(); got != first {
		t.Errorf("expected FIFO order: first node popped first")
	}
	if got := f.Pop(); got != second {
		t.Errorf("expected FIFO order: second node popped second")
	}
	if got := f.Pop(); got != third {
		t.Errorf("expected FIFO order: third node popped third")
	}
}

func TestFrontierLen(t *testing.T) {
	f := NewFrontier()
	if f.Len() != 0 {
		t.Errorf("Len() = %d, want 0", f.Len())
	}
	f.Push(&SearchNode{F: 1})
	if f.Len() != 1 {
		t.Errorf("Len() = %d, want 1", f.Len())
	}
}
