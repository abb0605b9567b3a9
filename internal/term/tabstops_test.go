package term

import "testing"

func TestTabstopsDefaultInterval(t *testing.T) {
	tabs := newTabstops(24, 0)
	for _, col := range []int{7, 15, 23} {
		if !tabs.Get(col) {
			t.Errorf("expected stop at column %d", col)
		}
	}
	for _, col := range []int{0, 1, 6, 8, 14} {
		if tabs.Get(col) {
			t.Errorf("did not expect stop at column %d", col)
		}
	}
}

func TestTabstopsSetUnset(t *testing.T) {
	tabs := newTabstops(10, 8)
	tabs.Set(3)
	if !tabs.Get(3) {
		t.Fatal("Set did not mark column 3")
	}
	tabs.Unset(3)
	if tabs.Get(3) {
		t.Fatal("Unset did not clear column 3")
	}
}

func TestTabstopsClearAll(t *testing.T) {
	tabs := newTabstops(10, 8)
	tabs.ClearAll()
	for col := 0; col < 10; col++ {
		if tabs.Get(col) {
			t.Fatalf("column %d still set after ClearAll", col)
		}
	}
}

func TestTabstopsOutOfRangeIgnored(t *testing.T) {
	tabs := newTabstops(10, 8)
	tabs.Set(-1)
	tabs.Set(100)
	if tabs.Get(-1) || tabs.Get(100) {
		t.Fatal("out-of-range Set should be a no-op")
	}
}

func TestTabstopsResize(t *testing.T) {
	tabs := newTabstops(10, 8)
	tabs.resize(20, 8)
	if tabs.cols != 20 {
		t.Fatalf("expected cols 20, got %d", tabs.cols)
	}
	if !tabs.Get(7) || !tabs.Get(15) {
		t.Fatal("expected default stops to be rebuilt after resize")
	}
}
