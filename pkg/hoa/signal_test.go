package hoa

import "testing"

func TestClear(t *testing.T) {
	buffer := []float64{1, -2, 3}
	Clear(buffer)
	for i, v := range buffer {
		if v != 0 {
			t.Errorf("buffer[%d] = %v, want 0", i, v)
		}
	}
}

func TestSum(t *testing.T) {
	if got := Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = %v, want 0", got)
	}
	if got := Sum([]float64{1, -2, 3.5}); got != 2.5 {
		t.Errorf("Sum = %v, want 2.5", got)
	}
}

func TestDot(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, -5, 6}
	if got := Dot(a, b); got != 12 {
		t.Errorf("Dot = %v, want 12", got)
	}

	// The shorter slice bounds the reduction.
	if got := Dot(a, b[:2]); got != -6 {
		t.Errorf("Dot over common length = %v, want -6", got)
	}
}

func TestSquare(t *testing.T) {
	dst := make([]float64, 3)
	Square(dst, []float64{-2, 0.5, 3})
	want := []float64{4, 0.25, 9}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}
