package hoa

// Sample-vector helpers for per-sample processing. All of them work on
// caller-provided slices and never allocate.

// Clear zeroes a buffer - no allocations
func Clear(buffer []float64) {
	for i := range buffer {
		buffer[i] = 0
	}
}

// Copy copies from source to destination - no allocations
func Copy(dst, src []float64) {
	copy(dst, src)
}

// Sum returns the sum of all samples in a buffer.
func Sum(buffer []float64) float64 {
	sum := 0.0
	for _, sample := range buffer {
		sum += sample
	}
	return sum
}

// Dot returns the dot product of two buffers over their common length.
func Dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// Square writes the element-wise square of src into dst over their
// common length.
func Square(dst, src []float64) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i] * src[i]
	}
}
