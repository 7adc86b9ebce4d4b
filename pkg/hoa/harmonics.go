package hoa

// Circular (2-D) harmonic indexing. A decomposition of order N carries
// 2N+1 harmonics laid out degree by degree, the negative order first:
//
//	index:    0      1      2      3      4    ...
//	harmonic: (0,0)  (1,-1) (1,1)  (2,-2) (2,2)
//
// HarmonicCount returns the number of harmonics for a decomposition
// order.
func HarmonicCount(order int) int {
	return 2*order + 1
}

// HarmonicDegree returns the degree l of the harmonic at index i.
func HarmonicDegree(i int) int {
	return (i + 1) / 2
}

// HarmonicOrder returns the order m of the harmonic at index i, which
// is -l for odd indices and l otherwise.
func HarmonicOrder(i int) int {
	l := (i + 1) / 2
	if i&1 == 1 {
		return -l
	}
	return l
}
