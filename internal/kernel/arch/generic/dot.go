package generic

// Dot returns the dot product of u and v: sum(u[i] * v[i]).
// Returns 0 if slices are empty. Only the minimum length of the two
// slices is used.
//
// This is the portable reference implementation: a single accumulator in
// strict index order. All other variants are measured against it.
func Dot(u, v []float64) float64 {
	n := len(u)
	if len(v) < n {
		n = len(v)
	}
	if n == 0 {
		return 0
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += u[i] * v[i]
	}
	return sum
}
