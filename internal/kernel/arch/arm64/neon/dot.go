//go:build arm64

package neon

// Dot returns the dot product of u and v: sum(u[i] * v[i]).
// Returns 0 if slices are empty. Only the minimum length of the two
// slices is used.
//
// Two accumulators match the two float64 lanes of a 128-bit NEON
// register.
func Dot(u, v []float64) float64 {
	n := len(u)
	if len(v) < n {
		n = len(v)
	}
	if n == 0 {
		return 0
	}

	var sum0, sum1 float64

	i := 0
	for ; i <= n-2; i += 2 {
		sum0 += u[i] * v[i]
		sum1 += u[i+1] * v[i+1]
	}
	for ; i < n; i++ {
		sum0 += u[i] * v[i]
	}

	return sum0 + sum1
}
