//go:build amd64 || 386

package avx

// Dot returns the dot product of u and v: sum(u[i] * v[i]).
// Returns 0 if slices are empty. Only the minimum length of the two
// slices is used.
//
// Four accumulators match the four float64 lanes of a 256-bit AVX
// register. The tail is folded into the first accumulator.
func Dot(u, v []float64) float64 {
	n := len(u)
	if len(v) < n {
		n = len(v)
	}
	if n == 0 {
		return 0
	}

	var sum0, sum1, sum2, sum3 float64

	i := 0
	for ; i <= n-4; i += 4 {
		sum0 += u[i] * v[i]
		sum1 += u[i+1] * v[i+1]
		sum2 += u[i+2] * v[i+2]
		sum3 += u[i+3] * v[i+3]
	}
	for ; i < n; i++ {
		sum0 += u[i] * v[i]
	}

	return (sum0 + sum1) + (sum2 + sum3)
}
