//go:build amd64 || 386

package avx2

// Dot returns the dot product of u and v: sum(u[i] * v[i]).
// Returns 0 if slices are empty. Only the minimum length of the two
// slices is used.
//
// Eight accumulators keep two 256-bit blocks in flight per iteration,
// which hides the multiply latency on AVX2 cores. Accumulation order
// differs from both the avx and generic kernels.
func Dot(u, v []float64) float64 {
	n := len(u)
	if len(v) < n {
		n = len(v)
	}
	if n == 0 {
		return 0
	}

	var sum0, sum1, sum2, sum3 float64
	var sum4, sum5, sum6, sum7 float64

	i := 0
	for ; i <= n-8; i += 8 {
		sum0 += u[i] * v[i]
		sum1 += u[i+1] * v[i+1]
		sum2 += u[i+2] * v[i+2]
		sum3 += u[i+3] * v[i+3]
		sum4 += u[i+4] * v[i+4]
		sum5 += u[i+5] * v[i+5]
		sum6 += u[i+6] * v[i+6]
		sum7 += u[i+7] * v[i+7]
	}
	for ; i < n; i++ {
		sum0 += u[i] * v[i]
	}

	return ((sum0 + sum1) + (sum2 + sum3)) + ((sum4 + sum5) + (sum6 + sum7))
}
