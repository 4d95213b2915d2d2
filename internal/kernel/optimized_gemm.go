package kernel

// OptimizedGEMM_Float32 computes C = alpha*A*B + beta*C using a
// cache-blocked triple loop: the k dimension is walked in tileSize chunks so
// each block's A/B panels stay resident in L1 across the i,j sweep, instead
// of streaming the full K-deep dot product through cache on every (i, j)
// pair the way Reference does. This is the "kernel under test" the
// evaluator times; its only job is to be a faster, still-correct stand-in
// for Reference.GEMM.
func OptimizedGEMM_Float32(transA, transB bool, m, n, k int, alpha float32,
	a []float32, lda int, b []float32, ldb int,
	beta float32, c []float32, ldc int) {

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			c[i*ldc+j] *= beta
		}
	}

	for k0 := 0; k0 < k; k0 += tileSize {
		k1 := min(k0+tileSize, k)
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				var sum float32
				for l := k0; l < k1; l++ {
					sum += aElem(a, lda, i, l, transA) * bElem(b, ldb, l, j, transB)
				}
				c[i*ldc+j] += alpha * sum
			}
		}
	}
}
