// Package kernel reference implementations for verification
package kernel

// Reference computes kernel results the slow, obviously-correct way, so the
// evaluator has something to check a tuned configuration's output against.
type Reference struct{}

// GEMM performs general matrix multiplication: C = alpha*A*B + beta*C, where
// A is m x k (or k x m if transA), B is k x n (or n x k if transB), and C is
// m x n. lda, ldb, ldc are the row strides of A, B, C respectively.
func (Reference) GEMM(transA, transB bool, m, n, k int, alpha float32,
	a []float32, lda int, b []float32, ldb int,
	beta float32, c []float32, ldc int) {

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			c[i*ldc+j] *= beta
		}
	}

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum float32
			for l := 0; l < k; l++ {
				sum += aElem(a, lda, i, l, transA) * bElem(b, ldb, l, j, transB)
			}
			c[i*ldc+j] += alpha * sum
		}
	}
}

func aElem(a []float32, lda, i, l int, transA bool) float32 {
	if transA {
		return a[l*lda+i]
	}
	return a[i*lda+l]
}

func bElem(b []float32, ldb, l, j int, transB bool) float32 {
	if transB {
		return b[j*ldb+l]
	}
	return b[l*ldb+j]
}
