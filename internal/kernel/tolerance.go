// Package kernel tolerance-based verification for floating-point comparisons
package kernel

import "math"

// ToleranceConfig bounds how far an optimized kernel's output may drift from
// Reference's before the evaluator rejects the configuration that produced
// it.
type ToleranceConfig struct {
	AbsTol float32 // absolute tolerance for values near zero
	RelTol float32 // relative tolerance as a fraction of the larger operand
	ULPTol int     // maximum allowed difference in ULPs
}

// RelaxedTolerance is the tolerance used for GEMM results accumulated over
// many floating-point operations, where strict bit-exactness isn't
// attainable even from a correct implementation.
func RelaxedTolerance() ToleranceConfig {
	return ToleranceConfig{AbsTol: 1e-5, RelTol: 1e-3, ULPTol: 16}
}

func float32NearEqual(a, b float32, tol ToleranceConfig) bool {
	if a == b {
		return true
	}
	diff := math.Abs(float64(a - b))
	if diff <= float64(tol.AbsTol) {
		return true
	}
	larger := math.Max(math.Abs(float64(a)), math.Abs(float64(b)))
	if diff <= larger*float64(tol.RelTol) {
		return true
	}
	return tol.ULPTol > 0 && float32ULPDiff(a, b) <= tol.ULPTol
}

func float32ULPDiff(a, b float32) int {
	aBits, bBits := math.Float32bits(a), math.Float32bits(b)
	if (aBits^bBits)&0x80000000 != 0 {
		return math.MaxInt32
	}
	if aBits > bBits {
		return int(aBits - bBits)
	}
	return int(bBits - aBits)
}

// VerificationResult summarizes how far actual diverged from expected.
type VerificationResult struct {
	MaxAbsError float32
	MaxRelError float32
	MaxULPError int
	NumErrors   int
	TotalItems  int
	FirstError  int // index of first mismatch, -1 if none
}

// VerifyFloat32Array compares expected against actual element-wise under
// tol and returns the worst-case error seen.
func VerifyFloat32Array(expected, actual []float32, tol ToleranceConfig) VerificationResult {
	result := VerificationResult{TotalItems: len(expected), FirstError: -1}

	if len(expected) != len(actual) {
		result.NumErrors = len(expected)
		result.MaxAbsError = float32(math.Inf(1))
		result.MaxRelError = float32(math.Inf(1))
		result.MaxULPError = math.MaxInt32
		return result
	}

	for i := range expected {
		if float32NearEqual(expected[i], actual[i], tol) {
			continue
		}
		result.NumErrors++
		if result.FirstError == -1 {
			result.FirstError = i
		}
		absDiff := float32(math.Abs(float64(expected[i] - actual[i])))
		if absDiff > result.MaxAbsError {
			result.MaxAbsError = absDiff
		}
		if expected[i] != 0 {
			if relDiff := absDiff / float32(math.Abs(float64(expected[i]))); relDiff > result.MaxRelError {
				result.MaxRelError = relDiff
			}
		}
		if ulpDiff := float32ULPDiff(expected[i], actual[i]); ulpDiff > result.MaxULPError {
			result.MaxULPError = ulpDiff
		}
	}

	return result
}

// IsAcceptable reports whether r's worst-case error falls within tol. A
// zero-error result is always acceptable even if tol is zero-valued.
func (r VerificationResult) IsAcceptable(tol ToleranceConfig) bool {
	return r.NumErrors == 0 ||
		(r.MaxAbsError <= tol.AbsTol &&
			r.MaxRelError <= tol.RelTol &&
			r.MaxULPError <= tol.ULPTol)
}
