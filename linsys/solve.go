package linsys

import "math"

// Pivoting selects how a pivot row is chosen during elimination.
type Pivoting int

const (
	// FirstNonZero swaps in the first row below the pivot with a nonzero entry
	// in the pivot column, and only if the diagonal cell is exactly zero.
	FirstNonZero Pivoting = iota
	// MaxMagnitude always swaps in the row with the largest absolute entry in
	// the pivot column. Results differ from FirstNonZero for ill-conditioned
	// systems.
	MaxMagnitude
)

func (p Pivoting) String() string {
	switch p {
	case FirstNonZero:
		return "first-nonzero"
	case MaxMagnitude:
		return "max-magnitude"
	}
	return "unknown"
}

// Solve finds x with A·x = b, using Gaussian elimination with FirstNonZero
// pivoting.
//
// No error is reported for singular systems. The result will then contain
// Inf or NaN cells; clients have to make sure not to construct degenerate
// systems in the first place.
func Solve(A Mat4, b Vec4) Vec4 {
	return SolveWith(A, b, FirstNonZero)
}

// SolveWith finds x with A·x = b, using a given pivoting strategy.
func SolveWith(A Mat4, b Vec4, pivoting Pivoting) Vec4 {
	A, b = Eliminate(A, b, pivoting)
	return BackSubstitute(A, b)
}

// Eliminate performs forward elimination on copies of A and b and returns
// the upper triangular system.
func Eliminate(A Mat4, b Vec4, pivoting Pivoting) (Mat4, Vec4) {
	for j := 0; j < Dim-1; j++ {
		if r := pivotRow(A, j, pivoting); r != j {
			T().Debugf("pivot column %d: swap rows %d and %d", j, j, r)
			A.SwapRows(j, r)
			b.SwapCells(j, r)
		} else if A[j][j] == 0 {
			T().Errorf("pivot column %d: no nonzero pivot, matrix is singular", j)
		}
		for i := j + 1; i < Dim; i++ {
			factor := -A[i][j] / A[j][j]
			A[i] = A[i].Add(A[j].Scaled(factor))
			b[i] += factor * b[j]
			A[i][j] = 0 // eliminated; cancellation may leave rounding dust
		}
	}
	return A, b
}

func pivotRow(A Mat4, j int, pivoting Pivoting) int {
	switch pivoting {
	case MaxMagnitude:
		r := j
		for i := j + 1; i < Dim; i++ {
			if math.Abs(A[i][j]) > math.Abs(A[r][j]) {
				r = i
			}
		}
		return r
	default:
		if A[j][j] != 0 {
			return j
		}
		for i := j + 1; i < Dim; i++ {
			if A[i][j] != 0 {
				return i
			}
		}
		return j
	}
}

// BackSubstitute solves an upper triangular system, starting with the last row.
func BackSubstitute(A Mat4, b Vec4) Vec4 {
	var x Vec4
	x[3] = b[3] / A[3][3]
	x[2] = (b[2] - A[2][3]*x[3]) / A[2][2]
	x[1] = (b[1] - A[1][3]*x[3] - A[1][2]*x[2]) / A[1][1]
	x[0] = (b[0] - A[0][3]*x[3] - A[0][2]*x[2] - A[0][1]*x[1]) / A[0][0]
	return x
}
