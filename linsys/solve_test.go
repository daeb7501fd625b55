package linsys

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// hermite returns the system for a cubic through x1 and x2.
func hermite(x1, x2 float64) Mat4 {
	return Mat4{
		{x1 * x1 * x1, x1 * x1, x1, 1},
		{x2 * x2 * x2, x2 * x2, x2, 1},
		{3 * x1 * x1, 2 * x1, 1, 0},
		{3 * x2 * x2, 2 * x2, 1, 0},
	}
}

func TestSolveIdentity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	b := Vec4{1, 2, 3, 4}
	x := Solve(identity(), b)
	if x != b {
		t.Errorf("expected %v, got %v", b, x)
	}
}

func TestSolveKnownSolution(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	A := Mat4{
		{2, 1, -1, 3},
		{4, 5, 2, 1},
		{-2, 3, 7, 2},
		{1, -1, 1, 6},
	}
	want := Vec4{1, -2, 0.5, 3}
	got := Solve(A, A.MulVec(want))
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("solution mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveSwapsZeroPivot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// x1 = 0 puts a zero into A[0][0]
	A := hermite(0, 10)
	want := Vec4{-0.01, 0.15, 0, 0}
	got := Solve(A, A.MulVec(want))
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("solution mismatch (-want +got):\n%s", diff)
	}
}

func TestEliminateIsUpperTriangular(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	A, _ := Eliminate(hermite(2, 7), Vec4{1, 2, 3, 4}, FirstNonZero)
	assert.True(t, A.IsUpperTriangular(), "not upper triangular:\n%s", A)
}

func TestFirstNonZeroTakesFirstCandidate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	A := Mat4{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{9, 0, 1, 0},
		{0, 0, 0, 1},
	}
	assert.Equal(t, 1, pivotRow(A, 0, FirstNonZero))
	assert.Equal(t, 2, pivotRow(A, 0, MaxMagnitude))
	A[0][0] = 0.5
	assert.Equal(t, 0, pivotRow(A, 0, FirstNonZero), "nonzero diagonal is kept")
}

func TestPivotingStrategiesAgree(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	A := hermite(1.5, 4)
	b := Vec4{2, -1, 0.25, 3}
	x1 := SolveWith(A, b, FirstNonZero)
	x2 := SolveWith(A, b, MaxMagnitude)
	if diff := cmp.Diff(x1, x2, cmpopts.EquateApprox(1e-9, 1e-9)); diff != "" {
		t.Errorf("strategies disagree (-first +max):\n%s", diff)
	}
	if diff := cmp.Diff(b, A.MulVec(x1), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("A·x != b (-b +A·x):\n%s", diff)
	}
}

func TestSolveSingularIsNotFinite(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// coinciding x-coordinates: rows 0/1 and 2/3 are equal
	x := Solve(hermite(3, 3), Vec4{1, 2, 0, 0})
	finite := true
	for _, c := range x {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			finite = false
		}
	}
	assert.False(t, finite, "expected Inf or NaN in %v", x)
}

func TestPivotingString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, "first-nonzero", FirstNonZero.String())
	assert.Equal(t, "max-magnitude", MaxMagnitude.String())
}
