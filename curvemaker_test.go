package curvemaker

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
}

func TestClamp(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, 2.0, Clamp(1, 2, 5))
	assert.Equal(t, 5.0, Clamp(7, 2, 5))
	assert.Equal(t, 3.0, Clamp(3, 2, 5))
	assert.Equal(t, 4.0, Clamp(3, 5, 4), "inverted interval yields hi")
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.IsOrigin() {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	if d := P(1, 1).DistSqr(P(4, 5)); d != 25 {
		t.Errorf("Expected squared distance 25, is %g", d)
	}
	if m := P(2, 3).Mul(P(1, -1)); m != P(2, -3) {
		t.Errorf("Expected (2,-3), is %v", m)
	}
}

func TestNormalized(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	n := P(0, 7).Normalized()
	assert.InDelta(t, 0.0, n.X(), 1e-12)
	assert.InDelta(t, 1.0, n.Y(), 1e-12)
	assert.Equal(t, Origin, Origin.Normalized())
	assert.InDelta(t, 1.0, P(3, -4).Normalized().Length(), 1e-12)
}

func TestSlope(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, 0.5, P(2, 1).Slope())
	assert.True(t, math.IsInf(P(0, 1).Slope(), 1))
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).IsOrigin() {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !P(1, 0).Rotated(180 * Deg2Rad).Shifted(P(1, 0)).IsOrigin() {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestCombineOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// scale first, then translate
	T := Scaling(2, -1).Combine(Translation(P(10, 20)))
	if p := T.Transform(P(3, 4)); !p.Equal(P(16, 16)) {
		t.Errorf("Expected (16,16), is %v", p)
	}
	if v := T.TransformVector(P(3, 4)); !v.Equal(P(6, -4)) {
		t.Errorf("Expected (6,-4), is %v", v)
	}
	sx, sy := T.ScaleFactors()
	assert.Equal(t, 2.0, sx)
	assert.Equal(t, -1.0, sy)
}
