// Package linsys solves dense 4×4 systems of linear equations.
/*
BSD 3-Clause License

Copyright (c) 2017–21, Norbert Pillmayer.

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package linsys

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// T traces to the linear systems tracer.
func T() tracing.Trace {
	return tracing.Select("linsys")
}

// Dim is the dimension of the systems handled by this package.
const Dim = 4

// === Vectors and matrices ==================================================

// Vec4 is a column vector of 4 cells.
type Vec4 [Dim]float64

// Scaled returns v multiplied by s.
func (v Vec4) Scaled(s float64) Vec4 {
	for i := range v {
		v[i] *= s
	}
	return v
}

// Add returns v + w.
func (v Vec4) Add(w Vec4) Vec4 {
	for i := range v {
		v[i] += w[i]
	}
	return v
}

// SwapCells exchanges cells c1 and c2 in place.
func (v *Vec4) SwapCells(c1, c2 int) {
	v[c1], v[c2] = v[c2], v[c1]
}

// Mat4 is a 4×4 matrix, stored by rows.
type Mat4 [Dim]Vec4

// Row returns row r of m.
func (m Mat4) Row(r int) Vec4 {
	return m[r]
}

// At returns the cell at row r and column c.
func (m Mat4) At(r, c int) float64 {
	return m[r][c]
}

// SwapRows exchanges rows r1 and r2 in place.
func (m *Mat4) SwapRows(r1, r2 int) {
	m[r1], m[r2] = m[r2], m[r1]
}

// MulVec returns m·v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	var r Vec4
	for i := range m {
		for j := range v {
			r[i] += m[i][j] * v[j]
		}
	}
	return r
}

// IsUpperTriangular is a predicate: are all cells below the diagonal zero?
func (m Mat4) IsUpperTriangular() bool {
	for i := 1; i < Dim; i++ {
		for j := 0; j < i; j++ {
			if m[i][j] != 0 {
				return false
			}
		}
	}
	return true
}

// Debug Stringer for a matrix.
func (m Mat4) String() string {
	s := ""
	for _, r := range m {
		s += fmt.Sprintf("| %-10.2f %-10.2f %-10.2f %-10.2f\n", r[0], r[1], r[2], r[3])
	}
	return s
}
