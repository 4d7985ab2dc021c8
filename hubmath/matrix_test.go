// Copyright 2025 The HUBsim Authors. All rights reserved.

package hubmath

import (
	"testing"

	"github.com/stretchr/testify/assert"

	hub "github.com/HUBformat/HUBsim"
)

func vec(vals ...float64) []hub.Value {
	out := make([]hub.Value, len(vals))
	for i, v := range vals {
		out[i] = hub.FromFloat64(v)
	}
	return out
}

func TestNewMatrix(t *testing.T) {
	a := assert.New(t)
	m, err := NewMatrix(2, 3)
	a.NoError(err)
	a.Equal(2, m.Rows())
	a.Equal(3, m.Cols())
	a.Equal(hub.Value(0), m.At(1, 2))

	_, err = NewMatrix(0, 3)
	a.ErrorIs(err, ErrDimension)
	_, err = FromFloats(2, 2, []float64{1, 2, 3})
	a.ErrorIs(err, ErrDimension)
}

func TestMatrixMul(t *testing.T) {
	a := assert.New(t)
	// An integer product stays exact on the grid after quantization of
	// the small operands.
	m, err := FromFloats(2, 2, []float64{1, 0, 0, 1})
	a.NoError(err)
	o, err := FromFloats(2, 2, []float64{3, 4, 5, 6})
	a.NoError(err)
	res, err := m.Mul(o)
	a.NoError(err)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			a.Equal(o.At(r, c), res.At(r, c))
		}
	}

	_, err = m.MulVec(vec(1, 2, 3))
	a.ErrorIs(err, ErrDimension)
	bad, _ := NewMatrix(3, 2)
	_, err = m.Mul(bad)
	a.ErrorIs(err, ErrDimension)
}

func TestMatrixMulVec(t *testing.T) {
	a := assert.New(t)
	m, err := FromFloats(2, 3, []float64{1, 2, 3, 4, 5, 6})
	a.NoError(err)
	got, err := m.MulVec(vec(1, 1, 1))
	a.NoError(err)
	a.Len(got, 2)
	a.InDelta(6, got[0].Float64(), 1e-5)
	a.InDelta(15, got[1].Float64(), 1e-4)
}

func TestLU(t *testing.T) {
	a := assert.New(t)
	m, err := FromFloats(3, 3, []float64{
		4, 3, 2,
		2, 4, 1,
		1, 2, 4,
	})
	a.NoError(err)
	l, u, err := m.LU()
	a.NoError(err)
	// L has a unit diagonal and U carries the pivots.
	for i := 0; i < 3; i++ {
		a.Equal(hub.FromInt(1), l.At(i, i))
		a.NotZero(u.At(i, i))
		for j := i + 1; j < 3; j++ {
			a.Zero(l.At(i, j))
			a.Zero(u.At(j, i))
		}
	}
	// L*U reproduces the matrix within grid precision.
	prod, err := l.Mul(u)
	a.NoError(err)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			a.InDelta(m.At(r, c).Float64(), prod.At(r, c).Float64(), 1e-5)
		}
	}

	notSquare, _ := NewMatrix(2, 3)
	_, _, err = notSquare.LU()
	a.ErrorIs(err, ErrDimension)
}

func TestLUSingular(t *testing.T) {
	a := assert.New(t)
	m, err := FromFloats(2, 2, []float64{0, 1, 1, 0})
	a.NoError(err)
	_, _, err = m.LU()
	a.ErrorIs(err, ErrSingular)
}

func TestSolve(t *testing.T) {
	a := assert.New(t)
	m, err := FromFloats(3, 3, []float64{
		2, 1, 1,
		1, 3, 2,
		1, 0, 0,
	})
	a.NoError(err)
	// Exact solution of the double system is (1, 2, 3).
	x, err := m.Solve(vec(7, 13, 1))
	a.NoError(err)
	a.Len(x, 3)
	for i, want := range []float64{1, 2, 3} {
		a.InDelta(want, x[i].Float64(), 1e-4)
	}

	_, err = m.Solve(vec(1, 2))
	a.ErrorIs(err, ErrDimension)
}
