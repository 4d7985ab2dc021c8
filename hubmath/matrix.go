// Copyright 2025 The HUBsim Authors. All rights reserved.

// Package hubmath carries numeric kernels written against the hub type.
// They exist to measure how the format's precision propagates through
// real workloads, so every kernel mirrors a plain float implementation
// closely enough to compare against.
package hubmath

import (
	"errors"
	"fmt"

	hub "github.com/HUBformat/HUBsim"
)

var (
	// ErrDimension reports operands whose shapes do not agree.
	ErrDimension = errors.New("dimension mismatch")
	// ErrSingular reports a zero pivot during factorization.
	ErrSingular = errors.New("singular matrix")
)

// Matrix is a dense row-major matrix of hub values.
type Matrix struct {
	rows, cols int
	data       []hub.Value
}

// NewMatrix allocates a zero rows-by-cols matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimension, rows, cols)
	}
	return &Matrix{rows: rows, cols: cols, data: make([]hub.Value, rows*cols)}, nil
}

// FromFloats builds a matrix by quantizing a row-major float slice.
func FromFloats(rows, cols int, vals []float64) (*Matrix, error) {
	m, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(vals) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for %dx%d", ErrDimension, len(vals), rows, cols)
	}
	for i, v := range vals {
		m.data[i] = hub.FromFloat64(v)
	}
	return m, nil
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at row r, column c.
func (m *Matrix) At(r, c int) hub.Value { return m.data[r*m.cols+c] }

// Set stores v at row r, column c.
func (m *Matrix) Set(r, c int, v hub.Value) { m.data[r*m.cols+c] = v }

// Mul returns the product m * o.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if m.cols != o.rows {
		return nil, fmt.Errorf("%w: %dx%d * %dx%d", ErrDimension, m.rows, m.cols, o.rows, o.cols)
	}
	res, _ := NewMatrix(m.rows, o.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < o.cols; c++ {
			var acc hub.Value
			for k := 0; k < m.cols; k++ {
				acc = acc.Add(m.At(r, k).Mul(o.At(k, c)))
			}
			res.Set(r, c, acc)
		}
	}
	return res, nil
}

// MulVec returns the product m * v.
func (m *Matrix) MulVec(v []hub.Value) ([]hub.Value, error) {
	if m.cols != len(v) {
		return nil, fmt.Errorf("%w: %dx%d * vector of %d", ErrDimension, m.rows, m.cols, len(v))
	}
	res := make([]hub.Value, m.rows)
	for r := 0; r < m.rows; r++ {
		var acc hub.Value
		for c := 0; c < m.cols; c++ {
			acc = acc.Add(m.At(r, c).Mul(v[c]))
		}
		res[r] = acc
	}
	return res, nil
}

// LU factors a square matrix into lower and upper triangular factors
// with unit diagonal in L. No pivoting is performed: the factorization
// tracks the precision behavior of the plain textbook loop, and a zero
// pivot returns ErrSingular instead of being swapped away.
func (m *Matrix) LU() (l, u *Matrix, err error) {
	if m.rows != m.cols {
		return nil, nil, fmt.Errorf("%w: %dx%d not square", ErrDimension, m.rows, m.cols)
	}
	n := m.rows
	l, _ = NewMatrix(n, n)
	u, _ = NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for k := i; k < n; k++ {
			var sum hub.Value
			for j := 0; j < i; j++ {
				sum = sum.Add(l.At(i, j).Mul(u.At(j, k)))
			}
			u.Set(i, k, m.At(i, k).Sub(sum))
		}
		if u.At(i, i) == 0 {
			return nil, nil, fmt.Errorf("%w: zero pivot at %d", ErrSingular, i)
		}
		l.Set(i, i, hub.FromInt(1))
		for k := i + 1; k < n; k++ {
			var sum hub.Value
			for j := 0; j < i; j++ {
				sum = sum.Add(l.At(k, j).Mul(u.At(j, i)))
			}
			l.Set(k, i, m.At(k, i).Sub(sum).Div(u.At(i, i)))
		}
	}
	return l, u, nil
}

// Solve solves m * x = b through the LU factors.
func (m *Matrix) Solve(b []hub.Value) ([]hub.Value, error) {
	if m.rows != len(b) {
		return nil, fmt.Errorf("%w: %dx%d with rhs of %d", ErrDimension, m.rows, m.cols, len(b))
	}
	l, u, err := m.LU()
	if err != nil {
		return nil, err
	}
	n := m.rows
	// Forward substitution: L y = b.
	y := make([]hub.Value, n)
	for i := 0; i < n; i++ {
		acc := b[i]
		for j := 0; j < i; j++ {
			acc = acc.Sub(l.At(i, j).Mul(y[j]))
		}
		y[i] = acc
	}
	// Back substitution: U x = y.
	x := make([]hub.Value, n)
	for i := n - 1; i >= 0; i-- {
		acc := y[i]
		for j := i + 1; j < n; j++ {
			acc = acc.Sub(u.At(i, j).Mul(x[j]))
		}
		x[i] = acc.Div(u.At(i, i))
	}
	return x, nil
}
