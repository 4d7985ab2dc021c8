// Copyright 2025 The HUBsim Authors. All rights reserved.

package hub

import (
	"testing"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

func BenchmarkAddHub(b *testing.B) {
	f0 := FromFloat64(123456789.9)
	f1 := FromFloat64(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Add(f1)
	}
}

func BenchmarkAddFixed(b *testing.B) {
	f0 := of.NewF(123456789.9)
	f1 := of.NewF(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Add(f1)
	}
}

func BenchmarkAddDecimal(b *testing.B) {
	f0 := decimal.NewFromFloat(123456789.9)
	f1 := decimal.NewFromFloat(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Add(f1)
	}
}

func BenchmarkMulHub(b *testing.B) {
	f0 := FromFloat64(123456789.0)
	f1 := FromFloat64(1234.0)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulFixed(b *testing.B) {
	f0 := of.NewF(123456789.0)
	f1 := of.NewF(1234.0)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulDecimal(b *testing.B) {
	f0 := decimal.NewFromFloat(123456789.0)
	f1 := decimal.NewFromFloat(1234.0)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkFMA(b *testing.B) {
	f0 := FromFloat64(123456789.0)
	f1 := FromFloat64(1234.0)
	f2 := FromFloat64(0.5)

	for i := 0; i < b.N; i++ {
		FMA(f0, f1, f2)
	}
}

func BenchmarkDecodePacked(b *testing.B) {
	for i := 0; i < b.N; i++ {
		format.DecodePacked(uint64(i) & 0xFFFFFFFF)
	}
}
