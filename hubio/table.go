// Copyright 2025 The HUBsim Authors. All rights reserved.

package hubio

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"
	"strings"

	"github.com/shopspring/decimal"

	hub "github.com/HUBformat/HUBsim"
)

// Operation is an arithmetic operation to tabulate. The symbol appears in
// the Description column of special-value tables.
type Operation struct {
	Name   string
	Symbol string

	arity   int
	unary   func(hub.Value) hub.Value
	binary  func(hub.Value, hub.Value) hub.Value
	ternary func(hub.Value, hub.Value, hub.Value) hub.Value
}

// Unary wraps a one-operand operation.
func Unary(name, symbol string, fn func(hub.Value) hub.Value) Operation {
	return Operation{Name: name, Symbol: symbol, arity: 1, unary: fn}
}

// Binary wraps a two-operand operation.
func Binary(name, symbol string, fn func(hub.Value, hub.Value) hub.Value) Operation {
	return Operation{Name: name, Symbol: symbol, arity: 2, binary: fn}
}

// Ternary wraps a three-operand operation.
func Ternary(name, symbol string, fn func(hub.Value, hub.Value, hub.Value) hub.Value) Operation {
	return Operation{Name: name, Symbol: symbol, arity: 3, ternary: fn}
}

// The tabulated operations of the format.
var (
	Add  = Binary("add", "+", hub.Value.Add)
	Sub  = Binary("sub", "-", hub.Value.Sub)
	Mul  = Binary("mul", "*", hub.Value.Mul)
	Div  = Binary("div", "/", hub.Value.Div)
	Sqrt = Unary("sqrt", "sqrt", hub.Sqrt)
	FMA  = Ternary("fma", "fma", hub.FMA)
)

// Operations lists every tabulated operation, keyed for lookup by name.
func Operations() map[string]Operation {
	ops := map[string]Operation{}
	for _, op := range []Operation{Add, Sub, Mul, Div, Sqrt, FMA} {
		ops[op.Name] = op
	}
	return ops
}

func (op Operation) apply(args []hub.Value) hub.Value {
	switch op.arity {
	case 1:
		return op.unary(args[0])
	case 2:
		return op.binary(args[0], args[1])
	default:
		return op.ternary(args[0], args[1], args[2])
	}
}

// SpecialValue is a named boundary value of the format.
type SpecialValue struct {
	Name string
	V    hub.Value
}

// SpecialValues lists the boundary values the special tables cross.
func SpecialValues() []SpecialValue {
	return []SpecialValue{
		{"Zero", hub.Value(0)},
		{"Negative Zero", hub.Value(math.Copysign(0, -1))},
		{"One", hub.FromInt(1)},
		{"Negative One", hub.FromInt(-1)},
		{"Infinity", hub.Inf(1)},
		{"Negative Infinity", hub.Inf(-1)},
		{"Min Positive", hub.Lowest()},
		{"Min Negative", hub.Lowest().Neg()},
	}
}

// TableConfig controls table size. A table whose full cross product has
// at most MaxExhaustive rows is emitted exhaustively; larger domains are
// sampled Samples times with the seeded generator, so a table regenerates
// bit-identically from the same config.
type TableConfig struct {
	MaxExhaustive uint64
	Samples       int
	Seed          int64
}

// DefaultTableConfig mirrors the sizes the hardware test benches consume.
func DefaultTableConfig() TableConfig {
	return TableConfig{MaxExhaustive: 1 << 20, Samples: 100000, Seed: 42}
}

func hexCell(v hub.Value) string {
	return strings.TrimPrefix(v.HexString(), "0x")
}

// numericCell renders the exact decimal of a finite value; infinities
// have no decimal form and fall back to the float rendering.
func numericCell(v hub.Value) string {
	if v.IsInf() {
		return v.String()
	}
	return decimal.NewFromFloat(v.Float64()).String()
}

func headerFor(arity int, numeric, described bool) []string {
	var cols []string
	switch arity {
	case 1:
		cols = []string{"X", "Z"}
	case 2:
		cols = []string{"X", "Y", "Z"}
	default:
		cols = []string{"X", "Y", "Z", "R"}
	}
	if numeric {
		for i := 0; i <= arity; i++ {
			cols = append(cols, cols[i]+" value")
		}
	}
	if described {
		cols = append(cols, "Description")
	}
	return cols
}

func rowFor(args []hub.Value, res hub.Value, numeric bool) []string {
	row := make([]string, 0, 2*len(args)+3)
	for _, v := range args {
		row = append(row, hexCell(v))
	}
	row = append(row, hexCell(res))
	if numeric {
		for _, v := range args {
			row = append(row, numericCell(v))
		}
		row = append(row, numericCell(res))
	}
	return row
}

// WriteSpecial writes the cross product of the special values under op as
// CSV, one row per combination, with a human-readable Description column.
// With numeric set, every hex column is mirrored by its decimal value.
func WriteSpecial(w io.Writer, op Operation, numeric bool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headerFor(op.arity, numeric, true)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	specials := SpecialValues()
	combos := combinations(len(specials), op.arity)
	for _, idx := range combos {
		args := make([]hub.Value, op.arity)
		names := make([]string, op.arity)
		for i, j := range idx {
			args[i] = specials[j].V
			names[i] = specials[j].Name
		}
		row := rowFor(args, op.apply(args), numeric)
		row = append(row, describe(op, names))
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func describe(op Operation, names []string) string {
	if op.arity == 2 && op.Symbol != op.Name {
		return names[0] + " " + op.Symbol + " " + names[1]
	}
	return op.Name + "(" + strings.Join(names, ", ") + ")"
}

// combinations enumerates all index tuples of the given arity over n
// values, in row-major order.
func combinations(n, arity int) [][]int {
	total := 1
	for i := 0; i < arity; i++ {
		total *= n
	}
	out := make([][]int, total)
	for r := 0; r < total; r++ {
		idx := make([]int, arity)
		rem := r
		for i := arity - 1; i >= 0; i-- {
			idx[i] = rem % n
			rem /= n
		}
		out[r] = idx
	}
	return out
}

// WriteTable writes an operand table over the whole packed domain:
// exhaustively when the cross product fits cfg.MaxExhaustive, otherwise
// by seeded uniform sampling.
func WriteTable(w io.Writer, op Operation, cfg TableConfig) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headerFor(op.arity, false, false)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	width := uint(hub.DefaultFormat().Width())
	domain := uint64(1) << width
	if exhaustiveFits(domain, op.arity, cfg.MaxExhaustive) {
		if err := writeExhaustive(cw, op, domain, make([]hub.Value, 0, op.arity)); err != nil {
			return err
		}
	} else {
		rnd := rand.New(rand.NewSource(cfg.Seed))
		args := make([]hub.Value, op.arity)
		for s := 0; s < cfg.Samples; s++ {
			for i := range args {
				args[i] = hub.FromPacked(rnd.Uint64() & (domain - 1))
			}
			if err := cw.Write(rowFor(args, op.apply(args), false)); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func exhaustiveFits(domain uint64, arity int, limit uint64) bool {
	rows := uint64(1)
	for i := 0; i < arity; i++ {
		if rows > limit/domain {
			return false
		}
		rows *= domain
	}
	return rows <= limit
}

func writeExhaustive(cw *csv.Writer, op Operation, domain uint64, args []hub.Value) error {
	if len(args) == cap(args) {
		if err := cw.Write(rowFor(args, op.apply(args), false)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
		return nil
	}
	for word := uint64(0); word < domain; word++ {
		if err := writeExhaustive(cw, op, domain, append(args, hub.FromPacked(word))); err != nil {
			return err
		}
	}
	return nil
}
