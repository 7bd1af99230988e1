// Package emu implements the MIX processor: the execution units that
// carry out each decoded instruction against a register file and
// memory, and the Emulator that drives fetch/decode/execute.
package emu

import (
	"github.com/mixvm/mix/vm"
	"github.com/mixvm/mix/word"
)

// ALU implements MIX's four arithmetic operations: ADD, SUB, MUL, DIV.
// All four read their operand from the caller (already fetched from
// memory and narrowed to the instruction's field) and leave their
// result in rA (and, for MUL/DIV, rX).
type ALU struct {
	regFile *vm.RegFile
}

// NewALU creates a new ALU connected to the given register file.
func NewALU(regFile *vm.RegFile) *ALU {
	return &ALU{regFile: regFile}
}

// Add performs rA <- rA + v. A result of zero keeps rA's pre-op sign;
// a result outside [-(2^30-1), 2^30-1] sets overflow and resets rA to
// +0, per Knuth's overflow rule.
func (a *ALU) Add(v word.Word) {
	a.addOrSub(v.Signed())
}

// Sub performs rA <- rA - v.
func (a *ALU) Sub(v word.Word) {
	a.addOrSub(-v.Signed())
}

func (a *ALU) addOrSub(delta int32) {
	preSign := a.regFile.A.GetSign()
	sum := int64(a.regFile.A.Signed()) + int64(delta)

	if sum == 0 {
		a.regFile.A = word.Zero(preSign)
		return
	}

	if sum > int64(word.MaxMagnitude) || sum < -int64(word.MaxMagnitude) {
		a.regFile.SetOverflow(true)
		a.regFile.A = word.Zero(0)
		return
	}

	a.regFile.A = word.FromSigned(int32(sum))
}

// Mul performs (rA,rX) <- rA * v, a signed 60-bit product split across
// the two registers. The sign of a nonzero product is the XOR of the
// operand signs, carried onto both halves including when one half is
// zero; a zero product leaves +0 in both registers.
func (a *ALU) Mul(v word.Word) {
	product := int64(a.regFile.A.Signed()) * int64(v.Signed())

	sign := 0
	if product < 0 {
		sign = -1
		product = -product
	}

	hi, lo := word.Split(product)
	a.regFile.A = hi.SetSign(sign)
	a.regFile.X = lo.SetSign(sign)
}

// Div performs (rA,rX) <- ((rA,rX) / v, (rA,rX) % v): rA becomes the
// quotient and rX the remainder. If v is zero or the quotient would
// not fit in a single word (|rA| >= |v|), the division is aborted:
// overflow is set and both rA and rX are left undefined by Knuth's own
// account, but this implementation zeroes them for determinism.
func (a *ALU) Div(v word.Word) {
	preSign := a.regFile.A.GetSign()

	if v.Signed() == 0 || a.regFile.A.Raw()&word.Abs >= v.Raw()&word.Abs {
		a.regFile.SetOverflow(true)
		a.regFile.A = word.Zero(preSign)
		a.regFile.X = word.Zero(preSign)
		return
	}

	dividend := word.Unite(a.regFile.A, a.regFile.X)
	divisor := int64(v.Signed())

	quotient := dividend / divisor
	remainder := dividend % divisor

	qSign := 0
	if quotient < 0 {
		qSign = -1
		quotient = -quotient
	}
	if remainder < 0 {
		remainder = -remainder
	}

	a.regFile.A = word.FromSigned(int32(quotient)).SetSign(qSign)
	a.regFile.X = word.FromSigned(int32(remainder)).SetSign(preSign)
}
