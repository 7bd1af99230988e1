package emu

import (
	"github.com/mixvm/mix/vm"
	"github.com/mixvm/mix/word"
)

// AddressUnit implements MIX's address-transfer family: INCA/DECA,
// ENTA/ENNA, and their rI1-rI6/rX counterparts. INC/DEC add or
// subtract M from the register (overflow on A/X only); ENT/ENN load M
// itself, signed by the instruction's own address sign so that "ENTA 0"
// and a negative zero address can still set -0.
type AddressUnit struct {
	regFile *vm.RegFile
}

// NewAddressUnit creates a new AddressUnit connected to the given
// register file.
func NewAddressUnit(regFile *vm.RegFile) *AddressUnit {
	return &AddressUnit{regFile: regFile}
}

// IncA implements INCA: rA <- rA + M.
func (u *AddressUnit) IncA(m int32) {
	u.regFile.A = u.addWord(u.regFile.A, m)
}

// DecA implements DECA: rA <- rA - M.
func (u *AddressUnit) DecA(m int32) {
	u.regFile.A = u.addWord(u.regFile.A, -m)
}

// EntA implements ENTA: rA <- M, signed zero preserved.
func (u *AddressUnit) EntA(m int32, negativeZero bool) {
	u.regFile.A = entValue(m, negativeZero)
}

// EnnA implements ENNA: rA <- -M.
func (u *AddressUnit) EnnA(m int32, negativeZero bool) {
	u.regFile.A = entValue(m, negativeZero).Negated()
}

// IncX implements INCX.
func (u *AddressUnit) IncX(m int32) {
	u.regFile.X = u.addWord(u.regFile.X, m)
}

// DecX implements DECX.
func (u *AddressUnit) DecX(m int32) {
	u.regFile.X = u.addWord(u.regFile.X, -m)
}

// EntX implements ENTX.
func (u *AddressUnit) EntX(m int32, negativeZero bool) {
	u.regFile.X = entValue(m, negativeZero)
}

// EnnX implements ENNX.
func (u *AddressUnit) EnnX(m int32, negativeZero bool) {
	u.regFile.X = entValue(m, negativeZero).Negated()
}

// IncIndex implements INCi: rIk <- rIk + M. Index registers only hold
// 12 bits of magnitude; overflow here is silently truncated and raises
// no flag, since Knuth leaves index-register overflow undefined and
// real MIXAL programs never rely on it.
func (u *AddressUnit) IncIndex(k int, m int32) {
	v := u.regFile.GetIndex(k).Signed() + m
	u.regFile.SetIndex(k, word.NewShortWord(v))
}

// DecIndex implements DECi.
func (u *AddressUnit) DecIndex(k int, m int32) {
	u.IncIndex(k, -m)
}

// EntIndex implements ENTi.
func (u *AddressUnit) EntIndex(k int, m int32, negativeZero bool) {
	u.regFile.SetIndex(k, word.ShortWordFromWord(entValue(m, negativeZero)))
}

// EnnIndex implements ENNi.
func (u *AddressUnit) EnnIndex(k int, m int32, negativeZero bool) {
	u.regFile.SetIndex(k, word.ShortWordFromWord(entValue(m, negativeZero).Negated()))
}

func (u *AddressUnit) addWord(reg word.Word, delta int32) word.Word {
	preSign := reg.GetSign()
	sum := int64(reg.Signed()) + int64(delta)

	if sum == 0 {
		return word.Zero(preSign)
	}
	if sum > int64(word.MaxMagnitude) || sum < -int64(word.MaxMagnitude) {
		u.regFile.SetOverflow(true)
		return word.Zero(0)
	}
	return word.FromSigned(int32(sum))
}

func entValue(m int32, negativeZero bool) word.Word {
	if m == 0 && negativeZero {
		return word.Zero(-1)
	}
	return word.FromSigned(m)
}
