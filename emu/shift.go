package emu

import (
	"github.com/mixvm/mix/vm"
	"github.com/mixvm/mix/word"
)

// ShiftUnit implements MIX's shift family: SLA, SRA, SLAX, SRAX, SLC,
// SRC. The count is always |M| bytes; the sign bits involved are never
// shifted, only the byte positions.
type ShiftUnit struct {
	regFile *vm.RegFile
}

// NewShiftUnit creates a new ShiftUnit connected to the given register
// file.
func NewShiftUnit(regFile *vm.RegFile) *ShiftUnit {
	return &ShiftUnit{regFile: regFile}
}

func bytesOfWord(w word.Word) [5]byte {
	return [5]byte{w.GetByte(1), w.GetByte(2), w.GetByte(3), w.GetByte(4), w.GetByte(5)}
}

func wordFromBytes(sign int, b []byte) word.Word {
	w := word.Zero(sign)
	for i, v := range b {
		w = w.SetByte(i+1, v)
	}
	return w
}

// SLA shifts rA left by count bytes, filling with zero bytes on the
// right; rX is untouched.
func (s *ShiftUnit) SLA(count int) {
	b := bytesOfWord(s.regFile.A)
	shifted := shiftLeft(b[:], count)
	s.regFile.A = wordFromBytes(s.regFile.A.GetSign(), shifted)
}

// SRA shifts rA right by count bytes, filling with zero bytes on the
// left; rX is untouched.
func (s *ShiftUnit) SRA(count int) {
	b := bytesOfWord(s.regFile.A)
	shifted := shiftRight(b[:], count)
	s.regFile.A = wordFromBytes(s.regFile.A.GetSign(), shifted)
}

func (s *ShiftUnit) combined() []byte {
	a := bytesOfWord(s.regFile.A)
	x := bytesOfWord(s.regFile.X)
	return append(append([]byte{}, a[:]...), x[:]...)
}

func (s *ShiftUnit) writeCombined(b []byte) {
	s.regFile.A = wordFromBytes(s.regFile.A.GetSign(), b[0:5])
	s.regFile.X = wordFromBytes(s.regFile.X.GetSign(), b[5:10])
}

// SLAX shifts the 10-byte (rA,rX) pair left by count bytes, filling
// with zero bytes on the right. Each register keeps its own sign.
func (s *ShiftUnit) SLAX(count int) {
	s.writeCombined(shiftLeft(s.combined(), count))
}

// SRAX shifts the 10-byte (rA,rX) pair right by count bytes, filling
// with zero bytes on the left. Each register keeps its own sign.
func (s *ShiftUnit) SRAX(count int) {
	s.writeCombined(shiftRight(s.combined(), count))
}

// SLC rotates the 10-byte (rA,rX) pair left by count bytes,
// circularly. Each register keeps its own sign.
func (s *ShiftUnit) SLC(count int) {
	s.writeCombined(rotateLeft(s.combined(), count))
}

// SRC rotates the 10-byte (rA,rX) pair right by count bytes,
// circularly. Each register keeps its own sign.
func (s *ShiftUnit) SRC(count int) {
	s.writeCombined(rotateRight(s.combined(), count))
}

func shiftLeft(b []byte, count int) []byte {
	n := len(b)
	if count >= n {
		count = n
	}
	out := make([]byte, n)
	copy(out, b[count:])
	return out
}

func shiftRight(b []byte, count int) []byte {
	n := len(b)
	if count >= n {
		count = n
	}
	out := make([]byte, n)
	copy(out[count:], b[:n-count])
	return out
}

func rotateLeft(b []byte, count int) []byte {
	n := len(b)
	count %= n
	out := make([]byte, n)
	copy(out, b[count:])
	copy(out[n-count:], b[:count])
	return out
}

func rotateRight(b []byte, count int) []byte {
	n := len(b)
	count %= n
	return rotateLeft(b, n-count)
}
