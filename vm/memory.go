// Package vm holds the MIX machine's addressable state: memory and the
// register file.
package vm

import (
	"github.com/mixvm/mix/word"
)

// MemSize is the number of addressable word cells, 0..3999.
const MemSize = 4000

// Memory is MIX's 4000-cell word store. All cells are zero words at
// reset; nothing distinguishes code from data.
type Memory struct {
	cells [MemSize]word.Word
}

// NewMemory returns a zeroed Memory.
func NewMemory() *Memory {
	return &Memory{}
}

// Get returns the word at addr, or a FaultError if addr is out of range.
func (m *Memory) Get(addr int) (word.Word, error) {
	if addr < 0 || addr >= MemSize {
		return word.Word{}, &FaultError{Kind: AddressingFault, Cause: "memory address out of range"}
	}
	return m.cells[addr], nil
}

// Set writes w to addr, or returns a FaultError if addr is out of range.
func (m *Memory) Set(addr int, w word.Word) error {
	if addr < 0 || addr >= MemSize {
		return &FaultError{Kind: AddressingFault, Cause: "memory address out of range"}
	}
	m.cells[addr] = w
	return nil
}

// SetInstruction is a loader convenience: it encodes and stores an
// instruction word directly.
func (m *Memory) SetInstruction(addr int, aa int32, i, c byte, f word.FieldSpec) error {
	return m.Set(addr, word.EncodeInstruction(aa, i, c, f))
}

// SetBytes is a loader convenience: it stores an exact byte vector.
func (m *Memory) SetBytes(addr int, sign int, b1, b2, b3, b4, b5 byte) error {
	w := word.Zero(sign).SetByte(1, b1).SetByte(2, b2).SetByte(3, b3).SetByte(4, b4).SetByte(5, b5)
	return m.Set(addr, w)
}
