package vm

import "github.com/mixvm/mix/word"

// Comparison holds the result of the most recent CMP* instruction.
type Comparison uint8

// Comparison values.
const (
	CompareLess Comparison = iota
	CompareEqual
	CompareGreater
)

// RegFile holds every piece of MIX machine state outside of memory: the
// two full-word accumulators, the six index registers, the jump
// register, the overflow toggle, the comparison indicator, and PC.
type RegFile struct {
	A, X word.Word
	I    [7]word.ShortWord // I[0] unused; I[1..6] are rI1..rI6
	J    word.ShortWord

	Overflow   bool
	Comparison Comparison

	PC int
}

// NewRegFile returns a zeroed register file with PC at 0.
func NewRegFile() *RegFile {
	return &RegFile{}
}

// GetIndex returns rIk's current value, k in 1..6.
func (r *RegFile) GetIndex(k int) word.ShortWord {
	return r.I[k]
}

// SetIndex overwrites rIk, k in 1..6.
func (r *RegFile) SetIndex(k int, v word.ShortWord) {
	r.I[k] = v
}

// IsOverflow reports the overflow toggle.
func (r *RegFile) IsOverflow() bool { return r.Overflow }

// SetOverflow sets the overflow toggle.
func (r *RegFile) SetOverflow(v bool) { r.Overflow = v }

// GetComparison returns the comparison indicator.
func (r *RegFile) GetComparison() Comparison { return r.Comparison }

// SetComparison sets the comparison indicator.
func (r *RegFile) SetComparison(c Comparison) { r.Comparison = c }
