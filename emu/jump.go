package emu

import (
	"github.com/mixvm/mix/vm"
	"github.com/mixvm/mix/word"
)

// ValueCond classifies a register's value for the JAN/JAZ/.../JXNP
// family: each such instruction tests one register against zero in one
// of six ways.
type ValueCond uint8

// Value conditions, in the F-field order Knuth assigns them.
const (
	CondNegative ValueCond = iota
	CondZero
	CondPositive
	CondNonNegative
	CondNonZero
	CondNonPositive
)

// CompareCond classifies the comparison indicator for the JL/JE/.../JLE
// family.
type CompareCond uint8

// Compare conditions, in the F-field order Knuth assigns them.
const (
	CondLess CompareCond = iota
	CondEqual
	CondGreater
	CondGreaterEqual
	CondNotEqual
	CondLessEqual
)

// JumpUnit implements every member of MIX's jump family: the plain
// JMP/JSJ/JOV/JNOV group, the comparison-indicator group, and the
// per-register value-test group.
type JumpUnit struct {
	regFile *vm.RegFile
}

// NewJumpUnit creates a new JumpUnit connected to the given register
// file.
func NewJumpUnit(regFile *vm.RegFile) *JumpUnit {
	return &JumpUnit{regFile: regFile}
}

// Jump implements JMP: rJ <- PC+1, then PC <- addr. PC here is still
// the jump instruction's own address; the emulator only advances PC
// after an execution unit returns, and jumps bypass that entirely.
func (j *JumpUnit) Jump(addr int32) {
	j.regFile.J = word.NewShortWord(int32(j.regFile.PC + 1))
	j.regFile.PC = int(addr)
}

// JumpSaveJ implements JSJ: PC <- addr, without touching rJ.
func (j *JumpUnit) JumpSaveJ(addr int32) {
	j.regFile.PC = int(addr)
}

// CheckOverflow implements JOV/JNOV's shared semantics: it reports and
// clears the overflow toggle. want is true for JOV, false for JNOV.
func (j *JumpUnit) CheckOverflow(want bool) bool {
	got := j.regFile.IsOverflow()
	j.regFile.SetOverflow(false)
	return got == want
}

// CheckCompare evaluates a CompareCond against the comparison
// indicator.
func (j *JumpUnit) CheckCompare(cond CompareCond) bool {
	cmp := j.regFile.GetComparison()
	switch cond {
	case CondLess:
		return cmp == vm.CompareLess
	case CondEqual:
		return cmp == vm.CompareEqual
	case CondGreater:
		return cmp == vm.CompareGreater
	case CondGreaterEqual:
		return cmp != vm.CompareLess
	case CondNotEqual:
		return cmp != vm.CompareEqual
	case CondLessEqual:
		return cmp != vm.CompareGreater
	default:
		return false
	}
}

// CheckValue evaluates a ValueCond against a register's signed value,
// as used by the JAN/JAZ/... and J1N/J1Z/... families.
func CheckValue(v int32, cond ValueCond) bool {
	switch cond {
	case CondNegative:
		return v < 0
	case CondZero:
		return v == 0
	case CondPositive:
		return v > 0
	case CondNonNegative:
		return v >= 0
	case CondNonZero:
		return v != 0
	case CondNonPositive:
		return v <= 0
	default:
		return false
	}
}
