package emu

import "github.com/mixvm/mix/vm"

// CompareUnit implements CMPA, CMP1-CMP6, and CMPX: compare a register
// field against the corresponding field of a memory cell and set the
// comparison indicator.
type CompareUnit struct {
	regFile *vm.RegFile
}

// NewCompareUnit creates a new CompareUnit connected to the given
// register file.
func NewCompareUnit(regFile *vm.RegFile) *CompareUnit {
	return &CompareUnit{regFile: regFile}
}

// Compare sets the comparison indicator from reg versus mem, both
// already narrowed to the instruction's field and read out as signed
// values (so +0 and -0 compare equal).
func (c *CompareUnit) Compare(reg, mem int32) {
	switch {
	case reg < mem:
		c.regFile.SetComparison(vm.CompareLess)
	case reg > mem:
		c.regFile.SetComparison(vm.CompareGreater)
	default:
		c.regFile.SetComparison(vm.CompareEqual)
	}
}
