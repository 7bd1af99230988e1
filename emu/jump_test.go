package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mixvm/mix/emu"
	"github.com/mixvm/mix/vm"
)

var _ = Describe("JumpUnit", func() {
	var regs *vm.RegFile
	var jump *emu.JumpUnit

	BeforeEach(func() {
		regs = vm.NewRegFile()
		jump = emu.NewJumpUnit(regs)
	})

	It("saves PC+1 into rJ and redirects PC on JMP", func() {
		regs.PC = 10
		jump.Jump(500)
		Expect(regs.J.Signed()).To(Equal(int32(11)))
		Expect(regs.PC).To(Equal(500))
	})

	It("redirects PC without touching rJ on JSJ", func() {
		regs.PC = 10
		jump.JumpSaveJ(500)
		Expect(regs.J.Signed()).To(Equal(int32(0)))
		Expect(regs.PC).To(Equal(500))
	})

	It("reports and clears overflow for JOV/JNOV", func() {
		regs.SetOverflow(true)
		Expect(jump.CheckOverflow(true)).To(BeTrue())
		Expect(regs.IsOverflow()).To(BeFalse())
	})

	It("evaluates compare conditions against the indicator", func() {
		regs.SetComparison(vm.CompareEqual)
		Expect(jump.CheckCompare(emu.CondEqual)).To(BeTrue())
		Expect(jump.CheckCompare(emu.CondLess)).To(BeFalse())
		Expect(jump.CheckCompare(emu.CondGreaterEqual)).To(BeTrue())
	})

	It("evaluates value conditions", func() {
		Expect(emu.CheckValue(-3, emu.CondNegative)).To(BeTrue())
		Expect(emu.CheckValue(0, emu.CondZero)).To(BeTrue())
		Expect(emu.CheckValue(0, emu.CondNonPositive)).To(BeTrue())
		Expect(emu.CheckValue(4, emu.CondPositive)).To(BeTrue())
	})
})
