package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mixvm/mix/emu"
	"github.com/mixvm/mix/vm"
	"github.com/mixvm/mix/word"
)

var _ = Describe("ALU", func() {
	var regs *vm.RegFile
	var alu *emu.ALU

	BeforeEach(func() {
		regs = vm.NewRegFile()
		alu = emu.NewALU(regs)
	})

	It("adds two in-range values", func() {
		regs.A = word.FromSigned(100)
		alu.Add(word.FromSigned(23))
		Expect(regs.A.Signed()).To(Equal(int32(123)))
	})

	It("sets overflow and resets rA to +0 when the sum exceeds a word", func() {
		regs.A = word.FromSigned(word.MaxMagnitude)
		alu.Add(word.FromSigned(4))
		Expect(regs.IsOverflow()).To(BeTrue())
		Expect(regs.A.Signed()).To(Equal(int32(0)))
		Expect(regs.A.GetSign()).To(Equal(0))
	})

	It("splits MUL's product across rA and rX with the XOR'd sign", func() {
		regs.A = word.FromSigned(-100)
		alu.Mul(word.FromSigned(3))
		Expect(regs.A.GetSign()).To(Equal(-1))
		Expect(regs.X.GetSign()).To(Equal(-1))
		Expect(regs.A.Signed()).To(Equal(int32(0)))
		Expect(regs.X.Signed()).To(Equal(int32(-300)))
	})

	It("overflows DIV when the divisor is zero", func() {
		regs.A = word.FromSigned(10)
		alu.Div(word.FromSigned(0))
		Expect(regs.IsOverflow()).To(BeTrue())
	})

	It("overflows DIV when the quotient would not fit a word", func() {
		regs.A = word.FromSigned(100)
		regs.X = word.FromSigned(0)
		alu.Div(word.FromSigned(5))
		Expect(regs.IsOverflow()).To(BeTrue())
	})
})
