package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mixvm/mix/emu"
	"github.com/mixvm/mix/vm"
	"github.com/mixvm/mix/word"
)

var _ = Describe("AddressUnit", func() {
	var regs *vm.RegFile
	var addr *emu.AddressUnit

	BeforeEach(func() {
		regs = vm.NewRegFile()
		addr = emu.NewAddressUnit(regs)
	})

	It("adds M to rA on INCA", func() {
		regs.A = word.FromSigned(10)
		addr.IncA(5)
		Expect(regs.A.Signed()).To(Equal(int32(15)))
	})

	It("subtracts M from rA on DECA", func() {
		regs.A = word.FromSigned(10)
		addr.DecA(15)
		Expect(regs.A.Signed()).To(Equal(int32(-5)))
	})

	It("sets overflow and resets rA to +0 when INCA pushes rA out of range", func() {
		regs.A = word.FromSigned(word.MaxMagnitude)
		addr.IncA(4)
		Expect(regs.IsOverflow()).To(BeTrue())
		Expect(regs.A.Signed()).To(Equal(int32(0)))
		Expect(regs.A.GetSign()).To(Equal(0))
	})

	It("loads M directly into rA on ENTA", func() {
		regs.A = word.FromSigned(-1)
		addr.EntA(7, false)
		Expect(regs.A.Signed()).To(Equal(int32(7)))
	})

	It("preserves a negative zero address on ENTA 0", func() {
		addr.EntA(0, true)
		Expect(regs.A.Signed()).To(Equal(int32(0)))
		Expect(regs.A.GetSign()).To(Equal(-1))
	})

	It("negates M into rA on ENNA", func() {
		addr.EnnA(7, false)
		Expect(regs.A.Signed()).To(Equal(int32(-7)))
	})

	It("negates a negative zero address to +0 on ENNA", func() {
		addr.EnnA(0, true)
		Expect(regs.A.Signed()).To(Equal(int32(0)))
		Expect(regs.A.GetSign()).To(Equal(0))
	})

	It("adds M to rIk on INCi", func() {
		addr.EntIndex(3, 100, false)
		addr.IncIndex(3, 23)
		Expect(regs.GetIndex(3).Signed()).To(Equal(int32(123)))
	})

	It("loads M into rIk on ENTi, independent of other index registers", func() {
		addr.EntIndex(1, 5, false)
		addr.EntIndex(2, -9, false)
		Expect(regs.GetIndex(1).Signed()).To(Equal(int32(5)))
		Expect(regs.GetIndex(2).Signed()).To(Equal(int32(-9)))
	})

	It("negates M into rIk on ENNi", func() {
		addr.EnnIndex(6, 42, false)
		Expect(regs.GetIndex(6).Signed()).To(Equal(int32(-42)))
	})
})
