package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mixvm/mix/emu"
	"github.com/mixvm/mix/vm"
	"github.com/mixvm/mix/word"
)

var _ = Describe("ConvertUnit", func() {
	var regs *vm.RegFile
	var convert *emu.ConvertUnit

	BeforeEach(func() {
		regs = vm.NewRegFile()
		convert = emu.NewConvertUnit(regs)
	})

	It("packs the ten character-code digits of (rA,rX) into rA as a number", func() {
		// rA = |0 0 0 1 1|, rX = |0 0 2 2 2| (each byte taken mod 10)
		// reads as the ten digits 0001100222, so NUM gives rA = 1100222.
		regs.A = word.Zero(1).SetByte(1, 30).SetByte(2, 30).SetByte(3, 30).SetByte(4, 31).SetByte(5, 31)
		regs.X = word.Zero(-1).SetByte(1, 30).SetByte(2, 30).SetByte(3, 32).SetByte(4, 32).SetByte(5, 32)

		convert.Num()
		Expect(regs.A.Signed()).To(Equal(int32(1100222)))
		Expect(regs.A.GetSign()).To(Equal(0))
	})

	It("keeps rA's own sign and leaves rX untouched on NUM", func() {
		regs.A = word.Zero(-1).SetByte(5, 39)
		regs.X = word.Zero(1).SetByte(1, 7)

		convert.Num()
		Expect(regs.A.GetSign()).To(Equal(-1))
		Expect(regs.X.GetByte(1)).To(Equal(byte(7)))
	})

	It("spreads rA's magnitude across (rA,rX) as digit character codes on CHAR", func() {
		regs.A = word.FromSigned(1234567)
		convert.Char()

		want := []byte{0, 0, 0, 1, 2, 3, 4, 5, 6, 7}
		a := regs.A
		x := regs.X
		got := []byte{
			a.GetByte(1) - 30, a.GetByte(2) - 30, a.GetByte(3) - 30, a.GetByte(4) - 30, a.GetByte(5) - 30,
			x.GetByte(1) - 30, x.GetByte(2) - 30, x.GetByte(3) - 30, x.GetByte(4) - 30, x.GetByte(5) - 30,
		}
		Expect(got).To(Equal(want))
	})

	It("preserves each register's own sign on CHAR regardless of rA's sign", func() {
		regs.A = word.FromSigned(-9)
		regs.X = word.Zero(-1)

		convert.Char()
		Expect(regs.A.GetSign()).To(Equal(-1))
		Expect(regs.X.GetSign()).To(Equal(-1))
	})

	It("round-trips through CHAR then NUM", func() {
		regs.A = word.FromSigned(314159265 % word.MaxMagnitude)
		orig := regs.A.Signed()
		sign := regs.A.GetSign()

		convert.Char()
		convert.Num()

		Expect(regs.A.Signed()).To(Equal(orig))
		Expect(regs.A.GetSign()).To(Equal(sign))
	})
})
