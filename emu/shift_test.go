package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mixvm/mix/emu"
	"github.com/mixvm/mix/vm"
	"github.com/mixvm/mix/word"
)

var _ = Describe("ShiftUnit", func() {
	var regs *vm.RegFile
	var shift *emu.ShiftUnit

	BeforeEach(func() {
		regs = vm.NewRegFile()
		shift = emu.NewShiftUnit(regs)
	})

	wordOf := func(b1, b2, b3, b4, b5 byte) word.Word {
		return word.Zero(0).SetByte(1, b1).SetByte(2, b2).SetByte(3, b3).SetByte(4, b4).SetByte(5, b5)
	}

	It("shifts rA left by 2, zero-filling on the right, leaving rX untouched", func() {
		regs.A = wordOf(1, 2, 3, 4, 5)
		regs.X = wordOf(6, 7, 8, 9, 10)
		shift.SLA(2)
		Expect(regs.A).To(Equal(wordOf(3, 4, 5, 0, 0)))
		Expect(regs.X).To(Equal(wordOf(6, 7, 8, 9, 10)))
	})

	It("rotates the 10-byte pair left circularly via SLC", func() {
		regs.A = wordOf(1, 2, 3, 4, 5)
		regs.X = wordOf(6, 7, 8, 9, 10)
		shift.SLC(3)
		Expect(regs.A).To(Equal(wordOf(4, 5, 6, 7, 8)))
		Expect(regs.X).To(Equal(wordOf(9, 10, 1, 2, 3)))
	})

	It("shifts the 10-byte pair right via SRAX, zero-filling on the left", func() {
		regs.A = wordOf(1, 2, 3, 4, 5)
		regs.X = wordOf(6, 7, 8, 9, 10)
		shift.SRAX(4)
		Expect(regs.A).To(Equal(wordOf(0, 0, 0, 0, 1)))
		Expect(regs.X).To(Equal(wordOf(2, 3, 4, 5, 6)))
	})
})
