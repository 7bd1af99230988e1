package device_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mixvm/mix/device"
	"github.com/mixvm/mix/word"
)

var _ = Describe("Device", func() {
	It("reports the correct block size per kind", func() {
		Expect(device.KindTape.BlockSize()).To(Equal(100))
		Expect(device.KindReader.BlockSize()).To(Equal(16))
		Expect(device.KindPrinter.BlockSize()).To(Equal(24))
		Expect(device.KindConsole.BlockSize()).To(Equal(1))
	})

	It("is never busy", func() {
		d := device.New(device.KindConsole)
		Expect(d.Busy()).To(BeFalse())
	})

	It("reads back a loaded block", func() {
		d := device.New(device.KindConsole)
		d.Load([]word.Word{word.FromSigned(7)})

		block := d.Read()
		Expect(block).To(HaveLen(1))
		Expect(block[0].Signed()).To(Equal(int32(7)))
	})

	It("appends written blocks to its contents", func() {
		d := device.New(device.KindPunch)
		d.Write([]word.Word{word.FromSigned(1), word.FromSigned(2)})
		d.Write([]word.Word{word.FromSigned(3)})

		Expect(d.Contents()).To(HaveLen(3))
	})
})

var _ = Describe("Set", func() {
	It("wires up the standard unit complement", func() {
		s := device.NewSet()
		Expect(s.Get(0).Kind).To(Equal(device.KindTape))
		Expect(s.Get(16).Kind).To(Equal(device.KindReader))
		Expect(s.Get(20).Kind).To(Equal(device.KindConsole))
	})

	It("returns nil for an unwired unit", func() {
		s := device.NewSet()
		Expect(s.Get(99)).To(BeNil())
	})
})
