package vm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mixvm/mix/vm"
	"github.com/mixvm/mix/word"
)

var _ = Describe("Memory", func() {
	It("starts zeroed", func() {
		m := vm.NewMemory()
		w, err := m.Get(100)
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Signed()).To(Equal(int32(0)))
	})

	It("round-trips a stored word", func() {
		m := vm.NewMemory()
		Expect(m.Set(42, word.FromSigned(-7))).To(Succeed())

		got, err := m.Get(42)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Signed()).To(Equal(int32(-7)))
	})

	It("faults on out-of-range access", func() {
		m := vm.NewMemory()
		_, err := m.Get(4000)
		Expect(err).To(HaveOccurred())

		err = m.Set(-1, word.FromSigned(1))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("RegFile", func() {
	It("starts fully zeroed", func() {
		r := vm.NewRegFile()
		Expect(r.A.Signed()).To(Equal(int32(0)))
		Expect(r.GetIndex(1).Signed()).To(Equal(int32(0)))
		Expect(r.IsOverflow()).To(BeFalse())
		Expect(r.PC).To(Equal(0))
	})

	It("stores and retrieves an index register independently of the others", func() {
		r := vm.NewRegFile()
		r.SetIndex(3, word.NewShortWord(-42))

		Expect(r.GetIndex(3).Signed()).To(Equal(int32(-42)))
		Expect(r.GetIndex(4).Signed()).To(Equal(int32(0)))
	})
})
