package word_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mixvm/mix/word"
)

// bootstrap lives in word_suite_test.go

var _ = Describe("Word", func() {
	It("round-trips signed magnitudes", func() {
		for _, v := range []int32{0, 1, -1, 1000, -1000, word.MaxMagnitude, -word.MaxMagnitude} {
			w := word.FromSigned(v)
			Expect(w.Signed()).To(Equal(v))
		}
	})

	It("distinguishes +0 from -0 by sign while both read as zero", func() {
		pos := word.Zero(0)
		neg := word.Zero(-1)

		Expect(pos.Signed()).To(Equal(int32(0)))
		Expect(neg.Signed()).To(Equal(int32(0)))
		Expect(pos.GetSign()).To(Equal(0))
		Expect(neg.GetSign()).To(Equal(-1))
	})

	It("gets and sets individual bytes without touching the sign", func() {
		w := word.FromSigned(-12345)
		w = w.SetByte(3, 7)
		Expect(w.GetByte(3)).To(Equal(byte(7)))
		Expect(w.GetSign()).To(Equal(-1))
	})

	Describe("GetField", func() {
		// Grounded on word_get_by_access in original_source/mix/src/memory/word.rs:
		// a word built from bytes 1,2,3,4,5 under every (L:R) selector.
		var w word.Word

		BeforeEach(func() {
			w = word.FromSigned(0).SetByte(1, 1).SetByte(2, 2).SetByte(3, 3).SetByte(4, 4).SetByte(5, 5)
			w = w.SetSign(-1)
		})

		It("(0:0) selects only the sign", func() {
			f := w.GetField(word.NewFieldSpec(0, 0))
			Expect(f.GetSign()).To(Equal(-1))
			Expect(f.Signed()).To(Equal(int32(0)))
		})

		It("(1:5) selects every byte and keeps sign positive", func() {
			f := w.GetField(word.NewFieldSpec(1, 5))
			Expect(f.GetSign()).To(Equal(0))
			Expect(f.GetByte(1)).To(Equal(byte(1)))
			Expect(f.GetByte(5)).To(Equal(byte(5)))
		})

		It("(0:5) selects every byte and carries the sign", func() {
			f := w.GetField(word.NewFieldSpec(0, 5))
			Expect(f.GetSign()).To(Equal(-1))
			Expect(f.GetByte(1)).To(Equal(byte(1)))
		})

		It("(4:5) right-aligns the low two bytes", func() {
			f := w.GetField(word.NewFieldSpec(4, 5))
			Expect(f.GetByte(4)).To(Equal(byte(4)))
			Expect(f.GetByte(5)).To(Equal(byte(5)))
			Expect(f.GetByte(1)).To(Equal(byte(0)))
			Expect(f.GetSign()).To(Equal(0))
		})
	})

	Describe("SetField", func() {
		It("overwrites only the addressed bytes, leaving the rest untouched", func() {
			dest := word.FromSigned(0).SetByte(1, 1).SetByte(2, 2).SetByte(3, 3).SetByte(4, 4).SetByte(5, 5)
			src := word.FromSigned(0).SetByte(5, 9)

			got := dest.SetField(word.NewFieldSpec(2, 2), src)

			Expect(got.GetByte(1)).To(Equal(byte(1)))
			Expect(got.GetByte(2)).To(Equal(byte(9)))
			Expect(got.GetByte(3)).To(Equal(byte(3)))
		})

		It("round-trips through GetField for matching widths", func() {
			src := word.FromSigned(-54321)
			dest := word.FromSigned(0)

			got := dest.SetField(word.NewFieldSpec(1, 5), src)

			Expect(got.GetField(word.NewFieldSpec(1, 5))).To(Equal(src.GetField(word.NewFieldSpec(1, 5))))
		})

		It("with L=0 also copies the source sign", func() {
			dest := word.FromSigned(100)
			src := word.FromSigned(-1)

			got := dest.SetField(word.NewFieldSpec(0, 0), src)

			Expect(got.GetSign()).To(Equal(-1))
			Expect(got.Signed()).To(Equal(int32(-100)))
		})
	})

	Describe("Split and Unite", func() {
		It("are mutual inverses", func() {
			for _, v := range []int64{0, 1, -1, 1 << 40, -(1 << 40), 1<<60 - 1} {
				hi, lo := word.Split(v)
				Expect(word.Unite(hi, lo)).To(Equal(v))
			}
		})

		It("carries the input sign onto both halves", func() {
			hi, lo := word.Split(-5)
			Expect(hi.GetSign()).To(Equal(-1))
			Expect(lo.GetSign()).To(Equal(-1))
		})
	})

	Describe("instruction encoding", func() {
		It("round-trips AA, I, F, C", func() {
			f := word.NewFieldSpec(0, 5)
			w := word.EncodeInstruction(-2000, 3, 8, f)

			Expect(w.Address()).To(Equal(int32(-2000)))
			Expect(w.Index()).To(Equal(byte(3)))
			Expect(w.FieldSpec()).To(Equal(f))
			Expect(w.Opcode()).To(Equal(byte(8)))
		})
	})
})
