package asm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mixvm/mix/asm"
)

var _ = Describe("ExprParser", func() {
	var symbols *asm.SymbolTable
	var lexer *asm.Lexer

	BeforeEach(func() {
		symbols = asm.NewSymbolTable()
		lexer = asm.NewLexer()
	})

	parse := func(lineNum, lineAddr int32, text string) *asm.ExprParser {
		return asm.NewExprParser(symbols, lineNum, lineAddr, lexer.TokenizeAddress(text))
	}

	Describe("Exprs", func() {
		It("evaluates strictly left to right, ignoring precedence", func() {
			v, has, err := parse(0, 0, "1+2*3").Exprs()
			Expect(err).NotTo(HaveOccurred())
			Expect(has).To(BeTrue())
			Expect(v).To(Equal(int32(9)))
		})

		It("folds a longer chain the same way", func() {
			v, _, err := parse(0, 0, "1+2-3+9").Exprs()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(int32(9)))
		})

		It("resolves * to the current line's location", func() {
			v, _, err := parse(2, 2, "*+*+*").Exprs()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(int32(6)))
		})

		It("resolves a plain symbol via the symbol table", func() {
			symbols.PutEqu("L", 2)
			v, _, err := parse(0, 0, "1-L").Exprs()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(int32(-1)))
		})

		It("computes // as shift-divide, not ordinary modulo", func() {
			v, _, err := parse(0, 0, "1//2").Exprs()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(int32(1 << 29)))
		})

		It("packs L:R via the field operator into 8L+R", func() {
			v, _, err := parse(0, 0, "0:5").Exprs()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(int32(5)))
		})

		It("reports no value for an empty field", func() {
			_, has, err := parse(0, 0, "").Exprs()
			Expect(err).NotTo(HaveOccurred())
			Expect(has).To(BeFalse())
		})
	})

	Describe("AIF", func() {
		It("parses A, I and (F) parts", func() {
			a, hasA, i, hasI, f, hasF, err := parse(0, 0, "2000,1(0:5)").AIF()
			Expect(err).NotTo(HaveOccurred())
			Expect(hasA).To(BeTrue())
			Expect(a).To(Equal(int32(2000)))
			Expect(hasI).To(BeTrue())
			Expect(i).To(Equal(int32(1)))
			Expect(hasF).To(BeTrue())
			Expect(f).To(Equal(int32(5)))
		})

		It("leaves I and F absent when omitted", func() {
			a, hasA, _, hasI, _, hasF, err := parse(0, 0, "2000").AIF()
			Expect(err).NotTo(HaveOccurred())
			Expect(hasA).To(BeTrue())
			Expect(a).To(Equal(int32(2000)))
			Expect(hasI).To(BeFalse())
			Expect(hasF).To(BeFalse())
		})
	})

	Describe("WValue", func() {
		It("parses a comma-separated term list with field overrides", func() {
			terms, err := parse(0, 0, "1,-1000(0:2)").WValue()
			Expect(err).NotTo(HaveOccurred())
			Expect(terms).To(HaveLen(2))
			Expect(terms[0].Value).To(Equal(int32(1)))
			Expect(terms[0].HasField).To(BeFalse())
			Expect(terms[1].Value).To(Equal(int32(-1000)))
			Expect(terms[1].HasField).To(BeTrue())
			Expect(terms[1].Field).To(Equal(int32(2)))
		})
	})

	Describe("LiteralConstant", func() {
		It("parses a =W-value= as a single term with no field", func() {
			symbols.PutEqu("L", 2)
			terms, err := parse(0, 0, "=1-L=").LiteralConstant()
			Expect(err).NotTo(HaveOccurred())
			Expect(terms).To(HaveLen(1))
			Expect(terms[0].Value).To(Equal(int32(-1)))
			Expect(terms[0].HasField).To(BeFalse())
		})
	})
})
