package latency_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mixvm/mix/insts"
	"github.com/mixvm/mix/timing/latency"
)

var _ = Describe("Table", func() {
	var t *latency.Table

	BeforeEach(func() {
		t = latency.NewTable()
	})

	It("charges 2 cycles for ADD/SUB", func() {
		Expect(t.GetLatency(&insts.Instruction{Op: insts.OpADD})).To(Equal(uint64(2)))
		Expect(t.GetLatency(&insts.Instruction{Op: insts.OpSUB})).To(Equal(uint64(2)))
	})

	It("charges 10 cycles for MUL and 12 for DIV", func() {
		Expect(t.GetLatency(&insts.Instruction{Op: insts.OpMUL})).To(Equal(uint64(10)))
		Expect(t.GetLatency(&insts.Instruction{Op: insts.OpDIV})).To(Equal(uint64(12)))
	})

	It("charges a flat 1 cycle for every jump, taken or not", func() {
		Expect(t.GetLatency(&insts.Instruction{Op: insts.OpJMP})).To(Equal(uint64(1)))
		Expect(t.GetLatency(&insts.Instruction{Op: insts.OpJANP})).To(Equal(uint64(1)))
	})

	It("computes MOVE's cost as base plus per-word", func() {
		Expect(t.MoveCycles(3)).To(Equal(uint64(1 + 3*2)))
	})

	It("adds device transfer time to I/O's base cost", func() {
		Expect(t.IOCycles(100)).To(Equal(uint64(101)))
	})

	It("rejects a config with a zero cycle count on Validate", func() {
		cfg := latency.DefaultTimingConfig()
		cfg.MultiplyCycles = 0
		Expect(cfg.Validate()).To(HaveOccurred())
	})
})
