package emu

import (
	"fmt"
	"io"
	"os"

	"github.com/mixvm/mix/device"
	"github.com/mixvm/mix/insts"
	"github.com/mixvm/mix/timing/latency"
	"github.com/mixvm/mix/vm"
	"github.com/mixvm/mix/word"
)

// StepResult represents the result of executing a single instruction.
type StepResult struct {
	// Halted is true if the program stopped itself via HLT.
	Halted bool

	// Err is set if an error occurred during execution (a FaultError
	// for fatal conditions, or the max-instruction guard).
	Err error

	// Cycles is the cost charged to this instruction.
	Cycles uint64
}

// Emulator runs a MIX program against a register file and memory,
// driving the fetch/decode/execute loop and keeping cycle totals.
type Emulator struct {
	regFile *vm.RegFile
	memory  *vm.Memory
	decoder *insts.Decoder
	devices *device.Set
	timing  *latency.Table

	alu     *ALU
	lsu     *LoadStoreUnit
	jump    *JumpUnit
	shift   *ShiftUnit
	address *AddressUnit
	compare *CompareUnit
	convert *ConvertUnit

	stdout io.Writer
	stderr io.Writer

	instructionCount uint64
	maxInstructions  uint64
	totalCycles      uint64
}

// EmulatorOption is a functional option for configuring the Emulator.
type EmulatorOption func(*Emulator)

// WithStdout sets a custom stdout writer.
func WithStdout(w io.Writer) EmulatorOption {
	return func(e *Emulator) { e.stdout = w }
}

// WithStderr sets a custom stderr writer.
func WithStderr(w io.Writer) EmulatorOption {
	return func(e *Emulator) { e.stderr = w }
}

// WithDevices replaces the emulator's device set (by default, a fresh
// device.NewSet()).
func WithDevices(devices *device.Set) EmulatorOption {
	return func(e *Emulator) { e.devices = devices }
}

// WithTiming replaces the emulator's cycle-accounting table (by
// default, latency.NewTable() with Knuth's documented cycle counts).
func WithTiming(t *latency.Table) EmulatorOption {
	return func(e *Emulator) { e.timing = t }
}

// WithMaxInstructions sets the maximum number of instructions to
// execute. A value of 0 means no limit.
func WithMaxInstructions(max uint64) EmulatorOption {
	return func(e *Emulator) { e.maxInstructions = max }
}

// NewEmulator creates a new MIX emulator.
func NewEmulator(opts ...EmulatorOption) *Emulator {
	regFile := vm.NewRegFile()
	memory := vm.NewMemory()

	e := &Emulator{
		regFile: regFile,
		memory:  memory,
		decoder: insts.NewDecoder(),
		devices: device.NewSet(),
		timing:  latency.NewTable(),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.alu = NewALU(regFile)
	e.lsu = NewLoadStoreUnit(regFile, memory)
	e.jump = NewJumpUnit(regFile)
	e.shift = NewShiftUnit(regFile)
	e.address = NewAddressUnit(regFile)
	e.compare = NewCompareUnit(regFile)
	e.convert = NewConvertUnit(regFile)

	return e
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *vm.RegFile { return e.regFile }

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *vm.Memory { return e.memory }

// InstructionCount returns the number of instructions executed.
func (e *Emulator) InstructionCount() uint64 { return e.instructionCount }

// TotalCycles returns the accumulated cycle count.
func (e *Emulator) TotalCycles() uint64 { return e.totalCycles }

// effectiveAddress computes M = AA's signed value plus, when I != 0,
// the signed value of rI_I.
func (e *Emulator) effectiveAddress(inst *insts.Instruction) int32 {
	if inst.Index == 0 {
		return inst.Address
	}
	return inst.Address + e.regFile.GetIndex(int(inst.Index)).Signed()
}

// Step fetches, decodes, and executes a single instruction.
func (e *Emulator) Step() StepResult {
	if e.maxInstructions > 0 && e.instructionCount >= e.maxInstructions {
		return StepResult{Err: fmt.Errorf("max instructions reached")}
	}

	cell, err := e.memory.Get(e.regFile.PC)
	if err != nil {
		return StepResult{Err: err}
	}

	inst := e.decoder.Decode(cell)
	result := e.execute(inst)

	e.instructionCount++
	e.totalCycles += result.Cycles

	return result
}

// Run executes instructions until HLT or a fatal error.
func (e *Emulator) Run() error {
	for {
		result := e.Step()
		if result.Halted {
			return nil
		}
		if result.Err != nil {
			_, _ = fmt.Fprintf(e.stderr, "mix: %v\n", result.Err)
			return result.Err
		}
	}
}

// execute dispatches a decoded instruction to its execution unit.
// Unless the instruction branches on its own, execute advances PC by
// one cell before returning.
func (e *Emulator) execute(inst *insts.Instruction) StepResult {
	if inst.Op == insts.OpInvalid {
		return StepResult{Err: &vm.FaultError{
			Kind: vm.DecodeFault,
			PC:   e.regFile.PC,
			Word: inst.Raw.Raw(),
			Cause: fmt.Sprintf("no instruction assigned to C=%d F=%d",
				inst.Opcode, inst.FieldSpec.Byte()),
		}}
	}

	m := e.effectiveAddress(inst)
	cycles := e.timing.GetLatency(inst)

	advance := true
	var err error

	switch inst.Op {
	case insts.OpNOP:

	case insts.OpADD, insts.OpSUB:
		err = e.execArith(inst, m)

	case insts.OpMUL, insts.OpDIV:
		err = e.execMulDiv(inst, m)

	case insts.OpNUM:
		e.convert.Num()
	case insts.OpCHAR:
		e.convert.Char()
	case insts.OpHLT:
		return StepResult{Halted: true, Cycles: cycles}

	case insts.OpSLA, insts.OpSRA, insts.OpSLAX, insts.OpSRAX, insts.OpSLC, insts.OpSRC:
		e.execShift(inst, m)

	case insts.OpMOVE:
		err = e.execMove(inst, m)
		cycles = e.timing.MoveCycles(int(inst.FieldSpec.Byte()))

	case insts.OpLDA, insts.OpLD1, insts.OpLD2, insts.OpLD3, insts.OpLD4, insts.OpLD5, insts.OpLD6, insts.OpLDX,
		insts.OpLDAN, insts.OpLD1N, insts.OpLD2N, insts.OpLD3N, insts.OpLD4N, insts.OpLD5N, insts.OpLD6N, insts.OpLDXN:
		err = e.execLoad(inst, m)

	case insts.OpSTA, insts.OpST1, insts.OpST2, insts.OpST3, insts.OpST4, insts.OpST5, insts.OpST6, insts.OpSTX,
		insts.OpSTJ, insts.OpSTZ:
		err = e.execStore(inst, m)

	case insts.OpJBUS, insts.OpIOC, insts.OpIN, insts.OpOUT, insts.OpJRED:
		err, advance = e.execIO(inst, m)

	case insts.OpJMP, insts.OpJSJ, insts.OpJOV, insts.OpJNOV,
		insts.OpJL, insts.OpJE, insts.OpJG, insts.OpJGE, insts.OpJNE, insts.OpJLE:
		advance = e.execJump(inst, m)

	default:
		if isValueJump(inst.Op) {
			advance = e.execValueJump(inst, m)
		} else if isAddressOp(inst.Op) {
			e.execAddress(inst, m)
		} else if isCompareOp(inst.Op) {
			err = e.execCompare(inst, m)
		} else {
			err = fmt.Errorf("unimplemented op %s at PC=%d", inst.Op, e.regFile.PC)
		}
	}

	if err != nil {
		return StepResult{Err: err, Cycles: cycles}
	}

	if advance {
		e.regFile.PC++
	}

	return StepResult{Cycles: cycles}
}

func (e *Emulator) execArith(inst *insts.Instruction, m int32) error {
	cell, err := e.memory.Get(int(m))
	if err != nil {
		return err
	}
	v := cell.GetField(inst.FieldSpec)
	if inst.Op == insts.OpADD {
		e.alu.Add(v)
	} else {
		e.alu.Sub(v)
	}
	return nil
}

func (e *Emulator) execMulDiv(inst *insts.Instruction, m int32) error {
	cell, err := e.memory.Get(int(m))
	if err != nil {
		return err
	}
	v := cell.GetField(inst.FieldSpec)
	if inst.Op == insts.OpMUL {
		e.alu.Mul(v)
	} else {
		e.alu.Div(v)
	}
	return nil
}

func (e *Emulator) execShift(inst *insts.Instruction, m int32) {
	count := int(m)
	if count < 0 {
		count = -count
	}
	switch inst.Op {
	case insts.OpSLA:
		e.shift.SLA(count)
	case insts.OpSRA:
		e.shift.SRA(count)
	case insts.OpSLAX:
		e.shift.SLAX(count)
	case insts.OpSRAX:
		e.shift.SRAX(count)
	case insts.OpSLC:
		e.shift.SLC(count)
	case insts.OpSRC:
		e.shift.SRC(count)
	}
}

// execMove implements MOVE: copy F words starting at M to the cell
// addressed by rI1, advancing rI1 by F.
func (e *Emulator) execMove(inst *insts.Instruction, m int32) error {
	n := int(inst.FieldSpec.Byte())
	dst := e.regFile.GetIndex(1).Signed()
	for i := 0; i < n; i++ {
		cell, err := e.memory.Get(int(m) + i)
		if err != nil {
			return err
		}
		if err := e.memory.Set(int(dst)+i, cell); err != nil {
			return err
		}
	}
	e.regFile.SetIndex(1, word.NewShortWord(dst+int32(n)))
	return nil
}

func (e *Emulator) execLoad(inst *insts.Instruction, m int32) error {
	switch inst.Op {
	case insts.OpLDA:
		return e.lsu.LoadA(m, inst.FieldSpec)
	case insts.OpLDAN:
		return e.lsu.LoadANeg(m, inst.FieldSpec)
	case insts.OpLDX:
		return e.lsu.LoadX(m, inst.FieldSpec)
	case insts.OpLDXN:
		return e.lsu.LoadXNeg(m, inst.FieldSpec)
	}
	if k, ok := indexOf(inst.Op, loadIndexOps); ok {
		return e.lsu.LoadIndex(k, m, inst.FieldSpec)
	}
	if k, ok := indexOf(inst.Op, loadNegIndexOps); ok {
		return e.lsu.LoadIndexNeg(k, m, inst.FieldSpec)
	}
	return fmt.Errorf("unreachable load op %s", inst.Op)
}

func (e *Emulator) execStore(inst *insts.Instruction, m int32) error {
	switch inst.Op {
	case insts.OpSTA:
		return e.lsu.StoreA(m, inst.FieldSpec)
	case insts.OpSTX:
		return e.lsu.StoreX(m, inst.FieldSpec)
	case insts.OpSTJ:
		return e.lsu.StoreJ(m, inst.FieldSpec)
	case insts.OpSTZ:
		return e.lsu.StoreZ(m, inst.FieldSpec)
	}
	if k, ok := indexOf(inst.Op, storeIndexOps); ok {
		return e.lsu.StoreIndex(k, m, inst.FieldSpec)
	}
	return fmt.Errorf("unreachable store op %s", inst.Op)
}

var loadIndexOps = [6]insts.Op{insts.OpLD1, insts.OpLD2, insts.OpLD3, insts.OpLD4, insts.OpLD5, insts.OpLD6}
var loadNegIndexOps = [6]insts.Op{insts.OpLD1N, insts.OpLD2N, insts.OpLD3N, insts.OpLD4N, insts.OpLD5N, insts.OpLD6N}
var storeIndexOps = [6]insts.Op{insts.OpST1, insts.OpST2, insts.OpST3, insts.OpST4, insts.OpST5, insts.OpST6}

func indexOf(op insts.Op, table [6]insts.Op) (int, bool) {
	for i, o := range table {
		if o == op {
			return i + 1, true
		}
	}
	return 0, false
}

// execJump implements the plain JMP family: it returns true if the
// emulator should still advance PC itself (when a conditional member's
// test fails and the jump is not taken), false when the jump set PC,
// matching the execJump/execValueJump convention of reporting whether
// the generic PC++ should still run.
func (e *Emulator) execJump(inst *insts.Instruction, m int32) bool {
	taken := true
	switch inst.Op {
	case insts.OpJMP:
		e.jump.Jump(m)
	case insts.OpJSJ:
		e.jump.JumpSaveJ(m)
	case insts.OpJOV:
		taken = e.jump.CheckOverflow(true)
		if taken {
			e.jump.Jump(m)
		}
	case insts.OpJNOV:
		taken = e.jump.CheckOverflow(false)
		if taken {
			e.jump.Jump(m)
		}
	default:
		cond, ok := jumpCompareCond(inst.Op)
		if ok && e.jump.CheckCompare(cond) {
			e.jump.Jump(m)
		} else {
			taken = false
		}
	}
	return !taken
}

func jumpCompareCond(op insts.Op) (CompareCond, bool) {
	switch op {
	case insts.OpJL:
		return CondLess, true
	case insts.OpJE:
		return CondEqual, true
	case insts.OpJG:
		return CondGreater, true
	case insts.OpJGE:
		return CondGreaterEqual, true
	case insts.OpJNE:
		return CondNotEqual, true
	case insts.OpJLE:
		return CondLessEqual, true
	default:
		return 0, false
	}
}

func isValueJump(op insts.Op) bool {
	return op >= insts.OpJAN && op <= insts.OpJXNP
}

// execValueJump implements the JAN/JAZ/.../JXNP family: each tests one
// register's signed value and jumps (saving rJ) if the test passes.
func (e *Emulator) execValueJump(inst *insts.Instruction, m int32) bool {
	reg, cond := valueJumpTarget(inst.Op)
	v := e.registerValue(reg)
	if CheckValue(v, cond) {
		e.jump.Jump(m)
		return false
	}
	return true
}

// registerSelector names which register a value-test or address-family
// instruction addresses: A, X, or index register 1-6.
type registerSelector int

const (
	regA registerSelector = iota
	regI1
	regI2
	regI3
	regI4
	regI5
	regI6
	regX
)

func (e *Emulator) registerValue(r registerSelector) int32 {
	switch r {
	case regA:
		return e.regFile.A.Signed()
	case regX:
		return e.regFile.X.Signed()
	default:
		return e.regFile.GetIndex(indexNumber(r)).Signed()
	}
}

func indexNumber(r registerSelector) int {
	return int(r-regI1) + 1
}

// valueJumpTarget recovers which register and ValueCond a J*N/J*Z/...
// instruction names, given that Knuth's table lists them in register
// order A, 1..6, X, six conditions apiece.
func valueJumpTarget(op insts.Op) (registerSelector, ValueCond) {
	group := int(op - insts.OpJAN)
	reg := registerSelector(group / 6)
	cond := ValueCond(group % 6)
	return reg, cond
}

func isAddressOp(op insts.Op) bool {
	return op >= insts.OpINCA && op <= insts.OpENNX
}

// execAddress implements the INC*/DEC*/ENT*/ENN* family.
func (e *Emulator) execAddress(inst *insts.Instruction, m int32) {
	group := int(inst.Op - insts.OpINCA)
	reg := registerSelector(group / 4)
	kind := group % 4

	negZero := inst.Raw.GetSign() == -1 && m == 0

	switch reg {
	case regA:
		switch kind {
		case 0:
			e.address.IncA(m)
		case 1:
			e.address.DecA(m)
		case 2:
			e.address.EntA(m, negZero)
		case 3:
			e.address.EnnA(m, negZero)
		}
	case regX:
		switch kind {
		case 0:
			e.address.IncX(m)
		case 1:
			e.address.DecX(m)
		case 2:
			e.address.EntX(m, negZero)
		case 3:
			e.address.EnnX(m, negZero)
		}
	default:
		k := indexNumber(reg)
		switch kind {
		case 0:
			e.address.IncIndex(k, m)
		case 1:
			e.address.DecIndex(k, m)
		case 2:
			e.address.EntIndex(k, m, negZero)
		case 3:
			e.address.EnnIndex(k, m, negZero)
		}
	}
}

func isCompareOp(op insts.Op) bool {
	return op >= insts.OpCMPA && op <= insts.OpCMPX
}

// execCompare implements CMPA/CMP1-6/CMPX.
func (e *Emulator) execCompare(inst *insts.Instruction, m int32) error {
	cell, err := e.memory.Get(int(m))
	if err != nil {
		return err
	}
	memField := cell.GetField(inst.FieldSpec)

	var regField int32
	switch inst.Op {
	case insts.OpCMPA:
		regField = e.regFile.A.GetField(inst.FieldSpec).Signed()
	case insts.OpCMPX:
		regField = e.regFile.X.GetField(inst.FieldSpec).Signed()
	default:
		table := [6]insts.Op{insts.OpCMP1, insts.OpCMP2, insts.OpCMP3, insts.OpCMP4, insts.OpCMP5, insts.OpCMP6}
		k, _ := indexOf(inst.Op, table)
		regField = e.regFile.GetIndex(k).ToWord().GetField(inst.FieldSpec).Signed()
	}

	e.compare.Compare(regField, memField.Signed())
	return nil
}

// execIO implements JBUS, IOC, IN, OUT, and JRED. The second return
// value reports whether PC should still advance by one (false when
// the instruction redirected PC itself).
func (e *Emulator) execIO(inst *insts.Instruction, m int32) (error, bool) {
	unit := int(inst.FieldSpec.Byte())
	dev := e.devices.Get(unit)
	if dev == nil {
		return fmt.Errorf("no device wired to unit %d", unit), true
	}

	switch inst.Op {
	case insts.OpJBUS:
		if dev.Busy() {
			e.regFile.PC = int(m)
			return nil, false
		}
		return nil, true

	case insts.OpJRED:
		if !dev.Busy() {
			e.regFile.PC = int(m)
			return nil, false
		}
		return nil, true

	case insts.OpIOC:
		return nil, true

	case insts.OpIN:
		block := dev.Read()
		for i, w := range block {
			if err := e.memory.Set(int(m)+i, w); err != nil {
				return err, true
			}
		}
		return nil, true

	case insts.OpOUT:
		block := make([]word.Word, dev.Kind.BlockSize())
		for i := range block {
			cell, err := e.memory.Get(int(m) + i)
			if err != nil {
				return err, true
			}
			block[i] = cell
		}
		dev.Write(block)
		return nil, true
	}

	return fmt.Errorf("unreachable io op %s", inst.Op), true
}
