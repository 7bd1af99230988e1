package latency

import "github.com/mixvm/mix/insts"

// Table provides instruction latency lookups.
type Table struct {
	config *TimingConfig
}

// NewTable creates a new latency table with Knuth's default cycle
// counts.
func NewTable() *Table {
	return &Table{config: DefaultTimingConfig()}
}

// NewTableWithConfig creates a new latency table with a custom timing
// configuration.
func NewTableWithConfig(config *TimingConfig) *Table {
	return &Table{config: config}
}

// GetLatency returns the base cycle count for inst, excluding MOVE's
// per-word term and I/O's device-dependent term (both add to this
// value; see MoveCycles and IOCycles).
func (t *Table) GetLatency(inst *insts.Instruction) uint64 {
	if inst == nil {
		return 1
	}

	switch inst.Op {
	case insts.OpNOP:
		return t.config.NopCycles

	case insts.OpADD, insts.OpSUB:
		return t.config.ArithmeticCycles
	case insts.OpMUL:
		return t.config.MultiplyCycles
	case insts.OpDIV:
		return t.config.DivideCycles

	case insts.OpSLA, insts.OpSRA, insts.OpSLAX, insts.OpSRAX, insts.OpSLC, insts.OpSRC:
		return t.config.ShiftCycles

	case insts.OpNUM, insts.OpCHAR:
		return t.config.ConvertCycles

	case insts.OpJBUS, insts.OpIOC, insts.OpIN, insts.OpOUT, insts.OpJRED:
		return t.config.IOBaseCycles

	case insts.OpINCA, insts.OpDECA, insts.OpENTA, insts.OpENNA,
		insts.OpINC1, insts.OpDEC1, insts.OpENT1, insts.OpENN1,
		insts.OpINC2, insts.OpDEC2, insts.OpENT2, insts.OpENN2,
		insts.OpINC3, insts.OpDEC3, insts.OpENT3, insts.OpENN3,
		insts.OpINC4, insts.OpDEC4, insts.OpENT4, insts.OpENN4,
		insts.OpINC5, insts.OpDEC5, insts.OpENT5, insts.OpENN5,
		insts.OpINC6, insts.OpDEC6, insts.OpENT6, insts.OpENN6,
		insts.OpINCX, insts.OpDECX, insts.OpENTX, insts.OpENNX:
		return t.config.AddressCycles

	case insts.OpCMPA, insts.OpCMP1, insts.OpCMP2, insts.OpCMP3, insts.OpCMP4, insts.OpCMP5, insts.OpCMP6, insts.OpCMPX:
		return t.config.LoadStoreCycles

	case insts.OpMOVE:
		return t.config.MoveBaseCycles

	default:
		if t.isJump(inst.Op) {
			return t.config.JumpCycles
		}
		if t.isLoadOrStore(inst.Op) {
			return t.config.LoadStoreCycles
		}
		return 1
	}
}

// MoveCycles returns MOVE's total cycle count given its field F (the
// number of words moved): base + F*per-word.
func (t *Table) MoveCycles(f int) uint64 {
	return t.config.MoveBaseCycles + uint64(f)*t.config.MoveCyclesPerWord
}

// IOCycles returns an I/O instruction's total cycle count given the
// device's transfer time T.
func (t *Table) IOCycles(deviceT uint64) uint64 {
	return t.config.IOBaseCycles + deviceT
}

func (t *Table) isJump(op insts.Op) bool {
	switch op {
	case insts.OpJMP, insts.OpJSJ, insts.OpJOV, insts.OpJNOV, insts.OpJL, insts.OpJE, insts.OpJG, insts.OpJGE, insts.OpJNE, insts.OpJLE:
		return true
	}
	if op >= insts.OpJAN && op <= insts.OpJXNP {
		return true
	}
	return false
}

func (t *Table) isLoadOrStore(op insts.Op) bool {
	switch {
	case op >= insts.OpLDA && op <= insts.OpLDXN:
		return true
	case op >= insts.OpSTA && op <= insts.OpSTZ:
		return true
	}
	return false
}

// Config returns the current timing configuration.
func (t *Table) Config() *TimingConfig {
	return t.config
}
