package vm

import "fmt"

// FaultKind classifies a fatal machine error.
type FaultKind int

// Fault kinds, per the error taxonomy: decode, addressing, load/parse, and
// symbol-resolution faults are all fatal; arithmetic overflow is not one
// of these (it is a flag, not a FaultError).
const (
	DecodeFault FaultKind = iota
	AddressingFault
	LoadFault
	SymbolFault
)

func (k FaultKind) String() string {
	switch k {
	case DecodeFault:
		return "decode fault"
	case AddressingFault:
		return "addressing fault"
	case LoadFault:
		return "load fault"
	case SymbolFault:
		return "symbol fault"
	default:
		return "fault"
	}
}

// FaultError is returned for the machine's decode faults and for
// out-of-range memory access; the assembler and loader report their
// errors as plain errors instead. PC and Word are zero-valued when the
// raiser has no instruction context (Memory.Get and Memory.Set set
// neither).
type FaultError struct {
	Kind  FaultKind
	PC    int
	Word  uint32
	Cause string
}

func (e *FaultError) Error() string {
	if e.PC == 0 && e.Word == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s at PC=%d (word=0x%X): %s", e.Kind, e.PC, e.Word, e.Cause)
}
