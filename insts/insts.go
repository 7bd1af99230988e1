// Package insts provides MIX instruction definitions and decoding.
//
// This package turns a raw instruction Word into a structured
// Instruction: the mnemonic (Op), the decoded address fields, and the
// field specifier an execution unit needs to carry out the operation.
package insts

import "github.com/mixvm/mix/word"

// Op identifies a MIX operation by its canonical mnemonic.
type Op int

// The full MIX mnemonic set, grouped the way Knuth's opcode table groups
// them: arithmetic, conversion/halt, shifts, move, loads, load-negatives,
// stores, I/O, jumps, address jumps, address transfers, and compares.
const (
	OpNOP Op = iota

	OpADD
	OpSUB
	OpMUL
	OpDIV

	OpNUM
	OpCHAR
	OpHLT

	OpSLA
	OpSRA
	OpSLAX
	OpSRAX
	OpSLC
	OpSRC

	OpMOVE

	OpLDA
	OpLD1
	OpLD2
	OpLD3
	OpLD4
	OpLD5
	OpLD6
	OpLDX

	OpLDAN
	OpLD1N
	OpLD2N
	OpLD3N
	OpLD4N
	OpLD5N
	OpLD6N
	OpLDXN

	OpSTA
	OpST1
	OpST2
	OpST3
	OpST4
	OpST5
	OpST6
	OpSTX
	OpSTJ
	OpSTZ

	OpJBUS
	OpIOC
	OpIN
	OpOUT
	OpJRED

	OpJMP
	OpJSJ
	OpJOV
	OpJNOV
	OpJL
	OpJE
	OpJG
	OpJGE
	OpJNE
	OpJLE

	OpJAN
	OpJAZ
	OpJAP
	OpJANN
	OpJANZ
	OpJANP
	OpJ1N
	OpJ1Z
	OpJ1P
	OpJ1NN
	OpJ1NZ
	OpJ1NP
	OpJ2N
	OpJ2Z
	OpJ2P
	OpJ2NN
	OpJ2NZ
	OpJ2NP
	OpJ3N
	OpJ3Z
	OpJ3P
	OpJ3NN
	OpJ3NZ
	OpJ3NP
	OpJ4N
	OpJ4Z
	OpJ4P
	OpJ4NN
	OpJ4NZ
	OpJ4NP
	OpJ5N
	OpJ5Z
	OpJ5P
	OpJ5NN
	OpJ5NZ
	OpJ5NP
	OpJ6N
	OpJ6Z
	OpJ6P
	OpJ6NN
	OpJ6NZ
	OpJ6NP
	OpJXN
	OpJXZ
	OpJXP
	OpJXNN
	OpJXNZ
	OpJXNP

	OpINCA
	OpDECA
	OpENTA
	OpENNA
	OpINC1
	OpDEC1
	OpENT1
	OpENN1
	OpINC2
	OpDEC2
	OpENT2
	OpENN2
	OpINC3
	OpDEC3
	OpENT3
	OpENN3
	OpINC4
	OpDEC4
	OpENT4
	OpENN4
	OpINC5
	OpDEC5
	OpENT5
	OpENN5
	OpINC6
	OpDEC6
	OpENT6
	OpENN6
	OpINCX
	OpDECX
	OpENTX
	OpENNX

	OpCMPA
	OpCMP1
	OpCMP2
	OpCMP3
	OpCMP4
	OpCMP5
	OpCMP6
	OpCMPX

	OpInvalid
)

// opNames gives every Op its canonical mnemonic, for diagnostics and for
// the assembler's reverse lookup.
var opNames = map[Op]string{
	OpNOP: "NOP",

	OpADD: "ADD", OpSUB: "SUB", OpMUL: "MUL", OpDIV: "DIV",

	OpNUM: "NUM", OpCHAR: "CHAR", OpHLT: "HLT",

	OpSLA: "SLA", OpSRA: "SRA", OpSLAX: "SLAX", OpSRAX: "SRAX", OpSLC: "SLC", OpSRC: "SRC",

	OpMOVE: "MOVE",

	OpLDA: "LDA", OpLD1: "LD1", OpLD2: "LD2", OpLD3: "LD3", OpLD4: "LD4", OpLD5: "LD5", OpLD6: "LD6", OpLDX: "LDX",
	OpLDAN: "LDAN", OpLD1N: "LD1N", OpLD2N: "LD2N", OpLD3N: "LD3N", OpLD4N: "LD4N", OpLD5N: "LD5N", OpLD6N: "LD6N", OpLDXN: "LDXN",

	OpSTA: "STA", OpST1: "ST1", OpST2: "ST2", OpST3: "ST3", OpST4: "ST4", OpST5: "ST5", OpST6: "ST6", OpSTX: "STX", OpSTJ: "STJ", OpSTZ: "STZ",

	OpJBUS: "JBUS", OpIOC: "IOC", OpIN: "IN", OpOUT: "OUT", OpJRED: "JRED",

	OpJMP: "JMP", OpJSJ: "JSJ", OpJOV: "JOV", OpJNOV: "JNOV", OpJL: "JL", OpJE: "JE", OpJG: "JG", OpJGE: "JGE", OpJNE: "JNE", OpJLE: "JLE",

	OpJAN: "JAN", OpJAZ: "JAZ", OpJAP: "JAP", OpJANN: "JANN", OpJANZ: "JANZ", OpJANP: "JANP",
	OpJ1N: "J1N", OpJ1Z: "J1Z", OpJ1P: "J1P", OpJ1NN: "J1NN", OpJ1NZ: "J1NZ", OpJ1NP: "J1NP",
	OpJ2N: "J2N", OpJ2Z: "J2Z", OpJ2P: "J2P", OpJ2NN: "J2NN", OpJ2NZ: "J2NZ", OpJ2NP: "J2NP",
	OpJ3N: "J3N", OpJ3Z: "J3Z", OpJ3P: "J3P", OpJ3NN: "J3NN", OpJ3NZ: "J3NZ", OpJ3NP: "J3NP",
	OpJ4N: "J4N", OpJ4Z: "J4Z", OpJ4P: "J4P", OpJ4NN: "J4NN", OpJ4NZ: "J4NZ", OpJ4NP: "J4NP",
	OpJ5N: "J5N", OpJ5Z: "J5Z", OpJ5P: "J5P", OpJ5NN: "J5NN", OpJ5NZ: "J5NZ", OpJ5NP: "J5NP",
	OpJ6N: "J6N", OpJ6Z: "J6Z", OpJ6P: "J6P", OpJ6NN: "J6NN", OpJ6NZ: "J6NZ", OpJ6NP: "J6NP",
	OpJXN: "JXN", OpJXZ: "JXZ", OpJXP: "JXP", OpJXNN: "JXNN", OpJXNZ: "JXNZ", OpJXNP: "JXNP",

	OpINCA: "INCA", OpDECA: "DECA", OpENTA: "ENTA", OpENNA: "ENNA",
	OpINC1: "INC1", OpDEC1: "DEC1", OpENT1: "ENT1", OpENN1: "ENN1",
	OpINC2: "INC2", OpDEC2: "DEC2", OpENT2: "ENT2", OpENN2: "ENN2",
	OpINC3: "INC3", OpDEC3: "DEC3", OpENT3: "ENT3", OpENN3: "ENN3",
	OpINC4: "INC4", OpDEC4: "DEC4", OpENT4: "ENT4", OpENN4: "ENN4",
	OpINC5: "INC5", OpDEC5: "DEC5", OpENT5: "ENT5", OpENN5: "ENN5",
	OpINC6: "INC6", OpDEC6: "DEC6", OpENT6: "ENT6", OpENN6: "ENN6",
	OpINCX: "INCX", OpDECX: "DECX", OpENTX: "ENTX", OpENNX: "ENNX",

	OpCMPA: "CMPA", OpCMP1: "CMP1", OpCMP2: "CMP2", OpCMP3: "CMP3", OpCMP4: "CMP4", OpCMP5: "CMP5", OpCMP6: "CMP6", OpCMPX: "CMPX",
}

// String returns op's canonical mnemonic, or "???" for OpInvalid.
func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return "???"
}

// Instruction is a decoded MIX instruction: the operation plus the raw
// fields an execution unit combines with the index registers to find
// its effective address and field.
type Instruction struct {
	Op        Op
	Address   int32
	Index     byte
	FieldSpec word.FieldSpec
	Opcode    byte
	Raw       word.Word
}
