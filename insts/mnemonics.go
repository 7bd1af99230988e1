package insts

import "github.com/mixvm/mix/word"

// mnemonicInfo is an Op's assembly-time identity: the opcode byte it
// encodes to, and the field specifier it defaults to when a line's
// address carries none. For the conversion/halt, shift, jump, and
// address-transfer families the "default" field specifier IS the
// distinguishing part of the mnemonic (SLA vs SRA, JMP vs JSJ); for MOVE
// it is the default word count. An explicit (F) in the source
// still overrides it, exactly as Knuth's assembler allows.
type mnemonicInfo struct {
	Op      Op
	C       byte
	Default word.FieldSpec
}

// Mnemonics maps every assembler-visible name to its opcode and default
// field, taken from Knuth's opcode table (the same mapping insts/insts.go
// and insts/decoder.go decode in the other direction).
var Mnemonics = map[string]mnemonicInfo{
	"NOP": {OpNOP, 0, word.NewFieldSpec(0, 0)},

	"ADD": {OpADD, 1, word.NewFieldSpec(0, 5)},
	"SUB": {OpSUB, 2, word.NewFieldSpec(0, 5)},
	"MUL": {OpMUL, 3, word.NewFieldSpec(0, 5)},
	"DIV": {OpDIV, 4, word.NewFieldSpec(0, 5)},

	"NUM":  {OpNUM, 5, word.NewFieldSpec(0, 0)},
	"CHAR": {OpCHAR, 5, word.NewFieldSpec(0, 1)},
	"HLT":  {OpHLT, 5, word.NewFieldSpec(0, 2)},

	"SLA":  {OpSLA, 6, word.NewFieldSpec(0, 0)},
	"SRA":  {OpSRA, 6, word.NewFieldSpec(0, 1)},
	"SLAX": {OpSLAX, 6, word.NewFieldSpec(0, 2)},
	"SRAX": {OpSRAX, 6, word.NewFieldSpec(0, 3)},
	"SLC":  {OpSLC, 6, word.NewFieldSpec(0, 4)},
	"SRC":  {OpSRC, 6, word.NewFieldSpec(0, 5)},

	"MOVE": {OpMOVE, 7, word.NewFieldSpec(0, 1)},

	"LDA": {OpLDA, 8, word.NewFieldSpec(0, 5)}, "LD1": {OpLD1, 9, word.NewFieldSpec(0, 5)},
	"LD2": {OpLD2, 10, word.NewFieldSpec(0, 5)}, "LD3": {OpLD3, 11, word.NewFieldSpec(0, 5)},
	"LD4": {OpLD4, 12, word.NewFieldSpec(0, 5)}, "LD5": {OpLD5, 13, word.NewFieldSpec(0, 5)},
	"LD6": {OpLD6, 14, word.NewFieldSpec(0, 5)}, "LDX": {OpLDX, 15, word.NewFieldSpec(0, 5)},

	"LDAN": {OpLDAN, 16, word.NewFieldSpec(0, 5)}, "LD1N": {OpLD1N, 17, word.NewFieldSpec(0, 5)},
	"LD2N": {OpLD2N, 18, word.NewFieldSpec(0, 5)}, "LD3N": {OpLD3N, 19, word.NewFieldSpec(0, 5)},
	"LD4N": {OpLD4N, 20, word.NewFieldSpec(0, 5)}, "LD5N": {OpLD5N, 21, word.NewFieldSpec(0, 5)},
	"LD6N": {OpLD6N, 22, word.NewFieldSpec(0, 5)}, "LDXN": {OpLDXN, 23, word.NewFieldSpec(0, 5)},

	"STA": {OpSTA, 24, word.NewFieldSpec(0, 5)}, "ST1": {OpST1, 25, word.NewFieldSpec(0, 5)},
	"ST2": {OpST2, 26, word.NewFieldSpec(0, 5)}, "ST3": {OpST3, 27, word.NewFieldSpec(0, 5)},
	"ST4": {OpST4, 28, word.NewFieldSpec(0, 5)}, "ST5": {OpST5, 29, word.NewFieldSpec(0, 5)},
	"ST6": {OpST6, 30, word.NewFieldSpec(0, 5)}, "STX": {OpSTX, 31, word.NewFieldSpec(0, 5)},
	"STJ": {OpSTJ, 32, word.NewFieldSpec(0, 2)}, "STZ": {OpSTZ, 33, word.NewFieldSpec(0, 5)},

	"JBUS": {OpJBUS, 34, word.NewFieldSpec(0, 0)},
	"IOC":  {OpIOC, 35, word.NewFieldSpec(0, 0)},
	"IN":   {OpIN, 36, word.NewFieldSpec(0, 0)},
	"OUT":  {OpOUT, 37, word.NewFieldSpec(0, 0)},
	"JRED": {OpJRED, 38, word.NewFieldSpec(0, 0)},

	"JMP": {OpJMP, 39, word.NewFieldSpec(0, 0)}, "JSJ": {OpJSJ, 39, word.NewFieldSpec(0, 1)},
	"JOV": {OpJOV, 39, word.NewFieldSpec(0, 2)}, "JNOV": {OpJNOV, 39, word.NewFieldSpec(0, 3)},
	"JL": {OpJL, 39, word.NewFieldSpec(0, 4)}, "JE": {OpJE, 39, word.NewFieldSpec(0, 5)},
	"JG": {OpJG, 39, word.NewFieldSpec(0, 6)}, "JGE": {OpJGE, 39, word.NewFieldSpec(0, 7)},
	"JNE": {OpJNE, 39, word.NewFieldSpec(0, 8)}, "JLE": {OpJLE, 39, word.NewFieldSpec(0, 9)},

	"JAN": {OpJAN, 40, word.NewFieldSpec(0, 0)}, "JAZ": {OpJAZ, 40, word.NewFieldSpec(0, 1)},
	"JAP": {OpJAP, 40, word.NewFieldSpec(0, 2)}, "JANN": {OpJANN, 40, word.NewFieldSpec(0, 3)},
	"JANZ": {OpJANZ, 40, word.NewFieldSpec(0, 4)}, "JANP": {OpJANP, 40, word.NewFieldSpec(0, 5)},

	"J1N": {OpJ1N, 41, word.NewFieldSpec(0, 0)}, "J1Z": {OpJ1Z, 41, word.NewFieldSpec(0, 1)},
	"J1P": {OpJ1P, 41, word.NewFieldSpec(0, 2)}, "J1NN": {OpJ1NN, 41, word.NewFieldSpec(0, 3)},
	"J1NZ": {OpJ1NZ, 41, word.NewFieldSpec(0, 4)}, "J1NP": {OpJ1NP, 41, word.NewFieldSpec(0, 5)},

	"J2N": {OpJ2N, 42, word.NewFieldSpec(0, 0)}, "J2Z": {OpJ2Z, 42, word.NewFieldSpec(0, 1)},
	"J2P": {OpJ2P, 42, word.NewFieldSpec(0, 2)}, "J2NN": {OpJ2NN, 42, word.NewFieldSpec(0, 3)},
	"J2NZ": {OpJ2NZ, 42, word.NewFieldSpec(0, 4)}, "J2NP": {OpJ2NP, 42, word.NewFieldSpec(0, 5)},

	"J3N": {OpJ3N, 43, word.NewFieldSpec(0, 0)}, "J3Z": {OpJ3Z, 43, word.NewFieldSpec(0, 1)},
	"J3P": {OpJ3P, 43, word.NewFieldSpec(0, 2)}, "J3NN": {OpJ3NN, 43, word.NewFieldSpec(0, 3)},
	"J3NZ": {OpJ3NZ, 43, word.NewFieldSpec(0, 4)}, "J3NP": {OpJ3NP, 43, word.NewFieldSpec(0, 5)},

	"J4N": {OpJ4N, 44, word.NewFieldSpec(0, 0)}, "J4Z": {OpJ4Z, 44, word.NewFieldSpec(0, 1)},
	"J4P": {OpJ4P, 44, word.NewFieldSpec(0, 2)}, "J4NN": {OpJ4NN, 44, word.NewFieldSpec(0, 3)},
	"J4NZ": {OpJ4NZ, 44, word.NewFieldSpec(0, 4)}, "J4NP": {OpJ4NP, 44, word.NewFieldSpec(0, 5)},

	"J5N": {OpJ5N, 45, word.NewFieldSpec(0, 0)}, "J5Z": {OpJ5Z, 45, word.NewFieldSpec(0, 1)},
	"J5P": {OpJ5P, 45, word.NewFieldSpec(0, 2)}, "J5NN": {OpJ5NN, 45, word.NewFieldSpec(0, 3)},
	"J5NZ": {OpJ5NZ, 45, word.NewFieldSpec(0, 4)}, "J5NP": {OpJ5NP, 45, word.NewFieldSpec(0, 5)},

	"J6N": {OpJ6N, 46, word.NewFieldSpec(0, 0)}, "J6Z": {OpJ6Z, 46, word.NewFieldSpec(0, 1)},
	"J6P": {OpJ6P, 46, word.NewFieldSpec(0, 2)}, "J6NN": {OpJ6NN, 46, word.NewFieldSpec(0, 3)},
	"J6NZ": {OpJ6NZ, 46, word.NewFieldSpec(0, 4)}, "J6NP": {OpJ6NP, 46, word.NewFieldSpec(0, 5)},

	"JXN": {OpJXN, 47, word.NewFieldSpec(0, 0)}, "JXZ": {OpJXZ, 47, word.NewFieldSpec(0, 1)},
	"JXP": {OpJXP, 47, word.NewFieldSpec(0, 2)}, "JXNN": {OpJXNN, 47, word.NewFieldSpec(0, 3)},
	"JXNZ": {OpJXNZ, 47, word.NewFieldSpec(0, 4)}, "JXNP": {OpJXNP, 47, word.NewFieldSpec(0, 5)},

	"INCA": {OpINCA, 48, word.NewFieldSpec(0, 0)}, "DECA": {OpDECA, 48, word.NewFieldSpec(0, 1)},
	"ENTA": {OpENTA, 48, word.NewFieldSpec(0, 2)}, "ENNA": {OpENNA, 48, word.NewFieldSpec(0, 3)},

	"INC1": {OpINC1, 49, word.NewFieldSpec(0, 0)}, "DEC1": {OpDEC1, 49, word.NewFieldSpec(0, 1)},
	"ENT1": {OpENT1, 49, word.NewFieldSpec(0, 2)}, "ENN1": {OpENN1, 49, word.NewFieldSpec(0, 3)},

	"INC2": {OpINC2, 50, word.NewFieldSpec(0, 0)}, "DEC2": {OpDEC2, 50, word.NewFieldSpec(0, 1)},
	"ENT2": {OpENT2, 50, word.NewFieldSpec(0, 2)}, "ENN2": {OpENN2, 50, word.NewFieldSpec(0, 3)},

	"INC3": {OpINC3, 51, word.NewFieldSpec(0, 0)}, "DEC3": {OpDEC3, 51, word.NewFieldSpec(0, 1)},
	"ENT3": {OpENT3, 51, word.NewFieldSpec(0, 2)}, "ENN3": {OpENN3, 51, word.NewFieldSpec(0, 3)},

	"INC4": {OpINC4, 52, word.NewFieldSpec(0, 0)}, "DEC4": {OpDEC4, 52, word.NewFieldSpec(0, 1)},
	"ENT4": {OpENT4, 52, word.NewFieldSpec(0, 2)}, "ENN4": {OpENN4, 52, word.NewFieldSpec(0, 3)},

	"INC5": {OpINC5, 53, word.NewFieldSpec(0, 0)}, "DEC5": {OpDEC5, 53, word.NewFieldSpec(0, 1)},
	"ENT5": {OpENT5, 53, word.NewFieldSpec(0, 2)}, "ENN5": {OpENN5, 53, word.NewFieldSpec(0, 3)},

	"INC6": {OpINC6, 54, word.NewFieldSpec(0, 0)}, "DEC6": {OpDEC6, 54, word.NewFieldSpec(0, 1)},
	"ENT6": {OpENT6, 54, word.NewFieldSpec(0, 2)}, "ENN6": {OpENN6, 54, word.NewFieldSpec(0, 3)},

	"INCX": {OpINCX, 55, word.NewFieldSpec(0, 0)}, "DECX": {OpDECX, 55, word.NewFieldSpec(0, 1)},
	"ENTX": {OpENTX, 55, word.NewFieldSpec(0, 2)}, "ENNX": {OpENNX, 55, word.NewFieldSpec(0, 3)},

	"CMPA": {OpCMPA, 56, word.NewFieldSpec(0, 5)}, "CMP1": {OpCMP1, 57, word.NewFieldSpec(0, 5)},
	"CMP2": {OpCMP2, 58, word.NewFieldSpec(0, 5)}, "CMP3": {OpCMP3, 59, word.NewFieldSpec(0, 5)},
	"CMP4": {OpCMP4, 60, word.NewFieldSpec(0, 5)}, "CMP5": {OpCMP5, 61, word.NewFieldSpec(0, 5)},
	"CMP6": {OpCMP6, 62, word.NewFieldSpec(0, 5)}, "CMPX": {OpCMPX, 63, word.NewFieldSpec(0, 5)},
}

// LookupMnemonic returns the opcode and default field for name, or false
// if name isn't a MIX instruction mnemonic (it might be a pseudo-op).
func LookupMnemonic(name string) (c byte, f word.FieldSpec, ok bool) {
	info, ok := Mnemonics[name]
	if !ok {
		return 0, word.FieldSpec{}, false
	}
	return info.C, info.Default, true
}
