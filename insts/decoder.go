package insts

import "github.com/mixvm/mix/word"

// Decoder turns instruction words into Instructions. It holds no state;
// a single Decoder can be shared across calls.
type Decoder struct{}

// NewDecoder returns a ready-to-use Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// jumpFamily, addressFamily and compareFamily list, per C-opcode group,
// the Op for each F value used by the address-register family of
// instructions (JAN..JXNP, INCA..ENNX, CMPA..CMPX), in register order
// A, 1..6, X.
var jumpFamily = [8][6]Op{
	{OpJAN, OpJAZ, OpJAP, OpJANN, OpJANZ, OpJANP},
	{OpJ1N, OpJ1Z, OpJ1P, OpJ1NN, OpJ1NZ, OpJ1NP},
	{OpJ2N, OpJ2Z, OpJ2P, OpJ2NN, OpJ2NZ, OpJ2NP},
	{OpJ3N, OpJ3Z, OpJ3P, OpJ3NN, OpJ3NZ, OpJ3NP},
	{OpJ4N, OpJ4Z, OpJ4P, OpJ4NN, OpJ4NZ, OpJ4NP},
	{OpJ5N, OpJ5Z, OpJ5P, OpJ5NN, OpJ5NZ, OpJ5NP},
	{OpJ6N, OpJ6Z, OpJ6P, OpJ6NN, OpJ6NZ, OpJ6NP},
	{OpJXN, OpJXZ, OpJXP, OpJXNN, OpJXNZ, OpJXNP},
}

var addressFamily = [8][4]Op{
	{OpINCA, OpDECA, OpENTA, OpENNA},
	{OpINC1, OpDEC1, OpENT1, OpENN1},
	{OpINC2, OpDEC2, OpENT2, OpENN2},
	{OpINC3, OpDEC3, OpENT3, OpENN3},
	{OpINC4, OpDEC4, OpENT4, OpENN4},
	{OpINC5, OpDEC5, OpENT5, OpENN5},
	{OpINC6, OpDEC6, OpENT6, OpENN6},
	{OpINCX, OpDECX, OpENTX, OpENNX},
}

var compareFamily = [8]Op{OpCMPA, OpCMP1, OpCMP2, OpCMP3, OpCMP4, OpCMP5, OpCMP6, OpCMPX}

var jmpOpcodeFamily = [10]Op{OpJMP, OpJSJ, OpJOV, OpJNOV, OpJL, OpJE, OpJG, OpJGE, OpJNE, OpJLE}

var loadFamily = [8]Op{OpLDA, OpLD1, OpLD2, OpLD3, OpLD4, OpLD5, OpLD6, OpLDX}
var loadNegFamily = [8]Op{OpLDAN, OpLD1N, OpLD2N, OpLD3N, OpLD4N, OpLD5N, OpLD6N, OpLDXN}
var storeFamily = [8]Op{OpSTA, OpST1, OpST2, OpST3, OpST4, OpST5, OpST6, OpSTX}

// Decode classifies w into a full Instruction. It never returns an
// error: any (C,F) combination Knuth's table leaves unassigned decodes
// to OpInvalid, which the execution loop rejects at dispatch time as a
// decode fault.
func (d *Decoder) Decode(w word.Word) *Instruction {
	c := w.Opcode()
	f := w.FieldSpec()

	inst := &Instruction{
		Address:   w.Address(),
		Index:     w.Index(),
		FieldSpec: f,
		Opcode:    c,
		Raw:       w,
		Op:        OpInvalid,
	}

	switch {
	case c == 0:
		inst.Op = OpNOP
	case c >= 1 && c <= 4:
		inst.Op = [4]Op{OpADD, OpSUB, OpMUL, OpDIV}[c-1]
	case c == 5:
		switch f.Byte() {
		case 0:
			inst.Op = OpNUM
		case 1:
			inst.Op = OpCHAR
		case 2:
			inst.Op = OpHLT
		}
	case c == 6:
		if int(f.Byte()) < 6 {
			inst.Op = [6]Op{OpSLA, OpSRA, OpSLAX, OpSRAX, OpSLC, OpSRC}[f.Byte()]
		}
	case c == 7:
		inst.Op = OpMOVE
	case c >= 8 && c <= 15:
		inst.Op = loadFamily[c-8]
	case c >= 16 && c <= 23:
		inst.Op = loadNegFamily[c-16]
	case c >= 24 && c <= 31:
		inst.Op = storeFamily[c-24]
	case c == 32:
		inst.Op = OpSTJ
	case c == 33:
		inst.Op = OpSTZ
	case c == 34:
		inst.Op = OpJBUS
	case c == 35:
		inst.Op = OpIOC
	case c == 36:
		inst.Op = OpIN
	case c == 37:
		inst.Op = OpOUT
	case c == 38:
		inst.Op = OpJRED
	case c == 39:
		if int(f.Byte()) < len(jmpOpcodeFamily) {
			inst.Op = jmpOpcodeFamily[f.Byte()]
		}
	case c >= 40 && c <= 47:
		if int(f.Byte()) < 6 {
			inst.Op = jumpFamily[c-40][f.Byte()]
		}
	case c >= 48 && c <= 55:
		if int(f.Byte()) < 4 {
			inst.Op = addressFamily[c-48][f.Byte()]
		}
	case c >= 56 && c <= 63:
		inst.Op = compareFamily[c-56]
	}

	return inst
}
