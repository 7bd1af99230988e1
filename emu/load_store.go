package emu

import (
	"github.com/mixvm/mix/vm"
	"github.com/mixvm/mix/word"
)

// LoadStoreUnit implements MIX's LD*, LD*N, ST*, STJ, and STZ family.
// Every method takes the already-resolved effective address and the
// instruction's field specifier; LoadStoreUnit applies the field
// itself so callers never touch raw memory words.
type LoadStoreUnit struct {
	regFile *vm.RegFile
	memory  *vm.Memory
}

// NewLoadStoreUnit creates a new LoadStoreUnit connected to the given
// register file and memory.
func NewLoadStoreUnit(regFile *vm.RegFile, memory *vm.Memory) *LoadStoreUnit {
	return &LoadStoreUnit{regFile: regFile, memory: memory}
}

func (u *LoadStoreUnit) fetch(addr int32, f word.FieldSpec) (word.Word, error) {
	cell, err := u.memory.Get(int(addr))
	if err != nil {
		return word.Word{}, err
	}
	return cell.GetField(f), nil
}

// LoadA implements LDA.
func (u *LoadStoreUnit) LoadA(addr int32, f word.FieldSpec) error {
	v, err := u.fetch(addr, f)
	if err != nil {
		return err
	}
	u.regFile.A = v
	return nil
}

// LoadANeg implements LDAN.
func (u *LoadStoreUnit) LoadANeg(addr int32, f word.FieldSpec) error {
	v, err := u.fetch(addr, f)
	if err != nil {
		return err
	}
	u.regFile.A = v.Negated()
	return nil
}

// LoadX implements LDX.
func (u *LoadStoreUnit) LoadX(addr int32, f word.FieldSpec) error {
	v, err := u.fetch(addr, f)
	if err != nil {
		return err
	}
	u.regFile.X = v
	return nil
}

// LoadXNeg implements LDXN.
func (u *LoadStoreUnit) LoadXNeg(addr int32, f word.FieldSpec) error {
	v, err := u.fetch(addr, f)
	if err != nil {
		return err
	}
	u.regFile.X = v.Negated()
	return nil
}

// LoadIndex implements LDi for index register k (1..6). Only bytes 4-5
// of the field-selected result survive the narrowing to a ShortWord.
func (u *LoadStoreUnit) LoadIndex(k int, addr int32, f word.FieldSpec) error {
	v, err := u.fetch(addr, f)
	if err != nil {
		return err
	}
	u.regFile.SetIndex(k, word.ShortWordFromWord(v))
	return nil
}

// LoadIndexNeg implements LDiN.
func (u *LoadStoreUnit) LoadIndexNeg(k int, addr int32, f word.FieldSpec) error {
	v, err := u.fetch(addr, f)
	if err != nil {
		return err
	}
	u.regFile.SetIndex(k, word.ShortWordFromWord(v.Negated()))
	return nil
}

func (u *LoadStoreUnit) store(addr int32, f word.FieldSpec, src word.Word) error {
	cell, err := u.memory.Get(int(addr))
	if err != nil {
		return err
	}
	return u.memory.Set(int(addr), cell.SetField(f, src))
}

// StoreA implements STA.
func (u *LoadStoreUnit) StoreA(addr int32, f word.FieldSpec) error {
	return u.store(addr, f, u.regFile.A)
}

// StoreX implements STX.
func (u *LoadStoreUnit) StoreX(addr int32, f word.FieldSpec) error {
	return u.store(addr, f, u.regFile.X)
}

// StoreIndex implements STi for index register k (1..6).
func (u *LoadStoreUnit) StoreIndex(k int, addr int32, f word.FieldSpec) error {
	return u.store(addr, f, u.regFile.GetIndex(k).ToWord())
}

// StoreJ implements STJ.
func (u *LoadStoreUnit) StoreJ(addr int32, f word.FieldSpec) error {
	return u.store(addr, f, u.regFile.J.ToWord())
}

// StoreZ implements STZ: stores +0 into the selected field, leaving
// the rest of the cell untouched.
func (u *LoadStoreUnit) StoreZ(addr int32, f word.FieldSpec) error {
	return u.store(addr, f, word.Zero(0))
}
