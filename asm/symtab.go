package asm

import "fmt"

// localSymbolTable holds every address at which each digit 0-9 was
// defined via "nH", in definition order. A later "nB"/"nF" reference
// resolves by direction relative to the querying address, not by name:
// the same digit can be defined many times over a program and each use
// picks the nearest matching definition.
type localSymbolTable struct {
	addrs map[byte][]int32
}

func newLocalSymbolTable() *localSymbolTable {
	return &localSymbolTable{addrs: make(map[byte][]int32)}
}

// isLocalSymbol reports whether name has the nH/nB/nF shape.
func isLocalSymbol(name string) bool {
	if len(name) != 2 {
		return false
	}
	if name[0] < '0' || name[0] > '9' {
		return false
	}
	return name[1] == 'H' || name[1] == 'B' || name[1] == 'F'
}

func (t *localSymbolTable) define(name string, addr int32) {
	digit := name[0] - '0'
	t.addrs[digit] = append(t.addrs[digit], addr)
}

// resolve finds the address nB/nF of name refers to, relative to
// current. nB searches backward for the greatest defined address below
// current; nF searches forward for the smallest above.
func (t *localSymbolTable) resolve(name string, current int32) (int32, error) {
	digit := name[0] - '0'
	backward := name[1] == 'B'

	addrs := t.addrs[digit]
	if backward {
		for i := len(addrs) - 1; i >= 0; i-- {
			if addrs[i] < current {
				return addrs[i], nil
			}
		}
	} else {
		for _, a := range addrs {
			if a > current {
				return a, nil
			}
		}
	}
	return 0, fmt.Errorf("local symbol %s not found relative to %d", name, current)
}

// SymbolTable resolves every non-local and local symbol a MIXAL program
// can reference: EQU values, label addresses, and local symbols.
type SymbolTable struct {
	equValues  map[string]int32
	references map[string]int32
	local      *localSymbolTable
}

// NewSymbolTable returns an empty SymbolTable.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		equValues:  make(map[string]int32),
		references: make(map[string]int32),
		local:      newLocalSymbolTable(),
	}
}

// Get resolves name to a value. current is the location counter of the
// referencing line, used only to direct local-symbol resolution.
func (s *SymbolTable) Get(name string, current int32) (int32, error) {
	if isLocalSymbol(name) {
		return s.local.resolve(name, current)
	}
	if v, ok := s.equValues[name]; ok {
		return v, nil
	}
	if v, ok := s.references[name]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("symbol %s not found", name)
}

// IsDefined reports whether name already resolves to something, without
// erroring for an unresolved forward reference.
func (s *SymbolTable) IsDefined(name string) bool {
	if isLocalSymbol(name) {
		return len(s.local.addrs[name[0]-'0']) > 0
	}
	_, eq := s.equValues[name]
	_, ref := s.references[name]
	return eq || ref
}

// PutEqu records an EQU-defined symbol's value. A local-symbol-shaped
// name (nH) is recorded in the local table, same as a LOC label, since
// Get resolves any nH/nB/nF name there regardless of how it was
// defined.
func (s *SymbolTable) PutEqu(name string, value int32) {
	if isLocalSymbol(name) {
		s.local.define(name, value)
		return
	}
	s.equValues[name] = value
}

// PutReference records a LOC label's address, local or ordinary.
func (s *SymbolTable) PutReference(name string, addr int32) {
	if isLocalSymbol(name) {
		s.local.define(name, addr)
		return
	}
	s.references[name] = addr
}

// BindFuture binds a previously-undefined ordinary symbol to an address
// allocated at END, for Knuth's future-reference rule.
func (s *SymbolTable) BindFuture(name string, addr int32) {
	s.references[name] = addr
}
