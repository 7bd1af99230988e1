// Package device models MIX's input/output units: the twenty-one
// units 0-20 (tape, disk, card reader/punch, line printer, paper
// tape, console) that IN, OUT, IOC, JBUS, and JRED address by unit
// number.
package device

import "github.com/mixvm/mix/word"

// Kind distinguishes a device's physical block size and semantics.
type Kind int

// Device kinds, each with its own block size in words.
const (
	KindTape   Kind = iota // units 0-7, block size 100
	KindDisk               // units 8-15, block size 100
	KindReader             // unit 16, block size 16
	KindPunch              // unit 17, block size 16
	KindPrinter            // unit 18, block size 24
	KindPaperTape          // unit 19, block size 14
	KindConsole            // unit 20, block size 1
)

// BlockSize returns the number of words a single IN/OUT transfer to or
// from a device of this kind moves.
func (k Kind) BlockSize() int {
	switch k {
	case KindTape, KindDisk:
		return 100
	case KindReader, KindPunch:
		return 16
	case KindPrinter:
		return 24
	case KindPaperTape:
		return 14
	case KindConsole:
		return 1
	default:
		return 1
	}
}

// Device is one addressable I/O unit. Every device is always ready in
// this implementation (Busy always reports false), since the
// specification carries no timing model beyond per-instruction cycle
// counts; JBUS/JRED are implemented against that invariant rather than
// against genuine device latency.
type Device struct {
	Kind Kind
	data []word.Word
	pos  int
}

// New creates a device of the given kind with an empty backing store.
func New(kind Kind) *Device {
	return &Device{Kind: kind}
}

// Busy reports whether the device is mid-transfer. It is always false:
// every transfer in this implementation completes synchronously.
func (d *Device) Busy() bool {
	return false
}

// Load seeds the device's backing store, e.g. with a card deck or tape
// image read from the host filesystem before the program starts.
func (d *Device) Load(words []word.Word) {
	d.data = words
	d.pos = 0
}

// Read pulls one block of words from the device, starting where the
// previous Read left off (Write does not move this position),
// zero-filling past the end of the backing store.
func (d *Device) Read() []word.Word {
	block := make([]word.Word, d.Kind.BlockSize())
	for i := range block {
		if d.pos < len(d.data) {
			block[i] = d.data[d.pos]
		}
		d.pos++
	}
	return block
}

// Write appends one block of words to the device's backing store (the
// printer, punch, and tape/disk devices all accept this uniformly).
func (d *Device) Write(block []word.Word) {
	d.data = append(d.data, block...)
}

// Contents returns everything written to the device so far, in order.
func (d *Device) Contents() []word.Word {
	return d.data
}

// Set is the full complement of units 0-20 a machine is wired to. A
// Set built by NewSet has every standard unit present and idle.
type Set struct {
	devices map[int]*Device
}

// NewSet builds the standard MIX device complement: tape units 0-7,
// disk units 8-15, card reader 16, card punch 17, line printer 18,
// paper tape 19, and console 20.
func NewSet() *Set {
	s := &Set{devices: make(map[int]*Device)}
	for u := 0; u <= 7; u++ {
		s.devices[u] = New(KindTape)
	}
	for u := 8; u <= 15; u++ {
		s.devices[u] = New(KindDisk)
	}
	s.devices[16] = New(KindReader)
	s.devices[17] = New(KindPunch)
	s.devices[18] = New(KindPrinter)
	s.devices[19] = New(KindPaperTape)
	s.devices[20] = New(KindConsole)
	return s
}

// Get returns the device at unit, or nil if no such unit is wired.
func (s *Set) Get(unit int) *Device {
	return s.devices[unit]
}
