// Package latency provides MIX instruction timing: Knuth's per-opcode
// cycle counts, simplified (per the specification) to drop the
// taken/not-taken split on jump instructions and the device-dependent
// term on I/O, both of which this implementation charges as a flat
// cycle count instead.
package latency

import (
	"encoding/json"
	"fmt"
	"os"
)

// TimingConfig holds the cycle counts for each instruction family.
// Every field defaults to Knuth's documented value for that family;
// DefaultTimingConfig is the only constructor normal callers need, but
// the JSON tags let a config file override individual families for
// experimentation.
type TimingConfig struct {
	// ArithmeticCycles is ADD/SUB's cycle count. Default: 2.
	ArithmeticCycles uint64 `json:"arithmetic_cycles"`

	// MultiplyCycles is MUL's cycle count. Default: 10.
	MultiplyCycles uint64 `json:"multiply_cycles"`

	// DivideCycles is DIV's cycle count. Default: 12.
	DivideCycles uint64 `json:"divide_cycles"`

	// LoadStoreCycles covers LD*, LD*N, ST*, STJ, STZ, and the
	// compare family. Default: 2.
	LoadStoreCycles uint64 `json:"load_store_cycles"`

	// ShiftCycles covers SLA/SRA/SLAX/SRAX/SLC/SRC. Default: 2.
	ShiftCycles uint64 `json:"shift_cycles"`

	// MoveBaseCycles and MoveCyclesPerWord together give MOVE's cost
	// as MoveBaseCycles + F*MoveCyclesPerWord. Defaults: 1, 2.
	MoveBaseCycles     uint64 `json:"move_base_cycles"`
	MoveCyclesPerWord  uint64 `json:"move_cycles_per_word"`

	// AddressCycles covers INC*/DEC*/ENT*/ENN*. Default: 1.
	AddressCycles uint64 `json:"address_cycles"`

	// JumpCycles covers every member of the jump family, taken or
	// not. Default: 1.
	JumpCycles uint64 `json:"jump_cycles"`

	// IOBaseCycles is IN/OUT/IOC/JBUS/JRED's fixed component.
	// Table.IOCycles adds a device transfer time T to it; the emulator
	// charges this figure alone, as devices carry no transfer time.
	// Default: 1.
	IOBaseCycles uint64 `json:"io_base_cycles"`

	// ConvertCycles covers NUM/CHAR. Default: 10 (one cycle per
	// digit of the ten-byte register pair).
	ConvertCycles uint64 `json:"convert_cycles"`

	// NopCycles is NOP's cycle count. Default: 1.
	NopCycles uint64 `json:"nop_cycles"`
}

// DefaultTimingConfig returns a TimingConfig with Knuth's documented
// cycle counts.
func DefaultTimingConfig() *TimingConfig {
	return &TimingConfig{
		ArithmeticCycles: 2,
		MultiplyCycles:   10,
		DivideCycles:     12,
		LoadStoreCycles:  2,
		ShiftCycles:      2,
		MoveBaseCycles:   1,
		MoveCyclesPerWord: 2,
		AddressCycles:    1,
		JumpCycles:       1,
		IOBaseCycles:     1,
		ConvertCycles:    10,
		NopCycles:        1,
	}
}

// LoadConfig loads a TimingConfig from a JSON file, starting from the
// defaults so a partial file only overrides the families it mentions.
func LoadConfig(path string) (*TimingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read timing config file: %w", err)
	}

	config := DefaultTimingConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse timing config: %w", err)
	}

	return config, nil
}

// SaveConfig writes a TimingConfig to a JSON file.
func (c *TimingConfig) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize timing config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write timing config file: %w", err)
	}

	return nil
}

// Validate checks that every cycle count is nonzero.
func (c *TimingConfig) Validate() error {
	fields := map[string]uint64{
		"arithmetic_cycles":    c.ArithmeticCycles,
		"multiply_cycles":      c.MultiplyCycles,
		"divide_cycles":        c.DivideCycles,
		"load_store_cycles":    c.LoadStoreCycles,
		"shift_cycles":         c.ShiftCycles,
		"move_base_cycles":     c.MoveBaseCycles,
		"move_cycles_per_word": c.MoveCyclesPerWord,
		"address_cycles":       c.AddressCycles,
		"jump_cycles":          c.JumpCycles,
		"io_base_cycles":       c.IOBaseCycles,
		"convert_cycles":       c.ConvertCycles,
		"nop_cycles":           c.NopCycles,
	}
	for name, v := range fields {
		if v == 0 {
			return fmt.Errorf("%s must be > 0", name)
		}
	}
	return nil
}

// Clone returns a deep copy of the TimingConfig.
func (c *TimingConfig) Clone() *TimingConfig {
	clone := *c
	return &clone
}
