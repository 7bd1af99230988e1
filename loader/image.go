// Package loader reads a pre-assembled binary image and loads it into
// memory ready for execution.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mixvm/mix/vm"
	"github.com/mixvm/mix/word"
)

// Cell is one loaded memory record: either a plain word or an encoded
// instruction word, keyed by address.
type Cell struct {
	Addr int32
	Word word.Word
}

// Program is a parsed binary image ready for loading into the
// emulator's memory.
type Program struct {
	// EntryPoint is the address execution should begin at.
	EntryPoint int32
	// Cells are every addressed word the image defines, in file order.
	Cells []Cell
}

// Load reads a binary image from path. Each non-blank line is a
// comma-separated record of one of four shapes:
//
//	addr                       sets the entry point
//	addr, signed_value         writes FromSigned(signed_value) to M[addr]
//	addr, AA, I, F, C          writes an encoded instruction to M[addr]
//	addr, sign, b1..b5         writes the exact byte vector to M[addr]
func Load(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return parse(f)
}

func parse(r io.Reader) (*Program, error) {
	prog := &Program{}
	haveEntry := false

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "*") {
			continue
		}

		fields := strings.Split(line, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		nums := make([]int64, len(fields))
		for i, field := range fields {
			n, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: malformed record %q: %w", lineNo, line, err)
			}
			nums[i] = n
		}

		addr := int32(nums[0])
		if addr < 0 || addr >= vm.MemSize {
			return nil, fmt.Errorf("line %d: address %d out of range", lineNo, addr)
		}

		switch len(nums) {
		case 1:
			prog.EntryPoint = addr
			haveEntry = true

		case 2:
			prog.Cells = append(prog.Cells, Cell{Addr: addr, Word: word.FromSigned(int32(nums[1]))})

		case 5:
			aa := int32(nums[1])
			i := byte(nums[2])
			f := word.FieldSpecFromByte(byte(nums[3]))
			c := byte(nums[4])
			prog.Cells = append(prog.Cells, Cell{Addr: addr, Word: word.EncodeInstruction(aa, i, c, f)})

		case 7:
			sign := 0
			if nums[1] < 0 {
				sign = -1
			}
			w := word.Zero(sign)
			for b := 0; b < 5; b++ {
				w = w.SetByte(b+1, byte(nums[2+b]))
			}
			prog.Cells = append(prog.Cells, Cell{Addr: addr, Word: w})

		default:
			return nil, fmt.Errorf("line %d: record has %d fields, want 1, 2, 5 or 7", lineNo, len(nums))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if !haveEntry {
		prog.EntryPoint = 0
	}

	return prog, nil
}

// LoadInto writes every cell of prog into mem.
func (p *Program) LoadInto(mem *vm.Memory) error {
	for _, cell := range p.Cells {
		if err := mem.Set(int(cell.Addr), cell.Word); err != nil {
			return err
		}
	}
	return nil
}
