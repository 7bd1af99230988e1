package asm

import (
	"fmt"
	"strings"

	"github.com/mixvm/mix/insts"
	"github.com/mixvm/mix/vm"
	"github.com/mixvm/mix/word"
)

// Image is the result of assembling a MIXAL program: a sparse map of
// memory cells plus the entry address END names.
type Image struct {
	Words      map[int32]word.Word
	EntryPoint int32
}

// LoadInto writes every word of the image into mem.
func (img *Image) LoadInto(mem *vm.Memory) error {
	for addr, w := range img.Words {
		if err := mem.Set(int(addr), w); err != nil {
			return err
		}
	}
	return nil
}

type patch struct {
	addr   int32
	i      byte
	c      byte
	f      word.FieldSpec
	symbol string
}

type literalConst struct {
	name  string
	value word.Word
}

// Assembler turns MIXAL source text into an Image: a location counter
// pass that fixes every label's address, followed by an emission pass
// that evaluates operands against the now-complete symbol table and
// defers literal constants and genuinely undefined symbols to a
// future-reference patch applied at END.
type Assembler struct{}

// NewAssembler returns a ready-to-use Assembler.
func NewAssembler() *Assembler { return &Assembler{} }

type sourceLine struct {
	line Line
	loc  int32
}

// Assemble assembles source into an Image, or returns the first syntax,
// symbol-resolution, or out-of-range error encountered.
func (a *Assembler) Assemble(source string) (*Image, error) {
	lexer := NewLexer()
	symbols := NewSymbolTable()

	var body []sourceLine
	var endTokens []Token
	haveEnd := false
	loc := int32(0)

	for lineNo, raw := range strings.Split(source, "\n") {
		if lexer.IsComment(raw) {
			continue
		}
		line := lexer.SplitLine(raw)
		if line.Op == "" {
			continue
		}

		switch line.Op {
		case "EQU":
			val, err := a.evalWValueOne(symbols, loc, lexer.TokenizeAddress(line.AddrText))
			if err != nil {
				return nil, fmt.Errorf("line %d: EQU: %w", lineNo+1, err)
			}
			if line.Loc != "" {
				symbols.PutEqu(line.Loc, val.Signed())
			}

		case "ORIG":
			if line.Loc != "" {
				symbols.PutReference(line.Loc, loc)
			}
			val, err := a.evalWValueOne(symbols, loc, lexer.TokenizeAddress(line.AddrText))
			if err != nil {
				return nil, fmt.Errorf("line %d: ORIG: %w", lineNo+1, err)
			}
			loc = val.Signed()

		case "END":
			endTokens = lexer.TokenizeAddress(line.AddrText)
			haveEnd = true

		default:
			if line.Loc != "" {
				symbols.PutReference(line.Loc, loc)
			}
			body = append(body, sourceLine{line: line, loc: loc})
			loc++
		}

		if haveEnd {
			break
		}
	}

	if !haveEnd {
		return nil, fmt.Errorf("program has no END line")
	}

	words := make(map[int32]word.Word, len(body))
	var patches []patch
	var literals []literalConst
	futureRefs := make(map[string]bool)

	for _, sl := range body {
		line := sl.line
		switch line.Op {
		case "CON":
			terms, err := NewExprParser(symbols, sl.loc, sl.loc, lexer.TokenizeAddress(line.AddrText)).WValue()
			if err != nil {
				return nil, fmt.Errorf("CON at %d: %w", sl.loc, err)
			}
			words[sl.loc] = buildWValue(terms)

		case "ALF":
			codes := PackALF(line.AddrText)
			w := word.Zero(0)
			for i, c := range codes {
				w = w.SetByte(i+1, c)
			}
			words[sl.loc] = w

		default:
			c, defaultF, ok := insts.LookupMnemonic(line.Op)
			if !ok {
				return nil, fmt.Errorf("unsupported operation %q at %d", line.Op, sl.loc)
			}

			tokens := lexer.TokenizeAddress(line.AddrText)
			if len(tokens) > 0 && tokens[0].Tag == TagEqual {
				terms, err := NewExprParser(symbols, sl.loc, sl.loc, tokens).LiteralConstant()
				if err != nil {
					return nil, fmt.Errorf("literal at %d: %w", sl.loc, err)
				}
				name := fmt.Sprintf("=%d", len(literals))
				literals = append(literals, literalConst{name: name, value: buildWValue(terms)})
				words[sl.loc] = word.EncodeInstruction(0, 0, c, defaultF)
				patches = append(patches, patch{addr: sl.loc, i: 0, c: c, f: defaultF, symbol: name})
				continue
			}

			p := NewExprParser(symbols, sl.loc, sl.loc, tokens)
			aVal, hasA, iVal, hasI, fVal, hasF, err := p.AIF()
			if err != nil {
				if sym, bare := bareSymbol(tokens); bare && !symbols.IsDefined(sym) {
					futureRefs[sym] = true
					words[sl.loc] = word.EncodeInstruction(0, 0, c, defaultF)
					patches = append(patches, patch{addr: sl.loc, i: 0, c: c, f: defaultF, symbol: sym})
					continue
				}
				return nil, fmt.Errorf("%s at %d: %w", line.Op, sl.loc, err)
			}

			i := byte(0)
			if hasI {
				i = byte(iVal)
			}
			f := defaultF
			if hasF {
				f = word.FieldSpecFromByte(byte(fVal))
			}
			a := int32(0)
			if hasA {
				a = aVal
			}
			words[sl.loc] = word.EncodeInstruction(a, i, c, f)
		}
	}

	nextLoc := loc
	for _, lit := range literals {
		words[nextLoc] = lit.value
		symbols.BindFuture(lit.name, nextLoc)
		nextLoc++
	}
	for name := range futureRefs {
		if symbols.IsDefined(name) {
			continue
		}
		words[nextLoc] = word.Zero(0)
		symbols.BindFuture(name, nextLoc)
		nextLoc++
	}
	if nextLoc > vm.MemSize {
		return nil, fmt.Errorf("assembly overflowed memory: program needs %d cells", nextLoc)
	}

	for _, p := range patches {
		addr, err := symbols.Get(p.symbol, p.addr)
		if err != nil {
			return nil, fmt.Errorf("unresolved reference %q: %w", p.symbol, err)
		}
		words[p.addr] = word.EncodeInstruction(addr, p.i, p.c, p.f)
	}

	entry := int32(0)
	if len(endTokens) > 0 {
		v, hasV, err := NewExprParser(symbols, loc, loc, endTokens).Exprs()
		if err != nil {
			return nil, fmt.Errorf("END: %w", err)
		}
		if hasV {
			entry = v
		}
	}

	return &Image{Words: words, EntryPoint: entry}, nil
}

// evalWValueOne evaluates a W-value expected to produce exactly one
// (expr, field) term, as EQU and ORIG both require.
func (a *Assembler) evalWValueOne(symbols *SymbolTable, loc int32, tokens []Token) (word.Word, error) {
	terms, err := NewExprParser(symbols, loc, loc, tokens).WValue()
	if err != nil {
		return word.Word{}, err
	}
	if len(terms) == 0 {
		return word.Word{}, fmt.Errorf("missing value")
	}
	return buildWValue(terms), nil
}

// buildWValue folds a W-value's (expr, field) terms into a single word,
// starting from +0 and overwriting each named field left to right.
func buildWValue(terms []WTerm) word.Word {
	w := word.Zero(0)
	for _, t := range terms {
		f := word.NewFieldSpec(0, 5)
		if t.HasField {
			f = word.FieldSpecFromByte(byte(t.Field))
		}
		w = w.SetField(f, word.FromSigned(t.Value))
	}
	return w
}

// bareSymbol reports whether tokens is a single bare symbol reference,
// the only shape a forward reference to a not-yet-defined label can
// take for Knuth's future-reference rule to apply automatically.
func bareSymbol(tokens []Token) (string, bool) {
	if len(tokens) == 1 && tokens[0].Tag == TagSymbols {
		return tokens[0].Symbols, true
	}
	return "", false
}
