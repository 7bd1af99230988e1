package asm

import "fmt"

// WTerm is one (expr, optional field) pair of a W-value: CON 1,2(0:2)
// parses to two WTerms.
type WTerm struct {
	Value    int32
	HasField bool
	Field    int32
}

// ExprParser evaluates the token stream of one ADDR field against a
// SymbolTable. Expressions are strict left-to-right with no operator
// precedence, per Knuth's MIXAL grammar: "1+2*3" is 9, not 7.
type ExprParser struct {
	tokens   []Token
	pos      int
	symbols  *SymbolTable
	lineNum  int32 // value "*" evaluates to
	lineAddr int32 // current location, for local-symbol direction
}

// NewExprParser returns a parser over tokens. lineNum is the value "*"
// resolves to; lineAddr is the location counter used to direct nB/nF
// local-symbol lookups (ordinarily the same value as lineNum).
func NewExprParser(symbols *SymbolTable, lineNum, lineAddr int32, tokens []Token) *ExprParser {
	return &ExprParser{symbols: symbols, lineNum: lineNum, lineAddr: lineAddr, tokens: tokens}
}

func (p *ExprParser) current() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *ExprParser) step() { p.pos++ }

// Exprs evaluates a full left-to-right expression, stopping at any
// token that can't continue one (a comma, a field-spec paren, or end of
// input). hasValue is false when there was nothing left to parse.
func (p *ExprParser) Exprs() (value int32, hasValue bool, err error) {
	if _, ok := p.current(); !ok {
		return 0, false, nil
	}

	left, err := p.unary()
	if err != nil {
		return 0, false, err
	}

	for {
		tok, ok := p.current()
		if !ok {
			return left, true, nil
		}
		switch tok.Tag {
		case TagComma, TagEqual, TagOpenParen, TagCloseParen:
			return left, true, nil
		}

		op := tok.Tag
		p.step()
		right, err := p.unary()
		if err != nil {
			return 0, true, err
		}
		left, err = applyBinary(op, left, right)
		if err != nil {
			return 0, true, err
		}
	}
}

// unary consumes an optional leading +/- and then a single atom.
func (p *ExprParser) unary() (int32, error) {
	tok, ok := p.current()
	if !ok {
		return 0, fmt.Errorf("syntax error: expected a value")
	}

	switch tok.Tag {
	case TagMinus:
		p.step()
		v, err := p.atom()
		return -v, err
	case TagPlus:
		p.step()
		return p.atom()
	default:
		return p.atom()
	}
}

func (p *ExprParser) atom() (int32, error) {
	tok, ok := p.current()
	if !ok {
		return 0, fmt.Errorf("syntax error: expected a value")
	}
	p.step()

	switch tok.Tag {
	case TagNumber:
		return tok.Num, nil
	case TagSymbols:
		return p.symbols.Get(tok.Symbols, p.lineAddr)
	case TagMultiply:
		return p.lineNum, nil
	default:
		return 0, fmt.Errorf("syntax error: unexpected token in expression")
	}
}

func applyBinary(op Tag, l, r int32) (int32, error) {
	switch op {
	case TagPlus:
		return l + r, nil
	case TagMinus:
		return l - r, nil
	case TagMultiply:
		return l * r, nil
	case TagDivide:
		if r == 0 {
			return 0, fmt.Errorf("division by zero in expression")
		}
		return l / r, nil
	case TagMod:
		// "//": (l * 2^30) / r truncated toward zero, MIX's shift-divide operator.
		if r == 0 {
			return 0, fmt.Errorf("division by zero in expression")
		}
		return int32((int64(l) << 30) / int64(r)), nil
	case TagFieldOp:
		return l*8 + r, nil
	default:
		return 0, fmt.Errorf("unsupported operator in expression")
	}
}

// fPart parses an optional "(expr)" field specifier.
func (p *ExprParser) fPart() (value int32, hasValue bool, err error) {
	tok, ok := p.current()
	if !ok || tok.Tag != TagOpenParen {
		return 0, false, nil
	}
	p.step()
	return p.Exprs()
}

// WValue parses a comma-separated list of (expr, optional field) pairs,
// the form CON and EQU addresses take.
func (p *ExprParser) WValue() ([]WTerm, error) {
	var acc []WTerm

	for {
		for {
			tok, ok := p.current()
			if !ok || (tok.Tag != TagComma && tok.Tag != TagOpenParen && tok.Tag != TagEqual) {
				break
			}
			p.step()
		}

		e, hasE, err := p.Exprs()
		if err != nil {
			return nil, err
		}

		var f int32
		hasF := false
		if hasE {
			f, hasF, err = p.fPart()
			if err != nil {
				return nil, err
			}
		}

		if !hasE && !hasF {
			return acc, nil
		}
		acc = append(acc, WTerm{Value: e, HasField: hasF, Field: f})

		tok, ok := p.current()
		if !ok {
			return acc, nil
		}
		switch tok.Tag {
		case TagEqual:
			return acc, nil
		case TagComma, TagCloseParen:
			p.step()
		default:
			return nil, fmt.Errorf("w-value syntax error")
		}
	}
}

// LiteralConstant parses a "=W-value=" literal, consuming the leading
// "=" if present (the trailing "=" is left for the caller, matching
// where it naturally falls at the end of the ADDR field).
func (p *ExprParser) LiteralConstant() ([]WTerm, error) {
	if tok, ok := p.current(); ok && tok.Tag == TagEqual {
		p.step()
	}
	return p.WValue()
}

// AIF parses an instruction operand's "A,I(F)" form.
func (p *ExprParser) AIF() (a int32, hasA bool, i int32, hasI bool, f int32, hasF bool, err error) {
	a, hasA, err = p.Exprs()
	if err != nil {
		return
	}

	if tok, ok := p.current(); ok && tok.Tag == TagComma {
		p.step()
		i, hasI, err = p.Exprs()
		if err != nil {
			return
		}
	}

	f, hasF, err = p.fPart()
	return
}
