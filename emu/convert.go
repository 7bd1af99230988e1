package emu

import (
	"github.com/mixvm/mix/vm"
	"github.com/mixvm/mix/word"
)

// digitCharCode is the MIX character-set code for decimal digit d
// (codes 30-39 in Knuth's table).
const digitCharCode = 30

// ConvertUnit implements NUM and CHAR: reinterpreting the ten bytes of
// (rA,rX) as decimal digits.
type ConvertUnit struct {
	regFile *vm.RegFile
}

// NewConvertUnit creates a new ConvertUnit connected to the given
// register file.
func NewConvertUnit(regFile *vm.RegFile) *ConvertUnit {
	return &ConvertUnit{regFile: regFile}
}

// Num implements NUM: the ten bytes of (rA,rX), each taken mod 10 and
// read most-significant-first, are combined into a decimal number and
// placed in rA's magnitude, mod 2^30. Neither register's sign changes,
// and rX is left untouched.
func (c *ConvertUnit) Num() {
	aBytes := bytesOfWord(c.regFile.A)
	xBytes := bytesOfWord(c.regFile.X)

	var n int64
	for _, b := range append(aBytes[:], xBytes[:]...) {
		n = n*10 + int64(b%10)
	}
	n %= 1 << 30

	sign := c.regFile.A.GetSign()
	c.regFile.A = word.FromSigned(int32(n)).SetSign(sign)
}

// Char implements CHAR: rA's value, taken as an unsigned decimal
// number of up to 10 digits, is spread across the bytes of (rA,rX) as
// the corresponding digit character codes, most-significant digit
// first. Both registers keep their original sign.
func (c *ConvertUnit) Char() {
	n := c.regFile.A.Signed()
	if n < 0 {
		n = -n
	}

	var digits [10]byte
	for i := 9; i >= 0; i-- {
		digits[i] = byte(n % 10)
		n /= 10
	}

	aSign, xSign := c.regFile.A.GetSign(), c.regFile.X.GetSign()
	c.regFile.A = wordFromCharDigits(aSign, digits[0:5])
	c.regFile.X = wordFromCharDigits(xSign, digits[5:10])
}

func wordFromCharDigits(sign int, digits []byte) word.Word {
	w := word.Zero(sign)
	for i, d := range digits {
		w = w.SetByte(i+1, digitCharCode+d)
	}
	return w
}

