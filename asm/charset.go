package asm

// charset is MIX's 56-symbol character set, index = MIX character code.
// Index 10 (Δ) and 20/21 (Σ, Π) are Knuth's Greek-letter extensions;
// every other slot is its ordinary ASCII meaning.
var charset = [56]rune{
	' ', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I',
	'Δ', 'J', 'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R',
	'Σ', 'Π', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	'.', ',', '(', ')', '+', '-', '*', '/', '=', '$',
	'<', '>', '@', ';', ':', '\'',
}

var charToCode map[rune]byte

func init() {
	charToCode = make(map[rune]byte, len(charset))
	for code, r := range charset {
		charToCode[r] = byte(code)
	}
}

// CharCode returns r's MIX character code, or false if r isn't one of
// the 56 symbols.
func CharCode(r rune) (byte, bool) {
	code, ok := charToCode[r]
	return code, ok
}

// CharRune returns the character for a MIX character code, or a space
// for any code outside [0, 55].
func CharRune(code byte) rune {
	if int(code) >= len(charset) {
		return ' '
	}
	return charset[code]
}

// PackALF encodes up to five characters of text as ALF does: the MIX
// character codes of the first five runes, space-padded on the right.
func PackALF(text string) [5]byte {
	var codes [5]byte
	runes := []rune(text)
	for i := 0; i < 5; i++ {
		r := rune(' ')
		if i < len(runes) {
			r = runes[i]
		}
		code, ok := CharCode(r)
		if !ok {
			code, _ = CharCode(' ')
		}
		codes[i] = code
	}
	return codes
}
