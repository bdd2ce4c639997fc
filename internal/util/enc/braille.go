package enc

// brailleBase is the first codepoint of the Braille Patterns block. The block holds exactly 256
// patterns, one for every combination of the 8 dots, so byte `b` is simply U+2800+b.
const brailleBase = 0x2800

type brailleAlphabet struct{}

func (brailleAlphabet) Name() string {
	return "Braille"
}

func (brailleAlphabet) Symbol(b byte) rune {
	return brailleBase + rune(b)
}

func (brailleAlphabet) Index(r rune) (byte, bool) {
	if r < brailleBase || r >= brailleBase+AlphabetSize {
		return 0, false
	}
	return byte(r - brailleBase), true
}

// Braille encodes each byte into the braille pattern with the same dots raised.
var Braille = NewCodec('B', brailleAlphabet{})
