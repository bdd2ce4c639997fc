package enc

import (
	"fmt"
	"unicode/utf8"
)

// Codec encodes every byte into exactly one symbol of its alphabet.
type Codec struct {
	alphabet Alphabet
	code     byte
}

// NewCodec creates a codec for the given alphabet. The code is the short (one-letter) identifier
// used by FromCode. It panics if the alphabet is not a valid bijection.
func NewCodec(code byte, alphabet Alphabet) *Codec {
	MustValidate(alphabet)
	return &Codec{
		alphabet: alphabet,
		code:     code,
	}
}

func (c *Codec) Name() string {
	return c.alphabet.Name()
}

func (c *Codec) String() string {
	return fmt.Sprintf("%v(%v)", c.Name(), string(c.Code()))
}

func (c *Codec) Code() byte {
	return c.code
}

// Alphabet returns the alphabet this codec is built on.
func (c *Codec) Alphabet() Alphabet {
	return c.alphabet
}

// EncodedLen returns the length in bytes of the UTF-8 encoding of src. Symbols of an alphabet may
// have different widths, so this is not a simple multiple of len(src).
func (c *Codec) EncodedLen(src []byte) int {
	n := 0
	for _, v := range src {
		n += utf8.RuneLen(c.alphabet.Symbol(v))
	}
	return n
}

// DecodedLen returns the number of bytes a successful decode of s produces.
func (c *Codec) DecodedLen(s string) int {
	return utf8.RuneCountInString(s)
}

// AppendEncode appends the encoded src to dst and returns the extended buffer.
func (c *Codec) AppendEncode(dst, src []byte) []byte {
	n := len(dst)
	need := n + c.EncodedLen(src)
	if cap(dst) < need {
		grown := make([]byte, n, need)
		copy(grown, dst)
		dst = grown
	}
	dst = dst[:need]

	for _, v := range src {
		n += utf8.EncodeRune(dst[n:], c.alphabet.Symbol(v))
	}
	return dst
}

// Encode maps every byte of src to its symbol. It never fails.
func (c *Codec) Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}
	return string(c.AppendEncode(nil, src))
}

// Decode maps every codepoint of s back to its byte value. Decoding stops at the first codepoint
// which is not part of the alphabet and returns a *DecodeError. Invalid UTF-8 sequences are
// reported as utf8.RuneError, which is never part of an alphabet.
func (c *Codec) Decode(s string) ([]byte, error) {
	dst := make([]byte, 0, c.DecodedLen(s))
	i := 0
	for _, r := range s {
		b, ok := c.alphabet.Index(r)
		if !ok {
			return nil, &DecodeError{
				Codepoint: r,
				Index:     i,
			}
		}
		dst = append(dst, b)
		i++
	}
	return dst, nil
}
