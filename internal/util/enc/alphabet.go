package enc

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// AlphabetSize is the number of symbols in every alphabet: one per byte value.
const AlphabetSize = 256

// Table is the ordered list of symbols of an alphabet. Byte value `i` is represented by entry `i`.
type Table [AlphabetSize]rune

// Alphabet provides 256 distinct codepoints, indexable by byte, and the reverse resolution from a
// codepoint back to its byte value.
type Alphabet interface {
	// Name is the user-friendly name of this alphabet
	Name() string

	// Symbol returns the codepoint representing the given byte value
	Symbol(b byte) rune

	// Index resolves a codepoint back to its byte value. The second return value is false if the
	// codepoint is not part of the alphabet.
	Index(r rune) (byte, bool)
}

// Symbols returns a copy of the full table of the given alphabet.
func Symbols(a Alphabet) Table {
	var t Table
	for i := range t {
		t[i] = a.Symbol(byte(i))
	}
	return t
}

// Validate checks that the alphabet is a bijection with byte values 0-255: every symbol is a valid
// codepoint, no symbol repeats and Index() resolves every symbol back to its own position.
func Validate(a Alphabet) error {
	seen := make(map[rune]int, AlphabetSize)
	for i := 0; i < AlphabetSize; i++ {
		r := a.Symbol(byte(i))
		if r == utf8.RuneError || !utf8.ValidRune(r) {
			return errors.Errorf("alphabet %v: symbol %U at position %d is not a valid codepoint", a.Name(), r, i)
		}
		if prev, ok := seen[r]; ok {
			return errors.Errorf("alphabet %v: symbol %c (%U) is used at positions %d and %d", a.Name(), r, r, prev, i)
		}
		seen[r] = i

		if b, ok := a.Index(r); !ok || int(b) != i {
			return errors.Errorf("alphabet %v: symbol %c (%U) at position %d resolves to %d (found=%v)", a.Name(), r, r, i, b, ok)
		}
	}
	return nil
}

// MustValidate panics if the alphabet is not a valid bijection. Broken alphabets are programming
// errors, so this is called when the alphabet is defined, never while decoding.
func MustValidate(a Alphabet) {
	if err := Validate(a); err != nil {
		panic(fmt.Sprintf("%+v", err))
	}
}

// LinearIndex scans the table for the given codepoint. This is the slowest way of resolving a
// symbol and is only used as a reference for the other lookups.
func LinearIndex(t *Table, r rune) (byte, bool) {
	for i, v := range t {
		if v == r {
			return byte(i), true
		}
	}
	return 0, false
}

// -------------------------------------------------------

// tableAlphabet is an alphabet defined at run time. The reverse map is built on first use.
type tableAlphabet struct {
	name    string
	symbols Table

	reverseInitialized sync.Once
	reverse            map[rune]byte
}

// NewAlphabet creates a new alphabet from the given table. It panics if the table contains the
// same symbol twice or an invalid codepoint.
func NewAlphabet(name string, symbols Table) Alphabet {
	a := &tableAlphabet{
		name:    name,
		symbols: symbols,
	}
	MustValidate(a)
	return a
}

func (a *tableAlphabet) Name() string {
	return a.name
}

func (a *tableAlphabet) Symbol(b byte) rune {
	return a.symbols[b]
}

func (a *tableAlphabet) Index(r rune) (byte, bool) {
	a.reverseInitialized.Do(a.setupReverse)
	b, ok := a.reverse[r]
	return b, ok
}

func (a *tableAlphabet) setupReverse() {
	reverse := make(map[rune]byte, AlphabetSize)
	for i, v := range a.symbols {
		reverse[v] = byte(i)
	}
	a.reverse = reverse
}
