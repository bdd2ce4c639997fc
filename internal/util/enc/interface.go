package enc

import (
	"strings"

	"github.com/pkg/errors"
)

type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)
}

var (
	_ Encoder = Emoji
	_ Encoder = Braille
	_ Encoder = RawEncoding
)

// Alphabets lists the 256-symbol codecs, the canonical Emoji alphabet first.
func Alphabets() []*Codec {
	return []*Codec{
		Emoji,
		Braille,
	}
}

// Encoders lists every known encoder: the alphabets followed by the plain text formats.
func Encoders() []Encoder {
	res := make([]Encoder, 0, 10)
	for _, c := range Alphabets() {
		res = append(res, c)
	}
	return append(res,
		RawEncoding,
		HexEncoding,
		Base32Encoding,
		Base64Encoding,
		Base64uEncoding,
		Base85Encoding,
		Base91Encoding,
		Base128Encoding,
	)
}

// FromCode finds the encoder with the given one-letter code.
func FromCode(code byte) (Encoder, error) {
	for _, e := range Encoders() {
		if e.Code() == code {
			return e, nil
		}
	}
	return nil, errors.Errorf("Unknown encoder code: %q", code)
}

// FromName finds the encoder by its name. Names are not case-sensitive.
func FromName(name string) (Encoder, error) {
	for _, e := range Encoders() {
		if strings.EqualFold(e.Name(), name) {
			return e, nil
		}
	}
	return nil, errors.Errorf("Unknown encoder: %v", name)
}

// AlphabetFromName finds the 256-symbol codec by its name. Names are not case-sensitive.
func AlphabetFromName(name string) (*Codec, error) {
	for _, c := range Alphabets() {
		if strings.EqualFold(c.Name(), name) {
			return c, nil
		}
	}
	return nil, errors.Errorf("Unknown alphabet: %v", name)
}
