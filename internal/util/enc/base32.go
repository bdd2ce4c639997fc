package enc

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var stdBase32Encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// -------------------------------------------------------

// Base32Encoder encodes 5 bytes to 8 characters. Good because it's not case-sensitive.
type Base32Encoder struct {
}

var Base32Encoding = &Base32Encoder{}

func (b *Base32Encoder) Name() string {
	return "Base32"
}

func (b *Base32Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base32Encoder) Code() byte {
	return 'T'
}

func (b *Base32Encoder) Encode(data []byte) string {
	return stdBase32Encoding.EncodeToString(data)
}

// Decode accepts lower case input and trailing padding, as produced by other tools.
func (b *Base32Encoder) Decode(data string) ([]byte, error) {
	data = strings.TrimRight(strings.ToUpper(strings.TrimSpace(data)), "=")
	res, err := stdBase32Encoding.DecodeString(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return res, nil
}
