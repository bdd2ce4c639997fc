package enc

import (
	"fmt"
	"strings"

	"github.com/mtraver/base91"
	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base91Encoder when encoding, each group of 13 bits is converted into 2 radix-91 digits.
type Base91Encoder struct {
}

var Base91Encoding = &Base91Encoder{}

func (b *Base91Encoder) Name() string {
	return "Base91"
}

func (b *Base91Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base91Encoder) Code() byte {
	return 'X'
}

func (b *Base91Encoder) Encode(data []byte) string {
	return base91.StdEncoding.EncodeToString(data)
}

func (b *Base91Encoder) Decode(data string) ([]byte, error) {
	res, err := base91.StdEncoding.DecodeString(strings.TrimSpace(data))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return res, nil
}
