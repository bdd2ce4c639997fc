package enc

import (
	"fmt"

	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
)

// -------------------------------------------------------

// Base128Encoder encodes 7 bytes to 8 characters. The output is valid UTF-8 but not printable.
type Base128Encoder struct {
}

var Base128Encoding = &Base128Encoder{}

func (b *Base128Encoder) Name() string {
	return "Base128"
}

func (b *Base128Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base128Encoder) Code() byte {
	return 'V'
}

func (b *Base128Encoder) Encode(src []byte) string {
	dst := make([]byte, base128.EncodedLen(len(src)))
	base128.Encode(dst, src)
	return string(dst)
}

func (b *Base128Encoder) Decode(data string) ([]byte, error) {
	res, err := base128.DecodeString(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return res, nil
}
