package enc

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters
type Base64Encoder struct {
}

var Base64Encoding = &Base64Encoder{}

func (b *Base64Encoder) Name() string {
	return "Base64"
}

func (b *Base64Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64Encoder) Code() byte {
	return 'S'
}

func (b *Base64Encoder) Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func (b *Base64Encoder) Decode(data string) ([]byte, error) {
	return decodeBase64(base64.RawStdEncoding, data)
}

// decodeBase64 strips the padding so that both padded and unpadded input is accepted.
func decodeBase64(e *base64.Encoding, data string) ([]byte, error) {
	res, err := e.DecodeString(strings.TrimRight(strings.TrimSpace(data), "="))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return res, nil
}
