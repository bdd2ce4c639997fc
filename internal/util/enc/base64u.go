package enc

import (
	"encoding/base64"
	"fmt"
)

// -------------------------------------------------------

// Base64uEncoder encodes 3 bytes to 4 characters and uses the URL and file name safe character map.
type Base64uEncoder struct {
}

var Base64uEncoding = &Base64uEncoder{}

func (b *Base64uEncoder) Name() string {
	return "Base64u"
}

func (b *Base64uEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64uEncoder) Code() byte {
	return 'U'
}

func (b *Base64uEncoder) Encode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func (b *Base64uEncoder) Decode(data string) ([]byte, error) {
	return decodeBase64(base64.RawURLEncoding, data)
}
