package enc

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// HexEncoder encodes 1 byte to 2 characters. Decoding accepts both upper and lower case.
type HexEncoder struct {
}

var HexEncoding = &HexEncoder{}

func (b *HexEncoder) Name() string {
	return "Hex"
}

func (b *HexEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *HexEncoder) Code() byte {
	return 'H'
}

func (b *HexEncoder) Encode(data []byte) string {
	return hex.EncodeToString(data)
}

func (b *HexEncoder) Decode(data string) ([]byte, error) {
	res, err := hex.DecodeString(strings.TrimSpace(data))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return res, nil
}
