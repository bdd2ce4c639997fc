package enc

import (
	"fmt"

	"github.com/pkg/errors"
)

// DecodeError is returned when the decoded string contains a codepoint which is not part of the
// alphabet. Index is the position of the codepoint in the input, counted in codepoints, not bytes.
type DecodeError struct {
	Codepoint rune
	Index     int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%c at index %d is not part of the alphabet", e.Codepoint, e.Index)
}

// AsDecodeError finds the first DecodeError in the error chain, if any.
func AsDecodeError(err error) (*DecodeError, bool) {
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
