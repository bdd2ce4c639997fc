package decode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bokysan/emojicode/internal/util"
	"github.com/bokysan/emojicode/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func Test_DecodeRaw(t *testing.T) {
	cmd := NewCommand()
	out := &bytes.Buffer{}

	err := cmd.Run([]util.Input{
		{Name: "first", Data: []byte("😴🌟😅😬🤘🤤😻👏\n")},
		{Name: "second", Data: []byte("🏃✋🌈😅🌷🤤😻🌟😅👏\r\n")},
	}, out)
	require.NoError(t, err)
	require.Equal(t, "hi juan!yes mani !", out.String())
}

func Test_DecodeOutputFormats(t *testing.T) {
	var tests = []struct {
		format   string
		expected string
	}{
		{"hex", "6869"},
		{"base64", "aGk="},
		{"emoji", "😴🌟"},
		{"braille", "⡨⡩"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cmd := NewCommand()
			cmd.OutputFormat = tt.format
			out := &bytes.Buffer{}

			require.NoError(t, cmd.Run([]util.Input{{Name: "stdin", Data: []byte("😴🌟")}}, out))
			require.Equal(t, tt.expected+"\n", out.String())
		})
	}
}

func Test_DecodeInvalidSymbol(t *testing.T) {
	cmd := NewCommand()
	out := &bytes.Buffer{}

	err := cmd.Run([]util.Input{
		{Name: "broken", Data: []byte("😴🌟x😅")},
		{Name: "good", Data: []byte("😴🌟")},
	}, out)
	require.Error(t, err)
	require.Equal(t, "hi", out.String())

	merr, ok := err.(*multierror.Error)
	require.True(t, ok, "Expected a multierror, got %T", err)
	require.Len(t, merr.Errors, 1)
	require.True(t, strings.HasPrefix(merr.Errors[0].Error(), "Could not decode broken: "))

	de, ok := enc.AsDecodeError(merr.Errors[0])
	require.True(t, ok)
	require.Equal(t, 'x', de.Codepoint)
	require.Equal(t, 2, de.Index)
}

func Test_DecodeWrongAlphabet(t *testing.T) {
	cmd := NewCommand()
	cmd.Alphabet = "braille"

	err := cmd.Run([]util.Input{{Name: "stdin", Data: []byte("😴")}}, &bytes.Buffer{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "at index 0 is not part of the alphabet")
}

func Test_DecodeEmpty(t *testing.T) {
	cmd := NewCommand()
	cmd.OutputFormat = "hex"
	out := &bytes.Buffer{}

	require.NoError(t, cmd.Run([]util.Input{{Name: "stdin", Data: []byte("\n")}}, out))
	require.Equal(t, "\n", out.String())
}

func Test_DecodeExecuteFromStdin(t *testing.T) {
	cmd := NewCommand()
	out := &bytes.Buffer{}
	cmd.stdin = strings.NewReader("🏃✋🌈😅🌷🤤😻🌟😅👏\n")
	cmd.stdout = out

	require.NoError(t, cmd.Execute(nil))
	require.Equal(t, "yes mani !", out.String())
}
