package encode

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bokysan/emojicode/internal/util"
	"github.com/stretchr/testify/require"
)

func Test_EncodeRaw(t *testing.T) {
	cmd := NewCommand()
	out := &bytes.Buffer{}

	err := cmd.Run([]util.Input{
		{Name: "first", Data: []byte("hi juan!")},
		{Name: "second", Data: []byte("yes mani !")},
	}, out)
	require.NoError(t, err)
	require.Equal(t, "😴🌟😅😬🤘🤤😻👏\n🏃✋🌈😅🌷🤤😻🌟😅👏\n", out.String())
}

func Test_EncodeInputFormats(t *testing.T) {
	var tests = []struct {
		format string
		input  string
	}{
		{"hex", "6869"},
		{"base64", "aGk="},
		{"Base32", "NBUQ"},
		{"braille", "⡨⡩"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cmd := NewCommand()
			cmd.InputFormat = tt.format
			out := &bytes.Buffer{}

			require.NoError(t, cmd.Run([]util.Input{{Name: "stdin", Data: []byte(tt.input)}}, out))
			require.Equal(t, "😴🌟\n", out.String())
		})
	}
}

func Test_EncodeReadsItsOwnOutput(t *testing.T) {
	first := &bytes.Buffer{}
	require.NoError(t, NewCommand().Run([]util.Input{{Name: "stdin", Data: []byte("hi")}}, first))
	require.Equal(t, "😴🌟\n", first.String())

	cmd := NewCommand()
	cmd.InputFormat = "emoji"
	cmd.Alphabet = "braille"
	out := &bytes.Buffer{}

	require.NoError(t, cmd.Run([]util.Input{{Name: "stdin", Data: first.Bytes()}}, out))
	require.Equal(t, "⡨⡩\n", out.String())

	out.Reset()
	require.NoError(t, cmd.Run([]util.Input{{Name: "stdin", Data: []byte("😴🌟\r\n")}}, out))
	require.Equal(t, "⡨⡩\n", out.String())
}

func Test_EncodeBraille(t *testing.T) {
	cmd := NewCommand()
	cmd.Alphabet = "braille"
	out := &bytes.Buffer{}

	require.NoError(t, cmd.Run([]util.Input{{Name: "stdin", Data: []byte{0x00, 0x01, 0xff}}}, out))
	require.Equal(t, "⠀⠁⣿\n", out.String())
}

func Test_EncodeInvalidInputContinues(t *testing.T) {
	cmd := NewCommand()
	cmd.InputFormat = "hex"
	out := &bytes.Buffer{}

	err := cmd.Run([]util.Input{
		{Name: "broken", Data: []byte("xyz")},
		{Name: "good", Data: []byte("6869")},
	}, out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Could not read broken as Hex")
	require.Equal(t, "😴🌟\n", out.String())
}

func Test_EncodeUnknownAlphabet(t *testing.T) {
	cmd := NewCommand()
	cmd.Alphabet = "klingon"
	require.Error(t, cmd.Run(nil, &bytes.Buffer{}))

	cmd = NewCommand()
	cmd.InputFormat = "base1000"
	require.Error(t, cmd.Run(nil, &bytes.Buffer{}))
}

func Test_EncodeExecute(t *testing.T) {
	dir, err := ioutil.TempDir("", "emojicode")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	output := filepath.Join(dir, "out.txt")
	cmd := NewCommand()
	cmd.stdin = strings.NewReader("hi juan!")
	cmd.Output = output

	require.NoError(t, cmd.Execute(nil))

	data, err := ioutil.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, "😴🌟😅😬🤘🤤😻👏\n", string(data))
}
