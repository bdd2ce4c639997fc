package util

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ReadInputsFromStdin(t *testing.T) {
	inputs, err := ReadInputs(nil, strings.NewReader("hi juan!"))
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	require.Equal(t, "stdin", inputs[0].Name)
	require.Equal(t, []byte("hi juan!"), inputs[0].Data)
}

func Test_ReadInputsFromFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "emojicode")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "a.txt")
	require.NoError(t, ioutil.WriteFile(file, []byte("yes mani !"), 0644))

	inputs, err := ReadInputs([]string{file, filepath.Join(dir, "missing.txt"), StdStream}, strings.NewReader("x"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing.txt")

	require.Len(t, inputs, 2)
	require.Equal(t, file, inputs[0].Name)
	require.Equal(t, []byte("yes mani !"), inputs[0].Data)
	require.Equal(t, "stdin", inputs[1].Name)
}

func Test_OpenOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := OpenOutput(StdStream, buf)
	require.NoError(t, err)
	_, err = w.Write([]byte("🚀"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, "🚀", buf.String())

	dir, err := ioutil.TempDir("", "emojicode")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "out.txt")
	w, err = OpenOutput(file, buf)
	require.NoError(t, err)
	_, err = w.Write([]byte("🪐"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := ioutil.ReadFile(file)
	require.NoError(t, err)
	require.Equal(t, "🪐", string(data))
}
