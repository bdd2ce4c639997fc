package enc

import (
	"math/rand"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

var goldenVectors = []struct {
	raw     string
	encoded string
}{
	{"hi juan!", "😴🌟😅😬🤘🤤😻👏"},
	{"yes mani !", "🏃✋🌈😅🌷🤤😻🌟😅👏"},
}

func Test_EmojiGoldenVectors(t *testing.T) {
	for _, v := range goldenVectors {
		require.Equal(t, v.encoded, Emoji.Encode([]byte(v.raw)), "Alphabet order changed for %q", v.raw)

		decoded, err := Emoji.Decode(v.encoded)
		require.NoError(t, err)
		require.Equal(t, []byte(v.raw), decoded)
	}
}

func Test_EmojiFirstSymbols(t *testing.T) {
	require.Equal(t, '\U0001F680', Emoji.Alphabet().Symbol(0))
	require.Equal(t, '\U0001FA90', Emoji.Alphabet().Symbol(1))
	require.Equal(t, '\U0001F942', Emoji.Alphabet().Symbol(255))
}

func Test_SingleByteRoundTrip(t *testing.T) {
	for _, c := range Alphabets() {
		for i := 0; i < AlphabetSize; i++ {
			org := []byte{byte(i)}
			encoded := c.Encode(org)
			require.Equal(t, 1, utf8.RuneCountInString(encoded))

			decoded, err := c.Decode(encoded)
			require.NoErrorf(t, err, "%v could not decode byte %d", c, i)
			require.Equal(t, org, decoded)
		}
	}
}

func Test_RandomRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(256))
	for _, c := range Alphabets() {
		for i := 0; i < 100; i++ {
			org := make([]byte, rnd.Intn(512))
			rnd.Read(org)

			encoded := c.Encode(org)
			require.Len(t, encoded, c.EncodedLen(org))
			require.Equal(t, len(org), c.DecodedLen(encoded))

			decoded, err := c.Decode(encoded)
			require.NoError(t, err)
			require.Equal(t, org, decoded)
		}
	}
}

func Test_EmptyInput(t *testing.T) {
	for _, c := range Alphabets() {
		require.Equal(t, "", c.Encode(nil))
		require.Equal(t, "", c.Encode([]byte{}))

		decoded, err := c.Decode("")
		require.NoError(t, err)
		require.Empty(t, decoded)
	}
}

func Test_EncodedLenIsNotByteCount(t *testing.T) {
	// U+2604 takes 3 bytes in UTF-8, U+1F680 takes 4
	require.Equal(t, 7, Emoji.EncodedLen([]byte{0, 2}))
	require.Equal(t, 0, Emoji.EncodedLen(nil))
	require.Equal(t, 3*AlphabetSize, Braille.EncodedLen(make([]byte, AlphabetSize)))
}

func Test_AppendEncode(t *testing.T) {
	dst := []byte("prefix:")
	dst = Emoji.AppendEncode(dst, []byte("hi juan!"))
	require.Equal(t, "prefix:"+goldenVectors[0].encoded, string(dst))

	// Enough capacity: the buffer is reused
	buf := make([]byte, 0, 64)
	out := Emoji.AppendEncode(buf, []byte{0})
	require.Equal(t, "🚀", string(out))
	require.Equal(t, &buf[:1][0], &out[0])
}

func Test_DecodeErrorLocality(t *testing.T) {
	encoded := []rune(goldenVectors[0].encoded)
	for k := 0; k <= len(encoded); k++ {
		input := make([]rune, 0, len(encoded)+1)
		input = append(input, encoded[:k]...)
		input = append(input, 'x')
		input = append(input, encoded[k:]...)

		decoded, err := Emoji.Decode(string(input))
		require.Error(t, err)
		require.Nil(t, decoded)

		de, ok := err.(*DecodeError)
		require.True(t, ok, "Expected *DecodeError, got %T", err)
		require.Equal(t, 'x', de.Codepoint)
		require.Equal(t, k, de.Index, "Index must count codepoints, not bytes")
	}
}

func Test_DecodeStopsAtFirstError(t *testing.T) {
	_, err := Emoji.Decode("🚀a🚀b")
	de, ok := AsDecodeError(err)
	require.True(t, ok)
	require.Equal(t, 'a', de.Codepoint)
	require.Equal(t, 1, de.Index)
}

func Test_DecodeInvalidUtf8(t *testing.T) {
	_, err := Emoji.Decode("🚀\xff")
	de, ok := AsDecodeError(err)
	require.True(t, ok)
	require.Equal(t, utf8.RuneError, de.Codepoint)
	require.Equal(t, 1, de.Index)
}

func Test_DecodeErrorMessage(t *testing.T) {
	err := &DecodeError{Codepoint: 'a', Index: 3}
	require.Equal(t, "a at index 3 is not part of the alphabet", err.Error())

	_, err2 := Braille.Decode("⠁⠂🚀")
	require.EqualError(t, err2, "🚀 at index 2 is not part of the alphabet")
}

func Test_AsDecodeError(t *testing.T) {
	_, err := Emoji.Decode("nope")
	wrapped := errors.Wrapf(err, "Could not decode %v", "stdin")

	de, ok := AsDecodeError(wrapped)
	require.True(t, ok)
	require.Equal(t, 'n', de.Codepoint)
	require.Equal(t, 0, de.Index)

	_, ok = AsDecodeError(errors.New("something else"))
	require.False(t, ok)

	_, ok = AsDecodeError(nil)
	require.False(t, ok)
}

func Test_ConcurrentDecode(t *testing.T) {
	runtimeEmoji := NewCodec('e', &tableAlphabet{name: "lazy", symbols: EmojiTable()})
	org := []byte("concurrent first use of the reverse map")
	encoded := runtimeEmoji.Encode(org)

	wg := &sync.WaitGroup{}
	results := make([][]byte, 32)
	errs := make([]error, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = runtimeEmoji.Decode(encoded)
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		require.Equal(t, org, results[i])
	}
}
