package enc

import (
	"strings"
	"testing"

	"github.com/bokysan/textcodec/internal/util/text"
	"github.com/stretchr/testify/require"
)

func Test_RadixEncode(t *testing.T) {
	require.Equal(t, "41", Encode("A", Base16Alphabet))
	require.Equal(t, "65", Encode("A", DecimalAlphabet))
	require.Equal(t, "16706", Encode("AB", DecimalAlphabet))
	require.Equal(t, "1000001", Encode("A", BinaryAlphabet))
	require.Equal(t, "TWFu", Encode("Man", Base64Alphabet))
	require.Equal(t, "2NEpo7TZRRrLZSi2U", Encode("Hello World!", Base58Alphabet))
	require.Equal(t, string(rune(0x4e41)), Encode("A", CJKAlphabet))
}

func Test_RadixDecode(t *testing.T) {
	res, err := Decode("41", Base16Alphabet)
	require.NoError(t, err)
	require.Equal(t, "A", res)

	res, err = Decode("2NEpo7TZRRrLZSi2U", Base58Alphabet)
	require.NoError(t, err)
	require.Equal(t, "Hello World!", res)
}

func Test_RadixEmpty(t *testing.T) {
	for _, a := range BuiltinAlphabets {
		require.Equal(t, "", Encode("", a))
		res, err := Decode("", a)
		require.NoError(t, err)
		require.Equal(t, "", res)
	}
}

func Test_RadixZeroCollapse(t *testing.T) {
	for _, a := range BuiltinAlphabets {
		for _, zeros := range []string{"\000", "\000\000", "\000\000\000\000\000"} {
			require.Equal(t, string(a.Symbol(0)), Encode(zeros, a), a.Name())
		}
	}

	// The zero symbol decodes to nothing at all
	res, err := Decode("0", Base16Alphabet)
	require.NoError(t, err)
	require.Equal(t, "", res)
}

func Test_RadixLeadingZeroesAreLost(t *testing.T) {
	encoder := NewRadixEncoder(Base16Alphabet)
	encoded := encoder.Encode([]byte{0, 0, 'A'})
	require.Equal(t, "41", encoded)

	decoded, err := encoder.Decode("00041")
	require.NoError(t, err)
	require.Equal(t, []byte{'A'}, decoded)
}

func Test_RadixRoundTrip(t *testing.T) {
	for _, a := range BuiltinAlphabets {
		encoder := NewRadixEncoder(a)
		for _, buf := range randomBuffers(64) {
			if buf[0] == 0 {
				buf[0] = 1
			}
			decoded, err := encoder.Decode(encoder.Encode(buf))
			require.NoError(t, err, a.Name())
			require.Equal(t, buf, decoded, a.Name())
		}
	}
}

func Test_RadixTextRoundTrip(t *testing.T) {
	for _, s := range []string{"Man ", "Jägermeister", "漢字 kanji", strings.Repeat("z", 300)} {
		for _, a := range BuiltinAlphabets {
			res, err := Decode(Encode(s, a), a)
			require.NoError(t, err, a.Name())
			require.Equal(t, s, res, a.Name())
		}
	}
}

func Test_RadixInvalidCharacter(t *testing.T) {
	_, err := Decode("4g1", Base16Alphabet)
	require.ErrorIs(t, err, ErrInvalidCharacter)

	var invalid *InvalidCharacterError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, 'g', invalid.Symbol)
	require.Equal(t, 1, invalid.Position)

	// Positions are counted in symbols, not bytes
	_, err = Decode(string(CJKAlphabet.Symbol(1))+"x", CJKAlphabet)
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, 1, invalid.Position)
}

func Test_RadixDecodeInvalidUTF8(t *testing.T) {
	a, err := NewAlphabet("replacement", "a\uFFFD")
	require.NoError(t, err)
	e := NewRadixEncoder(a)

	b, err := e.Decode("\uFFFD")
	require.NoError(t, err)
	require.Equal(t, []byte{1}, b)

	// A broken byte sequence is not the replacement symbol
	_, err = e.Decode("a\xff")
	require.ErrorIs(t, err, ErrInvalidCharacter)

	var invalid *InvalidCharacterError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, 1, invalid.Position)
}

func Test_RadixMalformedText(t *testing.T) {
	_, err := Decode("ff", Base16Alphabet)
	require.ErrorIs(t, err, text.ErrMalformedText)

	res, err := DecodeText(NewRadixEncoder(Base16Alphabet), "41ff", text.Replace)
	require.NoError(t, err)
	require.Equal(t, "A�", res)
}

func Test_RadixTestPatterns(t *testing.T) {
	for _, a := range BuiltinAlphabets {
		encoder := NewRadixEncoder(a)
		for _, pattern := range encoder.TestPatterns() {
			decoded, err := encoder.Decode(pattern)
			require.NoError(t, err, a.Name())
			require.Equal(t, pattern, encoder.Encode(decoded), a.Name())
		}
	}
}

func Test_BitsPerDigit(t *testing.T) {
	require.Equal(t, 1, bitsPerDigit(2))
	require.Equal(t, 1, bitsPerDigit(3))
	require.Equal(t, 4, bitsPerDigit(16))
	require.Equal(t, 5, bitsPerDigit(58))
	require.Equal(t, 12, bitsPerDigit(4096))
}
