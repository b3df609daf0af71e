package enc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var encoderTest = []byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
	"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
	"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277")

// randomBuffers returns deterministic pseudo-random buffers of every length up to maxLen
func randomBuffers(maxLen int) [][]byte {
	rnd := rand.New(rand.NewSource(85))
	res := make([][]byte, 0, maxLen)
	for n := 1; n <= maxLen; n++ {
		buf := make([]byte, n)
		rnd.Read(buf)
		res = append(res, buf)
	}
	return res
}

func Test_CodecsRoundTrip(t *testing.T) {
	for _, encoder := range Codecs {
		encoded := encoder.Encode(encoderTest)
		decoded, err := encoder.Decode(encoded)
		require.NoErrorf(t, err, "%v", encoder.Name())
		require.Equalf(t, encoderTest, decoded, "%v", encoder.Name())

		for _, buf := range randomBuffers(40) {
			decoded, err := encoder.Decode(encoder.Encode(buf))
			require.NoErrorf(t, err, "%v: %x", encoder.Name(), buf)
			require.Equalf(t, buf, decoded, "%v", encoder.Name())
		}
	}
}

func Test_CodecsEmpty(t *testing.T) {
	for _, encoder := range Codecs {
		require.Equalf(t, "", encoder.Encode([]byte{}), "%v", encoder.Name())
		decoded, err := encoder.Decode("")
		require.NoErrorf(t, err, "%v", encoder.Name())
		require.Emptyf(t, decoded, "%v", encoder.Name())
	}
}

func Test_CodecsTestPatterns(t *testing.T) {
	for _, encoder := range Codecs {
		for _, pattern := range encoder.TestPatterns() {
			_, err := encoder.Decode(pattern)
			require.NoErrorf(t, err, "%v: %q", encoder.Name(), pattern)
		}
	}
}

func Test_CodecsUniqueCodes(t *testing.T) {
	seen := make(map[byte]string)
	for _, encoder := range Codecs {
		prev, ok := seen[encoder.Code()]
		require.Falsef(t, ok, "%v and %v share code %c", prev, encoder.Name(), encoder.Code())
		seen[encoder.Code()] = encoder.Name()
	}
}

func Test_HexEncoder(t *testing.T) {
	encoder := HexEncoder{}
	require.Equal(t, "41", encoder.Encode([]byte("A")))

	_, err := encoder.Decode("4x")
	var invalid *InvalidCharacterError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, 'x', invalid.Symbol)
	require.Equal(t, 1, invalid.Position)
}

func Test_Base64Encoder(t *testing.T) {
	encoder := Base64Encoder{}
	require.Equal(t, "TWFu", encoder.Encode([]byte("Man")))
	require.Equal(t, "TWE=", encoder.Encode([]byte("Ma")))

	_, err := encoder.Decode("TW*u")
	require.ErrorIs(t, err, ErrInvalidCharacter)
}

func Test_Base64uEncoder(t *testing.T) {
	encoder := Base64uEncoder{}
	encoded := encoder.Encode([]byte{0xfb, 0xff})
	require.Equal(t, "-_8", encoded)
}

func Test_Base32Encoder(t *testing.T) {
	encoder := Base32Encoder{}
	encoded := encoder.Encode([]byte("foobar"))
	require.Equal(t, "MZXW6YTBOI======", encoded)

	decoded, err := encoder.Decode("mzxw6ytboi======")
	require.NoError(t, err)
	require.Equal(t, []byte("foobar"), decoded)
}

func Test_Base91Encoder(t *testing.T) {
	encoder := Base91Encoder{}
	encoded := encoder.Encode(encoderTest)
	require.NotContains(t, encoded, "-")

	_, err := encoder.Decode("AB-")
	var invalid *InvalidCharacterError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, 2, invalid.Position)
}

func Test_Base128Transliterate(t *testing.T) {
	str := make([]byte, 128)
	for k := range str {
		str[k] = byte(k)
	}
	trans := escape128(str)
	require.Equal(t, len(str), len([]rune(trans)))

	back, err := unescape128(trans)
	require.NoError(t, err)
	require.Equal(t, str, back)
}

func Test_Base128Encoder(t *testing.T) {
	encoder := Base128Encoder{}
	require.Len(t, []rune(encoder.Encode(make([]byte, 7))), 8)
	require.Len(t, []rune(encoder.Encode(make([]byte, 8))), 10)

	_, err := encoder.Decode("ab~")
	require.ErrorIs(t, err, ErrInvalidCharacter)
}

func Test_RawEncoder(t *testing.T) {
	encoder := RawEncoder{}
	require.Equal(t, "Man ", encoder.Encode([]byte("Man ")))
}
