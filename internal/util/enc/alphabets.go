package enc

const (
	cBinary  = "01"
	cOctal   = "01234567"
	cDecimal = "0123456789"
	cHex     = "0123456789abcdef"
	cRfc32   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	cBase36  = "0123456789abcdefghijklmnopqrstuvwxyz"
	cBase58  = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	cBase62  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	cBase64  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// CJKAlphabet Unified Ideographs start at U+4E00. 4096 symbols give 12 bits per character.
	cjkFirst = '一'
	cjkCount = 4096
)

// Built-in alphabets for the radix codec
var (
	BinaryAlphabet  = MustAlphabet("base2", cBinary)
	OctalAlphabet   = MustAlphabet("base8", cOctal)
	DecimalAlphabet = MustAlphabet("base10", cDecimal)
	Base16Alphabet  = MustAlphabet("base16", cHex)
	Base32Alphabet  = MustAlphabet("base32", cRfc32)
	Base36Alphabet  = MustAlphabet("base36", cBase36)
	Base58Alphabet  = MustAlphabet("base58", cBase58)
	Base62Alphabet  = MustAlphabet("base62", cBase62)
	Base64Alphabet  = MustAlphabet("base64", cBase64)
	CJKAlphabet     = mustRange("cjk", cjkFirst, cjkCount)
)

// BuiltinAlphabets lists the alphabets known without any configuration, in radix order
var BuiltinAlphabets = []*Alphabet{
	BinaryAlphabet, OctalAlphabet, DecimalAlphabet, Base16Alphabet, Base32Alphabet,
	Base36Alphabet, Base58Alphabet, Base62Alphabet, Base64Alphabet, CJKAlphabet,
}

func mustRange(name string, first rune, n int) *Alphabet {
	a, err := RangeAlphabet(name, first, n)
	if err != nil {
		panic(err)
	}
	return a
}
