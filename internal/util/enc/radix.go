package enc

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/bokysan/textcodec/internal/util/text"
)

// -------------------------------------------------------

// RadixEncoder treats the input as one big-endian unsigned integer and writes it out in the digits
// of its alphabet.
//
// The conversion is lossy for leading zero bytes: they do not change the value of the integer, so
// they are not reconstructed on decode, and any all-zero input encodes to the first symbol of the
// alphabet. Use PreservingEncoder if an exact binary round trip is required.
type RadixEncoder struct {
	Alphabet *Alphabet
}

// NewRadixEncoder creates a radix encoder for the given alphabet
func NewRadixEncoder(a *Alphabet) *RadixEncoder {
	return &RadixEncoder{
		Alphabet: a,
	}
}

func (b *RadixEncoder) Name() string {
	return "Radix/" + b.Alphabet.Name()
}

func (b *RadixEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *RadixEncoder) Code() byte {
	return 'N'
}

func (b *RadixEncoder) Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	n := new(big.Int).SetBytes(data)
	if n.Sign() == 0 {
		return string(b.Alphabet.Symbol(0))
	}

	base := big.NewInt(int64(b.Alphabet.Len()))
	r := new(big.Int)

	// Digits come out least significant first; collect them and reverse once at the end
	digits := make([]rune, 0, len(data)*8/bitsPerDigit(b.Alphabet.Len())+1)
	for n.Sign() > 0 {
		n.DivMod(n, base, r)
		digits = append(digits, b.Alphabet.Symbol(int(r.Int64())))
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits)
}

func (b *RadixEncoder) Decode(data string) ([]byte, error) {
	if data == "" {
		return []byte{}, nil
	}

	base := big.NewInt(int64(b.Alphabet.Len()))
	n := new(big.Int)
	digit := new(big.Int)

	pos := 0
	for off, r := range data {
		i, ok := b.Alphabet.Index(r)
		if !ok || malformedRune(data, off, r) {
			return nil, invalidCharacter(r, pos)
		}
		n.Mul(n, base)
		n.Add(n, digit.SetInt64(int64(i)))
		pos++
	}

	// Bytes returns the minimal big-endian representation; zero is an empty slice
	return n.Bytes(), nil
}

func (b *RadixEncoder) TestPatterns() []string {
	symbols := []rune(b.Alphabet.String())
	return []string{
		// A leading zero symbol would be lost, so rotate it to the end
		string(symbols[1:]) + string(symbols[0]),
		strings.Repeat(string(b.Alphabet.Symbol(b.Alphabet.Len()-1)), 16),
	}
}

// bitsPerDigit returns floor(log2(radix)), at least 1
func bitsPerDigit(radix int) int {
	bits := 0
	for radix > 1 {
		radix >>= 1
		bits++
	}
	return bits
}

// Encode renders the UTF-8 bytes of s in the given alphabet
func Encode(s string, a *Alphabet) string {
	return EncodeText(NewRadixEncoder(a), s)
}

// Decode is the reverse of Encode. It fails with an InvalidCharacterError if s holds a symbol
// outside of the alphabet and with a text.MalformedTextError if the decoded bytes are not UTF-8.
func Decode(s string, a *Alphabet) (string, error) {
	return DecodeText(NewRadixEncoder(a), s, text.Strict)
}
