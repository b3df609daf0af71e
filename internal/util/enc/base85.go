package enc

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/bokysan/textcodec/internal/util/text"
	"github.com/pkg/errors"
)

const (
	a85Prefix  = "<~"
	a85Suffix  = "~>"
	a85Zero    = 'z'
	a85MinChar = '!' // digit 0
	a85MaxChar = 'u' // digit 84
)

// -------------------------------------------------------

// Base85Encoder encodes 4 bytes to 5 characters (Ascii85, as used by btoa, PostScript and PDF).
// An all-zero group is shortened to "z" and the output is wrapped in "<~" and "~>".
type Base85Encoder struct {
}

func (b *Base85Encoder) Name() string {
	return "Base85"
}

func (b *Base85Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base85Encoder) Code() byte {
	return 'W'
}

func (b *Base85Encoder) Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	// Pad up to the full group with zeroes. Padding characters are cut from the output at the end.
	pad := (4 - len(data)%4) % 4
	src := make([]byte, len(data)+pad)
	copy(src, data)

	dst := make([]byte, 0, len(a85Prefix)+len(src)/4*5+len(a85Suffix))
	dst = append(dst, a85Prefix...)
	for i := 0; i < len(src); i += 4 {
		v := binary.BigEndian.Uint32(src[i:])

		// The padded last group is always written in full, otherwise the trim below would be wrong
		if v == 0 && (pad == 0 || i+4 < len(src)) {
			dst = append(dst, a85Zero)
			continue
		}

		var group [5]byte
		for k := 4; k >= 0; k-- {
			group[k] = byte(v%85) + a85MinChar
			v /= 85
		}
		dst = append(dst, group[:]...)
	}
	dst = dst[:len(dst)-pad]
	dst = append(dst, a85Suffix...)
	return string(dst)
}

func (b *Base85Encoder) Decode(data string) ([]byte, error) {
	data = strings.TrimSpace(data)
	data = strings.TrimPrefix(data, a85Prefix)
	data = strings.TrimSuffix(data, a85Suffix)

	digits := make([]byte, 0, len(data))
	pos := 0
	for _, r := range data {
		switch {
		case unicode.IsSpace(r):
		case r == a85Zero:
			digits = append(digits, a85MinChar, a85MinChar, a85MinChar, a85MinChar, a85MinChar)
		case r < a85MinChar || r > a85MaxChar:
			return nil, invalidCharacter(r, pos)
		default:
			digits = append(digits, byte(r))
		}
		pos++
	}

	if len(digits) == 0 {
		return []byte{}, nil
	}

	// Round the last group up with the highest digit. The extra bytes it produces are dropped.
	pad := (5 - len(digits)%5) % 5
	for i := 0; i < pad; i++ {
		digits = append(digits, a85MaxChar)
	}

	dst := make([]byte, len(digits)/5*4)
	for i := 0; i < len(digits); i += 5 {
		var v uint64
		for _, c := range digits[i : i+5] {
			v = v*85 + uint64(c-a85MinChar)
		}
		if v > math.MaxUint32 {
			return nil, errors.WithStack(&GroupOverflowError{
				Group: i / 5,
				Value: v,
			})
		}
		binary.BigEndian.PutUint32(dst[i/5*4:], uint32(v))
	}
	return dst[:len(dst)-pad], nil
}

func (b *Base85Encoder) TestPatterns() []string {
	str := make([]byte, 85)
	// 33 (!) through 117 (u)
	for k := range str {
		str[k] = byte(k + a85MinChar)
	}
	return []string{
		a85Prefix + string(str) + a85Suffix,
	}
}

// Encode85 encodes the UTF-8 bytes of s as Ascii85. Empty input gives an empty string, without
// delimiters.
func Encode85(s string) string {
	return EncodeText(&Base85Encoder{}, s)
}

// Decode85 is the reverse of Encode85
func Decode85(s string) (string, error) {
	return DecodeText(&Base85Encoder{}, s, text.Strict)
}
