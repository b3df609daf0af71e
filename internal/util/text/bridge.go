// Package text converts between strings and their UTF-8 byte representation. Every codec in this
// tool works on byte buffers; this package is the single place where bytes become text again.
package text

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Policy defines what FromBytes does when it meets a byte sequence which is not valid UTF-8
type Policy int

const (
	// Strict fails with a MalformedTextError
	Strict Policy = iota
	// Replace substitutes every invalid sequence with utf8.RuneError (U+FFFD)
	Replace
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ErrMalformedText is matched by every MalformedTextError when using errors.Is
var ErrMalformedText = errors.New("malformed text")

// MalformedTextError is returned when a byte buffer cannot be rendered as UTF-8 text
type MalformedTextError struct {
	// Offset of the first invalid byte in the buffer
	Offset int
	// Byte is the value found at Offset
	Byte byte
}

func (e *MalformedTextError) Error() string {
	return fmt.Sprintf("malformed text: invalid UTF-8 byte 0x%02x at offset %d", e.Byte, e.Offset)
}

func (e *MalformedTextError) Is(target error) bool {
	return target == ErrMalformedText
}

// ToBytes returns the UTF-8 bytes of the given text. The returned slice is owned by the caller.
func ToBytes(s string) []byte {
	return []byte(s)
}

// FromBytes renders the buffer as text, applying the given policy to invalid sequences.
func FromBytes(b []byte, policy Policy) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	if policy == Replace {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError)), nil
	}
	offset := invalidOffset(b)
	return "", errors.WithStack(&MalformedTextError{
		Offset: offset,
		Byte:   b[offset],
	})
}

func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(b)
}
