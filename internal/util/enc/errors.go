package enc

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors. The typed errors below match them with errors.Is.
var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrGroupOverflow    = errors.New("group overflow")
	ErrUnknownCodec     = errors.New("unknown codec")
	ErrInvalidAlphabet  = errors.New("invalid alphabet")
)

// InvalidCharacterError is returned when the input contains a symbol which is not part of the
// active alphabet (or outside the Base85 digit range).
type InvalidCharacterError struct {
	Symbol rune
	// Position is the index of the symbol in the input, counted in runes
	Position int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Symbol, e.Position)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// GroupOverflowError is returned by the Base85 decoder when a 5-character group encodes a value
// which does not fit into 32 bits
type GroupOverflowError struct {
	Group int
	Value uint64
}

func (e *GroupOverflowError) Error() string {
	return fmt.Sprintf("base85 group %d overflows 32 bits (value %d)", e.Group, e.Value)
}

func (e *GroupOverflowError) Is(target error) bool {
	return target == ErrGroupOverflow
}

func invalidCharacter(symbol rune, position int) error {
	return errors.WithStack(&InvalidCharacterError{
		Symbol:   symbol,
		Position: position,
	})
}
