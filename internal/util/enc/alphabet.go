package enc

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Alphabet is an ordered set of distinct symbols. The position of a symbol is its numeric value.
// An alphabet is immutable once created and may be shared between goroutines.
type Alphabet struct {
	name    string
	symbols []rune
	index   map[rune]int
}

// NewAlphabet creates an alphabet from the runes of the given string. It fails if the alphabet has
// fewer than two symbols, contains a duplicate or is not valid UTF-8.
func NewAlphabet(name, symbols string) (*Alphabet, error) {
	if !utf8.ValidString(symbols) {
		return nil, errors.Wrapf(ErrInvalidAlphabet, "alphabet %s is not valid UTF-8", name)
	}
	return newAlphabet(name, []rune(symbols))
}

// MustAlphabet is like NewAlphabet but panics on error. Use it for package-level tables only.
func MustAlphabet(name, symbols string) *Alphabet {
	a, err := NewAlphabet(name, symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// RangeAlphabet creates an alphabet of n consecutive code points, starting with first.
func RangeAlphabet(name string, first rune, n int) (*Alphabet, error) {
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = first + rune(i)
		if !utf8.ValidRune(runes[i]) {
			return nil, errors.Wrapf(ErrInvalidAlphabet, "alphabet %s: code point %U is not a valid rune", name, runes[i])
		}
	}
	return newAlphabet(name, runes)
}

func newAlphabet(name string, runes []rune) (*Alphabet, error) {
	if len(runes) < 2 {
		return nil, errors.Wrapf(ErrInvalidAlphabet, "alphabet %s needs at least 2 symbols, got %d", name, len(runes))
	}
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if prev, ok := index[r]; ok {
			return nil, errors.Wrapf(ErrInvalidAlphabet, "alphabet %s: symbol %q at %d duplicates position %d", name, r, i, prev)
		}
		index[r] = i
	}
	return &Alphabet{
		name:    name,
		symbols: runes,
		index:   index,
	}, nil
}

// Name returns the user-friendly name of the alphabet
func (a *Alphabet) Name() string {
	return a.name
}

// Len returns the radix of the alphabet
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// Symbol returns the symbol with the given value
func (a *Alphabet) Symbol(i int) rune {
	return a.symbols[i]
}

// Index returns the value of the symbol, or false if the symbol is not part of the alphabet
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// String returns the symbols of the alphabet, in order
func (a *Alphabet) String() string {
	return string(a.symbols)
}

func (a *Alphabet) GoString() string {
	return fmt.Sprintf("Alphabet(%s, radix %d)", a.name, len(a.symbols))
}

// validate checks that every rune of s is part of the alphabet
func (a *Alphabet) validate(s string) error {
	pos := 0
	for off, r := range s {
		if _, ok := a.index[r]; !ok || malformedRune(s, off, r) {
			return invalidCharacter(r, pos)
		}
		pos++
	}
	return nil
}

// malformedRune reports whether r at byte offset off of s came from an invalid UTF-8 sequence
// rather than from a literal U+FFFD.
func malformedRune(s string, off int, r rune) bool {
	if r != utf8.RuneError {
		return false
	}
	_, size := utf8.DecodeRuneInString(s[off:])
	return size == 1
}
