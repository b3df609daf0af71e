package enc

import (
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

const (
	// RadixPrefix selects the radix encoder for the named alphabet, e.g. "radix:base58"
	RadixPrefix = "radix:"
	// PreservePrefix selects the leading-zero preserving encoder, e.g. "preserve:base58"
	PreservePrefix = "preserve:"
)

// Codecs are the block encoders with a fixed alphabet, in order of preference
var Codecs = []Encoder{
	&Base85Encoder{},
	&HexEncoder{},
	&Base64Encoder{},
	&Base64uEncoder{},
	&Base32Encoder{},
	&Base91Encoder{},
	&Base128Encoder{},
	&RawEncoder{},
}

var (
	customAlphabets   = make(map[string]*Alphabet)
	customAlphabetsMu sync.RWMutex
)

// FromCode returns the block encoder with the given one-letter code
func FromCode(code byte) (Encoder, error) {
	for _, e := range Codecs {
		if e.Code() == code {
			return e, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownCodec, "no codec with code '%c'", code)
}

// FromName finds an encoder by name. Names are case-insensitive. Block encoders are matched by
// their name ("base85", "hex", ...). A name with the "radix:" or "preserve:" prefix selects the radix
// codec for the given alphabet. A bare alphabet name ("base58", "cjk") selects the radix codec as
// long as it doesn't clash with a block encoder name.
func FromName(name string) (Encoder, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	switch {
	case strings.HasPrefix(name, RadixPrefix):
		a, err := LookupAlphabet(strings.TrimPrefix(name, RadixPrefix))
		if err != nil {
			return nil, err
		}
		return NewRadixEncoder(a), nil
	case strings.HasPrefix(name, PreservePrefix):
		a, err := LookupAlphabet(strings.TrimPrefix(name, PreservePrefix))
		if err != nil {
			return nil, err
		}
		e, err := NewPreservingEncoder(a)
		if err != nil {
			return nil, err
		}
		return e, nil
	}

	for _, e := range Codecs {
		if strings.ToLower(e.Name()) == name {
			return e, nil
		}
	}
	if a, err := LookupAlphabet(name); err == nil {
		return NewRadixEncoder(a), nil
	}
	return nil, errors.Wrapf(ErrUnknownCodec, "no codec or alphabet named '%s'", name)
}

// LookupAlphabet finds a built-in or registered alphabet by (case-insensitive) name
func LookupAlphabet(name string) (*Alphabet, error) {
	name = strings.ToLower(name)
	for _, a := range BuiltinAlphabets {
		if a.Name() == name {
			return a, nil
		}
	}

	customAlphabetsMu.RLock()
	defer customAlphabetsMu.RUnlock()
	if a, ok := customAlphabets[name]; ok {
		return a, nil
	}
	return nil, errors.Wrapf(ErrUnknownCodec, "no alphabet named '%s'", name)
}

// RegisterAlphabet makes the alphabet available to FromName and LookupAlphabet. Built-in alphabets
// cannot be replaced. Registering a custom alphabet under an existing custom name replaces it.
func RegisterAlphabet(a *Alphabet) error {
	name := strings.ToLower(a.Name())
	if name == "" || strings.ContainsRune(name, ':') {
		return errors.Wrapf(ErrInvalidAlphabet, "invalid alphabet name '%s'", a.Name())
	}
	for _, b := range BuiltinAlphabets {
		if b.Name() == name {
			return errors.Wrapf(ErrInvalidAlphabet, "alphabet '%s' is built-in and cannot be redefined", name)
		}
	}

	customAlphabetsMu.Lock()
	defer customAlphabetsMu.Unlock()
	customAlphabets[name] = a
	return nil
}

// RegisterAlphabets creates and registers every alphabet in the map (name -> symbols). All entries
// are tried: the returned error aggregates every problem found.
func RegisterAlphabets(alphabets map[string]string) error {
	names := make([]string, 0, len(alphabets))
	for name := range alphabets {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs error
	for _, name := range names {
		a, err := NewAlphabet(strings.ToLower(name), alphabets[name])
		if err == nil {
			err = RegisterAlphabet(a)
		}
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}

// Alphabets returns all known alphabets, built-in first, then custom ones sorted by name
func Alphabets() []*Alphabet {
	res := make([]*Alphabet, 0, len(BuiltinAlphabets))
	res = append(res, BuiltinAlphabets...)

	customAlphabetsMu.RLock()
	custom := make([]*Alphabet, 0, len(customAlphabets))
	for _, a := range customAlphabets {
		custom = append(custom, a)
	}
	customAlphabetsMu.RUnlock()

	sort.Slice(custom, func(i, j int) bool {
		return custom[i].Name() < custom[j].Name()
	})
	return append(res, custom...)
}
