package enc

import (
	"github.com/bokysan/textcodec/internal/util/text"
	"github.com/pkg/errors"
)

type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represends the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse proces of encoding
	Decode(string) ([]byte, error)

	// Return a list of test patterns for the specified encoding
	TestPatterns() []string
}

// EncodeText encodes the UTF-8 bytes of the given text
func EncodeText(e Encoder, s string) string {
	return e.Encode(text.ToBytes(s))
}

// DecodeText decodes the given string and renders the resulting bytes as text. No partial result is
// returned on error.
func DecodeText(e Encoder, s string, policy text.Policy) (string, error) {
	data, err := e.Decode(s)
	if err != nil {
		return "", err
	}
	res, err := text.FromBytes(data, policy)
	if err != nil {
		return "", errors.Wrapf(err, "%v output", e.Name())
	}
	return res, nil
}
