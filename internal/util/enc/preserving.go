package enc

import (
	"fmt"

	"github.com/eknkc/basex"
	"github.com/pkg/errors"
)

// -------------------------------------------------------

// PreservingEncoder is a radix encoder which keeps leading zero bytes: every leading 0x00 is written
// as a leading first symbol of the alphabet, the way Base58 does it. Unlike RadixEncoder it round
// trips any byte buffer exactly.
type PreservingEncoder struct {
	Alphabet *Alphabet
	encoding *basex.Encoding
}

// NewPreservingEncoder creates a leading-zero preserving encoder for the given alphabet
func NewPreservingEncoder(a *Alphabet) (*PreservingEncoder, error) {
	encoding, err := basex.NewEncoding(a.String())
	if err != nil {
		return nil, errors.Wrapf(err, "could not create encoding for alphabet %v", a.Name())
	}
	return &PreservingEncoder{
		Alphabet: a,
		encoding: encoding,
	}, nil
}

func (b *PreservingEncoder) Name() string {
	return "Preserving/" + b.Alphabet.Name()
}

func (b *PreservingEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *PreservingEncoder) Code() byte {
	return 'P'
}

func (b *PreservingEncoder) Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return b.encoding.Encode(data)
}

func (b *PreservingEncoder) Decode(data string) ([]byte, error) {
	if data == "" {
		return []byte{}, nil
	}
	// basex only reports that "a" character is wrong; find out which and where
	if err := b.Alphabet.validate(data); err != nil {
		return nil, err
	}
	res, err := b.encoding.Decode(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return res, nil
}

func (b *PreservingEncoder) TestPatterns() []string {
	zero := string(b.Alphabet.Symbol(0))
	return []string{
		zero + zero + zero + b.Alphabet.String(),
	}
}
