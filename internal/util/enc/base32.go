package enc

import (
	"encoding/base32"
	"fmt"

	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base32Encoder encodes 5 bytes to 8 characters with the RFC 4648 alphabet. Good because it's not
// case-sensitive: lower case input is accepted when decoding.
type Base32Encoder struct {
}

func (b *Base32Encoder) Name() string {
	return "Base32"
}

func (b *Base32Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base32Encoder) Code() byte {
	return 'T'
}

func (b *Base32Encoder) Encode(data []byte) string {
	return base32.StdEncoding.EncodeToString(data)
}

func (b *Base32Encoder) Decode(data string) ([]byte, error) {
	upper := []byte(data)
	for k, c := range upper {
		if c >= 'a' && c <= 'z' {
			upper[k] = c - 'a' + 'A'
		}
	}
	res, err := base32.StdEncoding.DecodeString(string(upper))
	if err != nil {
		var corrupt base32.CorruptInputError
		if errors.As(err, &corrupt) && int(corrupt) < len(data) {
			return nil, invalidCharacter(rune(data[corrupt]), int(corrupt))
		}
		return nil, errors.WithStack(err)
	}
	return res, nil
}

func (b *Base32Encoder) TestPatterns() []string {
	return []string{
		cRfc32,
	}
}
