package enc

import (
	"encoding/base64"
	"fmt"

	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters, using the standard RFC 4648 alphabet and padding
type Base64Encoder struct {
}

func (b *Base64Encoder) Name() string {
	return "Base64"
}

func (b *Base64Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64Encoder) Code() byte {
	return 'S'
}

func (b *Base64Encoder) Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func (b *Base64Encoder) Decode(data string) ([]byte, error) {
	res, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, corruptInput(err, data)
	}
	return res, nil
}

func (b *Base64Encoder) TestPatterns() []string {
	return []string{
		cBase64,
	}
}

// corruptInput converts a CorruptInputError of the standard library decoders into an
// InvalidCharacterError pointing at the same offset
func corruptInput(err error, data string) error {
	var corrupt base64.CorruptInputError
	if errors.As(err, &corrupt) && int(corrupt) < len(data) {
		return invalidCharacter(rune(data[corrupt]), int(corrupt))
	}
	return errors.WithStack(err)
}
