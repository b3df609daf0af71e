package enc

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
)

// -------------------------------------------------------

// HexEncoder encodes 1 byte to 2 characters
type HexEncoder struct {
}

func (b *HexEncoder) Name() string {
	return "Hex"
}

func (b *HexEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *HexEncoder) Code() byte {
	return 'H'
}

func (b *HexEncoder) Encode(data []byte) string {
	return hex.EncodeToString(data)
}

func (b *HexEncoder) Decode(data string) ([]byte, error) {
	res, err := hex.DecodeString(data)
	if err != nil {
		var invalid hex.InvalidByteError
		if errors.As(err, &invalid) {
			return nil, invalidCharacter(rune(invalid), indexOfByte(data, byte(invalid)))
		}
		return nil, errors.WithStack(err)
	}
	return res, nil
}

func (b *HexEncoder) TestPatterns() []string {
	return []string{
		"00ff" + cHex,
	}
}

func indexOfByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}
