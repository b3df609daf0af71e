package enc

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
)

const (
	// Letters and digits first, then Latin-1 accented letters, which might readily be entered in
	// normal use. The output is a string of runes; every symbol is a single code point.
	cb128 = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
		"¼½¾¿" +
		"ÀÁÂÃÄÅÆÇÈÉÊËÌÍÎÏ" +
		"ÐÑÒÓÔÕÖ×ØÙÚÛÜÝÞß" +
		"àáâãäåæçèéêëìíîï" +
		"ðñòóôõö÷øùúûüý"
)

var cb128Runes []rune
var cb128Invert map[rune]byte
var cbInitialized sync.Once

func setupCb128Invert() {
	cbInitialized.Do(func() {
		cb128Runes = []rune(cb128)
		cb128Invert = make(map[rune]byte, len(cb128Runes))
		for i, v := range cb128Runes {
			cb128Invert[v] = byte(i)
		}
	})
}

// -------------------------------------------------------

// Base128Encoder encodes 7 bytes to 8 characters
type Base128Encoder struct {
}

func (b *Base128Encoder) Name() string {
	return "Base128"
}

func (b *Base128Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base128Encoder) Code() byte {
	return 'V'
}

func (b *Base128Encoder) Encode(src []byte) string {
	dst := make([]byte, 0, (len(src)*8+6)/7)

	whichByte := uint(1)
	bufByte := byte(0)

	for _, val := range src {
		// Take the current buffer, add current value, shifted.
		// E.g. first round is first 7 bits of value
		elem := bufByte | (val >> whichByte)
		dst = append(dst, elem)

		// Prepare the remaining data for the next buffer.
		// E.g. first round is the remaining bit
		bufByte = val & ((1 << whichByte) - 1)

		// Shift the remaining value to the left
		bufByte = bufByte << (7 - whichByte)

		if whichByte == 7 {
			dst = append(dst, bufByte)
			bufByte = 0
			whichByte = 0
		}

		whichByte++
	}

	// Dangling bits, unless the input ended exactly on a 7 byte boundary
	if whichByte != 1 {
		dst = append(dst, bufByte)
	}
	return escape128(dst)
}

func escape128(src []byte) string {
	setupCb128Invert()
	res := make([]rune, len(src))
	for i, v := range src {
		res[i] = cb128Runes[v]
	}
	return string(res)
}

func unescape128(src string) ([]byte, error) {
	setupCb128Invert()
	res := make([]byte, 0, len(src))
	pos := 0
	for _, r := range src {
		v, ok := cb128Invert[r]
		if !ok {
			return nil, invalidCharacter(r, pos)
		}
		res = append(res, v)
		pos++
	}
	return res, nil
}

func (b *Base128Encoder) Decode(data string) ([]byte, error) {
	src, err := unescape128(data)
	if err != nil {
		return nil, err
	}
	res, err := base128.DecodeString(string(src))
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base128Encoder) TestPatterns() []string {
	return []string{
		b.Encode([]byte("Aaahhh! Drink mal ein Jägermeister!")),
		b.Encode([]byte("La flûte naïve française est retirée à Crète")),
	}
}
