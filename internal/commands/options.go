// Package commands holds what the encode and decode commands have in common: choosing the encoder
// and reading the input.
package commands

import (
	"bufio"
	"io"
	"io/ioutil"
	"strings"

	"github.com/bokysan/textcodec/internal/args"
	"github.com/bokysan/textcodec/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const DefaultCodec = "base85"

// CodecOptions selects the encoder. The options can also be set in the `encode` and `decode`
// sections of the configuration file.
type CodecOptions struct {
	Type          string `json:"type"           short:"t" long:"type"           env:"CODEC"          description:"Codec (base85, hex, base64, base64u, base32, base91, base128, raw), alphabet name (base58, cjk, ...) or radix:NAME / preserve:NAME. Defaults to base85."`
	Symbols       string `json:"symbols"        short:"s" long:"symbols"                             description:"Use these symbols as the radix alphabet, instead of --type"`
	PreserveZeros bool   `json:"preserve-zeros" short:"z" long:"preserve-zeros" env:"PRESERVE_ZEROS" description:"Keep leading zero bytes when using a radix alphabet"`
	Input         string `json:"input"          short:"i" long:"input"                               description:"Read the input from this file instead of the arguments. Use '-' for stdin."`
}

// Encoder registers the custom alphabets and returns the encoder chosen by the options
func (o *CodecOptions) Encoder() (enc.Encoder, error) {
	if err := enc.RegisterAlphabets(args.Alphabets.Define); err != nil {
		return nil, errors.Wrapf(err, "Could not register custom alphabets")
	}

	if o.Symbols != "" {
		a, err := enc.NewAlphabet("custom", o.Symbols)
		if err != nil {
			return nil, err
		}
		return o.radix(a)
	}

	name := o.Type
	if name == "" {
		name = DefaultCodec
	}
	if o.PreserveZeros && !strings.Contains(name, ":") {
		a, err := enc.LookupAlphabet(name)
		if err != nil {
			return nil, errors.Wrapf(err, "--preserve-zeros needs a radix alphabet")
		}
		return o.radix(a)
	}
	return enc.FromName(name)
}

func (o *CodecOptions) radix(a *enc.Alphabet) (enc.Encoder, error) {
	if o.PreserveZeros {
		e, err := enc.NewPreservingEncoder(a)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
	return enc.NewRadixEncoder(a), nil
}

// ReadInput returns the text to work on: the input file, stdin, or the arguments joined with spaces.
// When reading stdin, a single trailing newline is removed.
func (o *CodecOptions) ReadInput(arguments []string, stdin io.Reader) (string, error) {
	switch {
	case o.Input == "-" || (o.Input == "" && len(arguments) == 0):
		log.Debugf("Reading input from stdin")
		data, err := ioutil.ReadAll(bufio.NewReader(stdin))
		if err != nil {
			return "", errors.Wrapf(err, "Could not read stdin")
		}
		return trimNewline(string(data)), nil
	case o.Input != "":
		log.Debugf("Reading input from %v", o.Input)
		data, err := ioutil.ReadFile(o.Input)
		if err != nil {
			return "", errors.Wrapf(err, "Could not read %v", o.Input)
		}
		return string(data), nil
	default:
		return strings.Join(arguments, " "), nil
	}
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
