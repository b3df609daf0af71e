package decode

import (
	"fmt"
	"io"
	"os"

	"github.com/bokysan/textcodec/internal/commands"
	"github.com/bokysan/textcodec/internal/logging"
	"github.com/bokysan/textcodec/internal/util/enc"
	"github.com/bokysan/textcodec/internal/util/text"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command decodes text with the selected codec and prints the result
type Command struct {
	commands.CodecOptions `yaml:",inline"`

	ReplaceInvalid bool `json:"replace-invalid" short:"r" long:"replace-invalid" env:"REPLACE_INVALID" description:"Replace bytes which are not valid UTF-8 with U+FFFD instead of failing"`

	in  io.Reader
	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

func (c *Command) Policy() text.Policy {
	if c.ReplaceInvalid {
		return text.Replace
	}
	return text.Strict
}

func (c *Command) Execute(args []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	encoder, err := c.Encoder()
	if err != nil {
		return err
	}

	input, err := c.ReadInput(args, c.in)
	if err != nil {
		return err
	}

	log.Debugf("Decoding %d characters with %v (%v)", len([]rune(input)), encoder, c.Policy())
	result, err := enc.DecodeText(encoder, input, c.Policy())
	if err != nil {
		return errors.Wrapf(err, "Could not decode input with %v", encoder.Name())
	}

	if _, err := fmt.Fprintln(c.out, result); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
