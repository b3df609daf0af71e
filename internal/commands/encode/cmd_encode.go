package encode

import (
	"fmt"
	"io"
	"os"

	"github.com/bokysan/textcodec/internal/commands"
	"github.com/bokysan/textcodec/internal/logging"
	"github.com/bokysan/textcodec/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command encodes text with the selected codec and prints the result
type Command struct {
	commands.CodecOptions `yaml:",inline"`

	in  io.Reader
	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		in:  os.Stdin,
		out: os.Stdout,
	}
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

	log.Debugf("Encoding %d bytes with %v", len(input), encoder)
	result := enc.EncodeText(encoder, input)
	log.Tracef("Encoded into %d characters", len([]rune(result)))

	if _, err := fmt.Fprintln(c.out, result); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
