package list

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/bokysan/textcodec/internal/args"
	"github.com/bokysan/textcodec/internal/logging"
	"github.com/bokysan/textcodec/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// previewLen is the number of symbols of an alphabet shown in the listing
const previewLen = 24

// Command lists the available codecs and alphabets
type Command struct {
	Dump bool `json:"dump" short:"d" long:"dump" description:"Dump the internal structure of every codec (debugging)"`

	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		out: os.Stdout,
	}
}

func (c *Command) Execute(arguments []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}
	if err := enc.RegisterAlphabets(args.Alphabets.Define); err != nil {
		return errors.Wrapf(err, "Could not register custom alphabets")
	}

	if c.Dump {
		_, err := fmt.Fprint(c.out, spew.Sdump(enc.Codecs), spew.Sdump(enc.Alphabets()))
		return errors.WithStack(err)
	}

	w := tabwriter.NewWriter(c.out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "CODEC\tCODE\tSAMPLE")
	for _, e := range enc.Codecs {
		fmt.Fprintf(w, "%s\t%c\t%s\n", e.Name(), e.Code(), e.Encode([]byte("Man ")))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "ALPHABET\tRADIX\tSYMBOLS")
	for _, a := range enc.Alphabets() {
		fmt.Fprintf(w, "%s\t%d\t%s\n", a.Name(), a.Len(), preview(a))
	}
	return errors.WithStack(w.Flush())
}

func preview(a *enc.Alphabet) string {
	symbols := []rune(a.String())
	if len(symbols) <= previewLen {
		return string(symbols)
	}
	return string(symbols[:previewLen]) + "…"
}
