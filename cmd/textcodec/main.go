package main

import (
	"fmt"
	"os"
	"path"

	"github.com/bokysan/textcodec/internal/args"
	"github.com/bokysan/textcodec/internal/commands/decode"
	"github.com/bokysan/textcodec/internal/commands/encode"
	"github.com/bokysan/textcodec/internal/commands/list"
	"github.com/bokysan/textcodec/internal/commands/version"
	tcFlags "github.com/bokysan/textcodec/internal/flags"
	"github.com/bokysan/textcodec/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// TextCodec is the main executable
type TextCodec struct {
	parser *flags.Parser
	encode *encode.Command
	decode *decode.Command
}

// NewTextCodec will create a new instance of TextCodec and initialize the parser
func NewTextCodec() *TextCodec {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	tc := &TextCodec{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	tc.setupGeneral()
	tc.setupVersion()
	tc.setupEncode()
	tc.setupDecode()
	tc.setupList()

	return tc
}

// setupGeneral will configure general options
func (tc *TextCodec) setupGeneral() {
	if _, err := tc.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
	if _, err := tc.parser.AddGroup("Alphabets", "Custom alphabets", &args.Alphabets); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

// setupVersion adds the `version` command
func (tc *TextCodec) setupVersion() {
	_, err := tc.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		version.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (tc *TextCodec) setupEncode() {
	tc.encode = encode.NewCommand()
	_, err := tc.parser.AddCommand(
		"encode",
		"Encode text",
		"Encode the text given as arguments (or read from stdin) with the selected codec",
		tc.encode,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (tc *TextCodec) setupDecode() {
	tc.decode = decode.NewCommand()
	_, err := tc.parser.AddCommand(
		"decode",
		"Decode text",
		"Decode the text given as arguments (or read from stdin) with the selected codec",
		tc.decode,
	)
	util.MustErrorNilOrExit(err)
}

// setupList adds the `list` command
func (tc *TextCodec) setupList() {
	_, err := tc.parser.AddCommand(
		"list",
		"List codecs and alphabets",
		"List the available codecs and radix alphabets, including the custom ones",
		list.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// loadConfiguration applies the yaml configuration file to the commands and option groups
func (tc *TextCodec) loadConfiguration(file string) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return &flags.Error{
			Type:    ErrConfigFileDoesNotExist,
			Message: fmt.Sprintf("Configuration file %s does not exist.", file),
		}
	}

	yamlParser := tcFlags.NewYamlParser(tc.parser)

	args.General.ConfigurationFilePath = file
	return yamlParser.ParseFile(file)
}

// main starts textcodec and reads the configuration file
func main() {

	textCodec := NewTextCodec()
	args.General.ConfigurationFile = textCodec.loadConfiguration

	_, err := textCodec.parser.Parse()
	util.MustErrorNilOrExit(err)

}
