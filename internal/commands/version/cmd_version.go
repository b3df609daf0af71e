package version

import (
	"fmt"
	"io"

	"github.com/bokysan/textcodec/internal/version"
	"github.com/k0kubun/go-ansi"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the version details of the application
type Command struct {
	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		out: ansi.NewAnsiStdout(),
	}
}

func (i *Command) String() string {
	return "Version details"
}

//goland:noinspection GoUnhandledErrorResult
func (i *Command) Execute(args []string) error {
	PrintVersion(i.out)
	line := func(label, value string) {
		if value != "" {
			fmt.Fprintf(i.out, DarkGray+" %-12s"+White+"%+v"+Reset+"\n", label, value)
		}
	}
	line("Git tag", version.GitTag)
	line("Git branch", version.GitBranch)
	line("Git state", version.GitState)
	line("Go version", version.GoVersion)
	return nil
}

//goland:noinspection GoUnhandledErrorResult
func PrintVersion(out io.Writer) {
	if out == nil {
		out = ansi.NewAnsiStdout()
	}
	fmt.Fprintf(out, Bold+BackgroundBlue+
		LightGray+" TEXTCODEC - radix and ascii85 text codecs "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitCommit)
}
