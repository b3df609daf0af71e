package util

import (
	"os"
	"sync"
	"testing"

	"bou.ke/monkey"
	"github.com/bokysan/textcodec/internal/util/enc"
	"github.com/bokysan/textcodec/internal/util/text"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// seqMutex makes sure that we are executing the code sequentially, as we are monkey-patching the code in-memory.
// This is not thread safe or safe in any kind of way
var seqMutex sync.Mutex

// patchExit replaces os.Exit with a function recording the exit code. Call the returned function to undo it.
func patchExit(t *testing.T) (*int, func()) {
	seqMutex.Lock()
	exitCode := -1
	patch := monkey.Patch(os.Exit, func(i int) {
		exitCode = i
	})
	return &exitCode, func() {
		patch.Unpatch()
		seqMutex.Unlock()
	}
}

func Test_MustErrorNilOrExit_NilError(t *testing.T) {
	exitCode, restore := patchExit(t)
	defer restore()

	MustErrorNilOrExit(nil)

	require.Equal(t, -1, *exitCode, "MustErrorNilOrExit existed the program and it shouldn't have done so.")
}

func Test_MustErrorNilOrExit_FlagsError(t *testing.T) {
	exitCode, restore := patchExit(t)
	defer restore()

	err := &flags.Error{
		Type:    flags.ErrShortNameTooLong,
		Message: "Short name too long",
	}

	MustErrorNilOrExit(err)

	require.Equal(t, int(flags.ErrShortNameTooLong), *exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_Help(t *testing.T) {
	exitCode, restore := patchExit(t)
	defer restore()

	MustErrorNilOrExit(&flags.Error{Type: flags.ErrHelp})

	require.Equal(t, 0, *exitCode)
}

func Test_MustErrorNilOrExit_GenericError(t *testing.T) {
	exitCode, restore := patchExit(t)
	defer restore()

	MustErrorNilOrExit(errors.New("demo"))

	require.Equal(t, int(ErrGeneric), *exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_CodecError(t *testing.T) {
	exitCode, restore := patchExit(t)
	defer restore()

	_, err := enc.Decode85("<~9jqov~>")
	MustErrorNilOrExit(errors.Wrap(err, "decode"))

	require.Equal(t, ErrInvalidCharacter, *exitCode)
}

func Test_ExitCode(t *testing.T) {
	_, err := enc.Decode("ff", enc.Base16Alphabet)
	require.Equal(t, ErrMalformedText, ExitCode(err))

	_, err = enc.Decode85("uuuuu")
	require.Equal(t, ErrGroupOverflow, ExitCode(err))

	_, err = enc.FromName("nope")
	require.Equal(t, ErrUnknownCodec, ExitCode(err))

	require.Equal(t, ErrMalformedText, ExitCode(&text.MalformedTextError{}))
	require.Equal(t, 0, ExitCode(nil))
}
