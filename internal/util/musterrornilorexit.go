package util

import (
	"os"

	"github.com/bokysan/textcodec/internal/util/enc"
	"github.com/bokysan/textcodec/internal/util/text"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Exit codes of the codec errors. They start above the flags.ErrorType range.
const (
	ErrInvalidCharacter = 65
	ErrMalformedText    = 66
	ErrGroupOverflow    = 67
	ErrUnknownCodec     = 68
	ErrGeneric          = 99
)

// ExitCode returns the process exit code for the given error. Error code is unwrapped from
// `flags.Error` object; codec errors have their own codes. If it's a different kind of error, a
// generic error code - 99 - is returned
func ExitCode(err error) int {
	var flagsError *flags.Error
	switch {
	case err == nil:
		return 0
	case errors.As(err, &flagsError):
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	case errors.Is(err, enc.ErrInvalidCharacter):
		return ErrInvalidCharacter
	case errors.Is(err, text.ErrMalformedText):
		return ErrMalformedText
	case errors.Is(err, enc.ErrGroupOverflow):
		return ErrGroupOverflow
	case errors.Is(err, enc.ErrUnknownCodec):
		return ErrUnknownCodec
	default:
		return ErrGeneric
	}
}

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with the code given by
// ExitCode. The help "error" exits with 0, without logging.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %v", err)
	log.Exit(code)
}
