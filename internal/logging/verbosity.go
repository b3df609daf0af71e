package logging

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// DefaultLevel is used when no -v flag is given: warnings and errors only
const DefaultLevel = log.WarnLevel

// SetVerbosity defines the verbosity level of the application. Every -v flag raises the level by one,
// starting at DefaultLevel and stopping at trace.
func SetVerbosity(v []bool) {
	verbosity := DefaultLevel + log.Level(len(v))
	if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	log.SetLevel(verbosity)
}

func VerbosityName() string {
	return strings.ToUpper(log.GetLevel().String())
}
