package logging

import (
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

const maxCallerDepth = 25

// ContextHook will add go source information (file, line, func) of the code which called the logger
type ContextHook struct{}

// Levels defines which logging levels fire the hook. In our case, all levels.
func (hook ContextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire walks up the call stack, skipping logrus frames, and records the first frame outside of it.
func (hook ContextHook) Fire(entry *logrus.Entry) error {
	pcs := make([]uintptr, maxCallerDepth)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !isLogrusFrame(frame.Function) {
			entry.Data["file"] = path.Base(frame.File)
			entry.Data["line"] = frame.Line
			entry.Data["func"] = path.Base(frame.Function)
			return nil
		}
		if !more {
			return nil
		}
	}
}

func isLogrusFrame(function string) bool {
	if strings.Contains(function, "github.com/sirupsen/logrus") {
		return true
	}
	name := path.Base(function)
	return strings.HasPrefix(name, "logging.ContextHook.") || strings.HasPrefix(name, "logging.(*ContextHook).")
}
