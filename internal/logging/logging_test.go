package logging

import (
	"bytes"
	"testing"

	"github.com/bokysan/textcodec/internal/args"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func Test_SetVerbosity(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	SetVerbosity(nil)
	require.Equal(t, log.WarnLevel, log.GetLevel())
	require.Equal(t, "WARNING", VerbosityName())

	SetVerbosity([]bool{true, true})
	require.Equal(t, log.DebugLevel, log.GetLevel())
	require.Equal(t, "DEBUG", VerbosityName())

	SetVerbosity(make([]bool, 10))
	require.Equal(t, log.TraceLevel, log.GetLevel())
}

func Test_ContextHook(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&log.JSONFormatter{})
	logger.AddHook(&ContextHook{})

	logger.Warn("hello")

	require.Contains(t, buf.String(), `"file":"logging_test.go"`)
	require.Contains(t, buf.String(), `"func":"logging.Test_ContextHook"`)
}

func Test_IsLogrusFrame(t *testing.T) {
	require.True(t, isLogrusFrame("github.com/sirupsen/logrus.(*Entry).Log"))
	require.True(t, isLogrusFrame("github.com/bokysan/textcodec/internal/logging.ContextHook.Fire"))
	require.True(t, isLogrusFrame("github.com/bokysan/textcodec/internal/logging.(*ContextHook).Fire"))
	require.False(t, isLogrusFrame("github.com/bokysan/textcodec/internal/logging.Test_ContextHook"))
	require.False(t, isLogrusFrame("main.main"))
}

func Test_SetupLoggingAddsCallerHookOnce(t *testing.T) {
	hooks := log.StandardLogger().ReplaceHooks(make(log.LevelHooks))
	level := log.GetLevel()
	defer func() {
		log.StandardLogger().ReplaceHooks(hooks)
		log.SetLevel(level)
		args.General.LogReportCaller = false
	}()

	args.General.LogReportCaller = true
	for i := 0; i < 3; i++ {
		require.NoError(t, SetupLogging())
	}
	require.Len(t, log.StandardLogger().Hooks[log.WarnLevel], 1)
}
