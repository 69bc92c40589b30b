package log

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)
	return logs
}

func TestFatal(t *testing.T) {
	logs := observe(t)
	ExitOnFatal = false
	defer func() {
		ExitOnFatal = true
	}()
	testStr := "test-string"

	Fatal(testStr)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
	assert.True(t, strings.Contains(logs.All()[0].Message, testStr))
}

func TestWarnIfErr(t *testing.T) {
	logs := observe(t)
	testDescr := "description"
	testError := errors.New("test-string")

	WarnIfErr(testDescr, nil)
	WarnIfErr(testDescr, testError)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, testDescr, entry.Message)
	assert.Equal(t, testError.Error(), entry.ContextMap()["error"])
}

func TestErrIfErr(t *testing.T) {
	logs := observe(t)
	testDescr := "description"
	testError := errors.New("test-string")

	ErrIfErr(testDescr, nil)
	ErrIfErr(testDescr, testError)

	require.Equal(t, 1, logs.FilterMessage(testDescr).Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}

func TestInit(t *testing.T) {
	restore := zap.ReplaceGlobals(zap.NewNop())
	defer restore()

	require.NoError(t, Init("warn"))
	assert.False(t, zap.L().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, zap.L().Core().Enabled(zapcore.WarnLevel))

	require.Error(t, Init("chatty"))
}
