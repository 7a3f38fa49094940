package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevels(t *testing.T) {
	for _, tc := range []struct {
		name          string
		log           func(Logger, string)
		expectedLevel zapcore.Level
	}{
		{
			name:          "Info",
			log:           func(l Logger, msg string) { l.Info(msg) },
			expectedLevel: zapcore.InfoLevel,
		},
		{
			name:          "Debug",
			log:           func(l Logger, msg string) { l.Debug(msg) },
			expectedLevel: zapcore.DebugLevel,
		},
		{
			name:          "Warn",
			log:           func(l Logger, msg string) { l.Warn(msg) },
			expectedLevel: zapcore.WarnLevel,
		},
		{
			name:          "Error",
			log:           func(l Logger, msg string) { l.Error(msg) },
			expectedLevel: zapcore.ErrorLevel,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			observerLogger, logs := observer.New(zap.DebugLevel)
			dut := &ZapLogger{zap.New(observerLogger)}
			const testMessage = "ABC"
			tc.log(dut, testMessage)
			require.Equal(t, 1, logs.Len())

			actualMessage := logs.All()[0]
			require.Equal(t, testMessage, actualMessage.Message)
			require.Empty(t, actualMessage.ContextMap())
			require.Equal(t, tc.expectedLevel, actualMessage.Level)
		})
	}
}

func TestWithFields(t *testing.T) {
	observerLogger, logs := observer.New(zap.DebugLevel)
	logger := &ZapLogger{zap.New(observerLogger)}

	const testMessage = "ABC"

	newLogger := logger.With(
		zap.String("TestOption", "Message"),
	)

	newLogger.Info(testMessage)

	// Check that child message carries the context fields
	expectedZapFields := map[string]interface{}{
		"TestOption": "Message",
	}
	childMessage := logs.All()[0]
	require.Equal(t, expectedZapFields, childMessage.ContextMap())

	// Check that parent message does not carry the context fields
	logger.Info(testMessage)
	parentMessage := logs.All()[1]
	require.Empty(t, parentMessage.ContextMap())
}

func TestNewLogger(t *testing.T) {
	t.Run("none_is_noop", func(t *testing.T) {
		l, err := NewLogger("json", "none")
		require.NoError(t, err)
		require.False(t, l.Core().Enabled(zapcore.ErrorLevel))
	})

	t.Run("unknown_level", func(t *testing.T) {
		_, err := NewLogger("json", "verbose")
		require.EqualError(t, err, "unknown log level: verbose")
	})

	t.Run("unknown_format", func(t *testing.T) {
		_, err := NewLogger("xml", "info")
		require.EqualError(t, err, "unknown log format: xml")
	})

	t.Run("level_is_applied", func(t *testing.T) {
		l, err := NewLogger("text", "warn")
		require.NoError(t, err)
		require.False(t, l.Core().Enabled(zapcore.InfoLevel))
		require.True(t, l.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("must_panics_on_error", func(t *testing.T) {
		require.Panics(t, func() { MustNewLogger("json", "verbose") })
	})
}

func TestObserverLogger(t *testing.T) {
	l, logs := NewObserverLogger("warn")
	l.Info("dropped")
	l.Warn("kept")
	require.Equal(t, 1, logs.Len())
	require.Equal(t, 1, logs.FilterMessage("kept").Len())

	l, logs = NewObserverLogger("bogus")
	l.Debug("fallback is debug")
	require.Equal(t, 1, logs.Len())
}
