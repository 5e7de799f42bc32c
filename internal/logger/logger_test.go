package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoggerLevels(t *testing.T) {
	t.Run("info hides debug", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLoggerWithOptions(LoggerOptions{Writer: &buf, NoColor: true})
		l.Debug("hidden")
		l.Info("shown", zap.String("kind", "Withdrawn"))

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "INFO")
		assert.Contains(t, out, "shown")
		assert.Contains(t, out, `"kind": "Withdrawn"`)
	})
	t.Run("verbose shows debug", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLoggerWithOptions(LoggerOptions{Verbose: true, Writer: &buf, NoColor: true})
		l.Zap().Debug("details")
		assert.Contains(t, buf.String(), "DEBUG")
		assert.Contains(t, buf.String(), "details")
	})
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(false, &buf)

	ctx := WithLogger(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))

	type otherKey string
	foreign := context.WithValue(context.Background(), otherKey("logger"), l)
	assert.Same(t, GetLogger(), FromContext(foreign))
}
