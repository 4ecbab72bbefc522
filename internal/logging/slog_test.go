package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlog(slog.New(handler))

	t.Run("debug messages include fields", func(t *testing.T) {
		buf.Reset()
		logger.Debug("solving", "clusters", 10)

		require.Contains(t, buf.String(), "solving")
		require.Contains(t, buf.String(), "clusters=10")
	})

	t.Run("info messages are written", func(t *testing.T) {
		buf.Reset()
		logger.Info("partition complete", "status", "optimal")

		require.Contains(t, buf.String(), "partition complete")
		require.Contains(t, buf.String(), "status=optimal")
	})

	t.Run("warn messages are written", func(t *testing.T) {
		buf.Reset()
		logger.Warn("deviation above tolerance")

		require.Contains(t, buf.String(), "deviation above tolerance")
	})

	t.Run("error messages are written", func(t *testing.T) {
		buf.Reset()
		logger.Error("solve failed", "err", "timeout")

		require.Contains(t, buf.String(), "solve failed")
	})
}

func TestNewSlogDefault(t *testing.T) {
	require.NotNil(t, NewSlogDefault())
}
