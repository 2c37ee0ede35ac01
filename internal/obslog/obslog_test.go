/*
File   : ash/internal/obslog/obslog_test.go
Package: obslog
*/
package obslog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhase_WritesAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelDebug)
	logger.Phase("scan", "file", "x.ash")

	assert.Contains(t, buf.String(), "phase")
	assert.Contains(t, buf.String(), "scan")
	assert.Contains(t, buf.String(), "x.ash")
}

func TestDisabled_WritesNothing(t *testing.T) {
	logger := Disabled()
	logger.Phase("scan", "file", "x.ash")
	// Disabled discards to io.Discard, and its level sits above Error,
	// so no record at any standard level is ever emitted.
	assert.False(t, logger.log.Enabled(context.Background(), slog.LevelError))
}

func TestNilLogger_PhaseIsNoop(t *testing.T) {
	var logger *Logger
	assert.NotPanics(t, func() {
		logger.Phase("scan")
	})
}
