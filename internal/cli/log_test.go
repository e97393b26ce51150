package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Debug("orbit cache key computed")
	if buf.Len() != 0 {
		t.Errorf("debug line should be filtered at info level, got %q", buf.String())
	}

	logger.Info("enumerated orbit", "grids", 3)
	out := buf.String()
	if !strings.Contains(out, "enumerated orbit") {
		t.Errorf("info line missing from output %q", out)
	}
	if !strings.Contains(out, "grids=3") {
		t.Errorf("structured field missing from output %q", out)
	}
}

func TestNewLoggerDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.DebugLevel)

	logger.Debug("scanning rectangles")
	if !strings.Contains(buf.String(), "scanning rectangles") {
		t.Errorf("debug line should pass at debug level, got %q", buf.String())
	}
}

func TestProgressReportsDuration(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	time.Sleep(5 * time.Millisecond)
	prog.done("job dominant finished")

	out := buf.String()
	if !strings.Contains(out, "job dominant finished") {
		t.Errorf("done message missing from output %q", out)
	}
	if !strings.Contains(out, "ms") && !strings.Contains(out, "s)") {
		t.Errorf("elapsed duration missing from output %q", out)
	}
}
