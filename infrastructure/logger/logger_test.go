package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

type bufferCloser struct {
	sync.Mutex
	bytes.Buffer
}

func (b *bufferCloser) Write(p []byte) (int, error) {
	b.Lock()
	defer b.Unlock()
	return b.Buffer.Write(p)
}

func (b *bufferCloser) Close() error { return nil }

func (b *bufferCloser) String() string {
	b.Lock()
	defer b.Unlock()
	return b.Buffer.String()
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		ok       bool
	}{
		{"trace", LevelTrace, true},
		{"DBG", LevelDebug, true},
		{"Info", LevelInfo, true},
		{"wrn", LevelWarn, true},
		{"error", LevelError, true},
		{"critical", LevelCritical, true},
		{"off", LevelOff, true},
		{"loud", LevelInfo, false},
	}
	for _, test := range tests {
		level, ok := LevelFromString(test.input)
		if level != test.expected || ok != test.ok {
			t.Fatalf("LevelFromString(%q): expected (%s, %t), got (%s, %t)",
				test.input, test.expected, test.ok, level, ok)
		}
	}
}

func TestLevelUnmarshalFlag(t *testing.T) {
	var level Level
	if err := level.UnmarshalFlag("debug"); err != nil {
		t.Fatalf("UnmarshalFlag: unexpected error: %s", err)
	}
	if level != LevelDebug {
		t.Fatalf("UnmarshalFlag: expected %s, got %s", LevelDebug, level)
	}
	if err := level.UnmarshalFlag("nonsense"); err == nil {
		t.Fatalf("UnmarshalFlag: expected an error for an unknown level")
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	backend := NewBackendWithFlags(0)
	out := &bufferCloser{}
	if err := backend.AddLogWriter(out, LevelTrace); err != nil {
		t.Fatalf("AddLogWriter: %s", err)
	}
	if err := backend.Run(); err != nil {
		t.Fatalf("Run: %s", err)
	}

	log := backend.Logger("TEST")
	log.SetLevel(LevelWarn)
	log.Infof("filtered %d", 1)
	log.Warnf("kept %d", 2)
	backend.Close()

	// Close waits for the writer goroutine to drain.
	deadline := time.Now().Add(time.Second)
	for backend.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	written := out.String()
	if strings.Contains(written, "filtered") {
		t.Fatalf("TestLoggerFiltersByLevel: info message should have been filtered, got %q", written)
	}
	if !strings.Contains(written, "[WRN] TEST: kept 2") {
		t.Fatalf("TestLoggerFiltersByLevel: expected warning line, got %q", written)
	}
}
