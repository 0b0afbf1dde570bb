package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	// Create a buffer to capture output
	buf := &bytes.Buffer{}
	log := NewLoggerWithOutput(buf)

	// Test Info logging
	log.Info("There are 5 epireads.", String("input", "reads.txt"), Int("records", 5))
	output := buf.String()
	if !strings.Contains(output, "INFO") {
		t.Errorf("Expected INFO in output, got: %s", output)
	}
	if !strings.Contains(output, "There are 5 epireads.") {
		t.Errorf("Expected message in output, got: %s", output)
	}
	if !strings.Contains(output, "input=reads.txt") {
		t.Errorf("Expected input=reads.txt in output, got: %s", output)
	}
	if !strings.Contains(output, "records=5") {
		t.Errorf("Expected records=5 in output, got: %s", output)
	}

	buf.Reset()

	// Test Error logging
	testErr := errors.New("cannot open input file")
	log.Error("Sampling failed", testErr, String("phase", "counting"))
	output = buf.String()
	if !strings.Contains(output, "ERROR") {
		t.Errorf("Expected ERROR in output, got: %s", output)
	}
	if !strings.Contains(output, "error=cannot open input file") {
		t.Errorf("Expected error=cannot open input file in output, got: %s", output)
	}
	if !strings.Contains(output, "phase=counting") {
		t.Errorf("Expected phase=counting in output, got: %s", output)
	}

	buf.Reset()

	// Test WithFields
	logWithFields := log.WithFields(String("input", "reads.txt"))
	logWithFields.Info("Message with persistent field", Uint64("seed", 42))
	output = buf.String()
	if !strings.Contains(output, "input=reads.txt") {
		t.Errorf("Expected input=reads.txt in output, got: %s", output)
	}
	if !strings.Contains(output, "seed=42") {
		t.Errorf("Expected seed=42 in output, got: %s", output)
	}
}

func TestLoggerLevelThreshold(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		emit     func(Logger)
		expected string
	}{
		{
			name:     "debug dropped at error level",
			level:    LevelError,
			emit:     func(l Logger) { l.Debug("phase started") },
			expected: "",
		},
		{
			name:     "info dropped at warn level",
			level:    LevelWarn,
			emit:     func(l Logger) { l.Info("There are 3 epireads.") },
			expected: "",
		},
		{
			name:     "warn kept at warn level",
			level:    LevelWarn,
			emit:     func(l Logger) { l.Warn("output close failed") },
			expected: "WARN: output close failed",
		},
		{
			name:     "error kept at error level",
			level:    LevelError,
			emit:     func(l Logger) { l.Error("run failed", errors.New("boom")) },
			expected: "ERROR: run failed {error=boom}",
		},
		{
			name:     "debug kept at debug level",
			level:    LevelDebug,
			emit:     func(l Logger) { l.Debug("phase started", String("phase", "emitting")) },
			expected: "DEBUG: phase started {phase=emitting}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.emit(NewLoggerWithLevel(buf, tt.level))
			output := buf.String()
			if tt.expected == "" {
				if output != "" {
					t.Errorf("Expected no output, got: %s", output)
				}
				return
			}
			if !strings.Contains(output, tt.expected) {
				t.Errorf("Expected %q in output, got: %s", tt.expected, output)
			}
		})
	}
}

func TestWithFieldsDoesNotLeakBetweenChildren(t *testing.T) {
	buf := &bytes.Buffer{}
	parent := NewLoggerWithOutput(buf).WithFields(String("input", "reads.txt"))

	first := parent.WithFields(String("phase", "counting"))
	second := parent.WithFields(String("phase", "emitting"))

	first.Info("one")
	second.Info("two")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "phase=counting") || strings.Contains(lines[0], "phase=emitting") {
		t.Errorf("Unexpected fields in first line: %s", lines[0])
	}
	if !strings.Contains(lines[1], "phase=emitting") || strings.Contains(lines[1], "phase=counting") {
		t.Errorf("Unexpected fields in second line: %s", lines[1])
	}
}

func TestLevelString(t *testing.T) {
	if got := LevelWarn.String(); got != "WARN" {
		t.Errorf("Expected WARN, got: %s", got)
	}
	if got := Level(99).String(); got != "INFO" {
		t.Errorf("Expected INFO for unknown level, got: %s", got)
	}
}
