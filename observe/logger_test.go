package observe

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

// TestLogger_IncludesCallFields verifies call fields are present in log output.
func TestLogger_IncludesCallFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	meta := CallMeta{
		Function:  "apiCache",
		Subfolder: "123",
		Cacheable: true,
	}

	callLogger := logger.WithCall(meta)
	callLogger.Info(context.Background(), "test message")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log output as JSON: %v\nOutput: %s", err, buf.String())
	}

	if v, ok := logEntry["memo.function"].(string); !ok || v != "apiCache" {
		t.Errorf("expected memo.function='apiCache', got %v", logEntry["memo.function"])
	}
	if v, ok := logEntry["memo.subfolder"].(string); !ok || v != "123" {
		t.Errorf("expected memo.subfolder='123', got %v", logEntry["memo.subfolder"])
	}
	if v, ok := logEntry["memo.cacheable"].(bool); !ok || !v {
		t.Errorf("expected memo.cacheable=true, got %v", logEntry["memo.cacheable"])
	}
}

// TestLogger_OmitsEmptySubfolder verifies no subfolder field when empty.
func TestLogger_OmitsEmptySubfolder(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	callLogger := logger.WithCall(CallMeta{Function: "f"})
	callLogger.Info(context.Background(), "test message")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log output as JSON: %v", err)
	}
	if _, present := logEntry["memo.subfolder"]; present {
		t.Error("expected no memo.subfolder field for root entries")
	}
}

// TestLogger_IncludesDuration verifies duration_ms field is present.
func TestLogger_IncludesDuration(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	callLogger := logger.WithCall(CallMeta{Function: "f"})
	callLogger.Info(context.Background(), "test message",
		Field{Key: "duration_ms", Value: 50.5},
	)

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log output as JSON: %v", err)
	}

	if v, ok := logEntry["duration_ms"].(float64); !ok || v != 50.5 {
		t.Errorf("expected duration_ms=50.5, got %v", logEntry["duration_ms"])
	}
}

// TestLogger_ErrorLevel verifies error log level and error field.
func TestLogger_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	callLogger := logger.WithCall(CallMeta{Function: "f"})
	callLogger.Error(context.Background(), "call failed",
		Field{Key: "error", Value: "connection timeout"},
	)

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log output as JSON: %v", err)
	}

	if v, ok := logEntry["level"].(string); !ok || v != "error" {
		t.Errorf("expected level='error', got %v", logEntry["level"])
	}
	if v, ok := logEntry["error"].(string); !ok || v != "connection timeout" {
		t.Errorf("expected error='connection timeout', got %v", logEntry["error"])
	}
}

// TestLogger_LevelFiltering verifies debug messages are dropped at info level.
func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Debug(context.Background(), "should be dropped")
	if buf.Len() != 0 {
		t.Errorf("debug message was not filtered: %s", buf.String())
	}

	logger.Info(context.Background(), "should appear")
	if buf.Len() == 0 {
		t.Error("info message was filtered at info level")
	}
}

// TestLogger_RedactsArgs verifies argument fields are redacted.
func TestLogger_RedactsArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter("info", &buf)

	logger.Info(context.Background(), "call",
		Field{Key: "args", Value: []any{"secret-token"}},
		Field{Key: "api_key", Value: "abc123"},
		Field{Key: "safe", Value: "visible"},
	)

	out := buf.String()
	if strings.Contains(out, "secret-token") || strings.Contains(out, "abc123") {
		t.Errorf("sensitive values leaked: %s", out)
	}

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log output as JSON: %v", err)
	}
	if logEntry["args"] != "[REDACTED]" {
		t.Errorf("expected args redacted, got %v", logEntry["args"])
	}
	if logEntry["safe"] != "visible" {
		t.Errorf("expected safe field preserved, got %v", logEntry["safe"])
	}
}

// TestParseLogLevel verifies level parsing with unknown fallback.
func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
