package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{input: "debug", expected: slog.LevelDebug},
		{input: "info", expected: slog.LevelInfo},
		{input: "warning", expected: slog.LevelWarn},
		{input: "WARN", expected: slog.LevelWarn},
		{input: "Error", expected: slog.LevelError},
		{input: "", expected: slog.LevelInfo},
		{input: "verbose", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestInitLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LogConfig{
		Output:      &buf,
		Level:       "debug",
		Format:      "json",
		ServiceName: "screening-service",
		Environment: "test",
	})

	logger.Debug("risk assessed", "level", "LOW")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if record["service"] != "screening-service" {
		t.Errorf("service = %v, want screening-service", record["service"])
	}
	if record["env"] != "test" {
		t.Errorf("env = %v, want test", record["env"])
	}
	if record["level"] != "DEBUG" {
		t.Errorf("level = %v, want DEBUG", record["level"])
	}
}

func TestInitLoggerServiceAttributes(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		environment string
		wantService bool
		wantEnv     bool
	}{
		{name: "daemon", serviceName: "screening-service", environment: "production", wantService: true, wantEnv: true},
		{name: "service only", serviceName: "screenctl", wantService: true},
		{name: "environment only", environment: "staging", wantEnv: true},
		{name: "neither", serviceName: "", environment: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := InitLogger(LogConfig{
				Output:      &buf,
				Level:       "info",
				Format:      "json",
				ServiceName: tt.serviceName,
				Environment: tt.environment,
			})

			logger.Info("duplicate check completed", "is_duplicate", false)

			var record map[string]any
			if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
				t.Fatalf("log line is not JSON: %v", err)
			}
			if _, ok := record["service"]; ok != tt.wantService {
				t.Errorf("service attribute present = %v, want %v", ok, tt.wantService)
			}
			if _, ok := record["env"]; ok != tt.wantEnv {
				t.Errorf("env attribute present = %v, want %v", ok, tt.wantEnv)
			}
			if record["is_duplicate"] != false {
				t.Errorf("is_duplicate = %v, want false", record["is_duplicate"])
			}
		})
	}
}

func TestInitLoggerFormats(t *testing.T) {
	tests := []struct {
		format   string
		wantJSON bool
	}{
		{format: "json", wantJSON: true},
		{format: "JSON", wantJSON: true},
		{format: "text"},
		{format: ""},
	}

	for _, tt := range tests {
		t.Run("format "+tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			logger := InitLogger(LogConfig{Output: &buf, Level: "info", Format: tt.format, ServiceName: "screenctl"})

			logger.Info("query classified", "intent", "search")

			line := buf.String()
			isJSON := json.Valid(bytes.TrimSpace(buf.Bytes()))
			if isJSON != tt.wantJSON {
				t.Errorf("json output = %v, want %v (%q)", isJSON, tt.wantJSON, line)
			}
			if !tt.wantJSON && !strings.Contains(line, "service=screenctl") {
				t.Errorf("text output missing service attribute: %q", line)
			}
		})
	}
}

func TestInitLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(LogConfig{Output: &buf, Level: "warn", Format: "text"})

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("expected info record to be filtered, got %q", buf.String())
	}

	logger.Warn("kept")
	if buf.Len() == 0 {
		t.Error("expected warn record to be written")
	}
}

func TestInitLoggerSetsDefault(t *testing.T) {
	logger := InitLogger(LogConfig{Output: &bytes.Buffer{}, Level: "info", Format: "json"})

	if logger.Handler() != slog.Default().Handler() {
		t.Error("InitLogger did not set the default logger")
	}
}
