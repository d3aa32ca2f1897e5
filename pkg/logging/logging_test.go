package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			var console bytes.Buffer
			SetupLoggerTo(&console, tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			logPath := filepath.Join(tempDir, "ruleflow", "ruleflow.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")

	got := LogFilePath()
	want := filepath.Join("/custom/state", "ruleflow", "ruleflow.log")
	if got != want {
		t.Errorf("LogFilePath() = %s, want %s", got, want)
	}
}

func TestLogFilePath_HomeFallback(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "")

	got := LogFilePath()
	if !strings.HasSuffix(filepath.ToSlash(got), ".local/state/ruleflow/ruleflow.log") {
		t.Errorf("LogFilePath() = %s, want ~/.local/state fallback", got)
	}
}

func TestGetLogger_TagsComponent(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("parser")
	logger.Info().Msg("hello")

	if !strings.Contains(buf.String(), `"component":"parser"`) {
		t.Errorf("component field missing from %s", buf.String())
	}
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	LogCommand("rules", []string{"--format", "json"})

	out := buf.String()
	for _, want := range []string{"rules", "--format", "Executing command"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	done := LogOperationStart(logger, "transform")
	done()

	out := buf.String()
	if !strings.Contains(out, "Operation started") || !strings.Contains(out, "Operation completed") {
		t.Errorf("unexpected output %q", out)
	}
	if !strings.Contains(out, "duration") {
		t.Errorf("duration missing from %q", out)
	}
}
