package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":         zerolog.InfoLevel,
		"debug":    zerolog.DebugLevel,
		" WARN ":   zerolog.WarnLevel,
		"nonsense": zerolog.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetupWritesConsoleAndFile(t *testing.T) {
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "aramps.log")
	c, err := Setup(WithConsole(&buf), WithFile(path), WithLevel(zerolog.WarnLevel))
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}

	log.Info().Msg("hidden")
	log.Warn().Str("path", "players.csv").Msg("table missing")
	if err := c.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "table missing") {
		t.Fatalf("unexpected console output %q", out)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(b), "players.csv") {
		t.Fatalf("expected file output, got %q", b)
	}
}
