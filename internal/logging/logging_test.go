package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"todolists/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"warn":    log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"bogus":   log.InfoLevel,
		"":        log.InfoLevel,
	}
	for in, want := range tests {
		if got := logging.ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseFormatter(t *testing.T) {
	if logging.ParseFormatter("json") != log.JSONFormatter {
		t.Error("expected json formatter")
	}
	if logging.ParseFormatter("logfmt") != log.LogfmtFormatter {
		t.Error("expected logfmt formatter")
	}
	if logging.ParseFormatter("other") != log.TextFormatter {
		t.Error("expected text formatter fallback")
	}
}

func TestValid(t *testing.T) {
	if !logging.ValidLevel("Debug") || logging.ValidLevel("loud") {
		t.Error("unexpected ValidLevel result")
	}
	if !logging.ValidFormat("json") || logging.ValidFormat("xml") {
		t.Error("unexpected ValidFormat result")
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.Options{Level: "info", Format: "json", Prefix: "todolists"})

	logger.Debug("hidden")
	logger.Info("request", "route", "lists", "status", 200)

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Error("debug line must be filtered at info level")
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(out), &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", out, err)
	}
	if entry["msg"] != "request" || entry["route"] != "lists" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestDiscard(t *testing.T) {
	logging.Discard().Error("nothing to see")
}
