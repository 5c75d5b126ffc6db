package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scrollsub/internal/config"
)

func TestConsoleInfoHighlightsFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger = NewComponentLogger(logger, "convert")
	logger.Info("conversion complete",
		String(FieldRunID, "abc"),
		Int("placed_events", 3),
		Int("total_events", 4),
		String(FieldEventType, "conversion_complete"),
	)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if !strings.Contains(lines[0], "INFO [convert] – conversion complete") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	wantOrder := []string{"    - Event: conversion_complete", "    - Comments: 4", "    - Placed: 3", "    + 1 more field hidden"}
	if len(lines) != len(wantOrder)+1 {
		t.Fatalf("expected %d lines, got %q", len(wantOrder)+1, out)
	}
	for i, want := range wantOrder {
		if lines[i+1] != want {
			t.Fatalf("line %d = %q, want %q", i+1, lines[i+1], want)
		}
	}
}

func TestConsoleDebugListsAllFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.WithGroup("lane").Debug("placed", Int(FieldTrack, 2), Bool("overflow", false))

	out := buf.String()
	for _, want := range []string{"DEBUG", "lane.track: 2", "lane.overflow: false", "logger_test.go:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestConsoleSuppressesBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestJSONHandlerShape(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Warn("lanes saturated", Int("overflowed_events", 2), Error(errors.New("boom")))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v (%q)", err, buf.String())
	}
	if payload["level"] != "warn" {
		t.Fatalf("level = %v", payload["level"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts key in %v", payload)
	}
	if payload["overflowed_events"] != float64(2) {
		t.Fatalf("overflowed_events = %v", payload["overflowed_events"])
	}
	if payload["error"] != "boom" {
		t.Fatalf("error = %v", payload["error"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml", Writer: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	WarnWithContext(logger, "comment skipped", "comment_skipped", String(FieldImpact, "comment not rendered"))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload[FieldEventType] != "comment_skipped" {
		t.Fatalf("event_type = %v", payload[FieldEventType])
	}
	if payload[FieldImpact] != "comment not rendered" {
		t.Fatalf("impact = %v", payload[FieldImpact])
	}
	if payload[FieldErrorHint] == nil {
		t.Fatal("expected default error_hint")
	}
	WarnWithContext(nil, "ignored", "noop")
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.StateDir = t.TempDir()
	cfg.Logging.File = true
	cfg.Logging.Format = "json"

	logger, err := NewFromConfig(&cfg, "debug")
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	logger.Debug("written to file")

	data, err := os.ReadFile(cfg.LogPath())
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Fatalf("log file missing entry: %q", data)
	}
	if filepath.Dir(cfg.LogPath()) != cfg.Paths.StateDir {
		t.Fatalf("log path %q outside state dir", cfg.LogPath())
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(t.Context(), 100) {
		t.Fatal("nop logger should be disabled")
	}
	logger.Error("nothing")
}
