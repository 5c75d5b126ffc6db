package danmaku

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeArray(t *testing.T) {
	payload := `[
  {"start_ms": 0, "duration_ms": 5000, "text": "hi", "style": {"fontSize": 20, "color": "#FFFFFF"}},
  {"start_ms": 1200, "duration_ms": 4000, "text": "no style"}
]`
	events, err := Decode(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	first := events[0]
	if first.Text != "hi" || first.DurationMS != 5000 || first.Style.FontSize != 20 || first.Style.Color != "#FFFFFF" {
		t.Fatalf("unexpected first event: %#v", first)
	}
	if first.EndMS() != 5000 {
		t.Fatalf("unexpected end: %d", first.EndMS())
	}
	second := events[1]
	if second.HasFontSize() {
		t.Fatalf("expected missing font size, got %v", second.Style.FontSize)
	}
	if second.Style.Color != "" {
		t.Fatalf("expected missing colour, got %q", second.Style.Color)
	}
}

func TestDecodeEnvelope(t *testing.T) {
	payload := `{"comments": [{"start_ms": 10, "duration_ms": 0, "text": ""}]}`
	events, err := Decode(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected unrenderable record to be kept, got %d events", len(events))
	}
}

func TestDecodeRejectsEmptyAndScalarPayloads(t *testing.T) {
	if _, err := Decode(strings.NewReader("   \n")); !errors.Is(err, ErrNoPayload) {
		t.Fatalf("expected ErrNoPayload, got %v", err)
	}
	if _, err := Decode(strings.NewReader(`"text"`)); err == nil {
		t.Fatal("expected error for scalar payload")
	}
	if _, err := Decode(strings.NewReader(`[{"start_ms": "soon"}]`)); err == nil {
		t.Fatal("expected error for mistyped field")
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.json")
	if err := os.WriteFile(path, []byte(`[]`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	events, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
