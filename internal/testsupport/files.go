package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"scrollsub/internal/danmaku"
)

// WriteEvents encodes events as a JSON array at path, creating parent
// directories, and returns path.
func WriteEvents(t testing.TB, path string, events []danmaku.Event) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		t.Fatalf("marshal events: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
