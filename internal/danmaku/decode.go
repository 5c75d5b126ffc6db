package danmaku

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoPayload is returned when the input holds no JSON value at all.
var ErrNoPayload = errors.New("no comment payload")

type envelope struct {
	Comments []Event `json:"comments"`
}

// Decode reads comments from r. The payload is either a JSON array of
// records or an object with a "comments" array.
func Decode(r io.Reader) ([]Event, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read comments: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrNoPayload
	}

	switch trimmed[0] {
	case '[':
		var events []Event
		if err := json.Unmarshal(trimmed, &events); err != nil {
			return nil, fmt.Errorf("decode comment array: %w", err)
		}
		return events, nil
	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, fmt.Errorf("decode comment object: %w", err)
		}
		return env.Comments, nil
	default:
		return nil, fmt.Errorf("decode comments: expected JSON array or object, got %q", trimmed[0])
	}
}

// ReadFile decodes comments from the file at path.
func ReadFile(path string) ([]Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open comments: %w", err)
	}
	defer file.Close()

	events, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return events, nil
}
