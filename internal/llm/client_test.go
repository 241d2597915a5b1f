package llm

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRequestKeepsTemperatureOnWire(t *testing.T) {
	c, err := New("test-key", "gpt-4.1")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	body, err := json.Marshal(c.request("system text", "user text"))
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	// A zero temperature is dropped by omitempty, which silently re-enables
	// default sampling. The request must always carry the field.
	if !strings.Contains(string(body), `"temperature"`) {
		t.Fatalf("temperature missing from request body: %s", body)
	}
}

func TestNewRejectsEmptyKey(t *testing.T) {
	if _, err := New("", "gpt-4.1"); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
