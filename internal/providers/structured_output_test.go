package providers

import (
	"encoding/json"
	"testing"
)

func TestParseStructuredJSON(t *testing.T) {
	t.Run("plain JSON", func(t *testing.T) {
		raw, err := parseStructuredJSON(`{"a": 1}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(raw) != `{"a":1}` {
			t.Errorf("got %s", raw)
		}
	})

	t.Run("fenced JSON", func(t *testing.T) {
		raw, err := parseStructuredJSON("```json\n{\"a\": 1}\n```")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(raw) != `{"a":1}` {
			t.Errorf("got %s", raw)
		}
	})

	t.Run("JSON with surrounding prose", func(t *testing.T) {
		raw, err := parseStructuredJSON("Here is the result:\n{\"a\": 1}\nDone.")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(raw) != `{"a":1}` {
			t.Errorf("got %s", raw)
		}
	})

	t.Run("empty output", func(t *testing.T) {
		if _, err := parseStructuredJSON("   "); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("no JSON at all", func(t *testing.T) {
		if _, err := parseStructuredJSON("sorry, I cannot help"); err == nil {
			t.Error("expected error")
		}
	})
}

func TestValidateStructuredJSON(t *testing.T) {
	schema := json.RawMessage(`{
		"type": "json_schema",
		"json_schema": {
			"name": "test",
			"strict": true,
			"schema": {
				"type": "object",
				"properties": {"name": {"type": "string"}},
				"required": ["name"],
				"additionalProperties": false
			}
		}
	}`)

	t.Run("valid document", func(t *testing.T) {
		if err := validateStructuredJSON(schema, json.RawMessage(`{"name":"x"}`)); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		if err := validateStructuredJSON(schema, json.RawMessage(`{}`)); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("extra field", func(t *testing.T) {
		if err := validateStructuredJSON(schema, json.RawMessage(`{"name":"x","other":1}`)); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("empty schema is a no-op", func(t *testing.T) {
		if err := validateStructuredJSON(nil, json.RawMessage(`{"anything":true}`)); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
