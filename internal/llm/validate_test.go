package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var adviceTestSchema = &Schema{
	Name:        "validate-test-advice",
	Description: "test schema",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"message"},
		"properties": map[string]any{
			"message": map[string]any{"type": "string"},
		},
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	err := validateResponse(adviceTestSchema, json.RawMessage(`{"message":"hello"}`))
	if err != nil {
		t.Fatalf("unexpected error for valid payload: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	err := validateResponse(adviceTestSchema, json.RawMessage(`{}`))
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(adviceTestSchema, json.RawMessage(`{not json`))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`plain text`)); err != nil {
		t.Fatalf("nil schema must accept anything, got %v", err)
	}
}
