package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts the remote generative backend. The advisor treats
// any Provider error as a soft failure and degrades to its deterministic
// fallback; providers never need to guarantee success.
type Provider interface {
	// Generate sends one request to the backend and returns its output.
	// When the request carries a Schema, the returned Content is JSON
	// validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes a single generation request.
type Request struct {
	// System sets the backend's role and constraints.
	System string

	// Messages is the conversation. Coursemate sends single-turn
	// requests: one user message carrying the structured prompt.
	Messages []Message

	// Schema, when set, makes the provider request structured JSON output
	// and validate the response against it.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in [0,1]. Zero means deterministic output.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "advice".
	Name string

	// Description tells the backend what the schema represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the backend's output.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise raw text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
