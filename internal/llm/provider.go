package llm

import "context"

// Provider is the gateway to the external text-generation collaborator.
// One call in, raw text out. The gateway enforces no schema on the response;
// parsing and validation belong to the consumers (drills, objective,
// evaluation).
type Provider interface {
	// Generate sends one prompt to the model and returns the raw response
	// text. Blocking, no streaming; a slow call simply delays the caller.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and output contract.
	System string

	// User is the per-call context: niche, struggle, objective, signals.
	User string

	// MaxTokens is the response token budget.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Response holds the model's raw output.
type Response struct {
	// Text is the generated text, unparsed.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
