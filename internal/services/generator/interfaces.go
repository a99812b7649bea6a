package generator

import "context"

// Params are the sampling settings for one generation call
type Params struct {
	Temperature     float32
	TopK            float32
	TopP            float32
	MaxOutputTokens int32
}

// Generator turns a prompt into free-form model text. The output is untrusted
// and may wrap JSON in prose or markdown.
type Generator interface {
	Generate(ctx context.Context, prompt string, params Params) (string, error)
}
