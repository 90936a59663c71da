package ai

import (
	"context"

	"github.com/google/generative-ai-go/genai"
)

// ContentGenerator is the subset of *genai.GenerativeModel the client calls.
// Tests substitute a fake so no network is touched.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// TextGenerator turns a prompt into generated text.
// Generate never panics and never returns a Go error; every outcome is carried in Result.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) Result
	Available() bool
	Model() string
}
