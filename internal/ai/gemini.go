package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Options configures the model handle.
type Options struct {
	Model       string
	Temperature float32
	// Timeout bounds a single GenerateContent call. Zero means no extra bound beyond ctx.
	Timeout time.Duration
}

// Gemini is the long-lived model handle. It is built once at startup and only read afterwards,
// so it is safe for concurrent use by request handlers.
type Gemini struct {
	client  *genai.Client
	model   ContentGenerator
	name    string
	timeout time.Duration
	log     *zap.Logger
}

// NewGemini configures the Gemini client with apiKey and binds one model.
// A construction failure is logged and yields an unavailable handle; the caller keeps running.
func NewGemini(ctx context.Context, apiKey string, opts Options, log *zap.Logger) *Gemini {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Gemini{name: opts.Model, timeout: opts.Timeout, log: log}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		log.Error("gemini client unavailable, generation requests will be rejected",
			zap.String("model", opts.Model), zap.Error(err))
		return g
	}

	model := client.GenerativeModel(opts.Model)
	model.SetTemperature(opts.Temperature)

	g.client = client
	g.model = model
	return g
}

// NewGeminiWithModel wraps an already-built generator. A nil model yields an unavailable handle.
func NewGeminiWithModel(name string, model ContentGenerator, timeout time.Duration, log *zap.Logger) *Gemini {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gemini{model: model, name: name, timeout: timeout, log: log}
}

// Close cleans up the Gemini client resources.
func (g *Gemini) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

func (g *Gemini) Available() bool {
	return g != nil && g.model != nil
}

func (g *Gemini) Model() string {
	return g.name
}

// Generate submits prompt once. No retries.
func (g *Gemini) Generate(ctx context.Context, prompt string) (res Result) {
	if !g.Available() {
		return failure(ReasonUnavailable, ErrUnavailable)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			res = failure(ReasonServiceError, fmt.Errorf("gemini: panic during generation: %v", r))
		}
	}()

	start := time.Now()
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return failure(ReasonServiceError, fmt.Errorf("gemini generation error: %w", err))
	}

	text, ok := JoinText(resp)
	if !ok {
		return failure(ReasonEmptyResponse, ErrEmptyResponse)
	}

	g.log.Debug("gemini generation complete",
		zap.String("model", g.name),
		zap.Int("prompt_chars", len(prompt)),
		zap.Int("response_chars", len(text)),
		zap.Duration("latency", time.Since(start)))
	return success(text)
}

// JoinText concatenates, in order and without separators, the text fragments of the
// first candidate. ok is false when there is no candidate or no non-empty text.
func JoinText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil || resp.Candidates[0].Content == nil {
		return "", false
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}
	if responseText.Len() == 0 {
		return "", false
	}
	return responseText.String(), true
}
