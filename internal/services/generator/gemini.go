package generator

import (
	"context"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/killallgit/scout-api/pkg/errors"
	"github.com/killallgit/scout-api/pkg/logger"
	"google.golang.org/genai"
)

const (
	DefaultModel   = "gemini-1.5-flash"
	DefaultTimeout = 60 * time.Second
)

// Config configures the Gemini client
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // empty uses the public endpoint
	// Timeout bounds each call; zero disables it
	Timeout    time.Duration
	HTTPClient *http.Client
}

// GeminiGenerator calls the Gemini generateContent API
type GeminiGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *logger.Logger
}

// NewGemini creates a Gemini-backed generator
func NewGemini(ctx context.Context, cfg Config, log *logger.Logger) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, apperrors.ConfigError("model.api_key", "is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if log == nil {
		log = logger.Nop()
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeConfigInvalid, "failed to create Gemini client")
	}

	return &GeminiGenerator{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  log.With("component", "generator", "model", cfg.Model),
	}, nil
}

// Generate sends a single-turn text prompt. No retries are attempted.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, params Params) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	temperature := params.Temperature
	topK := params.TopK
	topP := params.TopP
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopK:            &topK,
		TopP:            &topP,
		MaxOutputTokens: params.MaxOutputTokens,
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		g.logger.Error("Gemini request failed", "error", err, "elapsed", time.Since(start))
		return "", apperrors.UpstreamError("gemini", err)
	}

	text := responseText(resp)
	g.logger.Debug("Gemini request completed", "elapsed", time.Since(start), "chars", len(text))
	return text, nil
}

// responseText joins the text parts of the first candidate. A response with no
// candidates yields "".
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
