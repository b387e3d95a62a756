// Package extract orchestrates schema-constrained extraction from
// unstructured text. One call submits fixed instructions plus input text to
// an LLM provider with a declared output schema and returns either a
// schema-conformant record or a typed failure. The core is fail-fast: no
// retry and no re-prompt happens here.
package extract

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/inboundlab/triage/internal/llmcall"
	"github.com/inboundlab/triage/internal/providers"
)

// DefaultTemperature biases the model toward consistent categorical choices
// while leaving phrasing latitude for free-text fields.
const DefaultTemperature = 0.3

// Request describes one extraction call.
type Request struct {
	// SchemaName identifies the declared output shape (e.g. "email_task").
	SchemaName string

	// Format is the declared output schema submitted to the provider and
	// used for local validation of the response.
	Format *providers.ResponseFormat

	// Instructions is the fixed system guidance mapping unstructured text
	// to the schema's fields.
	Instructions string

	// InputText is the raw unstructured text to analyze.
	InputText string

	// UserPrompt is the rendered user message. Defaults to InputText.
	UserPrompt string

	// PromptKey links the call record to the registered prompt.
	PromptKey string

	// Generation parameters. Temperature defaults to DefaultTemperature.
	Model       string
	Temperature float64
	MaxTokens   int
}

// Extractor performs extraction calls against a single LLM client.
// It is stateless between calls and safe for concurrent use.
type Extractor struct {
	client   providers.LLMClient
	recorder *llmcall.Recorder
	logger   *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithRecorder attaches an LLM call recorder.
func WithRecorder(r *llmcall.Recorder) Option {
	return func(e *Extractor) { e.recorder = r }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) { e.logger = l }
}

// New creates an Extractor backed by the given client.
func New(client providers.LLMClient, opts ...Option) *Extractor {
	e := &Extractor{
		client: client,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract submits one extraction call and returns the validated record as
// raw JSON. Failures are typed: ErrEmptyInput before any provider call,
// *CollaboratorError for transport/auth/quota failures, and
// *SchemaViolationError for non-conformant output.
func (e *Extractor) Extract(ctx context.Context, req Request) (json.RawMessage, error) {
	if strings.TrimSpace(req.InputText) == "" {
		return nil, ErrEmptyInput
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}
	userPrompt := req.UserPrompt
	if userPrompt == "" {
		userPrompt = req.InputText
	}

	chatReq := &providers.ChatRequest{
		Messages: []providers.Message{
			{Role: "system", Content: req.Instructions},
			{Role: "user", Content: userPrompt},
		},
		Model:          req.Model,
		Temperature:    temperature,
		MaxTokens:      req.MaxTokens,
		ResponseFormat: req.Format,
	}

	result, err := e.client.Chat(ctx, chatReq)
	e.record(result, req, temperature)

	if err != nil {
		return nil, &CollaboratorError{Provider: e.client.Name(), Err: err}
	}
	if !result.Success {
		// Chat succeeded at the transport level but the content could not
		// be parsed as JSON.
		return nil, &SchemaViolationError{
			SchemaName: req.SchemaName,
			Err:        errorFromResult(result),
		}
	}

	if err := providers.ValidateStructuredJSON(req.Format.JSONSchema, result.ParsedJSON); err != nil {
		return nil, &SchemaViolationError{SchemaName: req.SchemaName, Err: err}
	}

	e.logger.Debug("extraction complete",
		"schema", req.SchemaName,
		"provider", result.Provider,
		"model", result.ModelUsed,
		"prompt_tokens", result.PromptTokens,
		"completion_tokens", result.CompletionTokens)

	return result.ParsedJSON, nil
}

func (e *Extractor) record(result *providers.ChatResult, req Request, temperature float64) {
	if e.recorder == nil || result == nil {
		return
	}
	e.recorder.Record(result, llmcall.RecordOptions{
		PromptKey:   req.PromptKey,
		Temperature: &temperature,
	})
}

func errorFromResult(result *providers.ChatResult) error {
	if result.ErrorMessage != "" {
		return &resultError{errorType: result.ErrorType, message: result.ErrorMessage}
	}
	return &resultError{errorType: result.ErrorType, message: "provider returned unparseable output"}
}

type resultError struct {
	errorType string
	message   string
}

func (e *resultError) Error() string {
	if e.errorType != "" {
		return e.errorType + ": " + e.message
	}
	return e.message
}
