package sentiment

import (
	"context"
	"encoding/json"

	"github.com/inboundlab/triage/internal/extract"
	"github.com/inboundlab/triage/internal/providers"
)

// CreateRequest builds an extraction request for the given feedback text.
func CreateRequest(feedback string) extract.Request {
	return extract.Request{
		SchemaName:   "customer_sentiment_analysis",
		Format:       buildResponseFormat(),
		Instructions: SystemPrompt(),
		InputText:    feedback,
		UserPrompt:   UserPrompt(feedback),
		PromptKey:    SystemPromptKey,
	}
}

// ParseResult parses validated extraction output into a Result.
func ParseResult(raw json.RawMessage) (*Result, error) {
	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Extract runs one sentiment analysis call and returns a validated record
// or a typed failure.
func Extract(ctx context.Context, ex *extract.Extractor, feedback string) (*Result, error) {
	raw, err := ex.Extract(ctx, CreateRequest(feedback))
	if err != nil {
		return nil, err
	}

	result, err := ParseResult(raw)
	if err != nil {
		return nil, &extract.SchemaViolationError{SchemaName: "customer_sentiment_analysis", Err: err}
	}
	if err := result.Validate(); err != nil {
		return nil, &extract.SchemaViolationError{SchemaName: "customer_sentiment_analysis", Err: err}
	}
	return result, nil
}

func buildResponseFormat() *providers.ResponseFormat {
	jsonSchema, _ := json.Marshal(ExtractionSchema["json_schema"])
	return &providers.ResponseFormat{
		Type:       "json_schema",
		JSONSchema: jsonSchema,
	}
}
