package tasks

import (
	"context"
	"encoding/json"

	"github.com/inboundlab/triage/internal/extract"
	"github.com/inboundlab/triage/internal/providers"
)

// maxCompletionTokens is sufficient for typical email task extraction.
const maxCompletionTokens = 500

// CreateRequest builds an extraction request for the given email text.
func CreateRequest(emailText string) extract.Request {
	return extract.Request{
		SchemaName:   "email_task",
		Format:       buildResponseFormat(),
		Instructions: SystemPrompt(),
		InputText:    emailText,
		UserPrompt:   UserPrompt(emailText),
		PromptKey:    SystemPromptKey,
		MaxTokens:    maxCompletionTokens,
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

// Extract runs one email-to-tasks extraction call and returns a validated
// task record or a typed failure.
func Extract(ctx context.Context, ex *extract.Extractor, emailText string) (*Result, error) {
	raw, err := ex.Extract(ctx, CreateRequest(emailText))
	if err != nil {
		return nil, err
	}

	result, err := ParseResult(raw)
	if err != nil {
		return nil, &extract.SchemaViolationError{SchemaName: "email_task", Err: err}
	}
	if err := result.Validate(); err != nil {
		return nil, &extract.SchemaViolationError{SchemaName: "email_task", Err: err}
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
