package tasks

import "fmt"

// Priority classifies the urgency of extracted tasks. Closed set: the model
// must pick one of the three values, anything else is a validation failure.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether the priority is a member of the closed set.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ExtractionSchema is the JSON schema for email task extraction output.
var ExtractionSchema = map[string]any{
	"type": "json_schema",
	"json_schema": map[string]any{
		"name":   "email_task",
		"strict": true,
		"schema": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"sender": map[string]any{
					"type":        "string",
					"description": "Email sender's name or email address",
				},
				"date": map[string]any{
					"type":        "string",
					"description": "Date when the email was sent, as written",
				},
				"action_items": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Specific, actionable tasks mentioned in the email",
				},
				"priority": map[string]any{
					"type":        "string",
					"enum":        []string{"high", "medium", "low"},
					"description": "Priority level based on urgency indicators in the email",
				},
				"deadline": map[string]any{
					"type":        []string{"string", "null"},
					"description": "Specific deadline mentioned in the email, null if not specified",
				},
				"context": map[string]any{
					"type":        "string",
					"description": "Brief summary of the email context for the tasks",
				},
			},
			"required":             []string{"sender", "date", "action_items", "priority", "deadline", "context"},
			"additionalProperties": false,
		},
	},
}

// Result is a structured task record extracted from email content.
// Records are immutable value objects built fresh per extraction call.
type Result struct {
	Sender      string   `json:"sender"`
	Date        string   `json:"date"`
	ActionItems []string `json:"action_items"`
	Priority    Priority `json:"priority"`
	Deadline    *string  `json:"deadline"`
	Context     string   `json:"context"`
}

// Validate enforces the closed priority set on a parsed record. Providers
// claiming schema-conformant output are not trusted with enum membership.
func (r *Result) Validate() error {
	if !r.Priority.Valid() {
		return fmt.Errorf("priority %q is not one of high, medium, low", r.Priority)
	}
	return nil
}
