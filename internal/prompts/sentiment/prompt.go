package sentiment

import (
	"bytes"
	_ "embed"
	"text/template"

	"github.com/inboundlab/triage/internal/prompts"
)

//go:embed system.tmpl
var systemPrompt string

//go:embed user.tmpl
var userPromptTmpl string

var userTemplate = template.Must(template.New("user").Parse(userPromptTmpl))

// SystemPrompt returns the system prompt for sentiment analysis.
func SystemPrompt() string {
	return systemPrompt
}

// UserPrompt builds the user prompt for sentiment analysis.
func UserPrompt(feedback string) string {
	var buf bytes.Buffer
	data := struct{ Feedback string }{Feedback: feedback}
	if err := userTemplate.Execute(&buf, data); err != nil {
		return userPromptTmpl
	}
	return buf.String()
}

// Prompt keys
const (
	SystemPromptKey = "schemas.sentiment.system"
	UserPromptKey   = "schemas.sentiment.user"
)

// RegisterPrompts registers the sentiment analysis prompts with the resolver.
func RegisterPrompts(r *prompts.Resolver) {
	r.Register(prompts.EmbeddedPrompt{
		Key:         SystemPromptKey,
		Text:        systemPrompt,
		Description: "Sentiment analysis system prompt - churn risk, follow-up triage, and response template rules",
	})
	r.Register(prompts.EmbeddedPrompt{
		Key:         UserPromptKey,
		Text:        userPromptTmpl,
		Description: "Sentiment analysis user prompt template",
	})
}
