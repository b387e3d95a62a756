package tasks

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

// SystemPrompt returns the system prompt for email task extraction.
func SystemPrompt() string {
	return systemPrompt
}

// UserPrompt builds the user prompt for email task extraction.
func UserPrompt(emailText string) string {
	var buf bytes.Buffer
	data := struct{ EmailText string }{EmailText: emailText}
	if err := userTemplate.Execute(&buf, data); err != nil {
		return userPromptTmpl
	}
	return buf.String()
}

// Prompt keys
const (
	SystemPromptKey = "schemas.tasks.system"
	UserPromptKey   = "schemas.tasks.user"
)

// RegisterPrompts registers the task extraction prompts with the resolver.
func RegisterPrompts(r *prompts.Resolver) {
	r.Register(prompts.EmbeddedPrompt{
		Key:         SystemPromptKey,
		Text:        systemPrompt,
		Description: "Email task extraction system prompt - maps urgency cues to priority levels",
	})
	r.Register(prompts.EmbeddedPrompt{
		Key:         UserPromptKey,
		Text:        userPromptTmpl,
		Description: "Email task extraction user prompt template",
	})
}
