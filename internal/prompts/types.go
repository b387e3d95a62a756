// Package prompts provides prompt management with embedded defaults.
//
// Embedded .tmpl files in code are the source of truth. Each schema package
// registers its prompts with the Resolver at startup, which gives the CLI a
// single place to list every prompt with its variables and content hash.
package prompts

// EmbeddedPrompt represents a prompt loaded from an embedded .tmpl file.
type EmbeddedPrompt struct {
	Key         string   // Hierarchical key: schemas.tasks.system
	Text        string   // The prompt text (Go template)
	Description string   // Human-readable description
	Variables   []string // Extracted template variables
	Hash        string   // SHA256 hash of the text for change detection
}

// ResolvedPrompt is the result of resolving a prompt key.
type ResolvedPrompt struct {
	Key       string   `json:"key"`
	Text      string   `json:"text"`
	Variables []string `json:"variables,omitempty"`
	Hash      string   `json:"hash"`
}
