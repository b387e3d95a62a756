package llmcall

import (
	"log/slog"
	"sync"

	"github.com/inboundlab/triage/internal/providers"
)

// defaultMaxCalls bounds the in-memory call history.
const defaultMaxCalls = 256

// Recorder captures LLM calls in a bounded in-memory history and logs each
// one through slog.
type Recorder struct {
	mu       sync.Mutex
	calls    []Call
	maxCalls int
	logger   *slog.Logger
}

// NewRecorder creates a new LLM call recorder.
func NewRecorder(logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		maxCalls: defaultMaxCalls,
		logger:   logger,
	}
}

// Record captures an LLM call.
func (r *Recorder) Record(result *providers.ChatResult, opts RecordOptions) {
	call := FromChatResult(result, opts)
	if call == nil {
		return
	}
	r.RecordCall(call)
}

// RecordCall captures an already-constructed Call.
func (r *Recorder) RecordCall(call *Call) {
	if call == nil {
		return
	}

	r.mu.Lock()
	r.calls = append(r.calls, *call)
	if len(r.calls) > r.maxCalls {
		r.calls = r.calls[len(r.calls)-r.maxCalls:]
	}
	r.mu.Unlock()

	attrs := []any{
		"id", call.ID,
		"prompt_key", call.PromptKey,
		"provider", call.Provider,
		"model", call.Model,
		"latency_ms", call.LatencyMs,
		"input_tokens", call.InputTokens,
		"output_tokens", call.OutputTokens,
	}
	if call.Success {
		r.logger.Debug("llm call", attrs...)
	} else {
		r.logger.Warn("llm call failed", append(attrs, "error", call.Error)...)
	}
}

// Calls returns a copy of the recorded call history, oldest first.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}
