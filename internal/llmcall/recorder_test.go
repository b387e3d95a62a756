package llmcall

import (
	"testing"
	"time"

	"github.com/inboundlab/triage/internal/providers"
)

func chatResult(success bool) *providers.ChatResult {
	result := &providers.ChatResult{
		Content:          `{"ok":true}`,
		PromptTokens:     120,
		CompletionTokens: 40,
		ExecutionTime:    250 * time.Millisecond,
		Provider:         "mock",
		ModelUsed:        "mock-model",
		Success:          success,
	}
	if !success {
		result.ErrorMessage = "boom"
	}
	return result
}

func TestFromChatResult(t *testing.T) {
	temp := 0.3
	call := FromChatResult(chatResult(true), RecordOptions{
		PromptKey:   "schemas.tasks.system",
		Temperature: &temp,
	})
	if call == nil {
		t.Fatal("FromChatResult() = nil")
	}
	if call.ID == "" {
		t.Error("expected a generated call ID")
	}
	if call.PromptKey != "schemas.tasks.system" {
		t.Errorf("PromptKey = %q", call.PromptKey)
	}
	if call.InputTokens != 120 || call.OutputTokens != 40 {
		t.Errorf("tokens = %d/%d, want 120/40", call.InputTokens, call.OutputTokens)
	}
	if call.LatencyMs != 250 {
		t.Errorf("LatencyMs = %d, want 250", call.LatencyMs)
	}
	if call.Temperature == nil || *call.Temperature != 0.3 {
		t.Errorf("Temperature = %v, want 0.3", call.Temperature)
	}

	if FromChatResult(nil, RecordOptions{}) != nil {
		t.Error("FromChatResult(nil) should return nil")
	}
}

func TestFromChatResult_Failure(t *testing.T) {
	call := FromChatResult(chatResult(false), RecordOptions{PromptKey: "k"})
	if call.Success {
		t.Error("Success = true, want false")
	}
	if call.Error != "boom" {
		t.Errorf("Error = %q, want boom", call.Error)
	}
}

func TestRecorder_RecordAndCalls(t *testing.T) {
	r := NewRecorder(nil)

	r.Record(chatResult(true), RecordOptions{PromptKey: "a"})
	r.Record(chatResult(false), RecordOptions{PromptKey: "b"})
	r.Record(nil, RecordOptions{}) // ignored

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}

	calls := r.Calls()
	if calls[0].PromptKey != "a" || calls[1].PromptKey != "b" {
		t.Errorf("calls out of order: %q, %q", calls[0].PromptKey, calls[1].PromptKey)
	}

	// Calls() must return a copy, not the live slice.
	calls[0].PromptKey = "mutated"
	if r.Calls()[0].PromptKey != "a" {
		t.Error("Calls() exposed internal state")
	}
}

func TestRecorder_BoundsHistory(t *testing.T) {
	r := NewRecorder(nil)
	r.maxCalls = 3

	for i := 0; i < 5; i++ {
		r.Record(chatResult(true), RecordOptions{PromptKey: string(rune('a' + i))})
	}

	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	calls := r.Calls()
	if calls[0].PromptKey != "c" || calls[2].PromptKey != "e" {
		t.Errorf("expected oldest entries evicted, got %q..%q", calls[0].PromptKey, calls[2].PromptKey)
	}
}
