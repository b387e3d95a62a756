package extract

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/inboundlab/triage/internal/llmcall"
	"github.com/inboundlab/triage/internal/providers"
)

func testFormat() *providers.ResponseFormat {
	return &providers.ResponseFormat{
		Type: "json_schema",
		JSONSchema: json.RawMessage(`{
			"name":"test_record",
			"strict":true,
			"schema":{
				"type":"object",
				"properties":{
					"priority":{"type":"string","enum":["high","medium","low"]},
					"score":{"type":"number","minimum":-1.0,"maximum":1.0}
				},
				"required":["priority","score"],
				"additionalProperties":false
			}
		}`),
	}
}

func testRequest(input string) Request {
	return Request{
		SchemaName:   "test_record",
		Format:       testFormat(),
		Instructions: "extract the record",
		InputText:    input,
	}
}

func TestExtract_Success(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ResponseJSON = json.RawMessage(`{"priority":"high","score":0.5}`)

	ex := New(mock)
	raw, err := ex.Extract(context.Background(), testRequest("some input"))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("unmarshal error = %v", err)
	}
	if parsed["priority"] != "high" {
		t.Errorf("priority = %v, want high", parsed["priority"])
	}
}

func TestExtract_EmptyInputSkipsProvider(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ResponseJSON = json.RawMessage(`{"priority":"high","score":0.5}`)
	ex := New(mock)

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := ex.Extract(context.Background(), testRequest(input))
		if !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("Extract(%q) error = %v, want ErrEmptyInput", input, err)
		}
	}

	if mock.RequestCount() != 0 {
		t.Errorf("provider called %d times for empty input, want 0", mock.RequestCount())
	}
}

func TestExtract_CollaboratorFailure(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ShouldFail = true
	ex := New(mock)

	_, err := ex.Extract(context.Background(), testRequest("some input"))

	var collab *CollaboratorError
	if !errors.As(err, &collab) {
		t.Fatalf("error = %v, want *CollaboratorError", err)
	}
	if collab.Provider != providers.MockClientName {
		t.Errorf("Provider = %q, want %q", collab.Provider, providers.MockClientName)
	}
}

func TestExtract_SchemaViolation(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"enum outside closed set", `{"priority":"super_urgent","score":0.5}`},
		{"score above bound", `{"priority":"high","score":1.5}`},
		{"score below bound", `{"priority":"high","score":-2.0}`},
		{"missing required field", `{"priority":"high"}`},
		{"wrong type", `{"priority":3,"score":0.5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := providers.NewMockClient()
			mock.ResponseJSON = json.RawMessage(tt.response)
			ex := New(mock)

			_, err := ex.Extract(context.Background(), testRequest("some input"))

			var violation *SchemaViolationError
			if !errors.As(err, &violation) {
				t.Fatalf("error = %v, want *SchemaViolationError", err)
			}
			if violation.SchemaName != "test_record" {
				t.Errorf("SchemaName = %q, want test_record", violation.SchemaName)
			}
		})
	}
}

func TestExtract_Idempotent(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ResponseJSON = json.RawMessage(`{"priority":"medium","score":-0.25}`)
	ex := New(mock)

	req := testRequest("identical input")
	first, err := ex.Extract(context.Background(), req)
	if err != nil {
		t.Fatalf("first Extract() error = %v", err)
	}
	second, err := ex.Extract(context.Background(), req)
	if err != nil {
		t.Fatalf("second Extract() error = %v", err)
	}

	if string(first) != string(second) {
		t.Errorf("identical requests yielded different records:\n%s\n%s", first, second)
	}
}

func TestExtract_RecordsCalls(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ResponseJSON = json.RawMessage(`{"priority":"low","score":0.0}`)
	recorder := llmcall.NewRecorder(nil)
	ex := New(mock, WithRecorder(recorder))

	req := testRequest("some input")
	req.PromptKey = "schemas.test.system"
	if _, err := ex.Extract(context.Background(), req); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	calls := recorder.Calls()
	if len(calls) != 1 {
		t.Fatalf("recorded calls = %d, want 1", len(calls))
	}
	if calls[0].PromptKey != "schemas.test.system" {
		t.Errorf("PromptKey = %q", calls[0].PromptKey)
	}
	if calls[0].Temperature == nil || *calls[0].Temperature != DefaultTemperature {
		t.Errorf("Temperature = %v, want %v", calls[0].Temperature, DefaultTemperature)
	}
	if !calls[0].Success {
		t.Error("expected recorded call to be successful")
	}
}

func TestExtract_DefaultsTemperature(t *testing.T) {
	mock := providers.NewMockClient()
	mock.ResponseJSON = json.RawMessage(`{"priority":"low","score":0.0}`)
	recorder := llmcall.NewRecorder(nil)
	ex := New(mock, WithRecorder(recorder))

	req := testRequest("some input")
	req.Temperature = 0.7
	if _, err := ex.Extract(context.Background(), req); err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	calls := recorder.Calls()
	if len(calls) != 1 || calls[0].Temperature == nil || *calls[0].Temperature != 0.7 {
		t.Fatalf("explicit temperature not honored: %+v", calls)
	}
}
