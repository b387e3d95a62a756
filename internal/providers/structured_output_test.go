package providers

import (
	"encoding/json"
	"testing"
)

func TestParseStructuredJSON_StripsCodeFence(t *testing.T) {
	content := "```json\n{\"ok\":true}\n```"
	got, err := ParseStructuredJSON(content)
	if err != nil {
		t.Fatalf("ParseStructuredJSON() error = %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(got, &parsed); err != nil {
		t.Fatalf("failed to unmarshal parsed JSON: %v", err)
	}
	if ok, _ := parsed["ok"].(bool); !ok {
		t.Fatalf("expected ok=true, got %#v", parsed)
	}
}

func TestParseStructuredJSON_RecoversSurroundingText(t *testing.T) {
	content := "Here is the result:\n{\"priority\":\"high\"}\nLet me know if you need more."
	got, err := ParseStructuredJSON(content)
	if err != nil {
		t.Fatalf("ParseStructuredJSON() error = %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(got, &parsed); err != nil {
		t.Fatalf("failed to unmarshal parsed JSON: %v", err)
	}
	if parsed["priority"] != "high" {
		t.Fatalf("priority = %v, want high", parsed["priority"])
	}
}

func TestParseStructuredJSON_EmptyContent(t *testing.T) {
	if _, err := ParseStructuredJSON("   "); err == nil {
		t.Fatal("expected error for empty content")
	}
}

func TestParseStructuredJSON_Garbage(t *testing.T) {
	if _, err := ParseStructuredJSON("not json at all"); err == nil {
		t.Fatal("expected error for non-JSON content")
	}
}

func TestValidateStructuredJSON_EnforcesNumericBounds(t *testing.T) {
	schema := json.RawMessage(`{
		"name":"sentiment",
		"strict":true,
		"schema":{
			"type":"object",
			"properties":{
				"sentiment_score":{"type":"number","minimum":-1.0,"maximum":1.0}
			},
			"required":["sentiment_score"],
			"additionalProperties":false
		}
	}`)

	valid := json.RawMessage(`{"sentiment_score":0.75}`)
	if err := ValidateStructuredJSON(schema, valid); err != nil {
		t.Fatalf("ValidateStructuredJSON(valid) error = %v", err)
	}

	for _, doc := range []string{`{"sentiment_score":1.5}`, `{"sentiment_score":-2.0}`} {
		if err := ValidateStructuredJSON(schema, json.RawMessage(doc)); err == nil {
			t.Fatalf("ValidateStructuredJSON(%s) expected error, got nil", doc)
		}
	}
}

func TestValidateStructuredJSON_EnforcesEnumMembership(t *testing.T) {
	schema := json.RawMessage(`{
		"schema":{
			"type":"object",
			"properties":{
				"priority":{"type":"string","enum":["high","medium","low"]}
			},
			"required":["priority"],
			"additionalProperties":false
		}
	}`)

	if err := ValidateStructuredJSON(schema, json.RawMessage(`{"priority":"medium"}`)); err != nil {
		t.Fatalf("valid enum value rejected: %v", err)
	}
	if err := ValidateStructuredJSON(schema, json.RawMessage(`{"priority":"super_urgent"}`)); err == nil {
		t.Fatal("out-of-set enum value accepted")
	}
}

func TestValidateStructuredJSON_MissingRequiredField(t *testing.T) {
	schema := json.RawMessage(`{
		"schema":{
			"type":"object",
			"properties":{"sender":{"type":"string"}},
			"required":["sender"],
			"additionalProperties":false
		}
	}`)

	if err := ValidateStructuredJSON(schema, json.RawMessage(`{}`)); err == nil {
		t.Fatal("document missing required field accepted")
	}
}

func TestValidateStructuredJSON_ResponseFormatWrapper(t *testing.T) {
	// Full {"type":"json_schema","json_schema":{"schema":...}} envelope.
	schema := json.RawMessage(`{
		"type":"json_schema",
		"json_schema":{
			"name":"t",
			"schema":{
				"type":"object",
				"properties":{"x":{"type":"integer","minimum":1}},
				"required":["x"]
			}
		}
	}`)

	if err := ValidateStructuredJSON(schema, json.RawMessage(`{"x":3}`)); err != nil {
		t.Fatalf("wrapped schema validation error = %v", err)
	}
	if err := ValidateStructuredJSON(schema, json.RawMessage(`{"x":0}`)); err == nil {
		t.Fatal("expected bound violation through wrapped schema")
	}
}
