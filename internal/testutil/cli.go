package testutil

import (
	"encoding/json"
	"testing"
)

// CLIResult is a decoded --json response.
type CLIResult struct {
	OK      bool                   `json:"ok"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *CLIError              `json:"error,omitempty"`
	RawJSON string                 `json:"-"`
}

// CLIError is the structured error of a failed response.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ParseCLIResult decodes raw JSON output from a command.
func ParseCLIResult(t *testing.T, raw string) *CLIResult {
	t.Helper()
	var result CLIResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v\nraw: %s", err, raw)
	}
	result.RawJSON = raw
	return &result
}

// MustSucceed fails the test if the response is not ok.
func (r *CLIResult) MustSucceed(t *testing.T) *CLIResult {
	t.Helper()
	if !r.OK {
		msg := "unknown error"
		if r.Error != nil {
			msg = r.Error.Code + ": " + r.Error.Message
		}
		t.Fatalf("expected success, got %s\nraw: %s", msg, r.RawJSON)
	}
	return r
}

// MustFailWithCode fails the test unless the response failed with code.
func (r *CLIResult) MustFailWithCode(t *testing.T, code string) *CLIResult {
	t.Helper()
	if r.OK {
		t.Fatalf("expected failure with %s, got success\nraw: %s", code, r.RawJSON)
	}
	if r.Error == nil || r.Error.Code != code {
		t.Fatalf("expected error code %s, got %+v\nraw: %s", code, r.Error, r.RawJSON)
	}
	return r
}

// DataString returns a string field of the data payload.
func (r *CLIResult) DataString(key string) string {
	if r.Data == nil {
		return ""
	}
	s, _ := r.Data[key].(string)
	return s
}
