package logging

import (
	"errors"
	"log/slog"
	"testing"
)

func TestWithOperation(t *testing.T) {
	logger := slog.Default()
	result := WithOperation(logger, "tasks.list")
	if result == nil {
		t.Error("WithOperation returned nil")
	}
}

func TestWithTool(t *testing.T) {
	logger := slog.Default()
	result := WithTool(logger, "task_list_tasks")
	if result == nil {
		t.Error("WithTool returned nil")
	}
}

func TestOperationAttr(t *testing.T) {
	attr := Operation("tasks.create")
	if attr.Key != KeyOperation {
		t.Errorf("Operation key = %q, want %q", attr.Key, KeyOperation)
	}
	if attr.Value.String() != "tasks.create" {
		t.Errorf("Operation value = %q, want %q", attr.Value.String(), "tasks.create")
	}
}

func TestTaskIDAttr(t *testing.T) {
	attr := TaskID(42)
	if attr.Key != KeyTaskID {
		t.Errorf("TaskID key = %q, want %q", attr.Key, KeyTaskID)
	}
	if attr.Value.Int64() != 42 {
		t.Errorf("TaskID value = %d, want 42", attr.Value.Int64())
	}
}

func TestFilterAttr(t *testing.T) {
	attr := Filter("Pending")
	if attr.Key != KeyFilter {
		t.Errorf("Filter key = %q, want %q", attr.Key, KeyFilter)
	}
	if attr.Value.String() != "Pending" {
		t.Errorf("Filter value = %q, want %q", attr.Value.String(), "Pending")
	}
}

func TestToolAttr(t *testing.T) {
	attr := Tool("task_create_task")
	if attr.Key != KeyTool {
		t.Errorf("Tool key = %q, want %q", attr.Key, KeyTool)
	}
	if attr.Value.String() != "task_create_task" {
		t.Errorf("Tool value = %q, want %q", attr.Value.String(), "task_create_task")
	}
}

func TestStatusAttr(t *testing.T) {
	attr := Status(StatusSuccess)
	if attr.Key != KeyStatus {
		t.Errorf("Status key = %q, want %q", attr.Key, KeyStatus)
	}
	if attr.Value.String() != StatusSuccess {
		t.Errorf("Status value = %q, want %q", attr.Value.String(), StatusSuccess)
	}
}

func TestHTTPCodeAttr(t *testing.T) {
	attr := HTTPCode(403)
	if attr.Key != KeyHTTPCode {
		t.Errorf("HTTPCode key = %q, want %q", attr.Key, KeyHTTPCode)
	}
	if attr.Value.Int64() != 403 {
		t.Errorf("HTTPCode value = %d, want 403", attr.Value.Int64())
	}
}

func TestErr(t *testing.T) {
	// Test with error
	err := errors.New("test error")
	attr := Err(err)
	if attr.Key != KeyError {
		t.Errorf("Err key = %q, want %q", attr.Key, KeyError)
	}
	if attr.Value.String() != "test error" {
		t.Errorf("Err value = %q, want %q", attr.Value.String(), "test error")
	}

	// Test with nil - should return an empty group that slog will omit
	attr = Err(nil)
	// Empty Group has empty key
	if attr.Key != "" {
		t.Errorf("Err(nil) key = %q, want empty string (empty group)", attr.Key)
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		token    string
		expected string
	}{
		{"", "<empty>"},
		{"abc123", "[token:6 chars]"},
		{"a_very_long_token_string", "[token:24 chars]"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := SanitizeToken(tt.token)
			if result != tt.expected {
				t.Errorf("SanitizeToken(%q) = %q, want %q", tt.token, result, tt.expected)
			}
		})
	}
}

func TestStatusConstants(t *testing.T) {
	if StatusSuccess != "success" {
		t.Errorf("StatusSuccess = %q, want %q", StatusSuccess, "success")
	}
	if StatusError != "error" {
		t.Errorf("StatusError = %q, want %q", StatusError, "error")
	}
}
