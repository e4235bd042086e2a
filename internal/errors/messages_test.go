// Package errors_test tests structured CLI error message generation and remediation steps.
// Related: internal/errors/messages.go
// Tags: errors, cli-errors, messages, remediation, error-categories
package errors

import (
	"strings"
	"testing"
)

func TestUnreadableFile(t *testing.T) {
	cause := New("is a directory")
	err := UnreadableFile(".github/agents/deploy.agent.md", cause)

	if err.Category != Runtime {
		t.Errorf("Expected Runtime category, got %v", err.Category)
	}
	if !strings.Contains(err.Message, "deploy.agent.md") {
		t.Error("Expected message to contain path")
	}
	if err.Unwrap() != cause {
		t.Error("Expected cause to be preserved")
	}
}

func TestMissingRoot(t *testing.T) {
	err := MissingRoot("/no/such/dir")

	if err.Category != Prerequisite {
		t.Errorf("Expected Prerequisite category, got %v", err.Category)
	}
	if !strings.Contains(err.Message, "/no/such/dir") {
		t.Error("Expected message to contain path")
	}
	if len(err.Remediation) == 0 {
		t.Error("Expected remediation steps")
	}
}

func TestInvalidRegistry(t *testing.T) {
	err := InvalidRegistry("registry.yaml", New("parse"))

	if err.Category != Configuration {
		t.Errorf("Expected Configuration category, got %v", err.Category)
	}
	if !strings.Contains(err.Message, "registry.yaml") {
		t.Error("Expected message to contain path")
	}
}

func TestInvalidConfig(t *testing.T) {
	err := InvalidConfig(New("bad json"))

	if err.Category != Configuration {
		t.Errorf("Expected Configuration category, got %v", err.Category)
	}
	if len(err.Remediation) == 0 {
		t.Error("Expected remediation steps")
	}
}

func TestNoFilesGiven(t *testing.T) {
	err := NoFilesGiven()

	if err.Category != Argument {
		t.Errorf("Expected Argument category, got %v", err.Category)
	}
	if err.Usage == "" {
		t.Error("Expected non-empty usage")
	}
}

func TestUnexpectedArgs(t *testing.T) {
	err := UnexpectedArgs("artifactcheck validate", "artifactcheck validate [flags]", []string{"extra", "more"})

	if err.Category != Argument {
		t.Errorf("Expected Argument category, got %v", err.Category)
	}
	if !strings.Contains(err.Message, `"extra"`) {
		t.Errorf("Expected message to name the first argument, got %q", err.Message)
	}
	if err.Usage == "" {
		t.Error("Expected non-empty usage")
	}
}

func TestInvalidFlag(t *testing.T) {
	cause := New("unknown flag: --bogus")
	err := InvalidFlag("artifactcheck", "artifactcheck [flags]", cause)

	if err.Category != Argument {
		t.Errorf("Expected Argument category, got %v", err.Category)
	}
	if err.Message != "unknown flag: --bogus" {
		t.Errorf("Expected cobra message, got %q", err.Message)
	}
	if err.Unwrap() != cause {
		t.Error("Expected cause to be preserved")
	}
}
