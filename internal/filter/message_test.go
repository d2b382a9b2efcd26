package filter

import (
	"testing"

	"github.com/scmtools/gitlog/internal/git"
)

func TestMessageFilter_Include(t *testing.T) {
	f, err := NewMessageFilter(`(?i)^(fix|bug)`, false)
	if err != nil {
		t.Fatalf("NewMessageFilter: %v", err)
	}

	tests := []struct {
		name     string
		message  string
		expected bool
	}{
		{name: "Matches fix", message: "fix: broken parser", expected: true},
		{name: "Matches uppercase", message: "Fix crash on startup", expected: true},
		{name: "No match", message: "add new feature", expected: false},
		{name: "Match not at start", message: "revert fix", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := git.Commit{Message: tt.message}
			if got := f.Accept(c); got != tt.expected {
				t.Errorf("Accept(%q) = %v, expected %v", tt.message, got, tt.expected)
			}
		})
	}
}

func TestMessageFilter_Exclude(t *testing.T) {
	f, err := NewMessageFilter(`^\[maven-release-plugin\]`, true)
	if err != nil {
		t.Fatalf("NewMessageFilter: %v", err)
	}

	tests := []struct {
		name     string
		message  string
		expected bool
	}{
		{name: "Release noise rejected", message: "[maven-release-plugin] prepare release", expected: false},
		{name: "Regular commit kept", message: "fix: broken parser", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := git.Commit{Message: tt.message}
			if got := f.Accept(c); got != tt.expected {
				t.Errorf("Accept(%q) = %v, expected %v", tt.message, got, tt.expected)
			}
		})
	}
}

func TestMessageFilter_BadPattern(t *testing.T) {
	if _, err := NewMessageFilter(`([unclosed`, false); err == nil {
		t.Fatal("expected error for malformed pattern")
	}
}
