package prompt

import (
	"bytes"
	"strings"
	"testing"
)

// TestLine tests plain line prompts
func TestLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple value", input: "42\n", want: "42"},
		{name: "trims whitespace", input: "  hello world \n", want: "hello world"},
		{name: "empty line", input: "\n", want: ""},
		{name: "no trailing newline", input: "7", want: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewWithStreams(strings.NewReader(tt.input), &out)

			got, err := p.Line("Worker index")
			if err != nil {
				t.Fatalf("Line() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), "Worker index") {
				t.Error("prompt label not written to output stream")
			}
		})
	}
}

// TestLineEOF tests that exhausted input surfaces an error
func TestLineEOF(t *testing.T) {
	p := NewWithStreams(strings.NewReader(""), &bytes.Buffer{})
	if _, err := p.Line("anything"); err == nil {
		t.Fatal("Line() should fail on empty input stream")
	}
}

// TestLineDefault tests default substitution on empty input
func TestLineDefault(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   string
		want  string
	}{
		{name: "uses default on enter", input: "\n", def: "allora-worker", want: "allora-worker"},
		{name: "keeps explicit value", input: "my-key\n", def: "allora-worker", want: "my-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewWithStreams(strings.NewReader(tt.input), &out)

			got, err := p.LineDefault("Wallet key name", tt.def)
			if err != nil {
				t.Fatalf("LineDefault() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("LineDefault() = %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), tt.def) {
				t.Error("default value not shown in the prompt label")
			}
		})
	}
}

// TestSecretFallback tests that non-TTY secret prompts read a plain line
func TestSecretFallback(t *testing.T) {
	var out bytes.Buffer
	p := NewWithStreams(strings.NewReader("correct horse battery staple\n"), &out)

	got, err := p.Secret("Mnemonic")
	if err != nil {
		t.Fatalf("Secret() unexpected error: %v", err)
	}
	if got != "correct horse battery staple" {
		t.Errorf("Secret() = %q", got)
	}
}
