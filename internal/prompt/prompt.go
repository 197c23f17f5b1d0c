// Package prompt collects interactive operator input for provisioning runs.
//
// Prompts write their labels to stderr so that machine-readable stdout
// output (JSON summaries) stays clean. Secrets are read with terminal echo
// disabled when stdin is a TTY; piped input falls back to plain line reads
// so scripted runs still work.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads operator input from a stream, usually stdin.
type Prompter struct {
	in      *bufio.Reader
	out     io.Writer
	stdinFD int // -1 when input is not the process stdin
}

// New returns a Prompter reading from stdin and labeling on stderr.
func New() *Prompter {
	return &Prompter{
		in:      bufio.NewReader(os.Stdin),
		out:     os.Stderr,
		stdinFD: int(os.Stdin.Fd()),
	}
}

// NewWithStreams returns a Prompter over arbitrary streams for tests and
// scripted input. Secret prompts degrade to plain line reads.
func NewWithStreams(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:      bufio.NewReader(in),
		out:     out,
		stdinFD: -1,
	}
}

// Line prompts for one line of input and returns it trimmed.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input for %s: %w", label, err)
	}
	return strings.TrimSpace(line), nil
}

// LineDefault prompts for one line of input, returning def when the
// operator just presses enter.
func (p *Prompter) LineDefault(label, def string) (string, error) {
	value, err := p.Line(fmt.Sprintf("%s [%s]", label, def))
	if err != nil {
		return "", err
	}
	if value == "" {
		return def, nil
	}
	return value, nil
}

// Secret prompts for sensitive input. Echo is disabled when stdin is a
// terminal; otherwise the value is read like a normal line.
func (p *Prompter) Secret(label string) (string, error) {
	if p.stdinFD >= 0 && term.IsTerminal(p.stdinFD) {
		fmt.Fprintf(p.out, "%s: ", label)
		raw, err := term.ReadPassword(p.stdinFD)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("failed to read secret for %s: %w", label, err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	return p.Line(label)
}
