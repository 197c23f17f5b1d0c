package runner

import (
	"context"
	"fmt"
	"strings"
)

// Fake is a scripted Runner for tests. Calls are recorded in order, and
// per-command results can be registered by command prefix.
//
// Matching is prefix-based on the joined command line, so registering
// "docker network inspect" covers any network name argument.
type Fake struct {
	// Calls records every executed command line in order.
	Calls []string

	// Errors maps command-line prefixes to errors returned by Run/Output.
	Errors map[string]error

	// Outputs maps command-line prefixes to Output results.
	Outputs map[string]string

	// MissingBinaries lists names LookPath should fail for.
	MissingBinaries []string
}

// NewFake returns an empty scripted runner that succeeds for every command.
func NewFake() *Fake {
	return &Fake{
		Errors:  make(map[string]error),
		Outputs: make(map[string]string),
	}
}

func (f *Fake) record(name string, args ...string) string {
	line := strings.TrimSpace(name + " " + strings.Join(args, " "))
	f.Calls = append(f.Calls, line)
	return line
}

func (f *Fake) lookup(line string) error {
	for prefix, err := range f.Errors {
		if strings.HasPrefix(line, prefix) {
			return err
		}
	}
	return nil
}

// Run records the call and returns any scripted error.
func (f *Fake) Run(ctx context.Context, name string, args ...string) error {
	return f.lookup(f.record(name, args...))
}

// Output records the call and returns scripted output or error.
func (f *Fake) Output(ctx context.Context, name string, args ...string) (string, error) {
	line := f.record(name, args...)
	if err := f.lookup(line); err != nil {
		return "", err
	}
	for prefix, out := range f.Outputs {
		if strings.HasPrefix(line, prefix) {
			return out, nil
		}
	}
	return "", nil
}

// LookPath fails for names listed in MissingBinaries.
func (f *Fake) LookPath(name string) (string, error) {
	for _, missing := range f.MissingBinaries {
		if name == missing {
			return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
		}
	}
	return "/usr/bin/" + name, nil
}

// CalledWith reports whether any recorded call starts with the given prefix.
func (f *Fake) CalledWith(prefix string) bool {
	for _, call := range f.Calls {
		if strings.HasPrefix(call, prefix) {
			return true
		}
	}
	return false
}
