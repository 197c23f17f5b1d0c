package provision

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/0xLogan-x/allora-worker/internal/prompt"
	"github.com/0xLogan-x/allora-worker/internal/runner"
	"github.com/0xLogan-x/allora-worker/internal/workerconfig"
)

const testMnemonic = "legal winner thank year wave sausage worth useful legal winner thank yellow"

func testOptions(t *testing.T, base string) Options {
	t.Helper()
	return Options{
		Index:         "1",
		Mnemonic:      testMnemonic,
		APIKey:        "CG-test-key",
		WalletKeyName: "test-wallet",
		BaseDir:       base,
		Network:       "allora-net",
		Runner:        runner.NewFake(),
		Prompter:      prompt.NewWithStreams(strings.NewReader(""), &bytes.Buffer{}),
	}
}

// TestRunFullPipeline tests a complete non-launch provisioning run
func TestRunFullPipeline(t *testing.T) {
	base := t.TempDir()
	opts := testOptions(t, base)

	summary, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	// Workspace artifacts
	for _, path := range []string{
		filepath.Join(base, "worker-data-1", "mnemonic"),
		filepath.Join(base, ".env"),
		filepath.Join(base, "docker-compose.yaml"),
		filepath.Join(base, "config.json"),
		filepath.Join(base, "init.config"),
		filepath.Join(base, "inference", "Dockerfile"),
		filepath.Join(base, "inference", "inference_service.py"),
	} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected artifact %s missing: %v", path, err)
		}
	}

	// Wallet fields populated from options without prompting
	doc, err := workerconfig.Load(filepath.Join(base, "config.json"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if doc.Wallet.AddressKeyName != "test-wallet" {
		t.Errorf("wallet key name = %q, want %q", doc.Wallet.AddressKeyName, "test-wallet")
	}
	if doc.Wallet.AddressRestoreMnemonic != testMnemonic {
		t.Error("wallet mnemonic not patched into config")
	}
	if len(doc.Worker) != 10 {
		t.Errorf("config has %d worker entries, want 10", len(doc.Worker))
	}

	if summary.Launched {
		t.Error("stack should not launch without Launch option")
	}
	if summary.ServiceName != "worker-1" {
		t.Errorf("summary service name = %q", summary.ServiceName)
	}
	if !summary.ConfigCreated || !summary.EnvCreated || !summary.SkeletonCreated {
		t.Error("first run should create env, config, and skeleton")
	}
}

// TestRunInvalidIndexCreatesNothing tests the fail-before-write invariant
func TestRunInvalidIndexCreatesNothing(t *testing.T) {
	tests := []struct {
		name  string
		index string
	}{
		{name: "non-numeric index", index: "abc"},
		{name: "negative index", index: "-2"},
		{name: "decimal index", index: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := t.TempDir()
			opts := testOptions(t, base)
			opts.Index = tt.index

			if _, err := Run(context.Background(), opts); err == nil {
				t.Fatal("Run() should reject an invalid index")
			}

			entries, err := os.ReadDir(base)
			if err != nil {
				t.Fatalf("read base dir: %v", err)
			}
			if len(entries) != 0 {
				t.Errorf("no files should be created on validation failure, found %d entries", len(entries))
			}
		})
	}
}

// TestRunInvalidCredentials tests credential validation failures
func TestRunInvalidCredentials(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(o *Options)
	}{
		{
			name:   "empty mnemonic via prompt EOF",
			mutate: func(o *Options) { o.Mnemonic = "" },
		},
		{
			name:   "invalid mnemonic",
			mutate: func(o *Options) { o.Mnemonic = "not a valid phrase" },
		},
		{
			name:   "empty api key via prompt EOF",
			mutate: func(o *Options) { o.APIKey = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := t.TempDir()
			opts := testOptions(t, base)
			tt.mutate(&opts)

			if _, err := Run(context.Background(), opts); err == nil {
				t.Fatal("Run() should fail on invalid credentials")
			}

			entries, _ := os.ReadDir(base)
			if len(entries) != 0 {
				t.Errorf("no files should be created on validation failure, found %d entries", len(entries))
			}
		})
	}
}

// TestRunExistingDataDir tests that a provisioned index cannot be reused
func TestRunExistingDataDir(t *testing.T) {
	base := t.TempDir()
	if err := os.Mkdir(filepath.Join(base, "worker-data-1"), 0o700); err != nil {
		t.Fatalf("setup: %v", err)
	}
	marker := filepath.Join(base, "worker-data-1", "keep")
	if err := os.WriteFile(marker, []byte("x"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	opts := testOptions(t, base)
	if _, err := Run(context.Background(), opts); err == nil {
		t.Fatal("Run() should refuse to reuse an existing data directory")
	}

	if _, err := os.Stat(marker); err != nil {
		t.Error("existing data directory contents must be left untouched")
	}
}

// TestRunTwoIndices tests that two runs yield two independent workers
func TestRunTwoIndices(t *testing.T) {
	base := t.TempDir()

	for _, index := range []string{"1", "2"} {
		opts := testOptions(t, base)
		opts.Index = index
		if _, err := Run(context.Background(), opts); err != nil {
			t.Fatalf("Run() for index %s: %v", index, err)
		}
	}

	for _, index := range []string{"1", "2"} {
		if _, err := os.Stat(filepath.Join(base, "worker-data-"+index)); err != nil {
			t.Errorf("worker-data-%s missing: %v", index, err)
		}
	}

	opts := testOptions(t, base)
	opts.Index = "3"
	summary, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run() for index 3: %v", err)
	}

	workers := summary.WorkerServices
	sort.Strings(workers)
	want := []string{"worker-1", "worker-2", "worker-3"}
	if len(workers) != len(want) {
		t.Fatalf("worker services = %v, want %v", workers, want)
	}
	for i := range want {
		if workers[i] != want[i] {
			t.Fatalf("worker services = %v, want %v", workers, want)
		}
	}
}

// TestRunLaunch tests that the launch step invokes compose up
func TestRunLaunch(t *testing.T) {
	base := t.TempDir()
	fake := runner.NewFake()

	opts := testOptions(t, base)
	opts.Runner = fake
	opts.Launch = true

	summary, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if !summary.Launched {
		t.Error("summary should report launch")
	}
	if !fake.CalledWith("docker compose --project-directory " + base + " up -d --build") {
		t.Errorf("compose up not invoked, calls: %v", fake.Calls)
	}
}

// TestRunInteractivePrompts tests fully interactive input collection
func TestRunInteractivePrompts(t *testing.T) {
	base := t.TempDir()

	// index, mnemonic, API key, wallet key name (default accepted)
	input := "5\n" + testMnemonic + "\nCG-key\n\n"
	opts := testOptions(t, base)
	opts.Index = ""
	opts.Mnemonic = ""
	opts.APIKey = ""
	opts.WalletKeyName = ""
	opts.Prompter = prompt.NewWithStreams(strings.NewReader(input), &bytes.Buffer{})

	summary, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if summary.Index != "5" {
		t.Errorf("summary index = %q, want %q", summary.Index, "5")
	}

	// Wallet key name defaults to worker-<index> when enter is pressed
	doc, err := workerconfig.Load(filepath.Join(base, "config.json"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if doc.Wallet.AddressKeyName != "worker-5" {
		t.Errorf("wallet key name = %q, want default %q", doc.Wallet.AddressKeyName, "worker-5")
	}
}
