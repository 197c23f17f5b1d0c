package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0xLogan-x/allora-worker/internal/config"
)

// TestLayoutPaths tests path derivation from the base directory and index
func TestLayoutPaths(t *testing.T) {
	l := Layout{BaseDir: "/srv/allora", Index: "3"}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "data dir", got: l.DataDir(), want: "/srv/allora/worker-data-3"},
		{name: "mnemonic path", got: l.MnemonicPath(), want: "/srv/allora/worker-data-3/mnemonic"},
		{name: "service name", got: l.ServiceName(), want: "worker-3"},
		{name: "compose path", got: l.ComposePath(), want: "/srv/allora/docker-compose.yaml"},
		{name: "env path", got: l.EnvPath(), want: "/srv/allora/.env"},
		{name: "config path", got: l.WorkerConfigPath(), want: "/srv/allora/config.json"},
		{name: "inference dir", got: l.InferenceDir(), want: "/srv/allora/inference"},
		{name: "init script path", got: l.InitScriptPath(), want: "/srv/allora/init.config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != filepath.FromSlash(tt.want) {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

// TestEnsureDataDir tests data directory creation and the no-overwrite invariant
func TestEnsureDataDir(t *testing.T) {
	base := t.TempDir()
	l := Layout{BaseDir: base, Index: "1"}

	if err := l.EnsureDataDir(); err != nil {
		t.Fatalf("EnsureDataDir() unexpected error: %v", err)
	}

	info, err := os.Stat(l.DataDir())
	if err != nil {
		t.Fatalf("data dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("data dir path is not a directory")
	}
	if perm := info.Mode().Perm(); perm != config.DataDirMode {
		t.Errorf("data dir permissions = %o, want %o", perm, config.DataDirMode)
	}

	// Second call with the same index must fail and leave the dir alone
	if err := l.EnsureDataDir(); err == nil {
		t.Fatal("EnsureDataDir() should fail when the directory already exists")
	}
}

// TestEnsureDataDirIndependentIndices tests that two indices get two directories
func TestEnsureDataDirIndependentIndices(t *testing.T) {
	base := t.TempDir()

	for _, index := range []string{"1", "2"} {
		l := Layout{BaseDir: base, Index: index}
		if err := l.EnsureDataDir(); err != nil {
			t.Fatalf("EnsureDataDir() for index %s: %v", index, err)
		}
	}

	for _, index := range []string{"1", "2"} {
		if _, err := os.Stat(filepath.Join(base, "worker-data-"+index)); err != nil {
			t.Errorf("worker-data-%s missing: %v", index, err)
		}
	}
}

// TestWriteMnemonic tests secret file permissions and content
func TestWriteMnemonic(t *testing.T) {
	base := t.TempDir()
	l := Layout{BaseDir: base, Index: "1"}
	if err := l.EnsureDataDir(); err != nil {
		t.Fatalf("EnsureDataDir(): %v", err)
	}

	phrase := "legal winner thank year wave sausage worth useful legal winner thank yellow"
	if err := l.WriteMnemonic("  " + phrase + "  "); err != nil {
		t.Fatalf("WriteMnemonic() unexpected error: %v", err)
	}

	info, err := os.Stat(l.MnemonicPath())
	if err != nil {
		t.Fatalf("mnemonic file not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != config.SecretFileMode {
		t.Errorf("mnemonic permissions = %o, want %o", perm, config.SecretFileMode)
	}

	data, err := os.ReadFile(l.MnemonicPath())
	if err != nil {
		t.Fatalf("read mnemonic: %v", err)
	}
	if strings.TrimSpace(string(data)) != phrase {
		t.Errorf("mnemonic content = %q, want %q", string(data), phrase)
	}
}

// TestEnsureEnvFile tests first-run creation and later-run reuse
func TestEnsureEnvFile(t *testing.T) {
	base := t.TempDir()
	l := Layout{BaseDir: base, Index: "1"}
	params := config.ChainParams{
		NodeRPC: "https://rpc.example.org/",
		ChainID: "allora-testnet-1",
	}

	created, err := l.EnsureEnvFile("CG-key-123", params)
	if err != nil {
		t.Fatalf("EnsureEnvFile() unexpected error: %v", err)
	}
	if !created {
		t.Fatal("EnsureEnvFile() should report creation on first run")
	}

	data, err := os.ReadFile(l.EnvPath())
	if err != nil {
		t.Fatalf("read env file: %v", err)
	}
	content := string(data)
	for _, want := range []string{
		"TOKEN_API_KEY=CG-key-123",
		"ALLORA_NODE_RPC=https://rpc.example.org/",
		"ALLORA_CHAIN_ID=allora-testnet-1",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("env file missing %q", want)
		}
	}

	info, _ := os.Stat(l.EnvPath())
	if perm := info.Mode().Perm(); perm != config.SecretFileMode {
		t.Errorf("env file permissions = %o, want %o", perm, config.SecretFileMode)
	}

	// Second run must not rewrite the file (write-once API key)
	created, err = l.EnsureEnvFile("different-key", params)
	if err != nil {
		t.Fatalf("EnsureEnvFile() second run: %v", err)
	}
	if created {
		t.Fatal("EnsureEnvFile() should not recreate an existing file")
	}

	data, _ = os.ReadFile(l.EnvPath())
	if !strings.Contains(string(data), "CG-key-123") {
		t.Error("second run must leave the original API key in place")
	}
}
