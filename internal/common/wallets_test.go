package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

const registryYAML = `wallets:
  - label: alice
    address: ALiCEqZUF4VYuxTu1UQvzDqbpGYYFrxH6kQxWFB8Nqp3
  - label: bob
    address: BoBr9XKPqT4mVu2tWcEzhGYdNF8sJQa5UDvHbke6ynMw
`

func writeWalletsFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "wallets.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write wallets file: %v", err)
	}
	return path
}

func TestLoadWalletConfig(t *testing.T) {
	wallets, err := LoadWalletConfig(writeWalletsFile(t, registryYAML))
	if err != nil {
		t.Fatalf("LoadWalletConfig failed: %v", err)
	}
	if len(wallets) != 2 {
		t.Fatalf("Expected 2 wallets, got %d", len(wallets))
	}
	if wallets[0].Label != "alice" {
		t.Errorf("Expected label alice, got %s", wallets[0].Label)
	}
	if wallets[1].Address != "BoBr9XKPqT4mVu2tWcEzhGYdNF8sJQa5UDvHbke6ynMw" {
		t.Errorf("Unexpected address %s", wallets[1].Address)
	}
}

func TestLoadWalletConfig_MissingFields(t *testing.T) {
	_, err := LoadWalletConfig(writeWalletsFile(t, "wallets:\n  - label: alice\n    address: addr1\n  - address: addr2\n"))
	if err == nil || !strings.Contains(err.Error(), "wallet at index 1 missing label") {
		t.Errorf("Expected missing label error, got %v", err)
	}

	_, err = LoadWalletConfig(writeWalletsFile(t, "wallets:\n  - label: alice\n"))
	if err == nil || !strings.Contains(err.Error(), "wallet at index 0 missing address") {
		t.Errorf("Expected missing address error, got %v", err)
	}
}

func TestLoadWalletConfig_MissingFile(t *testing.T) {
	_, err := LoadWalletConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestLoadWalletConfig_MalformedYAML(t *testing.T) {
	_, err := LoadWalletConfig(writeWalletsFile(t, "wallets: ["))
	if err == nil || !strings.Contains(err.Error(), "unable to parse") {
		t.Errorf("Expected parse error, got %v", err)
	}
}

func TestInitializeWallets_All(t *testing.T) {
	wallets, err := InitializeWallets(writeWalletsFile(t, registryYAML), "", zap.NewNop())
	if err != nil {
		t.Fatalf("InitializeWallets failed: %v", err)
	}
	if len(wallets) != 2 {
		t.Fatalf("Expected 2 wallets, got %d", len(wallets))
	}
}

func TestInitializeWallets_FilterKnown(t *testing.T) {
	wallets, err := InitializeWallets(writeWalletsFile(t, registryYAML), "BoBr9XKPqT4mVu2tWcEzhGYdNF8sJQa5UDvHbke6ynMw", zap.NewNop())
	if err != nil {
		t.Fatalf("InitializeWallets failed: %v", err)
	}
	if len(wallets) != 1 {
		t.Fatalf("Expected 1 wallet, got %d", len(wallets))
	}
	if wallets[0].Label != "bob" {
		t.Errorf("Expected registry label bob, got %s", wallets[0].Label)
	}
}

func TestInitializeWallets_FilterUnknown(t *testing.T) {
	wallets, err := InitializeWallets(writeWalletsFile(t, registryYAML), "4Nd1mYdejkCFCzjjXK9QvZGAg3JbmFVF", zap.NewNop())
	if err != nil {
		t.Fatalf("InitializeWallets failed: %v", err)
	}
	if len(wallets) != 1 {
		t.Fatalf("Expected 1 wallet, got %d", len(wallets))
	}
	if wallets[0].Label != "unregistered" {
		t.Errorf("Expected unregistered label, got %s", wallets[0].Label)
	}
	if wallets[0].Address != "4Nd1mYdejkCFCzjjXK9QvZGAg3JbmFVF" {
		t.Errorf("Expected filter address, got %s", wallets[0].Address)
	}
}

func TestInitializeWallets_MissingRegistry(t *testing.T) {
	absent := filepath.Join(t.TempDir(), "absent.yaml")

	_, err := InitializeWallets(absent, "", zap.NewNop())
	if err == nil {
		t.Fatal("Expected error for missing registry")
	}

	// With an address filter the registry only provides the label, so a
	// missing file is not an error.
	wallets, err := InitializeWallets(absent, "ALiCEqZUF4VYuxTu1UQvzDqbpGYYFrxH6kQxWFB8Nqp3", zap.NewNop())
	if err != nil {
		t.Fatalf("InitializeWallets failed: %v", err)
	}
	if len(wallets) != 1 || wallets[0].Label != "unregistered" {
		t.Errorf("Expected single unregistered wallet, got %v", wallets)
	}
}
