package common

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// WalletConfig represents a single entry in the wallet registry file
type WalletConfig struct {
	Label   string `yaml:"label"`
	Address string `yaml:"address"`
}

type WalletsConfig struct {
	Wallets []WalletConfig `yaml:"wallets"`
}

func LoadWalletConfig(walletsFile string) ([]WalletConfig, error) {
	var walletsPath string
	if filepath.IsAbs(walletsFile) {
		walletsPath = walletsFile
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		walletsPath = filepath.Join(wd, walletsFile)
	}

	data, err := os.ReadFile(walletsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", walletsFile, err)
	}

	var config WalletsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", walletsFile, err)
	}

	// Entries may carry malformed addresses; address validation happens at
	// report time, not load time.
	for i, wallet := range config.Wallets {
		if wallet.Label == "" {
			return nil, fmt.Errorf("wallet at index %d missing label", i)
		}
		if wallet.Address == "" {
			return nil, fmt.Errorf("wallet at index %d missing address", i)
		}
	}

	return config.Wallets, nil
}

// InitializeWallets resolves the wallets a report should cover.
// If addressFilter is provided, returns that single wallet, labelled from
// the registry when it is known there. If addressFilter is empty, returns
// the full registry.
func InitializeWallets(walletsFile, addressFilter string, logger *zap.Logger) ([]WalletConfig, error) {
	if addressFilter != "" {
		logger.Info("Filtering by wallet address", zap.String("address", addressFilter))

		// The registry is optional for ad-hoc queries; a missing file only
		// costs the label.
		wallets, err := LoadWalletConfig(walletsFile)
		if err == nil {
			for _, wallet := range wallets {
				if wallet.Address == addressFilter {
					return []WalletConfig{wallet}, nil
				}
			}
		}
		return []WalletConfig{{Label: "unregistered", Address: addressFilter}}, nil
	}

	wallets, err := LoadWalletConfig(walletsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet registry: %w", err)
	}

	logger.Info("Loaded wallet registry", zap.Int("count", len(wallets)))
	return wallets, nil
}
