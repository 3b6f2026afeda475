/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"flag"
	"fmt"

	"wallet-balance-go/internal/common"
	"wallet-balance-go/internal/config"
	"wallet-balance-go/internal/solana"

	"go.uber.org/zap"
)

type reportStats struct {
	totalAddresses   int
	validAddresses   int
	invalidAddresses int
}

// invalidReason names the first check a malformed address fails
func invalidReason(address string) string {
	if len(address) < solana.MinAddressLength || len(address) > solana.MaxAddressLength {
		return fmt.Sprintf("length %d outside %d-%d", len(address), solana.MinAddressLength, solana.MaxAddressLength)
	}
	return "contains characters outside the base58 alphabet"
}

func printReportHeader(addressCount int) {
	fmt.Printf("\n┌─ Checking %d addresses\n", addressCount)
	common.PrintBoxSeparator(98)
}

func printValidAddress(wallet common.WalletConfig, isLast bool) {
	symbol := common.BoxPrefix(isLast)
	fmt.Printf("%s %-12s → VALID    %s\n", symbol, wallet.Label, wallet.Address)
}

func printInvalidAddress(wallet common.WalletConfig, isLast bool) {
	symbol := common.BoxPrefix(isLast)
	fmt.Printf("%s %-12s → INVALID  %s\n", symbol, wallet.Label, wallet.Address)

	detailSymbol := common.BoxDetailPrefix(isLast)
	fmt.Printf("%s   Reason: %s\n", detailSymbol, invalidReason(wallet.Address))
}

func processAddresses(wallets []common.WalletConfig) reportStats {
	stats := reportStats{}

	for i, wallet := range wallets {
		stats.totalAddresses++
		isLast := i == len(wallets)-1

		if solana.IsValidAddress(wallet.Address) {
			stats.validAddresses++
			printValidAddress(wallet, isLast)
		} else {
			stats.invalidAddresses++
			printInvalidAddress(wallet, isLast)
		}
	}

	return stats
}

// resolveWallets turns positional arguments into ad-hoc registry entries,
// falling back to the registry file when none are given.
func resolveWallets(args []string, walletsFile string) ([]common.WalletConfig, error) {
	if len(args) > 0 {
		wallets := make([]common.WalletConfig, 0, len(args))
		for i, address := range args {
			wallets = append(wallets, common.WalletConfig{
				Label:   fmt.Sprintf("arg-%d", i+1),
				Address: address,
			})
		}
		return wallets, nil
	}

	return common.LoadWalletConfig(walletsFile)
}

func main() {
	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	flag.Parse()

	logger.Info("Starting address validation")

	// Load configuration
	cfg := config.Load()

	wallets, err := resolveWallets(flag.Args(), cfg.Report.WalletsFile)
	if err != nil {
		logger.Fatal("Failed to resolve addresses", zap.Error(err))
	}

	// Print header
	common.PrintHeader("ADDRESS VALIDATION REPORT", common.WideWidth)

	printReportHeader(len(wallets))

	// Process addresses and generate report
	stats := processAddresses(wallets)

	// Print footer summary
	summary := fmt.Sprintf("SUMMARY: %d valid, %d invalid (%d addresses checked)",
		stats.validAddresses, stats.invalidAddresses, stats.totalAddresses)
	common.PrintFooter(summary, common.WideWidth)

	logger.Info("Address validation completed",
		zap.Int("addresses_checked", stats.totalAddresses),
		zap.Int("valid", stats.validAddresses),
		zap.Int("invalid", stats.invalidAddresses))
}
