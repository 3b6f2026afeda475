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
	"os"

	"wallet-balance-go/internal/common"
	"wallet-balance-go/internal/config"
	"wallet-balance-go/internal/ledger"
	"wallet-balance-go/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	demoWalletAddress   = "ALiCEqZUF4VYuxTu1UQvzDqbpGYYFrxH6kQxWFB8Nqp3"
	secondWalletAddress = "BoBr9XKPqT4mVu2tWcEzhGYdNF8sJQa5UDvHbke6ynMw"
)

type balanceStats struct {
	totalWallets       int
	walletsWithHistory int
	totalTransactions  int
}

// exampleTransactions builds the fixed demonstration history: two wallets,
// five movements, amounts in lamports.
func exampleTransactions() []models.Transaction {
	return []models.Transaction{
		{Id: uuid.New().String(), Type: models.TransactionTypeDeposit, WalletAddress: demoWalletAddress, Amount: 100},
		{Id: uuid.New().String(), Type: models.TransactionTypeWithdrawal, WalletAddress: demoWalletAddress, Amount: 50},
		{Id: uuid.New().String(), Type: models.TransactionTypeDeposit, WalletAddress: secondWalletAddress, Amount: 200},
		{Id: uuid.New().String(), Type: models.TransactionTypeWithdrawal, WalletAddress: secondWalletAddress, Amount: 75},
		{Id: uuid.New().String(), Type: models.TransactionTypeDeposit, WalletAddress: demoWalletAddress, Amount: 25},
	}
}

func printWalletHeader(wallet common.WalletConfig, txCount int) {
	fmt.Printf("\n┌─ Wallet: %s\n", wallet.Label)
	fmt.Printf("│  Address: %s\n", wallet.Address)
	fmt.Printf("│  Transactions: %d\n", txCount)
	common.PrintBoxSeparator(78)
}

func printBalance(row models.WalletBalance, showSOL bool) {
	symbol := common.BoxPrefix(true)
	if showSOL {
		fmt.Printf("%s Balance: %s\n", symbol, common.FormatLamports(row.Balance))
	} else {
		fmt.Printf("%s Balance: %d lamports\n", symbol, row.Balance)
	}
}

func processWallet(wallet common.WalletConfig, transactions []models.Transaction) (models.WalletBalance, error) {
	balance, err := ledger.CalculateBalance(wallet.Address, transactions)
	if err != nil {
		return models.WalletBalance{}, fmt.Errorf("failed to calculate balance: %w", err)
	}

	return models.WalletBalance{
		Label:            wallet.Label,
		Address:          wallet.Address,
		Balance:          balance,
		TransactionCount: ledger.CountForWallet(wallet.Address, transactions),
	}, nil
}

func processWalletsAndGenerateReport(wallets []common.WalletConfig, transactions []models.Transaction, showSOL bool, logger *zap.Logger) balanceStats {
	stats := balanceStats{}

	for _, wallet := range wallets {
		stats.totalWallets++

		row, err := processWallet(wallet, transactions)
		if err != nil {
			logger.Error("Failed to process wallet",
				zap.String("label", wallet.Label),
				zap.String("address", wallet.Address),
				zap.Error(err))
			continue
		}

		printWalletHeader(wallet, row.TransactionCount)
		printBalance(row, showSOL)

		if row.TransactionCount > 0 {
			stats.walletsWithHistory++
			stats.totalTransactions += row.TransactionCount
		}
	}

	return stats
}

// runDemo calculates and prints the balance of a single wallet against the
// example history. Calculation failures go to stderr without changing the
// exit code.
func runDemo(cfg *models.Config, addressFlag string, transactions []models.Transaction) {
	address := addressFlag
	if address == "" {
		address = cfg.Report.DefaultWallet
	}
	if address == "" {
		address = demoWalletAddress
	}

	balance, err := ledger.CalculateBalance(address, transactions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error calculating balance: %v\n", err)
		return
	}

	if cfg.Report.ShowSOL {
		fmt.Printf("Balance for wallet %s: %s\n", address, common.FormatLamports(balance))
	} else {
		fmt.Printf("Balance for wallet %s: %d\n", address, balance)
	}
}

func main() {
	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	// Parse command line flags
	addressFlag := flag.String("address", "", "Wallet address to query (optional)")
	allFlag := flag.Bool("all", false, "Report balances for every wallet in the registry")
	flag.Parse()

	logger.Info("Starting balance calculation")

	// Load configuration
	cfg := config.Load()

	transactions := exampleTransactions()

	if !*allFlag {
		runDemo(cfg, *addressFlag, transactions)
		logger.Info("Balance calculation completed")
		return
	}

	// Initialize wallets based on filter
	wallets, err := common.InitializeWallets(cfg.Report.WalletsFile, *addressFlag, logger)
	if err != nil {
		logger.Fatal("Failed to initialize wallets", zap.Error(err))
	}

	// Print header
	common.PrintHeader("WALLET BALANCE REPORT", common.DefaultWidth)

	// Process wallets and generate report
	stats := processWalletsAndGenerateReport(wallets, transactions, cfg.Report.ShowSOL, logger)

	// Print footer summary
	summary := fmt.Sprintf("SUMMARY: %d wallets with history (%d total transactions across %d wallets queried)",
		stats.walletsWithHistory, stats.totalTransactions, stats.totalWallets)
	common.PrintFooter(summary, common.DefaultWidth)

	logger.Info("Balance report completed",
		zap.Int("wallets_queried", stats.totalWallets),
		zap.Int("wallets_with_history", stats.walletsWithHistory),
		zap.Int("total_transactions", stats.totalTransactions))
}
