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

package ledger

import (
	"errors"
	"fmt"

	"wallet-balance-go/internal/models"
	"wallet-balance-go/internal/solana"

	"go.uber.org/zap"
)

// Sentinel errors returned by the balance calculators.
var (
	ErrInvalidWalletAddress = errors.New("invalid wallet address")
	ErrNoTransactions       = errors.New("no transactions found")
	ErrZeroAmount           = errors.New("amount cannot be zero")
)

// CalculateBalance computes the balance of walletAddress, in lamports, by
// folding the wallet's deposits and withdrawals over the transaction
// history. The address must be well-formed and the history non-empty, and
// a zero amount on any transaction belonging to the wallet aborts the
// calculation. Transactions for other wallets are ignored, zero amounts
// included. The result is negative when withdrawals exceed deposits.
func CalculateBalance(walletAddress string, transactions []models.Transaction) (int64, error) {
	if walletAddress == "" {
		return 0, fmt.Errorf("%w: empty address", ErrInvalidWalletAddress)
	}
	if !solana.IsValidAddress(walletAddress) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidWalletAddress, walletAddress)
	}
	if len(transactions) == 0 {
		return 0, fmt.Errorf("%w for wallet %s", ErrNoTransactions, walletAddress)
	}

	zap.L().Debug("Calculating balance",
		zap.String("wallet_address", walletAddress),
		zap.Int("transactions", len(transactions)))

	balance, err := sumTransactions(walletAddress, transactions, true)
	if err != nil {
		return 0, err
	}

	zap.L().Debug("Balance calculated",
		zap.String("wallet_address", walletAddress),
		zap.Int64("balance", balance))

	return balance, nil
}

// SumForWallet returns the net movement for walletAddress without any
// validation: malformed addresses and empty histories yield 0, and
// zero-amount transactions are skipped rather than rejected.
func SumForWallet(walletAddress string, transactions []models.Transaction) int64 {
	sum, _ := sumTransactions(walletAddress, transactions, false)
	return sum
}

// CountForWallet returns how many transactions in the history belong to
// walletAddress.
func CountForWallet(walletAddress string, transactions []models.Transaction) int {
	count := 0
	for _, tx := range transactions {
		if tx.WalletAddress == walletAddress {
			count++
		}
	}
	return count
}

// sumTransactions folds the transactions belonging to walletAddress. In
// strict mode a zero amount aborts the fold with ErrZeroAmount; otherwise
// it is a no-op. Transaction types other than deposit and withdrawal are
// skipped.
func sumTransactions(walletAddress string, transactions []models.Transaction, strict bool) (int64, error) {
	var balance int64
	for _, tx := range transactions {
		if tx.WalletAddress != walletAddress {
			continue
		}
		if tx.Amount == 0 {
			if strict {
				return 0, ErrZeroAmount
			}
			continue
		}
		switch tx.Type {
		case models.TransactionTypeDeposit:
			balance += tx.Amount
		case models.TransactionTypeWithdrawal:
			balance -= tx.Amount
		}
	}
	return balance, nil
}
