package models

// TransactionType identifies the direction of a wallet movement
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// Transaction represents a single movement against a wallet, denominated in lamports
type Transaction struct {
	Id            string          `json:"id"`
	Type          TransactionType `json:"type"` // "deposit", "withdrawal"
	WalletAddress string          `json:"wallet_address"`
	Amount        int64           `json:"amount"`
}
