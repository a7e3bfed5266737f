package domain

import (
	"errors"
	"time"
)

var (
	// ErrTransactionNotFound indicates that the transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrInvalidAmount indicates that the amount is not a valid decimal number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates that the amount is zero or negative.
	ErrNegativeAmount = errors.New("amount must be positive")
)

// TransactionType is the closed set of ledger mutation kinds.
type TransactionType string

// Supported transaction types.
const (
	Deposit    TransactionType = "deposit"
	Withdrawal TransactionType = "withdrawal"
)

// Transaction holds a single immutable ledger record for an account.
//
// Amount is always positive; the sign of the balance effect is carried
// by Type.
type Transaction struct {
	ID        int64           `json:"transaction_id"`
	AccountID int32           `json:"account_id"`
	Type      TransactionType `json:"transaction_type"`
	Amount    string          `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}

// LedgerTxResult is the outcome of an atomic deposit or withdrawal.
type LedgerTxResult struct {
	Account     Account     `json:"account"`
	Transaction Transaction `json:"transaction"`
}

// TransactionCompleted is published after a deposit or withdrawal commits.
type TransactionCompleted struct {
	EventID     string      `json:"event_id"`
	Transaction Transaction `json:"transaction"`
	Balance     string      `json:"balance"`
}
