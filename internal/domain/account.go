// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidName indicates that the account name is empty or too long.
	ErrInvalidName = errors.New("name must be between 1 and 100 characters")
	// ErrNegativeBalance indicates that the initial balance is negative.
	ErrNegativeBalance = errors.New("initial balance must not be negative")
	// ErrInsufficientBalance indicates that the account balance does not cover the withdrawal.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// MaxNameLength limits the account name.
const MaxNameLength = 100

// Account holds the ledger balance for a single owner.
type Account struct {
	ID        int32     `json:"account_id"`
	Name      string    `json:"name"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

// InsufficientBalanceError reports a withdrawal exceeding the account balance.
type InsufficientBalanceError struct {
	AccountID int32
	Balance   string
	Requested string
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: account %d has %s, requested %s",
		e.AccountID, e.Balance, e.Requested)
}

// Is matches the ErrInsufficientBalance sentinel.
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}
