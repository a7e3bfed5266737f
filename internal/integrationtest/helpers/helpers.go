// Package helpers seeds test data for integration tests.
package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/go-petr/bank-ledger/internal/accountrepo"
	"github.com/go-petr/bank-ledger/internal/domain"
	"github.com/go-petr/bank-ledger/internal/transactionrepo"
	"github.com/go-petr/bank-ledger/pkg/dbpkg"
	"github.com/go-petr/bank-ledger/pkg/randompkg"
)

// RandomAccount returns an unsaved account with random fields.
func RandomAccount() domain.Account {
	return domain.Account{
		ID:        int32(randompkg.Intn(1000) + 1),
		Name:      randompkg.Name(),
		Balance:   randompkg.MoneyAmountBetween(1_000, 10_000),
		CreatedAt: time.Now().Truncate(time.Second).UTC(),
	}
}

// SeedAccount inserts an account with a random name and the given balance.
func SeedAccount(t *testing.T, db dbpkg.SQLInterface, balance string) domain.Account {
	t.Helper()

	account, err := accountrepo.NewRepoPGS(db).Create(context.Background(), randompkg.Name(), balance)
	if err != nil {
		t.Fatalf("accountRepo.Create(ctx, name, %v) returned error: %v", balance, err)
	}

	return account
}

// SeedAccountWith1000Balance inserts an account holding 1000.
func SeedAccountWith1000Balance(t *testing.T, db dbpkg.SQLInterface) domain.Account {
	t.Helper()

	return SeedAccount(t, db, "1000")
}

// SeedTransaction appends a transaction record for the given account.
func SeedTransaction(t *testing.T, db dbpkg.SQLInterface, accountID int32, txType domain.TransactionType, amount string) domain.Transaction {
	t.Helper()

	transaction, err := transactionrepo.NewRepoPGS(db).Create(context.Background(), accountID, txType, amount)
	if err != nil {
		t.Fatalf("transactionRepo.Create(ctx, %v, %v, %v) returned error: %v",
			accountID, txType, amount, err)
	}

	return transaction
}
