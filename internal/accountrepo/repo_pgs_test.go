//go:build integration

package accountrepo_test

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	"github.com/go-petr/bank-ledger/internal/accountrepo"
	"github.com/go-petr/bank-ledger/internal/domain"
	"github.com/go-petr/bank-ledger/internal/integrationtest"
	"github.com/go-petr/bank-ledger/internal/integrationtest/helpers"
	"github.com/go-petr/bank-ledger/internal/transactionrepo"
	"github.com/go-petr/bank-ledger/pkg/configpkg"
	"github.com/go-petr/bank-ledger/pkg/randompkg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
)

var (
	dbDriver string
	dbSource string
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	os.Exit(m.Run())
}

func TestCreate(t *testing.T) {
	testCases := []struct {
		name        string
		accountName string
		balance     string
		wantErr     error
	}{
		{
			name:        "OK",
			accountName: randompkg.Name(),
			balance:     randompkg.MoneyAmountBetween(100, 1_000),
		},
		{
			name:        "ErrInvalidName",
			accountName: "",
			balance:     "100",
			wantErr:     domain.ErrInvalidName,
		},
		{
			name:        "ErrNegativeBalance",
			accountName: randompkg.Name(),
			balance:     "-100",
			wantErr:     domain.ErrNegativeBalance,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := integrationtest.SetupTX(t, dbDriver, dbSource)
			repo := accountrepo.NewRepoPGS(tx)

			got, err := repo.Create(context.Background(), tc.accountName, tc.balance)
			if err != nil {
				if err == tc.wantErr {
					return
				}
				t.Fatalf(`repo.Create(ctx, %q, %q) returned error: %v`, tc.accountName, tc.balance, err)
			}

			want := domain.Account{
				Name:      tc.accountName,
				Balance:   tc.balance,
				CreatedAt: time.Now().UTC().Truncate(time.Second),
			}

			ignoreFields := cmpopts.IgnoreFields(domain.Account{}, "ID")
			compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
			if diff := cmp.Diff(want, got, ignoreFields, compareCreatedAt); diff != "" {
				t.Errorf(`repo.Create(ctx, %q, %q) returned unexpected difference (-want +got):\n%s`,
					tc.accountName, tc.balance, diff)
			}

			if got.ID == 0 {
				t.Error("got.ID = 0, want non-zero")
			}
		})
	}
}

func TestGet(t *testing.T) {
	testCases := []struct {
		name        string
		wantAccount func(t *testing.T, tx *sql.Tx) domain.Account
		wantErr     error
	}{
		{
			name: "OK",
			wantAccount: func(t *testing.T, tx *sql.Tx) domain.Account {
				return helpers.SeedAccountWith1000Balance(t, tx)
			},
		},
		{
			name: "ErrAccountNotFound",
			wantAccount: func(t *testing.T, tx *sql.Tx) domain.Account {
				return domain.Account{ID: 0}
			},
			wantErr: domain.ErrAccountNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := integrationtest.SetupTX(t, dbDriver, dbSource)
			want := tc.wantAccount(t, tx)
			repo := accountrepo.NewRepoPGS(tx)

			got, err := repo.Get(context.Background(), want.ID)
			if err != nil {
				if err == tc.wantErr {
					return
				}
				t.Fatalf(`repo.Get(ctx, %v) returned error: %v`, want.ID, err)
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf(`repo.Get(ctx, %v) returned unexpected difference (-want +got):\n%s`, want.ID, diff)
			}
		})
	}
}

func TestAddBalance(t *testing.T) {
	testCases := []struct {
		name    string
		delta   string
		wantErr error
	}{
		{
			name:  "Credit",
			delta: randompkg.MoneyAmountBetween(100, 1_000),
		},
		{
			name:  "Debit",
			delta: "-" + randompkg.MoneyAmountBetween(100, 1_000),
		},
		{
			name:  "DebitToZero",
			delta: "-1000",
		},
		{
			name:    "ErrInsufficientBalance",
			delta:   "-1000.01",
			wantErr: domain.ErrInsufficientBalance,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := integrationtest.SetupTX(t, dbDriver, dbSource)
			account := helpers.SeedAccountWith1000Balance(t, tx)
			repo := accountrepo.NewRepoPGS(tx)

			got, err := repo.AddBalance(context.Background(), tc.delta, account.ID)
			if err != nil {
				if err == tc.wantErr {
					// The rejected write must leave the balance untouched.
					unchanged, getErr := repo.Get(context.Background(), account.ID)
					if getErr != nil {
						t.Fatalf(`repo.Get(ctx, %v) returned error: %v`, account.ID, getErr)
					}
					if unchanged.Balance != account.Balance {
						t.Errorf("balance changed on rejected delta: got %v, want %v",
							unchanged.Balance, account.Balance)
					}

					return
				}
				t.Fatalf(`repo.AddBalance(ctx, %q, %v) returned error: %v`, tc.delta, account.ID, err)
			}

			wantBalance := decimal.RequireFromString(account.Balance).
				Add(decimal.RequireFromString(tc.delta))

			gotBalance := decimal.RequireFromString(got.Balance)

			if !wantBalance.Equal(gotBalance) {
				t.Errorf("got balance %v, want %v", gotBalance, wantBalance)
			}
		})
	}
}

func TestAddBalanceAccountNotFound(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	repo := accountrepo.NewRepoPGS(tx)

	_, err := repo.AddBalance(context.Background(), "100", 0)
	if err != domain.ErrAccountNotFound {
		t.Errorf(`repo.AddBalance(ctx, "100", 0) returned error %v, want %v`,
			err, domain.ErrAccountNotFound)
	}
}

func TestDeleteCascadesTransactions(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	account := helpers.SeedAccountWith1000Balance(t, tx)
	helpers.SeedTransaction(t, tx, account.ID, domain.Deposit, "100")
	helpers.SeedTransaction(t, tx, account.ID, domain.Withdrawal, "50")

	repo := accountrepo.NewRepoPGS(tx)

	if err := repo.Delete(context.Background(), account.ID); err != nil {
		t.Fatalf(`repo.Delete(ctx, %v) returned error: %v`, account.ID, err)
	}

	if _, err := repo.Get(context.Background(), account.ID); err != domain.ErrAccountNotFound {
		t.Errorf(`repo.Get(ctx, %v) returned error %v, want %v`, account.ID, err, domain.ErrAccountNotFound)
	}

	transactions, err := transactionrepo.NewRepoPGS(tx).ListByAccount(context.Background(), account.ID, 10)
	if err != nil {
		t.Fatalf(`transactionRepo.ListByAccount(ctx, %v, 10) returned error: %v`, account.ID, err)
	}

	if len(transactions) != 0 {
		t.Errorf("got %d transactions after account delete, want 0", len(transactions))
	}
}
