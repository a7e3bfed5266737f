//go:build integration

package transactionrepo_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/go-petr/bank-ledger/internal/domain"
	"github.com/go-petr/bank-ledger/internal/integrationtest"
	"github.com/go-petr/bank-ledger/internal/integrationtest/helpers"
	"github.com/go-petr/bank-ledger/internal/transactionrepo"
	"github.com/go-petr/bank-ledger/pkg/configpkg"
	"github.com/go-petr/bank-ledger/pkg/randompkg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
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
		name    string
		txType  domain.TransactionType
		amount  string
		wantErr error
	}{
		{
			name:   "Deposit",
			txType: domain.Deposit,
			amount: randompkg.MoneyAmountBetween(1, 100),
		},
		{
			name:   "Withdrawal",
			txType: domain.Withdrawal,
			amount: randompkg.MoneyAmountBetween(1, 100),
		},
		{
			name:    "ErrNegativeAmount",
			txType:  domain.Deposit,
			amount:  "0",
			wantErr: domain.ErrNegativeAmount,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tx := integrationtest.SetupTX(t, dbDriver, dbSource)
			account := helpers.SeedAccountWith1000Balance(t, tx)
			repo := transactionrepo.NewRepoPGS(tx)

			got, err := repo.Create(context.Background(), account.ID, tc.txType, tc.amount)
			if err != nil {
				if err == tc.wantErr {
					return
				}
				t.Fatalf(`repo.Create(ctx, %v, %v, %q) returned error: %v`,
					account.ID, tc.txType, tc.amount, err)
			}

			want := domain.Transaction{
				AccountID: account.ID,
				Type:      tc.txType,
				Amount:    tc.amount,
				Timestamp: time.Now().UTC().Truncate(time.Second),
			}

			ignoreFields := cmpopts.IgnoreFields(domain.Transaction{}, "ID")
			compareTimestamp := cmpopts.EquateApproxTime(time.Second)
			if diff := cmp.Diff(want, got, ignoreFields, compareTimestamp); diff != "" {
				t.Errorf(`repo.Create(ctx, %v, %v, %q) returned unexpected difference (-want +got):\n%s`,
					account.ID, tc.txType, tc.amount, diff)
			}

			if got.ID == 0 {
				t.Error("got.ID = 0, want non-zero")
			}
		})
	}
}

func TestCreateMissingAccount(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	repo := transactionrepo.NewRepoPGS(tx)

	_, err := repo.Create(context.Background(), 0, domain.Deposit, "100")
	if err != domain.ErrAccountNotFound {
		t.Errorf(`repo.Create(ctx, 0, deposit, "100") returned error %v, want %v`,
			err, domain.ErrAccountNotFound)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	account := helpers.SeedAccountWith1000Balance(t, tx)
	want := helpers.SeedTransaction(t, tx, account.ID, domain.Deposit, "100")
	repo := transactionrepo.NewRepoPGS(tx)

	got, err := repo.Get(context.Background(), want.ID)
	if err != nil {
		t.Fatalf(`repo.Get(ctx, %v) returned error: %v`, want.ID, err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf(`repo.Get(ctx, %v) returned unexpected difference (-want +got):\n%s`, want.ID, diff)
	}

	if _, err := repo.Get(context.Background(), 0); err != domain.ErrTransactionNotFound {
		t.Errorf(`repo.Get(ctx, 0) returned error %v, want %v`, err, domain.ErrTransactionNotFound)
	}
}

func TestListByAccount(t *testing.T) {
	t.Parallel()

	const seeded = 15

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	account := helpers.SeedAccountWith1000Balance(t, tx)
	otherAccount := helpers.SeedAccountWith1000Balance(t, tx)

	transactions := make([]domain.Transaction, seeded)
	for i := range transactions {
		transactions[i] = helpers.SeedTransaction(t, tx, account.ID, domain.Deposit,
			randompkg.MoneyAmountBetween(1, 10))
	}

	helpers.SeedTransaction(t, tx, otherAccount.ID, domain.Deposit, "42")

	repo := transactionrepo.NewRepoPGS(tx)

	testCases := []struct {
		name  string
		limit int32
		want  int
	}{
		{name: "Truncated", limit: 10, want: 10},
		{name: "All", limit: 100, want: seeded},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.ListByAccount(context.Background(), account.ID, tc.limit)
			if err != nil {
				t.Fatalf(`repo.ListByAccount(ctx, %v, %v) returned error: %v`, account.ID, tc.limit, err)
			}

			if len(got) != tc.want {
				t.Fatalf("got %d transactions, want %d", len(got), tc.want)
			}

			// All records in this tx share one timestamp, so ordering falls
			// back to the id tie-break: newest insert first.
			for j := range got {
				if got[j].AccountID != account.ID {
					t.Errorf("got transaction for account %v, want %v", got[j].AccountID, account.ID)
				}

				want := transactions[seeded-1-j]
				if diff := cmp.Diff(want, got[j]); diff != "" {
					t.Errorf("transaction %d mismatch (-want +got):\n%s", j, diff)
				}

				if j > 0 {
					prev, curr := got[j-1], got[j]
					if curr.Timestamp.After(prev.Timestamp) {
						t.Errorf("timestamps not descending at %d", j)
					}
					if curr.Timestamp.Equal(prev.Timestamp) && curr.ID > prev.ID {
						t.Errorf("id tie-break not descending at %d", j)
					}
				}
			}
		})
	}
}
