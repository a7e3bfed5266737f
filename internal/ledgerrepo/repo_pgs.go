// Package ledgerrepo manages repository layer of atomic ledger mutations.
package ledgerrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-petr/bank-ledger/internal/accountrepo"
	"github.com/go-petr/bank-ledger/internal/domain"
	"github.com/go-petr/bank-ledger/internal/transactionrepo"
	"github.com/go-petr/bank-ledger/pkg/errorspkg"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates ledger repository layer logic.
type RepoPGS struct {
	conn *sql.DB
}

// NewRepoPGS returns ledger RepoPGS with a connection to start transactions.
func NewRepoPGS(conn *sql.DB) *RepoPGS {
	return &RepoPGS{conn: conn}
}

// Execute applies a deposit or withdrawal as one atomic unit.
//
// The balance update and the transaction log append run in a single
// database transaction: either both commit or neither does, so a reader
// can never observe a balance change without its record, nor an orphan
// record. The balance UPDATE locks the account row for the duration of
// the unit, which serializes concurrent mutations of the same account.
func (r *RepoPGS) Execute(ctx context.Context, accountID int32, txType domain.TransactionType, amount string) (domain.LedgerTxResult, error) {
	result, err := r.execute(ctx, accountID, txType, amount)

	if errors.Is(err, domain.ErrInsufficientBalance) {
		// The unit is already rolled back; re-read the untouched balance
		// to give the caller actionable context.
		account, getErr := accountrepo.NewRepoPGS(r.conn).Get(ctx, accountID)
		if getErr == nil {
			return result, &domain.InsufficientBalanceError{
				AccountID: accountID,
				Balance:   account.Balance,
				Requested: amount,
			}
		}
	}

	return result, err
}

func (r *RepoPGS) execute(ctx context.Context, accountID int32, txType domain.TransactionType, amount string) (domain.LedgerTxResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.LedgerTxResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	accountRepo := accountrepo.NewRepoPGS(tx)
	transactionRepo := transactionrepo.NewRepoPGS(tx)

	delta := amount
	if txType == domain.Withdrawal {
		delta = "-" + amount
	}

	result.Account, err = accountRepo.AddBalance(ctx, delta, accountID)
	if err != nil {
		return result, err
	}

	result.Transaction, err = transactionRepo.Create(ctx, accountID, txType, amount)
	if err != nil {
		return result, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return domain.LedgerTxResult{}, errorspkg.ErrInternal
	}

	return result, nil
}
