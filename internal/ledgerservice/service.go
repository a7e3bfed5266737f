// Package ledgerservice manages business logic layer of ledger mutations.
package ledgerservice

import (
	"context"

	"github.com/go-petr/bank-ledger/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by ledger service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice
type Repo interface {
	Execute(ctx context.Context, accountID int32, txType domain.TransactionType, amount string) (domain.LedgerTxResult, error)
}

// Publisher provides the event sink interface for committed transactions.
type Publisher interface {
	Publish(ctx context.Context, event domain.TransactionCompleted) error
}

// Service facilitates ledger service layer logic.
type Service struct {
	repo      Repo
	publisher Publisher
}

// New returns ledger service struct to manage deposit and withdrawal bussines logic.
//
// The publisher may be nil, in which case committed transactions are not
// announced anywhere.
func New(lr Repo, p Publisher) *Service {
	return &Service{
		repo:      lr,
		publisher: p,
	}
}

// validAmount parses the amount and returns it in canonical decimal form.
// The repository negates withdrawal deltas textually, so the string it
// receives must not carry a sign of its own.
func validAmount(ctx context.Context, amount string) (string, error) {
	l := zerolog.Ctx(ctx)

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		l.Info().Err(err).Send()
		return "", domain.ErrInvalidAmount
	}

	if amountDecimal.LessThanOrEqual(decimal.Zero) {
		return "", domain.ErrNegativeAmount
	}

	return amountDecimal.String(), nil
}

// Deposit credits the amount to the account as one atomic unit.
func (s *Service) Deposit(ctx context.Context, accountID int32, amount string) (domain.LedgerTxResult, error) {
	amount, err := validAmount(ctx, amount)
	if err != nil {
		return domain.LedgerTxResult{}, err
	}

	result, err := s.repo.Execute(ctx, accountID, domain.Deposit, amount)
	if err != nil {
		return result, err
	}

	s.publish(ctx, result)

	return result, nil
}

// Withdraw debits the amount from the account as one atomic unit.
//
// A withdrawal that would drive the balance negative is rejected with
// insufficient balance context and leaves no trace in the ledger.
func (s *Service) Withdraw(ctx context.Context, accountID int32, amount string) (domain.LedgerTxResult, error) {
	amount, err := validAmount(ctx, amount)
	if err != nil {
		return domain.LedgerTxResult{}, err
	}

	result, err := s.repo.Execute(ctx, accountID, domain.Withdrawal, amount)
	if err != nil {
		return result, err
	}

	s.publish(ctx, result)

	return result, nil
}

// publish announces a committed transaction. Best effort: the mutation
// has already committed, so a publish failure is logged and swallowed.
func (s *Service) publish(ctx context.Context, result domain.LedgerTxResult) {
	if s.publisher == nil {
		return
	}

	event := domain.TransactionCompleted{
		EventID:     uuid.NewString(),
		Transaction: result.Transaction,
		Balance:     result.Account.Balance,
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).
			Int64("transaction_id", result.Transaction.ID).
			Msg("cannot publish transaction completed event")
	}
}
