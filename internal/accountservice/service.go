// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"
	"unicode/utf8"

	"github.com/go-petr/bank-ledger/internal/domain"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, name, balance string) (domain.Account, error)
	Get(ctx context.Context, id int32) (domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Create validates the inputs and creates the account.
//
// The opening balance is not logged as a transaction; only deposits and
// withdrawals append to the log.
func (s *Service) Create(ctx context.Context, name, initialBalance string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	// The limit counts characters, not bytes, matching the varchar(100)
	// column and the request binding.
	if name == "" || utf8.RuneCountInString(name) > domain.MaxNameLength {
		l.Info().Str("name", name).Msg("invalid account name")
		return domain.Account{}, domain.ErrInvalidName
	}

	balanceDecimal, err := decimal.NewFromString(initialBalance)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.Account{}, domain.ErrInvalidAmount
	}

	if balanceDecimal.IsNegative() {
		return domain.Account{}, domain.ErrNegativeBalance
	}

	account, err := s.repo.Create(ctx, name, balanceDecimal.String())
	if err != nil {
		return account, err
	}

	return account, nil
}

// Get returns the account for the given account ID.
func (s *Service) Get(ctx context.Context, id int32) (domain.Account, error) {
	account, err := s.repo.Get(ctx, id)
	if err != nil {
		return account, err
	}

	return account, nil
}
