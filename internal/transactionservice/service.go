// Package transactionservice manages business logic layer of transaction history.
package transactionservice

import (
	"context"

	"github.com/go-petr/bank-ledger/internal/domain"
)

// History listing limits.
const (
	DefaultLimit = 50
	MaxLimit     = 1000
)

// Repo provides data access layer interface needed by transaction service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Repo interface {
	ListByAccount(ctx context.Context, accountID, limit int32) ([]domain.Transaction, error)
}

// AccountService provides the account lookup needed to verify existence.
type AccountService interface {
	Get(ctx context.Context, id int32) (domain.Account, error)
}

// Service facilitates transaction history service layer logic.
type Service struct {
	repo           Repo
	accountService AccountService
}

// New returns transaction service struct to manage history reads.
func New(tr Repo, as AccountService) *Service {
	return &Service{
		repo:           tr,
		accountService: as,
	}
}

// List returns up to limit transactions for the account, newest first.
//
// It verifies the account exists so a missing account is reported as
// such rather than as an empty history.
func (s *Service) List(ctx context.Context, accountID, limit int32) ([]domain.Transaction, error) {
	if _, err := s.accountService.Get(ctx, accountID); err != nil {
		return nil, err
	}

	if limit < 1 {
		limit = DefaultLimit
	}

	if limit > MaxLimit {
		limit = MaxLimit
	}

	transactions, err := s.repo.ListByAccount(ctx, accountID, limit)
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
