package account

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/schuelerstaat/statebank/internal/fault"
	"github.com/schuelerstaat/statebank/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account

type Repository interface {
	CreateAccount(ctx context.Context, a *Account) error
	Account(ctx context.Context, owner ledger.UserSignature) (*Account, error)
	Accounts(ctx context.Context) ([]*Account, error)
}

// Service opens accounts and answers balance queries. It never moves money;
// that is the journal's job.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Open creates an account for owner with the given starting balance.
func (s *Service) Open(ctx context.Context, owner ledger.UserSignature, balance decimal.Decimal) (*Account, error) {
	if owner.IsZero() {
		return nil, fault.New(fault.CodeBadUserInput, "account needs an owner")
	}

	if balance.IsNegative() {
		return nil, fault.New(fault.CodeBadUserInput, "starting balance must not be negative")
	}

	a := &Account{Owner: owner, Balance: balance, RedemptionBalance: decimal.Zero}
	if err := s.repo.CreateAccount(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

// Get returns the account of owner.
func (s *Service) Get(ctx context.Context, owner ledger.UserSignature) (*Account, error) {
	return s.repo.Account(ctx, owner)
}

// List returns every account, for the bank's overview.
func (s *Service) List(ctx context.Context) ([]*Account, error) {
	return s.repo.Accounts(ctx)
}
