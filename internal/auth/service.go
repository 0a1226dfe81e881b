package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/schuelerstaat/statebank/internal/fault"
	"github.com/schuelerstaat/statebank/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=auth

type Repository interface {
	CreatePrincipal(ctx context.Context, p *Principal) error
	PrincipalByName(ctx context.Context, name string) (*Principal, error)
	Principal(ctx context.Context, sig ledger.UserSignature) (*Principal, error)
}

// Service registers principals and verifies their credentials. It also
// satisfies the ledger's PasswordChecker, so settlements can confirm a
// counterparty without reaching into this package's internals.
type Service struct {
	repo   Repository
	tokens *Tokens
}

func NewService(repo Repository, tokens *Tokens) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Register creates a principal. Guests must come without a password,
// everyone else with one.
func (s *Service) Register(ctx context.Context, sig ledger.UserSignature, name string, role Role, password *string) (*Principal, error) {
	if name == "" {
		return nil, fault.New(fault.CodeBadUserInput, "principal needs a name")
	}

	p := &Principal{Signature: sig, Name: name, Role: role}

	if sig.Type == ledger.TypeGuest {
		if password != nil {
			return nil, fault.New(fault.CodeCredentialsSet, "guests have no password")
		}
	} else {
		if password == nil {
			return nil, fault.New(fault.CodeCredentialsMissing, "principal %s needs a password", name)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}

		p.PasswordHash = hash
	}

	if err := s.repo.CreatePrincipal(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Login verifies name and password and mints a session token. Guests log in
// with their name alone.
func (s *Service) Login(ctx context.Context, name string, password *string) (string, *Principal, error) {
	p, err := s.repo.PrincipalByName(ctx, name)
	if err != nil {
		return "", nil, err
	}

	if p.Signature.Type == ledger.TypeGuest {
		if password != nil {
			return "", nil, fault.New(fault.CodeCredentialsSet, "guests have no password")
		}
	} else {
		if password == nil {
			return "", nil, fault.New(fault.CodeCredentialsMissing, "login requires a password")
		}

		if bcrypt.CompareHashAndPassword(p.PasswordHash, []byte(*password)) != nil {
			return "", nil, fault.New(fault.CodeInvalidPassword, "wrong password")
		}
	}

	token, err := s.tokens.Issue(p)
	if err != nil {
		return "", nil, fmt.Errorf("issuing token: %w", err)
	}

	return token, p, nil
}

// CheckPassword reports whether password matches the stored credential of
// user. It backs the ledger's counterparty verification.
func (s *Service) CheckPassword(ctx context.Context, user ledger.UserSignature, password string) (bool, error) {
	p, err := s.repo.Principal(ctx, user)
	if err != nil {
		return false, err
	}

	return bcrypt.CompareHashAndPassword(p.PasswordHash, []byte(password)) == nil, nil
}

// Principal resolves a signature to its registered principal.
func (s *Service) Principal(ctx context.Context, sig ledger.UserSignature) (*Principal, error) {
	return s.repo.Principal(ctx, sig)
}

// AssertRole fails with PERMISSION_DENIED unless the principal holds one of
// the wanted roles.
func AssertRole(p *Principal, wanted ...Role) error {
	for _, r := range wanted {
		if p.Role == r {
			return nil
		}
	}

	return fault.New(fault.CodePermissionDenied, "role %s may not do this", p.Role)
}
