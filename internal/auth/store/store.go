package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/schuelerstaat/statebank/internal/auth"
	"github.com/schuelerstaat/statebank/internal/fault"
	"github.com/schuelerstaat/statebank/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreatePrincipal(ctx context.Context, p *auth.Principal) error {
	// A nil hash stores as NULL; guests have none.
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO principals (signature, name, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, p.Signature.Encode(), p.Name, string(p.Role), p.PasswordHash).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting principal %s: %w", p.Name, err)
	}

	return nil
}

func (s *Store) PrincipalByName(ctx context.Context, name string) (*auth.Principal, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT signature, name, role, password_hash, created_at
		FROM principals
		WHERE name = $1
	`, name)

	p, err := scanPrincipal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fault.New(fault.CodeUserNotFound, "no principal named %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("querying principal %q: %w", name, err)
	}

	return p, nil
}

func (s *Store) Principal(ctx context.Context, sig ledger.UserSignature) (*auth.Principal, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT signature, name, role, password_hash, created_at
		FROM principals
		WHERE signature = $1
	`, sig.Encode())

	p, err := scanPrincipal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fault.New(fault.CodeUserNotFound, "no principal %s", sig)
	}
	if err != nil {
		return nil, fmt.Errorf("querying principal %s: %w", sig, err)
	}

	return p, nil
}

func scanPrincipal(row *sql.Row) (*auth.Principal, error) {
	var (
		p    auth.Principal
		sig  string
		role string
	)
	if err := row.Scan(&sig, &p.Name, &role, &p.PasswordHash, &p.CreatedAt); err != nil {
		return nil, err
	}

	decoded, err := ledger.DecodeUserSignature(sig)
	if err != nil {
		return nil, err
	}

	p.Signature = decoded
	p.Role = auth.Role(role)

	return &p, nil
}
