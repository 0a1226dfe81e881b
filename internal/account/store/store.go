package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/schuelerstaat/statebank/internal/account"
	"github.com/schuelerstaat/statebank/internal/fault"
	"github.com/schuelerstaat/statebank/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateAccount(ctx context.Context, a *account.Account) error {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO accounts (owner, balance, redemption_balance)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, a.Owner.Encode(), a.Balance, a.RedemptionBalance).Scan(&a.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting account for %s: %w", a.Owner, err)
	}

	return nil
}

func (s *Store) Account(ctx context.Context, owner ledger.UserSignature) (*account.Account, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT owner, balance, redemption_balance, created_at
		FROM accounts
		WHERE owner = $1
	`, owner.Encode())

	a, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fault.New(fault.CodeUserNotFound, "no account for %s", owner)
	}
	if err != nil {
		return nil, fmt.Errorf("querying account for %s: %w", owner, err)
	}

	return a, nil
}

func (s *Store) Accounts(ctx context.Context) ([]*account.Account, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT owner, balance, redemption_balance, created_at
		FROM accounts
		ORDER BY owner
	`)
	if err != nil {
		return nil, fmt.Errorf("querying accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*account.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*account.Account, error) {
	var (
		a     account.Account
		owner string
	)
	if err := s.Scan(&owner, &a.Balance, &a.RedemptionBalance, &a.CreatedAt); err != nil {
		return nil, err
	}

	sig, err := ledger.DecodeUserSignature(owner)
	if err != nil {
		return nil, err
	}

	a.Owner = sig
	return &a, nil
}
