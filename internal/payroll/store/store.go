package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/schuelerstaat/statebank/internal/fault"
	"github.com/schuelerstaat/statebank/internal/ledger"
	"github.com/schuelerstaat/statebank/internal/payroll"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectEmploymentColumns = `id, company_id, citizen_id, salary, min_worktime, employer, cancelled, created_at`

func scanEmployment(s scanner) (*payroll.Employment, error) {
	var e payroll.Employment
	if err := s.Scan(&e.ID, &e.CompanyID, &e.CitizenID, &e.Salary, &e.MinWorktime, &e.Employer, &e.Cancelled, &e.CreatedAt); err != nil {
		return nil, err
	}

	return &e, nil
}

func (s *Store) CreateEmployment(ctx context.Context, e *payroll.Employment) error {
	query := `
		INSERT INTO employments (id, company_id, citizen_id, salary, min_worktime, employer, cancelled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW())
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		e.ID, e.CompanyID, e.CitizenID, e.Salary, e.MinWorktime, e.Employer,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating employment: %w", err)
	}

	return nil
}

func (s *Store) Employment(ctx context.Context, id uuid.UUID) (*payroll.Employment, error) {
	query := `SELECT ` + selectEmploymentColumns + ` FROM employments WHERE id = $1`

	e, err := scanEmployment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fault.New(fault.CodeEmploymentNotFound, "employment %s not found", id)
		}

		return nil, fmt.Errorf("getting employment: %w", err)
	}

	return e, nil
}

func (s *Store) EmploymentsByCompany(ctx context.Context, companyID uuid.UUID) ([]*payroll.Employment, error) {
	query := `SELECT ` + selectEmploymentColumns + `
		FROM employments
		WHERE company_id = $1
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("listing employments: %w", err)
	}
	defer rows.Close()

	var employments []*payroll.Employment

	for rows.Next() {
		e, err := scanEmployment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning employment: %w", err)
		}

		employments = append(employments, e)
	}

	return employments, rows.Err()
}

func (s *Store) CancelEmployment(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `UPDATE employments SET cancelled = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("cancelling employment: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancelling employment: %w", err)
	}

	if affected == 0 {
		return fault.New(fault.CodeEmploymentNotFound, "employment %s not found", id)
	}

	return nil
}

func (s *Store) CreateWorktime(ctx context.Context, w *payroll.Worktime) error {
	query := `
		INSERT INTO worktimes (id, employment_id, started_at, ended_at)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := s.db.ExecContext(ctx, query, w.ID, w.EmploymentID, w.Start, w.End); err != nil {
		return fmt.Errorf("creating worktime: %w", err)
	}

	return nil
}

func (s *Store) Begin(ctx context.Context) (payroll.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning payout: %w", err)
	}

	return &payoutTx{tx: dbTx}, nil
}

type payoutTx struct {
	tx *sql.Tx
}

func (p *payoutTx) Commit() error   { return p.tx.Commit() }
func (p *payoutTx) Rollback() error { return p.tx.Rollback() }

func (p *payoutTx) ActiveEmployments(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]*payroll.Employment, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := []any{companyID}

	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, id)
	}

	query := `SELECT ` + selectEmploymentColumns + `
		FROM employments
		WHERE company_id = $1 AND cancelled = FALSE AND id IN (` + strings.Join(placeholders, ", ") + `)
		FOR UPDATE`

	rows, err := p.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("resolving employments: %w", err)
	}
	defer rows.Close()

	var employments []*payroll.Employment

	for rows.Next() {
		e, err := scanEmployment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning employment: %w", err)
		}

		employments = append(employments, e)
	}

	return employments, rows.Err()
}

func (p *payoutTx) EmploymentForUpdate(ctx context.Context, id uuid.UUID) (*payroll.Employment, error) {
	query := `SELECT ` + selectEmploymentColumns + ` FROM employments WHERE id = $1 FOR UPDATE`

	e, err := scanEmployment(p.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fault.New(fault.CodeEmploymentNotFound, "employment %s not found", id)
		}

		return nil, fmt.Errorf("locking employment: %w", err)
	}

	return e, nil
}

func (p *payoutTx) WorktimeForUpdate(ctx context.Context, id uuid.UUID) (*payroll.Worktime, error) {
	query := `SELECT id, employment_id, started_at, ended_at FROM worktimes WHERE id = $1 FOR UPDATE`

	var w payroll.Worktime

	err := p.tx.QueryRowContext(ctx, query, id).Scan(&w.ID, &w.EmploymentID, &w.Start, &w.End)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fault.New(fault.CodeWorktimeNotFound, "worktime %s not found", id)
		}

		return nil, fmt.Errorf("locking worktime: %w", err)
	}

	return &w, nil
}

func (p *payoutTx) SalaryExistsForWorktime(ctx context.Context, worktimeID uuid.UUID) (bool, error) {
	var exists bool
	if err := p.tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM transactions WHERE worktime_id = $1)`, worktimeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking paid worktimes: %w", err)
	}

	return exists, nil
}

// Debit matches the ledger store's conditional decrement; the payout paths
// run the same single-statement balance rule.
func (p *payoutTx) Debit(ctx context.Context, owner ledger.UserSignature, value decimal.Decimal) error {
	query := `
		UPDATE accounts
		SET balance = balance - $1
		WHERE owner = $2 AND balance >= $1
	`

	res, err := p.tx.ExecContext(ctx, query, value, owner.Encode())
	if err != nil {
		return fmt.Errorf("debiting %s: %w", owner, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("debiting %s: %w", owner, err)
	}

	if affected == 0 {
		var exists bool
		if err := p.tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE owner = $1)`, owner.Encode()).Scan(&exists); err != nil {
			return fmt.Errorf("checking account %s: %w", owner, err)
		}

		if !exists {
			return fault.New(fault.CodeUserNotFound, "no account for %s", owner)
		}

		return fault.New(fault.CodeBalanceTooLow, "%s cannot cover %s", owner, value)
	}

	return nil
}

func (p *payoutTx) Credit(ctx context.Context, owner ledger.UserSignature, value decimal.Decimal) error {
	query := `
		UPDATE accounts
		SET balance = balance + $1
		WHERE owner = $2
	`

	res, err := p.tx.ExecContext(ctx, query, value, owner.Encode())
	if err != nil {
		return fmt.Errorf("crediting %s: %w", owner, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("crediting %s: %w", owner, err)
	}

	if affected == 0 {
		return fault.New(fault.CodeUserNotFound, "no account for %s", owner)
	}

	return nil
}

// InsertTransaction appends a Salary journal row. Only the salary columns
// are populated here; the ledger store owns the full variant mapping.
func (p *payoutTx) InsertTransaction(ctx context.Context, t *ledger.Transaction) error {
	if t.Kind != ledger.KindSalary || t.Salary == nil {
		return fmt.Errorf("payroll journals only salary rows, got %q", t.Kind)
	}

	query := `
		INSERT INTO transactions (id, kind, employment_id, gross_value, net_value, tax, worktime_id, is_bonus, created_at)
		VALUES (nextval('journal_id_seq'), $1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	var worktimeID uuid.NullUUID
	if t.Salary.WorktimeID != nil {
		worktimeID = uuid.NullUUID{UUID: *t.Salary.WorktimeID, Valid: true}
	}

	err := p.tx.QueryRowContext(ctx, query,
		string(t.Kind), t.Salary.EmploymentID, t.Salary.GrossValue, t.Salary.NetValue,
		t.Salary.Tax, worktimeID, t.Salary.IsBonus,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting salary row: %w", err)
	}

	return nil
}
