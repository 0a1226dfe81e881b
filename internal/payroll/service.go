package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/schuelerstaat/statebank/internal/fault"
	"github.com/schuelerstaat/statebank/internal/ledger"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=payroll

// Repository is the payroll persistence boundary. Payouts run through Begin:
// the whole batch commits or none of it does.
type Repository interface {
	Begin(ctx context.Context) (Tx, error)

	CreateEmployment(ctx context.Context, e *Employment) error
	Employment(ctx context.Context, id uuid.UUID) (*Employment, error)
	EmploymentsByCompany(ctx context.Context, companyID uuid.UUID) ([]*Employment, error)
	CancelEmployment(ctx context.Context, id uuid.UUID) error
	CreateWorktime(ctx context.Context, w *Worktime) error
}

// Tx mirrors the ledger's unit of work for the batch payout paths.
type Tx interface {
	// ActiveEmployments resolves ids against a company's non-cancelled
	// employments. Any id that does not resolve makes the batch fail.
	ActiveEmployments(ctx context.Context, companyID uuid.UUID, ids []uuid.UUID) ([]*Employment, error)
	EmploymentForUpdate(ctx context.Context, id uuid.UUID) (*Employment, error)
	WorktimeForUpdate(ctx context.Context, id uuid.UUID) (*Worktime, error)
	SalaryExistsForWorktime(ctx context.Context, worktimeID uuid.UUID) (bool, error)

	Debit(ctx context.Context, owner ledger.UserSignature, value decimal.Decimal) error
	Credit(ctx context.Context, owner ledger.UserSignature, value decimal.Decimal) error
	InsertTransaction(ctx context.Context, t *ledger.Transaction) error

	Commit() error
	Rollback() error
}

// Params carry the income tax rate and the account the tax share lands on.
type Params struct {
	StateBank     ledger.UserSignature
	IncomeTaxRate decimal.Decimal
}

// Service is the batch variant of the ledger engine: it moves salary and
// bonus money for whole employee sets in one atomic unit of work.
type Service struct {
	repo   Repository
	params Params
}

func NewService(repo Repository, params Params) *Service {
	return &Service{repo: repo, params: params}
}

// Employ creates a new employment.
func (s *Service) Employ(ctx context.Context, companyID, citizenID uuid.UUID, salary decimal.Decimal, minWorktime int, employer bool) (*Employment, error) {
	if salary.IsNegative() {
		return nil, fault.New(fault.CodeBadUserInput, "salary must not be negative")
	}

	e := &Employment{
		ID:          uuid.New(),
		CompanyID:   companyID,
		CitizenID:   citizenID,
		Salary:      salary,
		MinWorktime: minWorktime,
		Employer:    employer,
	}
	if err := s.repo.CreateEmployment(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

// Cancel flags an employment cancelled. The row stays; Salary journal
// entries keep referencing it. Only the employing company may cancel; the
// zero companyID is the admin wildcard.
func (s *Service) Cancel(ctx context.Context, companyID, id uuid.UUID) error {
	e, err := s.repo.Employment(ctx, id)
	if err != nil {
		return err
	}

	if companyID != uuid.Nil && e.CompanyID != companyID {
		return fault.New(fault.CodePermissionDenied, "employment %s belongs to another company", id)
	}

	return s.repo.CancelEmployment(ctx, id)
}

// Employments lists a company's employments, cancelled ones included.
func (s *Service) Employments(ctx context.Context, companyID uuid.UUID) ([]*Employment, error) {
	return s.repo.EmploymentsByCompany(ctx, companyID)
}

// RecordWorktime stores a finished shift against one of companyID's own
// employments. The zero companyID is the admin wildcard.
func (s *Service) RecordWorktime(ctx context.Context, companyID, employmentID uuid.UUID, start, end time.Time) (*Worktime, error) {
	if !end.After(start) {
		return nil, fault.New(fault.CodeBadUserInput, "worktime must end after it starts")
	}

	e, err := s.repo.Employment(ctx, employmentID)
	if err != nil {
		return nil, err
	}

	if companyID != uuid.Nil && e.CompanyID != companyID {
		return nil, fault.New(fault.CodePermissionDenied, "employment %s belongs to another company", employmentID)
	}

	if e.Cancelled {
		return nil, fault.New(fault.CodeEmploymentNotFound, "employment %s is cancelled", employmentID)
	}

	w := &Worktime{ID: uuid.New(), EmploymentID: employmentID, Start: start, End: end}
	if err := s.repo.CreateWorktime(ctx, w); err != nil {
		return nil, err
	}

	return w, nil
}

// PayBonus pays the same bonus to several employees at once. The company is
// debited the full batch amount up front; if it cannot cover it, nobody is
// paid.
func (s *Service) PayBonus(ctx context.Context, companyID uuid.UUID, value decimal.Decimal, employmentIDs []uuid.UUID) ([]*ledger.Transaction, error) {
	if !value.IsPositive() {
		return nil, fault.New(fault.CodeBadUserInput, "bonus value must be positive")
	}

	if len(employmentIDs) == 0 {
		return nil, fault.New(fault.CodeBadUserInput, "bonus needs at least one employment")
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning bonus payout: %w", err)
	}
	defer tx.Rollback()

	employments, err := tx.ActiveEmployments(ctx, companyID, employmentIDs)
	if err != nil {
		return nil, err
	}

	if len(employments) != len(employmentIDs) {
		return nil, fault.New(fault.CodeEmploymentNotFound, "not every employment belongs to company %s", companyID)
	}

	total := value.Mul(decimal.NewFromInt(int64(len(employments))))
	if err := tx.Debit(ctx, ledger.CompanySignature(companyID), total); err != nil {
		return nil, err
	}

	payouts := make([]*ledger.Transaction, 0, len(employments))

	for _, e := range employments {
		if err := tx.Credit(ctx, ledger.CitizenSignature(e.CitizenID), value); err != nil {
			return nil, err
		}

		t := &ledger.Transaction{
			Kind: ledger.KindSalary,
			Salary: &ledger.Salary{
				EmploymentID: e.ID,
				GrossValue:   value,
				NetValue:     value,
				Tax:          decimal.Zero,
				IsBonus:      true,
			},
		}
		if err := tx.InsertTransaction(ctx, t); err != nil {
			return nil, fmt.Errorf("journaling bonus: %w", err)
		}

		payouts = append(payouts, t)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing bonus payout: %w", err)
	}

	return payouts, nil
}

// PaySalary settles one recorded shift: gross pay from the hourly wage, the
// income tax share to the state bank, the net to the citizen. A shift can be
// paid only once, and only by the employing company. The zero companyID is
// the admin wildcard.
func (s *Service) PaySalary(ctx context.Context, companyID, employmentID, worktimeID uuid.UUID) (*ledger.Transaction, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning salary payment: %w", err)
	}
	defer tx.Rollback()

	e, err := tx.EmploymentForUpdate(ctx, employmentID)
	if err != nil {
		return nil, err
	}

	if companyID != uuid.Nil && e.CompanyID != companyID {
		return nil, fault.New(fault.CodePermissionDenied, "employment %s belongs to another company", employmentID)
	}

	if e.Cancelled {
		return nil, fault.New(fault.CodeEmploymentNotFound, "employment %s is cancelled", employmentID)
	}

	w, err := tx.WorktimeForUpdate(ctx, worktimeID)
	if err != nil {
		return nil, err
	}

	if w.EmploymentID != e.ID {
		return nil, fault.New(fault.CodeWorktimeNotFound, "worktime %s does not belong to employment %s", worktimeID, employmentID)
	}

	paid, err := tx.SalaryExistsForWorktime(ctx, worktimeID)
	if err != nil {
		return nil, fmt.Errorf("checking worktime %s: %w", worktimeID, err)
	}

	if paid {
		return nil, fault.New(fault.CodeWorktimeAlreadyPaid, "worktime %s was already paid", worktimeID)
	}

	gross := e.Salary.Mul(w.Hours()).Round(2)
	tax := gross.Mul(s.params.IncomeTaxRate).Round(2)
	net := gross.Sub(tax)

	if err := tx.Debit(ctx, ledger.CompanySignature(e.CompanyID), gross); err != nil {
		return nil, err
	}

	if err := tx.Credit(ctx, ledger.CitizenSignature(e.CitizenID), net); err != nil {
		return nil, err
	}

	if tax.IsPositive() {
		if err := tx.Credit(ctx, s.params.StateBank, tax); err != nil {
			return nil, err
		}
	}

	t := &ledger.Transaction{
		Kind: ledger.KindSalary,
		Salary: &ledger.Salary{
			EmploymentID: e.ID,
			GrossValue:   gross,
			NetValue:     net,
			Tax:          tax,
			WorktimeID:   &w.ID,
			IsBonus:      false,
		},
	}
	if err := tx.InsertTransaction(ctx, t); err != nil {
		return nil, fmt.Errorf("journaling salary: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing salary payment: %w", err)
	}

	return t, nil
}
