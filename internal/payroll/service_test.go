package payroll_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/schuelerstaat/statebank/internal/fault"
	"github.com/schuelerstaat/statebank/internal/ledger"
	"github.com/schuelerstaat/statebank/internal/payroll"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	repo    *payroll.MockRepository
	tx      *payroll.MockTx
	service *payroll.Service
	bank    ledger.UserSignature
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	repo := payroll.NewMockRepository(ctrl)
	tx := payroll.NewMockTx(ctrl)
	bank := ledger.GuestSignature(uuid.New())

	return &fixture{
		repo: repo,
		tx:   tx,
		bank: bank,
		service: payroll.NewService(repo, payroll.Params{
			StateBank:     bank,
			IncomeTaxRate: dec("0.2"),
		}),
	}
}

func (f *fixture) expectBegin() {
	f.repo.EXPECT().Begin(gomock.Any()).Return(f.tx, nil)
	f.tx.EXPECT().Rollback().Return(nil)
}

func TestService_Employ(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		companyID, citizenID := uuid.New(), uuid.New()

		f.repo.EXPECT().
			CreateEmployment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *payroll.Employment) error {
				assert.Equal(t, companyID, e.CompanyID)
				assert.Equal(t, citizenID, e.CitizenID)
				assert.True(t, e.Salary.Equal(dec("12.5")))
				assert.Equal(t, 240, e.MinWorktime)
				assert.False(t, e.Cancelled)
				return nil
			})

		e, err := f.service.Employ(context.Background(), companyID, citizenID, dec("12.5"), 240, false)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, e.ID)
	})

	t.Run("NegativeSalary", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Employ(context.Background(), uuid.New(), uuid.New(), dec("-1"), 0, false)
		assert.Equal(t, fault.CodeBadUserInput, fault.CodeOf(err))
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		companyID, id := uuid.New(), uuid.New()

		f.repo.EXPECT().
			Employment(gomock.Any(), id).
			Return(&payroll.Employment{ID: id, CompanyID: companyID}, nil)
		f.repo.EXPECT().CancelEmployment(gomock.Any(), id).Return(nil)

		require.NoError(t, f.service.Cancel(context.Background(), companyID, id))
	})

	t.Run("ForeignCompany", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()

		f.repo.EXPECT().
			Employment(gomock.Any(), id).
			Return(&payroll.Employment{ID: id, CompanyID: uuid.New()}, nil)

		err := f.service.Cancel(context.Background(), uuid.New(), id)
		assert.Equal(t, fault.CodePermissionDenied, fault.CodeOf(err))
	})

	t.Run("AdminWildcard", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()

		f.repo.EXPECT().
			Employment(gomock.Any(), id).
			Return(&payroll.Employment{ID: id, CompanyID: uuid.New()}, nil)
		f.repo.EXPECT().CancelEmployment(gomock.Any(), id).Return(nil)

		require.NoError(t, f.service.Cancel(context.Background(), uuid.Nil, id))
	})
}

func TestService_RecordWorktime(t *testing.T) {
	start := time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		companyID, employmentID := uuid.New(), uuid.New()

		f.repo.EXPECT().
			Employment(gomock.Any(), employmentID).
			Return(&payroll.Employment{ID: employmentID, CompanyID: companyID}, nil)
		f.repo.EXPECT().
			CreateWorktime(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, w *payroll.Worktime) error {
				assert.Equal(t, employmentID, w.EmploymentID)
				return nil
			})

		w, err := f.service.RecordWorktime(context.Background(), companyID, employmentID, start, start.Add(4*time.Hour))
		require.NoError(t, err)
		assert.True(t, w.Hours().Equal(dec("4")))
	})

	t.Run("ForeignCompany", func(t *testing.T) {
		f := newFixture(t)
		employmentID := uuid.New()

		f.repo.EXPECT().
			Employment(gomock.Any(), employmentID).
			Return(&payroll.Employment{ID: employmentID, CompanyID: uuid.New()}, nil)

		_, err := f.service.RecordWorktime(context.Background(), uuid.New(), employmentID, start, start.Add(time.Hour))
		assert.Equal(t, fault.CodePermissionDenied, fault.CodeOf(err))
	})

	t.Run("CancelledEmployment", func(t *testing.T) {
		f := newFixture(t)
		companyID, employmentID := uuid.New(), uuid.New()

		f.repo.EXPECT().
			Employment(gomock.Any(), employmentID).
			Return(&payroll.Employment{ID: employmentID, CompanyID: companyID, Cancelled: true}, nil)

		_, err := f.service.RecordWorktime(context.Background(), companyID, employmentID, start, start.Add(time.Hour))
		assert.Equal(t, fault.CodeEmploymentNotFound, fault.CodeOf(err))
	})

	t.Run("EndsBeforeItStarts", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.RecordWorktime(context.Background(), uuid.New(), uuid.New(), start, start.Add(-time.Minute))
		assert.Equal(t, fault.CodeBadUserInput, fault.CodeOf(err))
	})
}

func TestService_PayBonus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		companyID := uuid.New()
		e1 := &payroll.Employment{ID: uuid.New(), CompanyID: companyID, CitizenID: uuid.New()}
		e2 := &payroll.Employment{ID: uuid.New(), CompanyID: companyID, CitizenID: uuid.New()}
		ids := []uuid.UUID{e1.ID, e2.ID}

		f.expectBegin()
		f.tx.EXPECT().
			ActiveEmployments(gomock.Any(), companyID, ids).
			Return([]*payroll.Employment{e1, e2}, nil)
		f.tx.EXPECT().
			Debit(gomock.Any(), ledger.CompanySignature(companyID), gomock.Cond(func(v decimal.Decimal) bool {
				return v.Equal(dec("10"))
			})).
			Return(nil)
		for _, e := range []*payroll.Employment{e1, e2} {
			f.tx.EXPECT().
				Credit(gomock.Any(), ledger.CitizenSignature(e.CitizenID), gomock.Cond(func(v decimal.Decimal) bool {
					return v.Equal(dec("5"))
				})).
				Return(nil)
		}
		f.tx.EXPECT().InsertTransaction(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		f.tx.EXPECT().Commit().Return(nil)

		payouts, err := f.service.PayBonus(context.Background(), companyID, dec("5"), ids)
		require.NoError(t, err)
		require.Len(t, payouts, 2)
		for _, p := range payouts {
			assert.Equal(t, ledger.KindSalary, p.Kind)
			assert.True(t, p.Salary.IsBonus)
			assert.True(t, p.Salary.Tax.IsZero())
			assert.True(t, p.Salary.GrossValue.Equal(p.Salary.NetValue))
			assert.Nil(t, p.Salary.WorktimeID)
		}
	})

	t.Run("CompanyCannotCoverBatch", func(t *testing.T) {
		f := newFixture(t)
		companyID := uuid.New()
		e1 := &payroll.Employment{ID: uuid.New(), CompanyID: companyID, CitizenID: uuid.New()}
		e2 := &payroll.Employment{ID: uuid.New(), CompanyID: companyID, CitizenID: uuid.New()}
		ids := []uuid.UUID{e1.ID, e2.ID}

		f.expectBegin()
		f.tx.EXPECT().
			ActiveEmployments(gomock.Any(), companyID, ids).
			Return([]*payroll.Employment{e1, e2}, nil)
		f.tx.EXPECT().
			Debit(gomock.Any(), ledger.CompanySignature(companyID), gomock.Any()).
			Return(fault.New(fault.CodeBalanceTooLow, "balance too low"))

		_, err := f.service.PayBonus(context.Background(), companyID, dec("2"), ids)
		assert.Equal(t, fault.CodeBalanceTooLow, fault.CodeOf(err))
	})

	t.Run("UnknownEmployment", func(t *testing.T) {
		f := newFixture(t)
		companyID := uuid.New()
		e1 := &payroll.Employment{ID: uuid.New(), CompanyID: companyID, CitizenID: uuid.New()}
		ids := []uuid.UUID{e1.ID, uuid.New()}

		f.expectBegin()
		f.tx.EXPECT().
			ActiveEmployments(gomock.Any(), companyID, ids).
			Return([]*payroll.Employment{e1}, nil)

		_, err := f.service.PayBonus(context.Background(), companyID, dec("1"), ids)
		assert.Equal(t, fault.CodeEmploymentNotFound, fault.CodeOf(err))
	})

	t.Run("NoEmployments", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.PayBonus(context.Background(), uuid.New(), dec("1"), nil)
		assert.Equal(t, fault.CodeBadUserInput, fault.CodeOf(err))
	})

	t.Run("NonPositiveValue", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.PayBonus(context.Background(), uuid.New(), dec("0"), []uuid.UUID{uuid.New()})
		assert.Equal(t, fault.CodeBadUserInput, fault.CodeOf(err))
	})
}

func TestService_PaySalary(t *testing.T) {
	start := time.Date(2026, 6, 2, 8, 0, 0, 0, time.UTC)

	setup := func(f *fixture) (*payroll.Employment, *payroll.Worktime) {
		e := &payroll.Employment{
			ID:        uuid.New(),
			CompanyID: uuid.New(),
			CitizenID: uuid.New(),
			Salary:    dec("10"), // hourly
		}
		w := &payroll.Worktime{
			ID:           uuid.New(),
			EmploymentID: e.ID,
			Start:        start,
			End:          start.Add(2 * time.Hour),
		}
		f.expectBegin()
		f.tx.EXPECT().EmploymentForUpdate(gomock.Any(), e.ID).Return(e, nil)
		return e, w
	}

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		e, w := setup(f)

		f.tx.EXPECT().WorktimeForUpdate(gomock.Any(), w.ID).Return(w, nil)
		f.tx.EXPECT().SalaryExistsForWorktime(gomock.Any(), w.ID).Return(false, nil)
		// 2h at 10/h: gross 20, tax 4, net 16.
		f.tx.EXPECT().
			Debit(gomock.Any(), ledger.CompanySignature(e.CompanyID), gomock.Cond(func(v decimal.Decimal) bool {
				return v.Equal(dec("20"))
			})).
			Return(nil)
		f.tx.EXPECT().
			Credit(gomock.Any(), ledger.CitizenSignature(e.CitizenID), gomock.Cond(func(v decimal.Decimal) bool {
				return v.Equal(dec("16"))
			})).
			Return(nil)
		f.tx.EXPECT().
			Credit(gomock.Any(), f.bank, gomock.Cond(func(v decimal.Decimal) bool {
				return v.Equal(dec("4"))
			})).
			Return(nil)
		f.tx.EXPECT().InsertTransaction(gomock.Any(), gomock.Any()).Return(nil)
		f.tx.EXPECT().Commit().Return(nil)

		trans, err := f.service.PaySalary(context.Background(), e.CompanyID, e.ID, w.ID)
		require.NoError(t, err)
		require.NotNil(t, trans.Salary)
		assert.True(t, trans.Salary.GrossValue.Equal(dec("20")))
		assert.True(t, trans.Salary.NetValue.Equal(dec("16")))
		assert.True(t, trans.Salary.Tax.Equal(dec("4")))
		assert.False(t, trans.Salary.IsBonus)
		require.NotNil(t, trans.Salary.WorktimeID)
		assert.Equal(t, w.ID, *trans.Salary.WorktimeID)
	})

	t.Run("AlreadyPaid", func(t *testing.T) {
		f := newFixture(t)
		e, w := setup(f)

		f.tx.EXPECT().WorktimeForUpdate(gomock.Any(), w.ID).Return(w, nil)
		f.tx.EXPECT().SalaryExistsForWorktime(gomock.Any(), w.ID).Return(true, nil)

		_, err := f.service.PaySalary(context.Background(), e.CompanyID, e.ID, w.ID)
		assert.Equal(t, fault.CodeWorktimeAlreadyPaid, fault.CodeOf(err))
	})

	t.Run("ForeignWorktime", func(t *testing.T) {
		f := newFixture(t)
		e, w := setup(f)
		w.EmploymentID = uuid.New()

		f.tx.EXPECT().WorktimeForUpdate(gomock.Any(), w.ID).Return(w, nil)

		_, err := f.service.PaySalary(context.Background(), e.CompanyID, e.ID, w.ID)
		assert.Equal(t, fault.CodeWorktimeNotFound, fault.CodeOf(err))
	})

	t.Run("ForeignCompany", func(t *testing.T) {
		f := newFixture(t)
		e, w := setup(f)

		_, err := f.service.PaySalary(context.Background(), uuid.New(), e.ID, w.ID)
		assert.Equal(t, fault.CodePermissionDenied, fault.CodeOf(err))
	})

	t.Run("AdminWildcard", func(t *testing.T) {
		f := newFixture(t)
		e, w := setup(f)

		f.tx.EXPECT().WorktimeForUpdate(gomock.Any(), w.ID).Return(w, nil)
		f.tx.EXPECT().SalaryExistsForWorktime(gomock.Any(), w.ID).Return(false, nil)
		f.tx.EXPECT().Debit(gomock.Any(), ledger.CompanySignature(e.CompanyID), gomock.Any()).Return(nil)
		f.tx.EXPECT().Credit(gomock.Any(), ledger.CitizenSignature(e.CitizenID), gomock.Any()).Return(nil)
		f.tx.EXPECT().Credit(gomock.Any(), f.bank, gomock.Any()).Return(nil)
		f.tx.EXPECT().InsertTransaction(gomock.Any(), gomock.Any()).Return(nil)
		f.tx.EXPECT().Commit().Return(nil)

		_, err := f.service.PaySalary(context.Background(), uuid.Nil, e.ID, w.ID)
		require.NoError(t, err)
	})

	t.Run("CancelledEmployment", func(t *testing.T) {
		f := newFixture(t)
		e := &payroll.Employment{ID: uuid.New(), CompanyID: uuid.New(), Cancelled: true}

		f.expectBegin()
		f.tx.EXPECT().EmploymentForUpdate(gomock.Any(), e.ID).Return(e, nil)

		_, err := f.service.PaySalary(context.Background(), e.CompanyID, e.ID, uuid.New())
		assert.Equal(t, fault.CodeEmploymentNotFound, fault.CodeOf(err))
	})
}
