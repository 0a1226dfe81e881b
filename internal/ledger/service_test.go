package ledger_test

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
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strptr(s string) *string { return &s }

func decptr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

type fixture struct {
	repo      *ledger.MockRepository
	tx        *ledger.MockTx
	passwords *ledger.MockPasswordChecker
	rates     *ledger.MockConverter
	params    ledger.Params
	svc       *ledger.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:      ledger.NewMockRepository(ctrl),
		tx:        ledger.NewMockTx(ctrl),
		passwords: ledger.NewMockPasswordChecker(ctrl),
		rates:     ledger.NewMockConverter(ctrl),
		params: ledger.Params{
			StateBank:     ledger.CompanySignature(uuid.New()),
			BorderControl: ledger.CompanySignature(uuid.New()),
			Warehouse:     ledger.CompanySignature(uuid.New()),
			SalesTaxRate:  decimal.Zero,
		},
	}
	f.svc = ledger.NewService(f.repo, f.passwords, f.rates, f.params)

	return f
}

func (f *fixture) expectBegin() {
	f.repo.EXPECT().Begin(gomock.Any()).Return(f.tx, nil)
	f.tx.EXPECT().Rollback().Return(nil)
}

func (f *fixture) expectInsert(id int64) {
	f.tx.EXPECT().
		InsertTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, t *ledger.Transaction) error {
			if t.ID == 0 {
				t.ID = id
			}
			t.CreatedAt = time.Now()
			return nil
		})
}

func TestService_TransferMoney(t *testing.T) {
	sender := ledger.CitizenSignature(uuid.New())
	receiver := ledger.CitizenSignature(uuid.New())

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.tx.EXPECT().Debit(gomock.Any(), sender, dec("5")).Return(nil)
		f.tx.EXPECT().Credit(gomock.Any(), receiver, dec("5")).Return(nil)
		f.expectInsert(42)
		f.tx.EXPECT().Commit().Return(nil)

		tx, err := f.svc.TransferMoney(context.Background(), sender, receiver, dec("5"), strptr("lunch"))
		require.NoError(t, err)
		assert.Equal(t, int64(42), tx.ID)
		assert.Equal(t, ledger.KindTransfer, tx.Kind)
		require.NotNil(t, tx.Transfer)
		assert.Equal(t, sender, tx.Transfer.Sender)
		assert.Equal(t, receiver, tx.Transfer.Receiver)
		assert.True(t, tx.Transfer.Value.Equal(dec("5")))
	})

	t.Run("NonPositiveValue", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.TransferMoney(context.Background(), sender, receiver, dec("0"), nil)
		assert.Equal(t, fault.CodeBadUserInput, fault.CodeOf(err))
	})

	t.Run("BalanceTooLow", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.tx.EXPECT().
			Debit(gomock.Any(), sender, dec("5")).
			Return(fault.New(fault.CodeBalanceTooLow, "cannot cover"))

		_, err := f.svc.TransferMoney(context.Background(), sender, receiver, dec("5"), nil)
		assert.Equal(t, fault.CodeBalanceTooLow, fault.CodeOf(err))
	})

	t.Run("ReceiverGone", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.tx.EXPECT().Debit(gomock.Any(), sender, dec("5")).Return(nil)
		f.tx.EXPECT().
			Credit(gomock.Any(), receiver, dec("5")).
			Return(fault.New(fault.CodeUserNotFound, "no account"))

		_, err := f.svc.TransferMoney(context.Background(), sender, receiver, dec("5"), nil)
		assert.Equal(t, fault.CodeUserNotFound, fault.CodeOf(err))
	})
}

func TestService_ChargeCustoms(t *testing.T) {
	traveller := ledger.GuestSignature(uuid.New())

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.tx.EXPECT().Debit(gomock.Any(), traveller, dec("2.50")).Return(nil)
		f.tx.EXPECT().Credit(gomock.Any(), f.params.BorderControl, dec("2.50")).Return(nil)
		f.expectInsert(7)
		f.tx.EXPECT().Commit().Return(nil)

		tx, err := f.svc.ChargeCustoms(context.Background(), traveller, dec("2.50"))
		require.NoError(t, err)
		assert.Equal(t, ledger.KindCustoms, tx.Kind)
		require.NotNil(t, tx.Customs)
		assert.Equal(t, traveller, tx.Customs.User)
	})

	t.Run("NonPositiveValue", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.ChargeCustoms(context.Background(), traveller, dec("-1"))
		assert.Equal(t, fault.CodeBadUserInput, fault.CodeOf(err))
	})

	t.Run("BalanceTooLow", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.tx.EXPECT().
			Debit(gomock.Any(), traveller, dec("2.50")).
			Return(fault.New(fault.CodeBalanceTooLow, "cannot cover"))

		_, err := f.svc.ChargeCustoms(context.Background(), traveller, dec("2.50"))
		assert.Equal(t, fault.CodeBalanceTooLow, fault.CodeOf(err))
	})
}

func TestService_CreateChangeDraft(t *testing.T) {
	clerk := ledger.CitizenSignature(uuid.New())

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		f.rates.EXPECT().Known("EUR").Return(true)
		f.rates.EXPECT().Known("MOR").Return(true)
		f.rates.EXPECT().BaseCurrency().Return("MOR")
		f.rates.EXPECT().Convert("EUR", "MOR", dec("10")).Return(dec("25"), nil)
		f.expectBegin()
		f.tx.EXPECT().
			InsertChangeDraft(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *ledger.ChangeDraft) error {
				d.ID = 11
				d.CreatedAt = time.Now()
				return nil
			})
		f.tx.EXPECT().Commit().Return(nil)

		d, err := f.svc.CreateChangeDraft(context.Background(), clerk, "EUR", "MOR", dec("10"))
		require.NoError(t, err)
		assert.Equal(t, int64(11), d.ID)
		assert.True(t, d.ToValue.Equal(dec("25")))
		assert.Equal(t, clerk, d.Clerk)
	})

	t.Run("UnknownCurrency", func(t *testing.T) {
		f := newFixture(t)
		f.rates.EXPECT().Known("XXX").Return(false)

		_, err := f.svc.CreateChangeDraft(context.Background(), clerk, "XXX", "MOR", dec("10"))
		assert.Equal(t, fault.CodeBadUserInput, fault.CodeOf(err))
	})

	t.Run("NoStateCurrencySide", func(t *testing.T) {
		f := newFixture(t)
		f.rates.EXPECT().Known("EUR").Return(true)
		f.rates.EXPECT().Known("USD").Return(true)
		f.rates.EXPECT().BaseCurrency().Return("MOR")

		_, err := f.svc.CreateChangeDraft(context.Background(), clerk, "EUR", "USD", dec("10"))
		assert.Equal(t, fault.CodeBadUserInput, fault.CodeOf(err))
	})

	t.Run("NonPositiveValue", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CreateChangeDraft(context.Background(), clerk, "EUR", "MOR", dec("0"))
		assert.Equal(t, fault.CodeBadUserInput, fault.CodeOf(err))
	})
}

func TestService_PayChangeDraft(t *testing.T) {
	clerk := ledger.CitizenSignature(uuid.New())
	customer := ledger.CitizenSignature(uuid.New())

	draft := func() *ledger.ChangeDraft {
		return &ledger.ChangeDraft{
			ID:           11,
			Clerk:        clerk,
			FromCurrency: "EUR",
			FromValue:    dec("10"),
			ToCurrency:   "MOR",
			ToValue:      dec("25"),
		}
	}

	t.Run("ForeignIntoStateMoney", func(t *testing.T) {
		f := newFixture(t)
		f.passwords.EXPECT().CheckPassword(gomock.Any(), customer, "secret").Return(true, nil)
		f.expectBegin()
		f.tx.EXPECT().ChangeDraftForUpdate(gomock.Any(), int64(11)).Return(draft(), nil)
		f.rates.EXPECT().BaseCurrency().Return("MOR")
		f.tx.EXPECT().Debit(gomock.Any(), f.params.StateBank, dec("25")).Return(nil)
		f.tx.EXPECT().Credit(gomock.Any(), customer, dec("25")).Return(nil)
		f.tx.EXPECT().AddRedemption(gomock.Any(), customer, dec("25")).Return(nil)
		f.tx.EXPECT().DeleteChangeDraft(gomock.Any(), int64(11)).Return(nil)
		f.tx.EXPECT().
			InsertTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *ledger.Transaction) error {
				assert.Equal(t, int64(11), tx.ID)
				tx.CreatedAt = time.Now()
				return nil
			})
		f.tx.EXPECT().Commit().Return(nil)

		tx, err := f.svc.PayChangeDraft(context.Background(), 11, customer, strptr("secret"))
		require.NoError(t, err)
		assert.Equal(t, int64(11), tx.ID)
		require.NotNil(t, tx.Change)
		assert.Equal(t, customer, tx.Change.User)
		assert.Equal(t, clerk, tx.Change.Clerk)
	})

	t.Run("StateMoneyIntoForeign", func(t *testing.T) {
		f := newFixture(t)
		d := draft()
		d.FromCurrency, d.ToCurrency = "MOR", "EUR"
		d.FromValue, d.ToValue = dec("25"), dec("10")

		f.passwords.EXPECT().CheckPassword(gomock.Any(), customer, "secret").Return(true, nil)
		f.expectBegin()
		f.tx.EXPECT().ChangeDraftForUpdate(gomock.Any(), int64(11)).Return(d, nil)
		f.rates.EXPECT().BaseCurrency().Return("MOR")
		f.tx.EXPECT().Debit(gomock.Any(), customer, dec("25")).Return(nil)
		f.tx.EXPECT().Credit(gomock.Any(), f.params.StateBank, dec("25")).Return(nil)
		f.tx.EXPECT().DeleteChangeDraft(gomock.Any(), int64(11)).Return(nil)
		f.tx.EXPECT().InsertTransaction(gomock.Any(), gomock.Any()).Return(nil)
		f.tx.EXPECT().Commit().Return(nil)

		_, err := f.svc.PayChangeDraft(context.Background(), 11, customer, strptr("secret"))
		require.NoError(t, err)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		f := newFixture(t)
		f.passwords.EXPECT().CheckPassword(gomock.Any(), customer, "nope").Return(false, nil)

		_, err := f.svc.PayChangeDraft(context.Background(), 11, customer, strptr("nope"))
		assert.Equal(t, fault.CodeInvalidPassword, fault.CodeOf(err))
	})

	t.Run("MissingPassword", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.PayChangeDraft(context.Background(), 11, customer, nil)
		assert.Equal(t, fault.CodeCredentialsMissing, fault.CodeOf(err))
	})

	t.Run("GuestWithPassword", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.PayChangeDraft(context.Background(), 11, ledger.GuestSignature(uuid.New()), strptr("secret"))
		assert.Equal(t, fault.CodeCredentialsSet, fault.CodeOf(err))
	})

	t.Run("AlreadySettled", func(t *testing.T) {
		f := newFixture(t)
		f.passwords.EXPECT().CheckPassword(gomock.Any(), customer, "secret").Return(true, nil)
		f.expectBegin()
		f.tx.EXPECT().
			ChangeDraftForUpdate(gomock.Any(), int64(11)).
			Return(nil, fault.New(fault.CodeChangeTransactionNotFound, "gone"))

		_, err := f.svc.PayChangeDraft(context.Background(), 11, customer, strptr("secret"))
		assert.Equal(t, fault.CodeChangeTransactionNotFound, fault.CodeOf(err))
	})
}

func TestService_DeleteChangeDraft(t *testing.T) {
	clerk := ledger.CitizenSignature(uuid.New())

	t.Run("ByClerk", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.tx.EXPECT().
			ChangeDraftForUpdate(gomock.Any(), int64(11)).
			Return(&ledger.ChangeDraft{ID: 11, Clerk: clerk}, nil)
		f.tx.EXPECT().DeleteChangeDraft(gomock.Any(), int64(11)).Return(nil)
		f.tx.EXPECT().Commit().Return(nil)

		require.NoError(t, f.svc.DeleteChangeDraft(context.Background(), clerk, 11))
	})

	t.Run("WrongPrincipal", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.tx.EXPECT().
			ChangeDraftForUpdate(gomock.Any(), int64(11)).
			Return(&ledger.ChangeDraft{ID: 11, Clerk: clerk}, nil)

		err := f.svc.DeleteChangeDraft(context.Background(), ledger.CitizenSignature(uuid.New()), 11)
		assert.Equal(t, fault.CodePermissionDenied, fault.CodeOf(err))
	})

	t.Run("AlreadyResolved", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.tx.EXPECT().
			ChangeDraftForUpdate(gomock.Any(), int64(11)).
			Return(nil, fault.New(fault.CodeChangeTransactionNotFound, "gone"))

		err := f.svc.DeleteChangeDraft(context.Background(), clerk, 11)
		assert.Equal(t, fault.CodeChangeTransactionNotFound, fault.CodeOf(err))
	})
}

func TestService_Sell(t *testing.T) {
	companyID := uuid.New()
	company := ledger.CompanySignature(companyID)
	productID := uuid.New()
	ref := ledger.ProductRef{ProductID: productID, Revision: 1}

	catalog := func(price string, deleted bool, owner uuid.UUID) map[ledger.ProductRef]*ledger.ProductRevision {
		return map[ledger.ProductRef]*ledger.ProductRevision{
			ref: {ProductRef: ref, CompanyID: owner, Name: "Waffle", Price: dec(price), Deleted: deleted},
		}
	}

	t.Run("FrozenPriceWithDiscount", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.tx.EXPECT().ProductRevisions(gomock.Any(), []ledger.ProductRef{ref}).Return(catalog("3", false, companyID), nil)
		f.tx.EXPECT().
			InsertPurchaseDraft(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *ledger.PurchaseDraft) error {
				d.ID = 21
				d.CreatedAt = time.Now()
				return nil
			})
		f.tx.EXPECT().Commit().Return(nil)

		d, err := f.svc.Sell(context.Background(), company, []ledger.OrderItem{{ProductRef: ref, Amount: 2}}, decptr("1"))
		require.NoError(t, err)
		assert.True(t, d.GrossPrice.Equal(dec("5")), "gross %s", d.GrossPrice)
		assert.True(t, d.NetPrice.Equal(dec("5")))
		assert.True(t, d.Tax.IsZero())
		require.Len(t, d.Items, 1)
		assert.Equal(t, 2, d.Items[0].Amount)
	})

	t.Run("RemovedProduct", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.tx.EXPECT().ProductRevisions(gomock.Any(), gomock.Any()).Return(catalog("3", true, companyID), nil)

		_, err := f.svc.Sell(context.Background(), company, []ledger.OrderItem{{ProductRef: ref, Amount: 1}}, nil)
		assert.Equal(t, fault.CodeProductNotFound, fault.CodeOf(err))
	})

	t.Run("ForeignProduct", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.tx.EXPECT().ProductRevisions(gomock.Any(), gomock.Any()).Return(catalog("3", false, uuid.New()), nil)

		_, err := f.svc.Sell(context.Background(), company, []ledger.OrderItem{{ProductRef: ref, Amount: 1}}, nil)
		assert.Equal(t, fault.CodePermissionDenied, fault.CodeOf(err))
	})

	t.Run("DiscountExceedsTotal", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.tx.EXPECT().ProductRevisions(gomock.Any(), gomock.Any()).Return(catalog("3", false, companyID), nil)

		_, err := f.svc.Sell(context.Background(), company, []ledger.OrderItem{{ProductRef: ref, Amount: 1}}, decptr("4"))
		assert.Equal(t, fault.CodeBadUserInput, fault.CodeOf(err))
	})

	t.Run("EmptyOrder", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Sell(context.Background(), company, nil, nil)
		assert.Equal(t, fault.CodeBadUserInput, fault.CodeOf(err))
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Sell(context.Background(), company, []ledger.OrderItem{{ProductRef: ref, Amount: 0}}, nil)
		assert.Equal(t, fault.CodeBadUserInput, fault.CodeOf(err))
	})
}

func TestService_PayPurchaseDraft(t *testing.T) {
	companyID := uuid.New()
	customer := ledger.GuestSignature(uuid.New())

	draft := func() *ledger.PurchaseDraft {
		return &ledger.PurchaseDraft{
			ID:         21,
			CompanyID:  companyID,
			GrossPrice: dec("5"),
			NetPrice:   dec("5"),
			Tax:        decimal.Zero,
			Items:      []ledger.PurchaseItem{{ProductID: uuid.New(), ProductRevision: 1, Amount: 2}},
		}
	}

	t.Run("GuestSettles", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.tx.EXPECT().PurchaseDraftForUpdate(gomock.Any(), int64(21)).Return(draft(), nil)
		f.tx.EXPECT().Debit(gomock.Any(), customer, dec("5")).Return(nil)
		f.tx.EXPECT().Credit(gomock.Any(), ledger.CompanySignature(companyID), dec("5")).Return(nil)
		f.tx.EXPECT().DeletePurchaseDraft(gomock.Any(), int64(21)).Return(nil)
		f.tx.EXPECT().
			InsertTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tx *ledger.Transaction) error {
				assert.Equal(t, int64(21), tx.ID)
				tx.CreatedAt = time.Now()
				return nil
			})
		f.tx.EXPECT().Commit().Return(nil)

		tx, err := f.svc.PayPurchaseDraft(context.Background(), 21, customer, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(21), tx.ID)
		require.NotNil(t, tx.Purchase)
		assert.Equal(t, customer, tx.Purchase.Customer)
		assert.Len(t, tx.Purchase.Items, 1)
	})

	t.Run("TaxGoesToStateBank", func(t *testing.T) {
		f := newFixture(t)
		d := draft()
		d.GrossPrice, d.NetPrice, d.Tax = dec("5"), dec("4.50"), dec("0.50")

		f.expectBegin()
		f.tx.EXPECT().PurchaseDraftForUpdate(gomock.Any(), int64(21)).Return(d, nil)
		f.tx.EXPECT().Debit(gomock.Any(), customer, dec("5")).Return(nil)
		f.tx.EXPECT().Credit(gomock.Any(), ledger.CompanySignature(companyID), dec("4.50")).Return(nil)
		f.tx.EXPECT().Credit(gomock.Any(), f.params.StateBank, dec("0.50")).Return(nil)
		f.tx.EXPECT().DeletePurchaseDraft(gomock.Any(), int64(21)).Return(nil)
		f.tx.EXPECT().InsertTransaction(gomock.Any(), gomock.Any()).Return(nil)
		f.tx.EXPECT().Commit().Return(nil)

		_, err := f.svc.PayPurchaseDraft(context.Background(), 21, customer, nil)
		require.NoError(t, err)
	})

	t.Run("CustomerCannotPay", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.tx.EXPECT().PurchaseDraftForUpdate(gomock.Any(), int64(21)).Return(draft(), nil)
		f.tx.EXPECT().
			Debit(gomock.Any(), customer, dec("5")).
			Return(fault.New(fault.CodeBalanceTooLow, "cannot cover"))

		_, err := f.svc.PayPurchaseDraft(context.Background(), 21, customer, nil)
		assert.Equal(t, fault.CodeBalanceTooLow, fault.CodeOf(err))
	})

	t.Run("SettledTwice", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.tx.EXPECT().
			PurchaseDraftForUpdate(gomock.Any(), int64(21)).
			Return(nil, fault.New(fault.CodePurchaseTransactionNotFound, "gone"))

		_, err := f.svc.PayPurchaseDraft(context.Background(), 21, customer, nil)
		assert.Equal(t, fault.CodePurchaseTransactionNotFound, fault.CodeOf(err))
	})
}

func TestService_DeletePurchaseDraft(t *testing.T) {
	companyID := uuid.New()
	company := ledger.CompanySignature(companyID)

	t.Run("BySeller", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.tx.EXPECT().
			PurchaseDraftForUpdate(gomock.Any(), int64(21)).
			Return(&ledger.PurchaseDraft{ID: 21, CompanyID: companyID}, nil)
		f.tx.EXPECT().DeletePurchaseDraft(gomock.Any(), int64(21)).Return(nil)
		f.tx.EXPECT().Commit().Return(nil)

		require.NoError(t, f.svc.DeletePurchaseDraft(context.Background(), company, 21))
	})

	t.Run("WrongCompany", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.tx.EXPECT().
			PurchaseDraftForUpdate(gomock.Any(), int64(21)).
			Return(&ledger.PurchaseDraft{ID: 21, CompanyID: companyID}, nil)

		err := f.svc.DeletePurchaseDraft(context.Background(), ledger.CompanySignature(uuid.New()), 21)
		assert.Equal(t, fault.CodePermissionDenied, fault.CodeOf(err))
	})

	t.Run("AlreadyPaid", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.tx.EXPECT().
			PurchaseDraftForUpdate(gomock.Any(), int64(21)).
			Return(nil, fault.New(fault.CodePurchaseTransactionNotFound, "gone"))
		f.tx.EXPECT().TransactionExists(gomock.Any(), int64(21)).Return(true, nil)

		err := f.svc.DeletePurchaseDraft(context.Background(), company, 21)
		assert.Equal(t, fault.CodePurchaseTransactionAlreadyPaid, fault.CodeOf(err))
	})

	t.Run("NeverExisted", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.tx.EXPECT().
			PurchaseDraftForUpdate(gomock.Any(), int64(21)).
			Return(nil, fault.New(fault.CodePurchaseTransactionNotFound, "gone"))
		f.tx.EXPECT().TransactionExists(gomock.Any(), int64(21)).Return(false, nil)

		err := f.svc.DeletePurchaseDraft(context.Background(), company, 21)
		assert.Equal(t, fault.CodePurchaseTransactionNotFound, fault.CodeOf(err))
	})
}

func TestService_WarehousePurchase(t *testing.T) {
	buyer := ledger.CompanySignature(uuid.New())
	productID := uuid.New()
	ref := ledger.ProductRef{ProductID: productID, Revision: 3}

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.tx.EXPECT().
			ProductRevisions(gomock.Any(), []ledger.ProductRef{ref}).
			Return(map[ledger.ProductRef]*ledger.ProductRevision{
				ref: {ProductRef: ref, CompanyID: f.params.Warehouse.ID, Name: "Flour", Price: dec("1.20")},
			}, nil)
		f.tx.EXPECT().Debit(gomock.Any(), buyer, dec("6.00")).Return(nil)
		f.tx.EXPECT().Credit(gomock.Any(), f.params.Warehouse, dec("6.00")).Return(nil)
		f.expectInsert(31)
		f.tx.EXPECT().Commit().Return(nil)

		tx, err := f.svc.WarehousePurchase(context.Background(), buyer, []ledger.OrderItem{{ProductRef: ref, Amount: 5}})
		require.NoError(t, err)
		require.NotNil(t, tx.Purchase)
		assert.Equal(t, buyer, tx.Purchase.Customer)
		assert.Equal(t, f.params.Warehouse.ID, tx.Purchase.CompanyID)
		assert.True(t, tx.Purchase.GrossPrice.Equal(dec("6.00")))
	})

	t.Run("NotACompany", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.WarehousePurchase(context.Background(), ledger.CitizenSignature(uuid.New()), []ledger.OrderItem{{ProductRef: ref, Amount: 1}})
		assert.Equal(t, fault.CodePermissionDenied, fault.CodeOf(err))
	})
}

func TestUserSignature_EncodeDecode(t *testing.T) {
	sig := ledger.CitizenSignature(uuid.New())

	decoded, err := ledger.DecodeUserSignature(sig.Encode())
	require.NoError(t, err)
	assert.Equal(t, sig, decoded)

	_, err = ledger.DecodeUserSignature("nonsense")
	assert.Error(t, err)

	_, err = ledger.DecodeUserSignature("WIZARD:" + uuid.NewString())
	assert.Error(t, err)
}
