package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/schuelerstaat/statebank/internal/fault"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=ledger

// Repository is the persistence boundary of the ledger engine.
type Repository interface {
	// Begin opens the single atomic unit of work every operation runs in.
	Begin(ctx context.Context) (Tx, error)

	Transaction(ctx context.Context, id int64) (*Transaction, error)
	TransactionsByUser(ctx context.Context, user UserSignature) ([]*Transaction, error)
	ChangeDrafts(ctx context.Context) ([]*ChangeDraft, error)
	PurchaseDrafts(ctx context.Context, companyID uuid.UUID) ([]*PurchaseDraft, error)
}

// Tx is one transaction-scoped unit of work. Either every mutation in it
// commits or none does. Debit and Credit are the only balance mutations in
// the system and both are conditional row updates, never read-modify-write.
type Tx interface {
	// Debit subtracts value from the owner's account, conditioned on the
	// balance covering it. Fails with BALANCE_TOO_LOW or USER_NOT_FOUND.
	Debit(ctx context.Context, owner UserSignature, value decimal.Decimal) error
	// Credit adds value to the owner's account. Fails with USER_NOT_FOUND.
	Credit(ctx context.Context, owner UserSignature, value decimal.Decimal) error
	// AddRedemption raises the owner's redemption-eligible balance. The
	// amount is informational and not part of the spendable balance.
	AddRedemption(ctx context.Context, owner UserSignature, value decimal.Decimal) error

	InsertTransaction(ctx context.Context, t *Transaction) error
	TransactionExists(ctx context.Context, id int64) (bool, error)

	InsertChangeDraft(ctx context.Context, d *ChangeDraft) error
	ChangeDraftForUpdate(ctx context.Context, id int64) (*ChangeDraft, error)
	DeleteChangeDraft(ctx context.Context, id int64) error

	InsertPurchaseDraft(ctx context.Context, d *PurchaseDraft) error
	PurchaseDraftForUpdate(ctx context.Context, id int64) (*PurchaseDraft, error)
	DeletePurchaseDraft(ctx context.Context, id int64) error

	// ProductRevisions resolves pinned catalog rows for purchase validation.
	ProductRevisions(ctx context.Context, refs []ProductRef) (map[ProductRef]*ProductRevision, error)

	Commit() error
	Rollback() error
}

// PasswordChecker verifies a counterparty's stored credential before a
// password-mode settlement commits.
type PasswordChecker interface {
	CheckPassword(ctx context.Context, user UserSignature, password string) (bool, error)
}

// Converter freezes currency conversions at draft creation time.
type Converter interface {
	BaseCurrency() string
	Known(code string) bool
	Convert(from, to string, value decimal.Decimal) (decimal.Decimal, error)
}

// Params are the static identifiers the engine needs: the state bank's own
// account, the border-control company, the state warehouse and the sales tax
// applied to purchases.
type Params struct {
	StateBank     UserSignature
	BorderControl UserSignature
	Warehouse     UserSignature
	SalesTaxRate  decimal.Decimal
}

// Service is the ledger engine: the only component that mutates account
// balances or appends to the transaction journal. Role checks have already
// run by the time a method here is called.
type Service struct {
	repo      Repository
	passwords PasswordChecker
	rates     Converter
	params    Params
}

func NewService(repo Repository, passwords PasswordChecker, rates Converter, params Params) *Service {
	return &Service{repo: repo, passwords: passwords, rates: rates, params: params}
}

// TransferMoney moves value between two accounts and journals a Transfer.
func (s *Service) TransferMoney(ctx context.Context, sender, receiver UserSignature, value decimal.Decimal, purpose *string) (*Transaction, error) {
	if !value.IsPositive() {
		return nil, fault.New(fault.CodeBadUserInput, "transfer value must be positive")
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transfer: %w", err)
	}
	defer tx.Rollback()

	if err := tx.Debit(ctx, sender, value); err != nil {
		return nil, err
	}

	if err := tx.Credit(ctx, receiver, value); err != nil {
		return nil, err
	}

	t := &Transaction{
		Kind: KindTransfer,
		Transfer: &Transfer{
			Sender:   sender,
			Receiver: receiver,
			Value:    value,
			Purpose:  purpose,
		},
	}
	if err := tx.InsertTransaction(ctx, t); err != nil {
		return nil, fmt.Errorf("journaling transfer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transfer: %w", err)
	}

	return t, nil
}

// ChargeCustoms debits a border fee from the user and credits the
// border-control company. The debit is conditional like every other one, so
// concurrent charges cannot race the balance below zero.
func (s *Service) ChargeCustoms(ctx context.Context, user UserSignature, customs decimal.Decimal) (*Transaction, error) {
	if !customs.IsPositive() {
		return nil, fault.New(fault.CodeBadUserInput, "customs value must be positive")
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning customs charge: %w", err)
	}
	defer tx.Rollback()

	if err := tx.Debit(ctx, user, customs); err != nil {
		return nil, err
	}

	if err := tx.Credit(ctx, s.params.BorderControl, customs); err != nil {
		return nil, err
	}

	t := &Transaction{
		Kind:    KindCustoms,
		Customs: &Customs{User: user, Customs: customs},
	}
	if err := tx.InsertTransaction(ctx, t); err != nil {
		return nil, fmt.Errorf("journaling customs charge: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing customs charge: %w", err)
	}

	return t, nil
}

// CreateChangeDraft freezes a currency conversion and stages it until the
// customer confirms. Exactly one side must be the state currency.
func (s *Service) CreateChangeDraft(ctx context.Context, clerk UserSignature, fromCurrency, toCurrency string, fromValue decimal.Decimal) (*ChangeDraft, error) {
	if !fromValue.IsPositive() {
		return nil, fault.New(fault.CodeBadUserInput, "change value must be positive")
	}

	if !s.rates.Known(fromCurrency) || !s.rates.Known(toCurrency) {
		return nil, fault.New(fault.CodeBadUserInput, "unknown currency")
	}

	base := s.rates.BaseCurrency()
	if (fromCurrency == base) == (toCurrency == base) {
		return nil, fault.New(fault.CodeBadUserInput, "exactly one side of a change must be %s", base)
	}

	toValue, err := s.rates.Convert(fromCurrency, toCurrency, fromValue)
	if err != nil {
		return nil, fault.New(fault.CodeBadUserInput, "converting: %v", err)
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning change draft: %w", err)
	}
	defer tx.Rollback()

	d := &ChangeDraft{
		Clerk:        clerk,
		FromCurrency: fromCurrency,
		FromValue:    fromValue,
		ToCurrency:   toCurrency,
		ToValue:      toValue,
	}
	if err := tx.InsertChangeDraft(ctx, d); err != nil {
		return nil, fmt.Errorf("staging change draft: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing change draft: %w", err)
	}

	return d, nil
}

// PayChangeDraft settles a change draft: the counterparty is identified, the
// frozen conversion is applied to the accounts, the draft row disappears and
// a Change journal entry takes over its id.
func (s *Service) PayChangeDraft(ctx context.Context, id int64, user UserSignature, password *string) (*Transaction, error) {
	if err := s.verifyCounterparty(ctx, user, password); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning change settlement: %w", err)
	}
	defer tx.Rollback()

	d, err := tx.ChangeDraftForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	base := s.rates.BaseCurrency()

	switch {
	case d.FromCurrency == base:
		// Customer buys foreign cash with state money.
		if err := tx.Debit(ctx, user, d.FromValue); err != nil {
			return nil, err
		}

		if err := tx.Credit(ctx, s.params.StateBank, d.FromValue); err != nil {
			return nil, err
		}
	default:
		// Customer hands in foreign cash and receives state money. The
		// credited amount stays eligible for real-money redemption.
		if err := tx.Debit(ctx, s.params.StateBank, d.ToValue); err != nil {
			return nil, err
		}

		if err := tx.Credit(ctx, user, d.ToValue); err != nil {
			return nil, err
		}

		if err := tx.AddRedemption(ctx, user, d.ToValue); err != nil {
			return nil, err
		}
	}

	if err := tx.DeleteChangeDraft(ctx, d.ID); err != nil {
		return nil, fmt.Errorf("resolving change draft: %w", err)
	}

	t := &Transaction{
		ID:   d.ID,
		Kind: KindChange,
		Change: &Change{
			User:         user,
			Clerk:        d.Clerk,
			FromCurrency: d.FromCurrency,
			FromValue:    d.FromValue,
			ToCurrency:   d.ToCurrency,
			ToValue:      d.ToValue,
		},
	}
	if err := tx.InsertTransaction(ctx, t); err != nil {
		return nil, fmt.Errorf("journaling change: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing change settlement: %w", err)
	}

	return t, nil
}

// DeleteChangeDraft withdraws an unsettled change draft. Only the bank side
// may do this; a settled draft reads as not found because settlement removes
// the row.
func (s *Service) DeleteChangeDraft(ctx context.Context, caller UserSignature, id int64) error {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning change draft delete: %w", err)
	}
	defer tx.Rollback()

	d, err := tx.ChangeDraftForUpdate(ctx, id)
	if err != nil {
		return err
	}

	if caller != d.Clerk && caller != s.params.StateBank {
		return fault.New(fault.CodePermissionDenied, "only the issuing bank may delete a change draft")
	}

	if err := tx.DeleteChangeDraft(ctx, d.ID); err != nil {
		return fmt.Errorf("deleting change draft: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing change draft delete: %w", err)
	}

	return nil
}

// Sell stages a point-of-sale purchase: prices are resolved from the pinned
// revisions, the discount is applied and the draft waits for a customer.
func (s *Service) Sell(ctx context.Context, company UserSignature, items []OrderItem, discount *decimal.Decimal) (*PurchaseDraft, error) {
	if company.Type != TypeCompany {
		return nil, fault.New(fault.CodePermissionDenied, "only companies sell")
	}

	if err := validateOrder(items, discount); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning sale: %w", err)
	}
	defer tx.Rollback()

	subtotal, err := s.priceOrder(ctx, tx, company.ID, items)
	if err != nil {
		return nil, err
	}

	gross := subtotal
	if discount != nil {
		gross = gross.Sub(*discount)
	}

	if gross.IsNegative() {
		return nil, fault.New(fault.CodeBadUserInput, "discount exceeds order total")
	}

	tax := gross.Mul(s.params.SalesTaxRate).Round(2)

	d := &PurchaseDraft{
		CompanyID:  company.ID,
		GrossPrice: gross,
		NetPrice:   gross.Sub(tax),
		Tax:        tax,
		Discount:   discount,
		Items:      orderToItems(items),
	}
	if err := tx.InsertPurchaseDraft(ctx, d); err != nil {
		return nil, fmt.Errorf("staging purchase draft: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing sale: %w", err)
	}

	return d, nil
}

// WarehousePurchase is the direct-commit purchase of state warehouse stock by
// a company. No draft: the buyer is known, so the purchase settles at once.
func (s *Service) WarehousePurchase(ctx context.Context, company UserSignature, items []OrderItem) (*Transaction, error) {
	if company.Type != TypeCompany {
		return nil, fault.New(fault.CodePermissionDenied, "only companies buy from the warehouse")
	}

	if err := validateOrder(items, nil); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning warehouse purchase: %w", err)
	}
	defer tx.Rollback()

	gross, err := s.priceOrder(ctx, tx, s.params.Warehouse.ID, items)
	if err != nil {
		return nil, err
	}

	if err := tx.Debit(ctx, company, gross); err != nil {
		return nil, err
	}

	if err := tx.Credit(ctx, s.params.Warehouse, gross); err != nil {
		return nil, err
	}

	t := &Transaction{
		Kind: KindPurchase,
		Purchase: &Purchase{
			Customer:   company,
			CompanyID:  s.params.Warehouse.ID,
			GrossPrice: gross,
			NetPrice:   gross,
			Tax:        decimal.Zero,
			Items:      orderToItems(items),
		},
	}
	if err := tx.InsertTransaction(ctx, t); err != nil {
		return nil, fmt.Errorf("journaling warehouse purchase: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing warehouse purchase: %w", err)
	}

	return t, nil
}

// PayPurchaseDraft settles a staged sale: the customer pays the frozen gross
// price, the seller receives the net, the tax share goes to the state bank
// and the draft's id moves into the journal.
func (s *Service) PayPurchaseDraft(ctx context.Context, id int64, customer UserSignature, password *string) (*Transaction, error) {
	if err := s.verifyCounterparty(ctx, customer, password); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning purchase settlement: %w", err)
	}
	defer tx.Rollback()

	d, err := tx.PurchaseDraftForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Debit(ctx, customer, d.GrossPrice); err != nil {
		return nil, err
	}

	if err := tx.Credit(ctx, CompanySignature(d.CompanyID), d.NetPrice); err != nil {
		return nil, err
	}

	if d.Tax.IsPositive() {
		if err := tx.Credit(ctx, s.params.StateBank, d.Tax); err != nil {
			return nil, err
		}
	}

	if err := tx.DeletePurchaseDraft(ctx, d.ID); err != nil {
		return nil, fmt.Errorf("resolving purchase draft: %w", err)
	}

	t := &Transaction{
		ID:   d.ID,
		Kind: KindPurchase,
		Purchase: &Purchase{
			Customer:   customer,
			CompanyID:  d.CompanyID,
			GrossPrice: d.GrossPrice,
			NetPrice:   d.NetPrice,
			Tax:        d.Tax,
			Discount:   d.Discount,
			Items:      d.Items,
		},
	}
	if err := tx.InsertTransaction(ctx, t); err != nil {
		return nil, fmt.Errorf("journaling purchase: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing purchase settlement: %w", err)
	}

	return t, nil
}

// DeletePurchaseDraft withdraws an unsettled sale. Only the selling company
// may do this. A draft whose id already sits in the journal was paid in the
// meantime and reports that instead of not-found.
func (s *Service) DeletePurchaseDraft(ctx context.Context, caller UserSignature, id int64) error {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning purchase draft delete: %w", err)
	}
	defer tx.Rollback()

	d, err := tx.PurchaseDraftForUpdate(ctx, id)
	if err != nil {
		if fault.CodeOf(err) == fault.CodePurchaseTransactionNotFound {
			paid, existsErr := tx.TransactionExists(ctx, id)
			if existsErr != nil {
				return fmt.Errorf("checking journal for draft %d: %w", id, existsErr)
			}

			if paid {
				return fault.New(fault.CodePurchaseTransactionAlreadyPaid, "purchase draft %d was already paid", id)
			}
		}

		return err
	}

	if caller.Type != TypeCompany || caller.ID != d.CompanyID {
		return fault.New(fault.CodePermissionDenied, "only the selling company may delete a purchase draft")
	}

	if err := tx.DeletePurchaseDraft(ctx, d.ID); err != nil {
		return fmt.Errorf("deleting purchase draft: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing purchase draft delete: %w", err)
	}

	return nil
}

// Transaction returns one journal entry.
func (s *Service) Transaction(ctx context.Context, id int64) (*Transaction, error) {
	return s.repo.Transaction(ctx, id)
}

// Statement returns every journal entry involving the given principal.
func (s *Service) Statement(ctx context.Context, user UserSignature) ([]*Transaction, error) {
	return s.repo.TransactionsByUser(ctx, user)
}

// OpenChangeDrafts lists unsettled change drafts for the bank counter.
func (s *Service) OpenChangeDrafts(ctx context.Context) ([]*ChangeDraft, error) {
	return s.repo.ChangeDrafts(ctx)
}

// OpenPurchaseDrafts lists a company's unsettled sales.
func (s *Service) OpenPurchaseDrafts(ctx context.Context, companyID uuid.UUID) ([]*PurchaseDraft, error) {
	return s.repo.PurchaseDrafts(ctx, companyID)
}

// verifyCounterparty enforces the settlement credential mode: guests carry no
// credentials and must not send a password; everyone else must, and it has to
// match the stored hash.
func (s *Service) verifyCounterparty(ctx context.Context, user UserSignature, password *string) error {
	if user.Type == TypeGuest {
		if password != nil {
			return fault.New(fault.CodeCredentialsSet, "guests have no password")
		}

		return nil
	}

	if password == nil {
		return fault.New(fault.CodeCredentialsMissing, "settlement requires the counterparty's password")
	}

	ok, err := s.passwords.CheckPassword(ctx, user, *password)
	if err != nil {
		return fmt.Errorf("checking password: %w", err)
	}

	if !ok {
		return fault.New(fault.CodeInvalidPassword, "wrong password")
	}

	return nil
}

func validateOrder(items []OrderItem, discount *decimal.Decimal) error {
	if len(items) == 0 {
		return fault.New(fault.CodeBadUserInput, "order needs at least one item")
	}

	for _, it := range items {
		if it.Amount <= 0 {
			return fault.New(fault.CodeBadUserInput, "item amount must be positive")
		}
	}

	if discount != nil && !discount.IsPositive() {
		return fault.New(fault.CodeBadUserInput, "discount must be positive when given")
	}

	return nil
}

// priceOrder resolves every pinned revision, checks ownership and sums the
// order at the pinned prices, not the products' current ones.
func (s *Service) priceOrder(ctx context.Context, tx Tx, ownerID uuid.UUID, items []OrderItem) (decimal.Decimal, error) {
	refs := make([]ProductRef, len(items))
	for i, it := range items {
		refs[i] = it.ProductRef
	}

	revisions, err := tx.ProductRevisions(ctx, refs)
	if err != nil {
		return decimal.Zero, fmt.Errorf("resolving product revisions: %w", err)
	}

	subtotal := decimal.Zero

	for _, it := range items {
		rev, ok := revisions[it.ProductRef]
		if !ok || rev.Deleted {
			return decimal.Zero, fault.New(fault.CodeProductNotFound, "product %s@%d not sellable", it.ProductID, it.Revision)
		}

		if rev.CompanyID != ownerID {
			return decimal.Zero, fault.New(fault.CodePermissionDenied, "product %s@%d belongs to another company", it.ProductID, it.Revision)
		}

		subtotal = subtotal.Add(rev.Price.Mul(decimal.NewFromInt(int64(it.Amount))))
	}

	return subtotal, nil
}

func orderToItems(items []OrderItem) []PurchaseItem {
	out := make([]PurchaseItem, len(items))
	for i, it := range items {
		out[i] = PurchaseItem{
			ProductID:       it.ProductID,
			ProductRevision: it.Revision,
			Amount:          it.Amount,
		}
	}

	return out
}
