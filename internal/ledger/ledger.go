package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PrincipalType distinguishes the three kinds of account holders.
type PrincipalType string

const (
	TypeCitizen PrincipalType = "CITIZEN"
	TypeCompany PrincipalType = "COMPANY"
	TypeGuest   PrincipalType = "GUEST"
)

// UserSignature identifies any principal across tables. It is embedded in
// journal rows instead of a foreign key so history stays resolvable no matter
// which principal category a row refers to.
type UserSignature struct {
	Type PrincipalType
	ID   uuid.UUID
}

func CitizenSignature(id uuid.UUID) UserSignature { return UserSignature{Type: TypeCitizen, ID: id} }
func CompanySignature(id uuid.UUID) UserSignature { return UserSignature{Type: TypeCompany, ID: id} }
func GuestSignature(id uuid.UUID) UserSignature   { return UserSignature{Type: TypeGuest, ID: id} }

// Encode renders the signature into its storage form, e.g. "CITIZEN:<uuid>".
func (s UserSignature) Encode() string {
	return fmt.Sprintf("%s:%s", s.Type, s.ID)
}

func (s UserSignature) String() string { return s.Encode() }

func (s UserSignature) IsZero() bool { return s.Type == "" && s.ID == uuid.Nil }

// DecodeUserSignature parses the storage form produced by Encode.
func DecodeUserSignature(raw string) (UserSignature, error) {
	typ, id, ok := strings.Cut(raw, ":")
	if !ok {
		return UserSignature{}, fmt.Errorf("malformed user signature %q", raw)
	}

	switch PrincipalType(typ) {
	case TypeCitizen, TypeCompany, TypeGuest:
	default:
		return UserSignature{}, fmt.Errorf("unknown principal type %q", typ)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return UserSignature{}, fmt.Errorf("parsing user signature id: %w", err)
	}

	return UserSignature{Type: PrincipalType(typ), ID: parsed}, nil
}

// Kind tags the journal's closed set of transaction variants.
type Kind string

const (
	KindTransfer Kind = "TRANSFER"
	KindChange   Kind = "CHANGE"
	KindPurchase Kind = "PURCHASE"
	KindCustoms  Kind = "CUSTOMS"
	KindSalary   Kind = "SALARY"
)

// Transaction is one settled journal entry. Exactly the variant named by Kind
// is populated; rows are immutable once written.
type Transaction struct {
	ID        int64
	Kind      Kind
	CreatedAt time.Time

	Transfer *Transfer
	Change   *Change
	Purchase *Purchase
	Customs  *Customs
	Salary   *Salary
}

type Transfer struct {
	Sender   UserSignature
	Receiver UserSignature
	Value    decimal.Decimal
	Purpose  *string
}

type Change struct {
	User         UserSignature
	Clerk        UserSignature
	FromCurrency string
	FromValue    decimal.Decimal
	ToCurrency   string
	ToValue      decimal.Decimal
}

type Purchase struct {
	Customer   UserSignature
	CompanyID  uuid.UUID
	GrossPrice decimal.Decimal
	NetPrice   decimal.Decimal
	Tax        decimal.Decimal
	Discount   *decimal.Decimal
	Items      []PurchaseItem
}

type Customs struct {
	User    UserSignature
	Customs decimal.Decimal
}

type Salary struct {
	EmploymentID uuid.UUID
	GrossValue   decimal.Decimal
	NetValue     decimal.Decimal
	Tax          decimal.Decimal
	WorktimeID   *uuid.UUID
	IsBonus      bool
}

// PurchaseItem pins a specific product revision, so receipts stay byte-stable
// even after the product is edited or removed.
type PurchaseItem struct {
	ProductID       uuid.UUID
	ProductRevision int
	Amount          int
}

// ChangeDraft is a currency exchange awaiting the customer's confirmation.
// The user signature is unknown until settlement; the conversion is frozen
// at creation.
type ChangeDraft struct {
	ID           int64
	CreatedAt    time.Time
	Clerk        UserSignature
	FromCurrency string
	FromValue    decimal.Decimal
	ToCurrency   string
	ToValue      decimal.Decimal
}

// PurchaseDraft is a sale awaiting the paying customer. Prices are frozen at
// creation from the pinned product revisions.
type PurchaseDraft struct {
	ID         int64
	CreatedAt  time.Time
	CompanyID  uuid.UUID
	GrossPrice decimal.Decimal
	NetPrice   decimal.Decimal
	Tax        decimal.Decimal
	Discount   *decimal.Decimal
	Items      []PurchaseItem
}

// ProductRef addresses one immutable product revision.
type ProductRef struct {
	ProductID uuid.UUID
	Revision  int
}

// ProductRevision is the catalog data pinned by a purchase line item.
type ProductRevision struct {
	ProductRef
	CompanyID uuid.UUID
	Name      string
	Price     decimal.Decimal
	Deleted   bool
}

// OrderItem is a requested purchase line before validation against the catalog.
type OrderItem struct {
	ProductRef
	Amount int
}
