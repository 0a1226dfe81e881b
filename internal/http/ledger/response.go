package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/schuelerstaat/statebank/internal/ledger"
)

type transactionResponse struct {
	ID        int64       `json:"id"`
	Kind      ledger.Kind `json:"kind"`
	CreatedAt time.Time   `json:"created_at"`

	Transfer *transferResponse `json:"transfer,omitempty"`
	Change   *changeResponse   `json:"change,omitempty"`
	Purchase *purchaseResponse `json:"purchase,omitempty"`
	Customs  *customsResponse  `json:"customs,omitempty"`
	Salary   *salaryResponse   `json:"salary,omitempty"`
}

type transferResponse struct {
	Sender   string          `json:"sender"`
	Receiver string          `json:"receiver"`
	Value    decimal.Decimal `json:"value"`
	Purpose  *string         `json:"purpose,omitempty"`
}

type changeResponse struct {
	User         string          `json:"user"`
	Clerk        string          `json:"clerk"`
	FromCurrency string          `json:"from_currency"`
	FromValue    decimal.Decimal `json:"from_value"`
	ToCurrency   string          `json:"to_currency"`
	ToValue      decimal.Decimal `json:"to_value"`
}

type purchaseResponse struct {
	Customer   string                 `json:"customer"`
	CompanyID  uuid.UUID              `json:"company_id"`
	GrossPrice decimal.Decimal        `json:"gross_price"`
	NetPrice   decimal.Decimal        `json:"net_price"`
	Tax        decimal.Decimal        `json:"tax"`
	Discount   *decimal.Decimal       `json:"discount,omitempty"`
	Items      []purchaseItemResponse `json:"items"`
}

type purchaseItemResponse struct {
	ProductID       uuid.UUID `json:"product_id"`
	ProductRevision int       `json:"product_revision"`
	Amount          int       `json:"amount"`
}

type customsResponse struct {
	User    string          `json:"user"`
	Customs decimal.Decimal `json:"customs"`
}

type salaryResponse struct {
	EmploymentID uuid.UUID       `json:"employment_id"`
	GrossValue   decimal.Decimal `json:"gross_value"`
	NetValue     decimal.Decimal `json:"net_value"`
	Tax          decimal.Decimal `json:"tax"`
	WorktimeID   *uuid.UUID      `json:"worktime_id,omitempty"`
	IsBonus      bool            `json:"is_bonus"`
}

func toTransactionResponse(t *ledger.Transaction) transactionResponse {
	resp := transactionResponse{ID: t.ID, Kind: t.Kind, CreatedAt: t.CreatedAt}

	switch t.Kind {
	case ledger.KindTransfer:
		resp.Transfer = &transferResponse{
			Sender:   t.Transfer.Sender.Encode(),
			Receiver: t.Transfer.Receiver.Encode(),
			Value:    t.Transfer.Value,
			Purpose:  t.Transfer.Purpose,
		}
	case ledger.KindChange:
		resp.Change = &changeResponse{
			User:         t.Change.User.Encode(),
			Clerk:        t.Change.Clerk.Encode(),
			FromCurrency: t.Change.FromCurrency,
			FromValue:    t.Change.FromValue,
			ToCurrency:   t.Change.ToCurrency,
			ToValue:      t.Change.ToValue,
		}
	case ledger.KindPurchase:
		resp.Purchase = &purchaseResponse{
			Customer:   t.Purchase.Customer.Encode(),
			CompanyID:  t.Purchase.CompanyID,
			GrossPrice: t.Purchase.GrossPrice,
			NetPrice:   t.Purchase.NetPrice,
			Tax:        t.Purchase.Tax,
			Discount:   t.Purchase.Discount,
			Items:      toItemResponses(t.Purchase.Items),
		}
	case ledger.KindCustoms:
		resp.Customs = &customsResponse{
			User:    t.Customs.User.Encode(),
			Customs: t.Customs.Customs,
		}
	case ledger.KindSalary:
		resp.Salary = &salaryResponse{
			EmploymentID: t.Salary.EmploymentID,
			GrossValue:   t.Salary.GrossValue,
			NetValue:     t.Salary.NetValue,
			Tax:          t.Salary.Tax,
			WorktimeID:   t.Salary.WorktimeID,
			IsBonus:      t.Salary.IsBonus,
		}
	}

	return resp
}

func toTransactionResponses(ts []*ledger.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(ts))
	for i, t := range ts {
		resp[i] = toTransactionResponse(t)
	}

	return resp
}

func toItemResponses(items []ledger.PurchaseItem) []purchaseItemResponse {
	resp := make([]purchaseItemResponse, len(items))
	for i, it := range items {
		resp[i] = purchaseItemResponse{
			ProductID:       it.ProductID,
			ProductRevision: it.ProductRevision,
			Amount:          it.Amount,
		}
	}

	return resp
}

type changeDraftResponse struct {
	ID           int64           `json:"id"`
	CreatedAt    time.Time       `json:"created_at"`
	Clerk        string          `json:"clerk"`
	FromCurrency string          `json:"from_currency"`
	FromValue    decimal.Decimal `json:"from_value"`
	ToCurrency   string          `json:"to_currency"`
	ToValue      decimal.Decimal `json:"to_value"`
}

func toChangeDraftResponse(d *ledger.ChangeDraft) changeDraftResponse {
	return changeDraftResponse{
		ID:           d.ID,
		CreatedAt:    d.CreatedAt,
		Clerk:        d.Clerk.Encode(),
		FromCurrency: d.FromCurrency,
		FromValue:    d.FromValue,
		ToCurrency:   d.ToCurrency,
		ToValue:      d.ToValue,
	}
}

type purchaseDraftResponse struct {
	ID         int64                  `json:"id"`
	CreatedAt  time.Time              `json:"created_at"`
	CompanyID  uuid.UUID              `json:"company_id"`
	GrossPrice decimal.Decimal        `json:"gross_price"`
	NetPrice   decimal.Decimal        `json:"net_price"`
	Tax        decimal.Decimal        `json:"tax"`
	Discount   *decimal.Decimal       `json:"discount,omitempty"`
	Items      []purchaseItemResponse `json:"items"`
}

func toPurchaseDraftResponse(d *ledger.PurchaseDraft) purchaseDraftResponse {
	return purchaseDraftResponse{
		ID:         d.ID,
		CreatedAt:  d.CreatedAt,
		CompanyID:  d.CompanyID,
		GrossPrice: d.GrossPrice,
		NetPrice:   d.NetPrice,
		Tax:        d.Tax,
		Discount:   d.Discount,
		Items:      toItemResponses(d.Items),
	}
}
