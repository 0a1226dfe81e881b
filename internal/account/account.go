package account

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/schuelerstaat/statebank/internal/ledger"
)

// Account is a principal's money holding. Balance never goes below zero;
// every movement runs through the journal, never through this package.
// RedemptionBalance tracks state money handed out for foreign currency, the
// amount the bank owes back when the currency is redeemed.
type Account struct {
	Owner             ledger.UserSignature
	Balance           decimal.Decimal
	RedemptionBalance decimal.Decimal
	CreatedAt         time.Time
}
