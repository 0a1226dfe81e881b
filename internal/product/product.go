package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is one immutable catalog revision. Edits never touch an existing
// row; they append the next revision under the same id, so purchase line
// items pinning (id, revision) stay resolvable forever.
type Product struct {
	ID        uuid.UUID
	Revision  int
	CompanyID uuid.UUID
	Name      string
	Price     decimal.Decimal
	Deleted   bool
	CreatedAt time.Time
}
