package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Employment links a citizen to a company. Rows are never deleted, only
// flagged cancelled, because Salary journal entries reference them forever.
type Employment struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	CitizenID   uuid.UUID
	Salary      decimal.Decimal // hourly wage
	MinWorktime int             // minutes per day
	Employer    bool
	Cancelled   bool
	CreatedAt   time.Time
}

// Worktime is one recorded shift. A shift backs at most one salary payment.
type Worktime struct {
	ID           uuid.UUID
	EmploymentID uuid.UUID
	Start        time.Time
	End          time.Time
}

// Hours returns the shift length in hours.
func (w Worktime) Hours() decimal.Decimal {
	return decimal.NewFromFloat(w.End.Sub(w.Start).Hours())
}
