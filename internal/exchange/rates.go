// Package exchange holds the static currency table used to freeze change
// conversions at draft creation time.
package exchange

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// Table maps currency codes to their value in the state currency.
// Base is the state currency itself and always rates at 1.
type Table struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// Load reads a rate table from a JSON file.
func Load(path string) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rate table: %w", err)
	}

	var t Table
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("parsing rate table: %w", err)
	}

	if t.Base == "" {
		return nil, fmt.Errorf("rate table has no base currency")
	}

	// Rates divide in Convert, so every entry must be strictly positive.
	for code, rate := range t.Rates {
		if !rate.IsPositive() {
			return nil, fmt.Errorf("rate for %q must be positive, got %s", code, rate)
		}
	}

	return &t, nil
}

// BaseCurrency returns the state currency code.
func (t *Table) BaseCurrency() string { return t.Base }

// Known reports whether the table can price the given currency code.
func (t *Table) Known(code string) bool {
	if code == t.Base {
		return true
	}

	_, ok := t.Rates[code]

	return ok
}

func (t *Table) rate(code string) decimal.Decimal {
	if code == t.Base {
		return decimal.NewFromInt(1)
	}

	return t.Rates[code]
}

// Convert converts value from one currency into another, rounded to cents.
// Both codes must be known; rates are fixed for the lifetime of the table.
func (t *Table) Convert(from, to string, value decimal.Decimal) (decimal.Decimal, error) {
	if !t.Known(from) {
		return decimal.Zero, fmt.Errorf("unknown currency %q", from)
	}

	if !t.Known(to) {
		return decimal.Zero, fmt.Errorf("unknown currency %q", to)
	}

	return value.Mul(t.rate(from)).Div(t.rate(to)).Round(2), nil
}
