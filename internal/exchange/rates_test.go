package exchange_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schuelerstaat/statebank/internal/exchange"
)

func writeTable(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rates.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	path := writeTable(t, `{"base":"MOR","rates":{"EUR":"2.50","USD":"2.20"}}`)

	table, err := exchange.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "MOR", table.Base)
	assert.True(t, table.Known("EUR"))
	assert.True(t, table.Known("MOR"))
	assert.False(t, table.Known("GBP"))
}

func TestLoad_MissingBase(t *testing.T) {
	path := writeTable(t, `{"rates":{"EUR":"2.50"}}`)

	_, err := exchange.Load(path)
	assert.Error(t, err)
}

func TestLoad_NonPositiveRate(t *testing.T) {
	for name, content := range map[string]string{
		"Zero":     `{"base":"MOR","rates":{"EUR":"0"}}`,
		"Negative": `{"base":"MOR","rates":{"EUR":"-1.5"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			path := writeTable(t, content)

			_, err := exchange.Load(path)
			assert.ErrorContains(t, err, "must be positive")
		})
	}
}

func TestConvert(t *testing.T) {
	table := &exchange.Table{
		Base: "MOR",
		Rates: map[string]decimal.Decimal{
			"EUR": decimal.RequireFromString("2.50"),
			"USD": decimal.RequireFromString("2.00"),
		},
	}

	tests := []struct {
		name  string
		from  string
		to    string
		value string
		want  string
	}{
		{name: "ForeignToBase", from: "EUR", to: "MOR", value: "10", want: "25"},
		{name: "BaseToForeign", from: "MOR", to: "EUR", value: "25", want: "10"},
		{name: "ForeignToForeign", from: "EUR", to: "USD", value: "4", want: "5"},
		{name: "Identity", from: "MOR", to: "MOR", value: "7.31", want: "7.31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Convert(tt.from, tt.to, decimal.RequireFromString(tt.value))
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestConvert_UnknownCurrency(t *testing.T) {
	table := &exchange.Table{Base: "MOR", Rates: map[string]decimal.Decimal{}}

	_, err := table.Convert("XXX", "MOR", decimal.NewFromInt(1))
	assert.Error(t, err)

	_, err = table.Convert("MOR", "XXX", decimal.NewFromInt(1))
	assert.Error(t, err)
}
