package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schuelerstaat/statebank/internal/config"
)

func setRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STATE_BANK_SIGNATURE", "GUEST:11111111-1111-1111-1111-111111111111")
	t.Setenv("BORDER_CONTROL_SIGNATURE", "GUEST:22222222-2222-2222-2222-222222222222")
	t.Setenv("WAREHOUSE_SIGNATURE", "COMPANY:33333333-3333-3333-3333-333333333333")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "StateBank", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, 5, cfg.DB.MaxIdleConns)
	assert.Equal(t, 5*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
}

func TestConnectionString(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "bank")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "ledger")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://bank:pw@db.internal:5433/ledger?sslmode=disable", cfg.ConnectionString())
}
