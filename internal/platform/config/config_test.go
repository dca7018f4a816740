package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/coin_vault_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCurrencyFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "currency.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadCurrencyConfig_Valid(t *testing.T) {
	path := writeCurrencyFile(t, `
currency:
  name: Emerald
  name_plural: Emeralds
  digits: 2
  denominations:
    - kind: emerald
      value: 100
      max_per_slot: 64
    - kind: emerald_block
      value: 900
      max_per_slot: 64
`)

	cc, err := LoadCurrencyConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Emerald", cc.Name)
	assert.Equal(t, "Emeralds", cc.NamePlural)
	assert.Equal(t, 2, cc.Digits)
	require.Len(t, cc.Denominations, 2)
	assert.Equal(t, DenominationConfig{Kind: "emerald_block", Value: 900, MaxPerSlot: 64}, cc.Denominations[1])
}

func TestLoadCurrencyConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "no denominations",
			body:    "currency:\n  name: Emerald\n",
			wantErr: apperrors.ErrNoDenominations,
		},
		{
			name: "zero value",
			body: `
currency:
  name: Emerald
  denominations:
    - { kind: emerald, value: 0, max_per_slot: 64 }
`,
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "missing name",
			body: `
currency:
  denominations:
    - { kind: emerald, value: 1, max_per_slot: 64 }
`,
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "duplicate kind",
			body: `
currency:
  name: Emerald
  denominations:
    - { kind: emerald, value: 1, max_per_slot: 64 }
    - { kind: emerald, value: 9, max_per_slot: 64 }
`,
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCurrencyConfig(writeCurrencyFile(t, tt.body))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadCurrencyConfig_MissingFile(t *testing.T) {
	_, err := LoadCurrencyConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_STACK_SIZE", "16")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 16, cfg.DefaultStackSize)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "3s", cfg.ShutdownTimeout.String())
}
