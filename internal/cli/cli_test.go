package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/coin_vault_app/internal/apperrors"
	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	"github.com/SscSPs/coin_vault_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCurrencyYAML = `
currency:
  name: Emerald
  name_plural: Emeralds
  digits: 0
  denominations:
    - kind: emerald
      value: 1
      max_per_slot: 64
    - kind: emerald_block
      value: 9
      max_per_slot: 64
`

func writeCurrencyFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "currency.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCurrencyYAML), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSimulateCommand(t *testing.T) {
	path := writeCurrencyFile(t)

	out, err := run(t, "simulate", "--currency", path, "--slots", "3", "--deposit", "100", "--withdraw", "1")
	require.NoError(t, err)

	var sim simulation
	require.NoError(t, json.Unmarshal([]byte(out), &sim))
	assert.Equal(t, "Emerald", sim.Currency)
	assert.Equal(t, int64(100), sim.Deposited)
	assert.Equal(t, int64(1), sim.Withdrawn)
	assert.Equal(t, int64(99), sim.Balance)
	// 11 blocks went to slot 0, the lone emerald in slot 1 was withdrawn
	assert.Equal(t, []domain.Slot{{Kind: "emerald_block", Count: 11}, {}, {}}, sim.Slots)
}

func TestDenominationsCommand(t *testing.T) {
	path := writeCurrencyFile(t)

	out, err := run(t, "denominations", "--currency", path)
	require.NoError(t, err)

	var resp dto.CurrencyResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Denominations, 2)
	assert.Equal(t, "emerald_block", resp.Denominations[0].Kind)
	assert.Equal(t, int64(9), resp.Denominations[0].Value)
}

func TestSimulate_InvalidSlotCount(t *testing.T) {
	path := writeCurrencyFile(t)

	_, err := run(t, "simulate", "--currency", path, "--slots", "0")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSimulate_NegativeDeposit(t *testing.T) {
	path := writeCurrencyFile(t)

	_, err := run(t, "simulate", "--currency", path, "--deposit=-5")
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}
