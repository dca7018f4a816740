package utils

import (
	"testing"

	"github.com/SscSPs/coin_vault_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAtomicUnits(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		digits  int
		want    int64
		wantErr bool
	}{
		{name: "two digits", amount: "12.34", digits: 2, want: 1234},
		{name: "whole amount with digits", amount: "5", digits: 2, want: 500},
		{name: "no digits", amount: "42", digits: 0, want: 42},
		{name: "trailing zeros allowed", amount: "1.50", digits: 1, want: 15},
		{name: "zero", amount: "0", digits: 3, want: 0},
		{name: "too precise", amount: "1.234", digits: 2, wantErr: true},
		{name: "fraction with no digits", amount: "0.5", digits: 0, wantErr: true},
		{name: "negative", amount: "-1", digits: 0, wantErr: true},
		{name: "overflow", amount: "92233720368547758080", digits: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToAtomicUnits(decimal.RequireFromString(tt.amount), tt.digits)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatAtomicUnits(t *testing.T) {
	assert.Equal(t, "12.34", FormatAtomicUnits(1234, 2))
	assert.Equal(t, "0.05", FormatAtomicUnits(5, 2))
	assert.Equal(t, "7", FormatAtomicUnits(7, 0))
	assert.True(t, decimal.RequireFromString("12.34").Equal(FromAtomicUnits(1234, 2)))
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "12", FormatWithPrecision(decimal.RequireFromString("12.3456"), 0))
}
