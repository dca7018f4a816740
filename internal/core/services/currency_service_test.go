package services_test

import (
	"testing"

	"github.com/SscSPs/coin_vault_app/internal/apperrors"
	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	"github.com/SscSPs/coin_vault_app/internal/core/services"
	"github.com/SscSPs/coin_vault_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCurrency(t *testing.T) {
	cur, err := services.BuildCurrency(barsAndCoins())
	require.NoError(t, err)

	assert.Equal(t, "Crown", cur.Name)
	assert.Equal(t, 2, cur.Digits)
	denoms := cur.Denominations()
	require.Len(t, denoms, 2)
	assert.Equal(t, domain.TokenKind("bar"), denoms[0].Kind)
	assert.Equal(t, domain.TokenKind("coin"), denoms[1].Kind)
}

func TestBuildCurrency_Errors(t *testing.T) {
	_, err := services.BuildCurrency(nil)
	assert.ErrorIs(t, err, apperrors.ErrNoDenominations)

	_, err = services.BuildCurrency(&config.CurrencyConfig{Name: "Empty"})
	assert.ErrorIs(t, err, apperrors.ErrNoDenominations)

	bad := barsAndCoins()
	bad.Denominations[0].MaxPerSlot = 0
	_, err = services.BuildCurrency(bad)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCurrencyService_Reload(t *testing.T) {
	svc, err := services.NewCurrencyService(barsAndCoins(), nil)
	require.NoError(t, err)
	before := svc.Current()

	next := barsAndCoins()
	next.Name = "Ducat"
	next.Denominations = append(next.Denominations, config.DenominationConfig{Kind: "gem", Value: 1000, MaxPerSlot: 5})
	require.NoError(t, svc.Reload(next))

	after := svc.Current()
	assert.NotSame(t, before, after)
	assert.Equal(t, "Ducat", after.Name)
	assert.Equal(t, domain.TokenKind("gem"), svc.ListDenominations()[0].Kind)
	// the old definition is untouched for readers still holding it
	assert.Equal(t, 2, before.Len())
}

func TestCurrencyService_ReloadRejectedKeepsPrevious(t *testing.T) {
	svc, err := services.NewCurrencyService(barsAndCoins(), nil)
	require.NoError(t, err)
	before := svc.Current()

	err = svc.Reload(&config.CurrencyConfig{Name: "Broken"})
	assert.ErrorIs(t, err, apperrors.ErrNoDenominations)
	assert.Same(t, before, svc.Current())
}
