package domain_test

import (
	"testing"

	"github.com/SscSPs/coin_vault_app/internal/apperrors"
	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCurrency() *domain.Currency {
	cur := domain.NewCurrency("Emerald", "", 0)
	cur.AddDenomination(domain.Denomination{Kind: "emerald", Value: 1, MaxPerSlot: 64})
	cur.AddDenomination(domain.Denomination{Kind: "emerald_block", Value: 9, MaxPerSlot: 64})
	cur.AddDenomination(domain.Denomination{Kind: "ender_pearl", Value: 25, MaxPerSlot: 16})
	return cur
}

func TestNewCurrency_DefaultPlural(t *testing.T) {
	cur := domain.NewCurrency("Emerald", "", 2)
	assert.Equal(t, "Emeralds", cur.NamePlural)
	assert.Equal(t, 2, cur.Digits)

	cur = domain.NewCurrency("Penny", "Pence", -1)
	assert.Equal(t, "Pence", cur.NamePlural)
	assert.Equal(t, 0, cur.Digits, "negative digits should be clamped to 0")
}

func TestCurrency_DenominationsSortedDescending(t *testing.T) {
	orders := [][]domain.Denomination{
		{{Kind: "a", Value: 1, MaxPerSlot: 64}, {Kind: "b", Value: 5, MaxPerSlot: 64}, {Kind: "c", Value: 25, MaxPerSlot: 64}},
		{{Kind: "c", Value: 25, MaxPerSlot: 64}, {Kind: "a", Value: 1, MaxPerSlot: 64}, {Kind: "b", Value: 5, MaxPerSlot: 64}},
		{{Kind: "b", Value: 5, MaxPerSlot: 64}, {Kind: "c", Value: 25, MaxPerSlot: 64}, {Kind: "a", Value: 1, MaxPerSlot: 64}},
	}

	for _, order := range orders {
		cur := domain.NewCurrency("Coin", "", 0)
		for _, d := range order {
			cur.AddDenomination(d)
		}
		got := cur.Denominations()
		require.Len(t, got, 3)
		assert.Equal(t, []int64{25, 5, 1}, []int64{got[0].Value, got[1].Value, got[2].Value})
	}
}

func TestCurrency_DenominationsReturnsIndependentCopies(t *testing.T) {
	cur := newTestCurrency()

	first := cur.Denominations()
	second := cur.Denominations()

	// reverse the first copy in place and clobber an element
	for i, j := 0, len(first)-1; i < j; i, j = i+1, j-1 {
		first[i], first[j] = first[j], first[i]
	}
	first[0].Value = 999

	assert.Equal(t, int64(25), second[0].Value, "second copy must be unaffected")
	again := cur.Denominations()
	assert.Equal(t, []int64{25, 9, 1}, []int64{again[0].Value, again[1].Value, again[2].Value})
}

func TestCurrency_AddDenominationOverwritesByKind(t *testing.T) {
	cur := newTestCurrency()
	cur.AddDenomination(domain.Denomination{Kind: "emerald", Value: 100, MaxPerSlot: 32})

	assert.Equal(t, 3, cur.Len())
	d, ok := cur.LookupByKind("emerald")
	require.True(t, ok)
	assert.Equal(t, int64(100), d.Value)
	assert.Equal(t, 32, d.MaxPerSlot)

	got := cur.Denominations()
	assert.Equal(t, domain.TokenKind("emerald"), got[0].Kind, "re-sorted after overwrite")
}

func TestCurrency_Value(t *testing.T) {
	cur := newTestCurrency()

	tests := []struct {
		name string
		slot domain.Slot
		want int64
	}{
		{name: "empty slot", slot: domain.Slot{}, want: 0},
		{name: "foreign token", slot: domain.Slot{Kind: "dirt", Count: 64}, want: 0},
		{name: "single emerald", slot: domain.Slot{Kind: "emerald", Count: 1}, want: 1},
		{name: "stack of blocks", slot: domain.Slot{Kind: "emerald_block", Count: 10}, want: 90},
		{name: "pearls", slot: domain.Slot{Kind: "ender_pearl", Count: 16}, want: 400},
		{name: "kind with zero count", slot: domain.Slot{Kind: "emerald", Count: 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cur.Value(tt.slot))
		})
	}
}

func TestCurrency_Capacity(t *testing.T) {
	cur := newTestCurrency()

	tests := []struct {
		name string
		slot domain.Slot
		want int64
	}{
		{name: "empty slot takes highest denomination", slot: domain.Slot{}, want: 25 * 16},
		{name: "partial emerald stack", slot: domain.Slot{Kind: "emerald", Count: 60}, want: 4},
		{name: "full block stack", slot: domain.Slot{Kind: "emerald_block", Count: 64}, want: 0},
		{name: "partial pearl stack", slot: domain.Slot{Kind: "ender_pearl", Count: 6}, want: 250},
		{name: "foreign token", slot: domain.Slot{Kind: "dirt", Count: 1}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cur.Capacity(tt.slot))
		})
	}
}

func TestCurrency_CapacityWithoutDenominations(t *testing.T) {
	cur := domain.NewCurrency("Nothing", "", 0)
	assert.Equal(t, int64(0), cur.Capacity(domain.Slot{}))
	_, ok := cur.Highest()
	assert.False(t, ok)
}

func TestCurrency_StackSize(t *testing.T) {
	cur := newTestCurrency()

	n, ok := cur.StackSize("ender_pearl")
	assert.True(t, ok)
	assert.Equal(t, 16, n)

	_, ok = cur.StackSize("dirt")
	assert.False(t, ok)
}

func TestDenomination_Matches(t *testing.T) {
	d := domain.Denomination{Kind: "emerald", Value: 1, MaxPerSlot: 64}
	probe := domain.Denomination{Kind: "emerald"}

	assert.True(t, d.Matches(domain.Slot{Kind: "emerald", Count: 3}))
	assert.True(t, probe.Matches(domain.Slot{Kind: "emerald", Count: 3}), "value is irrelevant to matching")
	assert.False(t, d.Matches(domain.Slot{Kind: "emerald_block", Count: 3}))
	assert.False(t, d.Matches(domain.Slot{}))
}

func TestNewDenomination_Validation(t *testing.T) {
	tests := []struct {
		name    string
		kind    domain.TokenKind
		value   int64
		max     int
		wantErr bool
	}{
		{name: "valid", kind: "emerald", value: 1, max: 64},
		{name: "missing kind", kind: "", value: 1, max: 64, wantErr: true},
		{name: "zero value", kind: "emerald", value: 0, max: 64, wantErr: true},
		{name: "negative stack", kind: "emerald", value: 1, max: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := domain.NewDenomination(tt.kind, tt.value, tt.max)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(64), d.SlotValue())
		})
	}
}
