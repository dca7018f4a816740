package slots

import (
	"testing"

	"github.com/SscSPs/coin_vault_app/internal/apperrors"
	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCurrency() *domain.Currency {
	cur := domain.NewCurrency("Emerald", "", 0)
	cur.AddDenomination(domain.Denomination{Kind: "emerald", Value: 1, MaxPerSlot: 64})
	cur.AddDenomination(domain.Denomination{Kind: "pearl", Value: 50, MaxPerSlot: 16})
	return cur
}

func TestNewSlotContainer_Validation(t *testing.T) {
	cur := testCurrency()

	_, err := NewSlotContainer(0, cur, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = NewSlotContainer(domain.MaxSlotCount+1, cur, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = NewSlotContainer(1, cur, 0, domain.Slot{}, domain.Slot{})
	assert.ErrorIs(t, err, apperrors.ErrValidation, "more seeds than slots")

	_, err = NewSlotContainer(1, cur, 0, domain.Slot{Kind: "pearl", Count: 17})
	assert.ErrorIs(t, err, apperrors.ErrValidation, "seed above stack limit")

	c, err := NewSlotContainer(3, cur, 0, domain.Slot{Kind: "pearl", Count: 16})
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, DefaultStackSize, c.defaultStack)
}

func TestAddUnits_TopsUpBeforeOpeningSlots(t *testing.T) {
	c, err := NewSlotContainer(3, testCurrency(), 0,
		domain.Slot{},
		domain.Slot{Kind: "emerald", Count: 60},
	)
	require.NoError(t, err)

	leftover := c.AddUnits("emerald", 10)
	assert.Equal(t, 0, leftover)

	contents := c.Contents()
	assert.Equal(t, domain.Slot{Kind: "emerald", Count: 6}, contents[0])
	assert.Equal(t, domain.Slot{Kind: "emerald", Count: 64}, contents[1])
	assert.True(t, contents[2].IsEmpty())
}

func TestAddUnits_RespectsStackLimitAndReportsLeftover(t *testing.T) {
	c, err := NewSlotContainer(2, testCurrency(), 0)
	require.NoError(t, err)

	leftover := c.AddUnits("pearl", 40)
	assert.Equal(t, 8, leftover)
	assert.Equal(t, 32, c.CountOf("pearl"))
	for _, s := range c.Contents() {
		assert.LessOrEqual(t, s.Count, 16)
	}
}

func TestAddUnits_UnknownKindUsesDefaultStack(t *testing.T) {
	c, err := NewSlotContainer(1, testCurrency(), 8)
	require.NoError(t, err)

	assert.Equal(t, 2, c.AddUnits("dirt", 10))
	assert.Equal(t, 8, c.CountOf("dirt"))
}

func TestAddUnits_NonPositiveCount(t *testing.T) {
	c, err := NewSlotContainer(1, testCurrency(), 0)
	require.NoError(t, err)

	assert.Equal(t, 0, c.AddUnits("emerald", 0))
	assert.Equal(t, 0, c.AddUnits("emerald", -3))
	assert.Equal(t, 5, c.AddUnits("", 5))
	assert.True(t, c.Contents()[0].IsEmpty())
}

func TestRemoveUnits_DrainsFromLastSlot(t *testing.T) {
	c, err := NewSlotContainer(3, testCurrency(), 0,
		domain.Slot{Kind: "emerald", Count: 10},
		domain.Slot{Kind: "pearl", Count: 1},
		domain.Slot{Kind: "emerald", Count: 5},
	)
	require.NoError(t, err)

	unavailable := c.RemoveUnits("emerald", 7)
	assert.Equal(t, 0, unavailable)

	contents := c.Contents()
	assert.Equal(t, domain.Slot{Kind: "emerald", Count: 8}, contents[0])
	assert.Equal(t, domain.Slot{Kind: "pearl", Count: 1}, contents[1])
	assert.Equal(t, domain.EmptySlot(), contents[2], "emptied slot is cleared")
}

func TestRemoveUnits_ReportsShortfall(t *testing.T) {
	c, err := NewSlotContainer(2, testCurrency(), 0, domain.Slot{Kind: "pearl", Count: 3})
	require.NoError(t, err)

	assert.Equal(t, 2, c.RemoveUnits("pearl", 5))
	assert.Equal(t, 0, c.CountOf("pearl"))
	assert.Equal(t, 4, c.RemoveUnits("emerald", 4))
}

func TestContents_ReturnsCopy(t *testing.T) {
	c, err := NewSlotContainer(1, testCurrency(), 0, domain.Slot{Kind: "emerald", Count: 1})
	require.NoError(t, err)

	contents := c.Contents()
	contents[0].Count = 50

	assert.Equal(t, 1, c.CountOf("emerald"))
}

func TestSingleKindCapacity(t *testing.T) {
	c, err := NewSlotContainer(4, testCurrency(), 0)
	require.NoError(t, err)

	leftover := c.AddUnits("pearl", 1000)
	assert.Equal(t, 1000-4*16, leftover)
	assert.Equal(t, 4*16, c.CountOf("pearl"))
}
