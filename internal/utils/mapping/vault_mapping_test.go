package mapping

import (
	"database/sql"
	"testing"

	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	"github.com/SscSPs/coin_vault_app/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestToDomainSlots_LaysOutByIndex(t *testing.T) {
	rows := []models.VaultSlot{
		{AccountID: "acc", SlotIndex: 2, TokenKind: sql.NullString{String: "emerald", Valid: true}, Count: 7},
		{AccountID: "acc", SlotIndex: 0, TokenKind: sql.NullString{}, Count: 0},
		{AccountID: "acc", SlotIndex: 9, TokenKind: sql.NullString{String: "emerald", Valid: true}, Count: 1},
	}

	slots := ToDomainSlots(rows, 3)

	assert.Len(t, slots, 3)
	assert.True(t, slots[0].IsEmpty())
	assert.True(t, slots[1].IsEmpty())
	assert.Equal(t, domain.Slot{Kind: "emerald", Count: 7}, slots[2])
}

func TestToModelVaultSlots_EmptySlotsHaveNullKind(t *testing.T) {
	rows := ToModelVaultSlots("acc", []domain.Slot{{Kind: "pearl", Count: 3}, {}})

	assert.Len(t, rows, 2)
	assert.Equal(t, models.VaultSlot{AccountID: "acc", SlotIndex: 0, TokenKind: sql.NullString{String: "pearl", Valid: true}, Count: 3}, rows[0])
	assert.False(t, rows[1].TokenKind.Valid)
	assert.Equal(t, 1, rows[1].SlotIndex)
}
