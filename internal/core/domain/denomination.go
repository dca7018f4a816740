package domain

import (
	"fmt"

	"github.com/SscSPs/coin_vault_app/internal/apperrors"
)

// TokenKind identifies a physical token type (an item material, a coin sprite, ...).
// The core never interprets it beyond equality.
type TokenKind string

// Denomination binds an atomic-unit value to a token kind and the number of
// those tokens a single slot may hold.
type Denomination struct {
	Value      int64     `json:"value"`
	Kind       TokenKind `json:"kind"`
	MaxPerSlot int       `json:"maxPerSlot"`
}

// NewDenomination creates a validated Denomination.
func NewDenomination(kind TokenKind, value int64, maxPerSlot int) (Denomination, error) {
	d := Denomination{Value: value, Kind: kind, MaxPerSlot: maxPerSlot}
	if err := d.Validate(); err != nil {
		return Denomination{}, err
	}
	return d, nil
}

// Validate checks that the denomination can take part in valuation.
func (d Denomination) Validate() error {
	if d.Kind == "" {
		return fmt.Errorf("%w: denomination kind is required", apperrors.ErrValidation)
	}
	if d.Value <= 0 {
		return fmt.Errorf("%w: denomination %s must have a positive value, got %d", apperrors.ErrValidation, d.Kind, d.Value)
	}
	if d.MaxPerSlot <= 0 {
		return fmt.Errorf("%w: denomination %s must have a positive stack size, got %d", apperrors.ErrValidation, d.Kind, d.MaxPerSlot)
	}
	return nil
}

// Matches reports whether the slot holds tokens of this denomination's kind.
// Value plays no part in matching.
func (d Denomination) Matches(slot Slot) bool {
	return slot.Kind == d.Kind
}

// SlotValue is the monetary value of a full slot of this denomination.
func (d Denomination) SlotValue() int64 {
	return d.Value * int64(d.MaxPerSlot)
}
