package inventory

import "github.com/SscSPs/coin_vault_app/internal/core/domain"

// Container is the physical storage an AccountInventory operates on: a fixed
// number of slots, each holding at most one token kind.
//
// Implementations are not expected to be safe for concurrent use; callers
// serialize access per account.
type Container interface {
	// Contents returns the current slots in order.
	Contents() []domain.Slot

	// AddUnits places up to count tokens of kind and returns how many could not be placed.
	AddUnits(kind domain.TokenKind, count int) (leftover int)

	// RemoveUnits takes up to count tokens of kind and returns how many could not be found.
	RemoveUnits(kind domain.TokenKind, count int) (unavailable int)
}
