package inventory

import (
	"fmt"
	"slices"

	"github.com/SscSPs/coin_vault_app/internal/apperrors"
	"github.com/SscSPs/coin_vault_app/internal/core/domain"
)

// AccountInventory converts between an atomic-unit balance and the tokens
// held in a Container. It holds no state of its own; every call reads the
// container afresh.
type AccountInventory struct {
	currency  *domain.Currency
	container Container
}

// NewAccountInventory wraps container using cur for valuation.
func NewAccountInventory(cur *domain.Currency, container Container) *AccountInventory {
	return &AccountInventory{currency: cur, container: container}
}

// Balance returns the total value of all slots in atomic units.
func (a *AccountInventory) Balance() int64 {
	var total int64
	for _, slot := range a.container.Contents() {
		total += a.currency.Value(slot)
	}
	return total
}

// Capacity returns the value the container could still absorb, assuming every
// empty slot is filled with the highest denomination.
func (a *AccountInventory) Capacity() int64 {
	var total int64
	for _, slot := range a.container.Contents() {
		total += a.currency.Capacity(slot)
	}
	return total
}

// Deposit adds tokens worth up to amount, largest denomination first, and
// returns the value actually added. When the container runs out of room the
// result is smaller than amount.
func (a *AccountInventory) Deposit(amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: cannot deposit %d", apperrors.ErrInvalidAmount, amount)
	}
	remaining := amount

	for _, denom := range a.currency.Denominations() {
		if denom.Value > remaining {
			continue
		}
		units := remaining / denom.Value

		// add batches of this denomination until the container pushes back
		for units > 0 {
			batch := batchSize(units, denom.MaxPerSlot)
			leftover := a.container.AddUnits(denom.Kind, batch)

			added := int64(batch - leftover)
			units -= added
			remaining -= added * denom.Value

			if leftover > 0 {
				break
			}
		}
	}

	return amount - remaining, nil
}

// Withdraw removes tokens worth up to amount, smallest denomination first, and
// returns the value reported as withdrawn.
//
// When a denomination is worth more than what is still owed, a single token
// of it is taken and remaining becomes the overshoot (value - remaining)
// rather than the deficit. Chained change-making can therefore produce a
// return value that does not match the balance drop; callers that care must
// compare balances directly. The reported value is kept within [0, amount].
func (a *AccountInventory) Withdraw(amount int64) (int64, error) {
	if amount < 0 {
		return 0, fmt.Errorf("%w: cannot withdraw %d", apperrors.ErrInvalidAmount, amount)
	}
	if amount == 0 {
		return 0, nil
	}
	remaining := amount

	denoms := a.currency.Denominations()
	slices.Reverse(denoms)

	for _, denom := range denoms {
		if remaining == 0 {
			break
		}
		if denom.Value <= remaining {
			units := remaining / denom.Value

			// take batches until this token kind runs out
			for units > 0 {
				batch := batchSize(units, denom.MaxPerSlot)
				unavailable := a.container.RemoveUnits(denom.Kind, batch)

				removed := int64(batch - unavailable)
				units -= removed
				remaining -= removed * denom.Value

				if unavailable > 0 {
					break
				}
			}
			continue
		}

		// make change: take one bigger token, remaining turns into the overshoot
		if a.container.RemoveUnits(denom.Kind, 1) == 0 {
			remaining = denom.Value - remaining
		}
	}

	return clamp(amount-remaining, amount), nil
}

// clamp keeps a reported amount within [0, limit].
func clamp(v, limit int64) int64 {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}

func batchSize(units int64, maxPerSlot int) int {
	if units > int64(maxPerSlot) {
		return maxPerSlot
	}
	return int(units)
}
