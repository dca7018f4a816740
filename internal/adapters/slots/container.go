package slots

import (
	"fmt"

	"github.com/SscSPs/coin_vault_app/internal/apperrors"
	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	"github.com/SscSPs/coin_vault_app/internal/core/inventory"
)

// DefaultStackSize is used for token kinds the StackSizer does not know.
const DefaultStackSize = 64

// StackSizer reports how many tokens of a kind fit in one slot.
type StackSizer interface {
	StackSize(kind domain.TokenKind) (int, bool)
}

// SlotContainer is a fixed-size, in-memory inventory.Container.
// Adds top up existing stacks of the same kind before opening empty slots,
// both in slot order; removals drain from the last matching slot.
type SlotContainer struct {
	slots        []domain.Slot
	sizer        StackSizer
	defaultStack int
}

var _ inventory.Container = (*SlotContainer)(nil)

// NewSlotContainer creates a container with size slots, optionally seeded
// with existing contents. Seeds beyond size or above a kind's stack limit are rejected.
func NewSlotContainer(size int, sizer StackSizer, defaultStack int, seed ...domain.Slot) (*SlotContainer, error) {
	if size <= 0 || size > domain.MaxSlotCount {
		return nil, fmt.Errorf("%w: slot count must be between 1 and %d, got %d", apperrors.ErrValidation, domain.MaxSlotCount, size)
	}
	if len(seed) > size {
		return nil, fmt.Errorf("%w: %d seed slots exceed container size %d", apperrors.ErrValidation, len(seed), size)
	}
	if defaultStack <= 0 {
		defaultStack = DefaultStackSize
	}

	c := &SlotContainer{
		slots:        make([]domain.Slot, size),
		sizer:        sizer,
		defaultStack: defaultStack,
	}
	for i, s := range seed {
		if s.IsEmpty() {
			continue
		}
		if limit := c.stackSize(s.Kind); s.Count > limit {
			return nil, fmt.Errorf("%w: slot %d holds %d %s, limit is %d", apperrors.ErrValidation, i, s.Count, s.Kind, limit)
		}
		c.slots[i] = s
	}
	return c, nil
}

// Len returns the number of slots.
func (c *SlotContainer) Len() int {
	return len(c.slots)
}

// Contents returns a copy of the slots.
func (c *SlotContainer) Contents() []domain.Slot {
	out := make([]domain.Slot, len(c.slots))
	copy(out, c.slots)
	return out
}

// AddUnits implements inventory.Container.
func (c *SlotContainer) AddUnits(kind domain.TokenKind, count int) int {
	if count <= 0 || kind == "" {
		return max(count, 0)
	}
	limit := c.stackSize(kind)
	remaining := count

	// top up partial stacks first
	for i := range c.slots {
		if remaining == 0 {
			return 0
		}
		s := &c.slots[i]
		if s.IsEmpty() || s.Kind != kind || s.Count >= limit {
			continue
		}
		n := min(limit-s.Count, remaining)
		s.Count += n
		remaining -= n
	}

	for i := range c.slots {
		if remaining == 0 {
			return 0
		}
		s := &c.slots[i]
		if !s.IsEmpty() {
			continue
		}
		n := min(limit, remaining)
		*s = domain.Slot{Kind: kind, Count: n}
		remaining -= n
	}

	return remaining
}

// RemoveUnits implements inventory.Container.
func (c *SlotContainer) RemoveUnits(kind domain.TokenKind, count int) int {
	if count <= 0 || kind == "" {
		return max(count, 0)
	}
	remaining := count

	for i := len(c.slots) - 1; i >= 0 && remaining > 0; i-- {
		s := &c.slots[i]
		if s.IsEmpty() || s.Kind != kind {
			continue
		}
		n := min(s.Count, remaining)
		s.Count -= n
		remaining -= n
		if s.Count == 0 {
			*s = domain.EmptySlot()
		}
	}

	return remaining
}

// CountOf returns how many tokens of kind the container holds.
func (c *SlotContainer) CountOf(kind domain.TokenKind) int {
	total := 0
	for _, s := range c.slots {
		if !s.IsEmpty() && s.Kind == kind {
			total += s.Count
		}
	}
	return total
}

func (c *SlotContainer) stackSize(kind domain.TokenKind) int {
	if c.sizer != nil {
		if n, ok := c.sizer.StackSize(kind); ok && n > 0 {
			return n
		}
	}
	return c.defaultStack
}
