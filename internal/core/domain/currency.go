package domain

import "sort"

// Currency is a registry of denominations plus the valuation rules built on top of it.
// It is populated during initialization and treated as read-only afterwards;
// reloads build a new Currency instead of mutating a live one.
type Currency struct {
	Name       string `json:"name"`
	NamePlural string `json:"namePlural"`
	// Digits is the number of fractional display digits. One display unit equals 10^Digits atomic units.
	Digits int `json:"digits"`

	byKind map[TokenKind]Denomination
	sorted []Denomination // descending by Value
}

// NewCurrency creates an empty currency. An empty plural defaults to name + "s".
func NewCurrency(name, namePlural string, digits int) *Currency {
	if namePlural == "" {
		namePlural = name + "s"
	}
	if digits < 0 {
		digits = 0
	}
	return &Currency{
		Name:       name,
		NamePlural: namePlural,
		Digits:     digits,
		byKind:     make(map[TokenKind]Denomination),
	}
}

// AddDenomination registers d, replacing any denomination with the same kind.
func (c *Currency) AddDenomination(d Denomination) {
	c.byKind[d.Kind] = d

	// infrequent insertion, rebuilding keeps the ordering invariant trivially true
	c.sorted = c.sorted[:0]
	for _, v := range c.byKind {
		c.sorted = append(c.sorted, v)
	}
	sort.Slice(c.sorted, func(i, j int) bool {
		return c.sorted[i].Value > c.sorted[j].Value
	})
}

// Denominations returns the registered denominations in descending value order.
// The returned slice is a fresh copy on every call.
func (c *Currency) Denominations() []Denomination {
	out := make([]Denomination, len(c.sorted))
	copy(out, c.sorted)
	return out
}

// Len returns the number of registered denominations.
func (c *Currency) Len() int {
	return len(c.sorted)
}

// LookupByKind returns the registered denomination for kind.
func (c *Currency) LookupByKind(kind TokenKind) (Denomination, bool) {
	d, ok := c.byKind[kind]
	return d, ok
}

// StackSize returns the per-slot maximum for a registered kind.
func (c *Currency) StackSize(kind TokenKind) (int, bool) {
	d, ok := c.byKind[kind]
	if !ok {
		return 0, false
	}
	return d.MaxPerSlot, true
}

// Highest returns the most valuable denomination.
func (c *Currency) Highest() (Denomination, bool) {
	if len(c.sorted) == 0 {
		return Denomination{}, false
	}
	return c.sorted[0], true
}

// Value returns the atomic-unit value held in slot. Empty and foreign slots are worth 0.
func (c *Currency) Value(slot Slot) int64 {
	if slot.IsEmpty() {
		return 0
	}
	d, ok := c.LookupByKind(slot.Kind)
	if !ok {
		return 0
	}
	return d.Value * int64(slot.Count)
}

// Capacity returns the value slot could still absorb.
// An empty slot is assumed to take the highest denomination; a slot holding a
// foreign token takes nothing.
func (c *Currency) Capacity(slot Slot) int64 {
	if slot.IsEmpty() {
		highest, ok := c.Highest()
		if !ok {
			return 0
		}
		return highest.SlotValue()
	}
	d, ok := c.LookupByKind(slot.Kind)
	if !ok {
		return 0
	}
	free := d.MaxPerSlot - slot.Count
	if free <= 0 {
		return 0
	}
	return d.Value * int64(free)
}
