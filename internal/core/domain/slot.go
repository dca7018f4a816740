package domain

// Slot is one physical storage cell. An empty slot has no kind and a zero count.
type Slot struct {
	Kind  TokenKind `json:"kind,omitempty"`
	Count int       `json:"count"`
}

// IsEmpty reports whether the slot holds nothing.
func (s Slot) IsEmpty() bool {
	return s.Kind == "" || s.Count <= 0
}

// EmptySlot returns the zero slot.
func EmptySlot() Slot {
	return Slot{}
}
