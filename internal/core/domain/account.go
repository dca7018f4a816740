package domain

// MaxSlotCount bounds the size of a single account container.
const MaxSlotCount = 256

// Account owns exactly one slot container. The container's contents are its balance.
type Account struct {
	AccountID string `json:"accountID"` // Primary Key (UUID)
	OwnerID   string `json:"ownerID"`   // JWT subject of the owner
	Name      string `json:"name"`
	SlotCount int    `json:"slotCount"` // fixed container size
	IsActive  bool   `json:"isActive"`
	AuditFields
}
