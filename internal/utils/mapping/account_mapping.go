package mapping

import (
	"github.com/SscSPs/coin_vault_app/internal/core/domain"
	"github.com/SscSPs/coin_vault_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		SlotCount:   d.SlotCount,
		IsActive:    d.IsActive,
		AuditFields: models.AuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		SlotCount:   m.SlotCount,
		IsActive:    m.IsActive,
		AuditFields: domain.AuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
