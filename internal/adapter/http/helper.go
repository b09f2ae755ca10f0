package http

import (
	"strings"

	"sellsi-admin-backend/internal/domain/admin"
	"sellsi-admin-backend/internal/domain/financing"
	"sellsi-admin-backend/internal/domain/uow"
)

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func newRepos(fin financing.Repository, audits admin.AuditRepository) uow.Repos {
	return uow.Repos{Financings: fin, Audits: audits}
}
