package adminmock

import (
	"context"

	domain "sellsi-admin-backend/internal/domain/admin"
)

var (
	_ domain.AccountRepository = (*Accounts)(nil)
	_ domain.AuditRepository   = (*Audits)(nil)
)

// Accounts is a function-backed mock for admin.AccountRepository.
type Accounts struct {
	CreateFn       func(ctx context.Context, a *domain.Account) error
	GetByAdminIDFn func(ctx context.Context, adminID string) (*domain.Account, error)
	GetByUsuarioFn func(ctx context.Context, usuario string) (*domain.Account, error)
	GetByEmailFn   func(ctx context.Context, email string) (*domain.Account, error)
	SaveFn         func(ctx context.Context, a *domain.Account) error
}

func (m *Accounts) Create(ctx context.Context, a *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Accounts) GetByAdminID(ctx context.Context, adminID string) (*domain.Account, error) {
	if m.GetByAdminIDFn != nil {
		return m.GetByAdminIDFn(ctx, adminID)
	}
	return nil, context.Canceled
}

func (m *Accounts) GetByUsuario(ctx context.Context, usuario string) (*domain.Account, error) {
	if m.GetByUsuarioFn != nil {
		return m.GetByUsuarioFn(ctx, usuario)
	}
	return nil, context.Canceled
}

func (m *Accounts) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

func (m *Accounts) Save(ctx context.Context, a *domain.Account) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

// Audits records appended entries in memory; tests assert over Entries.
type Audits struct {
	AppendFn func(ctx context.Context, entry *domain.AuditLog) error
	Entries  []domain.AuditLog
}

func (m *Audits) Append(ctx context.Context, entry *domain.AuditLog) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, entry)
	}
	m.Entries = append(m.Entries, *entry)
	return nil
}

func (m *Audits) ListByTarget(ctx context.Context, targetTable, targetID string) ([]domain.AuditLog, error) {
	var out []domain.AuditLog
	for _, e := range m.Entries {
		if e.TargetTable == targetTable && e.TargetID == targetID {
			out = append(out, e)
		}
	}
	return out, nil
}
