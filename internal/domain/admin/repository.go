package admin

import "context"

type AccountRepository interface {
	Create(ctx context.Context, a *Account) error
	GetByAdminID(ctx context.Context, adminID string) (*Account, error)
	GetByUsuario(ctx context.Context, usuario string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	Save(ctx context.Context, a *Account) error
}

type AuditRepository interface {
	Append(ctx context.Context, entry *AuditLog) error
	ListByTarget(ctx context.Context, targetTable, targetID string) ([]AuditLog, error)
}
