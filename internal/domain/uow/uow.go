package uow

import (
	"context"

	"sellsi-admin-backend/internal/domain/admin"
	"sellsi-admin-backend/internal/domain/financing"
	"sellsi-admin-backend/internal/domain/payment"
	"sellsi-admin-backend/internal/domain/transfer"
	"sellsi-admin-backend/internal/domain/user"
)

type Repos struct {
	Financings financing.Repository
	Payments   payment.Repository
	Transfers  transfer.Repository
	Users      user.Repository
	Accounts   admin.AccountRepository
	Audits     admin.AuditRepository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the financing row first, then pass it in
	WithinFinancingTx(ctx context.Context, requestID string, fn func(r Repos, fr *financing.Request) error) error
}
