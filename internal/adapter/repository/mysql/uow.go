package mysql

import (
	"context"

	"gorm.io/gorm"

	"sellsi-admin-backend/internal/domain/financing"
	"sellsi-admin-backend/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Financings: &FinancingRepository{db: tx},
		Payments:   &PaymentRepository{db: tx},
		Transfers:  &TransferRepository{db: tx},
		Users:      &UserRepository{db: tx},
		Accounts:   &AccountRepository{db: tx},
		Audits:     &AuditRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinFinancingTx(ctx context.Context, requestID string, fn func(r uow.Repos, fr *financing.Request) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the financing row up-front to prevent races
		fr, err := r.Financings.GetByRequestIDForUpdate(ctx, requestID)
		if err != nil {
			return financing.ErrNotFound
		}
		return fn(r, fr)
	})
}
