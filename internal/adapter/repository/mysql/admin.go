package mysql

import (
	"context"

	"gorm.io/gorm"

	adminDomain "sellsi-admin-backend/internal/domain/admin"
)

type AccountRepository struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) *AccountRepository { return &AccountRepository{db: db} }

func (r *AccountRepository) Create(ctx context.Context, a *adminDomain.Account) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AccountRepository) Save(ctx context.Context, a *adminDomain.Account) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AccountRepository) GetByAdminID(ctx context.Context, adminID string) (*adminDomain.Account, error) {
	var out adminDomain.Account
	res := r.db.WithContext(ctx).Where("admin_id = ?", adminID).First(&out)
	return &out, res.Error
}

func (r *AccountRepository) GetByUsuario(ctx context.Context, usuario string) (*adminDomain.Account, error) {
	var out adminDomain.Account
	res := r.db.WithContext(ctx).Where("usuario = ?", usuario).First(&out)
	return &out, res.Error
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*adminDomain.Account, error) {
	var out adminDomain.Account
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Append(ctx context.Context, entry *adminDomain.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *AuditRepository) ListByTarget(ctx context.Context, targetTable, targetID string) ([]adminDomain.AuditLog, error) {
	var out []adminDomain.AuditLog
	res := r.db.WithContext(ctx).
		Where("target_table = ? AND target_id = ?", targetTable, targetID).
		Order("created_at DESC").
		Find(&out)
	return out, res.Error
}
