package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	paymentDomain "sellsi-admin-backend/internal/domain/payment"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, rel *paymentDomain.Release) error {
	return r.db.WithContext(ctx).Create(rel).Error
}

func (r *PaymentRepository) Save(ctx context.Context, rel *paymentDomain.Release) error {
	return r.db.WithContext(ctx).Save(rel).Error
}

func (r *PaymentRepository) GetByReleaseID(ctx context.Context, releaseID string) (*paymentDomain.Release, error) {
	var out paymentDomain.Release
	res := r.db.WithContext(ctx).Where("release_id = ?", releaseID).First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) GetByReleaseIDForUpdate(ctx context.Context, releaseID string) (*paymentDomain.Release, error) {
	var out paymentDomain.Release
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("release_id = ?", releaseID).
		First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) List(ctx context.Context) ([]paymentDomain.Release, error) {
	var out []paymentDomain.Release
	res := r.db.WithContext(ctx).Order("purchased_at DESC, id DESC").Find(&out)
	return out, res.Error
}
