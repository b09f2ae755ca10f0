package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	financingDomain "sellsi-admin-backend/internal/domain/financing"
)

type FinancingRepository struct{ db *gorm.DB }

func NewFinancingRepository(db *gorm.DB) *FinancingRepository { return &FinancingRepository{db: db} }

func (r *FinancingRepository) Create(ctx context.Context, fr *financingDomain.Request) error {
	return r.db.WithContext(ctx).Create(fr).Error
}

func (r *FinancingRepository) Save(ctx context.Context, fr *financingDomain.Request) error {
	return r.db.WithContext(ctx).Save(fr).Error
}

func (r *FinancingRepository) GetByRequestID(ctx context.Context, requestID string) (*financingDomain.Request, error) {
	var out financingDomain.Request
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *FinancingRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*financingDomain.Request, error) {
	var out financingDomain.Request
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_id = ?", requestID).
		First(&out)
	return &out, res.Error
}

func (r *FinancingRepository) List(ctx context.Context) ([]financingDomain.Request, error) {
	var out []financingDomain.Request
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}
