package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	transferDomain "sellsi-admin-backend/internal/domain/transfer"
)

type TransferRepository struct{ db *gorm.DB }

func NewTransferRepository(db *gorm.DB) *TransferRepository { return &TransferRepository{db: db} }

func (r *TransferRepository) Create(ctx context.Context, t *transferDomain.BankTransfer) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransferRepository) Save(ctx context.Context, t *transferDomain.BankTransfer) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TransferRepository) GetByTransferID(ctx context.Context, transferID string) (*transferDomain.BankTransfer, error) {
	var out transferDomain.BankTransfer
	res := r.db.WithContext(ctx).Where("transfer_id = ?", transferID).First(&out)
	return &out, res.Error
}

func (r *TransferRepository) GetByTransferIDForUpdate(ctx context.Context, transferID string) (*transferDomain.BankTransfer, error) {
	var out transferDomain.BankTransfer
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("transfer_id = ?", transferID).
		First(&out)
	return &out, res.Error
}

func (r *TransferRepository) ListByStatus(ctx context.Context, status transferDomain.Status) ([]transferDomain.BankTransfer, error) {
	var out []transferDomain.BankTransfer
	res := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
