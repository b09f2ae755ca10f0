package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	flagDomain "sellsi-admin-backend/internal/domain/flag"
)

type FlagRepository struct{ db *gorm.DB }

func NewFlagRepository(db *gorm.DB) *FlagRepository { return &FlagRepository{db: db} }

func (r *FlagRepository) List(ctx context.Context) ([]flagDomain.FeatureFlag, error) {
	var out []flagDomain.FeatureFlag
	res := r.db.WithContext(ctx).Order("name ASC").Find(&out)
	return out, res.Error
}

func (r *FlagRepository) Get(ctx context.Context, name string) (*flagDomain.FeatureFlag, error) {
	var out flagDomain.FeatureFlag
	res := r.db.WithContext(ctx).Where("name = ?", name).First(&out)
	return &out, res.Error
}

func (r *FlagRepository) Upsert(ctx context.Context, f *flagDomain.FeatureFlag) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"enabled", "description", "updated_by", "updated_at"}),
		}).
		Create(f).Error
}
