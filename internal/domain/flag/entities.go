package flag

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("NOT_FOUND: feature flag not found")

type FeatureFlag struct {
	Name        string    `gorm:"primaryKey;size:64" json:"name"`
	Enabled     bool      `gorm:"default:false" json:"enabled"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	UpdatedBy   string    `gorm:"size:32" json:"updated_by,omitempty"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (FeatureFlag) TableName() string { return "feature_flags" }

type Repository interface {
	List(ctx context.Context) ([]FeatureFlag, error)
	Get(ctx context.Context, name string) (*FeatureFlag, error)
	Upsert(ctx context.Context, f *FeatureFlag) error
}
