package featureflag

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domainAdmin "sellsi-admin-backend/internal/domain/admin"
	domain "sellsi-admin-backend/internal/domain/flag"
)

type Usecase struct {
	repo   domain.Repository
	audits domainAdmin.AuditRepository
	log    *zap.Logger
}

func NewUsecase(repo domain.Repository, audits domainAdmin.AuditRepository, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{repo: repo, audits: audits, log: log}
}

func (u *Usecase) List(ctx context.Context) ([]domain.FeatureFlag, error) {
	return u.repo.List(ctx)
}

type SetInput struct {
	Name        string
	Enabled     bool
	Description string
	AdminID     string
}

// Set upserts a flag: toggling an unknown name creates it.
func (u *Usecase) Set(ctx context.Context, in SetInput) (*domain.FeatureFlag, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("VALIDATION: flag name is required")
	}

	f, err := u.repo.Get(ctx, name)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		f = &domain.FeatureFlag{Name: name}
	default:
		return nil, err
	}

	f.Enabled = in.Enabled
	if in.Description != "" {
		f.Description = in.Description
	}
	f.UpdatedBy = in.AdminID
	if err := u.repo.Upsert(ctx, f); err != nil {
		return nil, err
	}
	if err := u.audits.Append(ctx, domainAdmin.NewAudit(in.AdminID, "flag_set", "feature_flags", name, fmt.Sprintf("enabled=%t", in.Enabled))); err != nil {
		return nil, err
	}
	u.log.Info("feature flag set",
		zap.String("flag", name),
		zap.Bool("enabled", in.Enabled),
		zap.String("admin_id", in.AdminID))
	return f, nil
}
