package paymentmock

import (
	"context"

	domain "sellsi-admin-backend/internal/domain/payment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock for payment.Repository.
type Repo struct {
	CreateFn                  func(ctx context.Context, r *domain.Release) error
	GetByReleaseIDFn          func(ctx context.Context, releaseID string) (*domain.Release, error)
	GetByReleaseIDForUpdateFn func(ctx context.Context, releaseID string) (*domain.Release, error)
	ListFn                    func(ctx context.Context) ([]domain.Release, error)
	SaveFn                    func(ctx context.Context, r *domain.Release) error
}

func (m *Repo) Create(ctx context.Context, r *domain.Release) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByReleaseID(ctx context.Context, releaseID string) (*domain.Release, error) {
	if m.GetByReleaseIDFn != nil {
		return m.GetByReleaseIDFn(ctx, releaseID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByReleaseIDForUpdate(ctx context.Context, releaseID string) (*domain.Release, error) {
	if m.GetByReleaseIDForUpdateFn != nil {
		return m.GetByReleaseIDForUpdateFn(ctx, releaseID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Release, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, r *domain.Release) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}
