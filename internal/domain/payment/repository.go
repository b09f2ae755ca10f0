package payment

import "context"

type Repository interface {
	Create(ctx context.Context, r *Release) error
	GetByReleaseID(ctx context.Context, releaseID string) (*Release, error)
	GetByReleaseIDForUpdate(ctx context.Context, releaseID string) (*Release, error)
	List(ctx context.Context) ([]Release, error)
	Save(ctx context.Context, r *Release) error
}
