package transfermock

import (
	"context"

	domain "sellsi-admin-backend/internal/domain/transfer"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock for transfer.Repository.
type Repo struct {
	CreateFn                   func(ctx context.Context, t *domain.BankTransfer) error
	GetByTransferIDFn          func(ctx context.Context, transferID string) (*domain.BankTransfer, error)
	GetByTransferIDForUpdateFn func(ctx context.Context, transferID string) (*domain.BankTransfer, error)
	ListByStatusFn             func(ctx context.Context, status domain.Status) ([]domain.BankTransfer, error)
	SaveFn                     func(ctx context.Context, t *domain.BankTransfer) error
}

func (m *Repo) Create(ctx context.Context, t *domain.BankTransfer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}

func (m *Repo) GetByTransferID(ctx context.Context, transferID string) (*domain.BankTransfer, error) {
	if m.GetByTransferIDFn != nil {
		return m.GetByTransferIDFn(ctx, transferID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByTransferIDForUpdate(ctx context.Context, transferID string) (*domain.BankTransfer, error) {
	if m.GetByTransferIDForUpdateFn != nil {
		return m.GetByTransferIDForUpdateFn(ctx, transferID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByStatus(ctx context.Context, status domain.Status) ([]domain.BankTransfer, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, t *domain.BankTransfer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, t)
	}
	return nil
}
