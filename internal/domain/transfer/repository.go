package transfer

import "context"

type Repository interface {
	Create(ctx context.Context, t *BankTransfer) error
	GetByTransferID(ctx context.Context, transferID string) (*BankTransfer, error)
	GetByTransferIDForUpdate(ctx context.Context, transferID string) (*BankTransfer, error)
	ListByStatus(ctx context.Context, status Status) ([]BankTransfer, error)
	Save(ctx context.Context, t *BankTransfer) error
}
