package financing

import "context"

type Repository interface {
	Create(ctx context.Context, r *Request) error
	GetByRequestID(ctx context.Context, requestID string) (*Request, error)
	// GetByRequestIDForUpdate locks the row for the duration of the tx.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*Request, error)
	List(ctx context.Context) ([]Request, error)
	Save(ctx context.Context, r *Request) error
}
