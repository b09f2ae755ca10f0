package uowmock

import (
	"context"
	"errors"

	domain "sellsi-admin-backend/internal/domain/financing"
	"sellsi-admin-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
type UoW struct {
	WithinTxFn          func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinFinancingTxFn func(ctx context.Context, requestID string, fn func(r uow.Repos, fr *domain.Request) error) error
}

func New() *UoW { return &UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinFinancingTx(ctx context.Context, requestID string, fn func(r uow.Repos, fr *domain.Request) error) error {
	if m.WithinFinancingTxFn != nil {
		return m.WithinFinancingTxFn(ctx, requestID, fn)
	}
	return errUnimplemented
}

// Passthrough builds a UoW whose transactions just run fn against the given
// repos, with fr resolved through Repos.Financings. Handy default for tests.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(repos)
		},
		WithinFinancingTxFn: func(ctx context.Context, requestID string, fn func(r uow.Repos, fr *domain.Request) error) error {
			fr, err := repos.Financings.GetByRequestIDForUpdate(ctx, requestID)
			if err != nil {
				return domain.ErrNotFound
			}
			return fn(repos, fr)
		},
	}
}
