package transfer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domainAdmin "sellsi-admin-backend/internal/domain/admin"
	domain "sellsi-admin-backend/internal/domain/transfer"
	"sellsi-admin-backend/internal/domain/uow"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
	log  *zap.Logger
}

func NewUsecase(repo domain.Repository, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{repo: repo, uow: tx, log: log}
}

type ReviewInput struct {
	TransferID string
	AdminID    string
	Reason     string
}

// ListPending returns the review queue, optionally narrowed by search term.
func (u *Usecase) ListPending(ctx context.Context, search string) ([]domain.BankTransfer, error) {
	rows, err := u.repo.ListByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, err
	}
	out := make([]domain.BankTransfer, 0, len(rows))
	for _, t := range rows {
		if domain.MatchesSearch(t, search) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, transferID string) (*domain.BankTransfer, error) {
	t, err := u.repo.GetByTransferID(ctx, transferID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Confirm approves a pending transfer against its uploaded proof.
func (u *Usecase) Confirm(ctx context.Context, in ReviewInput) (*domain.BankTransfer, error) {
	return u.review(ctx, in, "transfer_confirm", func(t *domain.BankTransfer) error {
		if t.Status != domain.StatusPending {
			return domain.ErrInvalidStatus
		}
		t.Status = domain.StatusConfirmed
		return nil
	})
}

func (u *Usecase) Reject(ctx context.Context, in ReviewInput) (*domain.BankTransfer, error) {
	if strings.TrimSpace(in.Reason) == "" {
		return nil, fmt.Errorf("VALIDATION: rejection reason is required")
	}
	return u.review(ctx, in, "transfer_reject", func(t *domain.BankTransfer) error {
		if t.Status != domain.StatusPending {
			return domain.ErrInvalidStatus
		}
		t.Status = domain.StatusRejected
		t.RejectionReason = strings.TrimSpace(in.Reason)
		return nil
	})
}

func (u *Usecase) review(ctx context.Context, in ReviewInput, action string, fn func(t *domain.BankTransfer) error) (*domain.BankTransfer, error) {
	var out *domain.BankTransfer
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		t, err := r.Transfers.GetByTransferIDForUpdate(ctx, in.TransferID)
		if err != nil {
			return domain.ErrNotFound
		}
		if err := fn(t); err != nil {
			return err
		}
		now := time.Now().UTC()
		t.ReviewedBy = in.AdminID
		t.ReviewedAt = &now
		if err := r.Audits.Append(ctx, domainAdmin.NewAudit(in.AdminID, action, "bank_transfers", in.TransferID, in.Reason)); err != nil {
			return err
		}
		if err := r.Transfers.Save(ctx, t); err != nil {
			return err
		}
		out = t
		return nil
	})
	if err != nil {
		u.log.Warn("transfer review failed",
			zap.String("action", action),
			zap.String("transfer_id", in.TransferID),
			zap.Error(err))
		return nil, err
	}
	u.log.Info("transfer reviewed",
		zap.String("action", action),
		zap.String("transfer_id", in.TransferID),
		zap.String("admin_id", in.AdminID))
	return out, nil
}
