package financing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domainAdmin "sellsi-admin-backend/internal/domain/admin"
	domain "sellsi-admin-backend/internal/domain/financing"
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

func validationErr(format string, args ...any) error {
	return fmt.Errorf("VALIDATION: "+format, args...)
}

func toDTO(r domain.Request) *RequestDTO {
	n := domain.Normalize(r)
	return &RequestDTO{
		RequestID:      n.RequestID,
		BuyerID:        n.BuyerID,
		BuyerName:      n.BuyerName,
		BuyerRUT:       n.BuyerRUT,
		SupplierID:     n.SupplierID,
		SupplierName:   n.SupplierName,
		Status:         string(n.Status),
		DisplayStatus:  n.DisplayStatus(),
		Paused:         n.Paused,
		Amount:         n.Amount,
		AmountUsed:     n.AmountUsed,
		AmountPaid:     n.AmountPaid,
		AmountRefunded: n.AmountRefunded,
		Balance:        n.Balance(),
		Available:      n.Available(),
		RefundPending:  n.RefundPending(),
		TermDays:       n.TermDays,
		CreatedAt:      n.CreatedAt,
		ApprovedAt:     n.ApprovedAt,
		ExpiresAt:      n.ExpiresAt,
		Eligibility:    domain.EligibilityFor(n),
	}
}

// List applies the status filter (incl. the virtual mora/pausado values) and
// the substring search over the normalized records.
func (u *Usecase) List(ctx context.Context, status, search string) ([]RequestDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	normalized := make([]domain.Request, 0, len(rows))
	for _, r := range rows {
		normalized = append(normalized, domain.Normalize(r))
	}
	filtered := domain.Filter(normalized, status, search)
	out := make([]RequestDTO, 0, len(filtered))
	for _, r := range filtered {
		out = append(out, *toDTO(r))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, requestID string) (*RequestDTO, error) {
	r, err := u.repo.GetByRequestID(ctx, requestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDTO(*r), nil
}

// Approve moves pending_sellsi_approval → approved_by_sellsi, stamps
// approved_at and fills in the estimated expiry when none was set.
func (u *Usecase) Approve(ctx context.Context, in ApproveInput) (*RequestDTO, error) {
	return u.mutate(ctx, in.RequestID, in.AdminID, "financing_approve", "", func(fr *domain.Request) error {
		if !domain.CanApprove(*fr) {
			return domain.ErrInvalidStatus
		}
		now := time.Now().UTC()
		fr.Status = domain.StatusApprovedBySellsi
		fr.ApprovedAt = &now
		if fr.ExpiresAt == nil {
			fr.ExpiresAt = domain.EstimateExpiry(*fr)
		}
		return nil
	})
}

func (u *Usecase) Reject(ctx context.Context, in RejectInput) (*RequestDTO, error) {
	if strings.TrimSpace(in.Reason) == "" {
		return nil, validationErr("rejection reason is required")
	}
	return u.mutate(ctx, in.RequestID, in.AdminID, "financing_reject", in.Reason, func(fr *domain.Request) error {
		if !domain.CanReject(*fr) {
			return domain.ErrInvalidStatus
		}
		fr.Status = domain.StatusRejectedBySellsi
		return nil
	})
}

func (u *Usecase) Pause(ctx context.Context, in PauseInput) (*RequestDTO, error) {
	return u.mutate(ctx, in.RequestID, in.AdminID, "financing_pause", in.Reason, func(fr *domain.Request) error {
		if !domain.CanPause(*fr) {
			return domain.ErrInvalidStatus
		}
		fr.Paused = true
		return nil
	})
}

func (u *Usecase) Unpause(ctx context.Context, in PauseInput) (*RequestDTO, error) {
	return u.mutate(ctx, in.RequestID, in.AdminID, "financing_unpause", in.Reason, func(fr *domain.Request) error {
		if !domain.CanUnpause(*fr) {
			return domain.ErrNotPaused
		}
		fr.Paused = false
		return nil
	})
}

// Restore corrects the drawn-down amount (credit correction, not a money
// movement). All three client-side rules are re-checked here.
func (u *Usecase) Restore(ctx context.Context, in RestoreInput) (*RequestDTO, error) {
	if in.Amount <= 0 {
		return nil, validationErr("restore amount must be greater than zero")
	}
	if strings.TrimSpace(in.Reason) == "" {
		return nil, validationErr("restore reason is required")
	}
	if !in.Confirmed {
		return nil, validationErr("restore must be explicitly confirmed")
	}
	details := fmt.Sprintf("amount=%.2f reason=%s", in.Amount, in.Reason)
	return u.mutate(ctx, in.RequestID, in.AdminID, "financing_restore", details, func(fr *domain.Request) error {
		if !domain.CanRestore(*fr) {
			return domain.ErrInvalidStatus
		}
		if in.Amount > fr.AmountUsed {
			return validationErr("restore amount exceeds amount in use (%.2f)", fr.AmountUsed)
		}
		fr.AmountUsed -= in.Amount
		return nil
	})
}

// Refund records an out-of-band repayment of overpaid funds.
func (u *Usecase) Refund(ctx context.Context, in RefundInput) (*RequestDTO, error) {
	if in.Amount <= 0 {
		return nil, validationErr("refund amount must be greater than zero")
	}
	if !in.TransferConfirmed {
		return nil, validationErr("refund requires confirming the transfer was already made")
	}
	details := fmt.Sprintf("amount=%.2f", in.Amount)
	return u.mutate(ctx, in.RequestID, in.AdminID, "financing_refund", details, func(fr *domain.Request) error {
		if !domain.CanRefund(*fr) {
			return domain.ErrInvalidStatus
		}
		if pending := fr.RefundPending(); in.Amount > pending {
			return validationErr("refund amount exceeds refund pending (%.2f)", pending)
		}
		fr.AmountRefunded += in.Amount
		return nil
	})
}

// mutate locks the row, coerces its amounts, applies fn under the state
// guards it carries, audits and saves, all in one tx.
func (u *Usecase) mutate(ctx context.Context, requestID, adminID, action, details string, fn func(fr *domain.Request) error) (*RequestDTO, error) {
	if u.uow == nil {
		return nil, domain.ErrInvalidStatus
	}
	var dto *RequestDTO
	err := u.uow.WithinFinancingTx(ctx, requestID, func(r uow.Repos, fr *domain.Request) error {
		// Coerce only: filling in an estimated expiry here would persist a
		// created_at-based guess and block Approve from stamping the
		// approved_at-based one.
		*fr = domain.CoerceAmounts(*fr)
		if err := fn(fr); err != nil {
			return err
		}
		if err := r.Audits.Append(ctx, domainAdmin.NewAudit(adminID, action, "financing_requests", requestID, details)); err != nil {
			return err
		}
		if err := r.Financings.Save(ctx, fr); err != nil {
			return err
		}
		dto = toDTO(*fr)
		return nil
	})
	if err != nil {
		u.log.Warn("financing action failed",
			zap.String("action", action),
			zap.String("request_id", requestID),
			zap.String("admin_id", adminID),
			zap.Error(err))
		return nil, err
	}
	u.log.Info("financing action applied",
		zap.String("action", action),
		zap.String("request_id", requestID),
		zap.String("admin_id", adminID))
	return dto, nil
}
