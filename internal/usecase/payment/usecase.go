package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domainAdmin "sellsi-admin-backend/internal/domain/admin"
	domain "sellsi-admin-backend/internal/domain/payment"
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

type ReleaseInput struct {
	ReleaseID string
	AdminID   string
	Notes     string
}

type CancelInput struct {
	ReleaseID string
	AdminID   string
	Reason    string
}

// ReleaseDTO mirrors the table row: the stored projection plus the derived
// escrow age and the split that will be (or was) paid out.
type ReleaseDTO struct {
	ReleaseID           string     `json:"release_id"`
	OrderID             string     `json:"order_id"`
	SupplierID          string     `json:"supplier_id"`
	SupplierName        string     `json:"supplier_name"`
	Amount              float64    `json:"amount"`
	Commission          float64    `json:"commission"`
	Payout              float64    `json:"payout"`
	Status              string     `json:"status"`
	PurchasedAt         time.Time  `json:"purchased_at"`
	DeliveryConfirmedAt *time.Time `json:"delivery_confirmed_at,omitempty"`
	ReleasedAt          *time.Time `json:"released_at,omitempty"`
	DaysInEscrow        int        `json:"days_in_escrow"`
	AdminNotes          string     `json:"admin_notes,omitempty"`
	ProofPath           string     `json:"payment_proof_path,omitempty"`
}

func toDTO(r domain.Release, now time.Time) ReleaseDTO {
	commission, payout := r.Commission, r.Payout
	if r.Status == domain.StatusPending {
		// preview the split for rows not released yet
		commission, payout = domain.ComputePayout(r.Amount)
	}
	return ReleaseDTO{
		ReleaseID:           r.ReleaseID,
		OrderID:             r.OrderID,
		SupplierID:          r.SupplierID,
		SupplierName:        r.SupplierName,
		Amount:              r.Amount,
		Commission:          commission,
		Payout:              payout,
		Status:              string(r.Status),
		PurchasedAt:         r.PurchasedAt,
		DeliveryConfirmedAt: r.DeliveryConfirmedAt,
		ReleasedAt:          r.ReleasedAt,
		DaysInEscrow:        domain.DaysInEscrow(r.DeliveryConfirmedAt, r.ReleasedAt, now),
		AdminNotes:          r.AdminNotes,
		ProofPath:           r.ProofPath,
	}
}

func (u *Usecase) List(ctx context.Context, status, search string, from, to *time.Time) ([]ReleaseDTO, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	out := make([]ReleaseDTO, 0, len(rows))
	for _, r := range rows {
		if !domain.MatchesStatus(r, status) || !domain.MatchesSearch(r, search) || !domain.InRange(r, from, to) {
			continue
		}
		out = append(out, toDTO(r, now))
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, releaseID string) (*ReleaseDTO, error) {
	r, err := u.repo.GetByReleaseID(ctx, releaseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	dto := toDTO(*r, time.Now().UTC())
	return &dto, nil
}

// Release pays the supplier: computes and persists the commission split,
// stamps released_at. Only pending rows are releasable.
func (u *Usecase) Release(ctx context.Context, in ReleaseInput) (*ReleaseDTO, error) {
	return u.mutate(ctx, in.ReleaseID, in.AdminID, "payment_release", in.Notes, func(r *domain.Release) error {
		if r.Status != domain.StatusPending {
			return domain.ErrInvalidStatus
		}
		now := time.Now().UTC()
		r.Commission, r.Payout = domain.ComputePayout(r.Amount)
		r.Status = domain.StatusReleased
		r.ReleasedAt = &now
		if notes := strings.TrimSpace(in.Notes); notes != "" {
			r.AdminNotes = notes
		}
		return nil
	})
}

func (u *Usecase) Cancel(ctx context.Context, in CancelInput) (*ReleaseDTO, error) {
	if strings.TrimSpace(in.Reason) == "" {
		return nil, fmt.Errorf("VALIDATION: cancellation reason is required")
	}
	return u.mutate(ctx, in.ReleaseID, in.AdminID, "payment_cancel", in.Reason, func(r *domain.Release) error {
		if r.Status != domain.StatusPending {
			return domain.ErrInvalidStatus
		}
		r.Status = domain.StatusCancelled
		r.AdminNotes = strings.TrimSpace(in.Reason)
		return nil
	})
}

func (u *Usecase) mutate(ctx context.Context, releaseID, adminID, action, details string, fn func(r *domain.Release) error) (*ReleaseDTO, error) {
	var dto *ReleaseDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		rel, err := r.Payments.GetByReleaseIDForUpdate(ctx, releaseID)
		if err != nil {
			return domain.ErrNotFound
		}
		if err := fn(rel); err != nil {
			return err
		}
		if err := r.Audits.Append(ctx, domainAdmin.NewAudit(adminID, action, "payment_releases", releaseID, details)); err != nil {
			return err
		}
		if err := r.Payments.Save(ctx, rel); err != nil {
			return err
		}
		d := toDTO(*rel, time.Now().UTC())
		dto = &d
		return nil
	})
	if err != nil {
		u.log.Warn("payment action failed",
			zap.String("action", action),
			zap.String("release_id", releaseID),
			zap.Error(err))
		return nil, err
	}
	u.log.Info("payment action applied",
		zap.String("action", action),
		zap.String("release_id", releaseID),
		zap.String("admin_id", adminID))
	return dto, nil
}
