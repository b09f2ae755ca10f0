// Package stats aggregates the operational numbers behind the dashboard
// charts. All aggregation happens over the listed projections, mirroring how
// the panel derived its charts client-side.
package stats

import (
	"context"
	"time"

	domainFin "sellsi-admin-backend/internal/domain/financing"
	domainPay "sellsi-admin-backend/internal/domain/payment"
	domainTr "sellsi-admin-backend/internal/domain/transfer"
	domainUser "sellsi-admin-backend/internal/domain/user"
)

type Usecase struct {
	financings domainFin.Repository
	payments   domainPay.Repository
	transfers  domainTr.Repository
	users      domainUser.Repository
}

func NewUsecase(f domainFin.Repository, p domainPay.Repository, t domainTr.Repository, u domainUser.Repository) *Usecase {
	return &Usecase{financings: f, payments: p, transfers: t, users: u}
}

type PaymentTotals struct {
	Count      int     `json:"count"`
	Gross      float64 `json:"gross"`
	Commission float64 `json:"commission"`
	Payout     float64 `json:"payout"`
}

type UserTotals struct {
	Total    int `json:"total"`
	Banned   int `json:"banned"`
	Verified int `json:"verified"`
}

type Dashboard struct {
	From               time.Time      `json:"from"`
	To                 time.Time      `json:"to"`
	FinancingByStatus  map[string]int `json:"financing_by_status"`
	FinancingInMora    int            `json:"financing_in_mora"`
	OutstandingBalance float64        `json:"outstanding_balance"`
	ReleasedPayments   PaymentTotals  `json:"released_payments"`
	PendingReleases    int            `json:"pending_releases"`
	PendingTransfers   int            `json:"pending_transfers"`
	Users              UserTotals     `json:"users"`
}

func inRange(ts time.Time, from, to time.Time) bool {
	return !ts.Before(from) && !ts.After(to)
}

// Build computes the dashboard over the inclusive [from, to] window.
// Created-at bounds the financing buckets; released-at bounds the payment
// totals so a release always lands in the period it was paid.
func (u *Usecase) Build(ctx context.Context, from, to time.Time) (*Dashboard, error) {
	d := &Dashboard{
		From:              from,
		To:                to,
		FinancingByStatus: map[string]int{},
	}

	fins, err := u.financings.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range fins {
		n := domainFin.Normalize(f)
		if !inRange(n.CreatedAt, from, to) {
			continue
		}
		d.FinancingByStatus[n.DisplayStatus()]++
		if n.DisplayStatus() == domainFin.DisplayMora {
			d.FinancingInMora++
		}
		if b := n.Balance(); b > 0 {
			d.OutstandingBalance += b
		}
	}

	pays, err := u.payments.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range pays {
		switch p.Status {
		case domainPay.StatusPending:
			d.PendingReleases++
		case domainPay.StatusReleased:
			if p.ReleasedAt == nil || !inRange(*p.ReleasedAt, from, to) {
				continue
			}
			d.ReleasedPayments.Count++
			d.ReleasedPayments.Gross += p.Amount
			d.ReleasedPayments.Commission += p.Commission
			d.ReleasedPayments.Payout += p.Payout
		}
	}

	pending, err := u.transfers.ListByStatus(ctx, domainTr.StatusPending)
	if err != nil {
		return nil, err
	}
	d.PendingTransfers = len(pending)

	users, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}
	d.Users.Total = len(users)
	for _, usr := range users {
		if usr.Banned {
			d.Users.Banned++
		}
		if usr.Verified {
			d.Users.Verified++
		}
	}
	return d, nil
}
