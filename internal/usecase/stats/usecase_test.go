package stats

import (
	"context"
	"testing"
	"time"

	domainFin "sellsi-admin-backend/internal/domain/financing"
	domainPay "sellsi-admin-backend/internal/domain/payment"
	domainTr "sellsi-admin-backend/internal/domain/transfer"
	domainUser "sellsi-admin-backend/internal/domain/user"
	"sellsi-admin-backend/internal/testutil/financingmock"
	"sellsi-admin-backend/internal/testutil/paymentmock"
	"sellsi-admin-backend/internal/testutil/transfermock"
	"sellsi-admin-backend/internal/testutil/usermock"
)

func TestBuild(t *testing.T) {
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 30, 23, 59, 59, 0, time.UTC)
	in := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
	out := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	fins := &financingmock.Repo{ListFn: func(ctx context.Context) ([]domainFin.Request, error) {
		return []domainFin.Request{
			{Status: domainFin.StatusExpired, AmountUsed: 100_000, CreatedAt: in},       // mora, balance 100000
			{Status: domainFin.StatusApprovedBySellsi, AmountUsed: 50_000, CreatedAt: in}, // balance 50000
			{Status: domainFin.StatusPaid, CreatedAt: out},                              // outside window
		}, nil
	}}
	rel := in
	pays := &paymentmock.Repo{ListFn: func(ctx context.Context) ([]domainPay.Release, error) {
		return []domainPay.Release{
			{Status: domainPay.StatusReleased, Amount: 100_000, Commission: 3_000, Payout: 97_000, ReleasedAt: &rel},
			{Status: domainPay.StatusPending, Amount: 40_000},
		}, nil
	}}
	trs := &transfermock.Repo{ListByStatusFn: func(ctx context.Context, s domainTr.Status) ([]domainTr.BankTransfer, error) {
		return []domainTr.BankTransfer{{TransferID: "t1"}}, nil
	}}
	users := &usermock.Repo{ListFn: func(ctx context.Context) ([]domainUser.User, error) {
		return []domainUser.User{{Banned: true}, {Verified: true}, {}}, nil
	}}

	d, err := NewUsecase(fins, pays, trs, users).Build(context.Background(), from, to)
	if err != nil {
		t.Fatalf("Build err: %v", err)
	}
	if d.FinancingInMora != 1 || d.FinancingByStatus[domainFin.DisplayMora] != 1 {
		t.Fatalf("mora count: %+v", d.FinancingByStatus)
	}
	if d.OutstandingBalance != 150_000 {
		t.Fatalf("outstanding = %v", d.OutstandingBalance)
	}
	if d.ReleasedPayments.Count != 1 || d.ReleasedPayments.Payout != 97_000 {
		t.Fatalf("released totals: %+v", d.ReleasedPayments)
	}
	if d.PendingReleases != 1 || d.PendingTransfers != 1 {
		t.Fatalf("pending counts: %d/%d", d.PendingReleases, d.PendingTransfers)
	}
	if d.Users.Total != 3 || d.Users.Banned != 1 || d.Users.Verified != 1 {
		t.Fatalf("user totals: %+v", d.Users)
	}
}
