package transfer

import (
	"context"
	"errors"
	"testing"

	domain "sellsi-admin-backend/internal/domain/transfer"
	"sellsi-admin-backend/internal/domain/uow"
	"sellsi-admin-backend/internal/testutil/adminmock"
	"sellsi-admin-backend/internal/testutil/transfermock"
	"sellsi-admin-backend/internal/testutil/uowmock"
)

const tID = "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"

func fixture(rec *domain.BankTransfer) (*Usecase, **domain.BankTransfer) {
	var saved *domain.BankTransfer
	repo := &transfermock.Repo{
		GetByTransferIDForUpdateFn: func(ctx context.Context, id string) (*domain.BankTransfer, error) {
			if rec == nil || id != rec.TransferID {
				return nil, errors.New("not found")
			}
			cp := *rec
			return &cp, nil
		},
		SaveFn: func(ctx context.Context, t *domain.BankTransfer) error {
			saved = t
			return nil
		},
	}
	u := NewUsecase(repo, uowmock.Passthrough(uow.Repos{Transfers: repo, Audits: &adminmock.Audits{}}), nil)
	return u, &saved
}

func TestConfirm_PendingOnly(t *testing.T) {
	rec := &domain.BankTransfer{TransferID: tID, Status: domain.StatusPending}
	uc, saved := fixture(rec)

	got, err := uc.Confirm(context.Background(), ReviewInput{TransferID: tID, AdminID: "a"})
	if err != nil {
		t.Fatalf("Confirm err: %v", err)
	}
	if got.Status != domain.StatusConfirmed || got.ReviewedAt == nil || got.ReviewedBy != "a" {
		t.Fatalf("got %+v", got)
	}
	if *saved == nil {
		t.Fatal("not saved")
	}

	// second confirm hits the state guard
	*rec = **saved
	if _, err := uc.Confirm(context.Background(), ReviewInput{TransferID: tID, AdminID: "a"}); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestReject_RequiresReason(t *testing.T) {
	rec := &domain.BankTransfer{TransferID: tID, Status: domain.StatusPending}
	uc, _ := fixture(rec)

	if _, err := uc.Reject(context.Background(), ReviewInput{TransferID: tID, AdminID: "a"}); err == nil {
		t.Fatal("want validation error")
	}
	got, err := uc.Reject(context.Background(), ReviewInput{TransferID: tID, AdminID: "a", Reason: "amount mismatch"})
	if err != nil {
		t.Fatalf("Reject err: %v", err)
	}
	if got.Status != domain.StatusRejected || got.RejectionReason != "amount mismatch" {
		t.Fatalf("got %+v", got)
	}
}

func TestListPending_Search(t *testing.T) {
	repo := &transfermock.Repo{
		ListByStatusFn: func(ctx context.Context, status domain.Status) ([]domain.BankTransfer, error) {
			if status != domain.StatusPending {
				t.Fatalf("status = %s", status)
			}
			return []domain.BankTransfer{
				{TransferID: "t1", BuyerName: "Carla Rojas", BuyerEmail: "carla@example.cl"},
				{TransferID: "t2", BuyerName: "Pedro Soto", BuyerEmail: "pedro@example.cl"},
			}, nil
		},
	}
	uc := NewUsecase(repo, uowmock.New(), nil)

	got, err := uc.ListPending(context.Background(), "carla")
	if err != nil {
		t.Fatalf("ListPending err: %v", err)
	}
	if len(got) != 1 || got[0].TransferID != "t1" {
		t.Fatalf("got %+v", got)
	}
}
