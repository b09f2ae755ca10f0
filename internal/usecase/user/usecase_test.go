package user

import (
	"context"
	"errors"
	"testing"

	"sellsi-admin-backend/internal/domain/uow"
	domain "sellsi-admin-backend/internal/domain/user"
	"sellsi-admin-backend/internal/testutil/adminmock"
	"sellsi-admin-backend/internal/testutil/uowmock"
	"sellsi-admin-backend/internal/testutil/usermock"
)

const uID = "ffffffffffffffffffffffffffffffff"

func fixture(rec *domain.User) (*Usecase, *usermock.Repo, *adminmock.Audits) {
	repo := &usermock.Repo{
		GetByUserIDForUpdateFn: func(ctx context.Context, id string) (*domain.User, error) {
			if rec == nil || id != rec.UserID {
				return nil, errors.New("not found")
			}
			cp := *rec
			return &cp, nil
		},
	}
	audits := &adminmock.Audits{}
	u := NewUsecase(repo, uowmock.Passthrough(uow.Repos{Users: repo, Audits: audits}), nil)
	return u, repo, audits
}

func TestBan_ReasonAndDoubleBanGuard(t *testing.T) {
	rec := &domain.User{UserID: uID, FullName: "Juan Pérez"}
	uc, _, audits := fixture(rec)
	ctx := context.Background()

	if _, err := uc.Ban(ctx, ActionInput{UserID: uID, AdminID: "a"}); err == nil {
		t.Fatal("want validation error for missing reason")
	}

	got, err := uc.Ban(ctx, ActionInput{UserID: uID, AdminID: "a", Reason: "fraudulent listings"})
	if err != nil {
		t.Fatalf("Ban err: %v", err)
	}
	if !got.Banned || got.BanReason != "fraudulent listings" {
		t.Fatalf("got %+v", got)
	}
	if len(audits.Entries) != 1 || audits.Entries[0].Action != "user_ban" {
		t.Fatalf("audit: %+v", audits.Entries)
	}

	rec.Banned = true
	if _, err := uc.Ban(ctx, ActionInput{UserID: uID, AdminID: "a", Reason: "again"}); !errors.Is(err, domain.ErrAlreadyBanned) {
		t.Fatalf("err = %v, want ErrAlreadyBanned", err)
	}
}

func TestUnban_OnlyBanned(t *testing.T) {
	rec := &domain.User{UserID: uID, Banned: false}
	uc, _, _ := fixture(rec)

	if _, err := uc.Unban(context.Background(), ActionInput{UserID: uID, AdminID: "a"}); !errors.Is(err, domain.ErrNotBanned) {
		t.Fatalf("err = %v, want ErrNotBanned", err)
	}

	rec.Banned = true
	rec.BanReason = "old reason"
	got, err := uc.Unban(context.Background(), ActionInput{UserID: uID, AdminID: "a"})
	if err != nil {
		t.Fatalf("Unban err: %v", err)
	}
	if got.Banned || got.BanReason != "" {
		t.Fatalf("got %+v", got)
	}
}

func TestDelete_RecordsActingAdmin(t *testing.T) {
	rec := &domain.User{UserID: uID}
	uc, repo, audits := fixture(rec)

	var deletedBy string
	repo.SoftDeleteFn = func(ctx context.Context, userID, by string) error {
		deletedBy = by
		return nil
	}
	if err := uc.Delete(context.Background(), ActionInput{UserID: uID, AdminID: "admin-1"}); err != nil {
		t.Fatalf("Delete err: %v", err)
	}
	if deletedBy != "admin-1" {
		t.Fatalf("deleted_by = %q", deletedBy)
	}
	if len(audits.Entries) != 1 || audits.Entries[0].Action != "user_delete" {
		t.Fatalf("audit: %+v", audits.Entries)
	}
}

func TestList_FilterComposition(t *testing.T) {
	repo := &usermock.Repo{
		ListFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{
				{UserID: "u1", FullName: "Ana", Banned: true},
				{UserID: "u2", FullName: "Anastasia", Banned: false, Verified: true},
				{UserID: "u3", FullName: "Bruno", Banned: true},
			}, nil
		},
	}
	uc := NewUsecase(repo, uowmock.New(), nil)

	got, err := uc.List(context.Background(), "banned", "ana")
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(got) != 1 || got[0].UserID != "u1" {
		t.Fatalf("got %+v", got)
	}
}
