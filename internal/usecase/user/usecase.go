package user

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domainAdmin "sellsi-admin-backend/internal/domain/admin"
	"sellsi-admin-backend/internal/domain/uow"
	domain "sellsi-admin-backend/internal/domain/user"
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

type ActionInput struct {
	UserID  string
	AdminID string
	Reason  string
}

func (u *Usecase) List(ctx context.Context, filter, search string) ([]domain.User, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(rows))
	for _, usr := range rows {
		if domain.MatchesFilter(usr, filter) && domain.MatchesSearch(usr, search) {
			out = append(out, usr)
		}
	}
	return out, nil
}

func (u *Usecase) Ban(ctx context.Context, in ActionInput) (*domain.User, error) {
	if strings.TrimSpace(in.Reason) == "" {
		return nil, fmt.Errorf("VALIDATION: ban reason is required")
	}
	return u.mutate(ctx, in, "user_ban", func(usr *domain.User) error {
		if usr.Banned {
			return domain.ErrAlreadyBanned
		}
		usr.Banned = true
		usr.BanReason = strings.TrimSpace(in.Reason)
		return nil
	})
}

func (u *Usecase) Unban(ctx context.Context, in ActionInput) (*domain.User, error) {
	return u.mutate(ctx, in, "user_unban", func(usr *domain.User) error {
		if !usr.Banned {
			return domain.ErrNotBanned
		}
		usr.Banned = false
		usr.BanReason = ""
		return nil
	})
}

func (u *Usecase) Verify(ctx context.Context, in ActionInput) (*domain.User, error) {
	return u.mutate(ctx, in, "user_verify", func(usr *domain.User) error {
		usr.Verified = true
		return nil
	})
}

// Delete soft-deletes the user, keeping the row for auditability.
func (u *Usecase) Delete(ctx context.Context, in ActionInput) error {
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Users.GetByUserIDForUpdate(ctx, in.UserID); err != nil {
			return domain.ErrNotFound
		}
		if err := r.Audits.Append(ctx, domainAdmin.NewAudit(in.AdminID, "user_delete", "users", in.UserID, in.Reason)); err != nil {
			return err
		}
		return r.Users.SoftDelete(ctx, in.UserID, in.AdminID)
	})
	if err != nil {
		u.log.Warn("user delete failed", zap.String("user_id", in.UserID), zap.Error(err))
		return err
	}
	u.log.Info("user deleted", zap.String("user_id", in.UserID), zap.String("admin_id", in.AdminID))
	return nil
}

func (u *Usecase) mutate(ctx context.Context, in ActionInput, action string, fn func(usr *domain.User) error) (*domain.User, error) {
	var out *domain.User
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.GetByUserIDForUpdate(ctx, in.UserID)
		if err != nil {
			return domain.ErrNotFound
		}
		if err := fn(usr); err != nil {
			return err
		}
		if err := r.Audits.Append(ctx, domainAdmin.NewAudit(in.AdminID, action, "users", in.UserID, in.Reason)); err != nil {
			return err
		}
		if err := r.Users.Save(ctx, usr); err != nil {
			return err
		}
		out = usr
		return nil
	})
	if err != nil {
		u.log.Warn("user action failed",
			zap.String("action", action),
			zap.String("user_id", in.UserID),
			zap.Error(err))
		return nil, err
	}
	u.log.Info("user action applied",
		zap.String("action", action),
		zap.String("user_id", in.UserID),
		zap.String("admin_id", in.AdminID))
	return out, nil
}
