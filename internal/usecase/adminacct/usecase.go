package adminacct

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domain "sellsi-admin-backend/internal/domain/admin"
	"sellsi-admin-backend/internal/domain/uow"
	"sellsi-admin-backend/internal/session"
	"sellsi-admin-backend/pkg/id"
)

const minPasswordLen = 8

type Usecase struct {
	accounts   domain.AccountRepository
	uow        uow.UnitOfWork
	log        *zap.Logger
	jwtSecret  []byte
	sessionTTL time.Duration
}

func NewUsecase(accounts domain.AccountRepository, tx uow.UnitOfWork, log *zap.Logger, jwtSecret []byte, sessionTTL time.Duration) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	if sessionTTL <= 0 {
		sessionTTL = session.DefaultTTL
	}
	return &Usecase{accounts: accounts, uow: tx, log: log, jwtSecret: jwtSecret, sessionTTL: sessionTTL}
}

type CreateInput struct {
	Usuario         string
	Email           string
	FullName        string
	Password        string
	PasswordConfirm string
	CreatedBy       string
}

type AccountDTO struct {
	AdminID   string    `json:"admin_id"`
	Usuario   string    `json:"usuario"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionDTO struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	Admin     AccountDTO `json:"admin"`
}

func toDTO(a domain.Account) AccountDTO {
	return AccountDTO{
		AdminID:   a.AdminID,
		Usuario:   a.Usuario,
		Email:     a.Email,
		FullName:  a.FullName,
		Active:    a.Active,
		CreatedAt: a.CreatedAt,
	}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*AccountDTO, error) {
	in.Usuario = strings.TrimSpace(in.Usuario)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Usuario == "" || in.Email == "" {
		return nil, fmt.Errorf("VALIDATION: usuario and email are required")
	}
	if len(in.Password) < minPasswordLen {
		return nil, fmt.Errorf("VALIDATION: password must be at least %d characters", minPasswordLen)
	}
	if in.Password != in.PasswordConfirm {
		return nil, errors.New("VALIDATION: password confirmation does not match")
	}

	// duplicate guard on both natural keys
	if _, err := u.accounts.GetByUsuario(ctx, in.Usuario); err == nil {
		return nil, domain.ErrDuplicate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := u.accounts.GetByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrDuplicate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	acct := &domain.Account{
		AdminID:      id.NewID32(),
		Usuario:      in.Usuario,
		Email:        in.Email,
		FullName:     strings.TrimSpace(in.FullName),
		PasswordHash: string(hash),
		Active:       true,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Accounts.Create(ctx, acct); err != nil {
			return err
		}
		return r.Audits.Append(ctx, domain.NewAudit(in.CreatedBy, "admin_create", "admin_accounts", acct.AdminID, "usuario="+acct.Usuario))
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("admin account created",
		zap.String("admin_id", acct.AdminID),
		zap.String("usuario", acct.Usuario),
		zap.String("created_by", in.CreatedBy))
	dto := toDTO(*acct)
	return &dto, nil
}

// Login checks the credentials and issues a 24h session token.
func (u *Usecase) Login(ctx context.Context, usuario, password string) (*SessionDTO, error) {
	acct, err := u.accounts.GetByUsuario(ctx, strings.TrimSpace(usuario))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBadLogin
		}
		return nil, err
	}
	if !acct.Active {
		return nil, domain.ErrInactive
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrBadLogin
	}
	tok, expires, err := session.New(u.jwtSecret, acct.AdminID, acct.Usuario, u.sessionTTL)
	if err != nil {
		return nil, err
	}
	u.log.Info("admin login", zap.String("admin_id", acct.AdminID), zap.String("usuario", acct.Usuario))
	return &SessionDTO{Token: tok, ExpiresAt: expires, Admin: toDTO(*acct)}, nil
}

func (u *Usecase) Get(ctx context.Context, adminID string) (*AccountDTO, error) {
	acct, err := u.accounts.GetByAdminID(ctx, adminID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	dto := toDTO(*acct)
	return &dto, nil
}
