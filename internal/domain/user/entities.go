package user

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleBuyer    Role = "buyer"
	RoleSupplier Role = "supplier"
)

var (
	ErrNotFound      = errors.New("NOT_FOUND: user not found")
	ErrAlreadyBanned = errors.New("INVALID_STATUS: user is already banned")
	ErrNotBanned     = errors.New("INVALID_STATUS: user is not banned")
)

type User struct {
	ID        uint64         `gorm:"primaryKey;column:id" json:"-"`
	UserID    string         `gorm:"size:32;uniqueIndex:ux_users_user_id_active" json:"user_id"`
	Email     string         `gorm:"size:255;index" json:"email"`
	FullName  string         `gorm:"size:255" json:"full_name"`
	RUT       string         `gorm:"size:16;column:rut" json:"rut"`
	Role      Role           `gorm:"size:16" json:"role"`
	Banned    bool           `gorm:"default:false" json:"banned"`
	BanReason string         `gorm:"type:text" json:"ban_reason,omitempty"`
	Verified  bool           `gorm:"default:false" json:"verified"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy string         `gorm:"size:32" json:"-"`
}

func (User) TableName() string { return "users" }

// MatchesFilter applies the user list filter: all / active / banned /
// verified / unverified.
func MatchesFilter(u User, filter string) bool {
	switch filter {
	case "", "all":
		return true
	case "active":
		return !u.Banned
	case "banned":
		return u.Banned
	case "verified":
		return u.Verified
	case "unverified":
		return !u.Verified
	default:
		return true
	}
}

// MatchesSearch is a case-insensitive substring match over name, email, RUT
// and id.
func MatchesSearch(u User, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range []string{u.FullName, u.Email, u.RUT, u.UserID} {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
