package admin

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("ADMIN_NOT_FOUND")
	ErrDuplicate = errors.New("DUPLICATE: admin usuario or email already exists")
	ErrBadLogin  = errors.New("INVALID_CREDENTIALS")
	ErrInactive  = errors.New("ADMIN_INACTIVE")
)

type Account struct {
	ID           uint64         `gorm:"primaryKey;column:id" json:"-"`
	AdminID      string         `gorm:"size:32;uniqueIndex:ux_admins_admin_id_active" json:"admin_id"`
	Usuario      string         `gorm:"size:64;uniqueIndex:ux_admins_usuario_active" json:"usuario"`
	Email        string         `gorm:"size:255;uniqueIndex:ux_admins_email_active" json:"email"`
	FullName     string         `gorm:"size:255" json:"full_name"`
	PasswordHash string         `gorm:"size:128" json:"-"`
	Active       bool           `gorm:"default:true" json:"active"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Account) TableName() string { return "admin_accounts" }

// AuditLog is one row per admin mutation, written in the same transaction as
// the mutation itself.
type AuditLog struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	AdminID     string    `gorm:"size:32;index" json:"admin_id"`
	Action      string    `gorm:"size:64;index" json:"action"`
	TargetTable string    `gorm:"size:64" json:"target_table"`
	TargetID    string    `gorm:"size:64;index" json:"target_id"`
	Details     string    `gorm:"type:text" json:"details,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (AuditLog) TableName() string { return "admin_audit_log" }

func NewAudit(adminID, action, targetTable, targetID, details string) *AuditLog {
	return &AuditLog{
		ID:          uuid.NewString(),
		AdminID:     adminID,
		Action:      action,
		TargetTable: targetTable,
		TargetID:    targetID,
		Details:     details,
	}
}
