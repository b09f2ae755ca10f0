package transfer

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

var (
	ErrNotFound      = errors.New("NOT_FOUND: bank transfer not found")
	ErrInvalidStatus = errors.New("INVALID_STATUS: bank transfer already reviewed")
)

// BankTransfer is a buyer's out-of-band wire payment waiting for an admin to
// match the uploaded proof against the order.
type BankTransfer struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	TransferID      string         `gorm:"size:32;uniqueIndex:ux_bank_transfers_transfer_id_active" json:"transfer_id"`
	OrderID         string         `gorm:"size:32;index" json:"order_id"`
	BuyerName       string         `gorm:"size:255" json:"buyer_name"`
	BuyerEmail      string         `gorm:"size:255" json:"buyer_email"`
	BuyerRUT        string         `gorm:"size:16;column:buyer_rut" json:"buyer_rut"`
	Amount          float64        `gorm:"type:decimal(18,2)" json:"amount"`
	Status          Status         `gorm:"size:16;index;default:'pending'" json:"status"`
	ProofPath       string         `gorm:"type:text;column:payment_proof_path" json:"payment_proof_path"`
	ReviewedBy      string         `gorm:"size:32" json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time     `json:"reviewed_at,omitempty"`
	RejectionReason string         `gorm:"type:text" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (BankTransfer) TableName() string { return "bank_transfers" }

// MatchesSearch is a case-insensitive substring match over buyer name, email,
// RUT and order id.
func MatchesSearch(t BankTransfer, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range []string{t.BuyerName, t.BuyerEmail, t.BuyerRUT, t.OrderID} {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
