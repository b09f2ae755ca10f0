package payment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusReleased  Status = "released"
	StatusCancelled Status = "cancelled"
)

var (
	ErrNotFound      = errors.New("NOT_FOUND: payment release not found")
	ErrInvalidStatus = errors.New("INVALID_STATUS: payment release is not pending")
)

// Release is an escrowed supplier payment awaiting admin release.
// Commission and payout are persisted at release time so the report never
// drifts if the rate changes later.
type Release struct {
	ID                  uint64         `gorm:"primaryKey;column:id" json:"-"`
	ReleaseID           string         `gorm:"size:32;uniqueIndex:ux_payment_releases_release_id_active" json:"release_id"`
	OrderID             string         `gorm:"size:32;index" json:"order_id"`
	SupplierID          string         `gorm:"size:32;index" json:"supplier_id"`
	SupplierName        string         `gorm:"size:255" json:"supplier_name"`
	Amount              float64        `gorm:"type:decimal(18,2)" json:"amount"`
	Commission          float64        `gorm:"type:decimal(18,2)" json:"commission"`
	Payout              float64        `gorm:"type:decimal(18,2)" json:"payout"`
	Status              Status         `gorm:"size:16;index;default:'pending'" json:"status"`
	PurchasedAt         time.Time      `json:"purchased_at"`
	DeliveryConfirmedAt *time.Time     `json:"delivery_confirmed_at,omitempty"`
	ReleasedAt          *time.Time     `json:"released_at,omitempty"`
	AdminNotes          string         `gorm:"type:text" json:"admin_notes"`
	ProofPath           string         `gorm:"type:text;column:payment_proof_path" json:"payment_proof_path"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Release) TableName() string { return "payment_releases" }
