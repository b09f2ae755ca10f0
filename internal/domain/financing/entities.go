package financing

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPendingSupplierReview    Status = "pending_supplier_review"
	StatusRejectedBySupplier       Status = "rejected_by_supplier"
	StatusBuyerSignaturePending    Status = "buyer_signature_pending"
	StatusCancelledByBuyer         Status = "cancelled_by_buyer"
	StatusSupplierSignaturePending Status = "supplier_signature_pending"
	StatusCancelledBySupplier      Status = "cancelled_by_supplier"
	StatusPendingSellsiApproval    Status = "pending_sellsi_approval"
	StatusApprovedBySellsi         Status = "approved_by_sellsi"
	StatusRejectedBySellsi         Status = "rejected_by_sellsi"
	StatusExpired                  Status = "expired"
	StatusPaid                     Status = "paid"
)

// Display-only states. Never stored; resolved by DisplayStatus.
const (
	DisplayMora    = "mora"
	DisplayPausado = "pausado"
)

var (
	ErrNotFound      = errors.New("NOT_FOUND: financing request not found")
	ErrInvalidStatus = errors.New("INVALID_STATUS: financing request is not in the expected status")
	ErrNotPaused     = errors.New("INVALID_STATUS: financing request is not paused")
)

type Request struct {
	ID             uint64         `gorm:"primaryKey;column:id" json:"-"`
	RequestID      string         `gorm:"size:32;uniqueIndex:ux_financings_request_id_active" json:"request_id"`
	BuyerID        string         `gorm:"size:32;index" json:"buyer_id"`
	BuyerName      string         `gorm:"size:255" json:"buyer_name"`
	BuyerRUT       string         `gorm:"size:16;column:buyer_rut" json:"buyer_rut"`
	SupplierID     string         `gorm:"size:32;index" json:"supplier_id"`
	SupplierName   string         `gorm:"size:255" json:"supplier_name"`
	Status         Status         `gorm:"size:32;index;default:'pending_supplier_review'" json:"status"`
	Paused         bool           `gorm:"default:false" json:"paused"`
	Amount         float64        `gorm:"type:decimal(18,2)" json:"amount"`
	AmountUsed     float64        `gorm:"type:decimal(18,2)" json:"amount_used"`
	AmountPaid     float64        `gorm:"type:decimal(18,2)" json:"amount_paid"`
	AmountRefunded float64        `gorm:"type:decimal(18,2)" json:"amount_refunded"`
	TermDays       int            `json:"term_days"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	ApprovedAt     *time.Time     `json:"approved_at,omitempty"`
	ExpiresAt      *time.Time     `json:"expires_at,omitempty"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Request) TableName() string { return "financing_requests" }
