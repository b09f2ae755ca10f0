package financing

import (
	"time"

	domain "sellsi-admin-backend/internal/domain/financing"
)

// RequestDTO is the normalized projection the panel renders: raw fields plus
// the derived ledger values and the per-record action map.
type RequestDTO struct {
	RequestID      string             `json:"request_id"`
	BuyerID        string             `json:"buyer_id"`
	BuyerName      string             `json:"buyer_name"`
	BuyerRUT       string             `json:"buyer_rut"`
	SupplierID     string             `json:"supplier_id"`
	SupplierName   string             `json:"supplier_name"`
	Status         string             `json:"status"`
	DisplayStatus  string             `json:"display_status"`
	Paused         bool               `json:"paused"`
	Amount         float64            `json:"amount"`
	AmountUsed     float64            `json:"amount_used"`
	AmountPaid     float64            `json:"amount_paid"`
	AmountRefunded float64            `json:"amount_refunded"`
	Balance        float64            `json:"balance"`
	Available      float64            `json:"available"`
	RefundPending  float64            `json:"refund_pending"`
	TermDays       int                `json:"term_days"`
	CreatedAt      time.Time          `json:"created_at"`
	ApprovedAt     *time.Time         `json:"approved_at,omitempty"`
	ExpiresAt      *time.Time         `json:"expires_at,omitempty"`
	Eligibility    domain.Eligibility `json:"eligibility"`
}

type ApproveInput struct {
	RequestID string
	AdminID   string
}

type RejectInput struct {
	RequestID string
	AdminID   string
	Reason    string
}

type PauseInput struct {
	RequestID string
	AdminID   string
	Reason    string
}

type RestoreInput struct {
	RequestID string
	AdminID   string
	Amount    float64
	Reason    string
	// Confirmed is the explicit "this corrects credit, does not refund money"
	// checkbox; submission is blocked until it is set.
	Confirmed bool
}

type RefundInput struct {
	RequestID string
	AdminID   string
	Amount    float64
	// TransferConfirmed acknowledges the money was already wired out-of-band;
	// this action only records it.
	TransferConfirmed bool
}
