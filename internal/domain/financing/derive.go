package financing

import (
	"math"
	"time"
)

// coerce maps NaN/Inf (raw feed rows arrive with holes) to 0 so the derived
// ledger fields never carry a non-finite value.
func coerce(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// CoerceAmounts returns a copy with the amount fields coerced to finite
// values. This is the write-path normalization: an estimated expiry is a
// display value and must never be persisted, so nothing else is touched.
func CoerceAmounts(r Request) Request {
	r.Amount = coerce(r.Amount)
	r.AmountUsed = coerce(r.AmountUsed)
	r.AmountPaid = coerce(r.AmountPaid)
	r.AmountRefunded = coerce(r.AmountRefunded)
	return r
}

// Normalize returns a copy with all amount fields coerced to finite values
// and expires_at filled in when it can be estimated. Idempotent.
func Normalize(r Request) Request {
	r = CoerceAmounts(r)
	if r.ExpiresAt == nil {
		r.ExpiresAt = EstimateExpiry(r)
	}
	return r
}

// EstimateExpiry picks the expiry for a request without an explicit one:
// approved_at + term_days, falling back to created_at + term_days.
// Calendar days, not 24h periods.
func EstimateExpiry(r Request) *time.Time {
	if r.ExpiresAt != nil {
		return r.ExpiresAt
	}
	if r.TermDays <= 0 {
		return nil
	}
	if r.ApprovedAt != nil && !r.ApprovedAt.IsZero() {
		t := r.ApprovedAt.AddDate(0, 0, r.TermDays)
		return &t
	}
	if !r.CreatedAt.IsZero() {
		t := r.CreatedAt.AddDate(0, 0, r.TermDays)
		return &t
	}
	return nil
}

// Balance is drawn-down minus repaid. Negative means the buyer overpaid.
func (r Request) Balance() float64 {
	return coerce(r.AmountUsed) - coerce(r.AmountPaid)
}

// Available is the credit still drawable against the line.
func (r Request) Available() float64 {
	return math.Max(0, coerce(r.Amount)-coerce(r.AmountUsed))
}

// RefundPending is the overpayment not yet returned to the buyer.
func (r Request) RefundPending() float64 {
	return math.Max(0, coerce(r.AmountPaid)-coerce(r.AmountUsed)-coerce(r.AmountRefunded))
}

// DisplayStatus resolves the label shown to admins. Pausado wins over mora,
// mora wins over the raw status.
func (r Request) DisplayStatus() string {
	if r.Paused {
		return DisplayPausado
	}
	if r.Status == StatusExpired && r.Balance() > 0 {
		return DisplayMora
	}
	return string(r.Status)
}
