package payment

import (
	"math"
	"strings"
	"time"
)

// CommissionRate is the platform cut taken on every released payment.
const CommissionRate = 0.03

// ComputePayout splits a gross amount into commission and supplier payout.
// Non-finite input yields (0, 0).
func ComputePayout(gross float64) (commission, payout float64) {
	if math.IsNaN(gross) || math.IsInf(gross, 0) {
		return 0, 0
	}
	commission = math.Round(gross * CommissionRate)
	payout = gross - commission
	return commission, payout
}

// DaysInEscrow counts calendar days from delivery confirmation to release.
// The end bound is released_at when set, otherwise now: a released payment's
// escrow age stops growing.
func DaysInEscrow(deliveryConfirmedAt, releasedAt *time.Time, now time.Time) int {
	if deliveryConfirmedAt == nil || deliveryConfirmedAt.IsZero() {
		return 0
	}
	end := now
	if releasedAt != nil && !releasedAt.IsZero() {
		end = *releasedAt
	}
	d := int(end.Sub(*deliveryConfirmedAt).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// MatchesStatus applies the status filter with the "all" sentinel.
func MatchesStatus(r Release, filter string) bool {
	if filter == "" || filter == "all" {
		return true
	}
	return string(r.Status) == filter
}

// MatchesSearch is a case-insensitive substring match over order id,
// supplier id and supplier name.
func MatchesSearch(r Release, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range []string{r.OrderID, r.SupplierID, r.SupplierName, r.ReleaseID} {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// InRange filters on purchased_at within an inclusive [from, to] window.
// A nil bound is open.
func InRange(r Release, from, to *time.Time) bool {
	if from != nil && r.PurchasedAt.Before(*from) {
		return false
	}
	if to != nil && r.PurchasedAt.After(*to) {
		return false
	}
	return true
}
