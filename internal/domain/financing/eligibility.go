package financing

// Action-eligibility rules. Each predicate is independent and evaluated per
// record; handlers expose them so the panel can enable/disable buttons, and
// the usecases enforce the same rules before mutating.

func CanApprove(r Request) bool { return r.Status == StatusPendingSellsiApproval }

func CanReject(r Request) bool { return r.Status == StatusPendingSellsiApproval }

func CanPause(r Request) bool { return r.Status == StatusApprovedBySellsi && !r.Paused }

func CanUnpause(r Request) bool { return r.Paused }

func CanRestore(r Request) bool {
	return r.Status == StatusApprovedBySellsi && coerce(r.AmountUsed) > 0
}

func CanRefund(r Request) bool {
	if r.Status != StatusApprovedBySellsi && r.Status != StatusExpired {
		return false
	}
	return r.RefundPending() > 0
}

// Eligibility is the per-record action map returned alongside listings.
type Eligibility struct {
	Approve bool `json:"approve"`
	Reject  bool `json:"reject"`
	Pause   bool `json:"pause"`
	Unpause bool `json:"unpause"`
	Restore bool `json:"restore"`
	Refund  bool `json:"refund"`
}

func EligibilityFor(r Request) Eligibility {
	return Eligibility{
		Approve: CanApprove(r),
		Reject:  CanReject(r),
		Pause:   CanPause(r),
		Unpause: CanUnpause(r),
		Restore: CanRestore(r),
		Refund:  CanRefund(r),
	}
}
