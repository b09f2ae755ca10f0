package financing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Fixture list with mixed statuses, per the panel's list screen.
func fixture() []Request {
	return []Request{
		{RequestID: "r1", BuyerName: "Comercial Andina", Status: StatusExpired, AmountUsed: 500_000, AmountPaid: 100_000},
		{RequestID: "r2", BuyerName: "Ferretería Sur", Status: StatusExpired, AmountUsed: 200_000, AmountPaid: 200_000},
		{RequestID: "r3", BuyerName: "Andina Ltda", Status: StatusApprovedBySellsi, AmountUsed: 100_000},
		{RequestID: "r4", BuyerName: "Distribuidora Norte", Status: StatusPendingSellsiApproval},
		{RequestID: "r5", BuyerName: "Pausada SpA", Status: StatusApprovedBySellsi, Paused: true},
	}
}

func TestFilter_MoraIsExpiredWithBalance(t *testing.T) {
	got := Filter(fixture(), DisplayMora, "")
	require.Len(t, got, 1)
	require.Equal(t, "r1", got[0].RequestID)
}

func TestFilter_ComposesWithSearch(t *testing.T) {
	// "andina" matches r1 and r3; mora narrows to r1
	got := Filter(fixture(), DisplayMora, "andina")
	require.Len(t, got, 1)
	require.Equal(t, "r1", got[0].RequestID)

	got = Filter(fixture(), FilterAll, "ANDINA")
	require.Len(t, got, 2)
}

func TestFilter_AllSentinelAndVirtualPaused(t *testing.T) {
	require.Len(t, Filter(fixture(), "", ""), 5)
	require.Len(t, Filter(fixture(), FilterAll, ""), 5)

	got := Filter(fixture(), DisplayPausado, "")
	require.Len(t, got, 1)
	require.Equal(t, "r5", got[0].RequestID)

	got = Filter(fixture(), string(StatusPendingSellsiApproval), "")
	require.Len(t, got, 1)
	require.Equal(t, "r4", got[0].RequestID)
}

func TestMatchesSearch_Fields(t *testing.T) {
	r := Request{RequestID: "abc123", BuyerName: "Foo", SupplierName: "Proveedora Bar", BuyerRUT: "76.123.456-0"}
	require.True(t, MatchesSearch(r, "bar"))
	require.True(t, MatchesSearch(r, "76.123"))
	require.True(t, MatchesSearch(r, "abc1"))
	require.False(t, MatchesSearch(r, "zzz"))
	require.True(t, MatchesSearch(r, "  "))
}
