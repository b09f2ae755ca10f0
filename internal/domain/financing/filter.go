package financing

import "strings"

// FilterAll bypasses the status check.
const FilterAll = "all"

// MatchesStatus applies the list-screen status filter. Besides the stored
// statuses it understands the virtual values "mora" and "pausado".
func MatchesStatus(r Request, filter string) bool {
	switch filter {
	case "", FilterAll:
		return true
	case DisplayMora:
		return r.Status == StatusExpired && r.Balance() > 0
	case DisplayPausado:
		return r.Paused
	default:
		return string(r.Status) == filter
	}
}

// MatchesSearch is a case-insensitive substring match over buyer name,
// supplier name, RUT and the public id. Empty term matches everything.
func MatchesSearch(r Request, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range []string{r.BuyerName, r.SupplierName, r.BuyerRUT, r.RequestID} {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Filter composes the status filter and the search term with logical AND.
func Filter(list []Request, status, term string) []Request {
	out := make([]Request, 0, len(list))
	for _, r := range list {
		if MatchesStatus(r, status) && MatchesSearch(r, term) {
			out = append(out, r)
		}
	}
	return out
}
