package astock

import "time"

// WatchlistReport is a session-gated summary of the watchlist. A Skipped
// report is distinct from an in-session report over an empty watchlist.
type WatchlistReport struct {
	Time       time.Time
	Status     SessionStatus
	Skipped    bool
	Count      int
	Entries    []WatchlistEntry
	QuoteCodes []string // normalized codes, the hint to fetch live quotes
}

// PositionReport is a session-gated summary of the positions book.
type PositionReport struct {
	Time       time.Time
	Status     SessionStatus
	Skipped    bool
	Count      int
	Entries    []PositionEntry
	TotalCost  Money
	QuoteCodes []string
}

// ComposeWatchlistReport checks the session gate first: out of session it
// returns a skipped report and mutates nothing.
func ComposeWatchlistReport(s *Store, now time.Time) *WatchlistReport {
	r := &WatchlistReport{Time: now, Status: IsTradingSession(now)}
	if !r.Status.InSession {
		r.Skipped = true
		return r
	}
	r.Entries = s.Watchlist()
	r.Count = len(r.Entries)
	for _, e := range r.Entries {
		r.QuoteCodes = append(r.QuoteCodes, NormalizeCode(e.Code))
	}
	return r
}

// ComposePositionReport is the positions counterpart of
// ComposeWatchlistReport.
func ComposePositionReport(s *Store, now time.Time) *PositionReport {
	r := &PositionReport{Time: now, Status: IsTradingSession(now)}
	if !r.Status.InSession {
		r.Skipped = true
		return r
	}
	r.Entries, r.TotalCost = s.Positions()
	r.Count = len(r.Entries)
	for _, e := range r.Entries {
		r.QuoteCodes = append(r.QuoteCodes, NormalizeCode(e.Code))
	}
	return r
}
