package astock

import (
	"testing"
	"time"
)

var (
	inSession  = time.Date(2025, 6, 4, 10, 0, 0, 0, time.Local) // Wednesday 10:00
	offSession = time.Date(2025, 6, 7, 10, 0, 0, 0, time.Local) // Saturday 10:00
)

func TestComposeWatchlistReport_SkippedOutOfSession(t *testing.T) {
	s := testStore()
	s.AddWatch("600519", "贵州茅台")

	r := ComposeWatchlistReport(s, offSession)
	if !r.Skipped {
		t.Fatal("report not skipped out of session")
	}
	if r.Status.Reason != ReasonWeekend {
		t.Errorf("reason = %s; want WEEKEND", r.Status.Reason)
	}
	if r.Count != 0 || len(r.Entries) != 0 {
		t.Error("skipped report carries entries")
	}
	// composing never mutates the store
	if len(s.Watchlist()) != 1 {
		t.Error("store mutated by report composition")
	}
}

func TestComposeWatchlistReport_EmptyInSessionIsNotSkipped(t *testing.T) {
	s := testStore()
	r := ComposeWatchlistReport(s, inSession)
	if r.Skipped {
		t.Fatal("in-session report marked skipped")
	}
	if r.Count != 0 {
		t.Errorf("count = %d; want 0", r.Count)
	}
}

func TestComposeWatchlistReport_QuoteHint(t *testing.T) {
	s := testStore()
	s.AddWatch("600519", "贵州茅台")
	s.AddWatch("000858", "五粮液")

	r := ComposeWatchlistReport(s, inSession)
	if r.Count != 2 {
		t.Fatalf("count = %d; want 2", r.Count)
	}
	want := []string{"sh600519", "sz000858"}
	for i, code := range want {
		if r.QuoteCodes[i] != code {
			t.Errorf("quote code %d = %q; want %q", i, r.QuoteCodes[i], code)
		}
	}
}

func TestComposePositionReport(t *testing.T) {
	s := testStore()
	s.AddPosition("002594", "比亚迪", Q(1000), M(85.50))

	r := ComposePositionReport(s, inSession)
	if r.Skipped {
		t.Fatal("in-session report marked skipped")
	}
	if r.Count != 1 || !r.TotalCost.Equal(M(85500)) {
		t.Errorf("count=%d total=%s", r.Count, r.TotalCost.Decimal())
	}

	skipped := ComposePositionReport(s, offSession)
	if !skipped.Skipped || skipped.Count != 0 {
		t.Errorf("out-of-session report = %+v; want skipped", skipped)
	}
}
