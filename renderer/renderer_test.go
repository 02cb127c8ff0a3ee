package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/zhenxuanshi/astock"
)

func TestWatchlistMarkdown_Skipped(t *testing.T) {
	r := &astock.WatchlistReport{
		Time:    time.Date(2025, 6, 7, 10, 0, 0, 0, time.Local),
		Status:  astock.SessionStatus{Reason: astock.ReasonWeekend},
		Skipped: true,
	}
	out := WatchlistMarkdown(r)
	if !strings.Contains(out, "SKIPPED") || !strings.Contains(out, "WEEKEND") {
		t.Errorf("skipped report rendered as:\n%s", out)
	}
}

func TestWatchlistMarkdown_Entries(t *testing.T) {
	r := &astock.WatchlistReport{
		Time:   time.Date(2025, 6, 4, 10, 0, 0, 0, time.Local),
		Status: astock.SessionStatus{InSession: true, Reason: astock.ReasonInSession},
		Count:  1,
		Entries: []astock.WatchlistEntry{{
			Security: astock.Security{Code: "600519", Name: "贵州茅台"},
			Tags:     []string{"沪市主板", "白酒"},
		}},
		QuoteCodes: []string{"sh600519"},
	}
	out := WatchlistMarkdown(r)
	for _, want := range []string{"600519", "贵州茅台", "白酒", "asw quote sh600519"} {
		if !strings.Contains(out, want) {
			t.Errorf("report misses %q:\n%s", want, out)
		}
	}
}

func TestPositionMarkdown(t *testing.T) {
	r := &astock.PositionReport{
		Time:   time.Date(2025, 6, 4, 10, 0, 0, 0, time.Local),
		Status: astock.SessionStatus{InSession: true, Reason: astock.ReasonInSession},
		Count:  1,
		Entries: []astock.PositionEntry{{
			Security:  astock.Security{Code: "002594", Name: "比亚迪"},
			Quantity:  astock.Q(1000),
			CostPrice: astock.M(85.50),
			TotalCost: astock.M(85500),
		}},
		TotalCost:  astock.M(85500),
		QuoteCodes: []string{"sz002594"},
	}
	out := PositionMarkdown(r)
	for _, want := range []string{"002594", "比亚迪", "1000"} {
		if !strings.Contains(out, want) {
			t.Errorf("report misses %q:\n%s", want, out)
		}
	}
}

func TestQuotesMarkdown(t *testing.T) {
	quotes := []astock.Quote{{
		Code:      "000858",
		Name:      "五粮液",
		Current:   astock.M(16.66),
		PrevClose: astock.M(16.42),
		ChangeAbs: astock.M(0.24),
	}}
	out := QuotesMarkdown(quotes)
	if !strings.Contains(out, "000858") || !strings.Contains(out, "五粮液") {
		t.Errorf("quotes rendered as:\n%s", out)
	}
}

func TestTagMatchesMarkdown_Empty(t *testing.T) {
	out := TagMatchesMarkdown("白酒", nil)
	if !strings.Contains(out, "白酒") {
		t.Errorf("empty match list rendered as:\n%s", out)
	}
}
