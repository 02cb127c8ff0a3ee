package astock

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// quoteStatement builds a provider statement with n fields, applying the
// given zero-based offset overrides.
func quoteStatement(key string, n int, overrides map[int]string) string {
	fields := make([]string, n)
	for i := range fields {
		fields[i] = "0"
	}
	for i, v := range overrides {
		fields[i] = v
	}
	return fmt.Sprintf("%s=\"%s\"", key, strings.Join(fields, "~"))
}

func wuliangye() string {
	return quoteStatement("v_sz000858", 49, map[int]string{
		1:  "五粮液",
		2:  "000858",
		3:  "16.66",
		4:  "16.42",
		5:  "16.50",
		6:  "12345",
		9:  "16.65",
		10: "120",
		19: "16.66",
		20: "80",
		32: "1.46",
		33: "16.80",
		34: "16.30",
		37: "2.5",
	})
}

func TestDecodeQuotes_Fields(t *testing.T) {
	quotes, err := DecodeQuotes(wuliangye() + ";\n")
	if err != nil {
		t.Fatalf("DecodeQuotes: %v", err)
	}
	if len(quotes) != 1 {
		t.Fatalf("decoded %d quotes; want 1", len(quotes))
	}
	q := quotes[0]
	if q.Code != "000858" || q.Name != "五粮液" {
		t.Errorf("identity = %q %q", q.Code, q.Name)
	}
	if !q.Current.Equal(M(16.66)) || !q.PrevClose.Equal(M(16.42)) || !q.Open.Equal(M(16.50)) {
		t.Errorf("prices = %s %s %s", q.Current.Decimal(), q.PrevClose.Decimal(), q.Open.Decimal())
	}
	if !q.High.Equal(M(16.80)) || !q.Low.Equal(M(16.30)) {
		t.Errorf("high/low = %s %s", q.High.Decimal(), q.Low.Decimal())
	}
	if q.Volume != 1234500 {
		t.Errorf("volume = %d shares; want 12345 lots x 100", q.Volume)
	}
	if !q.Amount.Equal(M(25000)) {
		t.Errorf("amount = %s; want 2.5 x 10000", q.Amount.Decimal())
	}
	if !q.BestBidPrice.Equal(M(16.65)) || q.BestBidVolume != 120 {
		t.Errorf("best bid = %s x %d", q.BestBidPrice.Decimal(), q.BestBidVolume)
	}
	if !q.BestAskPrice.Equal(M(16.66)) || q.BestAskVolume != 80 {
		t.Errorf("best ask = %s x %d", q.BestAskPrice.Decimal(), q.BestAskVolume)
	}
	if q.ChangePct.String() != "1.46" {
		t.Errorf("changePct = %s; want the provider-reported 1.46", q.ChangePct)
	}
}

func TestDecodeQuotes_ChangeAbsDerivedLocally(t *testing.T) {
	// one good statement and one with too few fields: the short one is
	// skipped, the batch survives
	raw := wuliangye() + ";" + quoteStatement("v_sh600519", 10, nil) + ";"
	quotes, err := DecodeQuotes(raw)
	if err != nil {
		t.Fatalf("DecodeQuotes: %v", err)
	}
	if len(quotes) != 1 {
		t.Fatalf("decoded %d quotes; want exactly 1", len(quotes))
	}
	if !quotes[0].ChangeAbs.Equal(M(0.24)) {
		t.Errorf("changeAbs = %s; want 0.24", quotes[0].ChangeAbs.Decimal())
	}
}

func TestDecodeQuotes_SkipsUnparsableRecord(t *testing.T) {
	bad := quoteStatement("v_sh600519", 49, map[int]string{3: "not-a-number"})
	quotes, err := DecodeQuotes(wuliangye() + ";" + bad + ";")
	if err != nil {
		t.Fatalf("DecodeQuotes: %v", err)
	}
	if len(quotes) != 1 {
		t.Errorf("decoded %d quotes; want 1", len(quotes))
	}
}

func TestDecodeQuotes_OrderPreserved(t *testing.T) {
	a := quoteStatement("v_sh600519", 49, map[int]string{1: "贵州茅台", 2: "600519", 3: "1500", 4: "1490"})
	b := quoteStatement("v_sz000858", 49, map[int]string{1: "五粮液", 2: "000858", 3: "16.66", 4: "16.42"})
	quotes, err := DecodeQuotes(a + ";" + b + ";")
	if err != nil {
		t.Fatal(err)
	}
	if len(quotes) != 2 || quotes[0].Code != "600519" || quotes[1].Code != "000858" {
		t.Errorf("order not preserved: %v", quotes)
	}
}

func TestDecodeQuotes_EmptyResult(t *testing.T) {
	// a non-empty batch with zero usable records fails as a whole
	_, err := DecodeQuotes(quoteStatement("v_x", 10, nil) + ";")
	if !errors.Is(err, ErrEmptyResult) {
		t.Errorf("err = %v; want ErrEmptyResult", err)
	}

	// an empty response is not an error, just no quotes
	quotes, err := DecodeQuotes("")
	if err != nil || len(quotes) != 0 {
		t.Errorf("DecodeQuotes(\"\") = %v, %v", quotes, err)
	}
}
