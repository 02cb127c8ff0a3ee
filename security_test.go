package astock

import "testing"

func TestNormalizeCode(t *testing.T) {
	testCases := []struct {
		code string
		want string
	}{
		{"600519", "sh600519"},
		{"601318", "sh601318"},
		{"603259", "sh603259"},
		{"605499", "sh605499"},
		{"688981", "sh688981"},
		{"689009", "sh689009"},
		{"000858", "sz000858"},
		{"002594", "sz002594"},
		{"003816", "sz003816"},
		{"300750", "sz300750"},
		{"301236", "sz301236"},
		{"430047", "bj430047"},
		{"830799", "bj830799"},
		{"871981", "bj871981"},
		{"889000", "bj889000"},
		{"899050", "bj899050"},
		// unrecognized prefixes fall back to Shenzhen
		{"123456", "sz123456"},
		{"511880", "sz511880"},
		// already prefixed codes pass through
		{"sh600519", "sh600519"},
		{"SZ000858", "sz000858"},
	}
	for _, tc := range testCases {
		if got := NormalizeCode(tc.code); got != tc.want {
			t.Errorf("NormalizeCode(%q) = %q; want %q", tc.code, got, tc.want)
		}
	}
}

func TestBareCode(t *testing.T) {
	if got := BareCode("sh600519"); got != "600519" {
		t.Errorf("BareCode(sh600519) = %q", got)
	}
	if got := BareCode("600519"); got != "600519" {
		t.Errorf("BareCode(600519) = %q", got)
	}
}
