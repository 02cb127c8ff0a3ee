package astock

import "strings"

// Security identifies a tracked instrument: the numeric code the user typed,
// and its display name.
type Security struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// exchange markers used by the quote provider.
const (
	ExchangeShanghai = "sh"
	ExchangeShenzhen = "sz"
	ExchangeBeijing  = "bj"
)

// prefix tables mapping a bare numeric code to its exchange.
var (
	shanghaiPrefixes = []string{"600", "601", "603", "605", "688", "689"}
	shenzhenPrefixes = []string{"000", "002", "003", "300", "301"}
	beijingPrefixes  = []string{"430", "830", "87", "88", "89"}
)

// NormalizeCode prefixes a bare numeric code with its exchange marker, e.g.
// "600519" -> "sh600519". Codes already carrying a marker are returned as is.
// Unrecognized prefixes fall back to Shenzhen; that fallback is a documented
// contract, not an error.
func NormalizeCode(code string) string {
	lower := strings.ToLower(code)
	for _, ex := range []string{ExchangeShanghai, ExchangeShenzhen, ExchangeBeijing} {
		if strings.HasPrefix(lower, ex) {
			return lower
		}
	}
	for _, p := range shanghaiPrefixes {
		if strings.HasPrefix(code, p) {
			return ExchangeShanghai + code
		}
	}
	for _, p := range beijingPrefixes {
		if strings.HasPrefix(code, p) {
			return ExchangeBeijing + code
		}
	}
	for _, p := range shenzhenPrefixes {
		if strings.HasPrefix(code, p) {
			return ExchangeShenzhen + code
		}
	}
	return ExchangeShenzhen + code
}

// BareCode strips a leading exchange marker, if any.
func BareCode(code string) string {
	lower := strings.ToLower(code)
	for _, ex := range []string{ExchangeShanghai, ExchangeShenzhen, ExchangeBeijing} {
		if strings.HasPrefix(lower, ex) {
			return code[len(ex):]
		}
	}
	return code
}
