package astock

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Quote is one decoded real-time record from the provider.
type Quote struct {
	Code          string
	Name          string
	Current       Money
	PrevClose     Money
	Open          Money
	High          Money
	Low           Money
	Volume        int64 // shares
	Amount        Money // normalized to currency units
	BestBidPrice  Money
	BestBidVolume int64
	BestAskPrice  Money
	BestAskVolume int64
	ChangeAbs     Money           // derived locally, never trusted from the wire
	ChangePct     decimal.Decimal // provider-reported
}

// The provider encodes a batch as statements separated by ';', each of the
// form key="f0~f1~...~fN". The key is not used for identity. Zero-based field
// offsets inside the quoted value:
const (
	fieldName      = 1
	fieldCode      = 2
	fieldCurrent   = 3
	fieldPrevClose = 4
	fieldOpen      = 5
	fieldVolume    = 6 // lots, 1 lot = 100 shares
	fieldBidPrice  = 9
	fieldBidVol    = 10
	fieldAskPrice  = 19
	fieldAskVol    = 20
	fieldChangePct = 32
	fieldHigh      = 33
	fieldLow       = 34
	fieldAmount    = 37 // unit is 10,000 currency units
)

// minQuoteFields is the minimum field count for a statement to be usable.
const minQuoteFields = 45

const statementTerminator = ";"

// DecodeQuotes parses a raw batch response into quotes, preserving response
// order. Malformed statements (too few fields, unparsable numbers) are
// skipped silently; the whole batch fails with ErrEmptyResult only when a
// non-empty response yields zero usable records.
func DecodeQuotes(raw string) ([]Quote, error) {
	var quotes []Quote
	for _, stmt := range strings.Split(raw, statementTerminator) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		q, ok := decodeStatement(stmt)
		if !ok {
			continue
		}
		quotes = append(quotes, q)
	}
	if len(quotes) == 0 && strings.TrimSpace(raw) != "" {
		return nil, fmt.Errorf("decoding %d bytes: %w", len(raw), ErrEmptyResult)
	}
	return quotes, nil
}

// decodeStatement parses a single key="..." statement.
func decodeStatement(stmt string) (Quote, bool) {
	start := strings.Index(stmt, `"`)
	end := strings.LastIndex(stmt, `"`)
	if start < 0 || end <= start {
		return Quote{}, false
	}
	fields := strings.Split(stmt[start+1:end], "~")
	if len(fields) < minQuoteFields {
		return Quote{}, false
	}

	var err error
	num := func(i int) decimal.Decimal {
		d, e := decimal.NewFromString(strings.TrimSpace(fields[i]))
		if e != nil && err == nil {
			err = e
		}
		return d
	}
	money := func(i int) Money { return Money{value: num(i)} }

	q := Quote{
		Name:          fields[fieldName],
		Code:          fields[fieldCode],
		Current:       money(fieldCurrent),
		PrevClose:     money(fieldPrevClose),
		Open:          money(fieldOpen),
		High:          money(fieldHigh),
		Low:           money(fieldLow),
		Volume:        num(fieldVolume).IntPart() * 100,
		Amount:        money(fieldAmount).MulInt(10000),
		BestBidPrice:  money(fieldBidPrice),
		BestBidVolume: num(fieldBidVol).IntPart(),
		BestAskPrice:  money(fieldAskPrice),
		BestAskVolume: num(fieldAskVol).IntPart(),
		ChangePct:     num(fieldChangePct),
	}
	if err != nil {
		return Quote{}, false
	}
	q.ChangeAbs = q.Current.Sub(q.PrevClose)
	return q, true
}
