package astock

import (
	"fmt"
	"time"
)

// Action is the side of a trade.
type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
)

// ParseAction parses a string into an Action.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionBuy, ActionSell:
		return Action(s), nil
	default:
		return "", fmt.Errorf("unknown action: %q", s)
	}
}

// TradeRecord is one immutable ledger line. Records are append-only; there is
// no update or delete.
type TradeRecord struct {
	Time     time.Time `json:"time"`
	Code     string    `json:"code"`
	Name     string    `json:"name"`
	Action   Action    `json:"action"`
	Quantity Quantity  `json:"quantity"`
	Price    Money     `json:"price"`
	Total    Money     `json:"total"`
}

// TradeLog is the append-only trade ledger.
type TradeLog struct {
	records []TradeRecord
	now     func() time.Time
}

// NewTradeLog returns an empty ledger.
func NewTradeLog() *TradeLog {
	return &TradeLog{now: time.Now}
}

// Record appends a trade with total = quantity x price and a second-resolution
// timestamp. It returns the appended record.
func (l *TradeLog) Record(code, name string, action Action, quantity Quantity, price Money) (TradeRecord, error) {
	if !quantity.IsPositive() {
		return TradeRecord{}, fmt.Errorf("quantity must be positive, got %s", quantity)
	}
	if price.IsNegative() {
		return TradeRecord{}, fmt.Errorf("price must not be negative, got %s", price)
	}
	rec := TradeRecord{
		Time:     l.now().Truncate(time.Second),
		Code:     code,
		Name:     name,
		Action:   action,
		Quantity: quantity,
		Price:    price,
		Total:    price.Mul(quantity),
	}
	l.records = append(l.records, rec)
	return rec, nil
}

// History returns the records matching code, in insertion order.
func (l *TradeLog) History(code string) []TradeRecord {
	var out []TradeRecord
	for _, r := range l.records {
		if r.Code == code {
			out = append(out, r)
		}
	}
	return out
}

// Records returns all ledger lines in insertion order.
func (l *TradeLog) Records() []TradeRecord { return l.records }

// Len returns the number of ledger lines.
func (l *TradeLog) Len() int { return len(l.records) }
