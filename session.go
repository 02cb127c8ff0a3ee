package astock

import "time"

// SessionReason explains a session-gate decision.
type SessionReason string

const (
	ReasonWeekend   SessionReason = "WEEKEND"
	ReasonOffHours  SessionReason = "OFF_HOURS"
	ReasonInSession SessionReason = "IN_SESSION"
)

// SessionStatus is the result of the session gate.
type SessionStatus struct {
	InSession bool
	Reason    SessionReason
}

// A-share trading windows in minutes since midnight, both endpoints included.
var tradingWindows = [][2]int{
	{570, 690}, // 09:30 - 11:30
	{780, 900}, // 13:00 - 15:00
}

// IsTradingSession reports whether now falls inside an A-share trading
// session. It is a pure function of the calendar weekday and the
// minutes-since-midnight of now.
func IsTradingSession(now time.Time) SessionStatus {
	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		return SessionStatus{Reason: ReasonWeekend}
	}
	minutes := now.Hour()*60 + now.Minute()
	for _, w := range tradingWindows {
		if minutes >= w[0] && minutes <= w[1] {
			return SessionStatus{InSession: true, Reason: ReasonInSession}
		}
	}
	return SessionStatus{Reason: ReasonOffHours}
}
