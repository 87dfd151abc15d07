package tools

import (
	"time"
	// Embed the timezone database so Eastern-time conversions work in
	// containers without a system zoneinfo directory.
	_ "time/tzdata"
)

// MarketSession names a US equity trading session.
type MarketSession string

const (
	PreMarket     MarketSession = "pre_market"
	RegularMarket MarketSession = "regular_market"
	AfterHours    MarketSession = "after_hours"
	MarketClosed  MarketSession = "market_closed"
)

// eastern is always resolvable because the tzdata import embeds the database.
var eastern = mustLoadEastern()

func mustLoadEastern() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic("load America/New_York: " + err.Error())
	}
	return loc
}

// ClassifySession maps an Eastern wall-clock time to its trading session.
// Session boundaries: pre-market 04:00-09:30, regular 09:30-16:00,
// after-hours 16:00-20:00, closed otherwise.
func ClassifySession(hour, minute int) MarketSession {
	m := hour*60 + minute
	switch {
	case m >= 4*60 && m < 9*60+30:
		return PreMarket
	case m >= 9*60+30 && m < 16*60:
		return RegularMarket
	case m >= 16*60 && m < 20*60:
		return AfterHours
	default:
		return MarketClosed
	}
}

// ToEastern converts an instant to Eastern time, honoring DST.
func ToEastern(t time.Time) time.Time {
	return t.In(eastern)
}

// SessionAt classifies the trading session in effect at an instant.
func SessionAt(t time.Time) MarketSession {
	et := t.In(eastern)
	return ClassifySession(et.Hour(), et.Minute())
}

// FormatEastern renders an instant as an Eastern wall-clock timestamp.
func FormatEastern(t time.Time) string {
	return t.In(eastern).Format("2006-01-02 15:04:05") + " ET"
}
