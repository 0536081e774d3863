package query

import (
	"time"

	"walletbuddy/internal/core"
)

// DayGroup is one calendar day's worth of transactions, internally ordered
// most recent first.
type DayGroup struct {
	Day          time.Time
	Transactions []core.Transaction
}

// GroupByDay partitions a date-descending transaction slice into contiguous
// calendar-day groups in the given time zone, newest day first. A day with
// no surviving transactions is simply absent; groups are never empty.
//
// The input must already be in SortByDate order (Apply's default); grouping
// any other order would scatter one day across several groups.
func GroupByDay(txs []core.Transaction, loc *time.Location) []DayGroup {
	if loc == nil {
		loc = time.Local
	}
	var groups []DayGroup
	for _, tx := range txs {
		day := truncateToDay(tx.Timestamp, loc)
		if n := len(groups); n > 0 && groups[n-1].Day.Equal(day) {
			groups[n-1].Transactions = append(groups[n-1].Transactions, tx)
			continue
		}
		groups = append(groups, DayGroup{Day: day, Transactions: []core.Transaction{tx}})
	}
	return groups
}

// DayLabel renders a group heading the way the app displays it:
// "Today, March 16", "Yesterday, March 15", "March 14", and with a year
// suffix once the day falls outside the current year.
func DayLabel(day, now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	day = truncateToDay(day, loc)
	today := truncateToDay(now, loc)

	date := day.Format("January 2")
	switch {
	case day.Equal(today):
		return "Today, " + date
	case day.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday, " + date
	case day.Year() != today.Year():
		return day.Format("January 2, 2006")
	default:
		return date
	}
}

func truncateToDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
