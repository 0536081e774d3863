package report

import (
	"time"

	"walletbuddy/internal/core"
)

// BudgetStatus is the "Budget Status" card: where the month's spending
// stands against the combined budget, and what is left per remaining day.
type BudgetStatus struct {
	Budget      core.Money
	Spent       core.Money
	Remaining   core.Money
	PercentUsed int
	DaysLeft    int
	DailyBudget core.Money
}

// MonthBudgetStatus derives the budget position for the calendar month
// containing now, in the given time zone. DaysLeft counts today through the
// end of the month; DailyBudget spreads the remaining budget over those
// days and is zero once the budget is exhausted.
func MonthBudgetStatus(sum Summary, now time.Time, loc *time.Location) BudgetStatus {
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)

	// Day count of the month: day zero of the next month.
	lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, loc).Day()
	daysLeft := lastDay - now.Day() + 1

	status := BudgetStatus{
		Budget:      sum.TotalBudget,
		Spent:       sum.TotalSpent,
		Remaining:   core.Money{Cents: sum.TotalBudget.Cents - sum.TotalSpent.Cents},
		PercentUsed: sum.OverallPercent,
		DaysLeft:    daysLeft,
	}
	if status.Remaining.Cents > 0 {
		status.DailyBudget.Cents = status.Remaining.Cents / int64(daysLeft)
	}
	return status
}

// DayAmount is one day's expense magnitude, for the daily spending chart.
type DayAmount struct {
	Day   time.Time
	Spent core.Money
}

// SpendingByDay sums expense magnitudes per calendar day over the last
// `days` days ending today, oldest first. Days without expenses appear
// with a zero amount so chart axes stay continuous.
func SpendingByDay(txs []core.Transaction, now time.Time, days int, loc *time.Location) []DayAmount {
	if loc == nil {
		loc = time.Local
	}
	if days <= 0 {
		return nil
	}
	now = now.In(loc)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, -(days - 1))

	series := make([]DayAmount, days)
	// Index by calendar date, not duration arithmetic, so DST shifts
	// cannot mis-bucket a day.
	byDate := make(map[string]int, days)
	for i := range series {
		series[i].Day = start.AddDate(0, 0, i)
		byDate[series[i].Day.Format("2006-01-02")] = i
	}
	for _, tx := range txs {
		if !tx.Amount.IsExpense() {
			continue
		}
		if i, ok := byDate[tx.Timestamp.In(loc).Format("2006-01-02")]; ok {
			series[i].Spent.Cents += tx.Amount.Abs().Cents
		}
	}
	return series
}
