// Package http provides HTTP server and handler implementations.
//
// This file defines the JSON projections the screens consume and the
// conversions from domain values into them. Views carry pre-formatted
// display strings alongside raw cents so clients render without money
// arithmetic of their own.
package http

import (
	"time"

	"walletbuddy/internal/core"
	"walletbuddy/internal/query"
	"walletbuddy/internal/report"
)

// Fallback presentation tokens for transactions whose category no longer
// resolves, and for credits which have no category of their own.
const (
	orphanIcon  = "ellipse"
	orphanColor = "#8E8E93"
	incomeIcon  = "cash"
	incomeColor = "#4CD964"
)

type TransactionView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Icon          string `json:"icon"`
	Color         string `json:"color"`
	AmountCents   int64  `json:"amount_cents"`
	Amount        string `json:"amount"`
	Time          string `json:"time"`
	Timestamp     string `json:"timestamp"`
	PaymentMethod string `json:"payment_method,omitempty"`
	Location      string `json:"location,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type TransactionGroupView struct {
	Label        string            `json:"label"`
	Transactions []TransactionView `json:"transactions"`
}

type CategoryView struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Icon             string `json:"icon"`
	Color            string `json:"color"`
	BudgetCents      int64  `json:"budget_cents"`
	Budget           string `json:"budget"`
	SpentCents       int64  `json:"spent_cents"`
	Spent            string `json:"spent"`
	TransactionCount int    `json:"transaction_count"`
	PercentUsed      int    `json:"percent_used"`
}

// OverviewView is the home screen: balance card, month flow, top
// categories, recent activity.
type OverviewView struct {
	BalanceCents  int64             `json:"balance_cents"`
	Balance       string            `json:"balance"`
	IncomeCents   int64             `json:"income_cents"`
	Income        string            `json:"income"`
	ExpenseCents  int64             `json:"expense_cents"`
	Expense       string            `json:"expense"`
	TopCategories []CategoryView    `json:"top_categories"`
	Recent        []TransactionView `json:"recent_transactions"`
}

// BudgetStatusView is the analytics budget card.
type BudgetStatusView struct {
	BudgetCents    int64  `json:"budget_cents"`
	Budget         string `json:"budget"`
	SpentCents     int64  `json:"spent_cents"`
	Spent          string `json:"spent"`
	RemainingCents int64  `json:"remaining_cents"`
	Remaining      string `json:"remaining"`
	PercentUsed    int    `json:"percent_used"`
	DaysLeft       int    `json:"days_left"`
	DailyCents     int64  `json:"daily_budget_cents"`
	Daily          string `json:"daily_budget"`
}

type DaySpendingView struct {
	Day        string `json:"day"`
	Label      string `json:"label"`
	SpentCents int64  `json:"spent_cents"`
	Spent      string `json:"spent"`
}

// CategoryShareView is one slice of the analytics breakdown: a category's
// spending and its share of total categorized spending.
type CategoryShareView struct {
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	SpentCents   int64  `json:"spent_cents"`
	Spent        string `json:"spent"`
	SharePercent int    `json:"share_percent"`
}

// AnalyticsView is the analytics screen: budget status, seven-day
// spending chart, category breakdown.
type AnalyticsView struct {
	Budget     BudgetStatusView    `json:"budget_status"`
	Daily      []DaySpendingView   `json:"daily_spending"`
	Breakdown  []CategoryShareView `json:"category_breakdown"`
	TotalSpent string              `json:"total_spent"`
}

// categoryIndex resolves presentation tokens for transactions: exact name
// match, same policy as the aggregator.
func categoryIndex(cats []core.Category) map[string]core.Category {
	idx := make(map[string]core.Category, len(cats))
	for _, c := range cats {
		idx[c.Name] = c
	}
	return idx
}

func transactionView(tx core.Transaction, idx map[string]core.Category, loc *time.Location) TransactionView {
	icon, color := orphanIcon, orphanColor
	if c, ok := idx[tx.CategoryName]; ok {
		icon, color = c.Icon, c.Color
	} else if tx.Amount.IsIncome() {
		icon, color = incomeIcon, incomeColor
	}

	local := tx.Timestamp.In(loc)
	return TransactionView{
		ID:            tx.ID,
		Name:          tx.Name,
		Category:      tx.CategoryName,
		Icon:          icon,
		Color:         color,
		AmountCents:   tx.Amount.Cents,
		Amount:        core.FormatSignedPesos(tx.Amount),
		Time:          local.Format("3:04 PM"),
		Timestamp:     local.Format(time.RFC3339),
		PaymentMethod: tx.PaymentMethod,
		Location:      tx.Location,
		Notes:         tx.Notes,
	}
}

func transactionViews(txs []core.Transaction, idx map[string]core.Category, loc *time.Location) []TransactionView {
	views := make([]TransactionView, len(txs))
	for i, tx := range txs {
		views[i] = transactionView(tx, idx, loc)
	}
	return views
}

func groupViews(groups []query.DayGroup, idx map[string]core.Category, now time.Time, loc *time.Location) []TransactionGroupView {
	views := make([]TransactionGroupView, len(groups))
	for i, g := range groups {
		views[i] = TransactionGroupView{
			Label:        query.DayLabel(g.Day, now, loc),
			Transactions: transactionViews(g.Transactions, idx, loc),
		}
	}
	return views
}

func categoryView(cs report.CategorySummary) CategoryView {
	return CategoryView{
		ID:               cs.Category.ID,
		Name:             cs.Category.Name,
		Icon:             cs.Category.Icon,
		Color:            cs.Category.Color,
		BudgetCents:      cs.Category.MonthlyBudget.Cents,
		Budget:           core.FormatPesos(cs.Category.MonthlyBudget),
		SpentCents:       cs.Spent.Cents,
		Spent:            core.FormatPesos(cs.Spent),
		TransactionCount: cs.TransactionCount,
		PercentUsed:      cs.PercentUsed,
	}
}

func categoryViews(summaries []report.CategorySummary) []CategoryView {
	views := make([]CategoryView, len(summaries))
	for i, cs := range summaries {
		views[i] = categoryView(cs)
	}
	return views
}

func budgetStatusView(status report.BudgetStatus) BudgetStatusView {
	return BudgetStatusView{
		BudgetCents:    status.Budget.Cents,
		Budget:         core.FormatPesos(status.Budget),
		SpentCents:     status.Spent.Cents,
		Spent:          core.FormatPesos(status.Spent),
		RemainingCents: status.Remaining.Cents,
		Remaining:      core.FormatPesos(status.Remaining),
		PercentUsed:    status.PercentUsed,
		DaysLeft:       status.DaysLeft,
		DailyCents:     status.DailyBudget.Cents,
		Daily:          core.FormatPesos(status.DailyBudget),
	}
}

func daySpendingViews(days []report.DayAmount) []DaySpendingView {
	views := make([]DaySpendingView, len(days))
	for i, d := range days {
		views[i] = DaySpendingView{
			Day:        d.Day.Format("2006-01-02"),
			Label:      d.Day.Format("Mon"),
			SpentCents: d.Spent.Cents,
			Spent:      core.FormatPesos(d.Spent),
		}
	}
	return views
}
