// Package report computes the summary figures the app's cards, charts, and
// progress bars render: per-category spend against budget, overall totals,
// and spending rankings. Like the query package it is a pure projection
// over a ledger snapshot.
package report

import (
	"sort"
	"strings"

	"walletbuddy/internal/core"
)

// CategorySummary is one category enriched with figures derived from the
// current transaction set. The derived fields are never stored; they are
// recomputed on every call.
type CategorySummary struct {
	Category         core.Category
	Spent            core.Money
	TransactionCount int
	PercentUsed      int
}

// Summary is the full aggregation of one snapshot.
type Summary struct {
	// Categories preserves the input category order.
	Categories []CategorySummary

	TotalBudget  core.Money
	TotalSpent   core.Money // expenses attributed to an active category
	TotalIncome  core.Money // all credits, category-independent
	TotalExpense core.Money // magnitude of all debits, orphaned included
	// OrphanedSpent is the expense magnitude carried by transactions whose
	// category reference no longer resolves. TotalSpent + OrphanedSpent
	// always equals TotalExpense.
	OrphanedSpent  core.Money
	Balance        core.Money // TotalIncome - TotalExpense
	OverallPercent int
}

// Summarize derives per-category and overall figures from a snapshot.
// Category attribution matches transaction CategoryName against active
// category names exactly; a transaction that matches no category counts
// toward the orphaned bucket and no category's totals.
//
// A zero monthly budget yields PercentUsed 0 rather than an error: a
// category with no cap yet is a legitimate data state, not a failure.
func Summarize(cats []core.Category, txs []core.Transaction) Summary {
	sum := Summary{Categories: make([]CategorySummary, len(cats))}

	index := make(map[string]int, len(cats))
	for i, cat := range cats {
		sum.Categories[i] = CategorySummary{Category: cat}
		index[cat.Name] = i
		sum.TotalBudget.Cents += cat.MonthlyBudget.Cents
	}

	for _, tx := range txs {
		i, resolved := index[tx.CategoryName]
		if resolved {
			sum.Categories[i].TransactionCount++
		}
		switch {
		case tx.Amount.IsIncome():
			sum.TotalIncome.Cents += tx.Amount.Cents
		case tx.Amount.IsExpense():
			spent := tx.Amount.Abs().Cents
			sum.TotalExpense.Cents += spent
			if resolved {
				sum.Categories[i].Spent.Cents += spent
				sum.TotalSpent.Cents += spent
			} else {
				sum.OrphanedSpent.Cents += spent
			}
		}
	}

	for i := range sum.Categories {
		c := &sum.Categories[i]
		c.PercentUsed = percentOf(c.Spent.Cents, c.Category.MonthlyBudget.Cents)
	}
	sum.OverallPercent = percentOf(sum.TotalSpent.Cents, sum.TotalBudget.Cents)
	sum.Balance.Cents = sum.TotalIncome.Cents - sum.TotalExpense.Cents
	return sum
}

// TopCategories returns the n highest-spending categories. The sort is
// stable: categories with equal spend keep their relative input order.
func TopCategories(sum Summary, n int) []CategorySummary {
	if n < 0 {
		n = 0
	}
	ranked := make([]CategorySummary, len(sum.Categories))
	copy(ranked, sum.Categories)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Spent.Cents > ranked[j].Spent.Cents
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// FilterCategories narrows summaries by a case-insensitive substring match
// on the category name; an empty search keeps everything.
func FilterCategories(summaries []CategorySummary, search string) []CategorySummary {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return summaries
	}
	out := make([]CategorySummary, 0, len(summaries))
	for _, cs := range summaries {
		if strings.Contains(strings.ToLower(cs.Category.Name), needle) {
			out = append(out, cs)
		}
	}
	return out
}

// percentOf is half-up integer percentage, with the explicit zero-divisor
// policy of returning 0.
func percentOf(part, whole int64) int {
	if whole <= 0 {
		return 0
	}
	return int((part*100 + whole/2) / whole)
}
