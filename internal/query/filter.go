// Package query derives filtered, sorted, and day-grouped views over a
// ledger snapshot. Every function is a pure projection: it takes the
// snapshot as input, never mutates it, and recomputes fully on each call.
package query

import (
	"sort"
	"strings"

	"walletbuddy/internal/core"
)

// Tab selects a direction slice of the ledger.
type Tab string

const (
	TabAll      Tab = "all"
	TabIncome   Tab = "income"
	TabExpense  Tab = "expense"
	TabTransfer Tab = "transfer"
)

// SortKey orders the filtered result. SortByDate is the default and the
// only order compatible with day grouping.
type SortKey string

const (
	SortByDate   SortKey = "date"
	SortByAmount SortKey = "amount"
	SortByName   SortKey = "name"
)

// Transfers are tab-selected by category name, not by amount sign.
const transferCategory = "Transfer"

// FilterSpec describes one view request. The dimensions combine with
// logical AND; zero values of each dimension are inclusive.
type FilterSpec struct {
	Tab        Tab
	Search     string
	Categories []string
	SortBy     SortKey
}

// Matches reports whether a single transaction passes every dimension of
// the spec.
func (f FilterSpec) Matches(tx core.Transaction) bool {
	return f.matchesTab(tx) && f.matchesSearch(tx) && f.matchesCategories(tx)
}

func (f FilterSpec) matchesTab(tx core.Transaction) bool {
	switch f.Tab {
	case TabIncome:
		return tx.Amount.IsIncome()
	case TabExpense:
		return tx.Amount.IsExpense()
	case TabTransfer:
		return tx.CategoryName == transferCategory
	default: // TabAll and unset
		return true
	}
}

func (f FilterSpec) matchesSearch(tx core.Transaction) bool {
	needle := strings.ToLower(strings.TrimSpace(f.Search))
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(tx.Name), needle) ||
		strings.Contains(strings.ToLower(tx.CategoryName), needle)
}

// An empty category set means "no category restriction", never "match
// nothing".
func (f FilterSpec) matchesCategories(tx core.Transaction) bool {
	if len(f.Categories) == 0 {
		return true
	}
	for _, name := range f.Categories {
		if tx.CategoryName == name {
			return true
		}
	}
	return false
}

// Apply filters and sorts a snapshot's transactions according to the spec,
// returning a new flat slice. The input is left untouched.
//
// Every sort falls back to descending timestamp on ties, so the result is a
// deterministic total order regardless of storage order.
func Apply(txs []core.Transaction, spec FilterSpec) []core.Transaction {
	out := make([]core.Transaction, 0, len(txs))
	for _, tx := range txs {
		if spec.Matches(tx) {
			out = append(out, tx)
		}
	}

	switch spec.SortBy {
	case SortByAmount:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Amount.Cents != out[j].Amount.Cents {
				return out[i].Amount.Cents > out[j].Amount.Cents
			}
			return out[i].Timestamp.After(out[j].Timestamp)
		})
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name)
			if a != b {
				return a < b
			}
			return out[i].Timestamp.After(out[j].Timestamp)
		})
	default: // SortByDate and unset
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Timestamp.After(out[j].Timestamp)
		})
	}
	return out
}
