package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletbuddy/internal/core"
)

var manila = time.FixedZone("Asia/Manila", 8*3600)

func tx(id, name, category string, cents int64, ts time.Time) core.Transaction {
	return core.Transaction{ID: id, Name: name, CategoryName: category, Amount: core.Money{Cents: cents}, Timestamp: ts}
}

func sampleLedger() []core.Transaction {
	day := func(d, h, m int) time.Time {
		return time.Date(2025, 3, d, h, m, 0, 0, manila)
	}
	return []core.Transaction{
		tx("t1", "Grocery Store", "Food", -15250, day(16, 14, 30)),
		tx("t2", "Coffee Shop", "Food", -4000, day(16, 9, 15)),
		tx("t3", "Salary Deposit", "Income", 240000, day(15, 9, 0)),
		tx("t4", "Restaurant", "Food", -32000, day(15, 19, 45)),
		tx("t5", "Electric Bill", "Bills", -50480, day(14, 15, 20)),
		tx("t6", "Gas Station", "Transportation", -25000, day(14, 11, 30)),
		tx("t7", "Savings Move", "Transfer", -10000, day(13, 10, 0)),
	}
}

func ids(txs []core.Transaction) []string {
	out := make([]string, len(txs))
	for i, t := range txs {
		out[i] = t.ID
	}
	return out
}

func TestTabFilters(t *testing.T) {
	txs := sampleLedger()

	assert.Len(t, Apply(txs, FilterSpec{Tab: TabAll}), 7)
	assert.Equal(t, []string{"t3"}, ids(Apply(txs, FilterSpec{Tab: TabIncome})))
	assert.Equal(t, []string{"t7"}, ids(Apply(txs, FilterSpec{Tab: TabTransfer})))

	expenses := Apply(txs, FilterSpec{Tab: TabExpense})
	assert.Len(t, expenses, 6)
	for _, e := range expenses {
		assert.True(t, e.Amount.IsExpense())
	}
}

func TestSearchIsCaseInsensitiveOnNameOrCategory(t *testing.T) {
	txs := sampleLedger()

	assert.Equal(t, []string{"t2"}, ids(Apply(txs, FilterSpec{Search: "coffee"})))
	// Category names match too.
	assert.Equal(t, []string{"t1", "t2", "t4"}, ids(Apply(txs, FilterSpec{Search: "FOOD"})))
	// Empty search matches everything.
	assert.Len(t, Apply(txs, FilterSpec{Search: "   "}), 7)
	assert.Empty(t, Apply(txs, FilterSpec{Search: "no such thing"}))
}

func TestEmptyCategorySetIsInclusive(t *testing.T) {
	txs := sampleLedger()

	unrestricted := Apply(txs, FilterSpec{})
	emptySet := Apply(txs, FilterSpec{Categories: []string{}})
	assert.Equal(t, ids(unrestricted), ids(emptySet))

	only := Apply(txs, FilterSpec{Categories: []string{"Bills", "Transportation"}})
	assert.Equal(t, []string{"t5", "t6"}, ids(only))
}

func TestDimensionsCombineWithAND(t *testing.T) {
	txs := sampleLedger()
	spec := FilterSpec{Tab: TabExpense, Search: "s", Categories: []string{"Food", "Transportation"}}

	result := Apply(txs, spec)
	require.NotEmpty(t, result)
	for _, r := range result {
		assert.True(t, spec.Matches(r), "every result must match all dimensions: %s", r.ID)
		assert.True(t, r.Amount.IsExpense())
	}
	// "Electric Bill" matches search+tab but not the category set.
	assert.NotContains(t, ids(result), "t5")
}

func TestApplyIsIdempotentAndNonMutating(t *testing.T) {
	txs := sampleLedger()
	spec := FilterSpec{Tab: TabExpense, SortBy: SortByAmount}

	first := Apply(txs, spec)
	second := Apply(txs, spec)
	assert.Equal(t, first, second)

	// Input order is untouched.
	assert.Equal(t, "t1", txs[0].ID)
	assert.Equal(t, "t7", txs[6].ID)
}

func TestSortOrders(t *testing.T) {
	txs := sampleLedger()

	byDate := Apply(txs, FilterSpec{SortBy: SortByDate})
	assert.Equal(t, []string{"t1", "t2", "t4", "t3", "t5", "t6", "t7"}, ids(byDate))

	byAmount := Apply(txs, FilterSpec{SortBy: SortByAmount})
	assert.Equal(t, "t3", byAmount[0].ID, "largest signed amount first")
	assert.Equal(t, "t5", byAmount[len(byAmount)-1].ID)

	byName := Apply(txs, FilterSpec{SortBy: SortByName})
	assert.Equal(t, "Coffee Shop", byName[0].Name)
}

func TestSortTieBreaksOnTimestamp(t *testing.T) {
	early := time.Date(2025, 3, 10, 8, 0, 0, 0, manila)
	late := time.Date(2025, 3, 12, 8, 0, 0, 0, manila)
	txs := []core.Transaction{
		tx("old", "Lunch", "Food", -5000, early),
		tx("new", "lunch", "Food", -5000, late),
	}

	byAmount := Apply(txs, FilterSpec{SortBy: SortByAmount})
	assert.Equal(t, []string{"new", "old"}, ids(byAmount))

	// Name compare is case-insensitive, so these tie and fall back to time.
	byName := Apply(txs, FilterSpec{SortBy: SortByName})
	assert.Equal(t, []string{"new", "old"}, ids(byName))
}

func TestGroupByDayCompleteness(t *testing.T) {
	txs := sampleLedger()
	filtered := Apply(txs, FilterSpec{Tab: TabExpense})
	groups := GroupByDay(filtered, manila)

	// Union of the groups is exactly the filtered set: no duplicates, no
	// omissions, no empty groups.
	var regrouped []string
	for _, g := range groups {
		require.NotEmpty(t, g.Transactions)
		regrouped = append(regrouped, ids(g.Transactions)...)
	}
	assert.Equal(t, ids(filtered), regrouped)

	// Newest day first, and every member shares the group's day.
	require.Len(t, groups, 4)
	assert.True(t, groups[0].Day.After(groups[1].Day))
	for _, g := range groups {
		for _, tr := range g.Transactions {
			y, m, d := tr.Timestamp.In(manila).Date()
			gy, gm, gd := g.Day.Date()
			assert.True(t, y == gy && m == gm && d == gd)
		}
	}
}

func TestExpenseTabGroupedScenario(t *testing.T) {
	// Categories Food(400)/Transport(200); expenses 150+50 Food, 80
	// Transport, plus an uncategorized salary that must not appear.
	day := func(d int) time.Time { return time.Date(2025, 3, d, 12, 0, 0, 0, manila) }
	txs := []core.Transaction{
		tx("a", "Groceries", "Food", -15000, day(16)),
		tx("b", "Snacks", "Food", -5000, day(16)),
		tx("c", "Salary", "", 200000, day(15)),
		tx("d", "Bus Fare", "Transport", -8000, day(14)),
	}

	filtered := Apply(txs, FilterSpec{Tab: TabExpense, Search: "", Categories: nil, SortBy: SortByDate})
	require.Len(t, filtered, 3)

	groups := GroupByDay(filtered, manila)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"a", "b"}, ids(groups[0].Transactions))
	assert.Equal(t, []string{"d"}, ids(groups[1].Transactions))
}

func TestDayLabel(t *testing.T) {
	now := time.Date(2025, 3, 16, 18, 0, 0, 0, manila)

	assert.Equal(t, "Today, March 16", DayLabel(now, now, manila))
	assert.Equal(t, "Yesterday, March 15", DayLabel(now.AddDate(0, 0, -1), now, manila))
	assert.Equal(t, "March 14", DayLabel(now.AddDate(0, 0, -2), now, manila))
	assert.Equal(t, "December 31, 2024", DayLabel(time.Date(2024, 12, 31, 23, 0, 0, 0, manila), now, manila))
}
