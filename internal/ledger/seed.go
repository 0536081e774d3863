package ledger

import (
	"fmt"
	"time"

	"walletbuddy/internal/core"
)

// Seed populates an empty store with the sample ledger the app ships with:
// seven budgeted categories and the recent transactions shown on first run.
// Transaction timestamps are anchored to now so the most recent entries land
// on "today" and "yesterday" regardless of when the process starts.
func Seed(s *Store, now time.Time) error {
	seedCategories := []struct {
		name   string
		icon   string
		color  string
		budget int64
	}{
		{"Food", "fast-food", "#FF9500", 40000},
		{"Transportation", "car", "#5856D6", 20000},
		{"Shopping", "cart", "#FF2D55", 30000},
		{"Bills", "flash", "#5AC8FA", 50000},
		{"Entertainment", "film", "#AF52DE", 15000},
		{"Health", "fitness", "#FF9500", 20000},
		{"Education", "school", "#5AC8FA", 10000},
	}
	for _, c := range seedCategories {
		if _, err := s.AddCategory(c.name, c.icon, c.color, core.Money{Cents: c.budget}); err != nil {
			return fmt.Errorf("seed category %s: %w", c.name, err)
		}
	}

	at := func(daysAgo, hour, minute int) time.Time {
		day := now.AddDate(0, 0, -daysAgo)
		return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location())
	}

	seedTransactions := []struct {
		name     string
		category string
		cents    int64
		ts       time.Time
		method   string
		location string
		notes    string
	}{
		{"Grocery Store", "Food", -15250, at(0, 14, 30), "Credit Card", "Whole Foods Market", "Weekly grocery shopping"},
		{"Coffee Shop", "Food", -4000, at(0, 9, 15), "Debit Card", "Starbucks", "Morning coffee"},
		{"Salary Deposit", "Income", 240000, at(1, 9, 0), "Direct Deposit", "ABC Company", "Monthly salary"},
		{"Restaurant", "Food", -32000, at(1, 19, 45), "Credit Card", "Italian Bistro", "Dinner with friends"},
		{"Electric Bill", "Bills", -50480, at(2, 15, 20), "Bank Transfer", "City Power Co.", "Monthly electricity bill"},
		{"Gas Station", "Transportation", -25000, at(2, 11, 30), "Debit Card", "Shell Gas Station", "Filled up the tank"},
	}
	for _, tx := range seedTransactions {
		if _, err := s.AddTransaction(tx.name, tx.category, core.Money{Cents: tx.cents}, tx.ts, tx.method, tx.location, tx.notes); err != nil {
			return fmt.Errorf("seed transaction %s: %w", tx.name, err)
		}
	}
	return nil
}
