package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type (
	// Money is a signed amount in the smallest currency unit (centavos).
	// Positive amounts are income, negative amounts are expenses.
	Money struct {
		Cents int64
	}

	// Category is a spending bucket with a monthly budget cap.
	// Icon and Color are opaque presentation tokens passed through to clients.
	Category struct {
		ID            string
		Name          string
		Icon          string
		Color         string
		MonthlyBudget Money
	}

	// Transaction is a single ledger entry. CategoryName references a
	// Category by name; the reference is weak and may point at a category
	// that no longer exists.
	Transaction struct {
		ID            string
		Name          string
		CategoryName  string
		Amount        Money
		Timestamp     time.Time
		PaymentMethod string
		Location      string
		Notes         string
	}
)

var (
	ErrValidation = errors.New("validation failed")

	ErrEmptyName        = fmt.Errorf("%w: empty name", ErrValidation)
	ErrNameTooLong      = fmt.Errorf("%w: name too long (max 200 characters)", ErrValidation)
	ErrZeroAmount       = fmt.Errorf("%w: zero amount", ErrValidation)
	ErrInvalidAmount    = fmt.Errorf("%w: invalid amount", ErrValidation)
	ErrNegativeBudget   = fmt.Errorf("%w: negative budget", ErrValidation)
	ErrInvalidTimestamp = fmt.Errorf("%w: invalid timestamp", ErrValidation)
)

// IsIncome reports whether the amount is a credit.
func (m Money) IsIncome() bool {
	return m.Cents > 0
}

// IsExpense reports whether the amount is a debit.
func (m Money) IsExpense() bool {
	return m.Cents < 0
}

// Abs returns the magnitude of the amount.
func (m Money) Abs() Money {
	if m.Cents < 0 {
		return Money{Cents: -m.Cents}
	}
	return m
}

func (c Category) Validate() error {
	if len(strings.TrimSpace(c.Name)) == 0 {
		return ErrEmptyName
	}
	if len(c.Name) > 200 {
		return ErrNameTooLong
	}
	if c.MonthlyBudget.Cents < 0 {
		return ErrNegativeBudget
	}
	return nil
}

func (t Transaction) Validate() error {
	if len(strings.TrimSpace(t.Name)) == 0 {
		return ErrEmptyName
	}
	if len(t.Name) > 200 {
		return ErrNameTooLong
	}
	if t.Amount.Cents == 0 {
		return ErrZeroAmount
	}
	if t.Timestamp.IsZero() {
		return ErrInvalidTimestamp
	}
	return nil
}
