package core

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCategoryValidate(t *testing.T) {
	good := Category{ID: "c1", Name: "Food", Icon: "fast-food", Color: "#FF9500", MonthlyBudget: Money{Cents: 40000}}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	// Zero budget is a legitimate state: a category with no cap yet.
	if err := (Category{Name: "Misc"}).Validate(); err != nil {
		t.Fatalf("zero budget should validate, got %v", err)
	}

	cases := []struct {
		c    Category
		want error
	}{
		{Category{Name: ""}, ErrEmptyName},
		{Category{Name: "   "}, ErrEmptyName},
		{Category{Name: strings.Repeat("x", 201)}, ErrNameTooLong},
		{Category{Name: "Food", MonthlyBudget: Money{Cents: -1}}, ErrNegativeBudget},
	}
	for i, tc := range cases {
		err := tc.c.Validate()
		if !errors.Is(err, tc.want) {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, err)
		}
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("case %d error should wrap ErrValidation", i)
		}
	}
}

func TestTransactionValidate(t *testing.T) {
	now := time.Now()
	good := Transaction{
		ID:           "t1",
		Name:         "Grocery Store",
		CategoryName: "Food",
		Amount:       Money{Cents: -15250},
		Timestamp:    now,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	// An unresolvable or empty category reference is legal at creation.
	orphan := good
	orphan.CategoryName = ""
	if err := orphan.Validate(); err != nil {
		t.Fatalf("uncategorized transaction should validate, got %v", err)
	}

	cases := []struct {
		tx   Transaction
		want error
	}{
		{Transaction{Name: "", Amount: Money{Cents: 1}, Timestamp: now}, ErrEmptyName},
		{Transaction{Name: "x", Amount: Money{Cents: 0}, Timestamp: now}, ErrZeroAmount},
		{Transaction{Name: "x", Amount: Money{Cents: 1}}, ErrInvalidTimestamp},
	}
	for i, tc := range cases {
		if err := tc.tx.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, err)
		}
	}
}

func TestMoneyDirection(t *testing.T) {
	if !(Money{Cents: 100}).IsIncome() || (Money{Cents: 100}).IsExpense() {
		t.Fatal("positive amount should be income")
	}
	if !(Money{Cents: -100}).IsExpense() || (Money{Cents: -100}).IsIncome() {
		t.Fatal("negative amount should be expense")
	}
	if got := (Money{Cents: -5625}).Abs(); got.Cents != 5625 {
		t.Fatalf("abs: got %d", got.Cents)
	}
}
