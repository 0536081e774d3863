package ledger

import (
	"errors"
	"sync"
	"testing"
	"time"

	"walletbuddy/internal/core"
)

func TestAddCategoryRejectsDuplicates(t *testing.T) {
	s := New()
	if _, err := s.AddCategory("Food", "fast-food", "#FF9500", core.Money{Cents: 40000}); err != nil {
		t.Fatalf("first add: %v", err)
	}

	before, _ := s.Snapshot()
	gen := s.Generation()

	_, err := s.AddCategory("food", "cart", "#FF2D55", core.Money{Cents: 10000})
	if !errors.Is(err, ErrDuplicateCategory) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if !errors.Is(err, core.ErrValidation) {
		t.Fatal("duplicate error should be a validation failure")
	}

	// Store unchanged: same count, same contents, same generation.
	after, _ := s.Snapshot()
	if len(after) != len(before) || after[0] != before[0] {
		t.Fatal("failed add must leave the store untouched")
	}
	if s.Generation() != gen {
		t.Fatal("failed add must not bump the generation")
	}
}

func TestAddCategoryValidation(t *testing.T) {
	s := New()
	if _, err := s.AddCategory("", "grid", "#8E8E93", core.Money{}); !errors.Is(err, core.ErrEmptyName) {
		t.Fatalf("empty name: got %v", err)
	}
	if _, err := s.AddCategory("Pets", "paw", "#FFCC00", core.Money{Cents: -1}); !errors.Is(err, core.ErrNegativeBudget) {
		t.Fatalf("negative budget: got %v", err)
	}
}

func TestRemoveCategoryLeavesOrphans(t *testing.T) {
	s := New()
	cat, err := s.AddCategory("Food", "fast-food", "#FF9500", core.Money{Cents: 40000})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddTransaction("Grocery Store", "Food", core.Money{Cents: -15250}, time.Now(), "", "", ""); err != nil {
		t.Fatal(err)
	}

	if err := s.RemoveCategory(cat.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := s.RemoveCategory(cat.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second remove should be not found, got %v", err)
	}

	// No cascade: the transaction survives with its now-orphaned reference.
	cats, txs := s.Snapshot()
	if len(cats) != 0 {
		t.Fatalf("expected no categories, got %d", len(cats))
	}
	if len(txs) != 1 || txs[0].CategoryName != "Food" {
		t.Fatalf("orphaned transaction should keep its reference, got %+v", txs)
	}
}

func TestAddTransactionValidation(t *testing.T) {
	s := New()
	now := time.Now()

	if _, err := s.AddTransaction("x", "Food", core.Money{Cents: 0}, now, "", "", ""); !errors.Is(err, core.ErrZeroAmount) {
		t.Fatalf("zero amount: got %v", err)
	}
	if _, err := s.AddTransaction("", "Food", core.Money{Cents: 1}, now, "", "", ""); !errors.Is(err, core.ErrEmptyName) {
		t.Fatalf("empty name: got %v", err)
	}
	if _, err := s.AddTransaction("x", "Food", core.Money{Cents: 1}, time.Time{}, "", "", ""); !errors.Is(err, core.ErrInvalidTimestamp) {
		t.Fatalf("zero timestamp: got %v", err)
	}

	// Unresolvable category reference is accepted at insertion time.
	if _, err := s.AddTransaction("Salary Deposit", "Income", core.Money{Cents: 240000}, now, "Direct Deposit", "", ""); err != nil {
		t.Fatalf("orphan reference should be allowed: %v", err)
	}
}

func TestRemoveTransaction(t *testing.T) {
	s := New()
	tx, err := s.AddTransaction("Coffee Shop", "Food", core.Money{Cents: -4000}, time.Now(), "Debit Card", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveTransaction(tx.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := s.RemoveTransaction(tx.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s := New()
	if _, err := s.AddTransaction("a", "", core.Money{Cents: -100}, time.Now(), "", "", ""); err != nil {
		t.Fatal(err)
	}

	_, txs := s.Snapshot()
	if _, err := s.AddTransaction("b", "", core.Money{Cents: -200}, time.Now(), "", "", ""); err != nil {
		t.Fatal(err)
	}
	if len(txs) != 1 {
		t.Fatal("snapshot must not reflect later mutations")
	}

	// Mutating the returned slice must not corrupt the store.
	txs[0].Name = "mangled"
	_, fresh := s.Snapshot()
	if fresh[0].Name != "a" {
		t.Fatal("snapshot must be a copy, not a shared reference")
	}
}

func TestConcurrentMutations(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.AddTransaction("tx", "Food", core.Money{Cents: -100}, time.Now(), "", "", "")
		}()
	}
	wg.Wait()

	_, txs := s.Snapshot()
	if len(txs) != 50 {
		t.Fatalf("expected 50 transactions, got %d", len(txs))
	}
	seen := make(map[string]bool, len(txs))
	for _, tx := range txs {
		if seen[tx.ID] {
			t.Fatalf("duplicate id %s", tx.ID)
		}
		seen[tx.ID] = true
	}
}

func TestSeed(t *testing.T) {
	s := New()
	now := time.Date(2025, 3, 16, 18, 0, 0, 0, time.UTC)
	if err := Seed(s, now); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cats, txs := s.Snapshot()
	if len(cats) != 7 {
		t.Fatalf("expected 7 categories, got %d", len(cats))
	}
	if len(txs) != 6 {
		t.Fatalf("expected 6 transactions, got %d", len(txs))
	}
	// Seeding twice collides on category names.
	if err := Seed(s, now); err == nil {
		t.Fatal("re-seeding should fail on duplicate categories")
	}
}
