// Package ledger holds the authoritative in-memory ledger for a session:
// the category and transaction collections, and the mutation operations
// that enforce their invariants.
//
// The store is session-scoped. It is created at startup, optionally seeded,
// and discarded on process exit; there is no cross-session durability.
package ledger

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"walletbuddy/internal/core"
)

var (
	// ErrNotFound is returned when a mutation references an identifier
	// absent from the store.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateCategory is returned when a category name collides,
	// case-insensitively, with an existing category.
	ErrDuplicateCategory = fmt.Errorf("%w: duplicate category name", core.ErrValidation)
)

// Store is the single shared ledger instance. All mutations are serialized
// behind one mutex; reads take a copy so a snapshot never observes later
// mutations.
type Store struct {
	mu           sync.Mutex
	categories   []core.Category
	transactions []core.Transaction
	generation   uint64
}

func New() *Store {
	return &Store{}
}

// AddCategory validates and inserts a new category. The name must be
// non-empty and unique among active categories (case-insensitive), and the
// budget non-negative. On failure the store is unchanged.
func (s *Store) AddCategory(name, icon, color string, monthlyBudget core.Money) (core.Category, error) {
	cat := core.Category{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(name),
		Icon:          icon,
		Color:         color,
		MonthlyBudget: monthlyBudget,
	}
	if err := cat.Validate(); err != nil {
		return core.Category{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.categories {
		if strings.EqualFold(existing.Name, cat.Name) {
			return core.Category{}, ErrDuplicateCategory
		}
	}
	s.categories = append(s.categories, cat)
	s.generation++
	return cat, nil
}

// RemoveCategory deletes the category with the given id. Transactions
// referencing it are not touched; their CategoryName becomes an orphaned
// reference.
func (s *Store) RemoveCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cat := range s.categories {
		if cat.ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			s.generation++
			return nil
		}
	}
	return fmt.Errorf("category %s: %w", id, ErrNotFound)
}

// AddTransaction validates and appends a new transaction. The category
// reference need not resolve to an existing category: categories may be
// added later, and orphaned data stays displayable.
func (s *Store) AddTransaction(name, categoryName string, amount core.Money, timestamp time.Time, paymentMethod, location, notes string) (core.Transaction, error) {
	tx := core.Transaction{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(name),
		CategoryName:  strings.TrimSpace(categoryName),
		Amount:        amount,
		Timestamp:     timestamp,
		PaymentMethod: paymentMethod,
		Location:      location,
		Notes:         notes,
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, tx)
	s.generation++
	return tx, nil
}

// RemoveTransaction deletes the transaction with the given id.
func (s *Store) RemoveTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, tx := range s.transactions {
		if tx.ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			s.generation++
			return nil
		}
	}
	return fmt.Errorf("transaction %s: %w", id, ErrNotFound)
}

// Snapshot returns insertion-ordered copies of both collections. The copies
// are isolated: later mutations of the store do not show through, and the
// caller may not corrupt the store by modifying the returned slices.
func (s *Store) Snapshot() ([]core.Category, []core.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cats := make([]core.Category, len(s.categories))
	copy(cats, s.categories)
	txs := make([]core.Transaction, len(s.transactions))
	copy(txs, s.transactions)
	return cats, txs
}

// Generation returns a counter that changes on every successful mutation.
// Callers keying cached projections on it never serve a stale view.
func (s *Store) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}
