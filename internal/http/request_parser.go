// Package http provides HTTP server and handler implementations.
//
// This file implements utilities for parsing and validating HTTP request
// data: filter specifications from query strings and JSON mutation bodies.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"walletbuddy/internal/core"
	"walletbuddy/internal/query"
)

// ParseFilterSpec builds a query.FilterSpec from list query parameters.
// Unknown tab and sort values fall back to the inclusive defaults rather
// than failing: a stale client keeps working, it just sees more.
func ParseFilterSpec(values url.Values) query.FilterSpec {
	spec := query.FilterSpec{
		Tab:    query.TabAll,
		SortBy: query.SortByDate,
		Search: strings.TrimSpace(values.Get("search")),
	}

	switch query.Tab(strings.ToLower(values.Get("tab"))) {
	case query.TabIncome:
		spec.Tab = query.TabIncome
	case query.TabExpense:
		spec.Tab = query.TabExpense
	case query.TabTransfer:
		spec.Tab = query.TabTransfer
	}

	switch query.SortKey(strings.ToLower(values.Get("sort"))) {
	case query.SortByAmount:
		spec.SortBy = query.SortByAmount
	case query.SortByName:
		spec.SortBy = query.SortByName
	}

	// Category names arrive as repeated params or comma-separated; both
	// forms are accepted.
	for _, raw := range values["categories"] {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				spec.Categories = append(spec.Categories, name)
			}
		}
	}

	return spec
}

// TransactionRequest is the add-transaction form payload. Amount is a
// decimal string; Type optionally forces the direction the way the form's
// expense/income toggle does.
type TransactionRequest struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	Amount        string `json:"amount"`
	Type          string `json:"type"`
	Timestamp     string `json:"timestamp"`
	PaymentMethod string `json:"payment_method"`
	Location      string `json:"location"`
	Notes         string `json:"notes"`
}

// AmountCents resolves the decimal amount and direction toggle into
// signed cents.
func (tr TransactionRequest) AmountCents() (core.Money, error) {
	cents, err := core.ParseSignedDecimalToCents(tr.Amount)
	if err != nil {
		return core.Money{}, err
	}
	m := core.Money{Cents: cents}
	switch strings.ToLower(tr.Type) {
	case "expense":
		m = m.Abs()
		m.Cents = -m.Cents
	case "income":
		m = m.Abs()
	case "":
		// direction comes from the sign as parsed
	default:
		return core.Money{}, fmt.Errorf("%w: unknown transaction type %q", core.ErrValidation, tr.Type)
	}
	return m, nil
}

// ParsedTimestamp resolves the RFC 3339 timestamp, defaulting to now in
// the given zone when the field is absent.
func (tr TransactionRequest) ParsedTimestamp(now time.Time, loc *time.Location) (time.Time, error) {
	if strings.TrimSpace(tr.Timestamp) == "" {
		return now.In(loc), nil
	}
	ts, err := time.Parse(time.RFC3339, tr.Timestamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: timestamp must be RFC 3339", core.ErrInvalidTimestamp)
	}
	return ts.In(loc), nil
}

// CategoryRequest is the add-category form payload.
type CategoryRequest struct {
	Name          string `json:"name"`
	Icon          string `json:"icon"`
	Color         string `json:"color"`
	MonthlyBudget string `json:"monthly_budget"`
}

// BudgetCents resolves the decimal budget into non-negative cents. An
// empty budget means "no cap yet" and is allowed, unlike amounts.
func (cr CategoryRequest) BudgetCents() (core.Money, error) {
	raw := strings.TrimSpace(cr.MonthlyBudget)
	if raw == "" {
		return core.Money{}, nil
	}
	cents, err := core.ParseSignedDecimalToCents(raw)
	if errors.Is(err, core.ErrZeroAmount) {
		return core.Money{}, nil
	}
	if err != nil {
		return core.Money{}, fmt.Errorf("%w: invalid budget", core.ErrValidation)
	}
	if cents < 0 {
		return core.Money{}, core.ErrNegativeBudget
	}
	return core.Money{Cents: cents}, nil
}

// DecodeJSONBody decodes a JSON request body into dst, rejecting unknown
// fields so client typos surface instead of silently dropping data.
func DecodeJSONBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
