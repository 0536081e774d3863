package http

import (
	"errors"
	"net/http"
	"strings"

	"walletbuddy/internal/core"
	"walletbuddy/internal/ledger"
	applog "walletbuddy/internal/log"
	"walletbuddy/internal/query"
)

// writeDomainError maps the domain error taxonomy onto HTTP statuses:
// validation failures are the client's fault with a usable message,
// missing records are 404, anything else is opaque.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrValidation):
		UnprocessableEntityError(err.Error()).Write(w)
	case errors.Is(err, ledger.ErrNotFound):
		NotFoundError(err.Error()).Write(w)
	default:
		s.logger.ErrorContext(r.Context(), "Request failed",
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldError, err)
		InternalServerError("internal error").Write(w)
	}
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listTransactions(w, r)
	case http.MethodPost:
		s.createTransaction(w, r)
	default:
		MethodNotAllowedError("GET, POST").Write(w)
	}
}

// listTransactions returns the filtered transaction list, grouped by day
// unless grouped=false is requested.
func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	spec := ParseFilterSpec(r.URL.Query())
	cats, txs := s.store.Snapshot()
	idx := categoryIndex(cats)

	filtered := query.Apply(txs, spec)

	if r.URL.Query().Get("grouped") == "false" {
		NewJSONResponse().Data(transactionViews(filtered, idx, s.loc)).Write(w)
		return
	}

	if spec.SortBy != query.SortByDate {
		// Amount and name orderings cut across days; grouping them would
		// shuffle the same day into multiple buckets.
		NewJSONResponse().Data(transactionViews(filtered, idx, s.loc)).Write(w)
		return
	}

	groups := query.GroupByDay(filtered, s.loc)
	NewJSONResponse().Data(groupViews(groups, idx, s.now(), s.loc)).Write(w)
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req TransactionRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		BadRequestError("invalid JSON body").Write(w)
		return
	}

	amount, err := req.AmountCents()
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}
	ts, err := req.ParsedTimestamp(s.now(), s.loc)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	tx, err := s.store.AddTransaction(
		sanitizeInput(req.Name),
		sanitizeInput(req.Category),
		amount,
		ts,
		sanitizeInput(req.PaymentMethod),
		sanitizeInput(req.Location),
		sanitizeInput(req.Notes),
	)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	s.logger.InfoContext(r.Context(), "Transaction created",
		applog.FieldTransaction, tx.ID,
		applog.FieldCategory, tx.CategoryName,
		applog.FieldAmountCents, tx.Amount.Cents)

	cats, _ := s.store.Snapshot()
	NewJSONResponse().
		Status(http.StatusCreated).
		Data(transactionView(tx, categoryIndex(cats), s.loc)).
		Write(w)
}

// handleTransactionByID serves /api/transactions/{id}.
func (s *Server) handleTransactionByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/transactions/")
	if id == "" || strings.Contains(id, "/") {
		NotFoundError("transaction not found").Write(w)
		return
	}

	switch r.Method {
	case http.MethodGet:
		cats, txs := s.store.Snapshot()
		for _, tx := range txs {
			if tx.ID == id {
				NewJSONResponse().Data(transactionView(tx, categoryIndex(cats), s.loc)).Write(w)
				return
			}
		}
		NotFoundError("transaction not found").Write(w)
	case http.MethodDelete:
		if err := s.store.RemoveTransaction(id); err != nil {
			s.writeDomainError(w, r, err)
			return
		}
		s.logger.InfoContext(r.Context(), "Transaction deleted", applog.FieldTransaction, id)
		NewJSONResponse().Status(http.StatusNoContent).Write(w)
	default:
		MethodNotAllowedError("GET, DELETE").Write(w)
	}
}
