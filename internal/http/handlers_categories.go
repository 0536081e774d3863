package http

import (
	"net/http"
	"strings"

	"walletbuddy/internal/core"
	applog "walletbuddy/internal/log"
	"walletbuddy/internal/report"
)

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listCategories(w, r)
	case http.MethodPost:
		s.createCategory(w, r)
	default:
		MethodNotAllowedError("GET, POST").Write(w)
	}
}

type categoryListView struct {
	Categories []CategoryView `json:"categories"`
	TotalCents int64          `json:"total_budget_cents"`
	Total      string         `json:"total_budget"`
	SpentCents int64          `json:"total_spent_cents"`
	Spent      string         `json:"total_spent"`
}

// listCategories returns every category with its month-to-date figures,
// optionally narrowed by a name search.
func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	cats, txs := s.store.Snapshot()
	sum := report.Summarize(cats, txs)

	summaries := sum.Categories
	if search := strings.TrimSpace(r.URL.Query().Get("search")); search != "" {
		summaries = report.FilterCategories(summaries, search)
	}

	NewJSONResponse().Data(categoryListView{
		Categories: categoryViews(summaries),
		TotalCents: sum.TotalBudget.Cents,
		Total:      core.FormatPesos(sum.TotalBudget),
		SpentCents: sum.TotalSpent.Cents,
		Spent:      core.FormatPesos(sum.TotalSpent),
	}).Write(w)
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := DecodeJSONBody(r, &req); err != nil {
		BadRequestError("invalid JSON body").Write(w)
		return
	}

	budget, err := req.BudgetCents()
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	cat, err := s.store.AddCategory(
		sanitizeInput(req.Name),
		sanitizeInput(req.Icon),
		sanitizeInput(req.Color),
		budget,
	)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	s.logger.InfoContext(r.Context(), "Category created",
		applog.FieldCategory, cat.Name,
		applog.FieldAmountCents, cat.MonthlyBudget.Cents)

	NewJSONResponse().
		Status(http.StatusCreated).
		Data(categoryView(report.CategorySummary{Category: cat})).
		Write(w)
}

// handleCategoryByID serves /api/categories/{id}. Deleting a category
// leaves its transactions in place with a dangling reference.
func (s *Server) handleCategoryByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/categories/")
	if id == "" || strings.Contains(id, "/") {
		NotFoundError("category not found").Write(w)
		return
	}

	switch r.Method {
	case http.MethodGet:
		cats, txs := s.store.Snapshot()
		sum := report.Summarize(cats, txs)
		for _, cs := range sum.Categories {
			if cs.Category.ID == id {
				NewJSONResponse().Data(categoryView(cs)).Write(w)
				return
			}
		}
		NotFoundError("category not found").Write(w)
	case http.MethodDelete:
		if err := s.store.RemoveCategory(id); err != nil {
			s.writeDomainError(w, r, err)
			return
		}
		s.logger.InfoContext(r.Context(), "Category deleted", applog.FieldCategory, id)
		NewJSONResponse().Status(http.StatusNoContent).Write(w)
	default:
		MethodNotAllowedError("GET, DELETE").Write(w)
	}
}
