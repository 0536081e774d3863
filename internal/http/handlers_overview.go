package http

import (
	"fmt"
	"net/http"

	"walletbuddy/internal/core"
	applog "walletbuddy/internal/log"
	"walletbuddy/internal/query"
	"walletbuddy/internal/report"
)

const (
	overviewTopN   = 4
	overviewRecent = 3
)

// overviewCacheKey changes whenever the ledger mutates and when the local
// day rolls over, since day labels depend on today.
func (s *Server) overviewCacheKey() string {
	return fmt.Sprintf("overview:%d:%s", s.store.Generation(), s.now().In(s.loc).Format("2006-01-02"))
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	if resp := RequireMethod(r, http.MethodGet); resp != nil {
		resp.Write(w)
		return
	}

	key := s.overviewCacheKey()
	if view, ok := s.overviewCache.Get(key); ok {
		s.logger.DebugContext(r.Context(), "Overview served from cache",
			applog.FieldGeneration, s.store.Generation())
		NewJSONResponse().Data(view).Write(w)
		return
	}

	view := s.buildOverview()
	s.overviewCache.Set(key, view)
	NewJSONResponse().Data(view).Write(w)
}

func (s *Server) buildOverview() OverviewView {
	cats, txs := s.store.Snapshot()
	sum := report.Summarize(cats, txs)
	idx := categoryIndex(cats)

	recent := query.Apply(txs, query.FilterSpec{Tab: query.TabAll, SortBy: query.SortByDate})
	if len(recent) > overviewRecent {
		recent = recent[:overviewRecent]
	}

	return OverviewView{
		BalanceCents:  sum.Balance.Cents,
		Balance:       core.FormatPesos(sum.Balance),
		IncomeCents:   sum.TotalIncome.Cents,
		Income:        core.FormatPesos(sum.TotalIncome),
		ExpenseCents:  sum.TotalExpense.Cents,
		Expense:       core.FormatPesos(sum.TotalExpense),
		TopCategories: categoryViews(report.TopCategories(sum, overviewTopN)),
		Recent:        transactionViews(recent, idx, s.loc),
	}
}
