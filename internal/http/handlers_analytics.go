package http

import (
	"fmt"
	"net/http"

	"walletbuddy/internal/core"
	applog "walletbuddy/internal/log"
	"walletbuddy/internal/report"
)

const spendingChartDays = 7

func (s *Server) analyticsCacheKey() string {
	return fmt.Sprintf("analytics:%d:%s", s.store.Generation(), s.now().In(s.loc).Format("2006-01-02"))
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	if resp := RequireMethod(r, http.MethodGet); resp != nil {
		resp.Write(w)
		return
	}

	key := s.analyticsCacheKey()
	if view, ok := s.analyticsCache.Get(key); ok {
		s.logger.DebugContext(r.Context(), "Analytics served from cache",
			applog.FieldGeneration, s.store.Generation())
		NewJSONResponse().Data(view).Write(w)
		return
	}

	view := s.buildAnalytics()
	s.analyticsCache.Set(key, view)
	NewJSONResponse().Data(view).Write(w)
}

func (s *Server) buildAnalytics() AnalyticsView {
	cats, txs := s.store.Snapshot()
	sum := report.Summarize(cats, txs)
	now := s.now()

	ranked := report.TopCategories(sum, len(sum.Categories))
	breakdown := make([]CategoryShareView, 0, len(ranked))
	for _, cs := range ranked {
		if cs.Spent.Cents == 0 {
			continue
		}
		breakdown = append(breakdown, CategoryShareView{
			Name:         cs.Category.Name,
			Icon:         cs.Category.Icon,
			Color:        cs.Category.Color,
			SpentCents:   cs.Spent.Cents,
			Spent:        core.FormatPesos(cs.Spent),
			SharePercent: sharePercent(cs.Spent, sum.TotalSpent),
		})
	}

	return AnalyticsView{
		Budget:     budgetStatusView(report.MonthBudgetStatus(sum, now, s.loc)),
		Daily:      daySpendingViews(report.SpendingByDay(txs, now, spendingChartDays, s.loc)),
		Breakdown:  breakdown,
		TotalSpent: core.FormatPesos(sum.TotalSpent),
	}
}

// sharePercent is a category's slice of categorized spending, rounded
// half up.
func sharePercent(part, whole core.Money) int {
	if whole.Cents <= 0 {
		return 0
	}
	return int((part.Cents*100 + whole.Cents/2) / whole.Cents)
}
