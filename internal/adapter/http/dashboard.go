package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"ads-dashboard/internal/core/domain"
	"ads-dashboard/internal/core/port"
	"ads-dashboard/internal/core/present"
)

type summaryDTO struct {
	TotalSpend  *float64 `json:"totalSpend"`
	TotalClicks int64    `json:"totalClicks"`
	MeanCTR     *float64 `json:"meanCtr"`
	MeanCPC     *float64 `json:"meanCpc"`
}

type chartsDTO struct {
	Clicks     present.Chart `json:"clicks"`
	Spend      present.Chart `json:"spend"`
	Comparison present.Chart `json:"comparison"`
}

type dashboardDTO struct {
	Selection selectionDTO  `json:"selection"`
	Summary   summaryDTO    `json:"summary"`
	KPIs      []present.KPI `json:"kpis"`
	Charts    chartsDTO     `json:"charts"`
}

func toDashboardDTO(v *port.DashboardView) dashboardDTO {
	return dashboardDTO{
		Selection: toSelectionDTO(v.Selection),
		Summary: summaryDTO{
			TotalSpend:  present.Nullable(v.Summary.TotalSpend),
			TotalClicks: v.Summary.TotalClicks,
			MeanCTR:     present.Nullable(v.Summary.MeanCTR),
			MeanCPC:     present.Nullable(v.Summary.MeanCPC),
		},
		KPIs:   v.KPIs,
		Charts: chartsDTO{Clicks: v.Clicks, Spend: v.Spend, Comparison: v.Comparison},
	}
}

// handleOptions returns the campaigns, date bounds and metrics the page
// offers, plus the initial selection.
func (h *Handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, toOptionsDTO(h.svc.Options(r.Context())))
}

// handleDashboard recomputes KPIs and charts for the selection in the query
// string. Parameters left out fall back to the default selection. Malformed
// dates or an unknown metric result in HTTP 400.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	opts := h.svc.Options(r.Context())
	sel, err := parseSelection(r.URL.Query(), opts.Default)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.svc.Refresh(r.Context(), sel)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownMetric) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("refresh error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, toDashboardDTO(view))
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
