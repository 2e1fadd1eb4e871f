package http

import (
	"net/http"

	"github.com/shelfwise/catalog-service/internal/catalog/usecase/query"
	"github.com/shelfwise/catalog-service/pkg/logger"
)

// GetDashboard handles GET /api/dashboard
func (h *CatalogHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboard.Handle(r.Context(), query.GetDashboardQuery{})
	if err != nil {
		logger.WithContext(r.Context()).Error().Err(err).Msg("Failed to build dashboard")
		respondError(w, statusForError(err), err.Error())
		return
	}

	totalProductsGauge.Set(float64(dashboard.TotalProducts))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    toDashboardResponse(dashboard),
	})
}
