package handler

import (
	"net/http"

	"github.com/quotedesk/quotedesk/internal/domain"
	"github.com/quotedesk/quotedesk/internal/utils"
)

type statsResponse struct {
	Stats domain.Stats `json:"stats"`
}

func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.Stats()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, statsResponse{Stats: stats})
}
