package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/aactechsol/massage-manager/internal/domain/worklog"
	"github.com/aactechsol/massage-manager/internal/httperr"
	"github.com/aactechsol/massage-manager/internal/httpresp"
	"github.com/aactechsol/massage-manager/internal/middleware"
)

type SpaHandler struct {
	worklogs domain.Repository
}

func NewSpaHandler(worklogs domain.Repository) *SpaHandler {
	return &SpaHandler{worklogs: worklogs}
}

type WorkerSpaDTO struct {
	SpaID        uint    `json:"spa_id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
	PricePerHour float64 `json:"price_per_hour"`
}

// ListMine returns the spas the worker may log sessions at, i.e. their
// active rate-links.
func (h *SpaHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	links, err := h.worklogs.ListActiveRateLinks(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_spas", "Error al listar los spas.")
		return
	}

	out := make([]WorkerSpaDTO, 0, len(links))
	for _, l := range links {
		out = append(out, WorkerSpaDTO{
			SpaID:        l.SpaID,
			Name:         l.Spa.Name,
			Address:      l.Spa.Address,
			Phone:        l.Spa.Phone,
			PricePerHour: l.PricePerHour,
		})
	}

	httpresp.List(c, out)
}
