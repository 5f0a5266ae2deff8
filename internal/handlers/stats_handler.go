package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/aactechsol/massage-manager/internal/domain/worklog"
	"github.com/aactechsol/massage-manager/internal/httperr"
	"github.com/aactechsol/massage-manager/internal/middleware"
	ucWorklog "github.com/aactechsol/massage-manager/internal/usecase/worklog"
)

type StatsHandler struct {
	statsUC *ucWorklog.Statistics
}

func NewStatsHandler(statsUC *ucWorklog.Statistics) *StatsHandler {
	return &StatsHandler{statsUC: statsUC}
}

// Statistics answers GET /api/me/statistics?spa=&date_from=&date_to=&group_by=
// The date range is inclusive on both ends. group_by is accepted but inert.
func (h *StatsHandler) Statistics(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var filter domain.SessionFilter

	if spa := c.Query("spa"); spa != "" && spa != "all" {
		id, err := strconv.ParseUint(spa, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_spa", "Spa inválido.")
			return
		}
		spaID := uint(id)
		filter.SpaID = &spaID
	}

	if from := c.Query("date_from"); from != "" {
		d, err := time.Parse("2006-01-02", from)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_from", "Fecha inicial inválida.")
			return
		}
		filter.DateFrom = &d
	}

	if to := c.Query("date_to"); to != "" {
		d, err := time.Parse("2006-01-02", to)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_to", "Fecha final inválida.")
			return
		}
		filter.DateTo = &d
	}

	summary, err := h.statsUC.Execute(c.Request.Context(), ucWorklog.StatisticsInput{
		UserID:  userID,
		Filter:  filter,
		GroupBy: c.Query("group_by"),
	})
	if err != nil {
		httperr.Internal(c, "failed_to_compute_statistics", "Error al calcular las estadísticas.")
		return
	}

	c.JSON(http.StatusOK, summary)
}
