package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aactechsol/massage-manager/internal/dto"
	"github.com/aactechsol/massage-manager/internal/httperr"
	"github.com/aactechsol/massage-manager/internal/httpresp"
	"github.com/aactechsol/massage-manager/internal/middleware"
	ucWorklog "github.com/aactechsol/massage-manager/internal/usecase/worklog"
)

// ======================================================
// HANDLER
// ======================================================

type SessionHandler struct {
	createUC *ucWorklog.CreateSession
	listUC   *ucWorklog.ListSessions
	statsUC  *ucWorklog.Statistics
}

func NewSessionHandler(
	createUC *ucWorklog.CreateSession,
	listUC *ucWorklog.ListSessions,
	statsUC *ucWorklog.Statistics,
) *SessionHandler {
	return &SessionHandler{
		createUC: createUC,
		listUC:   listUC,
		statsUC:  statsUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSessionRequest struct {
	SpaID    uint    `json:"spa_id" binding:"required"`
	Date     string  `json:"date" binding:"required"`
	Hours    float64 `json:"hours" binding:"required"`
	IsCar    bool    `json:"is_car"`
	Comments string  `json:"comments"`
}

// ======================================================
// CREATE
// ======================================================

func (h *SessionHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	session, err := h.createUC.Execute(c.Request.Context(), ucWorklog.CreateSessionInput{
		UserID:   userID,
		SpaID:    req.SpaID,
		Date:     date,
		Hours:    req.Hours,
		IsCar:    req.IsCar,
		Comments: req.Comments,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_hours"):
			httperr.BadRequest(c, "invalid_hours", "Las horas deben ser mayores que cero.")
		case httperr.IsBusiness(err, "spa_not_allowed"):
			httperr.BadRequest(c, "spa_not_allowed", "Spa no válido.")
		default:
			httperr.Internal(c, "failed_to_create_session", "Error al agregar la sesión.")
		}
		return
	}

	c.JSON(http.StatusCreated, session)
}

// ======================================================
// LIST
// ======================================================

func (h *SessionHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	rows, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_sessions", "Error al listar las sesiones.")
		return
	}

	out := make([]dto.SessionRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SessionRowDTO{
			ID:           r.Session.ID,
			Date:         r.Session.Date.Format("2006-01-02"),
			SpaID:        r.Session.SpaID,
			SpaName:      r.SpaName,
			Hours:        r.Session.Hours,
			IsCar:        r.Session.IsCar,
			Comments:     r.Session.Comments,
			PricePerHour: r.PricePerHour,
			Total:        r.Money.Total,
			TaxAmount:    r.Money.TaxAmount,
			NetAmount:    r.Money.NetAmount,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *SessionHandler) Dashboard(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	summary, err := h.statsUC.Execute(c.Request.Context(), ucWorklog.StatisticsInput{
		UserID: userID,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Error al cargar el panel.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_sessions": summary.TotalSessions,
		"total_hours":    summary.TotalHours,
		"total_earnings": summary.TotalEarnings,
	})
}
