package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	accountDomain "github.com/aactechsol/massage-manager/internal/domain/account"
	worklogDomain "github.com/aactechsol/massage-manager/internal/domain/worklog"
	"github.com/aactechsol/massage-manager/internal/httperr"
	"github.com/aactechsol/massage-manager/internal/httpresp"
	"github.com/aactechsol/massage-manager/internal/middleware"
	ucAccount "github.com/aactechsol/massage-manager/internal/usecase/account"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	accounts accountDomain.Repository
	worklogs worklogDomain.Repository
	updateUC *ucAccount.UpdateUser
}

func NewAdminHandler(
	accounts accountDomain.Repository,
	worklogs worklogDomain.Repository,
	updateUC *ucAccount.UpdateUser,
) *AdminHandler {
	return &AdminHandler{
		accounts: accounts,
		worklogs: worklogs,
		updateUC: updateUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateUserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
	IsActive  bool   `json:"is_active"`

	Rates []accountDomain.RateChange `json:"rates"`
}

// ======================================================
// DASHBOARD
// ======================================================

func (h *AdminHandler) Dashboard(c *gin.Context) {
	counts, err := h.accounts.DashboardCounts(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Error al cargar el panel.")
		return
	}

	c.JSON(http.StatusOK, counts)
}

// ======================================================
// USERS
// ======================================================

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.accounts.ListWorkers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_users", "Error al listar los usuarios.")
		return
	}

	httpresp.List(c, users)
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_user_id", "Identificador inválido.")
		return
	}

	user, err := h.accounts.GetUser(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	spas, err := h.accounts.ListSpas(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_spas", "Error al listar los spas.")
		return
	}

	links, err := h.worklogs.ListRateLinks(c.Request.Context(), user.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_rates", "Error al listar las tarifas.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"spas":  spas,
		"rates": links,
	})
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_user_id", "Identificador inválido.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	out, err := h.updateUC.Execute(c.Request.Context(), ucAccount.UpdateUserInput{
		ActorID:   actorID,
		UserID:    uint(id),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		IsActive:  req.IsActive,
		Rates:     req.Rates,
	})
	if err != nil {
		if code, ok := httperr.IsAnyBusiness(err); ok {
			switch code {
			case "user_not_found":
				httperr.NotFound(c, code, "Usuario no encontrado.")
			case "cannot_edit_admin":
				httperr.BadRequest(c, code, "La cuenta de administrador no se edita desde aquí.")
			case "unknown_spa":
				httperr.BadRequest(c, code, "Uno de los spas no existe.")
			case "invalid_rate":
				httperr.BadRequest(c, code, "La tarifa no puede ser negativa.")
			case "duplicate_rate":
				httperr.BadRequest(c, code, "Hay spas repetidos en las tarifas.")
			default:
				httperr.BadRequest(c, code, "Datos inválidos.")
			}
			return
		}
		httperr.Internal(c, "failed_to_update_user", "Error al actualizar el usuario.")
		return
	}

	message := "Usuario actualizado correctamente."
	if out.Activated {
		message = "Usuario activado y notificado."
		if !out.Notified {
			message = "Usuario activado, pero hubo un error al enviar la notificación."
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"user":      out.User,
		"activated": out.Activated,
		"notified":  out.Notified,
		"message":   message,
	})
}
