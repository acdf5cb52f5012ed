package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcastaneda/employment-cert-api/internal/dto"
	"github.com/mcastaneda/employment-cert-api/internal/flash"
	"github.com/mcastaneda/employment-cert-api/internal/middleware"
	"github.com/mcastaneda/employment-cert-api/internal/services"
)

// DashboardHandler serves the logged-in summary page.
type DashboardHandler struct {
	authService       *services.AuthService
	employmentService *services.EmploymentService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(authService *services.AuthService, employmentService *services.EmploymentService) *DashboardHandler {
	return &DashboardHandler{
		authService:       authService,
		employmentService: employmentService,
	}
}

// Dashboard handles GET /dashboard: the account, its person, and the full
// employment history, most recent first. Read-only.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	account, err := h.authService.GetAccount(accountID)
	if err != nil {
		// A session pointing at a missing account is treated as logged out.
		if !errors.Is(err, services.ErrAccountNotFound) {
			flash.Error(c, "Error interno, intente de nuevo")
		}
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	records, err := h.employmentService.History(account.PersonaID)
	if err != nil {
		flash.Error(c, "Error interno, intente de nuevo")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		Usuario:   dto.ToAccountDTO(*account),
		Persona:   dto.ToPersonDTO(account.Persona),
		Historial: dto.ToEmploymentRecordDTOs(records),
		Notices:   flash.Consume(c),
	})
}
