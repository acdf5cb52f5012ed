package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcastaneda/employment-cert-api/internal/flash"
	"github.com/mcastaneda/employment-cert-api/internal/middleware"
	"github.com/mcastaneda/employment-cert-api/internal/services"
)

// EmploymentHandler adds employment-history records.
type EmploymentHandler struct {
	employmentService *services.EmploymentService
}

// NewEmploymentHandler creates a new EmploymentHandler.
func NewEmploymentHandler(employmentService *services.EmploymentService) *EmploymentHandler {
	return &EmploymentHandler{
		employmentService: employmentService,
	}
}

// AddRecord handles POST /agregar_historial_empleo. An empty fecha_retiro
// is stored as current employment, not rejected.
func (h *EmploymentHandler) AddRecord(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	type RecordForm struct {
		FechaIngreso string `form:"fecha_ingreso"`
		FechaRetiro  string `form:"fecha_retiro"`
		Cargo        string `form:"cargo"`
		TipoContrato string `form:"tipo_contrato"`
		Salario      string `form:"salario"`
		Ciudad       string `form:"ciudad"`
	}

	var form RecordForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Error(c, "Formulario inválido")
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	_, err := h.employmentService.AddRecord(accountID, services.AddRecordInput{
		FechaIngreso: form.FechaIngreso,
		FechaRetiro:  form.FechaRetiro,
		Cargo:        form.Cargo,
		TipoContrato: form.TipoContrato,
		Salario:      form.Salario,
		Ciudad:       form.Ciudad,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStartDate),
			errors.Is(err, services.ErrInvalidEndDate),
			errors.Is(err, services.ErrEndBeforeStart),
			errors.Is(err, services.ErrInvalidPosition),
			errors.Is(err, services.ErrInvalidSalary):
			flash.Error(c, err.Error())
		default:
			flash.Error(c, "Error interno, intente de nuevo")
		}
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	flash.Success(c, "Historial de empleo agregado con éxito")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}
