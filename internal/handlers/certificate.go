package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mcastaneda/employment-cert-api/internal/flash"
	"github.com/mcastaneda/employment-cert-api/internal/middleware"
	"github.com/mcastaneda/employment-cert-api/internal/services"
)

// CertificateHandler produces and streams certificate PDFs.
type CertificateHandler struct {
	certificateService *services.CertificateService
}

// NewCertificateHandler creates a new CertificateHandler.
func NewCertificateHandler(certificateService *services.CertificateService) *CertificateHandler {
	return &CertificateHandler{
		certificateService: certificateService,
	}
}

// Generate handles POST /generar_certificado. An id_historial field
// selects one record; without it, the most recent record by start date is
// certified. The produced file streams back as a download.
func (h *CertificateHandler) Generate(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	var recordID uint64
	if raw := strings.TrimSpace(c.PostForm("id_historial")); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			flash.Error(c, services.ErrRecordNotFound.Error())
			c.Redirect(http.StatusSeeOther, "/dashboard")
			return
		}
		recordID = parsed
	}

	path, filename, err := h.certificateService.Generate(accountID, recordID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRecordNotFound),
			errors.Is(err, services.ErrPersonNotFound),
			errors.Is(err, services.ErrNoHistory):
			flash.Error(c, err.Error())
		default:
			flash.Error(c, "Error interno, intente de nuevo")
		}
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	c.FileAttachment(path, filename)
}
