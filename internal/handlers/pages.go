package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcastaneda/employment-cert-api/internal/flash"
)

// PageHandler serves the public page payloads. Each payload carries the
// pending flash notices so the client renders them exactly once.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Index handles GET /.
func (h *PageHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":    "index",
		"notices": flash.Consume(c),
	})
}

// RegistrationPage handles GET /registro.
func (h *PageHandler) RegistrationPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":    "registro",
		"notices": flash.Consume(c),
	})
}

// LoginPage handles GET /login.
func (h *PageHandler) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":    "login",
		"notices": flash.Consume(c),
	})
}
