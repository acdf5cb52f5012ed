package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/mcastaneda/employment-cert-api/internal/constants"
	"github.com/mcastaneda/employment-cert-api/internal/flash"
	"github.com/mcastaneda/employment-cert-api/internal/services"
)

// AuthHandler coordinates registration and session handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles POST /registro. Validation failures flash the failed
// field's message and return to the registration form; success creates
// the person and account in one transaction and moves on to login.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterForm struct {
		Nombre               string `form:"nombre"`
		NumeroIdentificacion string `form:"numero_identificacion"`
		Correo               string `form:"correo"`
		Contrasena           string `form:"contrasena"`
	}

	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Error(c, "Formulario inválido")
		c.Redirect(http.StatusSeeOther, "/registro")
		return
	}

	_, err := h.authService.Register(services.RegisterInput{
		Nombre:               form.Nombre,
		NumeroIdentificacion: form.NumeroIdentificacion,
		Correo:               form.Correo,
		Contrasena:           form.Contrasena,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidName),
			errors.Is(err, services.ErrInvalidIdentification),
			errors.Is(err, services.ErrInvalidEmail),
			errors.Is(err, services.ErrInvalidPassword),
			errors.Is(err, services.ErrAlreadyRegistered):
			flash.Error(c, err.Error())
			c.Redirect(http.StatusSeeOther, "/registro")
		default:
			flash.Error(c, "Error interno, intente de nuevo")
			c.Redirect(http.StatusSeeOther, "/registro")
		}
		return
	}

	flash.Success(c, "Usuario registrado con éxito")
	c.Redirect(http.StatusSeeOther, "/login")
}

// Login handles POST /login. Unknown email and wrong password produce the
// same generic notice on the login page.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginForm struct {
		Correo     string `form:"correo"`
		Contrasena string `form:"contrasena"`
	}

	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		flash.Error(c, services.ErrInvalidCredentials.Error())
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	account, err := h.authService.Login(services.LoginInput{
		Correo:     form.Correo,
		Contrasena: form.Contrasena,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			flash.Error(c, err.Error())
		} else {
			flash.Error(c, "Error interno, intente de nuevo")
		}
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	session := sessions.Default(c)
	session.Set(constants.SessionKeyAccountID, account.ID)
	if err := session.Save(); err != nil {
		flash.Error(c, "Error interno, intente de nuevo")
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	flash.Success(c, "Inicio de sesión exitoso")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout handles POST /cerrar_sesion.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()

	c.Redirect(http.StatusSeeOther, "/login")
}
