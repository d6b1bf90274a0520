package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"barbershop/internal/domain"
)

// @Summary Iniciar sesión de administración
// @Description Devuelve un token opaco para el encabezado Authorization: Bearer.
// @Tags Autenticación
// @Accept json
// @Produce json
// @Param input body domain.LoginRequest true "Credenciales"
// @Success 200 {object} domain.LoginResponse
// @Failure 400 {object} errorResponseBody "Datos inválidos"
// @Failure 401 {object} errorResponseBody "Usuario o contraseña incorrectos"
// @Router /admin/login [post]
func (h *Handler) login(c *gin.Context) {
	var req domain.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.services.Auth.Login(c.Request.Context(), req, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		handleError(c, err, "")
		return
	}

	successResponse(c, http.StatusOK, resp)
}

// @Summary Cerrar sesión
// @Tags Autenticación
// @Produce json
// @Success 200 {object} messageResponseType
// @Failure 401 {object} errorResponseBody "No autorizado"
// @Security ApiKeyAuth
// @Router /admin/logout [post]
func (h *Handler) logout(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		unauthorizedResponse(c)
		return
	}

	if err := h.services.Auth.Logout(c.Request.Context(), session.Token); err != nil {
		handleError(c, err, "")
		return
	}

	messageResponse(c, http.StatusOK, "sesión cerrada")
}

// @Summary Usuario actual
// @Tags Autenticación
// @Produce json
// @Success 200 {object} domain.UserSummary
// @Failure 401 {object} errorResponseBody "No autorizado"
// @Security ApiKeyAuth
// @Router /admin/me [get]
func (h *Handler) me(c *gin.Context) {
	session, ok := currentSession(c)
	if !ok {
		unauthorizedResponse(c)
		return
	}

	successResponse(c, http.StatusOK, session.User.Summary())
}

// @Summary Eventos de citas en tiempo real
// @Description Abre un WebSocket que recibe appointment.created, appointment.updated y appointment.deleted.
// @Tags Autenticación
// @Param token query string true "Token de sesión"
// @Success 101
// @Failure 401 {object} errorResponseBody "No autorizado"
// @Router /admin/ws [get]
func (h *Handler) liveFeed(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		unauthorizedResponse(c, "falta el token")
		return
	}

	session, err := h.services.Auth.Authenticate(c.Request.Context(), token)
	if err != nil {
		handleError(c, err, "")
		return
	}

	if err := h.hub.Serve(c.Writer, c.Request, session); err != nil {
		h.logger.Warn("no se pudo abrir el WebSocket", zap.Error(err))
	}
}
