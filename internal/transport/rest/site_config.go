package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Configuración del sitio
// @Description Pares clave-valor (teléfono, e-mail, WhatsApp, redes).
// @Tags Configuración
// @Produce json
// @Success 200 {object} map[string]string
// @Router /site-config [get]
func (h *Handler) getSiteConfig(c *gin.Context) {
	values, err := h.services.SiteConfig.Values(c.Request.Context())
	if err != nil {
		handleError(c, err, "")
		return
	}

	successResponse(c, http.StatusOK, values)
}

// @Summary Configuración del sitio con metadatos
// @Tags Administración de configuración
// @Produce json
// @Success 200 {array} domain.SiteConfig
// @Security ApiKeyAuth
// @Router /admin/config [get]
func (h *Handler) adminGetSiteConfig(c *gin.Context) {
	entries, err := h.services.SiteConfig.List(c.Request.Context())
	if err != nil {
		handleError(c, err, "")
		return
	}

	successResponse(c, http.StatusOK, entries)
}

// @Summary Guardar configuración del sitio
// @Tags Administración de configuración
// @Accept json
// @Produce json
// @Param input body map[string]string true "Claves y valores"
// @Success 200 {array} domain.SiteConfig
// @Failure 400 {object} errorResponseBody "Datos inválidos"
// @Security ApiKeyAuth
// @Router /admin/config [post]
func (h *Handler) setSiteConfig(c *gin.Context) {
	var req map[string]string
	if !bindJSON(c, &req) {
		return
	}
	if len(req) == 0 {
		badRequestResponse(c, "no se enviaron claves")
		return
	}

	entries, err := h.services.SiteConfig.Set(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "")
		return
	}

	successResponse(c, http.StatusOK, entries)
}

// @Summary Eliminar una clave de configuración
// @Tags Administración de configuración
// @Param key path string true "Clave"
// @Success 204
// @Failure 404 {object} errorResponseBody "Clave no encontrada"
// @Security ApiKeyAuth
// @Router /admin/config/{key} [delete]
func (h *Handler) deleteSiteConfig(c *gin.Context) {
	if err := h.services.SiteConfig.Delete(c.Request.Context(), c.Param("key")); err != nil {
		handleError(c, err, "clave no encontrada")
		return
	}

	noContentResponse(c)
}
