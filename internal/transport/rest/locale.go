package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Monedas activas
// @Tags Idiomas y monedas
// @Produce json
// @Success 200 {array} domain.Currency
// @Router /currencies [get]
func (h *Handler) getCurrencies(c *gin.Context) {
	currencies, err := h.services.Locale.Currencies(c.Request.Context())
	if err != nil {
		handleError(c, err, "")
		return
	}

	successResponse(c, http.StatusOK, currencies)
}

// @Summary Idiomas activos
// @Tags Idiomas y monedas
// @Produce json
// @Success 200 {array} domain.Language
// @Router /languages [get]
func (h *Handler) getLanguages(c *gin.Context) {
	languages, err := h.services.Locale.Languages(c.Request.Context())
	if err != nil {
		handleError(c, err, "")
		return
	}

	successResponse(c, http.StatusOK, languages)
}

// @Summary Idioma por defecto
// @Tags Idiomas y monedas
// @Produce json
// @Success 200 {object} domain.Language
// @Router /languages/default [get]
func (h *Handler) getDefaultLanguage(c *gin.Context) {
	language, err := h.services.Locale.DefaultLanguage(c.Request.Context())
	if err != nil {
		handleError(c, err, "idioma no encontrado")
		return
	}

	successResponse(c, http.StatusOK, language)
}
