package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Horarios disponibles de una fecha
// @Description Calcula los horarios reservables según el horario de atención del día y las citas existentes. Una fecha inválida devuelve una lista vacía.
// @Tags Citas
// @Produce json
// @Param date path string true "Fecha (YYYY-MM-DD)"
// @Success 200 {object} domain.DayAvailability
// @Router /availability/{date} [get]
func (h *Handler) getAvailability(c *gin.Context) {
	successResponse(c, http.StatusOK, h.services.Availability.ForDate(c.Request.Context(), c.Param("date")))
}
