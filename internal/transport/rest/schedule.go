package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barbershop/internal/domain"
)

// @Summary Horario de reservas por día
// @Description Franjas de atención usadas para calcular los horarios disponibles.
// @Tags Horarios
// @Produce json
// @Success 200 {array} domain.ServiceHours
// @Router /service-hours [get]
func (h *Handler) getServiceHours(c *gin.Context) {
	hours, err := h.services.Schedule.ListServiceHours(c.Request.Context())
	if err != nil {
		handleError(c, err, "")
		return
	}

	successResponse(c, http.StatusOK, hours)
}

// @Summary Actualizar el horario de reservas de un día
// @Tags Administración de horarios
// @Accept json
// @Produce json
// @Param id path string true "ID del día"
// @Param input body domain.UpdateServiceHoursDTO true "Campos a modificar"
// @Success 200 {object} domain.ServiceHours
// @Failure 400 {object} errorResponseBody "Datos inválidos"
// @Failure 404 {object} errorResponseBody "Día no encontrado"
// @Security ApiKeyAuth
// @Router /admin/service-hours/{id} [put]
func (h *Handler) updateServiceHours(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateServiceHoursDTO
	if !bindJSON(c, &req) {
		return
	}

	hours, err := h.services.Schedule.UpdateServiceHours(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err, "día no encontrado")
		return
	}

	successResponse(c, http.StatusOK, hours)
}

// @Summary Horario de apertura
// @Tags Horarios
// @Produce json
// @Success 200 {array} domain.WorkingHours
// @Router /working-hours [get]
func (h *Handler) getWorkingHours(c *gin.Context) {
	hours, err := h.services.Schedule.ListWorkingHours(c.Request.Context())
	if err != nil {
		handleError(c, err, "")
		return
	}

	successResponse(c, http.StatusOK, hours)
}

// @Summary Actualizar el horario de apertura de un día
// @Tags Administración de horarios
// @Accept json
// @Produce json
// @Param id path string true "ID del día"
// @Param input body domain.UpdateWorkingHoursDTO true "Campos a modificar"
// @Success 200 {object} domain.WorkingHours
// @Failure 400 {object} errorResponseBody "Datos inválidos"
// @Failure 404 {object} errorResponseBody "Día no encontrado"
// @Security ApiKeyAuth
// @Router /admin/working-hours/{id} [put]
func (h *Handler) updateWorkingHours(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateWorkingHoursDTO
	if !bindJSON(c, &req) {
		return
	}

	hours, err := h.services.Schedule.UpdateWorkingHours(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err, "día no encontrado")
		return
	}

	successResponse(c, http.StatusOK, hours)
}
