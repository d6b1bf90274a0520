package rest

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"barbershop/internal/domain"
	"barbershop/internal/export"
	"barbershop/pkg/validator"
)

// @Summary Reservar una cita
// @Description Crea una cita para el horario elegido. Un horario ya reservado devuelve 409.
// @Tags Citas
// @Accept json
// @Produce json
// @Param input body domain.CreateAppointmentDTO true "Datos de la cita"
// @Success 201 {object} domain.Appointment "Cita creada"
// @Failure 400 {object} errorResponseBody "Datos inválidos"
// @Failure 409 {object} errorResponseBody "El horario ya está reservado"
// @Failure 429 {object} errorResponseBody "Demasiadas solicitudes"
// @Failure 500 {object} errorResponseBody "Error interno del servidor"
// @Router /appointments [post]
func (h *Handler) createAppointment(c *gin.Context) {
	var req domain.CreateAppointmentDTO
	if !bindJSON(c, &req) {
		return
	}

	appointment, err := h.services.Appointment.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "cita no encontrada")
		return
	}

	createdResponse(c, appointment)
}

// @Summary Citas de una fecha
// @Tags Citas
// @Produce json
// @Param date path string true "Fecha (YYYY-MM-DD)"
// @Success 200 {array} domain.Appointment
// @Failure 400 {object} errorResponseBody "Fecha inválida"
// @Router /appointments/date/{date} [get]
func (h *Handler) getAppointmentsByDate(c *gin.Context) {
	date := c.Param("date")
	if !validator.ValidateDate(date) {
		badRequestResponse(c, "la fecha debe tener el formato YYYY-MM-DD")
		return
	}

	appointments, err := h.services.Appointment.ListByDate(c.Request.Context(), date)
	if err != nil {
		handleError(c, err, "")
		return
	}

	successResponse(c, http.StatusOK, appointments)
}

// @Summary Cambiar el estado de una cita
// @Tags Citas
// @Accept json
// @Produce json
// @Param id path string true "ID de la cita"
// @Param input body domain.UpdateAppointmentStatusDTO true "Nuevo estado"
// @Success 200 {object} domain.Appointment
// @Failure 400 {object} errorResponseBody "Estado inválido"
// @Failure 404 {object} errorResponseBody "Cita no encontrada"
// @Router /appointments/{id}/status [patch]
func (h *Handler) updateAppointmentStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateAppointmentStatusDTO
	if !bindJSON(c, &req) {
		return
	}

	appointment, err := h.services.Appointment.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		handleError(c, err, "cita no encontrada")
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Listar citas
// @Tags Administración de citas
// @Produce json
// @Param status query string false "Estado"
// @Param date_from query string false "Desde (YYYY-MM-DD)"
// @Param date_to query string false "Hasta (YYYY-MM-DD)"
// @Param limit query int false "Límite" default(20)
// @Param offset query int false "Desplazamiento" default(0)
// @Success 200 {object} paginatedResponse
// @Failure 400 {object} errorResponseBody "Filtro inválido"
// @Failure 401 {object} errorResponseBody "No autorizado"
// @Security ApiKeyAuth
// @Router /admin/appointments [get]
func (h *Handler) getAppointments(c *gin.Context) {
	filter, ok := appointmentFilter(c)
	if !ok {
		return
	}

	appointments, total, err := h.services.Appointment.List(c.Request.Context(), filter)
	if err != nil {
		handleError(c, err, "")
		return
	}

	page := filter.Offset/filter.Limit + 1

	paginatedSuccessResponse(c, appointments, total, page, filter.Limit)
}

// @Summary Exportar citas a Excel
// @Tags Administración de citas
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "Estado"
// @Param date_from query string false "Desde (YYYY-MM-DD)"
// @Param date_to query string false "Hasta (YYYY-MM-DD)"
// @Param lang query string false "Idioma de los nombres de servicio"
// @Success 200 {file} file
// @Failure 401 {object} errorResponseBody "No autorizado"
// @Security ApiKeyAuth
// @Router /admin/appointments/export [get]
func (h *Handler) exportAppointments(c *gin.Context) {
	filter, ok := appointmentFilter(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.services.Appointment.Export(c.Request.Context(), &buf, filter, h.requestLanguage(c)); err != nil {
		handleError(c, err, "")
		return
	}

	filename := fmt.Sprintf("citas-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// @Summary Obtener una cita
// @Tags Administración de citas
// @Produce json
// @Param id path string true "ID de la cita"
// @Success 200 {object} domain.Appointment
// @Failure 404 {object} errorResponseBody "Cita no encontrada"
// @Security ApiKeyAuth
// @Router /admin/appointments/{id} [get]
func (h *Handler) getAppointmentByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	appointment, err := h.services.Appointment.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "cita no encontrada")
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Actualizar una cita
// @Tags Administración de citas
// @Accept json
// @Produce json
// @Param id path string true "ID de la cita"
// @Param input body domain.UpdateAppointmentDTO true "Campos a modificar"
// @Success 200 {object} domain.Appointment
// @Failure 400 {object} errorResponseBody "Datos inválidos"
// @Failure 404 {object} errorResponseBody "Cita no encontrada"
// @Failure 409 {object} errorResponseBody "El horario ya está reservado"
// @Security ApiKeyAuth
// @Router /admin/appointments/{id} [put]
func (h *Handler) updateAppointment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateAppointmentDTO
	if !bindJSON(c, &req) {
		return
	}

	appointment, err := h.services.Appointment.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err, "cita no encontrada")
		return
	}

	successResponse(c, http.StatusOK, appointment)
}

// @Summary Eliminar una cita
// @Tags Administración de citas
// @Param id path string true "ID de la cita"
// @Success 204
// @Failure 404 {object} errorResponseBody "Cita no encontrada"
// @Security ApiKeyAuth
// @Router /admin/appointments/{id} [delete]
func (h *Handler) deleteAppointment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Appointment.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err, "cita no encontrada")
		return
	}

	h.logger.Info("cita eliminada", zap.String("id", id))
	noContentResponse(c)
}

func appointmentFilter(c *gin.Context) (domain.AppointmentFilter, bool) {
	limit, offset := pagination(c)
	filter := domain.AppointmentFilter{Limit: limit, Offset: offset}

	if raw := c.Query("status"); raw != "" {
		status := domain.AppointmentStatus(raw)
		if !status.Valid() {
			badRequestResponse(c, "estado de cita inválido")
			return filter, false
		}
		filter.Status = &status
	}

	if raw := c.Query("date_from"); raw != "" {
		from, err := time.Parse(domain.DateLayout, raw)
		if err != nil {
			badRequestResponse(c, "date_from debe tener el formato YYYY-MM-DD")
			return filter, false
		}
		filter.StartDate = &from
	}

	if raw := c.Query("date_to"); raw != "" {
		to, err := time.Parse(domain.DateLayout, raw)
		if err != nil {
			badRequestResponse(c, "date_to debe tener el formato YYYY-MM-DD")
			return filter, false
		}
		filter.EndDate = &to
	}

	return filter, true
}
