package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barbershop/internal/domain"
)

// @Summary Lista de servicios
// @Description Servicios activos ordenados por sort_order.
// @Tags Servicios
// @Produce json
// @Success 200 {array} domain.Service
// @Router /services [get]
func (h *Handler) getServices(c *gin.Context) {
	h.listServices(c, true)
}

// @Summary Lista de servicios (incluye inactivos)
// @Tags Administración de servicios
// @Produce json
// @Success 200 {array} domain.Service
// @Security ApiKeyAuth
// @Router /admin/services [get]
func (h *Handler) adminGetServices(c *gin.Context) {
	h.listServices(c, false)
}

func (h *Handler) listServices(c *gin.Context, onlyActive bool) {
	services, err := h.services.Catalog.List(c.Request.Context(), domain.ServiceFilter{OnlyActive: onlyActive})
	if err != nil {
		handleError(c, err, "")
		return
	}

	successResponse(c, http.StatusOK, services)
}

// @Summary Crear un servicio
// @Tags Administración de servicios
// @Accept json
// @Produce json
// @Param input body domain.CreateServiceDTO true "Datos del servicio"
// @Success 201 {object} domain.Service
// @Failure 400 {object} errorResponseBody "Datos inválidos"
// @Security ApiKeyAuth
// @Router /admin/services [post]
func (h *Handler) createService(c *gin.Context) {
	var req domain.CreateServiceDTO
	if !bindJSON(c, &req) {
		return
	}

	service, err := h.services.Catalog.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "servicio no encontrado")
		return
	}

	createdResponse(c, service)
}

// @Summary Obtener un servicio
// @Tags Administración de servicios
// @Produce json
// @Param id path string true "ID del servicio"
// @Success 200 {object} domain.Service
// @Failure 404 {object} errorResponseBody "Servicio no encontrado"
// @Security ApiKeyAuth
// @Router /admin/services/{id} [get]
func (h *Handler) getServiceByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	service, err := h.services.Catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "servicio no encontrado")
		return
	}

	successResponse(c, http.StatusOK, service)
}

// @Summary Actualizar un servicio
// @Tags Administración de servicios
// @Accept json
// @Produce json
// @Param id path string true "ID del servicio"
// @Param input body domain.UpdateServiceDTO true "Campos a modificar"
// @Success 200 {object} domain.Service
// @Failure 400 {object} errorResponseBody "Datos inválidos"
// @Failure 404 {object} errorResponseBody "Servicio no encontrado"
// @Security ApiKeyAuth
// @Router /admin/services/{id} [put]
func (h *Handler) updateService(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateServiceDTO
	if !bindJSON(c, &req) {
		return
	}

	service, err := h.services.Catalog.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err, "servicio no encontrado")
		return
	}

	successResponse(c, http.StatusOK, service)
}

// @Summary Eliminar un servicio
// @Tags Administración de servicios
// @Param id path string true "ID del servicio"
// @Success 204
// @Failure 404 {object} errorResponseBody "Servicio no encontrado"
// @Security ApiKeyAuth
// @Router /admin/services/{id} [delete]
func (h *Handler) deleteService(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Catalog.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err, "servicio no encontrado")
		return
	}

	noContentResponse(c)
}
