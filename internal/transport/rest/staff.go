package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barbershop/internal/domain"
)

// @Summary Equipo de barberos
// @Tags Equipo
// @Produce json
// @Success 200 {array} domain.StaffMember
// @Router /staff [get]
func (h *Handler) getStaff(c *gin.Context) {
	h.listStaff(c, true)
}

// @Summary Equipo completo
// @Tags Administración del equipo
// @Produce json
// @Success 200 {array} domain.StaffMember
// @Security ApiKeyAuth
// @Router /admin/staff [get]
func (h *Handler) adminGetStaff(c *gin.Context) {
	h.listStaff(c, false)
}

func (h *Handler) listStaff(c *gin.Context, onlyActive bool) {
	members, err := h.services.Staff.List(c.Request.Context(), onlyActive)
	if err != nil {
		handleError(c, err, "")
		return
	}

	successResponse(c, http.StatusOK, members)
}

// @Summary Agregar un miembro del equipo
// @Tags Administración del equipo
// @Accept json
// @Produce json
// @Param input body domain.CreateStaffMemberDTO true "Datos del miembro"
// @Success 201 {object} domain.StaffMember
// @Failure 400 {object} errorResponseBody "Datos inválidos"
// @Security ApiKeyAuth
// @Router /admin/staff [post]
func (h *Handler) createStaffMember(c *gin.Context) {
	var req domain.CreateStaffMemberDTO
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.services.Staff.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "miembro no encontrado")
		return
	}

	createdResponse(c, member)
}

// @Summary Obtener un miembro del equipo
// @Tags Administración del equipo
// @Produce json
// @Param id path string true "ID del miembro"
// @Success 200 {object} domain.StaffMember
// @Failure 404 {object} errorResponseBody "Miembro no encontrado"
// @Security ApiKeyAuth
// @Router /admin/staff/{id} [get]
func (h *Handler) getStaffMemberByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	member, err := h.services.Staff.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "miembro no encontrado")
		return
	}

	successResponse(c, http.StatusOK, member)
}

// @Summary Actualizar un miembro del equipo
// @Tags Administración del equipo
// @Accept json
// @Produce json
// @Param id path string true "ID del miembro"
// @Param input body domain.UpdateStaffMemberDTO true "Campos a modificar"
// @Success 200 {object} domain.StaffMember
// @Failure 404 {object} errorResponseBody "Miembro no encontrado"
// @Security ApiKeyAuth
// @Router /admin/staff/{id} [put]
func (h *Handler) updateStaffMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateStaffMemberDTO
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.services.Staff.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err, "miembro no encontrado")
		return
	}

	successResponse(c, http.StatusOK, member)
}

// @Summary Eliminar un miembro del equipo
// @Tags Administración del equipo
// @Param id path string true "ID del miembro"
// @Success 204
// @Failure 404 {object} errorResponseBody "Miembro no encontrado"
// @Security ApiKeyAuth
// @Router /admin/staff/{id} [delete]
func (h *Handler) deleteStaffMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Staff.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err, "miembro no encontrado")
		return
	}

	noContentResponse(c)
}
