package rest

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"barbershop/internal/domain"
	"barbershop/pkg/validator"
)

// @Summary Información de la empresa
// @Tags Empresa
// @Produce json
// @Success 200 {array} domain.CompanyInfo
// @Router /company [get]
func (h *Handler) getCompanyInfo(c *gin.Context) {
	sections, err := h.services.Company.List(c.Request.Context())
	if err != nil {
		handleError(c, err, "")
		return
	}

	successResponse(c, http.StatusOK, sections)
}

// @Summary Guardar secciones de la empresa
// @Description Crea o reemplaza varias secciones a la vez.
// @Tags Administración de empresa
// @Accept json
// @Produce json
// @Param input body []domain.UpsertCompanyInfoDTO true "Secciones"
// @Success 200 {array} domain.CompanyInfo
// @Failure 400 {object} errorResponseBody "Datos inválidos"
// @Security ApiKeyAuth
// @Router /admin/company [post]
func (h *Handler) upsertCompanyInfo(c *gin.Context) {
	var req []domain.UpsertCompanyInfoDTO
	if !bindJSON(c, &req) {
		return
	}
	if len(req) == 0 {
		badRequestResponse(c, "se requiere al menos una sección")
		return
	}

	sections, err := h.services.Company.UpsertMany(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "")
		return
	}

	successResponse(c, http.StatusOK, sections)
}

// @Summary Guardar una sección de la empresa
// @Tags Administración de empresa
// @Accept json
// @Produce json
// @Param section path string true "Sección"
// @Param input body domain.UpsertCompanyInfoDTO true "Contenido de la sección"
// @Success 200 {object} domain.CompanyInfo
// @Failure 400 {object} errorResponseBody "Datos inválidos"
// @Security ApiKeyAuth
// @Router /admin/company/{section} [put]
func (h *Handler) updateCompanySection(c *gin.Context) {
	section := c.Param("section")
	if !validator.ValidateSlug(section) {
		badRequestResponse(c, "nombre de sección inválido")
		return
	}

	// Section comes from the path; validate after setting it.
	var req domain.UpsertCompanyInfoDTO
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}
	req.Section = section
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	info, err := h.services.Company.Upsert(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "sección no encontrada")
		return
	}

	successResponse(c, http.StatusOK, info)
}

// @Summary Eliminar una sección de la empresa
// @Tags Administración de empresa
// @Param section path string true "Sección"
// @Success 204
// @Failure 404 {object} errorResponseBody "Sección no encontrada"
// @Security ApiKeyAuth
// @Router /admin/company/{section} [delete]
func (h *Handler) deleteCompanySection(c *gin.Context) {
	if err := h.services.Company.Delete(c.Request.Context(), c.Param("section")); err != nil {
		handleError(c, err, "sección no encontrada")
		return
	}

	noContentResponse(c)
}
