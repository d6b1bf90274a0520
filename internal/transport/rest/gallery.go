package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barbershop/internal/domain"
)

// @Summary Galería de trabajos
// @Tags Galería
// @Produce json
// @Success 200 {array} domain.GalleryImage
// @Router /gallery [get]
func (h *Handler) getGallery(c *gin.Context) {
	h.listGallery(c, true)
}

// @Summary Galería completa
// @Tags Administración de galería
// @Produce json
// @Success 200 {array} domain.GalleryImage
// @Security ApiKeyAuth
// @Router /admin/gallery [get]
func (h *Handler) adminGetGallery(c *gin.Context) {
	h.listGallery(c, false)
}

func (h *Handler) listGallery(c *gin.Context, onlyActive bool) {
	images, err := h.services.Gallery.List(c.Request.Context(), onlyActive)
	if err != nil {
		handleError(c, err, "")
		return
	}

	successResponse(c, http.StatusOK, images)
}

// @Summary Agregar una imagen
// @Tags Administración de galería
// @Accept json
// @Produce json
// @Param input body domain.CreateGalleryImageDTO true "Datos de la imagen"
// @Success 201 {object} domain.GalleryImage
// @Failure 400 {object} errorResponseBody "Datos inválidos"
// @Security ApiKeyAuth
// @Router /admin/gallery [post]
func (h *Handler) createGalleryImage(c *gin.Context) {
	var req domain.CreateGalleryImageDTO
	if !bindJSON(c, &req) {
		return
	}

	image, err := h.services.Gallery.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "imagen no encontrada")
		return
	}

	createdResponse(c, image)
}

// @Summary Obtener una imagen
// @Tags Administración de galería
// @Produce json
// @Param id path string true "ID de la imagen"
// @Success 200 {object} domain.GalleryImage
// @Failure 404 {object} errorResponseBody "Imagen no encontrada"
// @Security ApiKeyAuth
// @Router /admin/gallery/{id} [get]
func (h *Handler) getGalleryImageByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	image, err := h.services.Gallery.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "imagen no encontrada")
		return
	}

	successResponse(c, http.StatusOK, image)
}

// @Summary Actualizar una imagen
// @Tags Administración de galería
// @Accept json
// @Produce json
// @Param id path string true "ID de la imagen"
// @Param input body domain.UpdateGalleryImageDTO true "Campos a modificar"
// @Success 200 {object} domain.GalleryImage
// @Failure 404 {object} errorResponseBody "Imagen no encontrada"
// @Security ApiKeyAuth
// @Router /admin/gallery/{id} [put]
func (h *Handler) updateGalleryImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateGalleryImageDTO
	if !bindJSON(c, &req) {
		return
	}

	image, err := h.services.Gallery.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err, "imagen no encontrada")
		return
	}

	successResponse(c, http.StatusOK, image)
}

// @Summary Eliminar una imagen
// @Tags Administración de galería
// @Param id path string true "ID de la imagen"
// @Success 204
// @Failure 404 {object} errorResponseBody "Imagen no encontrada"
// @Security ApiKeyAuth
// @Router /admin/gallery/{id} [delete]
func (h *Handler) deleteGalleryImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Gallery.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err, "imagen no encontrada")
		return
	}

	noContentResponse(c)
}
