package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"barbershop/internal/domain"
)

const uploadField = "image"

type deleteFileRequest struct {
	URL string `json:"url" binding:"required,max=1000"`
}

// @Summary Subir una imagen
// @Description Acepta jpeg, jpg, png, gif o webp de hasta 5 MB. El tipo se verifica por contenido.
// @Tags Archivos
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Imagen"
// @Success 201 {object} domain.UploadResult
// @Failure 400 {object} errorResponseBody "Archivo no permitido"
// @Failure 413 {object} errorResponseBody "Archivo demasiado grande"
// @Security ApiKeyAuth
// @Router /admin/upload [post]
func (h *Handler) uploadImage(c *gin.Context) {
	maxSize := h.services.Upload.MaxSize()
	// Multipart framing needs some room beyond the file itself.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize+1<<20)

	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			handleError(c, domain.ErrFileTooLarge, "")
			return
		}
		badRequestResponse(c, "no se recibió ningún archivo en el campo image")
		return
	}
	if fileHeader.Size > maxSize {
		handleError(c, domain.ErrFileTooLarge, "")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		handleError(c, err, "")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		handleError(c, err, "")
		return
	}

	result, err := h.services.Upload.Upload(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		handleError(c, err, "")
		return
	}

	createdResponse(c, result)
}

// @Summary Eliminar una imagen subida
// @Tags Archivos
// @Accept json
// @Param input body deleteFileRequest true "URL del archivo"
// @Success 204
// @Failure 400 {object} errorResponseBody "URL inválida"
// @Failure 404 {object} errorResponseBody "Archivo no encontrado"
// @Security ApiKeyAuth
// @Router /admin/upload [delete]
func (h *Handler) deleteImage(c *gin.Context) {
	var req deleteFileRequest
	if url := c.Query("url"); url != "" {
		req.URL = url
	} else if !bindJSON(c, &req) {
		return
	}

	if err := h.services.Upload.Delete(c.Request.Context(), req.URL); err != nil {
		handleError(c, err, "archivo no encontrado")
		return
	}

	noContentResponse(c)
}
