package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barbershop/internal/domain"
)

// @Summary Reseñas aprobadas
// @Tags Reseñas
// @Produce json
// @Success 200 {array} domain.Review
// @Router /reviews [get]
func (h *Handler) getReviews(c *gin.Context) {
	approved := true
	h.listReviews(c, domain.ReviewFilter{Approved: &approved})
}

// @Summary Enviar una reseña
// @Description La reseña queda pendiente hasta que un administrador la apruebe.
// @Tags Reseñas
// @Accept json
// @Produce json
// @Param input body domain.CreateReviewDTO true "Datos de la reseña"
// @Success 201 {object} domain.Review
// @Failure 400 {object} errorResponseBody "Datos inválidos"
// @Failure 429 {object} errorResponseBody "Demasiadas solicitudes"
// @Router /reviews [post]
func (h *Handler) submitReview(c *gin.Context) {
	var req domain.CreateReviewDTO
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.services.Review.Submit(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "reseña no encontrada")
		return
	}

	createdResponse(c, review)
}

// @Summary Todas las reseñas
// @Tags Administración de reseñas
// @Produce json
// @Param approved query bool false "Filtrar por aprobación"
// @Success 200 {array} domain.Review
// @Security ApiKeyAuth
// @Router /admin/reviews [get]
func (h *Handler) adminGetReviews(c *gin.Context) {
	h.listReviews(c, domain.ReviewFilter{Approved: queryBool(c, "approved")})
}

func (h *Handler) listReviews(c *gin.Context, filter domain.ReviewFilter) {
	reviews, err := h.services.Review.List(c.Request.Context(), filter)
	if err != nil {
		handleError(c, err, "")
		return
	}

	successResponse(c, http.StatusOK, reviews)
}

// @Summary Crear una reseña aprobada
// @Tags Administración de reseñas
// @Accept json
// @Produce json
// @Param input body domain.CreateReviewDTO true "Datos de la reseña"
// @Success 201 {object} domain.Review
// @Failure 400 {object} errorResponseBody "Datos inválidos"
// @Security ApiKeyAuth
// @Router /admin/reviews [post]
func (h *Handler) createReview(c *gin.Context) {
	var req domain.CreateReviewDTO
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.services.Review.Create(c.Request.Context(), req, true)
	if err != nil {
		handleError(c, err, "reseña no encontrada")
		return
	}

	createdResponse(c, review)
}

// @Summary Obtener una reseña
// @Tags Administración de reseñas
// @Produce json
// @Param id path string true "ID de la reseña"
// @Success 200 {object} domain.Review
// @Failure 404 {object} errorResponseBody "Reseña no encontrada"
// @Security ApiKeyAuth
// @Router /admin/reviews/{id} [get]
func (h *Handler) getReviewByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	review, err := h.services.Review.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "reseña no encontrada")
		return
	}

	successResponse(c, http.StatusOK, review)
}

// @Summary Actualizar una reseña
// @Tags Administración de reseñas
// @Accept json
// @Produce json
// @Param id path string true "ID de la reseña"
// @Param input body domain.UpdateReviewDTO true "Campos a modificar"
// @Success 200 {object} domain.Review
// @Failure 404 {object} errorResponseBody "Reseña no encontrada"
// @Security ApiKeyAuth
// @Router /admin/reviews/{id} [put]
func (h *Handler) updateReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req domain.UpdateReviewDTO
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.services.Review.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err, "reseña no encontrada")
		return
	}

	successResponse(c, http.StatusOK, review)
}

// @Summary Aprobar una reseña
// @Tags Administración de reseñas
// @Produce json
// @Param id path string true "ID de la reseña"
// @Success 200 {object} domain.Review
// @Failure 404 {object} errorResponseBody "Reseña no encontrada"
// @Security ApiKeyAuth
// @Router /admin/reviews/{id}/approve [patch]
func (h *Handler) approveReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	review, err := h.services.Review.Approve(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "reseña no encontrada")
		return
	}

	successResponse(c, http.StatusOK, review)
}

// @Summary Eliminar una reseña
// @Tags Administración de reseñas
// @Param id path string true "ID de la reseña"
// @Success 204
// @Failure 404 {object} errorResponseBody "Reseña no encontrada"
// @Security ApiKeyAuth
// @Router /admin/reviews/{id} [delete]
func (h *Handler) deleteReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.services.Review.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err, "reseña no encontrada")
		return
	}

	noContentResponse(c)
}
