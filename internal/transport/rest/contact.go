package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"barbershop/internal/domain"
)

// @Summary Formulario de contacto
// @Description Envía el mensaje al correo y a los canales configurados de la barbería.
// @Tags Contacto
// @Accept json
// @Produce json
// @Param input body domain.ContactMessageDTO true "Mensaje"
// @Success 200 {object} messageResponseType
// @Failure 400 {object} errorResponseBody "Datos inválidos"
// @Failure 429 {object} errorResponseBody "Demasiadas solicitudes"
// @Router /contact [post]
func (h *Handler) sendContactMessage(c *gin.Context) {
	var req domain.ContactMessageDTO
	if !bindJSON(c, &req) {
		return
	}

	if err := h.services.Contact.Send(c.Request.Context(), req); err != nil {
		handleError(c, err, "")
		return
	}

	messageResponse(c, http.StatusOK, "mensaje enviado")
}
